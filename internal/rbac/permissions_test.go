package rbac

import (
	"testing"

	"edudash/internal/models"
)

func TestStudentHasNoSystemAccess(t *testing.T) {
	if HasCapability(models.RoleStudent, CapManageSystem) {
		t.Fatalf("student must not hold manage:system")
	}
	if HasCapability(models.RoleTeacher, CapManageSystem) {
		t.Fatalf("teacher must not hold manage:system")
	}
}

func TestAdminIsSupersetOfOtherRoles(t *testing.T) {
	for _, role := range []models.Role{models.RoleStudent, models.RoleTeacher} {
		for _, capability := range CapabilitiesFor(role) {
			if !HasCapability(models.RoleAdmin, capability) {
				t.Fatalf("admin missing %q granted to %s", capability, role)
			}
		}
	}
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	if caps := CapabilitiesFor(models.Role("ghost")); len(caps) != 0 {
		t.Fatalf("unknown role must resolve to an empty set, got %v", caps)
	}
}

func TestCapabilitySetsAreIndependent(t *testing.T) {
	if HasCapability(models.RoleStudent, CapGradeAssignments) {
		t.Fatalf("student must not grade assignments")
	}
	if HasCapability(models.RoleTeacher, CapDeleteCourses) {
		t.Fatalf("teacher must not delete courses")
	}
}
