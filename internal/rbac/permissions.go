package rbac

import "edudash/internal/models"

// Capability strings granted per role. Each role's set is spelled out in
// full: admin is a behavioral superset of the other roles, but nothing is
// derived, so granting a capability to one role never leaks to another.
const (
	CapViewDashboard     = "view:dashboard"
	CapViewOwnCourses    = "view:own-courses"
	CapSubmitAssignments = "submit:assignments"
	CapViewOwnGrades     = "view:own-grades"
	CapCreateCourses     = "create:courses"
	CapEditOwnCourses    = "edit:own-courses"
	CapGradeAssignments  = "grade:assignments"
	CapViewStudents      = "view:students"
	CapManageOwnStudents = "manage:own-students"
	CapViewAllCourses    = "view:all-courses"
	CapEditAllCourses    = "edit:all-courses"
	CapDeleteCourses     = "delete:courses"
	CapViewAllUsers      = "view:all-users"
	CapManageUsers       = "manage:users"
	CapManageRoles       = "manage:roles"
	CapViewAnalytics     = "view:analytics"
	CapManageSystem      = "manage:system"
)

// CapabilitiesFor resolves a role to its granted capability set. The switch
// is exhaustive over the role enumeration; an unknown role gets nothing.
func CapabilitiesFor(role models.Role) []string {
	switch role {
	case models.RoleStudent:
		return []string{
			CapViewDashboard,
			CapViewOwnCourses,
			CapSubmitAssignments,
			CapViewOwnGrades,
		}
	case models.RoleTeacher:
		return []string{
			CapViewDashboard,
			CapViewOwnCourses,
			CapCreateCourses,
			CapEditOwnCourses,
			CapGradeAssignments,
			CapViewStudents,
			CapManageOwnStudents,
		}
	case models.RoleAdmin:
		return []string{
			CapViewDashboard,
			CapViewOwnCourses,
			CapViewAllCourses,
			CapCreateCourses,
			CapEditOwnCourses,
			CapEditAllCourses,
			CapDeleteCourses,
			CapSubmitAssignments,
			CapViewOwnGrades,
			CapGradeAssignments,
			CapViewStudents,
			CapManageOwnStudents,
			CapViewAllUsers,
			CapManageUsers,
			CapManageRoles,
			CapViewAnalytics,
			CapManageSystem,
		}
	default:
		return nil
	}
}

// HasCapability reports whether the role's set includes the capability.
func HasCapability(role models.Role, capability string) bool {
	for _, c := range CapabilitiesFor(role) {
		if c == capability {
			return true
		}
	}
	return false
}
