package rbac

import (
	"strings"

	"edudash/internal/models"
)

// RoutePolicy maps a protected route prefix to the roles allowed to reach it.
type RoutePolicy struct {
	Pattern string
	Roles   []models.Role
}

// DefaultPolicies is the process-wide route policy table. It is defined once
// at startup and never mutated; changing it changes access behavior and is
// reviewed like an API contract.
func DefaultPolicies() []RoutePolicy {
	anyRole := []models.Role{models.RoleStudent, models.RoleTeacher, models.RoleAdmin}
	return []RoutePolicy{
		{Pattern: "/dashboard", Roles: anyRole},
		{Pattern: "/admin/dashboard", Roles: []models.Role{models.RoleAdmin}},
		{Pattern: "/teacher/dashboard", Roles: []models.Role{models.RoleTeacher, models.RoleAdmin}},
		{Pattern: "/student/dashboard", Roles: anyRole},
		{Pattern: "/courses", Roles: anyRole},
		{Pattern: "/students", Roles: []models.Role{models.RoleTeacher, models.RoleAdmin}},
		{Pattern: "/assignments", Roles: anyRole},
		{Pattern: "/analytics", Roles: []models.Role{models.RoleAdmin}},
		{Pattern: "/users", Roles: []models.Role{models.RoleAdmin}},
		{Pattern: "/settings", Roles: anyRole},
		{Pattern: "/profile", Roles: anyRole},
	}
}

// DefaultPublicRoutes lists routes reachable without a token. "/" matches
// exactly; the rest match by prefix.
func DefaultPublicRoutes() []string {
	return []string{"/login", "/signup", "/", "/api/auth"}
}

// matchPolicy finds the policy governing a path. Patterns match by prefix;
// when several match, the longest prefix wins, so "/admin/dashboard" is not
// shadowed by "/dashboard" regardless of table order.
func matchPolicy(policies []RoutePolicy, path string) (RoutePolicy, bool) {
	var best RoutePolicy
	found := false
	for _, p := range policies {
		if !strings.HasPrefix(path, p.Pattern) {
			continue
		}
		if !found || len(p.Pattern) > len(best.Pattern) {
			best = p
			found = true
		}
	}
	return best, found
}

func isPublic(public []string, path string) bool {
	for _, p := range public {
		if p == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func roleAllowed(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
