// internal/domain/models/roles.go
package models

// Role values for User.Role.
//
// Leads own a team of members plus the conferences and external authors they
// create. Advisors and directors are profile-only roles with no management
// surface. Admins bypass ownership scoping entirely.
const (
	RoleMember   = "member"
	RoleLead     = "lead"
	RoleAdvisor  = "advisor"
	RoleDirector = "director"
	RoleAdmin    = "admin"
)

// AllRoles contains every assignable role.
var AllRoles = []string{RoleMember, RoleLead, RoleAdvisor, RoleDirector, RoleAdmin}

// IsValidRole checks if a value is a known role.
func IsValidRole(value string) bool {
	for _, r := range AllRoles {
		if r == value {
			return true
		}
	}
	return false
}
