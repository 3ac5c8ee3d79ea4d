// internal/app/system/authz/authz.go

// Package authz holds small role predicates shared by handlers and policies.
package authz

import (
	"github.com/dalemusser/labhub/internal/domain/models"
)

// IsAdmin reports whether the account has the admin role.
func IsAdmin(u *models.User) bool {
	return u != nil && u.Role == models.RoleAdmin
}

// IsLead reports whether the account has the lead role.
func IsLead(u *models.User) bool {
	return u != nil && u.Role == models.RoleLead
}
