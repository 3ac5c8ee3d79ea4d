// Package rolepolicy provides authorization policies for role management.
//
// Authorization rules:
//   - Only admins reach role changes at all (enforced by routing)
//   - The configured root admin account can never be demoted
//   - Role values outside the known set are rejected
package rolepolicy

import (
	"errors"

	"github.com/dalemusser/labhub/internal/app/system/normalize"
	"github.com/dalemusser/labhub/internal/domain/models"
)

var (
	// ErrUnknownRole is returned for a role value outside the known set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrRootAdminLocked is returned when a change would strip the admin
	// role from the configured root admin account.
	ErrRootAdminLocked = errors.New("the root admin account cannot be demoted")
)

// DecideRoleChange reports whether target may be given newRole. The root
// admin email is compared after normalization, so casing differences in
// configuration cannot disable the lock.
func DecideRoleChange(target *models.User, newRole, rootAdminEmail string) error {
	newRole = normalize.Role(newRole)
	if !models.IsValidRole(newRole) {
		return ErrUnknownRole
	}
	if target.Email == normalize.Email(rootAdminEmail) && newRole != models.RoleAdmin {
		return ErrRootAdminLocked
	}
	return nil
}
