// Package teampolicy provides authorization policies for team membership.
//
// Authorization rules:
//   - Only accounts with the member role can be assigned to a team
//   - A member already on a different lead's team cannot be silently
//     reassigned; the existing assignment must be cleared first
//   - Clearing an assignment is always allowed
package teampolicy

import (
	"errors"

	"github.com/dalemusser/labhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotMember is returned when the target account does not have the
	// member role.
	ErrNotMember = errors.New("only members can be assigned to a team")

	// ErrDifferentLead is returned when the member already belongs to a
	// different lead's team. Handlers surface this as a conflict.
	ErrDifferentLead = errors.New("member is already assigned to another team")
)

// DecideAssignment reports whether member may be assigned to newLead.
// A nil newLead clears the assignment and is always allowed for members.
// Re-assigning to the current lead is a no-op and allowed.
func DecideAssignment(member *models.User, newLead *primitive.ObjectID) error {
	if member.Role != models.RoleMember {
		return ErrNotMember
	}
	if newLead == nil {
		return nil
	}
	if member.LeadID != nil && *member.LeadID != *newLead {
		return ErrDifferentLead
	}
	return nil
}
