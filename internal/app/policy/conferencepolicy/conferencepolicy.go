// Package conferencepolicy provides authorization policies for conference
// records.
//
// Authorization rules:
//   - Admins can view and manage every conference
//   - Leads can only manage conferences they own
//   - Other roles have no conference access
package conferencepolicy

import (
	"github.com/dalemusser/labhub/internal/app/system/authz"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanManage reports whether u may modify a conference owned by ownerID.
func CanManage(u *models.User, ownerID primitive.ObjectID) bool {
	if authz.IsAdmin(u) {
		return true
	}
	return authz.IsLead(u) && u.ID == ownerID
}
