// Package publicationpolicy provides authorization policies for the
// publication review workflow.
//
// Authorization rules:
//   - Any signed-in account may submit a publication
//   - Submissions from non-admins always enter the queue as pending,
//     whatever status the request claimed
//   - Admin submissions are approved immediately
//   - Only admins review, edit, or delete publications (enforced by routing)
package publicationpolicy

import (
	"github.com/dalemusser/labhub/internal/app/system/authz"
	"github.com/dalemusser/labhub/internal/domain/models"
)

// StatusOnCreate returns the status a new submission gets, regardless of
// what the client sent.
func StatusOnCreate(u *models.User) string {
	if authz.IsAdmin(u) {
		return models.PublicationApproved
	}
	return models.PublicationPending
}

// CanSubmit reports whether u may submit a publication. Every signed-in
// account qualifies; review is where gatekeeping happens.
func CanSubmit(u *models.User) bool {
	return u != nil
}
