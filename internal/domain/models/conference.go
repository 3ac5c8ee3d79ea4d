// internal/domain/models/conference.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conference status values. A conference moves through these informally; the
// value is admin/lead-settable, not a strict state machine.
const (
	ConferenceSubmitted = "submitted"
	ConferenceAccepted  = "accepted"
	ConferencePresented = "presented"
	ConferencePublished = "published"
)

// AllConferenceStatuses contains every valid conference status.
var AllConferenceStatuses = []string{
	ConferenceSubmitted,
	ConferenceAccepted,
	ConferencePresented,
	ConferencePublished,
}

// IsValidConferenceStatus checks if a value is a known conference status.
func IsValidConferenceStatus(value string) bool {
	for _, s := range AllConferenceStatuses {
		if s == value {
			return true
		}
	}
	return false
}

// Conference is a scholarly submission record owned by a lead.
//
// AuthorIDs reference team-member Users; ExtraAuthorIDs reference external
// Author records owned by the same lead.
type Conference struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Date   *time.Time         `bson:"date,omitempty" json:"date,omitempty"`
	Link   string             `bson:"link,omitempty" json:"link,omitempty"`
	Status string             `bson:"status" json:"status"`

	LeadID         primitive.ObjectID   `bson:"lead_id" json:"lead_id"`
	AuthorIDs      []primitive.ObjectID `bson:"author_ids,omitempty" json:"author_ids,omitempty"`
	ExtraAuthorIDs []primitive.ObjectID `bson:"extra_author_ids,omitempty" json:"extra_author_ids,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
