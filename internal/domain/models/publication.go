// internal/domain/models/publication.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publication status values. Only "approved" publications appear on the
// public listing.
const (
	PublicationPending  = "pending"
	PublicationApproved = "approved"
	PublicationRejected = "rejected"
)

// AllPublicationStatuses contains every valid publication status.
var AllPublicationStatuses = []string{
	PublicationPending,
	PublicationApproved,
	PublicationRejected,
}

// IsValidPublicationStatus checks if a value is a known publication status.
func IsValidPublicationStatus(value string) bool {
	for _, s := range AllPublicationStatuses {
		if s == value {
			return true
		}
	}
	return false
}

// DefaultLinkLabel is used when a submission omits link_label.
const DefaultLinkLabel = "View article"

// Publication is a public-facing published-work record. Authors is free text
// (not references) because published works routinely list people who have no
// account here.
type Publication struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Meta        string              `bson:"meta" json:"meta"`
	Title       string              `bson:"title" json:"title"`
	Authors     string              `bson:"authors" json:"authors"`
	Description string              `bson:"description" json:"description"`
	Tag         string              `bson:"tag" json:"tag"`
	Link        string              `bson:"link" json:"link"`
	LinkLabel   string              `bson:"link_label" json:"link_label"`
	Status      string              `bson:"status" json:"status"`
	CreatedByID *primitive.ObjectID `bson:"created_by_id,omitempty" json:"created_by_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
