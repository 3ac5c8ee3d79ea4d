// internal/domain/models/author.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is an external (non-account) contributor a lead can list on a
// conference. Each author record is owned by the lead that created it; only
// that lead can read or update it.
type Author struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LeadID      primitive.ObjectID `bson:"lead_id" json:"lead_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Affiliation string             `bson:"affiliation,omitempty" json:"affiliation,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AuthorRef is the populated summary for an external author.
type AuthorRef struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Affiliation string             `bson:"affiliation,omitempty" json:"affiliation,omitempty"`
}

// Ref returns the reference summary for this author.
func (a *Author) Ref() AuthorRef {
	return AuthorRef{ID: a.ID, Name: a.Name, Email: a.Email, Affiliation: a.Affiliation}
}
