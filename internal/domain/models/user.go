// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents one human principal: admins, leads, advisors, directors,
// and members.
//
// NOTE:
//   - Email is the durable identity key and is unique across the collection.
//   - UID is the external identity-provider subject id. It is empty for
//     manually provisioned accounts until their first real login attaches it
//     (see identity.Reconciler).
//   - LeadID, when set, references the User (role "lead") this member is under.
type User struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UID         string              `bson:"uid,omitempty" json:"-"`
	Email       string              `bson:"email" json:"email"`
	DisplayName string              `bson:"display_name,omitempty" json:"display_name,omitempty"`
	Role        string              `bson:"role" json:"role"`
	LeadID      *primitive.ObjectID `bson:"lead_id,omitempty" json:"lead_id,omitempty"`

	// Member profile fields, editable by the owning lead or an admin.
	Mobile       string `bson:"mobile,omitempty" json:"mobile,omitempty"`
	StudentID    string `bson:"student_id,omitempty" json:"student_id,omitempty"`
	StudentEmail string `bson:"student_email,omitempty" json:"student_email,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRef is the populated summary embedded in responses that reference a user.
type UserRef struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"display_name,omitempty" json:"display_name,omitempty"`
}

// Ref returns the reference summary for this user.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}
}
