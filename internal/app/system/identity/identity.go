// internal/app/system/identity/identity.go

// Package identity turns verified external identities into local accounts.
//
// The external provider (Firebase) is an opaque oracle: given a bearer token
// it returns a subject id, email, and display name, or fails. Everything the
// rest of the app knows about a caller comes from the Reconciler, which maps
// that verified identity onto exactly one User document and keeps its linkage
// fields in sync across logins.
package identity

import (
	"context"
	"errors"
)

// Identity is a verified external identity as reported by the provider.
type Identity struct {
	SubjectID   string // provider subject id (Firebase uid); may be empty
	Email       string // required for this system; tokens without email are rejected
	DisplayName string // optional
}

// ErrInvalidToken is returned by a TokenVerifier when the token cannot be
// verified (malformed, expired, wrong audience).
var ErrInvalidToken = errors.New("invalid or expired identity token")

// ErrNoEmail is returned by Reconcile when the verified identity carries no
// email address. Email is the durable identity key, so such tokens are
// malformed for this system's purposes.
var ErrNoEmail = errors.New("identity token has no email")

// TokenVerifier verifies a raw bearer token with the external identity
// provider and returns the identity it attests to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
