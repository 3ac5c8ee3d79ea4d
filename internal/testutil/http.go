package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser returns an admin account for handler tests.
func AdminUser() *models.User {
	return &models.User{
		ID:          primitive.NewObjectID(),
		UID:         "uid-admin",
		Email:       "admin@test.edu",
		DisplayName: "Test Admin",
		Role:        models.RoleAdmin,
	}
}

// LeadUser returns a lead account for handler tests.
func LeadUser() *models.User {
	return &models.User{
		ID:          primitive.NewObjectID(),
		UID:         "uid-lead",
		Email:       "lead@test.edu",
		DisplayName: "Test Lead",
		Role:        models.RoleLead,
	}
}

// MemberUser returns a member account, optionally assigned to a lead.
func MemberUser(leadID *primitive.ObjectID) *models.User {
	return &models.User{
		ID:          primitive.NewObjectID(),
		UID:         "uid-member",
		Email:       "member@test.edu",
		DisplayName: "Test Member",
		Role:        models.RoleMember,
		LeadID:      leadID,
	}
}

// WithUser adds an account to the request context, bypassing the
// authentication middleware.
func WithUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(auth.WithUser(r.Context(), u))
}

// NewAuthenticatedRequest creates an HTTP request with an account in context.
func NewAuthenticatedRequest(method, target string, u *models.User) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), u)
}

// NewJSONRequest creates an HTTP request whose body is the JSON encoding of v,
// with an account in context.
func NewJSONRequest(t *testing.T, method, target string, v any, u *models.User) *http.Request {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if u != nil {
		r = WithUser(r, u)
	}
	return r
}

// DecodeJSON decodes the recorded response body into dst.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response body %q: %v", w.Body.String(), err)
	}
}
