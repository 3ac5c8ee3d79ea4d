package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user with the given role. leadID may be nil.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string, leadID *primitive.ObjectID) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:          primitive.NewObjectID(),
		UID:         "uid-" + primitive.NewObjectID().Hex(),
		Email:       email,
		DisplayName: name,
		Role:        role,
		LeadID:      leadID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateLead inserts a test user with the lead role.
func (f *Fixtures) CreateLead(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleLead, nil)
}

// CreateMember inserts a test member assigned to the given lead.
func (f *Fixtures) CreateMember(ctx context.Context, name, email string, leadID primitive.ObjectID) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleMember, &leadID)
}

// CreateAuthor inserts an external author owned by the given lead.
func (f *Fixtures) CreateAuthor(ctx context.Context, name string, leadID primitive.ObjectID) models.Author {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Author{
		ID:          primitive.NewObjectID(),
		LeadID:      leadID,
		Name:        name,
		Email:       "",
		Affiliation: "External University",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("authors").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test author: %v", err)
	}
	return a
}

// CreateConference inserts a conference owned by the given lead.
func (f *Fixtures) CreateConference(ctx context.Context, title string, leadID primitive.ObjectID) models.Conference {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Conference{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Status:    models.ConferenceSubmitted,
		LeadID:    leadID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("conferences").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test conference: %v", err)
	}
	return c
}

// CreatePublication inserts a publication with the given status.
func (f *Fixtures) CreatePublication(ctx context.Context, title, status string) models.Publication {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Publication{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Authors:   "A. Author, B. Author",
		Status:    status,
		LinkLabel: models.DefaultLinkLabel,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("publications").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test publication: %v", err)
	}
	return p
}
