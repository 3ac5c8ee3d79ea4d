// internal/app/features/teams/handler.go

// Package teams owns team membership: the admin view of every lead's team,
// member assignment, and the lead-facing roster endpoints.
package teams

import (
	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.uber.org/zap"
)

// AdminHandler owns the admin-facing team endpoints (all teams, member
// assignment, member edits without ownership scoping).
type AdminHandler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// LeadHandler owns the lead-facing team endpoints ("my team"). All reads and
// writes are scoped to the signed-in lead.
type LeadHandler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewAdminHandler constructs an AdminHandler bound to the users store.
func NewAdminHandler(users *userstore.Store, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Users: users, Log: logger}
}

// NewLeadHandler constructs a LeadHandler bound to the users store.
func NewLeadHandler(users *userstore.Store, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{Users: users, Log: logger}
}

// teamView is one lead with their members, as returned by the team listings.
type teamView struct {
	Lead    models.UserRef `json:"lead"`
	Members []models.User  `json:"members"`
}
