// internal/app/features/authapi/handler.go

// Package authapi exposes the token-exchange endpoints: POST /auth/login
// turns a provider ID token into a local account, and GET /auth/me returns
// the signed-in account with its lead populated.
package authapi

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/identity"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler owns the auth endpoints.
type Handler struct {
	Verifier   identity.TokenVerifier
	Reconciler *identity.Reconciler
	Users      *userstore.Store
	Log        *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(verifier identity.TokenVerifier, reconciler *identity.Reconciler, users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Verifier: verifier, Reconciler: reconciler, Users: users, Log: logger}
}

type loginRequest struct {
	IDToken string `json:"idToken"`
}

// accountResponse is the JSON shape for the signed-in account. The lead is
// populated when the account belongs to a team.
type accountResponse struct {
	User models.User     `json:"user"`
	Lead *models.UserRef `json:"lead,omitempty"`
}

// HandleLogin handles POST /auth/login. The body carries the provider ID
// token; a valid token creates the account on first sight.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil || req.IDToken == "" {
		httpjson.Error(w, http.StatusBadRequest, "idToken is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ident, err := h.Verifier.Verify(ctx, req.IDToken)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidToken) {
			httpjson.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		h.Log.Error("login: token verification failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "authentication unavailable", err)
		return
	}

	user, err := h.Reconciler.Reconcile(ctx, ident)
	if err != nil {
		if errors.Is(err, identity.ErrNoEmail) {
			httpjson.Error(w, http.StatusBadRequest, "token has no email claim")
			return
		}
		h.Log.Error("login: reconciliation failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not resolve account", err)
		return
	}

	h.respondWithAccount(w, ctx, user)
}

// ServeMe handles GET /auth/me for the signed-in account.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r)
	if user == nil {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	h.respondWithAccount(w, ctx, user)
}

func (h *Handler) respondWithAccount(w http.ResponseWriter, ctx context.Context, user *models.User) {
	resp := accountResponse{User: *user}
	if user.LeadID != nil {
		lead, err := h.Users.GetByID(ctx, *user.LeadID)
		if err != nil {
			// A dangling lead reference should not break sign-in.
			h.Log.Warn("account references missing lead",
				zap.String("email", user.Email),
				zap.Error(err))
		} else {
			ref := lead.Ref()
			resp.Lead = &ref
		}
	}
	httpjson.Write(w, http.StatusOK, resp)
}
