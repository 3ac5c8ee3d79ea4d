// internal/app/features/accounts/handler.go

// Package accounts owns the admin-facing account management endpoints:
// listing every account, changing roles, and provisioning accounts by email
// before the person has ever signed in.
package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/labhub/internal/app/policy/rolepolicy"
	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the admin account endpoints.
type Handler struct {
	Users          *userstore.Store
	RootAdminEmail string
	Log            *zap.Logger
}

// NewHandler constructs an accounts Handler.
func NewHandler(users *userstore.Store, rootAdminEmail string, logger *zap.Logger) *Handler {
	return &Handler{Users: users, RootAdminEmail: rootAdminEmail, Log: logger}
}

// ServeList handles GET /admin/users.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.Log.Error("accounts: list failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list accounts", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpjson.Write(w, http.StatusOK, users)
}

type roleChangeRequest struct {
	Role string `json:"role"`
}

// HandleRoleChange handles PATCH /admin/users/{id}/role. The configured root
// admin account can never lose the admin role.
func (h *Handler) HandleRoleChange(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req roleChangeRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.Log.Error("accounts: load target failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load user", err)
		return
	}

	if err := rolepolicy.DecideRoleChange(target, req.Role, h.RootAdminEmail); err != nil {
		switch {
		case errors.Is(err, rolepolicy.ErrUnknownRole):
			httpjson.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rolepolicy.ErrRootAdminLocked):
			httpjson.Error(w, http.StatusForbidden, err.Error())
		default:
			httpjson.ErrorDetail(w, http.StatusInternalServerError, "role change rejected", err)
		}
		return
	}

	if _, err := h.Users.UpdateRole(ctx, id, req.Role); err != nil {
		h.Log.Error("accounts: role update failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not update role", err)
		return
	}

	h.Log.Info("role changed",
		zap.String("email", target.Email),
		zap.String("from", target.Role),
		zap.String("to", req.Role))

	target.Role = req.Role
	httpjson.Write(w, http.StatusOK, target)
}

type manualCreateRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// HandleManualCreate handles POST /admin/users/manual. The account gets a
// placeholder uid; the person's first real login links their provider uid to
// it by email. When the email already has an account, the request updates its
// role instead, subject to the same root-admin lock.
func (h *Handler) HandleManualCreate(w http.ResponseWriter, r *http.Request) {
	var req manualCreateRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleMember
	}
	if !models.IsValidRole(req.Role) {
		httpjson.Error(w, http.StatusBadRequest, "unknown role")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		h.Log.Error("accounts: email lookup failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not look up email", err)
		return
	}

	if existing != nil {
		if err := rolepolicy.DecideRoleChange(existing, req.Role, h.RootAdminEmail); err != nil {
			switch {
			case errors.Is(err, rolepolicy.ErrUnknownRole):
				httpjson.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, rolepolicy.ErrRootAdminLocked):
				httpjson.Error(w, http.StatusForbidden, err.Error())
			default:
				httpjson.ErrorDetail(w, http.StatusInternalServerError, "role change rejected", err)
			}
			return
		}
		if _, err := h.Users.UpdateRole(ctx, existing.ID, req.Role); err != nil {
			h.Log.Error("accounts: role update failed", zap.Error(err))
			httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not update role", err)
			return
		}
		existing.Role = req.Role
		httpjson.Write(w, http.StatusOK, existing)
		return
	}

	created, err := h.Users.CreateManual(ctx, models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("accounts: manual create failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not create account", err)
		return
	}

	h.Log.Info("account provisioned manually",
		zap.String("email", created.Email),
		zap.String("role", created.Role))

	httpjson.Write(w, http.StatusCreated, created)
}
