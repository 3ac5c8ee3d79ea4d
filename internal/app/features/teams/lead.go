// internal/app/features/teams/lead.go
package teams

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/labhub/internal/app/policy/teampolicy"
	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeMyTeam handles GET /lead/team for the signed-in lead.
func (h *LeadHandler) ServeMyTeam(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Users.ListByLead(ctx, lead.ID)
	if err != nil {
		h.Log.Error("teams: list own members failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list team", err)
		return
	}
	if members == nil {
		members = []models.User{}
	}

	httpjson.Write(w, http.StatusOK, teamView{Lead: lead.Ref(), Members: members})
}

type leadMemberRequest struct {
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	Mobile       string `json:"mobile"`
	StudentID    string `json:"student_id"`
	StudentEmail string `json:"student_email"`
}

// HandleCreateMember handles POST /lead/members. An unseen email becomes a
// provisioned member on this lead's team; a known email is attached instead,
// unless the account already belongs to another lead (conflict) or is not a
// member at all.
func (h *LeadHandler) HandleCreateMember(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	var req leadMemberRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Email == "" {
		httpjson.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		h.Log.Error("teams: email lookup failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not look up email", err)
		return
	}

	if existing != nil {
		if err := teampolicy.DecideAssignment(existing, &lead.ID); err != nil {
			switch {
			case errors.Is(err, teampolicy.ErrNotMember):
				httpjson.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, teampolicy.ErrDifferentLead):
				httpjson.Error(w, http.StatusConflict, err.Error())
			default:
				httpjson.ErrorDetail(w, http.StatusInternalServerError, "assignment rejected", err)
			}
			return
		}
		if _, err := h.Users.AssignLead(ctx, existing.ID, &lead.ID); err != nil {
			h.Log.Error("teams: attach member failed", zap.Error(err))
			httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not attach member", err)
			return
		}
		existing.LeadID = &lead.ID
		httpjson.Write(w, http.StatusOK, existing)
		return
	}

	created, err := h.Users.CreateManual(ctx, models.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         models.RoleMember,
		LeadID:       &lead.ID,
		Mobile:       req.Mobile,
		StudentID:    req.StudentID,
		StudentEmail: req.StudentEmail,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("teams: create member failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not create member", err)
		return
	}

	h.Log.Info("member provisioned by lead",
		zap.String("member", created.Email),
		zap.String("lead", lead.Email))

	httpjson.Write(w, http.StatusCreated, created)
}

// HandleMemberUpdate handles PUT /lead/members/{memberId}. The update filter
// is scoped to this lead, so a member on someone else's team reads as not
// found rather than forbidden.
func (h *LeadHandler) HandleMemberUpdate(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "memberId"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req memberUpdateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Users.UpdateMemberForLead(ctx, memberID, lead.ID, req.toUpdate())
	if err != nil {
		h.Log.Error("teams: member update failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not update member", err)
		return
	}
	if matched == 0 {
		httpjson.Error(w, http.StatusNotFound, "member not found")
		return
	}

	updated, err := h.Users.GetByID(ctx, memberID)
	if err != nil {
		h.Log.Error("teams: reload member failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load member", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}
