// internal/app/features/teams/admin.go
package teams

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeList handles GET /admin/teams: every lead with their members.
func (h *AdminHandler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	leads, err := h.Users.ListLeads(ctx)
	if err != nil {
		h.Log.Error("teams: list leads failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list teams", err)
		return
	}

	teams := make([]teamView, 0, len(leads))
	for i := range leads {
		members, err := h.Users.ListByLead(ctx, leads[i].ID)
		if err != nil {
			h.Log.Error("teams: list members failed",
				zap.String("lead", leads[i].Email),
				zap.Error(err))
			httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list teams", err)
			return
		}
		if members == nil {
			members = []models.User{}
		}
		teams = append(teams, teamView{Lead: leads[i].Ref(), Members: members})
	}

	httpjson.Write(w, http.StatusOK, teams)
}

type assignRequest struct {
	MemberID string  `json:"member_id"`
	LeadID   *string `json:"lead_id"` // null clears the assignment
}

// HandleAssign handles POST /admin/teams/assign-member. Admins may move a
// member between teams freely; the different-lead conflict only guards the
// lead surface.
func (h *AdminHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := httpjson.Decode(r, &req); err != nil || req.MemberID == "" {
		httpjson.Error(w, http.StatusBadRequest, "member_id is required")
		return
	}

	memberID, err := primitive.ObjectIDFromHex(req.MemberID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var leadID *primitive.ObjectID
	if req.LeadID != nil {
		id, err := primitive.ObjectIDFromHex(*req.LeadID)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid lead id")
			return
		}
		leadID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	member, err := h.Users.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "member not found")
			return
		}
		h.Log.Error("teams: load member failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load member", err)
		return
	}
	if member.Role != models.RoleMember {
		httpjson.Error(w, http.StatusBadRequest, "only members can be assigned to a team")
		return
	}

	if leadID != nil {
		if _, err := h.Users.GetLeadByID(ctx, *leadID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				httpjson.Error(w, http.StatusNotFound, "lead not found")
				return
			}
			h.Log.Error("teams: load lead failed", zap.Error(err))
			httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load lead", err)
			return
		}
	}

	if _, err := h.Users.AssignLead(ctx, memberID, leadID); err != nil {
		h.Log.Error("teams: assignment failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not assign member", err)
		return
	}

	member.LeadID = leadID
	httpjson.Write(w, http.StatusOK, member)
}

type memberUpdateRequest struct {
	DisplayName  string `json:"display_name"`
	Mobile       string `json:"mobile"`
	StudentID    string `json:"student_id"`
	StudentEmail string `json:"student_email"`
}

func (req memberUpdateRequest) toUpdate() userstore.MemberUpdate {
	return userstore.MemberUpdate{
		DisplayName:  req.DisplayName,
		Mobile:       req.Mobile,
		StudentID:    req.StudentID,
		StudentEmail: req.StudentEmail,
	}
}

// HandleMemberUpdate handles PUT /admin/teams/members/{memberId} without
// ownership scoping.
func (h *AdminHandler) HandleMemberUpdate(w http.ResponseWriter, r *http.Request) {
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

	matched, err := h.Users.UpdateMember(ctx, memberID, req.toUpdate())
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
