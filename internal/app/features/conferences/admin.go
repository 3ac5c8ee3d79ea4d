// internal/app/features/conferences/admin.go
package conferences

import (
	"context"
	"errors"
	"net/http"

	conferencestore "github.com/dalemusser/labhub/internal/app/store/conferences"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeAdminList handles GET /admin/conferences: every conference, populated.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	confs, err := h.Conferences.List(ctx)
	if err != nil {
		h.Log.Error("conferences: list failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list conferences", err)
		return
	}

	views, err := h.populate(ctx, confs)
	if err != nil {
		h.Log.Error("conferences: populate failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list conferences", err)
		return
	}
	httpjson.Write(w, http.StatusOK, views)
}

// HandleAdminCreate handles POST /admin/conferences. The record is created on
// behalf of the lead named in the request, who must actually have the lead
// role.
func (h *Handler) HandleAdminCreate(w http.ResponseWriter, r *http.Request) {
	var req conferenceRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	leadID, err := primitive.ObjectIDFromHex(req.LeadID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "lead_id is required")
		return
	}

	authorIDs, err := parseIDList(req.AuthorIDs)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid author id")
		return
	}
	extraAuthorIDs, err := parseIDList(req.ExtraAuthorIDs)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid extra author id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Users.GetLeadByID(ctx, leadID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "lead not found")
			return
		}
		h.Log.Error("conferences: load lead failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load lead", err)
		return
	}

	conf := models.Conference{
		Title:          req.Title,
		Date:           req.Date,
		Link:           req.Link,
		Status:         req.Status,
		LeadID:         leadID,
		AuthorIDs:      authorIDs,
		ExtraAuthorIDs: extraAuthorIDs,
	}
	created, err := h.Conferences.Create(ctx, conf)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}

// HandleDelete handles DELETE /admin/conferences/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid conference id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Conferences.Delete(ctx, id)
	if err != nil {
		h.Log.Error("conferences: delete failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not delete conference", err)
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "conference not found")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"deleted": true})
}

// applyUpdate is used by both PUT surfaces once ownership has been decided.
func (h *Handler) applyUpdate(ctx context.Context, w http.ResponseWriter, id primitive.ObjectID, req conferenceRequest) {
	authorIDs, err := parseIDList(req.AuthorIDs)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid author id")
		return
	}
	extraAuthorIDs, err := parseIDList(req.ExtraAuthorIDs)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid extra author id")
		return
	}

	matched, err := h.Conferences.Update(ctx, id, conferencestore.Update{
		Title:          req.Title,
		Date:           req.Date,
		Link:           req.Link,
		Status:         req.Status,
		AuthorIDs:      authorIDs,
		ExtraAuthorIDs: extraAuthorIDs,
	})
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if matched == 0 {
		httpjson.Error(w, http.StatusNotFound, "conference not found")
		return
	}

	updated, err := h.Conferences.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("conferences: reload failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load conference", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}
