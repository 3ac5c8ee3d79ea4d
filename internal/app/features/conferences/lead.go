// internal/app/features/conferences/lead.go
package conferences

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/labhub/internal/app/policy/conferencepolicy"
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeLeadList handles GET /lead/conferences: only the signed-in lead's
// records, populated.
func (h *Handler) ServeLeadList(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	confs, err := h.Conferences.ListByLead(ctx, lead.ID)
	if err != nil {
		h.Log.Error("conferences: list own failed", zap.Error(err))
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

// HandleLeadCreate handles POST /lead/conferences. Ownership comes from the
// session, never from the request body.
func (h *Handler) HandleLeadCreate(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	var req conferenceRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
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

	created, err := h.Conferences.Create(ctx, models.Conference{
		Title:          req.Title,
		Date:           req.Date,
		Link:           req.Link,
		Status:         req.Status,
		LeadID:         lead.ID,
		AuthorIDs:      authorIDs,
		ExtraAuthorIDs: extraAuthorIDs,
	})
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT for both /admin/conferences/{id} and
// /lead/conferences/{id}. The ownership decision lives in conferencepolicy;
// a conference the caller may not touch reads as not found.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid conference id")
		return
	}

	var req conferenceRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	conf, err := h.Conferences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "conference not found")
			return
		}
		h.Log.Error("conferences: load failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load conference", err)
		return
	}
	if !conferencepolicy.CanManage(user, conf.LeadID) {
		httpjson.Error(w, http.StatusNotFound, "conference not found")
		return
	}

	h.applyUpdate(ctx, w, id, req)
}
