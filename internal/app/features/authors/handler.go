// internal/app/features/authors/handler.go

// Package authors owns the lead-facing external-author endpoints. External
// authors are collaborators without accounts; each record belongs to the lead
// who created it and is invisible to other leads.
package authors

import (
	"context"
	"net/http"

	authorstore "github.com/dalemusser/labhub/internal/app/store/authors"
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler owns the lead author endpoints.
type Handler struct {
	Authors *authorstore.Store
	Log     *zap.Logger
}

// NewHandler constructs an authors Handler.
func NewHandler(authors *authorstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Authors: authors, Log: logger}
}

// ServeList handles GET /lead/authors for the signed-in lead.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	authors, err := h.Authors.ListByLead(ctx, lead.ID)
	if err != nil {
		h.Log.Error("authors: list failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list authors", err)
		return
	}
	if authors == nil {
		authors = []models.Author{}
	}
	httpjson.Write(w, http.StatusOK, authors)
}

type authorRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Affiliation string `json:"affiliation"`
}

// HandleCreate handles POST /lead/authors.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	var req authorRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Authors.Create(ctx, models.Author{
		LeadID:      lead.ID,
		Name:        req.Name,
		Email:       req.Email,
		Affiliation: req.Affiliation,
	})
	if err != nil {
		h.Log.Error("authors: create failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not create author", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /lead/authors/{id}. Another lead's author matches
// nothing and reads as not found.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	lead := auth.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid author id")
		return
	}

	var req authorRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Authors.UpdateForLead(ctx, id, lead.ID, authorstore.AuthorUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Affiliation: req.Affiliation,
	})
	if err != nil {
		h.Log.Error("authors: update failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not update author", err)
		return
	}
	if matched == 0 {
		httpjson.Error(w, http.StatusNotFound, "author not found")
		return
	}

	updated, err := h.Authors.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("authors: reload failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load author", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}
