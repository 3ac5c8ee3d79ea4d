// internal/app/features/publications/admin.go
package publications

import (
	"context"
	"net/http"

	publicationstore "github.com/dalemusser/labhub/internal/app/store/publications"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeAdminList handles GET /admin/publications: every status, creators
// populated.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	pubs, err := h.Pubs.ListAll(ctx)
	if err != nil {
		h.Log.Error("publications: list failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list publications", err)
		return
	}

	var creatorIDs []primitive.ObjectID
	seen := map[primitive.ObjectID]bool{}
	for i := range pubs {
		if pubs[i].CreatedByID != nil && !seen[*pubs[i].CreatedByID] {
			seen[*pubs[i].CreatedByID] = true
			creatorIDs = append(creatorIDs, *pubs[i].CreatedByID)
		}
	}
	creators, err := h.Users.ListByIDs(ctx, creatorIDs)
	if err != nil {
		h.Log.Error("publications: load creators failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list publications", err)
		return
	}
	refs := make(map[primitive.ObjectID]models.UserRef, len(creators))
	for i := range creators {
		refs[creators[i].ID] = creators[i].Ref()
	}

	views := make([]publicationView, 0, len(pubs))
	for i := range pubs {
		v := publicationView{Publication: pubs[i]}
		if pubs[i].CreatedByID != nil {
			if ref, ok := refs[*pubs[i].CreatedByID]; ok {
				v.CreatedBy = &ref
			}
		}
		views = append(views, v)
	}
	httpjson.Write(w, http.StatusOK, views)
}

// HandleUpdate handles PUT /admin/publications/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid publication id")
		return
	}

	var req publicationRequest
	if err := httpjson.Decode(r, &req); err != nil || !req.complete() {
		httpjson.Error(w, http.StatusBadRequest, "meta, title, authors, description, tag, and link are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Pubs.Update(ctx, id, publicationstore.Update{
		Meta:        req.Meta,
		Title:       req.Title,
		Authors:     req.Authors,
		Description: req.Description,
		Tag:         req.Tag,
		Link:        req.Link,
		LinkLabel:   req.LinkLabel,
	})
	if err != nil {
		h.Log.Error("publications: update failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not update publication", err)
		return
	}
	if matched == 0 {
		httpjson.Error(w, http.StatusNotFound, "publication not found")
		return
	}

	updated, err := h.Pubs.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("publications: reload failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load publication", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandleStatus handles PATCH /admin/publications/{id}/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid publication id")
		return
	}

	var req statusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.IsValidPublicationStatus(req.Status) {
		httpjson.Error(w, http.StatusBadRequest, "unknown status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Pubs.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		h.Log.Error("publications: status change failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not change status", err)
		return
	}
	if matched == 0 {
		httpjson.Error(w, http.StatusNotFound, "publication not found")
		return
	}

	updated, err := h.Pubs.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("publications: reload failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not load publication", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /admin/publications/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid publication id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Pubs.Delete(ctx, id)
	if err != nil {
		h.Log.Error("publications: delete failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not delete publication", err)
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "publication not found")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"deleted": true})
}
