// internal/app/features/publications/submit.go
package publications

import (
	"context"
	"net/http"

	"github.com/dalemusser/labhub/internal/app/policy/publicationpolicy"
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleSubmit handles POST /lead/publications and POST /admin/publications.
// Any signed-in account may submit; the status comes from policy, never from
// the request. Non-admin submissions enter the review queue as pending.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	user := auth.CurrentUser(r)
	if !publicationpolicy.CanSubmit(user) {
		httpjson.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req publicationRequest
	if err := httpjson.Decode(r, &req); err != nil || !req.complete() {
		httpjson.Error(w, http.StatusBadRequest, "meta, title, authors, description, tag, and link are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Pubs.Create(ctx, models.Publication{
		Meta:        req.Meta,
		Title:       req.Title,
		Authors:     req.Authors,
		Description: req.Description,
		Tag:         req.Tag,
		Link:        req.Link,
		LinkLabel:   req.LinkLabel,
		Status:      publicationpolicy.StatusOnCreate(user),
		CreatedByID: &user.ID,
	})
	if err != nil {
		h.Log.Error("publications: create failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not create publication", err)
		return
	}

	h.Log.Info("publication submitted",
		zap.String("by", user.Email),
		zap.String("status", created.Status))

	httpjson.Write(w, http.StatusCreated, created)
}
