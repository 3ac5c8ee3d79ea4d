// internal/app/features/publications/public.go
package publications

import (
	"context"
	"net/http"

	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/timeouts"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.uber.org/zap"
)

// ServePublicList handles GET /publications: approved entries only, newest
// first, no auth.
func (h *Handler) ServePublicList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pubs, err := h.Pubs.ListApproved(ctx)
	if err != nil {
		h.Log.Error("publications: public list failed", zap.Error(err))
		httpjson.ErrorDetail(w, http.StatusInternalServerError, "could not list publications", err)
		return
	}
	if pubs == nil {
		pubs = []models.Publication{}
	}
	httpjson.Write(w, http.StatusOK, pubs)
}
