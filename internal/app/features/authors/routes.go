// internal/app/features/authors/routes.go
package authors

import (
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// LeadRoutes mounts the lead author routes under whatever base path the
// caller chooses (typically "/lead/authors" from bootstrap).
func LeadRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleLead))

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)

	return r
}
