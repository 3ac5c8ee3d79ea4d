// internal/app/features/conferences/routes.go
package conferences

import (
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the admin conference routes under whatever base path the
// caller chooses (typically "/admin/conferences" from bootstrap).
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleAdminCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}

// LeadRoutes mounts the lead conference routes (typically
// "/lead/conferences").
func LeadRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleLead))

	r.Get("/", h.ServeLeadList)
	r.Post("/", h.HandleLeadCreate)
	r.Put("/{id}", h.HandleUpdate)

	return r
}
