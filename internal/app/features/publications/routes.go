// internal/app/features/publications/routes.go
package publications

import (
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes mounts the unauthenticated listing (typically
// "/publications").
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePublicList)
	return r
}

// AdminRoutes mounts the review surface (typically "/admin/publications").
// Admin creations go through the same submit handler and come out approved.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeAdminList)
	r.Post("/", h.HandleSubmit)
	r.Put("/{id}", h.HandleUpdate)
	r.Patch("/{id}/status", h.HandleStatus)
	r.Delete("/{id}", h.HandleDelete)

	return r
}

// SubmitRoutes mounts the open submission endpoint (typically
// "/lead/publications", though any authenticated role may post).
func SubmitRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSubmit)
	return r
}
