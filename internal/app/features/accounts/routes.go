// internal/app/features/accounts/routes.go
package accounts

import (
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the admin account routes under whatever base path the
// caller chooses (typically "/admin/users" from bootstrap). The caller mounts
// the authentication middleware outside.
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Patch("/{id}/role", h.HandleRoleChange)
	r.Post("/manual", h.HandleManualCreate)

	return r
}
