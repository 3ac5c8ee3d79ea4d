// internal/app/features/teams/routes.go
package teams

import (
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the admin team routes under whatever base path the
// caller chooses (typically "/admin/teams" from bootstrap).
func AdminRoutes(h *AdminHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Post("/assign-member", h.HandleAssign)
	r.Put("/members/{memberId}", h.HandleMemberUpdate)

	return r
}

// LeadRoutes mounts the lead-facing team routes. ServeMyTeam lives at
// /lead/team while member management lives at /lead/members, so bootstrap
// mounts this router at "/lead".
func LeadRoutes(h *LeadHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleLead))

	r.Get("/team", h.ServeMyTeam)
	r.Post("/members", h.HandleCreateMember)
	r.Put("/members/{memberId}", h.HandleMemberUpdate)

	return r
}
