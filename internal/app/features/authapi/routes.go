// internal/app/features/authapi/routes.go
package authapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the auth endpoints under whatever base path the caller
// chooses (typically "/auth" from bootstrap). Login is public; /me requires
// the authentication middleware passed in by bootstrap.
func Routes(h *Handler, authenticate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(authenticate)
		pr.Get("/me", h.ServeMe)
	})

	return r
}
