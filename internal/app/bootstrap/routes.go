// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	accountsfeature "github.com/dalemusser/labhub/internal/app/features/accounts"
	authapifeature "github.com/dalemusser/labhub/internal/app/features/authapi"
	authorsfeature "github.com/dalemusser/labhub/internal/app/features/authors"
	conferencesfeature "github.com/dalemusser/labhub/internal/app/features/conferences"
	healthfeature "github.com/dalemusser/labhub/internal/app/features/health"
	publicationsfeature "github.com/dalemusser/labhub/internal/app/features/publications"
	teamsfeature "github.com/dalemusser/labhub/internal/app/features/teams"
	authorstore "github.com/dalemusser/labhub/internal/app/store/authors"
	conferencestore "github.com/dalemusser/labhub/internal/app/store/conferences"
	publicationstore "github.com/dalemusser/labhub/internal/app/store/publications"
	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/app/system/auth"
	"github.com/dalemusser/labhub/internal/app/system/httpjson"
	"github.com/dalemusser/labhub/internal/app/system/identity"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. LabHub initializes the Firebase token
// verifier, builds the stores and feature handlers, and mounts the public,
// admin, and lead surfaces.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Diagnostic error detail in responses only outside production.
	httpjson.SetDevMode(coreCfg.Env != "prod")

	verifier, err := identity.NewFirebaseVerifier(context.Background(),
		appCfg.FirebaseCredentialsFile, appCfg.FirebaseProjectID, logger)
	if err != nil {
		logger.Error("firebase verifier init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase
	users := userstore.New(db)
	authors := authorstore.New(db)
	conferences := conferencestore.New(db)
	publications := publicationstore.New(db)

	reconciler := identity.NewReconciler(users, appCfg.RootAdminEmail, logger)
	authenticate := auth.Authenticator(verifier, reconciler, logger)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	authHandler := authapifeature.NewHandler(verifier, reconciler, users, logger)
	accountsHandler := accountsfeature.NewHandler(users, appCfg.RootAdminEmail, logger)
	teamsAdmin := teamsfeature.NewAdminHandler(users, logger)
	teamsLead := teamsfeature.NewLeadHandler(users, logger)
	authorsHandler := authorsfeature.NewHandler(authors, logger)
	conferencesHandler := conferencesfeature.NewHandler(conferences, users, authors, logger)
	publicationsHandler := publicationsfeature.NewHandler(publications, users, logger)

	r := chi.NewRouter()

	// Public surface: no auth.
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Mount("/publications", publicationsfeature.PublicRoutes(publicationsHandler))

	// Auth surface: login is public, /me authenticates itself.
	r.Mount("/auth", authapifeature.Routes(authHandler, authenticate))

	// Admin surface.
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(authenticate)
		ar.Mount("/users", accountsfeature.AdminRoutes(accountsHandler))
		ar.Mount("/teams", teamsfeature.AdminRoutes(teamsAdmin))
		ar.Mount("/conferences", conferencesfeature.AdminRoutes(conferencesHandler))
		ar.Mount("/publications", publicationsfeature.AdminRoutes(publicationsHandler))
	})

	// Lead surface. Publication submission is deliberately open to every
	// authenticated role; policy decides the resulting status.
	r.Route("/lead", func(lr chi.Router) {
		lr.Use(authenticate)
		lr.Mount("/authors", authorsfeature.LeadRoutes(authorsHandler))
		lr.Mount("/conferences", conferencesfeature.LeadRoutes(conferencesHandler))
		lr.Mount("/publications", publicationsfeature.SubmitRoutes(publicationsHandler))
		lr.Mount("/", teamsfeature.LeadRoutes(teamsLead))
	})

	return r, nil
}
