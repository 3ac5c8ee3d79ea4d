// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/app/system/normalize"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return ensureRootAdmin(ctx, deps, appCfg.RootAdminEmail, logger)
}

// ensureRootAdmin guarantees the configured root admin account exists with
// the admin role: create it with a placeholder uid when absent, promote it
// when present with another role. Sign-in later links the real provider uid.
func ensureRootAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	email = normalize.Email(email)
	store := userstore.New(deps.MongoDatabase)

	existing, err := store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if existing == nil {
		created, err := store.CreateManual(ctx, models.User{
			Email: email,
			Role:  models.RoleAdmin,
		})
		if err != nil {
			return err
		}
		logger.Info("root admin account created", zap.String("email", created.Email))
		return nil
	}

	if existing.Role != models.RoleAdmin {
		if _, err := store.UpdateRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			return err
		}
		logger.Info("root admin account promoted",
			zap.String("email", existing.Email),
			zap.String("previous_role", existing.Role))
	}
	return nil
}
