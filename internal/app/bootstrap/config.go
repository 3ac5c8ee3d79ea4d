// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LabHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, root_admin_email, etc.
//   - Environment variables: LABHUB_MONGO_URI, LABHUB_ROOT_ADMIN_EMAIL, etc.
//   - Command-line flags: --mongo_uri, --root_admin_email, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "labhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Firebase identity provider
	{Name: "firebase_credentials_file", Default: "", Desc: "Path to Firebase service-account JSON (blank uses application-default credentials)"},
	{Name: "firebase_project_id", Default: "", Desc: "Firebase project id (blank derives from credentials)"},

	// Root admin bootstrap
	{Name: "root_admin_email", Default: "", Desc: "Email of the root admin account (created/promoted on startup, cannot be demoted)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LABHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		FirebaseCredentialsFile: appValues.String("firebase_credentials_file"),
		FirebaseProjectID:       appValues.String("firebase_project_id"),

		RootAdminEmail: appValues.String("root_admin_email"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// LabHub validates the MongoDB URI format to catch configuration errors
// before attempting to connect, and requires a root admin email — without it
// nobody could ever reach the admin surface.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.RootAdminEmail == "" {
		return fmt.Errorf("root_admin_email must be set (LABHUB_ROOT_ADMIN_EMAIL)")
	}

	return nil
}
