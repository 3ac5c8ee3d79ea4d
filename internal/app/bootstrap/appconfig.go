// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// environment). AppConfig carries everything specific to LabHub: the Mongo
// connection, the identity provider credentials, and the root admin account.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Firebase identity provider configuration
	FirebaseCredentialsFile string // Path to service-account JSON (blank uses ADC)
	FirebaseProjectID       string // Firebase project id (blank derives from credentials)

	// RootAdminEmail is the account that always has the admin role. It is
	// created on startup if missing and can never be demoted.
	RootAdminEmail string
}
