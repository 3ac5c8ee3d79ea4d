// internal/app/system/identity/firebase.go
package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FirebaseVerifier verifies Firebase ID tokens via the Admin SDK.
type FirebaseVerifier struct {
	client *firebaseauth.Client
	log    *zap.Logger
}

// NewFirebaseVerifier initializes the Firebase Admin app and its auth client.
// credentialsFile may be empty, in which case application-default credentials
// are used. projectID may be empty when the credentials imply it.
func NewFirebaseVerifier(ctx context.Context, credentialsFile, projectID string, logger *zap.Logger) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase auth client: %w", err)
	}

	logger.Info("firebase verifier initialized",
		zap.String("project_id", projectID),
		zap.Bool("credentials_file", credentialsFile != ""))

	return &FirebaseVerifier{client: client, log: logger}, nil
}

// Verify checks the ID token and extracts the subject id, email, and display
// name claims. Verification failures map to ErrInvalidToken; the caller never
// sees provider-specific error types.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.log.Debug("token verification failed", zap.Error(err))
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	ident := Identity{SubjectID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		ident.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		ident.DisplayName = name
	}
	return ident, nil
}
