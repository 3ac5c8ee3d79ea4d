// internal/app/system/identity/reconciler.go
package identity

import (
	"context"

	"github.com/dalemusser/labhub/internal/app/system/normalize"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.uber.org/zap"
)

// SyncFields holds the linkage fields a reconciliation pass may update on an
// existing account. Empty fields are left untouched.
type SyncFields struct {
	UID         string
	Role        string
	DisplayName string
}

// IsZero reports whether no field would change.
func (s SyncFields) IsZero() bool {
	return s.UID == "" && s.Role == "" && s.DisplayName == ""
}

// UserStore is the account persistence the Reconciler needs. Lookup methods
// return (nil, nil) when no account matches, and a non-nil error only for
// store failures.
type UserStore interface {
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	Sync(ctx context.Context, u *models.User, upd SyncFields) error
}

// Reconciler maps a verified identity onto exactly one local account.
//
// Lookup order is uid first, then email. An account found by email with no
// uid gets the uid attached (account linking for manually provisioned
// accounts). An unseen email creates a new account: role admin when the email
// is the configured root-admin email, member otherwise. Repeat calls with the
// same identity are no-ops after the first; at most one write happens per call.
type Reconciler struct {
	users          UserStore
	rootAdminEmail string
	log            *zap.Logger
}

// NewReconciler builds a Reconciler. rootAdminEmail comes from configuration
// and is normalized once here.
func NewReconciler(users UserStore, rootAdminEmail string, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		users:          users,
		rootAdminEmail: normalize.Email(rootAdminEmail),
		log:            logger,
	}
}

// Reconcile resolves ident to its account, creating or syncing as needed.
func (rc *Reconciler) Reconcile(ctx context.Context, ident Identity) (*models.User, error) {
	email := normalize.Email(ident.Email)
	if email == "" {
		return nil, ErrNoEmail
	}
	name := normalize.Name(ident.DisplayName)

	var u *models.User
	var err error

	if ident.SubjectID != "" {
		u, err = rc.users.FindByUID(ctx, ident.SubjectID)
		if err != nil {
			return nil, err
		}
	}
	if u == nil {
		u, err = rc.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
	}

	if u == nil {
		role := models.RoleMember
		if email == rc.rootAdminEmail {
			role = models.RoleAdmin
		}
		created, err := rc.users.Create(ctx, models.User{
			UID:         ident.SubjectID,
			Email:       email,
			DisplayName: name,
			Role:        role,
		})
		if err != nil {
			return nil, err
		}
		rc.log.Info("account created on first login",
			zap.String("email", email),
			zap.String("role", role))
		return &created, nil
	}

	// Existing account: sync linkage fields, writing only when something
	// actually changed.
	var upd SyncFields
	if u.UID == "" && ident.SubjectID != "" {
		upd.UID = ident.SubjectID
	}
	if email == rc.rootAdminEmail && u.Role != models.RoleAdmin {
		upd.Role = models.RoleAdmin
	}
	if u.DisplayName == "" && name != "" {
		upd.DisplayName = name
	}

	if !upd.IsZero() {
		if err := rc.users.Sync(ctx, u, upd); err != nil {
			return nil, err
		}
		if upd.UID != "" {
			rc.log.Info("linked provider uid to account", zap.String("email", email))
		}
		if upd.Role != "" {
			rc.log.Info("root admin role restored", zap.String("email", email))
		}
	}

	return u, nil
}
