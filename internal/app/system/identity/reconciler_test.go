// internal/app/system/identity/reconciler_test.go
package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/labhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeUserStore is an in-memory UserStore that counts writes so tests can
// assert the at-most-one-write contract.
type fakeUserStore struct {
	users   []*models.User
	creates int
	syncs   int
	failAll bool
}

var errStore = errors.New("store unavailable")

func (f *fakeUserStore) FindByUID(_ context.Context, uid string) (*models.User, error) {
	if f.failAll {
		return nil, errStore
	}
	for _, u := range f.users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.failAll {
		return nil, errStore
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(_ context.Context, u models.User) (models.User, error) {
	if f.failAll {
		return models.User{}, errStore
	}
	f.creates++
	u.ID = primitive.NewObjectID()
	stored := u
	f.users = append(f.users, &stored)
	return u, nil
}

func (f *fakeUserStore) Sync(_ context.Context, u *models.User, upd SyncFields) error {
	if f.failAll {
		return errStore
	}
	f.syncs++
	if upd.UID != "" {
		u.UID = upd.UID
	}
	if upd.Role != "" {
		u.Role = upd.Role
	}
	if upd.DisplayName != "" {
		u.DisplayName = upd.DisplayName
	}
	return nil
}

const rootEmail = "director@lab.example.edu"

func newTestReconciler(store *fakeUserStore) *Reconciler {
	return NewReconciler(store, rootEmail, zap.NewNop())
}

func TestReconcileRejectsMissingEmail(t *testing.T) {
	rc := newTestReconciler(&fakeUserStore{})
	_, err := rc.Reconcile(context.Background(), Identity{SubjectID: "uid-1"})
	if !errors.Is(err, ErrNoEmail) {
		t.Fatalf("expected ErrNoEmail, got %v", err)
	}
}

func TestReconcileCreatesMemberOnFirstLogin(t *testing.T) {
	store := &fakeUserStore{}
	rc := newTestReconciler(store)

	u, err := rc.Reconcile(context.Background(), Identity{
		SubjectID:   "uid-1",
		Email:       "Grad.Student@Lab.Example.edu",
		DisplayName: "Grad Student",
	})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if u.Role != models.RoleMember {
		t.Errorf("role = %q, want %q", u.Role, models.RoleMember)
	}
	if u.Email != "grad.student@lab.example.edu" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.UID != "uid-1" {
		t.Errorf("uid = %q, want uid-1", u.UID)
	}
	if store.creates != 1 {
		t.Errorf("creates = %d, want 1", store.creates)
	}
}

func TestReconcileCreatesAdminForRootEmail(t *testing.T) {
	store := &fakeUserStore{}
	rc := newTestReconciler(store)

	u, err := rc.Reconcile(context.Background(), Identity{
		SubjectID: "uid-root",
		Email:     "Director@Lab.Example.EDU",
	})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", u.Role, models.RoleAdmin)
	}
}

func TestReconcileLinksUIDToManualAccount(t *testing.T) {
	existing := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "manual@lab.example.edu",
		Role:  models.RoleLead,
	}
	store := &fakeUserStore{users: []*models.User{existing}}
	rc := newTestReconciler(store)

	u, err := rc.Reconcile(context.Background(), Identity{
		SubjectID: "uid-new",
		Email:     "manual@lab.example.edu",
	})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if u.ID != existing.ID {
		t.Fatal("expected the existing account, got a new one")
	}
	if u.UID != "uid-new" {
		t.Errorf("uid = %q, want uid-new", u.UID)
	}
	if u.Role != models.RoleLead {
		t.Errorf("role changed during linking: %q", u.Role)
	}
	if store.creates != 0 {
		t.Errorf("creates = %d, want 0", store.creates)
	}
	if store.syncs != 1 {
		t.Errorf("syncs = %d, want 1", store.syncs)
	}
}

func TestReconcileRestoresRootAdminRole(t *testing.T) {
	existing := &models.User{
		ID:    primitive.NewObjectID(),
		UID:   "uid-root",
		Email: rootEmail,
		Role:  models.RoleMember, // demoted out of band
	}
	store := &fakeUserStore{users: []*models.User{existing}}
	rc := newTestReconciler(store)

	u, err := rc.Reconcile(context.Background(), Identity{SubjectID: "uid-root", Email: rootEmail})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", u.Role, models.RoleAdmin)
	}
	if store.syncs != 1 {
		t.Errorf("syncs = %d, want 1", store.syncs)
	}
}

func TestReconcileAdoptsDisplayNameWhenEmpty(t *testing.T) {
	existing := &models.User{
		ID:    primitive.NewObjectID(),
		UID:   "uid-1",
		Email: "quiet@lab.example.edu",
		Role:  models.RoleMember,
	}
	store := &fakeUserStore{users: []*models.User{existing}}
	rc := newTestReconciler(store)

	u, err := rc.Reconcile(context.Background(), Identity{
		SubjectID:   "uid-1",
		Email:       "quiet@lab.example.edu",
		DisplayName: "Quiet Person",
	})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if u.DisplayName != "Quiet Person" {
		t.Errorf("display name = %q, want adopted", u.DisplayName)
	}
}

func TestReconcileKeepsLocalDisplayName(t *testing.T) {
	existing := &models.User{
		ID:          primitive.NewObjectID(),
		UID:         "uid-1",
		Email:       "named@lab.example.edu",
		DisplayName: "Local Name",
		Role:        models.RoleMember,
	}
	store := &fakeUserStore{users: []*models.User{existing}}
	rc := newTestReconciler(store)

	u, err := rc.Reconcile(context.Background(), Identity{
		SubjectID:   "uid-1",
		Email:       "named@lab.example.edu",
		DisplayName: "Provider Name",
	})
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if u.DisplayName != "Local Name" {
		t.Errorf("display name = %q, want local name kept", u.DisplayName)
	}
	if store.syncs != 0 {
		t.Errorf("syncs = %d, want 0", store.syncs)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	store := &fakeUserStore{}
	rc := newTestReconciler(store)
	ident := Identity{SubjectID: "uid-1", Email: "repeat@lab.example.edu", DisplayName: "Repeat"}

	first, err := rc.Reconcile(context.Background(), ident)
	if err != nil {
		t.Fatalf("first Reconcile: %v", err)
	}
	second, err := rc.Reconcile(context.Background(), ident)
	if err != nil {
		t.Fatalf("second Reconcile: %v", err)
	}
	if first.ID != second.ID {
		t.Error("repeat login produced a different account")
	}
	if store.creates != 1 {
		t.Errorf("creates = %d, want 1", store.creates)
	}
	if store.syncs != 0 {
		t.Errorf("syncs = %d, want 0", store.syncs)
	}
}

func TestReconcilePropagatesStoreErrors(t *testing.T) {
	rc := newTestReconciler(&fakeUserStore{failAll: true})
	_, err := rc.Reconcile(context.Background(), Identity{SubjectID: "uid-1", Email: "x@lab.example.edu"})
	if !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
}
