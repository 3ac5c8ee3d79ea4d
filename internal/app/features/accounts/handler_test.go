package accounts_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/labhub/internal/app/features/accounts"
	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/dalemusser/labhub/internal/testutil"
	"go.uber.org/zap"
)

const rootEmail = "root@lab.example.edu"

func newTestHandler(t *testing.T) (*accounts.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return accounts.NewHandler(userstore.New(db), rootEmail, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestList_RequiresAdmin(t *testing.T) {
	h, _ := newTestHandler(t)
	router := accounts.AdminRoutes(h)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.LeadUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d for lead on admin surface, want 403", rec.Code)
	}
}

func TestList_ReturnsAccounts(t *testing.T) {
	h, fixtures := newTestHandler(t)
	router := accounts.AdminRoutes(h)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fixtures.CreateUser(ctx, "Someone", "someone@lab.example.edu", models.RoleMember, nil)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/", testutil.AdminUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var users []models.User
	testutil.DecodeJSON(t, rec, &users)
	if len(users) != 1 || users[0].Email != "someone@lab.example.edu" {
		t.Errorf("unexpected listing: %+v", users)
	}
}

func TestRoleChange(t *testing.T) {
	h, fixtures := newTestHandler(t)
	router := accounts.AdminRoutes(h)
	admin := testutil.AdminUser()

	ctx, cancel := testutil.TestContext()
	defer cancel()
	target := fixtures.CreateUser(ctx, "Target", "target@lab.example.edu", models.RoleMember, nil)
	rootUser := fixtures.CreateUser(ctx, "Root", rootEmail, models.RoleAdmin, nil)

	tests := []struct {
		name string
		id   string
		role string
		want int
	}{
		{"promote to lead", target.ID.Hex(), models.RoleLead, http.StatusOK},
		{"unknown role", target.ID.Hex(), "superuser", http.StatusBadRequest},
		{"root admin locked", rootUser.ID.Hex(), models.RoleMember, http.StatusForbidden},
		{"bad id", "nope", models.RoleLead, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPatch, "/"+tt.id+"/role",
				map[string]string{"role": tt.role}, admin)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestManualCreate(t *testing.T) {
	h, _ := newTestHandler(t)
	router := accounts.AdminRoutes(h)
	admin := testutil.AdminUser()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/manual", map[string]string{
		"email":        "new.person@lab.example.edu",
		"display_name": "New Person",
		"role":         models.RoleAdvisor,
	}, admin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var created models.User
	testutil.DecodeJSON(t, rec, &created)
	if created.Role != models.RoleAdvisor {
		t.Errorf("role = %q, want advisor", created.Role)
	}

	// Same email again: role update path, not a duplicate.
	req = testutil.NewJSONRequest(t, http.MethodPost, "/manual", map[string]string{
		"email": "new.person@lab.example.edu",
		"role":  models.RoleDirector,
	}, admin)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d on re-provision, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var updated models.User
	testutil.DecodeJSON(t, rec, &updated)
	if updated.Role != models.RoleDirector {
		t.Errorf("role = %q after re-provision, want director", updated.Role)
	}
	if updated.ID != created.ID {
		t.Error("re-provision created a second account")
	}
}

func TestManualCreate_MissingEmail(t *testing.T) {
	h, _ := newTestHandler(t)
	router := accounts.AdminRoutes(h)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/manual",
		map[string]string{"role": models.RoleMember}, testutil.AdminUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
