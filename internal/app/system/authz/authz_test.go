// internal/app/system/authz/authz_test.go
package authz

import (
	"testing"

	"github.com/dalemusser/labhub/internal/domain/models"
)

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(&models.User{Role: models.RoleAdmin}) {
		t.Error("admin should be admin")
	}
	if IsAdmin(&models.User{Role: models.RoleLead}) {
		t.Error("lead is not admin")
	}
	if IsAdmin(nil) {
		t.Error("nil user is not admin")
	}
}

func TestIsLead(t *testing.T) {
	if !IsLead(&models.User{Role: models.RoleLead}) {
		t.Error("lead should be lead")
	}
	if IsLead(&models.User{Role: models.RoleAdmin}) {
		t.Error("admin is not lead")
	}
	if IsLead(nil) {
		t.Error("nil user is not lead")
	}
}
