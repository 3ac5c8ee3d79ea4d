package rolepolicy_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/labhub/internal/app/policy/rolepolicy"
	"github.com/dalemusser/labhub/internal/domain/models"
)

const rootEmail = "director@lab.example.edu"

func TestDecideRoleChange(t *testing.T) {
	tests := []struct {
		name    string
		target  models.User
		newRole string
		wantErr error
	}{
		{
			name:    "promote member to lead",
			target:  models.User{Email: "member@lab.example.edu", Role: models.RoleMember},
			newRole: models.RoleLead,
			wantErr: nil,
		},
		{
			name:    "unknown role",
			target:  models.User{Email: "member@lab.example.edu", Role: models.RoleMember},
			newRole: "superuser",
			wantErr: rolepolicy.ErrUnknownRole,
		},
		{
			name:    "role with stray casing accepted",
			target:  models.User{Email: "member@lab.example.edu", Role: models.RoleMember},
			newRole: " Lead ",
			wantErr: nil,
		},
		{
			name:    "demoting root admin locked",
			target:  models.User{Email: rootEmail, Role: models.RoleAdmin},
			newRole: models.RoleMember,
			wantErr: rolepolicy.ErrRootAdminLocked,
		},
		{
			name:    "reaffirming root admin allowed",
			target:  models.User{Email: rootEmail, Role: models.RoleAdmin},
			newRole: models.RoleAdmin,
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rolepolicy.DecideRoleChange(&tt.target, tt.newRole, rootEmail)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecideRoleChange() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecideRoleChange_RootEmailCasing(t *testing.T) {
	target := models.User{Email: rootEmail, Role: models.RoleAdmin}
	err := rolepolicy.DecideRoleChange(&target, models.RoleMember, "Director@Lab.Example.EDU")
	if !errors.Is(err, rolepolicy.ErrRootAdminLocked) {
		t.Errorf("lock should survive config casing, got %v", err)
	}
}
