package normalize_test

import (
	"testing"

	"github.com/dalemusser/labhub/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"User@Example.EDU", "user@example.edu"},
		{"  padded@example.edu  ", "padded@example.edu"},
		{"already@example.edu", "already@example.edu"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalize.Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := normalize.Name("  Ada Lovelace  "); got != "Ada Lovelace" {
		t.Errorf("Name preserved case or trim wrong: %q", got)
	}
}

func TestRole(t *testing.T) {
	if got := normalize.Role(" Lead "); got != "lead" {
		t.Errorf("Role(%q) = %q, want lead", " Lead ", got)
	}
}

func TestStatus(t *testing.T) {
	if got := normalize.Status(" Approved"); got != "approved" {
		t.Errorf("Status = %q, want approved", got)
	}
}
