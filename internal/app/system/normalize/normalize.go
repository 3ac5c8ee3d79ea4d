// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied strings.
// Every store write and every lookup must go through these so that lookups by
// email, role, and status behave the same regardless of how the value arrived.
package normalize

import "strings"

// Email lowercases and trims an email address. Email is the durable identity
// key, so all comparisons and stored values use this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
