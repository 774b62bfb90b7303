// Package domain holds the wire-level types shared by the CLI client and the
// server, together with the claim lifecycle rules both sides enforce. The
// server is the authority of record; the client uses the same gates to refuse
// invalid actions before any network round-trip.
package domain

import "strings"

// Roles a user account can carry. Role is immutable for the lifetime
// of a session.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the authenticated account as returned by POST /api/auth/login.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
// The role comparison is case-insensitive, matching the backend.
func (u *User) IsAdmin() bool {
	return u != nil && strings.EqualFold(u.Role, RoleAdmin)
}

// UserRef is a minimal user reference embedded in items and claims.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}
