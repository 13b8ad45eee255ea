package domain

import (
	"errors"
	"strings"
	"time"
)

// Role classifies an authenticated principal.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the three enumerated roles.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleSeller || r == RoleAdmin
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSnapshotNotFound = errors.New("session snapshot not found")
var ErrForbidden = errors.New("access forbidden")

// Identity is the authenticated user's profile snapshot held by the gateway.
// An absent Identity means "not authenticated".
type Identity struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Username  string    `json:"username" bson:"username"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Role      Role      `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// IsSeller reports whether the identity may access the seller area.
// Admins satisfy seller checks.
func (i *Identity) IsSeller() bool {
	return i != nil && (i.Role == RoleSeller || i.Role == RoleAdmin)
}

// Session is the per-browser authentication state: the current Identity (or
// nil) plus a readiness flag that is true once rehydration from the snapshot
// store has completed.
type Session struct {
	Identity *Identity `json:"identity"`
	Ready    bool      `json:"ready"`
}

func (s Session) IsAdmin() bool  { return s.Identity.IsAdmin() }
func (s Session) IsSeller() bool { return s.Identity.IsSeller() }

// SplitDisplayName breaks an optional display name into first and last name
// for the backend registration payload: first word becomes the first name,
// second word the last name, anything further is dropped.
func SplitDisplayName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
