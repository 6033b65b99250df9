package models

import (
	"encoding/json"
	"strings"
)

// Role is the authorization role assigned to a user by the upstream
// directory. It travels as a lowercase string on the wire ("admin",
// "moderator", "user") and is stored as a small enum internally.
type Role int

const (
	// RoleNone is the zero value: no role was present in the upstream record.
	RoleNone Role = iota
	RoleAdmin
	RoleModerator
	RoleUser
)

// String returns the lowercase wire form of the role, or an empty string
// for RoleNone.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleModerator:
		return "moderator"
	case RoleUser:
		return "user"
	default:
		return ""
	}
}

// ParseRole maps a wire value to a Role. Unknown or empty values map to
// RoleNone; matching is case-insensitive because the upstream is not
// consistent about casing.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "moderator":
		return RoleModerator
	case "user":
		return RoleUser
	default:
		return RoleNone
	}
}

// MarshalJSON encodes the role as its lowercase string form.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts the upstream's string role values.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*r = ParseRole(s)
	return nil
}

// User is a directory account as returned by the upstream provider.
// Like Product it is a request-scoped value object; nothing from it is
// persisted between requests.
type User struct {
	// ID is the upstream-assigned unique user identifier.
	ID int `json:"id"`

	// FirstName and LastName are the user's legal name parts.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Username is the unique login handle.
	Username string `json:"username"`

	// Email is the user's email address, used as the login identifier.
	Email string `json:"email"`

	// Password is the opaque credential held by the upstream. It is only
	// ever forwarded during a login exchange and never stored locally.
	Password string `json:"password,omitempty"`

	// Role is the authorization role from the upstream record. The login
	// response omits it; it is merged in from a follow-up fetch of the
	// full user record.
	Role Role `json:"role"`

	// Token is the session token issued by this gateway after a successful
	// login. It is produced per login and never persisted.
	Token string `json:"token,omitempty"`
}
