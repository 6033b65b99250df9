package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every session token issued by the
// gateway. It embeds the registered JWT claims (iss, sub, iat, exp) and adds
// the authorization claims the internal surface relies on.
//
// For the same user the non-time claims are stable across issuances; only
// iat/exp (and therefore the signature) change.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username is the login handle of the authenticated user.
	Username string `json:"username"`

	// Role is the lowercase wire form of the user's role.
	Role string `json:"role"`
}
