// Package utils provides small helpers shared across layers: type-safe
// context keys and accessors for values the middleware chain stores on the
// request context.
package utils

import (
	"context"

	"github.com/storegate/gateway/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages
// that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// validated token claims of the calling user.
var ClaimsCtxKey = contextKey("tokenClaims")

// GetClaimsFromContext retrieves the validated token claims from the
// context. ok is false when no claims are present or the stored value has
// an unexpected type.
func GetClaimsFromContext(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.TokenClaims)
	return claims, ok
}
