package service

import "errors"

var (
	// ErrTokenCreationFailed is returned when signing a session token
	// fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
	// ErrTokenIsExpiredOrInvalid covers every token validation failure:
	// bad signature, wrong issuer, malformed or expired token.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
