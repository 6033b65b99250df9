package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the gateway.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing key, issuer,
	// and token lifetime.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds the upstream catalog/identity provider settings:
	// base address, request timeout, and the outbound rate limit.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance.
type App struct {
	// TokenSignKey is the symmetric key used to sign and verify session
	// tokens. Loaded once at startup, never rotated at runtime.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "168h"). Defaults to 7 days.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Upstream holds the settings of the upstream catalog/identity provider.
type Upstream struct {
	// BaseURL is the base address of the upstream provider
	// (e.g. "https://dummyjson.com"). All endpoint paths are resolved
	// relative to it.
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout applied to every outbound
	// upstream call (e.g. "15s").
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of outbound requests per second sent
	// to the upstream provider. 0 disables outbound rate limiting.
	// Env: UPSTREAM_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the outbound rate limiter. Ignored
	// when RateLimit is 0; defaults to 1 when RateLimit is set.
	// Env: UPSTREAM_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Defaults applied by build() to fields all sources left at zero.
const (
	DefaultTokenIssuer     = "storegate"
	DefaultTokenDuration   = 7 * 24 * time.Hour
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultUpstreamTimeout = 15 * time.Second
)

// GetStructuredConfig loads, merges, and validates the gateway configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
