package config

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Defaults have already been applied, so only the
// fields without defaults are checked here.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upstream.BaseURL == "" {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Upstream.RateLimit < 0 || cfg.Upstream.RateBurst < 0 {
		return ErrInvalidUpstreamConfigs
	}

	return nil
}
