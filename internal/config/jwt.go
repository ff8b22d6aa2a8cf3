package config

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// JWT builds the token configuration for the auth section.
// A secret is required and expiration defaults to 24 hours.
func (a AuthConfig) JWT() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          a.JWTSecret,
		ExpirationHours: a.ExpirationHours,
	}
	if cfg.ExpirationHours == 0 {
		cfg.ExpirationHours = 24
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return &ConfigError{Field: "auth.jwt_secret", Message: "is required when auth is enabled"}
	}
	if c.ExpirationHours < 1 {
		return &ConfigError{Field: "auth.expiration_hours", Message: "must be at least 1 hour"}
	}
	return nil
}
