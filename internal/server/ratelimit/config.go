package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/resume-optimizer/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// FromConfig builds the limiter configuration from the rate_limit config section.
func FromConfig(cfg config.RateLimitConfig) *Config {
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    cfg.DefaultLimit,
		DefaultWindow:   cfg.DefaultWindow,
		CleanupInterval: cfg.CleanupInterval,
		Whitelist:       parseIPList(cfg.Whitelist),
		Blacklist:       parseIPList(cfg.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(cfg.OptimizeLimit, cfg.OptimizeWindow, cfg.OptimizeBurst),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations.
// Optimization and batch scoring share the strict tier; everything else uses the default limit.
func DefaultEndpointConfigs(limit int, window time.Duration, burst int) []EndpointConfig {
	if limit <= 0 || window <= 0 {
		return nil
	}
	return []EndpointConfig{
		{Path: "/v1/optimize", Method: "POST", Limit: limit, Window: window, Burst: burst},
		{Path: "/v1/score/batch", Method: "POST", Limit: limit, Window: window, Burst: burst},
	}
}

// parseIPList turns a list of addresses into a lookup set, dropping blanks.
func parseIPList(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
