// Package config provides configuration loading and validation for the CLI and API server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// EnvPrefix is prepended to every environment override, e.g. RESUME_AGENT_SERVER_PORT
const EnvPrefix = "RESUME_AGENT"

// Config is the full application configuration.
// Values come from defaults, then an optional config file, then the environment.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Optimizer OptimizerConfig `mapstructure:"optimizer"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Fetch     FetchConfig     `mapstructure:"fetch"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORSOrigin   string        `mapstructure:"cors_origin"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// OptimizerConfig holds the defaults applied to optimization requests that omit options.
// A zero Seed means verb and template choices use the process random source.
type OptimizerConfig struct {
	DefaultMaxKeywords int    `mapstructure:"default_max_keywords" validate:"gt=0"`
	Rescore            bool   `mapstructure:"rescore"`
	Seed               uint64 `mapstructure:"seed"`
}

type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit" validate:"gte=0"`
	DefaultWindow   time.Duration `mapstructure:"default_window" validate:"gte=0"`
	OptimizeLimit   int           `mapstructure:"optimize_limit" validate:"gte=0"`
	OptimizeWindow  time.Duration `mapstructure:"optimize_window" validate:"gte=0"`
	OptimizeBurst   int           `mapstructure:"optimize_burst" validate:"gte=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"gte=0"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

type AuthConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	JWTSecret       string `mapstructure:"jwt_secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"gte=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

type FetchConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent  string        `mapstructure:"user_agent"`
	UseBrowser bool          `mapstructure:"use_browser"`
}

// setDefaults registers every default on v. Keys must be registered for
// AutomaticEnv to pick up environment overrides during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origin", "*")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("optimizer.default_max_keywords", types.DefaultMaxKeywords)
	v.SetDefault("optimizer.rescore", false)
	v.SetDefault("optimizer.seed", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 600)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.optimize_limit", 60)
	v.SetDefault("rate_limit.optimize_window", time.Minute)
	v.SetDefault("rate_limit.optimize_burst", 10)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.expiration_hours", 24)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Hour)

	v.SetDefault("database.url", "")

	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "resume-optimizer")

	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.user_agent", "resume-optimizer/1.0")
	v.SetDefault("fetch.use_browser", false)
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	cfg, err := load(viper.New(), "")
	if err != nil {
		// defaults are static and always decode
		panic(err)
	}
	return cfg
}

// Load reads configuration from path (json, yaml or toml; empty to skip) and
// the RESUME_AGENT_* environment, then validates it.
func Load(path string) (*Config, error) {
	cfg, err := load(viper.New(), path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigError{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Message: "failed to decode config", Cause: err}
	}
	return &cfg, nil
}

// Validate checks field ranges and cross-field requirements
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ConfigError{Field: fe.Namespace(), Message: fmt.Sprintf("failed '%s' check", fe.Tag()), Cause: err}
		}
		return &ConfigError{Message: "invalid configuration", Cause: err}
	}

	if c.Auth.Enabled {
		if _, err := c.Auth.JWT(); err != nil {
			return err
		}
	}
	if c.RateLimit.Enabled && c.RateLimit.DefaultLimit > 0 && c.RateLimit.DefaultWindow <= 0 {
		return &ConfigError{Field: "rate_limit.default_window", Message: "must be positive when a default limit is set"}
	}
	return nil
}

// OptimizationOptions returns the default optimization options this configuration implies
func (c *Config) OptimizationOptions() types.OptimizationOptions {
	opts := types.DefaultOptimizationOptions()
	if c.Optimizer.DefaultMaxKeywords > 0 {
		opts.MaxKeywords = c.Optimizer.DefaultMaxKeywords
	}
	opts.Rescore = c.Optimizer.Rescore
	return opts
}
