package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Downstream DownstreamConfig `mapstructure:"downstream" validate:"required"`
	CORS       CORSConfig       `mapstructure:"cors"       validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains the token validation trust parameters.
// All three trust values must be supplied externally; none is ever hard-coded.
type AuthConfig struct {
	// JWTSecret is the symmetric signing key used to verify bearer tokens.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// Issuer is the exact issuer claim a token must carry to be accepted.
	Issuer string `mapstructure:"issuer" validate:"required"`

	// Audience is the exact audience claim a token must carry to be accepted.
	Audience string `mapstructure:"audience" validate:"required"`

	// TokenLifetimeMinutes is the lifetime applied when minting tokens
	// locally (development fixtures; production tokens come from the
	// identity process behind the downstream login operation).
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// ClockSkewSeconds is the leeway allowed when validating time claims.
	// Zero means expiry is enforced exactly.
	ClockSkewSeconds int `mapstructure:"clock_skew_seconds" validate:"gte=0"`
}

// DownstreamConfig contains the connection settings for the sales-data service.
type DownstreamConfig struct {
	BaseURL        string `mapstructure:"base_url"        validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// CORSConfig contains the cross-origin policy settings. A single dashboard
// origin is permitted, any method, any header.
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required,url"`
}
