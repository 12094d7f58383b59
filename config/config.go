// Package config loads the calculator's settings from defaults, an optional
// YAML file and INTEREST_* environment variables.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	Storage   StorageConfig   `mapstructure:"storage" validate:"required"`
	Display   DisplayConfig   `mapstructure:"display" validate:"required"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// RateLimitConfig sizes the per-client token bucket in front of the API.
type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity" validate:"gt=0"`
	Refill   time.Duration `mapstructure:"refill" validate:"gt=0"`
}

// StorageConfig selects where the calculator state is kept.
type StorageConfig struct {
	Backend       string `mapstructure:"backend" validate:"required,oneof=memory redis"`
	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" validate:"gte=0"`
	StateKey      string `mapstructure:"state_key" validate:"required"`
}

type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol" validate:"required"`
}
