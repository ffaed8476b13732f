package config

import (
	"fmt"
	"net"
	"strconv"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	App    AppConfig    `mapstructure:"app"    validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host                   string `mapstructure:"host"                     validate:"required"`
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	Debug                  bool   `mapstructure:"debug"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// BindAddress returns the host:port the HTTP server listens on.
// Debug mode always binds to the loopback interface.
func (c ServerConfig) BindAddress() string {
	host := c.Host
	if c.Debug {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Port))
}

// AppConfig describes the service in the info endpoint.
type AppConfig struct {
	Name    string `mapstructure:"name"    validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
}

// CORSConfig controls the cross-origin headers added to every response.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAgeSeconds  int      `mapstructure:"max_age_seconds" validate:"gte=0"`
}

// String is used when logging the loaded configuration.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s debug=%t log_level=%s app=%s/%s",
		c.Server.BindAddress(), c.Server.Debug, c.Server.LogLevel, c.App.Name, c.App.Version)
}
