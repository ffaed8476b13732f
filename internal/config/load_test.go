package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing.
// An empty value unsets the variable for the duration of the test.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	originalSet := make(map[string]bool)
	for name := range envVars {
		originalValues[name], originalSet[name] = os.LookupEnv(name)
	}

	for name, value := range envVars {
		var err error
		if value == "" {
			err = os.Unsetenv(name)
		} else {
			err = os.Setenv(name, value)
		}
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if originalSet[name] {
				os.Setenv(name, value)
			} else {
				os.Unsetenv(name)
			}
		}
	}
}

// clearedEnv unsets every variable Load reads so tests start from defaults.
func clearedEnv() map[string]string {
	return map[string]string{
		"TODO_SERVER_HOST":                     "",
		"TODO_SERVER_PORT":                     "",
		"TODO_SERVER_DEBUG":                    "",
		"TODO_SERVER_LOG_LEVEL":                "",
		"TODO_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "",
		"TODO_APP_NAME":                        "",
		"TODO_APP_VERSION":                     "",
		"TODO_CORS_ALLOWED_ORIGINS":            "",
		"HOST":                                 "",
		"PORT":                                 "",
		"DEBUG":                                "",
		"FLASK_DEBUG":                          "",
	}
}

func withEnv(overrides map[string]string) map[string]string {
	env := clearedEnv()
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, clearedEnv())
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 5000, cfg.Server.Port, "Default server port should be 5000")
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.True(t, cfg.Server.Debug, "Debug should default to true")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "Welcome to Todo API", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.BindAddress(), "Debug mode binds to loopback")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, withEnv(map[string]string{
		"TODO_SERVER_HOST":          "10.0.0.5",
		"TODO_SERVER_PORT":          "9090",
		"TODO_SERVER_DEBUG":         "false",
		"TODO_SERVER_LOG_LEVEL":     "debug",
		"TODO_APP_VERSION":          "2.0.0",
		"TODO_CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
	}))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "10.0.0.5:9090", cfg.Server.BindAddress())
}

// TestLoadLegacyEnv verifies the unprefixed launcher variables and their precedence.
func TestLoadLegacyEnv(t *testing.T) {
	t.Run("unprefixed variables are honoured", func(t *testing.T) {
		cleanup := setupEnv(t, withEnv(map[string]string{
			"HOST":  "192.168.1.10",
			"PORT":  "8081",
			"DEBUG": "0",
		}))
		defer cleanup()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "192.168.1.10:8081", cfg.Server.BindAddress())
		assert.False(t, cfg.Server.Debug)
	})

	t.Run("launcher debug flag is honoured", func(t *testing.T) {
		cleanup := setupEnv(t, withEnv(map[string]string{
			"FLASK_DEBUG": "0",
		}))
		defer cleanup()

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Server.Debug)
	})

	t.Run("DEBUG wins over the launcher debug flag", func(t *testing.T) {
		cleanup := setupEnv(t, withEnv(map[string]string{
			"DEBUG":       "true",
			"FLASK_DEBUG": "0",
		}))
		defer cleanup()

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Server.Debug)
	})

	t.Run("prefixed variables win", func(t *testing.T) {
		cleanup := setupEnv(t, withEnv(map[string]string{
			"PORT":             "8081",
			"TODO_SERVER_PORT": "8082",
		}))
		defer cleanup()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8082, cfg.Server.Port)
	})
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Invalid port number",
			envVars:        map[string]string{"TODO_SERVER_PORT": "999999"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"TODO_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Negative shutdown timeout",
			envVars:        map[string]string{"TODO_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "-1"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Non-numeric port",
			envVars:        map[string]string{"TODO_SERVER_PORT": "not-a-port"},
			errorSubstring: "unmarshalling",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, withEnv(tc.envVars))
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestBindAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want string
	}{
		{"debug forces loopback", ServerConfig{Host: "0.0.0.0", Port: 5000, Debug: true}, "127.0.0.1:5000"},
		{"production uses host", ServerConfig{Host: "0.0.0.0", Port: 5000}, "0.0.0.0:5000"},
		{"ipv6 host", ServerConfig{Host: "::1", Port: 8080}, "[::1]:8080"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.BindAddress())
		})
	}
}
