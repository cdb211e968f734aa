package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

// TestLoadDefaults verifies the defaults when only the secret is provided.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("WTWR_AUTH_JWT_SECRET", testSecret)
	t.Setenv("WTWR_SERVER_PORT", "")
	t.Setenv("WTWR_SERVER_LOG_LEVEL", "")

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Database.URI)
	assert.Equal(t, "wtwr_db", cfg.Database.Name)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WTWR_SERVER_PORT", "9090")
	t.Setenv("WTWR_SERVER_LOG_LEVEL", "debug")
	t.Setenv("WTWR_DATABASE_URI", "mongodb://db.internal:27017")
	t.Setenv("WTWR_DATABASE_NAME", "wtwr_test")
	t.Setenv("WTWR_AUTH_JWT_SECRET", testSecret)
	t.Setenv("WTWR_AUTH_TOKEN_LIFETIME", "1h")
	t.Setenv("WTWR_AUTH_BCRYPT_COST", "4")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
	assert.Equal(t, "wtwr_test", cfg.Database.Name)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

// TestLoadValidation verifies that invalid values are rejected.
func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			env:  map[string]string{"WTWR_AUTH_JWT_SECRET": ""},
		},
		{
			name: "short jwt secret",
			env:  map[string]string{"WTWR_AUTH_JWT_SECRET": "dev-key"},
		},
		{
			name: "port out of range",
			env: map[string]string{
				"WTWR_AUTH_JWT_SECRET": testSecret,
				"WTWR_SERVER_PORT":     "70000",
			},
		},
		{
			name: "unknown log level",
			env: map[string]string{
				"WTWR_AUTH_JWT_SECRET":  testSecret,
				"WTWR_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "bcrypt cost too low",
			env: map[string]string{
				"WTWR_AUTH_JWT_SECRET":  testSecret,
				"WTWR_AUTH_BCRYPT_COST": "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
