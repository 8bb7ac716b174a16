package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "APP_DEBUG", "DB_HOST", "DB_PORT", "DB_MAX_CONNECTIONS", "DB_MIN_CONNECTIONS", "DB_RETRY_DELAY", "DB_MAX_RETRIES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("DB_MAX_CONNECTIONS", "10")
	t.Setenv("DB_MIN_CONNECTIONS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)

	db := cfg.DBConfig()
	assert.Equal(t, int32(10), db.MaxConns)
	assert.Equal(t, int32(2), db.MinConns)
	assert.Equal(t, 6543, db.Port)
}

func TestLoad_MalformedValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("DB_RETRY_DELAY", "soon")
	t.Setenv("APP_DEBUG", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
	assert.False(t, cfg.App.Debug)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"production_without_password", func(c *Config) { c.App.Environment = "production" }, "DB_PASSWORD"},
		{"production_with_password", func(c *Config) { c.App.Environment = "production"; c.Database.Password = "s3cret" }, ""},
		{"min_above_max", func(c *Config) { c.Database.MinConns = 30 }, "DB_MIN_CONNECTIONS"},
		{"zero_max", func(c *Config) { c.Database.MaxConns = 0; c.Database.MinConns = 0 }, "DB_MAX_CONNECTIONS"},
		{"zero_retries", func(c *Config) { c.Database.MaxRetries = 0 }, "DB_MAX_RETRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:      AppConfig{Environment: "development", Port: "3000"},
				Database: DatabaseConfig{MaxConns: 25, MinConns: 5, MaxRetries: 3},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
