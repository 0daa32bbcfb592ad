// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_EMAIL", "admin@folio.dev")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

/*
TestLoad_Defaults verifies defaults for a minimal memory-backed setup.
*/
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("AUTH_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, config.AuthModeToken, cfg.AuthMode)
	assert.Equal(t, 24*time.Hour, cfg.AuthTokenTTL)
	assert.Equal(t, "admin-token", cfg.AuthStaticToken)
	assert.Equal(t, 5, cfg.MediaMaxSizeMB)
	assert.Equal(t, int64(5*1024*1024), cfg.MediaMaxBytes())
	assert.False(t, cfg.MediaDeleteBlobs)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_MissingAdmin fails without the admin identity.
*/
func TestLoad_MissingAdmin(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("AUTH_TOKEN_SECRET", "0123456789abcdef0123456789abcdef")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestValidate_CrossFieldRules covers driver and auth-mode dependencies.
*/
func TestValidate_CrossFieldRules(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			StorageDriver:   config.DriverMemory,
			AuthMode:        config.AuthModeToken,
			AuthTokenSecret: "secret",
			AuthStaticToken: "admin-token",
			MediaMaxSizeMB:  5,
		}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"valid_memory", func(*config.Config) {}, true},
		{"postgres_without_url", func(c *config.Config) { c.StorageDriver = config.DriverPostgres }, false},
		{"postgres_with_url", func(c *config.Config) {
			c.StorageDriver = config.DriverPostgres
			c.DatabaseURL = "postgres://localhost/folio"
		}, true},
		{"unknown_driver", func(c *config.Config) { c.StorageDriver = "sqlite" }, false},
		{"token_without_secret", func(c *config.Config) { c.AuthTokenSecret = "" }, false},
		{"static_mode", func(c *config.Config) {
			c.AuthMode = config.AuthModeStatic
			c.AuthTokenSecret = ""
		}, true},
		{"static_blank_marker", func(c *config.Config) {
			c.AuthMode = config.AuthModeStatic
			c.AuthStaticToken = "  "
		}, false},
		{"zero_upload_limit", func(c *config.Config) { c.MediaMaxSizeMB = 0 }, false},
		{"endpoint_without_public_url", func(c *config.Config) { c.ObjectStoreEndpoint = "s3.local:9000" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestLoad_CORSOrigins splits the comma-separated allow-list.
*/
func TestLoad_CORSOrigins(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("AUTH_MODE", "static")
	t.Setenv("CORS_ORIGINS", "https://docs.example.com,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://docs.example.com", "https://admin.example.com"}, cfg.AllowedOrigins())
}
