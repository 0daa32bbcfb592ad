// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Admin gate modes.
const (
	AuthModeToken  = "token"
	AuthModeStatic = "static"
)

// # Configuration Schema

// Config holds all runtime configuration for the Folio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// StorageDriver selects where chapters, pages and media rows live.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	// Relational Database (PostgreSQL)
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`

	// Key-Value store (Redis) for the revocation epoch. Optional.
	RedisURL string `env:"REDIS_URL"`

	// Admin identity
	AdminEmail        string `env:"ADMIN_EMAIL,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Marker issuance
	AuthMode        string        `env:"AUTH_MODE"         envDefault:"token"`
	AuthTokenSecret string        `env:"AUTH_TOKEN_SECRET"`
	AuthTokenTTL    time.Duration `env:"AUTH_TOKEN_TTL"    envDefault:"24h"`
	AuthStaticToken string        `env:"AUTH_STATIC_TOKEN" envDefault:"admin-token"`

	// Object Storage (any S3-compatible endpoint)
	ObjectStoreEndpoint  string `env:"OBJECT_STORE_ENDPOINT"`
	ObjectStoreAccessKey string `env:"OBJECT_STORE_ACCESS_KEY"`
	ObjectStoreSecretKey string `env:"OBJECT_STORE_SECRET_KEY"`
	ObjectStoreBucket    string `env:"OBJECT_STORE_BUCKET"     envDefault:"media"`
	ObjectStoreRegion    string `env:"OBJECT_STORE_REGION"`
	ObjectStoreUseSSL    bool   `env:"OBJECT_STORE_USE_SSL"    envDefault:"true"`
	ObjectStorePublicURL string `env:"OBJECT_STORE_PUBLIC_URL"`

	// Media limits
	MediaMaxSizeMB   int  `env:"MEDIA_MAX_SIZE_MB"  envDefault:"5"`
	MediaDeleteBlobs bool `env:"MEDIA_DELETE_BLOBS" envDefault:"false"`

	// Cross-Origin Resource Sharing (production allow-list)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate enforces the rules that span more than one variable.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.StorageDriver))
	}

	switch c.AuthMode {
	case AuthModeToken:
		if c.AuthTokenSecret == "" {
			errs = append(errs, errors.New("AUTH_TOKEN_SECRET is required when AUTH_MODE=token"))
		}
	case AuthModeStatic:
		if strings.TrimSpace(c.AuthStaticToken) == "" {
			errs = append(errs, errors.New("AUTH_STATIC_TOKEN must not be empty when AUTH_MODE=static"))
		}
	default:
		errs = append(errs, fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeToken, AuthModeStatic, c.AuthMode))
	}

	if c.MediaMaxSizeMB <= 0 {
		errs = append(errs, errors.New("MEDIA_MAX_SIZE_MB must be positive"))
	}

	if c.ObjectStoreEndpoint != "" && c.ObjectStorePublicURL == "" {
		errs = append(errs, errors.New("OBJECT_STORE_PUBLIC_URL is required when OBJECT_STORE_ENDPOINT is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// MediaMaxBytes returns the upload limit in bytes.
func (c *Config) MediaMaxBytes() int64 {
	return int64(c.MediaMaxSizeMB) << 20
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + c.ServerPort
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the production CORS allow-list.
func (c *Config) AllowedOrigins() []string {
	return c.CORSOrigins
}
