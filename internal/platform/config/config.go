// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/sellora/sellora/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Sellora API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// EncryptionSecret derives the AES key that protects stored credentials.
	// Rotating it invalidates every stored password, so treat it as permanent.
	EncryptionSecret string `env:"ENCRYPTION_SECRET,required"`

	// JWTSecret signs and verifies access tokens (HS256).
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTL is the lifetime of issued access tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the full set of origins permitted for CORS.
//
// The base set covers the Sellora web clients; EXTRA_ORIGINS appends
// comma-separated additions (e.g. staging previews).
func (c *Config) AllowedOrigins() []string {
	origins := []string{
		"https://sellora.app",
		"https://www.sellora.app",
		"https://admin.sellora.app",
	}

	return append(origins, query.StringSlice(c.ExtraOrigins)...)
}
