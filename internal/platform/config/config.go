// Copyright (c) 2026 Historical Places Explorer. All rights reserved.
// Author: red4golf

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
  - DI-Friendly: Passed to core components (stores, services) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Historical Places API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// ContentRoot is the filesystem directory holding all persisted content
	// (locations/, locations/drafts/, media/, stories/).
	ContentRoot string `env:"CONTENT_ROOT" envDefault:"./content"`

	// MaxUploadBytes is the ceiling for a single media upload.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	// ApprovePreserveLabels controls whether approving a draft carries the
	// draft's historicalPeriods and tags into the verified record. The
	// historical behavior is to reset both to empty.
	ApprovePreserveLabels bool `env:"APPROVE_PRESERVE_LABELS" envDefault:"false"`

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

// # Content Layout

// LocationsDir returns the partition directory for verified locations.
func (c *Config) LocationsDir() string {
	return filepath.Join(c.ContentRoot, "locations")
}

// DraftsDir returns the partition directory for draft locations.
func (c *Config) DraftsDir() string {
	return filepath.Join(c.ContentRoot, "locations", "drafts")
}

// MediaDir returns the partition directory for a given media kind.
func (c *Config) MediaDir(kind string) string {
	return filepath.Join(c.ContentRoot, "media", kind)
}

// StoriesDir returns the directory holding narrative documents.
func (c *Config) StoriesDir() string {
	return filepath.Join(c.ContentRoot, "stories")
}
