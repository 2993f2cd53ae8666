// Package config holds all environment-based configuration for ps2mcs
// and loads the ordered target list from disk.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ps2mcs/ps2mcs/internal/errors"
)

// Config is the immutable run configuration. It is constructed once by
// Load and passed down explicitly; nothing reads the environment after
// startup.
type Config struct {
	// MCP2 FTP credentials. Both are required.
	User     string `env:"MCP2_USER"`
	Password string `env:"MCP2_PWD"`

	// Address of the card's FTP server, host or host:port.
	Host string `env:"MCP2_HOST"`

	// Directory card images are synced into and out of.
	SyncDir string `env:"MCP2_SYNC_DIR" envDefault:"."`

	// File listing the card images to sync, in order. YAML by default;
	// a .json file is accepted for compatibility with older setups.
	TargetsFile string `env:"MCP2_TARGETS_FILE" envDefault:"targets.yaml"`

	// Naming strategy: "card" (per-family directory layout) or "flat"
	// (legacy flattened local names).
	Mapping string `env:"MCP2_MAPPING" envDefault:"card"`

	// BasicOutput disables the progress bar and summary coloring in
	// favor of plain carriage-return output.
	BasicOutput bool `env:"MCP2_BASIC_OUTPUT" envDefault:"false"`

	// Environment controls log format.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load reads configuration from environment variables. It first
// attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Resolve SyncDir to an absolute path at startup so every local
	// path derived from it is absolute too.
	absDir, err := filepath.Abs(cfg.SyncDir)
	if err != nil {
		return nil, fmt.Errorf("resolving sync dir to absolute path: %w", err)
	}

	cfg.SyncDir = absDir

	return cfg, nil
}

func (c *Config) validate() error {
	if c.User == "" || c.Password == "" {
		return errors.ErrMissingCredential
	}

	if c.Host == "" {
		return fmt.Errorf("MCP2_HOST is required")
	}

	if c.Mapping != "card" && c.Mapping != "flat" {
		return fmt.Errorf("MCP2_MAPPING must be \"card\" or \"flat\", got %q", c.Mapping)
	}

	return nil
}
