// Package config holds the configuration of the storefront service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/abgdnv/storefront/internal/store"
	"github.com/abgdnv/storefront/pkg/config"
	"github.com/abgdnv/storefront/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// Item sources.
const (
	SourceMemory   = "memory"
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
)

// Favorites backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
	Database   config.DatabaseConfig   `koanf:"database"`
	NATS       config.NATSConfig       `koanf:"nats"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	Catalog    CatalogConfig           `koanf:"catalog"`
	Favorites  FavoritesConfig         `koanf:"favorites"`
	Directory  DirectoryConfig         `koanf:"directory"`
}

// CatalogConfig selects where items are read from.
type CatalogConfig struct {
	Source string `koanf:"source"`
	Seed   string `koanf:"seed"`
	File   string `koanf:"file"`
}

// FavoritesConfig selects where favorites are persisted.
type FavoritesConfig struct {
	Backend string `koanf:"backend"`
	SQLite  struct {
		Path string `koanf:"path"`
	} `koanf:"sqlite"`
}

// DirectoryConfig tunes the mock user directory.
type DirectoryConfig struct {
	Latency time.Duration `koanf:"latency"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.GRPC.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	if c.UsesPostgres() {
		b.WriteString(c.Database.String())
	}
	b.WriteString(c.NATS.String())
	b.WriteString(c.Telemetry.String())

	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  source: %s\n", c.Catalog.Source))
	b.WriteString(fmt.Sprintf("  seed: %s\n", c.Catalog.Seed))
	b.WriteString(fmt.Sprintf("  file: %s\n", c.Catalog.File))

	b.WriteString("\n--- Favorites ---\n")
	b.WriteString(fmt.Sprintf("  backend: %s\n", c.Favorites.Backend))
	b.WriteString(fmt.Sprintf("  sqlite.path: %s\n", c.Favorites.SQLite.Path))

	b.WriteString("\n--- Directory ---\n")
	b.WriteString(fmt.Sprintf("  latency: %s\n", c.Directory.Latency))
	return b.String()
}

// UsesPostgres reports whether any component needs the database section.
func (c *Config) UsesPostgres() bool {
	return c.Catalog.Source == SourcePostgres || c.Favorites.Backend == BackendPostgres
}

// Validate checks if the configuration values are valid. Empty catalog and
// favorites settings fall back to the in-memory listing.
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.GRPC.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.NATS.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Favorites.Validate(); err != nil {
		return err
	}
	if c.Directory.Latency < 0 {
		return fmt.Errorf("directory latency must not be negative: %s", c.Directory.Latency)
	}
	if c.UsesPostgres() {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CatalogConfig) Validate() error {
	if c.Source == "" {
		c.Source = SourceMemory
	}
	switch c.Source {
	case SourceMemory:
		if c.Seed == "" {
			c.Seed = store.SeedListing
		}
		if _, err := store.Seed(c.Seed); err != nil {
			return err
		}
	case SourceYAML:
		if c.File == "" {
			return fmt.Errorf("catalog file is not configured")
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("unknown catalog source: %s", c.Source)
	}
	return nil
}

func (c *FavoritesConfig) Validate() error {
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	switch c.Backend {
	case BackendMemory, BackendPostgres:
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("favorites sqlite path is not configured")
		}
	default:
		return fmt.Errorf("unknown favorites backend: %s", c.Backend)
	}
	return nil
}
