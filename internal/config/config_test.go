package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abgdnv/storefront/pkg/config/configloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  port: 8080
  timeout:
    read: 5s
    write: 10s
    idle: 60s
    readHeader: 2s
grpc:
  port: "9090"
  reflection: true
log:
  level: debug
catalog:
  source: memory
  seed: extended
favorites:
  backend: sqlite
  sqlite:
    path: /tmp/favorites.db
directory:
  latency: 250ms
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Load_FromYAML(t *testing.T) {
	// given
	path := writeFile(t, "config.yaml", validYAML)

	// when
	cfg, err := configloader.Load[*Config]("storefront_cfgtest", configloader.WithConfigFile(path), configloader.WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	// then
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "9090", cfg.GRPC.Port)
	assert.Equal(t, SourceMemory, cfg.Catalog.Source)
	assert.Equal(t, "extended", cfg.Catalog.Seed)
	assert.Equal(t, BackendSQLite, cfg.Favorites.Backend)
	assert.Equal(t, "/tmp/favorites.db", cfg.Favorites.SQLite.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Directory.Latency)
	assert.Equal(t, 15*time.Second, cfg.Shutdown.Timeout)
	assert.False(t, cfg.UsesPostgres())
	assert.Contains(t, cfg.String(), "backend: sqlite")
	assert.NotContains(t, cfg.String(), "--- Database ---")
}

func Test_Load_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", validYAML)
	t.Setenv("STOREFRONT_CFGENV_LOG_LEVEL", "error")

	cfg, err := configloader.Load[*Config]("storefront_cfgenv", configloader.WithConfigFile(path))

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func validConfig() *Config {
	c := &Config{}
	c.HTTPServer.Port = 8080
	c.HTTPServer.Timeout.Read = time.Second
	c.HTTPServer.Timeout.Write = time.Second
	c.HTTPServer.Timeout.Idle = time.Second
	c.HTTPServer.Timeout.ReadHeader = time.Second
	c.GRPC.Port = "9090"
	return c
}

func Test_Config_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown seed", mutate: func(c *Config) { c.Catalog.Seed = "nope" }, wantErr: true},
		{name: "yaml without file", mutate: func(c *Config) { c.Catalog.Source = SourceYAML }, wantErr: true},
		{name: "yaml with file", mutate: func(c *Config) { c.Catalog.Source = SourceYAML; c.Catalog.File = "catalog.yaml" }},
		{name: "unknown source", mutate: func(c *Config) { c.Catalog.Source = "redis" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.Favorites.Backend = BackendSQLite }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Favorites.Backend = "cookie" }, wantErr: true},
		{name: "postgres needs database", mutate: func(c *Config) { c.Favorites.Backend = BackendPostgres }, wantErr: true},
		{name: "postgres with database", mutate: func(c *Config) {
			c.Catalog.Source = SourcePostgres
			c.Database.URL = "postgres://u:p@localhost:5432/db"
			c.Database.Timeout = time.Second
		}},
		{name: "negative latency", mutate: func(c *Config) { c.Directory.Latency = -time.Second }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.HTTPServer.Port = 0 }, wantErr: true},
		{name: "bad shutdown", mutate: func(c *Config) { c.Shutdown.Timeout = -time.Second }, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			c := validConfig()
			tc.mutate(c)
			// when
			err := c.Validate()
			// then
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Config_Validate_AppliesDefaults(t *testing.T) {
	c := validConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, SourceMemory, c.Catalog.Source)
	assert.Equal(t, "listing", c.Catalog.Seed)
	assert.Equal(t, BackendMemory, c.Favorites.Backend)
}
