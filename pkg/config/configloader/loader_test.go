package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Port int `koanf:"port"`
	} `koanf:"server"`
	Catalog struct {
		Seed string `koanf:"seed"`
	} `koanf:"catalog"`
}

func (c *testConfig) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("port is required")
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Load_Precedence(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "config.yaml", "server:\n  port: 8080\ncatalog:\n  seed: listing\n")
	envPath := writeFile(t, dir, ".env", "TESTSVC_CATALOG_SEED=extended\n")

	t.Run("yaml then dotenv", func(t *testing.T) {
		// when
		cfg, err := Load[*testConfig]("testsvc", WithConfigFile(yamlPath), WithEnvFile(envPath))
		// then
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "extended", cfg.Catalog.Seed)
	})

	t.Run("system env wins", func(t *testing.T) {
		// given
		t.Setenv("TESTSVC_SERVER_PORT", "9090")
		// when
		cfg, err := Load[*testConfig]("testsvc", WithConfigFile(yamlPath), WithEnvFile(envPath))
		// then
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
	})
}

func Test_Load_MissingFilesFailValidation(t *testing.T) {
	dir := t.TempDir()
	_, err := Load[*testConfig]("testsvc",
		WithConfigFile(filepath.Join(dir, "missing.yaml")),
		WithEnvFile(filepath.Join(dir, "missing.env")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
