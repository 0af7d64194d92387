package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abgdnv/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	var cfg config.Config
	cfg.HTTPServer.Port = 8080
	cfg.HTTPServer.Timeout.Read = time.Second
	cfg.HTTPServer.Timeout.Write = time.Second
	cfg.HTTPServer.Timeout.Idle = time.Second
	cfg.HTTPServer.Timeout.ReadHeader = time.Second
	cfg.GRPC.Port = "9090"
	return &cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_SetupDependencies_Backends(t *testing.T) {
	catalogFile := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogFile, []byte(`
items:
  - id: 7
    name: Canvas Tote
    price: 2999
    categories: [Accessories]
    rating: 3
`), 0o600))

	testCases := []struct {
		name      string
		mutate    func(c *config.Config)
		wantItems int
		wantErr   bool
	}{
		{name: "memory listing", mutate: func(*config.Config) {}, wantItems: 6},
		{name: "memory extended", mutate: func(c *config.Config) { c.Catalog.Seed = "extended" }, wantItems: 18},
		{name: "yaml file", mutate: func(c *config.Config) {
			c.Catalog.Source = config.SourceYAML
			c.Catalog.File = catalogFile
		}, wantItems: 1},
		{name: "sqlite favorites", mutate: func(c *config.Config) {
			c.Favorites.Backend = config.BackendSQLite
			c.Favorites.SQLite.Path = filepath.Join(t.TempDir(), "favorites.db")
		}, wantItems: 6},
		{name: "missing yaml file", mutate: func(c *config.Config) {
			c.Catalog.Source = config.SourceYAML
			c.Catalog.File = filepath.Join(t.TempDir(), "missing.yaml")
		}, wantErr: true},
		{name: "postgres without pool", mutate: func(c *config.Config) {
			c.Catalog.Source = config.SourcePostgres
			c.Database.URL = "postgres://localhost/db"
			c.Database.Timeout = time.Second
		}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := testConfig()
			tc.mutate(cfg)
			require.NoError(t, cfg.Validate())

			// when
			deps, err := SetupDependencies(cfg, nil, nil, discardLogger())

			// then
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, deps.Close()) })
			items, err := deps.Items.FindAll(context.Background())
			require.NoError(t, err)
			assert.Len(t, items, tc.wantItems)
			assert.NoError(t, deps.Health.Check(context.Background()))
		})
	}
}

func Test_SetupHttpHandler_Routes(t *testing.T) {
	deps, err := SetupDependencies(testConfig(), nil, nil, discardLogger())
	require.NoError(t, err)
	handler := SetupHttpHandler(deps)

	testCases := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/v1/products", http.StatusOK},
		{http.MethodGet, "/api/v1/products/1", http.StatusOK},
		{http.MethodGet, "/api/v1/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/favorites", http.StatusOK},
		{http.MethodPost, "/api/v1/favorites/1/toggle", http.StatusOK},
		{http.MethodGet, "/api/v1/users?q=an", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.code, rr.Code)
		})
	}
}

func Test_SetupServers(t *testing.T) {
	cfg := testConfig()
	deps, err := SetupDependencies(cfg, nil, nil, discardLogger())
	require.NoError(t, err)

	httpServer := SetupHttpServer(deps, cfg)
	assert.Equal(t, ":8080", httpServer.Addr)
	assert.Equal(t, time.Second, httpServer.ReadTimeout)

	grpcServer := SetupGrpcServer(deps, cfg)
	assert.Contains(t, grpcServer.GetServiceInfo(), "grpc.health.v1.Health")
}
