// Package app contains the application setup for the storefront service.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/directory"
	"github.com/abgdnv/storefront/internal/favorites"
	"github.com/abgdnv/storefront/internal/service"
	"github.com/abgdnv/storefront/internal/store"
	grpcImpl "github.com/abgdnv/storefront/internal/transport/grpc"
	"github.com/abgdnv/storefront/internal/transport/rest"
	"github.com/abgdnv/storefront/pkg/messaging"
	"github.com/abgdnv/storefront/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type Dependencies struct {
	Items            store.ItemStore
	CatalogService   service.CatalogService
	FavoritesService *favorites.Service
	DirectoryService *directory.Service
	Health           *grpcImpl.Health
	Logger           *slog.Logger

	closers []io.Closer
}

// SetupDependencies builds the item store and favorites backend selected by cfg.
// dbPool may be nil unless cfg uses postgres; publisher may be nil to disable events.
func SetupDependencies(cfg *config.Config, dbPool *pgxpool.Pool, publisher messaging.Publisher, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: logger}

	items, err := newItemStore(cfg.Catalog, dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to set up catalog source: %w", err)
	}
	kv, err := deps.newFavoritesStore(cfg.Favorites, dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to set up favorites backend: %w", err)
	}

	deps.Items = items
	deps.CatalogService = service.NewService(items)
	deps.FavoritesService = favorites.NewService(kv, publisher, logger)
	deps.DirectoryService = directory.NewService(directory.NewMemorySource(directory.MockUsers(), cfg.Directory.Latency))
	deps.Health = grpcImpl.NewHealth(func(ctx context.Context) error {
		_, err := items.FindAll(ctx)
		return err
	}, logger)
	return deps, nil
}

func newItemStore(cfg config.CatalogConfig, dbPool *pgxpool.Pool) (store.ItemStore, error) {
	switch cfg.Source {
	case config.SourceYAML:
		return store.NewYAMLStore(cfg.File)
	case config.SourcePostgres:
		if dbPool == nil {
			return nil, errors.New("postgres catalog source requires a database pool")
		}
		return store.NewPgStore(dbPool), nil
	default:
		return store.NewSeededStore(cfg.Seed)
	}
}

func (d *Dependencies) newFavoritesStore(cfg config.FavoritesConfig, dbPool *pgxpool.Pool) (favorites.KVStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := favorites.NewSQLiteStore(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, s)
		return s, nil
	case config.BackendPostgres:
		if dbPool == nil {
			return nil, errors.New("postgres favorites backend requires a database pool")
		}
		return favorites.NewPgStore(dbPool), nil
	default:
		return favorites.NewMemoryStore(), nil
	}
}

// Close releases resources opened by SetupDependencies.
func (d *Dependencies) Close() error {
	var errs []error
	for _, c := range d.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// SetupHttpHandler initializes the routes and middleware of the storefront API.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.CatalogService, deps.FavoritesService, deps.DirectoryService, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the storefront application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
		Traced:         cfg.Telemetry.Enabled,
	}

	return server.NewHTTPServer(httpCfg, mux)
}

// SetupGrpcServer initializes the gRPC server exposing the health service.
func SetupGrpcServer(deps *Dependencies, cfg *config.Config) *grpc.Server {
	grpcCfg := server.GRPCConfig{
		Reflection: cfg.GRPC.ReflectionEnabled,
		Traced:     cfg.Telemetry.Enabled,
	}
	return server.NewGRPCServer(grpcCfg, deps.Health.Register)
}
