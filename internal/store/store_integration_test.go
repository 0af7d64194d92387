package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	serrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/abgdnv/storefront/pkg/bootstrap"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const skipIntegrationTests = "STOREFRONT_SKIP_INTEGRATION_TESTS"

// ItemStoreSuite runs PgStore against a real PostgreSQL container.
type ItemStoreSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	store       *PgStore
	logger      *slog.Logger
	ctx         context.Context
}

func (s *ItemStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// 1. Start a PostgreSQL container and wait until it accepts connections.
	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	// 2. Apply migrations
	wd, _ := os.Getwd()
	require.NoError(s.T(), bootstrap.RunMigrations(connStr, filepath.Join(wd, "..", "..", "migrations")))
	s.logger.Info("Migrations applied for integration tests")

	// 3. Connect
	s.dbPool, err = bootstrap.NewDbPool(s.ctx, connStr, 30*time.Second)
	require.NoError(s.T(), err, "Failed to create pgxpool")
	s.store = NewPgStore(s.dbPool)
}

func (s *ItemStoreSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}

// SetupTest truncates the items table before each test.
func (s *ItemStoreSuite) SetupTest() {
	_, err := s.dbPool.Exec(s.ctx, "TRUNCATE TABLE items")
	require.NoError(s.T(), err, "Failed to truncate items table")
}

func TestItemStoreIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(ItemStoreSuite))
}

func (s *ItemStoreSuite) TestInsertAndFindAll_KeepsFeaturedOrder() {
	seed, err := Seed(SeedExtended)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Insert(s.ctx, seed))

	items, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), items, len(seed))
	for i := range seed {
		assert.Equal(s.T(), seed[i], items[i])
	}
}

func (s *ItemStoreSuite) TestFindByID() {
	seed, err := Seed(SeedListing)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Insert(s.ctx, seed))

	item, err := s.store.FindByID(s.ctx, 5)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Running Shoes", item.Name)
	assert.Equal(s.T(), int64(11999), item.Price)

	_, err = s.store.FindByID(s.ctx, 404)
	assert.ErrorIs(s.T(), err, serrors.ErrItemNotFound)
}

func (s *ItemStoreSuite) TestFindAll_Empty() {
	items, err := s.store.FindAll(s.ctx)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), items)
}
