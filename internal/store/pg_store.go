package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abgdnv/storefront/internal/catalog"
	serrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectItems = `SELECT id, name, price, categories, rating, image FROM items`
	featured    = ` ORDER BY position, id`
)

// PgStore implements ItemStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ItemStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// FindAll retrieves all items ordered by their featured position.
func (p *PgStore) FindAll(ctx context.Context) ([]catalog.Item, error) {
	rows, err := p.db.Query(ctx, selectItems+featured)
	if err != nil {
		return nil, fmt.Errorf("failed to find all items: %w", err)
	}
	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan items: %w", err)
	}
	return items, nil
}

// FindByID retrieves an item by its unique identifier.
// Returns ErrItemNotFound if no item exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*catalog.Item, error) {
	rows, err := p.db.Query(ctx, selectItems+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	return &item, nil
}

// Insert stores items, using their slice order as featured position.
func (p *PgStore) Insert(ctx context.Context, items []catalog.Item) error {
	batch := &pgx.Batch{}
	for i, item := range items {
		batch.Queue(`INSERT INTO items (id, name, price, categories, rating, image, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.Name, item.Price, item.Categories, item.Rating, item.Image, i)
	}
	if err := p.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert items: %w", err)
	}
	return nil
}

func scanItem(row pgx.CollectableRow) (catalog.Item, error) {
	var (
		item   catalog.Item
		rating int16
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Categories, &rating, &item.Image); err != nil {
		return catalog.Item{}, err
	}
	item.Rating = int(rating)
	return item, nil
}
