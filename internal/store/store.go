// Package store provides the sources the storefront loads its catalog items from.
package store

import (
	"context"

	"github.com/abgdnv/storefront/internal/catalog"
)

// ItemStore is an interface for item storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, file, database).
type ItemStore interface {
	// FindAll returns every item in featured order.
	// Returns an empty slice if no items exist.
	FindAll(ctx context.Context) ([]catalog.Item, error)

	// FindByID retrieves a single item by its unique identifier.
	// Returns ErrItemNotFound if no item exists with the given ID.
	FindByID(ctx context.Context, id int64) (*catalog.Item, error)
}
