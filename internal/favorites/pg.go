package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore implements KVStore using the PostgreSQL favorites table.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

func (p *PgStore) Load(ctx context.Context, key string) (Set, bool, error) {
	var ids []int64
	err := p.db.QueryRow(ctx, `SELECT item_ids FROM favorites WHERE key = $1`, key).Scan(&ids)
	if errors.Is(err, pgx.ErrNoRows) {
		return Set{}, false, nil
	}
	if err != nil {
		return Set{}, false, fmt.Errorf("failed to load favorites %q: %w", key, err)
	}
	return NewSet(ids...), true, nil
}

func (p *PgStore) Save(ctx context.Context, key string, set Set) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO favorites (key, item_ids, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET item_ids = EXCLUDED.item_ids, updated_at = now()`,
		key, set.IDs())
	if err != nil {
		return fmt.Errorf("failed to save favorites %q: %w", key, err)
	}
	return nil
}
