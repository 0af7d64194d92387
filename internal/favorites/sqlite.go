package favorites

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements KVStore in a local SQLite file. Values are JSON arrays of ids.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path. path may be a file: URI
// or carry its own query parameters; WAL journaling and a busy timeout are added to them.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn, err := sqliteDSN(path)
	if err != nil {
		return nil, err
	}
	return openSQLite(dsn)
}

func sqliteDSN(path string) (string, error) {
	name, rawQuery, _ := strings.Cut(path, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", fmt.Errorf("invalid database path %q: %w", path, err)
	}
	query.Add("_pragma", "journal_mode(WAL)")
	query.Add("_pragma", "busy_timeout(5000)")
	return name + "?" + query.Encode(), nil
}

// NewInMemorySQLiteStore creates a store backed by a private in-memory database.
func NewInMemorySQLiteStore() (*SQLiteStore, error) {
	return openSQLite(":memory:")
}

func openSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS favorites (
		key        TEXT PRIMARY KEY,
		item_ids   TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) (Set, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT item_ids FROM favorites WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Set{}, false, nil
	}
	if err != nil {
		return Set{}, false, fmt.Errorf("failed to load favorites %q: %w", key, err)
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return Set{}, false, fmt.Errorf("corrupt favorites %q: %w", key, err)
	}
	return NewSet(ids...), true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, set Set) error {
	raw, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO favorites (key, item_ids, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET item_ids = excluded.item_ids, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save favorites %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
