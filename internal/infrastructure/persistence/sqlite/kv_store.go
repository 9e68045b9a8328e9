package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/emojipick/internal/domain/repository"
	"github.com/bnema/emojipick/internal/logging"
)

const (
	getValueQuery = `SELECT value FROM kv_store WHERE key = ?`
	setValueQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteValueQuery = `DELETE FROM kv_store WHERE key = ?`
)

type kvStore struct {
	lazy *LazyDB
}

// Compile-time interface check.
var _ repository.KeyValueStore = (*kvStore)(nil)

// NewKeyValueStore creates a SQLite-backed key-value store. The database at
// dbPath is opened on the first read or write.
func NewKeyValueStore(dbPath string) repository.KeyValueStore {
	return &kvStore{lazy: NewLazyDB(dbPath)}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return nil, err
	}

	var value []byte
	err = db.QueryRowContext(ctx, getValueQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Int("bytes", len(value)).Msg("setting value")

	db, err := s.lazy.DB(ctx)
	if err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, setValueQuery, key, value); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, deleteValueQuery, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) Close() error {
	return s.lazy.Close()
}
