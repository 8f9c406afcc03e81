package sessiondata

import (
	"context"
	"database/sql"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/session"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/dbx"
)

// SQLiteStore implements session.Store on top of an open database. Multi-key
// writes run in one transaction so the token and the cached identity are
// never persisted half-updated.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) repo() *SQLiteRepository {
	return NewSQLiteRepository(s.db)
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.repo().Get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	return s.repo().Set(ctx, key, value)
}

func (s *SQLiteStore) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		for k, v := range values {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return s.repo().Delete(ctx, key)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo().Clear(ctx)
}

var _ session.Store = (*SQLiteStore)(nil)
