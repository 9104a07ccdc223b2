package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authpanel/internal/common"
	"github.com/dmitrijs2005/authpanel/internal/dbx"
)

// kvRepository runs the queries against either the database or a
// transaction.
type kvRepository struct {
	db dbx.DBTX
}

func (r kvRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get record[%s]: %w", key, err)
	}
	return value, nil
}

func (r kvRepository) set(ctx context.Context, key string, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set record[%s]: %w", key, err)
	}
	return nil
}

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	return kvRepository{db: s.db}.get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	return kvRepository{db: s.db}.set(ctx, key, value)
}

func (s *SQLiteStore) Update(ctx context.Context, key string, fn func(string) (string, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kvRepository{db: tx}

		cur, err := r.get(ctx, key)
		if err != nil {
			return err
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		return r.set(ctx, key, next)
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
