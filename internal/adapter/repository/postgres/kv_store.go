package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/paisa/internal/domain"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// KVStore implements usecase.KeyValueStore on the postgres kv table.
type KVStore struct {
	db      querier
	retrier *Retrier
	close   func()
}

// NewKVStore creates a KVStore backed by pool.
func NewKVStore(pool *pgxpool.Pool, retrier *Retrier) *KVStore {
	return &KVStore{db: pool, retrier: retrier, close: pool.Close}
}

func newKVStoreWithQuerier(db querier, retrier *Retrier) *KVStore {
	return &KVStore{db: db, retrier: retrier, close: func() {}}
}

const (
	getQuery    = `SELECT value FROM kv WHERE key = $1`
	upsertQuery = `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteQuery = `DELETE FROM kv WHERE key = $1`
)

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.retrier.Retry(ctx, func() error {
		return s.db.QueryRow(ctx, getQuery, key).Scan(&value)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get %q: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	err := s.retrier.Retry(ctx, func() error {
		_, err := s.db.Exec(ctx, upsertQuery, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("postgres put %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	err := s.retrier.Retry(ctx, func() error {
		_, err := s.db.Exec(ctx, deleteQuery, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("postgres delete %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the underlying pool.
func (s *KVStore) Close() error {
	s.close()
	return nil
}
