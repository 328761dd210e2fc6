package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ticket-monarch/internal/infra"
	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DBTX = (*pgxpool.Pool)(nil)

const (
	selectStateSQL = `SELECT value FROM funnel_state WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`
	upsertStateSQL = `INSERT INTO funnel_state (key, value, expires_at, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = now()`
	deleteStateSQL = `DELETE FROM funnel_state WHERE key = $1`
	purgeStateSQL  = `DELETE FROM funnel_state WHERE expires_at IS NOT NULL AND expires_at <= $1`
)

// TxRunner runs fn inside one transaction, see uow.PostgresUoW.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// PostgresStore keeps records in the funnel_state table. Expiry is judged
// by the injected clock, not the database clock.
type PostgresStore struct {
	db     DBTX
	tx     TxRunner
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
}

func NewPostgresStore(db DBTX, clk clock.Clock, ttl time.Duration, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{db: db, clock: clk, ttl: ttl, logger: logger}
}

// WithTransactions makes Batch atomic.
func (s *PostgresStore) WithTransactions(tx TxRunner) *PostgresStore {
	s.tx = tx
	return s
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, selectStateSQL, key, s.clock.Now().UTC()).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapStoreErr(s.logger, infra.KindNotFound, "key not found", nil)
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "select funnel state failed", err)
	}
	return raw, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	expiresAt := pgconv.ExpiryToPgtype(s.clock.Now(), s.ttl)
	if _, err := s.db.Exec(ctx, upsertStateSQL, key, value, expiresAt); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "upsert funnel state failed", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, deleteStateSQL, key); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "delete funnel state failed", err)
	}
	return nil
}

// Batch applies the writes then the deletes. Without a TxRunner the
// statements run one by one on the pool.
func (s *PostgresStore) Batch(ctx context.Context, set map[string][]byte, del []string) error {
	if s.tx == nil {
		return s.applyBatch(ctx, set, del)
	}
	err := s.tx.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return NewPostgresStore(tx, s.clock, s.ttl, s.logger).applyBatch(ctx, set, del)
	})
	if err != nil && !infra.IsKind(err, infra.KindDBFailure) {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, "funnel state transaction failed", err)
	}
	return err
}

func (s *PostgresStore) applyBatch(ctx context.Context, set map[string][]byte, del []string) error {
	for key, value := range set {
		if err := s.Set(ctx, key, value); err != nil {
			return err
		}
	}
	for _, key := range del {
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// PurgeExpired removes rows past their expiry and reports how many were dropped.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, purgeStateSQL, s.clock.Now().UTC())
	if err != nil {
		return 0, infra.WrapStoreErr(s.logger, infra.KindDBFailure, "purge funnel state failed", err)
	}
	return tag.RowsAffected(), nil
}
