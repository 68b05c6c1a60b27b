package postgres

// Package postgres provides a pgx-backed storage implementation that satisfies
// the guestbook and like store interfaces used by the services.
//
// The schema is embedded and applied by Migrate. Identity columns never hand out
// a value twice, so deleted guestbook ids stay retired.

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinoosan/portfolio/internal/errs"
	"github.com/tinoosan/portfolio/internal/portfolio"
)

//go:embed schema.sql
var schemaSQL string

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source for new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	s := &Store{pool: pool, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: apply schema: %w", err)
	}
	return nil
}

// SeedLikes inserts counters for keys that have none yet.
func (s *Store) SeedLikes(ctx context.Context, seed map[string]int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	for k, v := range seed {
		if _, err := tx.Exec(ctx, `insert into likes (key, count) values ($1, $2) on conflict (key) do nothing`, k, max(v, 0)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// --- Guestbook ---

// ListGuestbookEntries returns all entries in insertion order.
func (s *Store) ListGuestbookEntries(ctx context.Context) ([]portfolio.GuestbookEntry, error) {
	rows, err := s.pool.Query(ctx, `select id, name, message, created_at from guestbook_entries order by id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]portfolio.GuestbookEntry, 0)
	for rows.Next() {
		var e portfolio.GuestbookEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.CreatedAt = e.CreatedAt.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateGuestbookEntry inserts a row and returns it with its assigned id.
func (s *Store) CreateGuestbookEntry(ctx context.Context, name, message string) (portfolio.GuestbookEntry, error) {
	// timestamptz keeps microseconds; truncate so the returned value matches what is stored
	e := portfolio.GuestbookEntry{Name: name, Message: message, CreatedAt: s.now().UTC().Truncate(time.Microsecond)}
	err := s.pool.QueryRow(ctx, `
		insert into guestbook_entries (name, message, created_at)
		values ($1, $2, $3)
		returning id
	`, name, message, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return portfolio.GuestbookEntry{}, err
	}
	return e, nil
}

// DeleteGuestbookEntry removes the entry and returns the deleted row.
func (s *Store) DeleteGuestbookEntry(ctx context.Context, id int64) (portfolio.GuestbookEntry, error) {
	var e portfolio.GuestbookEntry
	err := s.pool.QueryRow(ctx, `
		delete from guestbook_entries where id = $1
		returning id, name, message, created_at
	`, id).Scan(&e.ID, &e.Name, &e.Message, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return portfolio.GuestbookEntry{}, errs.NotFound(fmt.Sprintf("no guestbook entry with id %d", id))
	}
	if err != nil {
		return portfolio.GuestbookEntry{}, err
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

// --- Likes ---

// LikeCount returns the counter for key, zero when absent.
func (s *Store) LikeCount(ctx context.Context, key string) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `select count from likes where key = $1`, key).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

// AdjustLikes applies delta atomically. Increments upsert; decrements only
// touch an existing row and floor at zero.
func (s *Store) AdjustLikes(ctx context.Context, key string, delta int64) (int64, error) {
	var n int64
	if delta > 0 {
		err := s.pool.QueryRow(ctx, `
			insert into likes (key, count) values ($1, $2)
			on conflict (key) do update set count = likes.count + excluded.count
			returning count
		`, key, delta).Scan(&n)
		return n, err
	}
	err := s.pool.QueryRow(ctx, `
		update likes set count = greatest(count + $2, 0) where key = $1
		returning count
	`, key, delta).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return n, err
}
