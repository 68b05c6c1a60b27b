// Package sqlite provides a database/sql store backed by modernc.org/sqlite.
// It keeps guestbook entries and like counters in a single file, or in memory with ":memory:".
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tinoosan/portfolio/internal/errs"
	"github.com/tinoosan/portfolio/internal/portfolio"
)

const schema = `
CREATE TABLE IF NOT EXISTS guestbook_entries (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL,
	message    TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS likes (
	key   TEXT    PRIMARY KEY,
	count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0)
);
`

// Store is a persistent guestbook and like store. A single connection is used,
// which serializes writers and keeps ":memory:" databases coherent.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source for new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (or creates) the database at dsn and initialises the schema.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}
	s := &Store{db: db, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Ready pings the database.
func (s *Store) Ready(ctx context.Context) error { return s.db.PingContext(ctx) }

// SeedLikes inserts counters for keys that have none yet.
func (s *Store) SeedLikes(ctx context.Context, seed map[string]int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for k, v := range seed {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO likes (key, count) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
			k, max(v, 0),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListGuestbookEntries returns all entries in insertion order.
func (s *Store) ListGuestbookEntries(ctx context.Context) ([]portfolio.GuestbookEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, message, created_at FROM guestbook_entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]portfolio.GuestbookEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateGuestbookEntry inserts an entry. AUTOINCREMENT keeps deleted ids retired.
func (s *Store) CreateGuestbookEntry(ctx context.Context, name, message string) (portfolio.GuestbookEntry, error) {
	e := portfolio.GuestbookEntry{Name: name, Message: message, CreatedAt: s.now().UTC()}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO guestbook_entries (name, message, created_at) VALUES (?, ?, ?) RETURNING id`,
		name, message, e.CreatedAt.UnixNano(),
	).Scan(&e.ID)
	if err != nil {
		return portfolio.GuestbookEntry{}, err
	}
	return e, nil
}

// DeleteGuestbookEntry removes the entry and returns the deleted row.
func (s *Store) DeleteGuestbookEntry(ctx context.Context, id int64) (portfolio.GuestbookEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM guestbook_entries WHERE id = ? RETURNING id, name, message, created_at`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return portfolio.GuestbookEntry{}, errs.NotFound(fmt.Sprintf("no guestbook entry with id %d", id))
	}
	return e, err
}

// LikeCount returns the counter for key, zero when absent.
func (s *Store) LikeCount(ctx context.Context, key string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT count FROM likes WHERE key = ?`, key).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

// AdjustLikes applies delta in a single statement. Increments upsert the key;
// decrements only touch an existing row and floor at zero.
func (s *Store) AdjustLikes(ctx context.Context, key string, delta int64) (int64, error) {
	var n int64
	var err error
	if delta > 0 {
		err = s.db.QueryRowContext(ctx, `
			INSERT INTO likes (key, count) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET count = count + excluded.count
			RETURNING count`, key, delta).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx,
			`UPDATE likes SET count = MAX(count + ?, 0) WHERE key = ? RETURNING count`, delta, key).Scan(&n)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
	}
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (portfolio.GuestbookEntry, error) {
	var e portfolio.GuestbookEntry
	var created int64
	if err := sc.Scan(&e.ID, &e.Name, &e.Message, &created); err != nil {
		return portfolio.GuestbookEntry{}, err
	}
	e.CreatedAt = time.Unix(0, created).UTC()
	return e, nil
}
