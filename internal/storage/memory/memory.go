package memory

// Package memory provides the default in-memory implementation. State lives as long
// as the process; a restart starts from an empty guestbook and the configured seed counters.
import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tinoosan/portfolio/internal/errs"
	"github.com/tinoosan/portfolio/internal/portfolio"
)

// Store is an in-memory implementation of the guestbook and like stores.
// It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries []portfolio.GuestbookEntry
	// lastID is the highest id ever assigned; deleted ids are never reissued
	lastID int64
	likes  map[string]int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source for new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New constructs an empty in-memory store.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		likes: make(map[string]int64),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SeedLikes sets initial counters for keys that have none yet.
// Negative values are clamped to zero.
func (s *Store) SeedLikes(seed map[string]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range seed {
		if _, ok := s.likes[k]; !ok {
			s.likes[k] = max(v, 0)
		}
	}
}

// ListGuestbookEntries returns a copy of all entries in insertion order.
func (s *Store) ListGuestbookEntries(_ context.Context) ([]portfolio.GuestbookEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]portfolio.GuestbookEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// CreateGuestbookEntry assigns the next id and the current time and appends the entry.
func (s *Store) CreateGuestbookEntry(_ context.Context, name, message string) (portfolio.GuestbookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	e := portfolio.GuestbookEntry{
		ID:        s.lastID,
		Name:      name,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	s.entries = append(s.entries, e)
	return e, nil
}

// DeleteGuestbookEntry removes the entry with the given id.
func (s *Store) DeleteGuestbookEntry(_ context.Context, id int64) (portfolio.GuestbookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return e, nil
		}
	}
	return portfolio.GuestbookEntry{}, errs.NotFound(fmt.Sprintf("no guestbook entry with id %d", id))
}

// LikeCount returns the counter for key, zero when never written.
func (s *Store) LikeCount(_ context.Context, key string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.likes[key], nil
}

// AdjustLikes adds delta to the counter for key, flooring at zero.
// A decrement of an absent key leaves it absent.
func (s *Store) AdjustLikes(_ context.Context, key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.likes[key]
	if !ok && delta <= 0 {
		return 0, nil
	}
	cur = max(cur+delta, 0)
	s.likes[key] = cur
	return cur, nil
}
