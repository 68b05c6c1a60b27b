// Package guestbook implements the guestbook rules: trimmed non-empty fields,
// store-assigned ids that are never reused, and newest-first listing.
package guestbook

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tinoosan/portfolio/internal/errs"
	"github.com/tinoosan/portfolio/internal/portfolio"
)

// Store persists guestbook entries. Implementations assign ID and CreatedAt
// and must serialize concurrent creates so ids stay strictly increasing.
type Store interface {
	// ListGuestbookEntries returns all entries in insertion order.
	ListGuestbookEntries(ctx context.Context) ([]portfolio.GuestbookEntry, error)
	// CreateGuestbookEntry appends a new entry with the next unused id.
	CreateGuestbookEntry(ctx context.Context, name, message string) (portfolio.GuestbookEntry, error)
	// DeleteGuestbookEntry removes the entry and returns it, or errs.ErrNotFound.
	DeleteGuestbookEntry(ctx context.Context, id int64) (portfolio.GuestbookEntry, error)
}

type Service interface {
	List(ctx context.Context) ([]portfolio.GuestbookEntry, error)
	Create(ctx context.Context, name, message string) (portfolio.GuestbookEntry, error)
	Delete(ctx context.Context, id int64) (portfolio.GuestbookEntry, error)
}

type service struct {
	store Store
}

func New(store Store) Service { return &service{store: store} }

// List returns entries ordered by CreatedAt descending. Entries with equal
// timestamps keep their insertion order.
func (s *service) List(ctx context.Context) ([]portfolio.GuestbookEntry, error) {
	entries, err := s.store.ListGuestbookEntries(ctx)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(entries)
	return entries, nil
}

func (s *service) Create(ctx context.Context, name, message string) (portfolio.GuestbookEntry, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return portfolio.GuestbookEntry{}, errs.Invalid("name and message are both required")
	}
	return s.store.CreateGuestbookEntry(ctx, name, message)
}

func (s *service) Delete(ctx context.Context, id int64) (portfolio.GuestbookEntry, error) {
	if id <= 0 {
		return portfolio.GuestbookEntry{}, errs.NotFound(fmt.Sprintf("no guestbook entry with id %d", id))
	}
	return s.store.DeleteGuestbookEntry(ctx, id)
}

// ParseID coerces a caller-supplied identifier to an entry id. Any numeric
// form is accepted ("1", "1.0", "1e3"). Missing and non-numeric values are
// errs.ErrInvalid; numbers that cannot name an entry (fractions, out of
// range) are errs.ErrNotFound.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errs.Invalid("id is required (?id=number)")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errs.Invalid("id must be a number")
	}
	if math.IsNaN(f) {
		return 0, errs.Invalid("id must be a number")
	}
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errs.NotFound(fmt.Sprintf("no guestbook entry with id %s", raw))
	}
	return int64(f), nil
}
