package guestbook_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinoosan/portfolio/internal/errs"
	"github.com/tinoosan/portfolio/internal/portfolio"
	"github.com/tinoosan/portfolio/internal/service/guestbook"
	"github.com/tinoosan/portfolio/internal/storage/memory"
	"github.com/tinoosan/portfolio/internal/storage/storagetest"
)

func newService(t *testing.T) (guestbook.Service, *memory.Store) {
	t.Helper()
	store := memory.New(memory.WithClock(storagetest.StepClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))))
	return guestbook.New(store), store
}

func TestCreate_TrimsAndAssignsIDs(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, "  Alice ", "\thello\n")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Alice", a.Name)
	assert.Equal(t, "hello", a.Message)

	b, err := svc.Create(ctx, "Bob", "hi")
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.ID)
	assert.True(t, b.CreatedAt.After(a.CreatedAt))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []int64{2, 1}, []int64{list[0].ID, list[1].ID})
}

func TestCreate_RejectsBlankFields(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	for _, tc := range []struct{ name, message string }{
		{"", "msg"},
		{"Alice", ""},
		{"   ", "msg"},
		{"Alice", " \n "},
	} {
		_, err := svc.Create(ctx, tc.name, tc.message)
		assert.True(t, errors.Is(err, errs.ErrInvalid), "(%q, %q): %v", tc.name, tc.message, err)
	}
	entries, err := store.ListGuestbookEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDelete_NotFoundAndIdempotent(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Delete(ctx, 999)
	assert.True(t, errors.Is(err, errs.ErrNotFound))

	e, err := svc.Create(ctx, "Alice", "hello")
	require.NoError(t, err)
	deleted, err := svc.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, deleted)

	_, err = svc.Delete(ctx, e.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = svc.Delete(ctx, 0)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestParseID(t *testing.T) {
	for raw, want := range map[string]int64{"1": 1, " 42 ": 42, "007": 7, "1.0": 1, "1e3": 1000, "+5": 5} {
		got, err := guestbook.ParseID(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"", "   ", "abc", "12abc", "NaN", "1,5"} {
		_, err := guestbook.ParseID(raw)
		assert.True(t, errors.Is(err, errs.ErrInvalid), "%q: %v", raw, err)
		assert.False(t, errors.Is(err, errs.ErrNotFound))
	}
	for _, raw := range []string{"1.5", "-0.25", "Inf", "1e400", "1e19"} {
		_, err := guestbook.ParseID(raw)
		assert.True(t, errors.Is(err, errs.ErrNotFound), "%q: %v", raw, err)
	}
}

func TestSortNewestFirst_StableTies(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []portfolio.GuestbookEntry{
		{ID: 1, CreatedAt: t0},
		{ID: 2, CreatedAt: t0.Add(time.Minute)},
		{ID: 3, CreatedAt: t0},
		{ID: 4, CreatedAt: t0.Add(time.Minute)},
	}
	guestbook.SortNewestFirst(entries)
	got := make([]int64, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.ID)
	}
	assert.Equal(t, []int64{2, 4, 1, 3}, got)
}

type failingStore struct{ guestbook.Store }

func (failingStore) ListGuestbookEntries(context.Context) ([]portfolio.GuestbookEntry, error) {
	return nil, errors.New("connection reset")
}

func TestList_PropagatesStoreErrors(t *testing.T) {
	svc := guestbook.New(failingStore{})
	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "connection reset")
}
