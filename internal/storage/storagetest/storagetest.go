// Package storagetest holds behaviour tests shared by every storage backend.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinoosan/portfolio/internal/errs"
	"github.com/tinoosan/portfolio/internal/service/guestbook"
	"github.com/tinoosan/portfolio/internal/service/likes"
)

// GuestbookFactory returns a fresh, empty store using now for timestamps.
type GuestbookFactory func(t *testing.T, now func() time.Time) guestbook.Store

// LikesFactory returns a fresh store with the given seed counters.
type LikesFactory func(t *testing.T, seed map[string]int64) likes.Store

// StepClock returns a clock that advances by one second on every call.
func StepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Second)
		return cur
	}
}

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// RunGuestbook exercises id assignment, ordering and deletion.
func RunGuestbook(t *testing.T, newStore GuestbookFactory) {
	ctx := context.Background()

	t.Run("create assigns increasing ids", func(t *testing.T) {
		s := newStore(t, StepClock(epoch))
		a, err := s.CreateGuestbookEntry(ctx, "Alice", "hello")
		require.NoError(t, err)
		b, err := s.CreateGuestbookEntry(ctx, "Bob", "hi")
		require.NoError(t, err)

		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, int64(2), b.ID)
		assert.Equal(t, "Alice", a.Name)
		assert.Equal(t, "hello", a.Message)
		assert.True(t, b.CreatedAt.After(a.CreatedAt))
	})

	t.Run("list returns every entry", func(t *testing.T) {
		s := newStore(t, StepClock(epoch))
		_, err := s.CreateGuestbookEntry(ctx, "Alice", "hello")
		require.NoError(t, err)
		_, err = s.CreateGuestbookEntry(ctx, "Bob", "hi")
		require.NoError(t, err)

		got, err := s.ListGuestbookEntries(ctx)
		require.NoError(t, err)
		guestbook.SortNewestFirst(got)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
		assert.True(t, got[0].CreatedAt.Equal(epoch.Add(2*time.Second)))
	})

	t.Run("delete removes once and ids are not reused", func(t *testing.T) {
		s := newStore(t, StepClock(epoch))
		e1, err := s.CreateGuestbookEntry(ctx, "Alice", "hello")
		require.NoError(t, err)
		e2, err := s.CreateGuestbookEntry(ctx, "Bob", "hi")
		require.NoError(t, err)

		deleted, err := s.DeleteGuestbookEntry(ctx, e2.ID)
		require.NoError(t, err)
		assert.Equal(t, e2.ID, deleted.ID)
		assert.Equal(t, "Bob", deleted.Name)

		_, err = s.DeleteGuestbookEntry(ctx, e2.ID)
		assert.True(t, errors.Is(err, errs.ErrNotFound), "second delete: %v", err)

		e3, err := s.CreateGuestbookEntry(ctx, "Carol", "hey")
		require.NoError(t, err)
		assert.Equal(t, int64(3), e3.ID)

		got, err := s.ListGuestbookEntries(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		ids := []int64{got[0].ID, got[1].ID}
		assert.ElementsMatch(t, []int64{e1.ID, e3.ID}, ids)
	})

	t.Run("delete on empty store is not found", func(t *testing.T) {
		s := newStore(t, StepClock(epoch))
		_, err := s.DeleteGuestbookEntry(ctx, 999)
		assert.True(t, errors.Is(err, errs.ErrNotFound), "got %v", err)
	})

	t.Run("concurrent creates get unique ids", func(t *testing.T) {
		s := newStore(t, StepClock(epoch))
		const n = 50
		var wg sync.WaitGroup
		ids := make(chan int64, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				e, err := s.CreateGuestbookEntry(ctx, "n", "m")
				if err != nil {
					t.Error(err)
					return
				}
				ids <- e.ID
			}()
		}
		wg.Wait()
		close(ids)
		seen := make(map[int64]struct{}, n)
		for id := range ids {
			_, dup := seen[id]
			assert.False(t, dup, "duplicate id %d", id)
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, n)
	})
}

// RunLikes exercises counter defaults, the zero floor and atomic increments.
func RunLikes(t *testing.T, newStore LikesFactory) {
	ctx := context.Background()

	t.Run("absent key reads zero", func(t *testing.T) {
		s := newStore(t, nil)
		n, err := s.LikeCount(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("like like unlike", func(t *testing.T) {
		s := newStore(t, nil)
		for _, step := range []struct {
			delta int64
			want  int64
		}{{1, 1}, {1, 2}, {-1, 1}} {
			n, err := s.AdjustLikes(ctx, "x", step.delta)
			require.NoError(t, err)
			assert.Equal(t, step.want, n)
		}
		n, err := s.LikeCount(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("unlike floors at zero", func(t *testing.T) {
		s := newStore(t, nil)
		_, err := s.AdjustLikes(ctx, "x", 1)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			n, err := s.AdjustLikes(ctx, "x", -1)
			require.NoError(t, err)
			assert.Equal(t, int64(0), n)
		}
		n, err := s.AdjustLikes(ctx, "never", -1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("seed counters", func(t *testing.T) {
		s := newStore(t, map[string]int64{"portfolio": 37})
		n, err := s.LikeCount(ctx, "portfolio")
		require.NoError(t, err)
		assert.Equal(t, int64(37), n)
		n, err = s.AdjustLikes(ctx, "portfolio", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(38), n)
		n, err = s.AdjustLikes(ctx, "portfolio", -1)
		require.NoError(t, err)
		assert.Equal(t, int64(37), n)
	})

	t.Run("concurrent likes are not lost", func(t *testing.T) {
		s := newStore(t, nil)
		const n = 40
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.AdjustLikes(ctx, "hot", 1); err != nil {
					t.Error(err)
				}
			}()
		}
		wg.Wait()
		got, err := s.LikeCount(ctx, "hot")
		require.NoError(t, err)
		assert.Equal(t, int64(n), got)
	})
}
