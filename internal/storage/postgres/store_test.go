package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/tinoosan/portfolio/internal/service/guestbook"
	"github.com/tinoosan/portfolio/internal/service/likes"
	"github.com/tinoosan/portfolio/internal/storage/storagetest"
)

func getTestDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres store tests")
	}
	return dsn
}

// mustOpen returns a migrated store with empty tables and a restarted id sequence.
func mustOpen(t *testing.T, dsn string, opts ...Option) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := Open(ctx, dsn, opts...)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := s.pool.Exec(ctx, `truncate table guestbook_entries, likes restart identity`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return s
}

func TestStore_Guestbook(t *testing.T) {
	dsn := getTestDSN(t)
	storagetest.RunGuestbook(t, func(t *testing.T, now func() time.Time) guestbook.Store {
		return mustOpen(t, dsn, WithClock(now))
	})
}

func TestStore_Likes(t *testing.T) {
	dsn := getTestDSN(t)
	storagetest.RunLikes(t, func(t *testing.T, seed map[string]int64) likes.Store {
		s := mustOpen(t, dsn)
		if err := s.SeedLikes(context.Background(), seed); err != nil {
			t.Fatalf("seed: %v", err)
		}
		return s
	})
}
