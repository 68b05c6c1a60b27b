package guestbook

import (
	"sort"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

// SortNewestFirst orders entries by CreatedAt descending, in place and stable.
func SortNewestFirst(entries []portfolio.GuestbookEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
