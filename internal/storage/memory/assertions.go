package memory

import (
	"github.com/tinoosan/portfolio/internal/service/guestbook"
	"github.com/tinoosan/portfolio/internal/service/likes"
)

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
	_ guestbook.Store = (*Store)(nil)
	_ likes.Store     = (*Store)(nil)
)
