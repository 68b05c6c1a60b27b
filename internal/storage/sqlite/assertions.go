package sqlite

import (
	"github.com/tinoosan/portfolio/internal/service/guestbook"
	"github.com/tinoosan/portfolio/internal/service/likes"
)

var (
	_ guestbook.Store = (*Store)(nil)
	_ likes.Store     = (*Store)(nil)
)
