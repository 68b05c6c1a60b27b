package redis

import "github.com/tinoosan/portfolio/internal/service/likes"

var _ likes.Store = (*LikeStore)(nil)
