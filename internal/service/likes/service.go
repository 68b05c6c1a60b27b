// Package likes implements per-key like counters that never drop below zero.
package likes

import (
	"context"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

// Store keeps like counters. AdjustLikes must apply delta and the zero floor
// as one atomic step and must not create a key for a decrement.
type Store interface {
	LikeCount(ctx context.Context, key string) (int64, error)
	AdjustLikes(ctx context.Context, key string, delta int64) (int64, error)
}

// Service returns the normalized key alongside the resulting count.
type Service interface {
	Get(ctx context.Context, key string) (string, int64, error)
	Apply(ctx context.Context, key string, action portfolio.LikeAction) (string, int64, error)
}

type service struct {
	store Store
}

func New(store Store) Service { return &service{store: store} }

// NormalizeKey falls back to portfolio.DefaultLikeKey for an empty key.
func NormalizeKey(key string) string {
	if key == "" {
		return portfolio.DefaultLikeKey
	}
	return key
}

func (s *service) Get(ctx context.Context, key string) (string, int64, error) {
	key = NormalizeKey(key)
	n, err := s.store.LikeCount(ctx, key)
	return key, n, err
}

func (s *service) Apply(ctx context.Context, key string, action portfolio.LikeAction) (string, int64, error) {
	key = NormalizeKey(key)
	if action != portfolio.LikeActionUnlike {
		action = portfolio.LikeActionLike
	}
	n, err := s.store.AdjustLikes(ctx, key, action.Delta())
	return key, n, err
}
