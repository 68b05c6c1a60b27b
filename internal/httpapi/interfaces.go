package httpapi

import (
	"context"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

// Catalog serves the static site content.
type Catalog interface {
	Profile() portfolio.Profile
	Projects() []portfolio.Project
	Recommend(category portfolio.Category) portfolio.Recommendation
	Total() int
}

// ReadyChecker is optionally implemented by stores to indicate readiness.
type ReadyChecker interface {
	Ready(ctx context.Context) error
}
