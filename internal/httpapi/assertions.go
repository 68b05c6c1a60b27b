package httpapi

import "github.com/tinoosan/portfolio/internal/content"

// Compile-time interface assertions for the content served by the API.
var _ Catalog = (*content.Catalog)(nil)
