package repository

import (
	"context"

	"urlshort/internal/domain"
)

// URLRepository defines the interface for URL data operations
type URLRepository interface {
	// Create persists a new URL mapping, assigns its id, and derives its
	// short code from the id. The returned ShortURL is fully populated.
	Create(ctx context.Context, originalURL string) (*domain.ShortURL, error)

	// GetByCode retrieves a URL mapping by exact short code match.
	// Returns domain.ErrNotFound when no record has that code.
	GetByCode(ctx context.Context, code string) (*domain.ShortURL, error)

	// Close closes the repository connection
	Close() error
}
