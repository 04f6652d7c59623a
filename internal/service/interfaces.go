package service

import (
	"context"

	"urlshort/internal/domain"
)

// URLShortener defines the interface for URL shortening operations
type URLShortener interface {
	// Shorten creates a new short URL for the given original URL
	Shorten(ctx context.Context, originalURL string) (*domain.ShortURL, error)

	// Resolve retrieves the stored mapping for a short code.
	// Returns domain.ErrNotFound when the code was never issued.
	Resolve(ctx context.Context, code string) (*domain.ShortURL, error)

	// Close closes the service and its dependencies
	Close() error
}
