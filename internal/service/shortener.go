package service

import (
	"context"
	"fmt"

	"urlshort/internal/domain"
	"urlshort/internal/repository"
)

// urlShortener implements URLShortener interface
type urlShortener struct {
	repo repository.URLRepository
}

// NewURLShortener creates a new URL shortener service
func NewURLShortener(repo repository.URLRepository) URLShortener {
	return &urlShortener{
		repo: repo,
	}
}

// Shorten creates a new short URL. The original URL is stored verbatim;
// non-empty validation is the transport boundary's job.
func (s *urlShortener) Shorten(ctx context.Context, originalURL string) (*domain.ShortURL, error) {
	entry, err := s.repo.Create(ctx, originalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create short URL: %w", err)
	}

	return entry, nil
}

// Resolve retrieves the stored mapping for a short code. Repository
// failures, including domain.ErrNotFound, pass through untranslated.
func (s *urlShortener) Resolve(ctx context.Context, code string) (*domain.ShortURL, error) {
	return s.repo.GetByCode(ctx, code)
}

// Close closes the service and its dependencies
func (s *urlShortener) Close() error {
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("failed to close repository: %w", err)
	}
	return nil
}

// Ensure urlShortener implements URLShortener interface
var _ URLShortener = (*urlShortener)(nil)
