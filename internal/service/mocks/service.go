package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"urlshort/internal/domain"
)

// URLShortener is a mock implementation of service.URLShortener
type URLShortener struct {
	mock.Mock
}

// Shorten creates a new short URL
func (m *URLShortener) Shorten(ctx context.Context, originalURL string) (*domain.ShortURL, error) {
	args := m.Called(ctx, originalURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// Resolve retrieves the stored mapping for a short code
func (m *URLShortener) Resolve(ctx context.Context, code string) (*domain.ShortURL, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// Close closes the service and its dependencies
func (m *URLShortener) Close() error {
	args := m.Called()
	return args.Error(0)
}
