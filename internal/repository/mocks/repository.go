package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"urlshort/internal/domain"
)

// URLRepository is a mock implementation of repository.URLRepository
type URLRepository struct {
	mock.Mock
}

// Create persists a new URL mapping
func (m *URLRepository) Create(ctx context.Context, originalURL string) (*domain.ShortURL, error) {
	args := m.Called(ctx, originalURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// GetByCode retrieves a URL mapping by its short code
func (m *URLRepository) GetByCode(ctx context.Context, code string) (*domain.ShortURL, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShortURL), args.Error(1)
}

// Close closes the repository connection
func (m *URLRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
