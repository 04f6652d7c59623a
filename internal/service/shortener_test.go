package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlshort/internal/domain"
	"urlshort/internal/repository/mocks"
)

func TestURLShortener_Shorten(t *testing.T) {
	mockRepo := &mocks.URLRepository{}
	mockRepo.On("Create", context.Background(), "https://example.com").
		Return(&domain.ShortURL{
			ID:          1,
			OriginalURL: "https://example.com",
			Code:        "1",
		}, nil)

	shortener := NewURLShortener(mockRepo)

	entry, err := shortener.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "1", entry.Code)
	assert.Equal(t, "https://example.com", entry.OriginalURL)

	mockRepo.AssertExpectations(t)
}

func TestURLShortener_Shorten_RepositoryError(t *testing.T) {
	mockRepo := &mocks.URLRepository{}
	mockRepo.On("Create", context.Background(), "https://example.com").
		Return(nil, assert.AnError)

	shortener := NewURLShortener(mockRepo)

	entry, err := shortener.Shorten(context.Background(), "https://example.com")
	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, entry)

	mockRepo.AssertExpectations(t)
}

func TestURLShortener_Resolve(t *testing.T) {
	mockRepo := &mocks.URLRepository{}
	mockRepo.On("GetByCode", context.Background(), "abc").
		Return(&domain.ShortURL{
			ID:          12345,
			OriginalURL: "https://example.com/path",
			Code:        "abc",
		}, nil)

	shortener := NewURLShortener(mockRepo)

	entry, err := shortener.Resolve(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path", entry.OriginalURL)

	mockRepo.AssertExpectations(t)
}

func TestURLShortener_Resolve_NotFound(t *testing.T) {
	mockRepo := &mocks.URLRepository{}
	mockRepo.On("GetByCode", context.Background(), "missing").
		Return(nil, domain.ErrNotFound)

	shortener := NewURLShortener(mockRepo)

	// Not-found passes through untranslated so the transport layer
	// can map it to a 404.
	entry, err := shortener.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, entry)

	mockRepo.AssertExpectations(t)
}

func TestURLShortener_Close(t *testing.T) {
	mockRepo := &mocks.URLRepository{}
	mockRepo.On("Close").Return(nil)

	shortener := NewURLShortener(mockRepo)
	assert.NoError(t, shortener.Close())

	mockRepo.AssertExpectations(t)
}
