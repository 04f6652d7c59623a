package domain

import (
	"errors"
)

// ErrNotFound is returned when no stored mapping matches a short code.
// Callers treat it as a normal lookup outcome, not a storage failure.
var ErrNotFound = errors.New("short code not found")

// ShortURL represents a stored URL mapping
type ShortURL struct {
	ID          int64  `json:"id"`
	OriginalURL string `json:"original_url"`
	Code        string `json:"code"`
}

// ShortenRequest represents the request to create a short URL
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse represents the response when creating a short URL
type ShortenResponse struct {
	Code     string `json:"code"`
	ShortURL string `json:"short_url"`
	URL      string `json:"url"`
}
