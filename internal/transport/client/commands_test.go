package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"urlshort/internal/domain"
)

func TestCommands_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.ShortenResponse{
			Code:     "1",
			ShortURL: "http://localhost:8080/1",
			URL:      "https://example.com",
		})
	}))
	defer server.Close()

	commands := NewCommands(NewClient(server.URL))

	err := commands.Create(context.Background(), "https://example.com")
	assert.NoError(t, err)
}

func TestCommands_Resolve_NotFoundIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	}))
	defer server.Close()

	commands := NewCommands(NewClient(server.URL))

	// Not-found is reported to the user, not surfaced as a command failure
	err := commands.Resolve(context.Background(), "missing")
	assert.NoError(t, err)
}

func TestCommands_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://example.com/target", http.StatusFound)
	}))
	defer server.Close()

	commands := NewCommands(NewClient(server.URL))

	err := commands.Resolve(context.Background(), "abc")
	assert.NoError(t, err)
}
