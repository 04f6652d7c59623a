package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlshort/internal/domain"
	"urlshort/internal/repository/sqlite"
	"urlshort/internal/service"
	"urlshort/internal/shortener"
	"urlshort/internal/transport/client"
	httpTransport "urlshort/internal/transport/http"
)

func setupTestServer(t *testing.T) (*httptest.Server, *client.Client) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "urls_integration.db")

	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)

	urlShortener := service.NewURLShortener(repo)
	t.Cleanup(func() {
		assert.NoError(t, urlShortener.Close())
	})

	srv := httpTransport.NewServer(urlShortener, "0", "http://short.test", false)
	ts := httptest.NewServer(srv.HTTPHandler())
	t.Cleanup(ts.Close)

	return ts, client.NewClient(ts.URL)
}

func TestIntegration_FullWorkflow(t *testing.T) {
	ts, c := setupTestServer(t)
	ctx := context.Background()

	// Create a short URL through the public API
	originalURL := "https://example.com/very/long/path/to/resource"

	result, err := c.Create(ctx, originalURL)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Code)
	assert.Equal(t, originalURL, result.URL)
	assert.Equal(t, "http://short.test/"+result.Code, result.ShortURL)

	// The first row gets id 1, so its code is Encode(1)
	expectedCode, err := shortener.Encode(1)
	require.NoError(t, err)
	assert.Equal(t, expectedCode, result.Code)

	// Resolve it back without following the redirect
	location, err := c.Resolve(ctx, result.Code)
	require.NoError(t, err)
	assert.Equal(t, originalURL, location)

	// A second create yields a distinct code
	second, err := c.Create(ctx, "https://example.org/other")
	require.NoError(t, err)
	assert.NotEqual(t, result.Code, second.Code)

	// Unknown codes resolve to not-found, not an error response
	_, err = c.Resolve(ctx, "neverIssued")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Health works regardless of what is stored
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_ValidationDoesNotTouchStorage(t *testing.T) {
	_, c := setupTestServer(t)
	ctx := context.Background()

	// An empty url is rejected at the boundary
	_, err := c.Create(ctx, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url is required")

	// The next successful create still gets id 1: the rejected request
	// never reached the repository.
	result, err := c.Create(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", result.Code)
}

func TestIntegration_MetricsEndpoint(t *testing.T) {
	ts, c := setupTestServer(t)

	_, err := c.Create(context.Background(), "https://example.com")
	require.NoError(t, err)

	httpClient := &http.Client{Timeout: 5 * time.Second}
	resp, err := httpClient.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
