package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_New_Valid(t *testing.T) {
	cfg, err := New("8080", "http://localhost:8080", "/tmp/test.db", true)

	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.True(t, cfg.Logging.Verbose)
}

func TestConfig_New_StripsTrailingSlash(t *testing.T) {
	cfg, err := New("8080", "http://localhost:8080///", "/tmp/test.db", false)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
}

func TestConfig_Validate_EmptyPort(t *testing.T) {
	_, err := New("", "http://localhost:8080", "/tmp/test.db", false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server port cannot be empty")
}

func TestConfig_Validate_EmptyBaseURL(t *testing.T) {
	_, err := New("8080", "", "/tmp/test.db", false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base URL cannot be empty")
}

func TestConfig_Validate_EmptyDatabasePath(t *testing.T) {
	_, err := New("8080", "http://localhost:8080", "", false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database path cannot be empty")
}
