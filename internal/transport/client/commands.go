package client

import (
	"context"
	"errors"
	"fmt"

	"urlshort/internal/domain"
)

// Commands provides command-line operations for the client
type Commands struct {
	client *Client
}

// NewCommands creates a new Commands instance
func NewCommands(client *Client) *Commands {
	return &Commands{
		client: client,
	}
}

// Create creates a short URL and displays the result
func (c *Commands) Create(ctx context.Context, originalURL string) error {
	result, err := c.client.Create(ctx, originalURL)
	if err != nil {
		return err
	}

	fmt.Printf("Short URL created:\n")
	fmt.Printf("Code: %s\n", result.Code)
	fmt.Printf("Short URL: %s\n", result.ShortURL)
	fmt.Printf("Original URL: %s\n", result.URL)

	return nil
}

// Resolve looks up a short code and displays the redirect target
func (c *Commands) Resolve(ctx context.Context, code string) error {
	location, err := c.client.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("Short code '%s' not found\n", code)
			return nil
		}
		return err
	}

	fmt.Printf("%s -> %s\n", code, location)

	return nil
}
