package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"urlshort/internal/config"
	"urlshort/internal/repository/sqlite"
	"urlshort/internal/service"
	"urlshort/internal/transport/client"
	httpTransport "urlshort/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "urlshort",
	Short: "A URL shortening service written in Go",
	Long:  "A URL shortening service with a SQLite backend; short codes are derived from row ids via base62 encoding",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the URL shortening server",
	RunE:  runServer,
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for interacting with the server",
}

var createCmd = &cobra.Command{
	Use:   "create [URL]",
	Short: "Create a short URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateURL,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [CODE]",
	Short: "Look up the redirect target of a short code",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolveURL,
}

// envOr returns the environment variable value or a fallback. Flag
// defaults come from the environment so flags always win when set.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func init() {
	// A .env file is optional; real environment variables take precedence
	_ = godotenv.Load()

	// Server command flags, defaulting from the environment
	serverCmd.Flags().StringP("port", "p", envOr("PORT", "8080"), "Server port")
	serverCmd.Flags().String("base-url", envOr("BASE_URL", "http://localhost:8080"), "Public base URL used to format short links")
	serverCmd.Flags().String("db-path", envOr("DATABASE_URL", "urls.db"), "Database file path")
	serverCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging (HTTP requests/responses)")

	// Client command flags
	clientCmd.PersistentFlags().StringP("server-url", "u", "http://localhost:8080", "Server URL")

	clientCmd.AddCommand(createCmd, resolveCmd)
	rootCmd.AddCommand(serverCmd, clientCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString("port")
	baseURL, _ := cmd.Flags().GetString("base-url")
	dbPath, _ := cmd.Flags().GetString("db-path")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.New(port, baseURL, dbPath, verbose)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	log.Printf("Starting URL shortener server with config: port=%s db=%s", cfg.Server.Port, cfg.Database.Path)

	// Initialize database
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	urlShortener := service.NewURLShortener(repo)
	defer func() {
		if err := urlShortener.Close(); err != nil {
			log.Printf("Error closing shortener: %v", err)
		}
	}()

	// Create and start HTTP server
	server := httpTransport.NewServer(urlShortener, cfg.Server.Port, cfg.Server.BaseURL, cfg.Logging.Verbose)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during server shutdown: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

func runCreateURL(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	c := client.NewClient(serverURL)
	commands := client.NewCommands(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return commands.Create(ctx, args[0])
}

func runResolveURL(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	c := client.NewClient(serverURL)
	commands := client.NewCommands(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return commands.Resolve(ctx, args[0])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
