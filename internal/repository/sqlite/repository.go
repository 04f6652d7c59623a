package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"urlshort/internal/domain"
	"urlshort/internal/repository"
	"urlshort/internal/shortener"
)

// Repository implements repository.URLRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository and ensures the schema exists
func New(databasePath string) (*Repository, error) {
	// Foreign keys and busy timeout are per-connection settings, so they
	// go in the DSN where every pooled connection picks them up. The busy
	// timeout makes overlapping creates wait for the single SQLite writer
	// instead of failing with SQLITE_BUSY.
	db, err := sql.Open("sqlite3", databasePath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode is persisted in the database file
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	repo := &Repository{db: db}

	if err := repo.runMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// Create inserts a new URL mapping and derives its short code from the
// assigned row id. The insert and the code update run in one transaction,
// so a reader can never observe a row with an empty code.
func (r *Repository) Create(ctx context.Context, originalURL string) (*domain.ShortURL, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO urls (original_url, code) VALUES (?, ?)",
		originalURL, "")
	if err != nil {
		return nil, fmt.Errorf("failed to insert URL: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to generate URL id: %w", err)
	}

	code, err := shortener.Encode(id)
	if err != nil {
		return nil, fmt.Errorf("failed to encode id %d: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE urls SET code = ? WHERE id = ?",
		code, id); err != nil {
		return nil, fmt.Errorf("failed to assign code: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return &domain.ShortURL{
		ID:          id,
		OriginalURL: originalURL,
		Code:        code,
	}, nil
}

// GetByCode retrieves a URL mapping by exact short code match
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.ShortURL, error) {
	var entry domain.ShortURL
	err := r.db.QueryRowContext(ctx,
		"SELECT id, original_url, code FROM urls WHERE code = ?",
		code).Scan(&entry.ID, &entry.OriginalURL, &entry.Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get URL: %w", err)
	}

	return &entry, nil
}

// Close closes the repository connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Ensure Repository implements the interface
var _ repository.URLRepository = (*Repository)(nil)
