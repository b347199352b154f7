package preference

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteConfig holds configuration for the SQLite preference repository
type SQLiteConfig struct {
	// Path of the database file
	Path string
}

// sqliteRepository stores one row per opted-out identity
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite opens (and migrates) a SQLite-backed preference repository
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &sqliteRepository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func (r *sqliteRepository) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS damage_opt_outs (
		identity TEXT PRIMARY KEY,
		disabled INTEGER NOT NULL DEFAULT 1
	)`)
	return err
}

// Load reads every row
func (r *sqliteRepository) Load(ctx context.Context) (*LoadOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT identity, disabled FROM damage_opt_outs`)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	defer rows.Close()

	optOuts := map[string]bool{}
	for rows.Next() {
		var identity string
		var disabled bool
		if err := rows.Scan(&identity, &disabled); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		optOuts[identity] = disabled
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return &LoadOutput{OptOuts: optOuts}, nil
}

// Save replaces the table contents in one transaction
func (r *sqliteRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil {
		return ErrNilInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM damage_opt_outs`); err != nil {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}

	for identity, disabled := range input.OptOuts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO damage_opt_outs (identity, disabled) VALUES (?, ?)`,
			identity, disabled,
		); err != nil {
			return fmt.Errorf("failed to save preference %s: %w", identity, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit preferences: %w", err)
	}

	return nil
}
