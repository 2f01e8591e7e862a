package migrations

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by the migrator
func Schema() string {
	return schemaSQL
}

// Migrator applies the idempotent schema
type Migrator struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// Apply executes the schema inside a single transaction. Every statement is
// IF NOT EXISTS, so running it against an initialised database is a no-op.
func (m *Migrator) Apply(ctx context.Context) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := applySchema(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Msg("Database schema applied")
	return nil
}

func applySchema(ctx context.Context, tx pgx.Tx) error {
	// Simple protocol allows multiple statements in one Exec
	if _, err := tx.Exec(ctx, schemaSQL, pgx.QueryExecModeSimpleProtocol); err != nil {
		return fmt.Errorf("error occurred during schema execution: %w", err)
	}
	return nil
}
