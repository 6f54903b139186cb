package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/muzaparoff/rest-api-exam/internal/config"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/migrations"
)

// DB bundles the open connection with the pieces that differ per backend:
// the squirrel statement builder (placeholder format), the error
// classifier, and the goose dialect used for migrations.
type DB struct {
	*sql.DB
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// NewConnect opens a database connection for the configured DSN. The DSN
// scheme selects the backend: "postgres://" (or "postgresql://") opens
// PostgreSQL via pgx, "sqlite://path" opens an embedded SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported DSN scheme: %q", cfg.DSN)
	}
}

// Migrate applies all pending schema migrations for the active backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
