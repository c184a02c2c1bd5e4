package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

// dsnOptions enables foreign keys for the favorites cascade and waits on a
// locked database instead of failing immediately.
const dsnOptions = "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"

// NewDB opens the advisor database at path, creating its directory, and
// applies pending migrations.
func NewDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys,
		goose.WithLogger(log.NewGooseLogger(ctx)),
		goose.WithVerbose(true),
	)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	if len(results) > 0 {
		log.FromCtx(ctx).Info().Int("applied", len(results)).Msg("database migrated")
	}
	return nil
}
