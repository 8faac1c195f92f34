// Package migrations carries the artwork library schema as embedded SQL
// files and applies them on startup. Versions are the file names without
// the .sql suffix, applied in lexical order and recorded in
// schema_migrations so reruns are no-ops.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

//go:embed *.sql
var migrationFS embed.FS

// Run applies all pending migrations. Safe to call on every startup; the
// API refuses to serve if this fails.
func Run(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	versions, err := pending(ctx, db)
	if err != nil {
		return err
	}

	for _, version := range versions {
		body, err := migrationFS.ReadFile(version + ".sql")
		if err != nil {
			return fmt.Errorf("read migration %s: %w", version, err)
		}

		log.Info().Str("version", version).Msg("Applying artwork library migration")
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", version, err)
		}
	}

	return nil
}

// pending lists embedded migration versions not yet recorded, in apply order.
func pending(ctx context.Context, db *sql.DB) ([]string, error) {
	entries, err := migrationFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("list embedded migrations: %w", err)
	}

	var versions []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		version := strings.TrimSuffix(e.Name(), ".sql")

		var applied bool
		err := db.QueryRowContext(ctx, `SELECT true FROM schema_migrations WHERE version = $1`, version).Scan(&applied)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("check migration %s: %w", version, err)
		}
		versions = append(versions, version)
	}

	sort.Strings(versions)
	return versions, nil
}
