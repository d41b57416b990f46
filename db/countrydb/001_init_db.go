package countrydb

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

func init() {
	migrate(up001, down001)
}

func up001(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, strings.ReplaceAll(`
		CREATE TABLE countries (
			code         TEXT PRIMARY KEY NOT NULL COLLATE NOCASE,
			name         TEXT NOT NULL,
			flag         TEXT NOT NULL,
			region       TEXT NOT NULL COLLATE NOCASE,
			calling_code TEXT NOT NULL,
			priority     INTEGER NOT NULL DEFAULT 0,
			is_default   INTEGER NOT NULL DEFAULT 0,
			position     INTEGER NOT NULL
		) STRICT;
	`, `
		`, "\n")); err != nil {
		return fmt.Errorf("create countries table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX countries_calling_code_idx ON countries(calling_code, position)`); err != nil {
		return fmt.Errorf("create countries calling code index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX countries_region_idx ON countries(region, position)`); err != nil {
		return fmt.Errorf("create countries region index: %w", err)
	}
	return nil
}

func down001(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX countries_region_idx`); err != nil {
		return fmt.Errorf("drop countries_region_idx index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DROP INDEX countries_calling_code_idx`); err != nil {
		return fmt.Errorf("drop countries_calling_code_idx index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DROP TABLE countries`); err != nil {
		return fmt.Errorf("drop countries table: %w", err)
	}
	return nil
}
