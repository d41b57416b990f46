package countrydb

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	Name string
	Up   func(context.Context, *sqlx.Tx) error
	Down func(context.Context, *sqlx.Tx) error
}

var migrations = map[uint64]migration{}

// migrate registers a migration with the version taken from the numeric prefix
// of the caller's filename.
func migrate(up, down func(context.Context, *sqlx.Tx) error) {
	_, fn, _, ok := runtime.Caller(1)
	if !ok {
		panic("add migration: failed to get filename")
	}
	fn = path.Base(strings.ReplaceAll(fn, `\`, `/`))

	n, _, ok := strings.Cut(fn, "_")
	if !ok {
		panic("add migration: failed to parse filename")
	}
	v, err := strconv.ParseUint(n, 10, 64)
	if err != nil {
		panic("add migration: failed to parse filename: " + err.Error())
	}
	if v == 0 {
		panic("add migration: version must not be 0")
	}
	if _, exists := migrations[v]; exists {
		panic("add migration: duplicate version " + n)
	}
	migrations[v] = migration{strings.TrimSuffix(fn, ".go"), up, down}
}

// Version gets the current and required database versions. It should be checked
// before using the database.
func (db *DB) Version() (current, required uint64, err error) {
	if err = db.x.Get(&current, `PRAGMA user_version`); err != nil {
		err = fmt.Errorf("get version: %w", err)
		return
	}
	for v := range migrations {
		if v > required {
			required = v
		}
	}
	return
}

// Migrate migrates the database up to the required version, failing if it is
// newer than supported.
func (db *DB) Migrate(ctx context.Context) error {
	cur, to, err := db.Version()
	if err != nil {
		return err
	}
	if cur > to {
		return fmt.Errorf("database version %d is too new", cur)
	}
	if cur != to {
		if err := db.MigrateUp(ctx, to); err != nil {
			return fmt.Errorf("migrate (%d to %d): %w", cur, to, err)
		}
	}
	return nil
}

// MigrateUp migrates the database to the provided version.
func (db *DB) MigrateUp(ctx context.Context, to uint64) error {
	return db.migrateTx(ctx, to, true)
}

// MigrateDown migrates the database down to the provided version, dropping the
// tables it removes.
func (db *DB) MigrateDown(ctx context.Context, to uint64) error {
	return db.migrateTx(ctx, to, false)
}

func (db *DB) migrateTx(ctx context.Context, to uint64, up bool) error {
	tx, err := db.x.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var cv uint64
	if err = tx.GetContext(ctx, &cv, `PRAGMA user_version`); err != nil {
		return fmt.Errorf("get version: %w", err)
	}
	if up && to < cv {
		return fmt.Errorf("target version %d is less than current version %d", to, cv)
	}
	if !up && cv < to {
		return fmt.Errorf("current version %d is less than target version %d", cv, to)
	}

	lo, hi := cv, to
	if !up {
		lo, hi = to, cv
	}

	var ms []uint64
	foundC, foundT := cv == 0, to == 0
	for v := range migrations {
		foundC = foundC || v == cv
		foundT = foundT || v == to
		if v > lo && v <= hi {
			ms = append(ms, v)
		}
	}
	if !foundC {
		return fmt.Errorf("unsupported db version %d", cv)
	}
	if !foundT {
		return fmt.Errorf("unknown db version %d", to)
	}

	sort.Slice(ms, func(i, j int) bool {
		if up {
			return ms[i] < ms[j]
		}
		return ms[i] > ms[j]
	})

	for _, v := range ms {
		fn := migrations[v].Up
		if !up {
			fn = migrations[v].Down
		}
		if err := fn(ctx, tx); err != nil {
			return fmt.Errorf("migrate %s: %w", migrations[v].Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `PRAGMA user_version = `+strconv.FormatUint(to, 10)); err != nil {
		return fmt.Errorf("update version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
