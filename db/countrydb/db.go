// Package countrydb implements sqlite3 database storage for the calling code
// table, for consumers which can't link against callingcode directly.
package countrydb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/jmoiron/sqlx"
)

// DB stores countries in a sqlite3 database.
type DB struct {
	x *sqlx.DB
}

// Open opens a DB from the provided sqlite3 filename.
func Open(name string) (*DB, error) {
	x, err := sqlx.Connect("sqlite3", (&url.URL{
		Path: name,
		RawQuery: (url.Values{
			"_journal":      {"WAL"},
			"_busy_timeout": {"6000"},
		}).Encode(),
	}).String())
	if err != nil {
		return nil, err
	}
	return &DB{x}, nil
}

func (db *DB) Close() error {
	return db.x.Close()
}

type country struct {
	Code        string `db:"code"`
	Name        string `db:"name"`
	Flag        string `db:"flag"`
	Region      string `db:"region"`
	CallingCode string `db:"calling_code"`
	Priority    int    `db:"priority"`
	IsDefault   bool   `db:"is_default"`
	Position    int    `db:"position"`
}

func (c country) Country() callingcode.Country {
	return callingcode.Country{
		Code:        c.Code,
		Name:        c.Name,
		Flag:        c.Flag,
		Region:      c.Region,
		CallingCode: c.CallingCode,
		Priority:    c.Priority,
		Default:     c.IsDefault,
	}
}

// ReplaceCountries replaces all countries in the database with cs, keeping
// their order.
func (db *DB) ReplaceCountries(ctx context.Context, cs []callingcode.Country) error {
	tx, err := db.x.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM countries`); err != nil {
		return fmt.Errorf("clear countries: %w", err)
	}
	for i, c := range cs {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO
			countries ( code,  name,  flag,  region,  calling_code,  priority,  is_default,  position)
			VALUES    (:code, :name, :flag, :region, :calling_code, :priority, :is_default, :position)
		`, country{
			Code:        c.Code,
			Name:        c.Name,
			Flag:        c.Flag,
			Region:      c.Region,
			CallingCode: c.CallingCode,
			Priority:    c.Priority,
			IsDefault:   c.Default,
			Position:    i,
		}); err != nil {
			return fmt.Errorf("insert country %s: %w", c.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetCountry gets a country by its case-insensitive ISO code. If it doesn't
// exist, nil is returned.
func (db *DB) GetCountry(ctx context.Context, code string) (*callingcode.Country, error) {
	var obj country
	if err := db.x.GetContext(ctx, &obj, `SELECT * FROM countries WHERE code = ?`, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c := obj.Country()
	return &c, nil
}

// CountriesByCallingCode gets all countries with the calling code cc in table
// order.
func (db *DB) CountriesByCallingCode(ctx context.Context, cc string) ([]callingcode.Country, error) {
	var objs []country
	if err := db.x.SelectContext(ctx, &objs, `SELECT * FROM countries WHERE calling_code = ? ORDER BY position`, cc); err != nil {
		return nil, err
	}
	cs := make([]callingcode.Country, len(objs))
	for i, obj := range objs {
		cs[i] = obj.Country()
	}
	return cs, nil
}

// Countries gets all countries in table order.
func (db *DB) Countries(ctx context.Context) ([]callingcode.Country, error) {
	var objs []country
	if err := db.x.SelectContext(ctx, &objs, `SELECT * FROM countries ORDER BY position`); err != nil {
		return nil, err
	}
	cs := make([]callingcode.Country, len(objs))
	for i, obj := range objs {
		cs[i] = obj.Country()
	}
	return cs, nil
}
