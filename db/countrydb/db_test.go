package countrydb

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	_ "github.com/mattn/go-sqlite3"
)

func openTest(t *testing.T) *DB {
	db, err := Open(filepath.Join(t.TempDir(), "countries.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrations(t *testing.T) {
	db := openTest(t)

	cur, _, err := db.Version()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if cur != 0 {
		t.Fatalf("current version not 0")
	}

	var ms []uint64
	for m := range migrations {
		ms = append(ms, m)
	}
	sort.Slice(ms, func(i, j int) bool {
		return ms[i] < ms[j]
	})

	for _, to := range ms {
		if err := db.MigrateUp(context.Background(), to); err != nil {
			t.Fatalf("migrate up to %d: %v", to, err)
		}
		if err := db.MigrateDown(context.Background(), 0); err != nil {
			t.Fatalf("migrate down from %d to 0: %v", to, err)
		}
		if err := db.MigrateUp(context.Background(), to); err != nil {
			t.Fatalf("migrate up to %d again: %v", to, err)
		}
		if err := db.MigrateDown(context.Background(), 0); err != nil {
			t.Fatalf("migrate down from %d to 0 again: %v", to, err)
		}
	}

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if cur, req, err := db.Version(); err != nil || cur != req {
		t.Fatalf("expected version %d after migrate, got %d (%v)", req, cur, err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	if err := db.MigrateUp(context.Background(), 0); err == nil {
		t.Fatalf("expected error migrating up to an older version")
	}
}

func TestCountries(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if c, err := db.GetCountry(ctx, "US"); err != nil || c != nil {
		t.Fatalf("expected no country in empty db, got %v (%v)", c, err)
	}

	all := callingcode.All()
	for i := 0; i < 2; i++ {
		if err := db.ReplaceCountries(ctx, all); err != nil {
			t.Fatalf("replace countries (%d): %v", i, err)
		}
	}

	cs, err := db.Countries(ctx)
	if err != nil {
		t.Fatalf("countries: %v", err)
	}
	if len(cs) != len(all) {
		t.Fatalf("expected %d countries, got %d", len(all), len(cs))
	}
	for i := range all {
		if cs[i] != all[i] {
			t.Errorf("country %d: expected %#v, got %#v", i, all[i], cs[i])
		}
	}

	for _, code := range []string{"JM", "jm"} {
		c, err := db.GetCountry(ctx, code)
		if err != nil {
			t.Fatalf("get country %s: %v", code, err)
		}
		if exp, _ := callingcode.ByISO("JM"); c == nil || *c != exp {
			t.Errorf("get country %s: expected %#v, got %#v", code, exp, c)
		}
	}

	shared, err := db.CountriesByCallingCode(ctx, "1")
	if err != nil {
		t.Fatalf("countries by calling code: %v", err)
	}
	exp := callingcode.SharingCallingCode("1")
	if len(shared) != len(exp) {
		t.Fatalf("expected %d countries for +1, got %d", len(exp), len(shared))
	}
	for i := range exp {
		if shared[i] != exp[i] {
			t.Errorf("+1 country %d: expected %s, got %s", i, exp[i].Code, shared[i].Code)
		}
	}

	if err := db.ReplaceCountries(ctx, nil); err != nil {
		t.Fatalf("replace countries: %v", err)
	}
	if cs, err := db.Countries(ctx); err != nil || len(cs) != 0 {
		t.Fatalf("expected no countries, got %d (%v)", len(cs), err)
	}
}

func TestReplaceCountriesDuplicate(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	us, _ := callingcode.ByISO("US")
	if err := db.ReplaceCountries(ctx, []callingcode.Country{us}); err != nil {
		t.Fatalf("replace countries: %v", err)
	}
	if err := db.ReplaceCountries(ctx, []callingcode.Country{us, us}); err == nil {
		t.Fatalf("expected error for duplicate country")
	}
	// the failed replace must not have cleared the table
	if c, err := db.GetCountry(ctx, "US"); err != nil || c == nil {
		t.Fatalf("expected US to remain, got %v (%v)", c, err)
	}
}
