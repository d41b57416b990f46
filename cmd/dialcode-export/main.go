// Command dialcode-export writes the calling code table to a file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hammerhouse/dialcode/db/countrydb"
	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/hammerhouse/dialcode/pkg/countrysheet"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/pflag"
)

var opt struct {
	Format string
	Region string
	Help   bool
}

func init() {
	pflag.StringVarP(&opt.Format, "format", "f", "json", "Output format (sqlite3, xlsx, json)")
	pflag.StringVarP(&opt.Region, "region", "r", "", "Only export countries in the region")
	pflag.BoolVarP(&opt.Help, "help", "h", false, "Show this help text")
}

func main() {
	pflag.Parse()

	if pflag.NArg() != 1 || opt.Help {
		fmt.Printf("usage: %s [options] output|-\n\noptions:\n%s\nnote: sqlite3 databases are migrated and their countries replaced\n", os.Args[0], pflag.CommandLine.FlagUsages())
		if opt.Help {
			os.Exit(2)
		}
		os.Exit(1)
	}

	cs := callingcode.All()
	if opt.Region != "" {
		cs = callingcode.InRegion(opt.Region)
		if len(cs) == 0 {
			fmt.Fprintf(os.Stderr, "error: no countries in region %q\n", opt.Region)
			os.Exit(1)
		}
	}

	if err := export(context.Background(), opt.Format, pflag.Arg(0), cs); err != nil {
		fmt.Fprintf(os.Stderr, "error: export %s: %v\n", opt.Format, err)
		os.Exit(1)
	}
}

func export(ctx context.Context, format, name string, cs []callingcode.Country) error {
	switch format {
	case "sqlite3":
		if name == "-" {
			return fmt.Errorf("cannot write database to stdout")
		}
		return exportDB(ctx, name, cs)
	case "xlsx":
		return writeFile(name, func(w io.Writer) error {
			return countrysheet.Write(w, cs)
		})
	case "json":
		return writeFile(name, func(w io.Writer) error {
			e := json.NewEncoder(w)
			e.SetEscapeHTML(false)
			e.SetIndent("", "    ")
			return e.Encode(cs)
		})
	default:
		return fmt.Errorf("unknown format")
	}
}

func exportDB(ctx context.Context, name string, cs []callingcode.Country) error {
	p, err := filepath.Abs(name)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", name, err)
	}
	db, err := countrydb.Open(p)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	if err := db.ReplaceCountries(ctx, cs); err != nil {
		return err
	}
	return db.Close()
}

// writeFile calls fn with stdout if name is "-", or a new file which is only
// kept if fn succeeds.
func writeFile(name string, fn func(io.Writer) error) error {
	if name == "-" {
		return fn(os.Stdout)
	}

	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}
	if err := f.Chmod(0644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), name)
}
