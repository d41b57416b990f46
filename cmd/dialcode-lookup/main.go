// Command dialcode-lookup resolves phone numbers to countries.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/hammerhouse/dialcode/pkg/phonefmt"
	"github.com/spf13/pflag"
)

var opt struct {
	Fallback string
	Length   int
	JSON     bool
	Help     bool
}

func init() {
	pflag.StringVarP(&opt.Fallback, "fallback", "f", "US", "Country for numbers without a known calling code (\"none\" to disable)")
	pflag.IntVarP(&opt.Length, "length", "n", callingcode.DefaultDomesticLength, "Number of digits for the fallback country")
	pflag.BoolVarP(&opt.JSON, "json", "j", false, "Output newline-delimited json")
	pflag.BoolVarP(&opt.Help, "help", "h", false, "Show this help text")
}

func main() {
	pflag.Parse()

	if opt.Help {
		fmt.Printf("usage: %s [options] [number...|-]\n\noptions:\n%s\nnote: if no numbers are provided, they are read from stdin, one per line\n", os.Args[0], pflag.CommandLine.FlagUsages())
		os.Exit(2)
	}

	res := callingcode.Resolver{
		DomesticLength: opt.Length,
	}
	if f := opt.Fallback; f != "" && f != "none" {
		c, ok := callingcode.ByISO(f)
		if !ok {
			fmt.Fprintf(os.Stderr, "error: unknown fallback country %q\n", f)
			os.Exit(1)
		}
		res.DomesticFallback = c.Code
	}

	var err error
	if args := pflag.Args(); len(args) != 0 && !(len(args) == 1 && args[0] == "-") {
		err = lookup(os.Stdout, res, opt.JSON, args...)
	} else {
		err = lookupReader(os.Stdout, res, opt.JSON, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type result struct {
	Number  string          `json:"number"`
	Digits  string          `json:"digits"`
	Code    string          `json:"code"`
	Flag    string          `json:"flag"`
	Name    string          `json:"name,omitempty"`
	Calling string          `json:"calling_code,omitempty"`
	Format  phonefmt.Result `json:"format"`
}

func resolve(res callingcode.Resolver, number string) result {
	r := result{
		Number: number,
		Digits: callingcode.Digits(number),
		Code:   res.CountryCode(number),
		Flag:   res.Flag(number),
	}
	if c, ok := res.Resolve(number); ok {
		r.Name = c.Name
		r.Calling = c.Display()
		r.Format = phonefmt.Format(number, c.Code)
	}
	return r
}

// lookupReader resolves each non-blank line of r.
func lookupReader(w io.Writer, res callingcode.Resolver, asJSON bool, r io.Reader) error {
	var ns []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if t := strings.TrimSpace(s.Text()); t != "" {
			ns = append(ns, t)
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read numbers: %w", err)
	}
	return lookup(w, res, asJSON, ns...)
}

// lookup writes one line per number, either tab-separated (number, digits,
// code, flag, name, calling code, e164) or as a json object.
func lookup(w io.Writer, res callingcode.Resolver, asJSON bool, numbers ...string) error {
	bw := bufio.NewWriter(w)
	je := json.NewEncoder(bw)
	je.SetEscapeHTML(false)
	for _, n := range numbers {
		r := resolve(res, n)
		if asJSON {
			if err := je.Encode(r); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.Number, r.Digits, r.Code, r.Flag, r.Name, r.Calling, r.Format.E164)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
