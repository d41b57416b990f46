// Package callingcode maps phone numbers to countries using international
// calling codes.
//
// Several countries share some calling codes (e.g., "1" for the NANP, "7" for
// Russia and Kazakhstan). Numbers are matched against the longest calling code
// they start with, and shared codes are resolved by the country's Priority,
// then Default, then table order.
//
// All functions are total: any string, including garbage, results in a
// not-found value rather than an error or panic.
package callingcode

import (
	"fmt"
	"sort"
	"strings"
)

// Unknown is the flag glyph returned for numbers without a known country.
const Unknown = "🌐"

// UnknownCode is the code returned by CountryCode for numbers which have digits
// but don't match any country.
const UnknownCode = "UNK"

// DefaultDomesticLength is the number of digits a number without a matching
// calling code must have to be treated as a domestic number.
const DefaultDomesticLength = 10

// Country contains reference information about a country.
type Country struct {
	Code        string `json:"code"`         // ISO 3166-1 alpha-2
	Name        string `json:"name"`         // display name
	Flag        string `json:"flag"`         // emoji flag
	Region      string `json:"region"`       // editorial grouping
	CallingCode string `json:"calling_code"` // digits only, not unique
	Priority    int    `json:"priority,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

// String returns the flag and name of the country.
func (c Country) String() string {
	return c.Flag + " " + c.Name
}

// Display returns the calling code with a leading plus sign.
func (c Country) Display() string {
	return "+" + c.CallingCode
}

// preferred checks if c should win over o for a shared calling code, assuming
// o comes first in the table.
func (c Country) preferred(o Country) bool {
	if c.Priority != o.Priority {
		return c.Priority > o.Priority
	}
	return c.Default && !o.Default
}

// Table is an indexed, read-only set of countries. It is safe for concurrent
// use.
type Table struct {
	countries []Country
	byCalling map[string][]int // calling code -> indexes in table order
	winner    map[string]int   // calling code -> index of the tie-break winner
	byISO     map[string]int   // lowercase code -> index
	codes     []string         // calling codes, longest first
	regions   []string         // sorted, unique
}

var defaultTable *Table

func init() {
	t, err := NewTable(countries)
	if err != nil {
		panic("callingcode: invalid country table: " + err.Error())
	}
	defaultTable = t
}

// Default returns the compiled-in table.
func Default() *Table {
	return defaultTable
}

// NewTable builds the indexes for cs. The ISO codes must be unique, and the
// calling codes must be non-empty and consist only of digits. If a country
// doesn't have a flag, one is derived from the ISO code.
func NewTable(cs []Country) (*Table, error) {
	t := &Table{
		countries: make([]Country, len(cs)),
		byCalling: map[string][]int{},
		winner:    map[string]int{},
		byISO:     map[string]int{},
	}
	regions := map[string]struct{}{}
	for i, c := range cs {
		if len(c.Code) != 2 {
			return nil, fmt.Errorf("country %d: invalid iso code %q", i, c.Code)
		}
		if c.CallingCode == "" || Digits(c.CallingCode) != c.CallingCode {
			return nil, fmt.Errorf("country %s: invalid calling code %q", c.Code, c.CallingCode)
		}
		k := strings.ToLower(c.Code)
		if _, exists := t.byISO[k]; exists {
			return nil, fmt.Errorf("country %s: duplicate iso code", c.Code)
		}
		if c.Flag == "" {
			c.Flag = flag(c.Code)
		}
		t.countries[i] = c
		t.byISO[k] = i

		if j, ok := t.winner[c.CallingCode]; !ok || c.preferred(t.countries[j]) {
			t.winner[c.CallingCode] = i
		}
		if _, ok := t.byCalling[c.CallingCode]; !ok {
			t.codes = append(t.codes, c.CallingCode)
		}
		t.byCalling[c.CallingCode] = append(t.byCalling[c.CallingCode], i)

		if c.Region != "" {
			regions[c.Region] = struct{}{}
		}
	}
	sort.Slice(t.codes, func(i, j int) bool {
		if a, b := len(t.codes[i]), len(t.codes[j]); a != b {
			return a > b
		}
		return t.codes[i] < t.codes[j]
	})
	for r := range regions {
		t.regions = append(t.regions, r)
	}
	sort.Strings(t.regions)
	return t, nil
}

// flag converts an ISO 3166-1 alpha-2 code into the matching pair of regional
// indicator symbols.
func flag(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return Unknown
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// Len returns the number of countries in t.
func (t *Table) Len() int {
	return len(t.countries)
}

// All returns a copy of every country in table order.
func (t *Table) All() []Country {
	return append([]Country(nil), t.countries...)
}

// ByISO gets a country by its case-insensitive ISO 3166-1 alpha-2 code.
func (t *Table) ByISO(code string) (Country, bool) {
	if i, ok := t.byISO[strings.ToLower(code)]; ok {
		return t.countries[i], true
	}
	return Country{}, false
}

// SharingCallingCode gets every country using exactly the calling code cc (no
// leading plus sign), in table order.
func (t *Table) SharingCallingCode(cc string) []Country {
	is := t.byCalling[cc]
	r := make([]Country, 0, len(is))
	for _, i := range is {
		r = append(r, t.countries[i])
	}
	return r
}

// InRegion gets every country in the region (case-insensitive), in table order.
func (t *Table) InRegion(region string) []Country {
	var r []Country
	for _, c := range t.countries {
		if strings.EqualFold(c.Region, region) {
			r = append(r, c)
		}
	}
	return r
}

// Regions returns the sorted, unique region names.
func (t *Table) Regions() []string {
	return append([]string(nil), t.regions...)
}

// match finds the country for the longest calling code digits starts with.
func (t *Table) match(digits string) (Country, bool) {
	for _, cc := range t.codes {
		if strings.HasPrefix(digits, cc) {
			return t.countries[t.winner[cc]], true
		}
	}
	return Country{}, false
}

// Digits strips a single leading plus sign and every non-digit character from
// phone.
func Digits(phone string) string {
	phone = strings.TrimPrefix(phone, "+")
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// NormalizeDisplay adds a leading plus sign to phone if it doesn't already have
// one. It does not validate or otherwise reformat the number.
func NormalizeDisplay(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}

// Resolver resolves phone numbers to countries.
type Resolver struct {
	// Table is the country table to use. If nil, the compiled-in one is used.
	Table *Table

	// DomesticFallback is the ISO code of the country to use for numbers which
	// don't start with a known calling code, but have exactly DomesticLength
	// digits. This is a heuristic for numbers entered without an international
	// prefix. If empty, there is no fallback.
	DomesticFallback string

	// DomesticLength is the digit count for DomesticFallback. If zero,
	// DefaultDomesticLength is used.
	DomesticLength int
}

// defaultResolver treats 10-digit numbers without a known prefix as US numbers.
var defaultResolver = Resolver{DomesticFallback: "US"}

func (r Resolver) table() *Table {
	if r.Table != nil {
		return r.Table
	}
	return defaultTable
}

// Resolve gets the country for phone.
func (r Resolver) Resolve(phone string) (Country, bool) {
	c, _, ok := r.resolve(phone)
	return c, ok
}

// resolve is like Resolve, but also returns the normalized digits.
func (r Resolver) resolve(phone string) (Country, string, bool) {
	d := Digits(phone)
	if d == "" {
		return Country{}, d, false
	}
	t := r.table()
	if c, ok := t.match(d); ok {
		return c, d, true
	}
	n := r.DomesticLength
	if n == 0 {
		n = DefaultDomesticLength
	}
	if r.DomesticFallback != "" && len(d) == n {
		if c, ok := t.ByISO(r.DomesticFallback); ok {
			return c, d, true
		}
	}
	return Country{}, d, false
}

// CountryCode gets the ISO code for phone, an empty string if it doesn't have
// any digits, or UnknownCode if it doesn't match a country.
func (r Resolver) CountryCode(phone string) string {
	c, d, ok := r.resolve(phone)
	switch {
	case ok:
		return c.Code
	case d == "":
		return ""
	default:
		return UnknownCode
	}
}

// Flag gets the flag for phone, or Unknown.
func (r Resolver) Flag(phone string) string {
	if c, ok := r.Resolve(phone); ok {
		return c.Flag
	}
	return Unknown
}

// Resolve calls Resolver.Resolve with the compiled-in table and a US domestic
// fallback.
func Resolve(phone string) (Country, bool) {
	return defaultResolver.Resolve(phone)
}

// CountryCode calls Resolver.CountryCode like Resolve.
func CountryCode(phone string) string {
	return defaultResolver.CountryCode(phone)
}

// Flag calls Resolver.Flag like Resolve.
func Flag(phone string) string {
	return defaultResolver.Flag(phone)
}

// ByISO gets a country from the compiled-in table.
func ByISO(code string) (Country, bool) {
	return defaultTable.ByISO(code)
}

// SharingCallingCode gets countries from the compiled-in table.
func SharingCallingCode(cc string) []Country {
	return defaultTable.SharingCallingCode(cc)
}

// InRegion gets countries from the compiled-in table.
func InRegion(region string) []Country {
	return defaultTable.InRegion(region)
}

// Regions gets the regions in the compiled-in table.
func Regions() []string {
	return defaultTable.Regions()
}

// All gets every country in the compiled-in table.
func All() []Country {
	return defaultTable.All()
}
