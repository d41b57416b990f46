package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
)

func TestLookup(t *testing.T) {
	var b strings.Builder
	err := lookupReader(&b, callingcode.Resolver{DomesticFallback: "US"}, false, strings.NewReader("+44 20 7031 3000\n\n  0712345678 \n07123456789\n"))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), b.String())
	}
	for i, exp := range [][]string{
		{"+44 20 7031 3000", "442070313000", "GB", "🇬🇧", "United Kingdom", "+44", "+442070313000"},
		{"0712345678", "0712345678", "US", "🇺🇸", "United States", "+1"},
		{"07123456789", "07123456789", "UNK", "🌐", "", ""},
	} {
		act := strings.Split(lines[i], "\t")
		if len(act) != 7 {
			t.Errorf("line %d: expected 7 columns, got %d", i, len(act))
			continue
		}
		for j := range exp {
			if act[j] != exp[j] {
				t.Errorf("line %d column %d: expected %q, got %q", i, j, exp[j], act[j])
			}
		}
	}
}

func TestLookupJSON(t *testing.T) {
	var b strings.Builder
	if err := lookup(&b, callingcode.Resolver{}, true, "+7 701 123 4567", "0712345678"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	dec := json.NewDecoder(strings.NewReader(b.String()))
	for _, exp := range []string{"RU", "UNK"} {
		var r result
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if r.Code != exp {
			t.Errorf("expected %s, got %s", exp, r.Code)
		}
	}
}
