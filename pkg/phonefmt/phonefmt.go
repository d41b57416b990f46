// Package phonefmt formats phone numbers for display using libphonenumber
// metadata.
package phonefmt

import (
	"strings"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/nyaruka/phonenumbers"
)

// Result contains the canonical forms of a phone number. If the number could
// not be parsed, all strings are empty.
type Result struct {
	E164          string `json:"e164"`
	International string `json:"international"`
	National      string `json:"national"`
	Region        string `json:"region"` // per libphonenumber, may differ from the calling code table
	Valid         bool   `json:"valid"`
}

// Format parses phone in the context of the ISO country region (usually the
// one the number was resolved to). If the digits already start with the
// region's calling code, or the number has a leading plus sign, it is parsed as
// an international number. Otherwise, it is parsed as a national number.
func Format(phone, region string) Result {
	d := callingcode.Digits(phone)
	if d == "" {
		return Result{}
	}

	num := d
	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		num = "+" + d
	} else if c, ok := callingcode.ByISO(region); ok && strings.HasPrefix(d, c.CallingCode) {
		num = "+" + d
	}

	pn, err := phonenumbers.Parse(num, strings.ToUpper(region))
	if err != nil {
		return Result{}
	}
	return Result{
		E164:          phonenumbers.Format(pn, phonenumbers.E164),
		International: phonenumbers.Format(pn, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(pn, phonenumbers.NATIONAL),
		Region:        phonenumbers.GetRegionCodeForNumber(pn),
		Valid:         phonenumbers.IsValidNumber(pn),
	}
}
