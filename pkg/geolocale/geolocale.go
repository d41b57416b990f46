// Package geolocale picks the domestic country for a request from the client
// IP address.
//
// Numbers without an international prefix are ambiguous. Instead of always
// assuming one country, the country the client is connecting from can be used.
// The location is based on an IP2Location database with at least the country
// field, and can be overridden for specific prefixes (e.g., office networks).
package geolocale

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/pg9182/ip2x"
)

// Override maps an IP prefix to a country.
type Override struct {
	Prefix  netip.Prefix
	Country string
}

// ParseOverride parses an override in the form prefix=CC, where prefix is an
// IP address or CIDR prefix, and CC is an ISO code known to callingcode.
func ParseOverride(s string) (Override, error) {
	a, cc, ok := strings.Cut(s, "=")
	if !ok {
		return Override{}, fmt.Errorf("parse override %q: missing equals sign", s)
	}
	c, ok := callingcode.ByISO(strings.TrimSpace(cc))
	if !ok {
		return Override{}, fmt.Errorf("parse override %q: unknown country %q", s, cc)
	}
	a = strings.TrimSpace(a)
	if strings.ContainsRune(a, '/') {
		pfx, err := netip.ParsePrefix(a)
		if err != nil {
			return Override{}, fmt.Errorf("parse override %q: invalid prefix: %w", s, err)
		}
		return Override{pfx.Masked(), c.Code}, nil
	}
	x, err := netip.ParseAddr(a)
	if err != nil {
		return Override{}, fmt.Errorf("parse override %q: invalid address: %w", s, err)
	}
	pfx, err := x.Prefix(x.BitLen())
	if err != nil {
		panic(err)
	}
	return Override{pfx, c.Code}, nil
}

// Locator gets the country for IP addresses.
type Locator struct {
	// Lookup gets the IP2Location record for an address. If nil, only
	// overrides are used.
	Lookup func(netip.Addr) (ip2x.Record, error)

	// Overrides are checked in order before Lookup.
	Overrides []Override
}

// Country gets the ISO code of the country for ip. If the location is unknown
// or not meaningful (e.g., a private address), an empty string is returned. If
// the database has unexpected data, an error is returned.
func (l *Locator) Country(ip netip.Addr) (string, error) {
	if !ip.IsValid() {
		return "", fmt.Errorf("invalid ip address")
	}
	ip = ip.Unmap()

	for _, o := range l.Overrides {
		if o.Prefix.Contains(ip) {
			return o.Country, nil
		}
	}

	// RFC 1918/4193, loopback, link-local -> nowhere in particular
	if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
		return "", nil
	}

	if l.Lookup == nil {
		return "", nil
	}

	r, err := l.Lookup(ip)
	if err != nil {
		return "", fmt.Errorf("lookup ip2location: %w", err)
	}

	country, ok := r.GetString(ip2x.CountryCode)
	if !ok {
		return "", fmt.Errorf("missing country field in ip2location data")
	}

	// ip2location uses "-" for reserved and unallocated ranges
	if country == "" || country == "-" {
		return "", nil
	}

	c, ok := callingcode.ByISO(country)
	if !ok {
		return "", fmt.Errorf("unhandled ip2location country %q", country)
	}
	return c.Code, nil
}
