// Package cloudflare contains Cloudflare-related stuff.
package cloudflare

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"sync"
)

// Sources are the URLs of the published Cloudflare IP ranges.
var Sources = []string{
	"https://www.cloudflare.com/ips-v4",
	"https://www.cloudflare.com/ips-v6",
}

// IPList is a set of prefixes which can be replaced while in use. The zero
// value is an empty list.
type IPList struct {
	mu sync.RWMutex
	ps []netip.Prefix
}

// Contains checks if ip is in any of the prefixes.
func (l *IPList) Contains(ip netip.Addr) bool {
	ip = ip.Unmap()

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.ps {
		if p.Contains(ip) {
			return true
		}
	}
	return false
}

// Len returns the number of prefixes.
func (l *IPList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ps)
}

// Set replaces the prefixes.
func (l *IPList) Set(ps []netip.Prefix) {
	ps = append([]netip.Prefix(nil), ps...)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ps = ps
}

// Update fetches the prefixes from every URL (Sources if none are provided)
// using c (http.DefaultClient if nil), replacing the current ones only if all
// of them succeed.
func (l *IPList) Update(ctx context.Context, c *http.Client, urls ...string) error {
	if c == nil {
		c = http.DefaultClient
	}
	if len(urls) == 0 {
		urls = Sources
	}
	var ps []netip.Prefix
	for _, u := range urls {
		x, err := fetchPrefixes(ctx, c, u)
		if err != nil {
			return fmt.Errorf("fetch %q: %w", u, err)
		}
		ps = append(ps, x...)
	}
	if len(ps) == 0 {
		return fmt.Errorf("no prefixes found")
	}
	l.Set(ps)
	return nil
}

func fetchPrefixes(ctx context.Context, c *http.Client, u string) ([]netip.Prefix, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("response status %d (%s)", resp.StatusCode, resp.Status)
	}
	return ParsePrefixes(resp.Body)
}

// ParsePrefixes parses a newline-separated list of addresses and prefixes,
// ignoring blank lines.
func ParsePrefixes(r io.Reader) ([]netip.Prefix, error) {
	var ps []netip.Prefix
	s := bufio.NewScanner(r)
	for s.Scan() {
		if t := strings.TrimSpace(s.Text()); t != "" {
			p, err := ParsePrefix(t)
			if err != nil {
				return nil, err
			}
			ps = append(ps, p)
		}
	}
	return ps, s.Err()
}

// ParsePrefix parses a CIDR prefix, or a single address as a full-length one.
func ParsePrefix(s string) (netip.Prefix, error) {
	if strings.ContainsRune(s, '/') {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid prefix %q: %w", s, err)
		}
		return p.Masked(), nil
	}
	x, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid ip %q: %w", s, err)
	}
	p, err := x.Prefix(x.BitLen())
	if err != nil {
		panic(err)
	}
	return p, nil
}
