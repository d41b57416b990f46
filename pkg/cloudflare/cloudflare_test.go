package cloudflare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"
)

func TestParsePrefixes(t *testing.T) {
	ps, err := ParsePrefixes(strings.NewReader("173.245.48.0/20\n\n  103.21.244.1/22 \n2400:cb00::/32\n192.0.2.1\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	exp := []string{"173.245.48.0/20", "103.21.244.0/22", "2400:cb00::/32", "192.0.2.1/32"}
	if len(ps) != len(exp) {
		t.Fatalf("expected %d prefixes, got %d", len(exp), len(ps))
	}
	for i, p := range ps {
		if p.String() != exp[i] {
			t.Errorf("prefix %d: expected %s, got %s", i, exp[i], p)
		}
	}

	if _, err := ParsePrefixes(strings.NewReader("173.245.48.0/20\nnope\n")); err == nil {
		t.Errorf("expected error for invalid prefix")
	}
}

func TestUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ips-v4":
			w.Write([]byte("173.245.48.0/20\n103.21.244.0/22\n"))
		case "/ips-v6":
			w.Write([]byte("2400:cb00::/32\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var l IPList
	if err := l.Update(context.Background(), srv.Client(), srv.URL+"/ips-v4", srv.URL+"/ips-v6"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if l.Len() != 3 {
		t.Errorf("expected 3 prefixes, got %d", l.Len())
	}
	for ip, exp := range map[string]bool{
		"173.245.48.1":        true,
		"::ffff:173.245.48.1": true,
		"2400:cb00::1":        true,
		"192.0.2.1":           false,
		"2001:db8::1":         false,
	} {
		if act := l.Contains(netip.MustParseAddr(ip)); act != exp {
			t.Errorf("contains %s: expected %t, got %t", ip, exp, act)
		}
	}

	if err := l.Update(context.Background(), srv.Client(), srv.URL+"/ips-v4", srv.URL+"/missing"); err == nil {
		t.Errorf("expected error for missing list")
	}
	if l.Len() != 3 {
		t.Errorf("expected failed update to keep the old prefixes")
	}
}

func TestRealIP(t *testing.T) {
	var l IPList
	l.Set([]netip.Prefix{netip.MustParsePrefix("173.245.48.0/20")})

	var errs int
	h := RealIP(&l, func(r *http.Request, err error) {
		errs++
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.RemoteAddr))
	}))

	for _, tc := range []struct {
		RemoteAddr string
		CFIP       string
		Exp        string
		Err        bool
	}{
		{"173.245.48.1:1234", "198.51.100.7", "198.51.100.7:1234", false},
		{"173.245.48.1:1234", "", "173.245.48.1:1234", false},
		{"192.0.2.1:1234", "198.51.100.7", "192.0.2.1:1234", true},
		{"173.245.48.1:1234", "nope", "173.245.48.1:1234", true},
	} {
		errs = 0
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = tc.RemoteAddr
		if tc.CFIP != "" {
			r.Header.Set("CF-Connecting-IP", tc.CFIP)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		if act := w.Body.String(); act != tc.Exp {
			t.Errorf("%s (%q): expected remote addr %s, got %s", tc.RemoteAddr, tc.CFIP, tc.Exp, act)
		}
		if (errs != 0) != tc.Err {
			t.Errorf("%s (%q): expected error %t, got %d errors", tc.RemoteAddr, tc.CFIP, tc.Err, errs)
		}
		if r.RemoteAddr != tc.RemoteAddr {
			t.Errorf("original request was modified")
		}
	}
}
