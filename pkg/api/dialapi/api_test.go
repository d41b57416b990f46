package dialapi

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func doRequest(t *testing.T, h http.Handler, method, target string, hdr ...string) *http.Response {
	t.Helper()
	r := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(hdr); i += 2 {
		r.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w.Result()
}

func decodeResponse(t *testing.T, resp *http.Response, status int) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != status {
		t.Fatalf("expected status %d, got %d", status, resp.StatusCode)
	}
	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			t.Fatalf("read gzip response: %v", err)
		}
		body = zr
	}
	var obj map[string]any
	if err := json.NewDecoder(body).Decode(&obj); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return obj
}

func phoneQuery(number string) string {
	return "/v1/phone?number=" + url.QueryEscape(number)
}

func TestPhone(t *testing.T) {
	h := &Handler{DomesticFallback: "US"}
	for _, tc := range []struct {
		Number  string
		Code    string
		Display string
		E164    string
	}{
		{"+44 20 7031 3000", "GB", "+44 20 7031 3000", "+442070313000"},
		{"16502530000", "US", "+16502530000", "+16502530000"},
		{"+1 876 555 0100", "JM", "+1 876 555 0100", ""},
		{"0712345678", "US", "+0712345678", ""},
		{"07123456789", "UNK", "+07123456789", ""},
		{"", "", "+", ""},
		{"abc", "", "+abc", ""},
	} {
		t.Run(tc.Number, func(t *testing.T) {
			obj := decodeResponse(t, doRequest(t, h, http.MethodGet, phoneQuery(tc.Number)), http.StatusOK)
			if obj["success"] != true {
				t.Errorf("expected success")
			}
			if obj["code"] != tc.Code {
				t.Errorf("expected code %q, got %v", tc.Code, obj["code"])
			}
			if obj["display"] != tc.Display {
				t.Errorf("expected display %q, got %v", tc.Display, obj["display"])
			}
			country, _ := obj["country"].(map[string]any)
			switch tc.Code {
			case "", "UNK":
				if country != nil {
					t.Errorf("expected no country, got %v", country)
				}
				if obj["flag"] != "🌐" {
					t.Errorf("expected unknown flag, got %v", obj["flag"])
				}
			default:
				if country == nil || country["code"] != tc.Code {
					t.Errorf("expected country %s, got %v", tc.Code, country)
				}
			}
			if tc.E164 != "" {
				format, _ := obj["format"].(map[string]any)
				if format == nil || format["e164"] != tc.E164 {
					t.Errorf("expected e164 %q, got %v", tc.E164, format)
				}
			}
		})
	}
}

func TestPhoneMissingNumber(t *testing.T) {
	h := &Handler{}
	obj := decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/phone"), http.StatusBadRequest)
	if obj["success"] != false {
		t.Errorf("expected failure")
	}
	if e, _ := obj["error"].(map[string]any); e == nil || e["enum"] != string(ErrorCode_BAD_REQUEST) {
		t.Errorf("expected %s error, got %v", ErrorCode_BAD_REQUEST, obj["error"])
	}
}

func TestPhoneNoFallback(t *testing.T) {
	h := &Handler{}
	obj := decodeResponse(t, doRequest(t, h, http.MethodGet, phoneQuery("0712345678")), http.StatusOK)
	if obj["code"] != "UNK" {
		t.Errorf("expected UNK without a domestic fallback, got %v", obj["code"])
	}
}

func TestPhoneLocale(t *testing.T) {
	var locale string
	var lerr error
	h := &Handler{
		DomesticFallback: "US",
		Locale: func(r *http.Request) (string, error) {
			return locale, lerr
		},
	}
	for _, tc := range []struct {
		Locale string
		Err    error
		Code   string
	}{
		{"GB", nil, "GB"},
		{"", nil, "US"},
		{"GB", errors.New("lookup failed"), "US"},
	} {
		locale, lerr = tc.Locale, tc.Err
		resp := doRequest(t, h, http.MethodGet, phoneQuery("0712345678"))
		if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "no-store") {
			t.Errorf("expected locale-dependent response not to be cached, got %q", cc)
		}
		if obj := decodeResponse(t, resp, http.StatusOK); obj["code"] != tc.Code {
			t.Errorf("locale %q (err %v): expected code %s, got %v", tc.Locale, tc.Err, tc.Code, obj["code"])
		}
	}

	// an international number ignores the locale
	locale, lerr = "GB", nil
	if obj := decodeResponse(t, doRequest(t, h, http.MethodGet, phoneQuery("+16502530000")), http.StatusOK); obj["code"] != "US" {
		t.Errorf("expected US, got %v", obj["code"])
	}
}

func TestCountries(t *testing.T) {
	h := &Handler{}

	obj := decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/countries"), http.StatusOK)
	if cs, _ := obj["countries"].([]any); len(cs) != h.table().Len() {
		t.Errorf("expected %d countries, got %d", h.table().Len(), len(cs))
	}

	for _, code := range []string{"GB", "gb"} {
		obj = decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/countries/"+code), http.StatusOK)
		if c, _ := obj["country"].(map[string]any); c == nil || c["code"] != "GB" || c["calling_code"] != "44" {
			t.Errorf("expected GB, got %v", obj["country"])
		}
		if obj["display"] != "+44" {
			t.Errorf("expected display +44, got %v", obj["display"])
		}
		if obj["shared"] != false {
			t.Errorf("expected +44 not to be shared")
		}
	}

	obj = decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/countries/CA"), http.StatusOK)
	if obj["shared"] != true {
		t.Errorf("expected +1 to be shared")
	}

	obj = decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/countries/ZZ"), http.StatusNotFound)
	if e, _ := obj["error"].(map[string]any); e == nil || e["enum"] != string(ErrorCode_COUNTRY_NOT_FOUND) {
		t.Errorf("expected %s error, got %v", ErrorCode_COUNTRY_NOT_FOUND, obj["error"])
	}
}

func TestCallingCode(t *testing.T) {
	h := &Handler{}
	for _, tc := range []struct {
		Path    string
		Status  int
		Winner  string
		Members []string
	}{
		{"/v1/calling-codes/1", http.StatusOK, "US", []string{"US", "CA"}},
		{"/v1/calling-codes/+7", http.StatusOK, "RU", []string{"RU", "KZ"}},
		{"/v1/calling-codes/44", http.StatusOK, "GB", []string{"GB"}},
		{"/v1/calling-codes/999", http.StatusOK, "", nil},
		{"/v1/calling-codes/abc", http.StatusBadRequest, "", nil},
		{"/v1/calling-codes/+", http.StatusBadRequest, "", nil},
	} {
		obj := decodeResponse(t, doRequest(t, h, http.MethodGet, tc.Path), tc.Status)
		if tc.Status != http.StatusOK {
			continue
		}
		cs, ok := obj["countries"].([]any)
		if !ok {
			t.Errorf("%s: expected countries array, got %v", tc.Path, obj["countries"])
			continue
		}
		for _, m := range tc.Members {
			var found bool
			for _, c := range cs {
				if c.(map[string]any)["code"] == m {
					found = true
				}
			}
			if !found {
				t.Errorf("%s: expected %s in countries", tc.Path, m)
			}
		}
		if tc.Winner == "" {
			if obj["country"] != nil || len(cs) != 0 {
				t.Errorf("%s: expected no countries, got %v", tc.Path, obj)
			}
		} else if c, _ := obj["country"].(map[string]any); c == nil || c["code"] != tc.Winner {
			t.Errorf("%s: expected winner %s, got %v", tc.Path, tc.Winner, obj["country"])
		}
	}
}

func TestRegions(t *testing.T) {
	h := &Handler{}

	obj := decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/regions"), http.StatusOK)
	rs, _ := obj["regions"].([]any)
	if len(rs) != len(h.table().Regions()) {
		t.Errorf("expected %d regions, got %d", len(h.table().Regions()), len(rs))
	}

	obj = decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/regions/europe/countries"), http.StatusOK)
	var gb bool
	cs, _ := obj["countries"].([]any)
	for _, c := range cs {
		if c := c.(map[string]any); c["code"] == "GB" {
			gb = true
		}
		if c := c.(map[string]any); c["region"] != "Europe" {
			t.Errorf("unexpected country %v in Europe", c["code"])
		}
	}
	if !gb {
		t.Errorf("expected GB in Europe")
	}

	obj = decodeResponse(t, doRequest(t, h, http.MethodGet, "/v1/regions/Atlantis/countries"), http.StatusOK)
	if cs, ok := obj["countries"].([]any); !ok || len(cs) != 0 {
		t.Errorf("expected empty countries array, got %v", obj["countries"])
	}
}

func TestRouting(t *testing.T) {
	h := &Handler{}

	if resp := doRequest(t, h, http.MethodPost, "/v1/countries"); resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected POST to be rejected, got status %d", resp.StatusCode)
	}
	if resp := doRequest(t, h, http.MethodGet, "/v2/countries"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected unknown path to be not found, got status %d", resp.StatusCode)
	}

	resp := doRequest(t, h, http.MethodOptions, "/v1/countries")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected OPTIONS to return no content, got status %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("expected CORS headers")
	}

	resp = doRequest(t, h, http.MethodHead, "/v1/countries")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected HEAD to succeed, got status %d", resp.StatusCode)
	}
	if buf, _ := io.ReadAll(resp.Body); len(buf) != 0 {
		t.Errorf("expected empty HEAD response body")
	}

	h = &Handler{
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	}
	if resp := doRequest(t, h, http.MethodGet, "/metrics"); resp.StatusCode != http.StatusTeapot {
		t.Errorf("expected fallback handler to be used, got status %d", resp.StatusCode)
	}
}

func TestResponseHeaders(t *testing.T) {
	h := &Handler{CacheMaxAge: time.Hour}

	resp := doRequest(t, h, http.MethodGet, "/v1/countries", "Accept-Encoding", "gzip")
	if resp.Header.Get("Content-Encoding") != "gzip" {
		t.Errorf("expected country list to be compressed")
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "public, max-age=3600" {
		t.Errorf("unexpected Cache-Control %q", cc)
	}
	decodeResponse(t, resp, http.StatusOK)

	resp = doRequest(t, h, http.MethodGet, "/v1/countries/GB", "Accept-Encoding", "gzip")
	if resp.Header.Get("Content-Encoding") != "" {
		t.Errorf("expected small response not to be compressed")
	}
	decodeResponse(t, resp, http.StatusOK)

	h = &Handler{}
	resp = doRequest(t, h, http.MethodGet, "/v1/countries/GB")
	if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Errorf("expected response not to be cached without a max age, got %q", cc)
	}
	resp.Body.Close()
}

func TestMetrics(t *testing.T) {
	h := &Handler{DomesticFallback: "US"}
	for _, n := range []string{"+447031300000", "0712345678", "07123456789", ""} {
		doRequest(t, h, http.MethodGet, phoneQuery(n)).Body.Close()
	}
	doRequest(t, h, http.MethodGet, "/v1/phone").Body.Close()

	var b strings.Builder
	h.WritePrometheus(&b)
	for _, exp := range []string{
		`dialcode_api_phone_requests_total{result="success_match"} 1`,
		`dialcode_api_phone_requests_total{result="success_fallback"} 1`,
		`dialcode_api_phone_requests_total{result="success_nomatch"} 1`,
		`dialcode_api_phone_requests_total{result="success_empty"} 1`,
		`dialcode_api_phone_requests_total{result="reject_bad_request"} 1`,
		`dialcode_api_phone_resolved_total{country="GB"} 1`,
		`dialcode_api_phone_resolved_total{country="US"} 1`,
	} {
		if !strings.Contains(b.String(), exp+"\n") {
			t.Errorf("expected metric %q", exp)
		}
	}
}
