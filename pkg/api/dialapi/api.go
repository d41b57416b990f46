// Package dialapi implements a read-only HTTP API for the calling code table.
//
// All endpoints support GET, HEAD and OPTIONS, and allow CORS requests from
// all origins since the back-office UI is served separately. Responses are JSON
// objects with a boolean success field, and an error object if it is false.
package dialapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/julienschmidt/httprouter"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/hlog"
)

// Handler serves the calling code API.
type Handler struct {
	// Table is the country table. If nil, the compiled-in one is used.
	Table *callingcode.Table

	// DomesticFallback is the default ISO code for numbers without a known
	// calling code (see callingcode.Resolver). If empty, there is no fallback.
	DomesticFallback string

	// DomesticLength is the digit count for DomesticFallback. If zero, the
	// callingcode default is used.
	DomesticLength int

	// Locale gets the domestic fallback country for a request. If it returns
	// an empty string or an error, DomesticFallback is used.
	Locale func(*http.Request) (string, error)

	// CacheMaxAge is how long clients may cache reference data. If zero,
	// responses are not cached.
	CacheMaxAge time.Duration

	// NotFound handles requests not handled by this Handler.
	NotFound http.Handler

	routerInit sync.Once
	router     *httprouter.Router

	metricsInit sync.Once
	metricsObj  apiMetrics
}

// ServeHTTP routes requests to Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var notPanicked bool // this lets us catch panics without swallowing them
	defer func() {
		if !notPanicked {
			h.m().request_panics_total.Inc()
		}
	}()

	w.Header().Set("Server", "dialcode")

	h.routerInit.Do(h.initRouter)
	h.router.ServeHTTP(w, r)

	notPanicked = true
}

func (h *Handler) initRouter() {
	x := httprouter.New()
	x.RedirectTrailingSlash = true
	x.RedirectFixedPath = false
	x.HandleMethodNotAllowed = true
	x.HandleOPTIONS = true

	x.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORS(w)
		w.WriteHeader(http.StatusNoContent)
	})
	x.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.m().http_method_not_allowed_total.Inc()
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})
	x.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.NotFound != nil {
			h.NotFound.ServeHTTP(w, r)
			return
		}
		h.m().http_not_found_total.Inc()
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	for p, fn := range map[string]httprouter.Handle{
		"/v1/phone":                     h.handlePhone,
		"/v1/countries":                 h.handleCountries,
		"/v1/countries/:code":           h.handleCountry,
		"/v1/calling-codes/:code":       h.handleCallingCode,
		"/v1/regions":                   h.handleRegions,
		"/v1/regions/:region/countries": h.handleRegion,
	} {
		x.GET(p, fn)
		x.HEAD(p, fn)
	}
	h.router = x
}

func (h *Handler) table() *callingcode.Table {
	if h.Table != nil {
		return h.Table
	}
	return callingcode.Default()
}

func (h *Handler) resolver() callingcode.Resolver {
	return callingcode.Resolver{
		Table:            h.table(),
		DomesticFallback: h.DomesticFallback,
		DomesticLength:   h.DomesticLength,
	}
}

// setCORS allows CORS requests from all origins.
func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "OPTIONS, GET, HEAD")
	w.Header().Set("Access-Control-Max-Age", "86400")
}

// setCache sets the caching headers for reference data.
func (h *Handler) setCache(w http.ResponseWriter) {
	if h.CacheMaxAge <= 0 {
		setNoCache(w)
		return
	}
	s := int(h.CacheMaxAge / time.Second)
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(s))
	w.Header().Set("Expires", time.Now().UTC().Add(h.CacheMaxAge).Format(http.TimeFormat))
}

func setNoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "private, no-cache, no-store")
	w.Header().Set("Expires", "0")
	w.Header().Set("Pragma", "no-cache")
}

// respFail writes a {success:false,error:ErrorObj} response with the provided
// response status.
func respFail(w http.ResponseWriter, r *http.Request, status int, obj ErrorObj) {
	if rid, ok := hlog.IDFromRequest(r); ok {
		respJSON(w, r, status, map[string]any{
			"success":    false,
			"error":      obj,
			"request_id": rid.String(),
		})
	} else {
		respJSON(w, r, status, map[string]any{
			"success": false,
			"error":   obj,
		})
	}
}

// respJSON writes the JSON encoding of obj with the provided response status,
// compressing it if worthwhile.
func respJSON(w http.ResponseWriter, r *http.Request, status int, obj any) {
	buf, err := json.Marshal(obj)
	if err != nil {
		panic(err)
	}
	hlog.FromRequest(r).Trace().Msgf("json api response %.2048s", string(buf))
	buf = append(buf, '\n')
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	respMaybeCompress(w, r, status, buf)
}

// respMaybeCompress writes buf with the provided response status, compressing
// it with gzip if the client supports it and the result is smaller.
func respMaybeCompress(w http.ResponseWriter, r *http.Request, status int, buf []byte) {
	w.Header().Add("Vary", "Accept-Encoding")
	if len(buf) > 512 {
		for _, e := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
			if t, _, _ := strings.Cut(e, ";"); strings.TrimSpace(t) == "gzip" {
				var cbuf bytes.Buffer
				gw := gzip.NewWriter(&cbuf)
				if _, err := gw.Write(buf); err != nil {
					break
				}
				if err := gw.Close(); err != nil {
					break
				}
				if cbuf.Len() < int(float64(len(buf))*0.8) {
					buf = cbuf.Bytes()
					w.Header().Set("Content-Encoding", "gzip")
				}
				break
			}
		}
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		w.Write(buf)
	}
}
