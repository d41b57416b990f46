package dialapi

import (
	"net/http"
	"strings"

	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/hammerhouse/dialcode/pkg/phonefmt"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/hlog"
)

type phoneResponse struct {
	Success bool                 `json:"success"`
	Number  string               `json:"number"`
	Digits  string               `json:"digits"`
	Display string               `json:"display"`
	Code    string               `json:"code"`
	Flag    string               `json:"flag"`
	Country *callingcode.Country `json:"country"`
	Format  *phonefmt.Result     `json:"format"`
}

func (h *Handler) handlePhone(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	setCORS(w)

	q := r.URL.Query()
	if !q.Has("number") {
		setNoCache(w)
		h.m().phone_requests_total.reject_bad_request.Inc()
		respFail(w, r, http.StatusBadRequest, ErrorCode_BAD_REQUEST.MessageObjf("missing number parameter"))
		return
	}
	number := q.Get("number")

	res := h.resolver()
	if h.Locale != nil {
		// the response depends on the client address
		setNoCache(w)
		if cc, err := h.Locale(r); err != nil {
			h.m().phone_locale_total.fail_lookup.Inc()
			hlog.FromRequest(r).Warn().
				Err(err).
				Str("request_ip", r.RemoteAddr).
				Msg("failed to get client locale")
		} else if cc != "" {
			h.m().phone_locale_total.success_country.Inc()
			res.DomesticFallback = cc
		} else {
			h.m().phone_locale_total.success_unknown.Inc()
		}
	} else {
		h.setCache(w)
	}

	resp := phoneResponse{
		Success: true,
		Number:  number,
		Digits:  callingcode.Digits(number),
		Display: callingcode.NormalizeDisplay(number),
		Code:    res.CountryCode(number),
		Flag:    res.Flag(number),
	}
	if c, ok := res.Resolve(number); ok {
		f := phonefmt.Format(number, c.Code)
		resp.Country = &c
		resp.Format = &f

		if _, prefixed := (callingcode.Resolver{Table: res.Table}).Resolve(number); prefixed {
			h.m().phone_requests_total.success_match.Inc()
		} else {
			h.m().phone_requests_total.success_fallback.Inc()
		}
		h.m().phone_resolved_total(c.Code).Inc()
	} else if resp.Digits == "" {
		h.m().phone_requests_total.success_empty.Inc()
	} else {
		h.m().phone_requests_total.success_nomatch.Inc()
	}

	hlog.FromRequest(r).Debug().
		Str("phone_digits", resp.Digits).
		Str("phone_country", resp.Code).
		Str("domestic_fallback", res.DomesticFallback).
		Msg("resolve phone number")

	respJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleCountries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	setCORS(w)
	h.setCache(w)
	h.m().countries_requests_total.success_list.Inc()
	respJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"countries": h.table().All(),
	})
}

func (h *Handler) handleCountry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setCORS(w)
	h.setCache(w)

	code := ps.ByName("code")
	c, ok := h.table().ByISO(code)
	if !ok {
		h.m().countries_requests_total.reject_country_not_found.Inc()
		respFail(w, r, http.StatusNotFound, ErrorCode_COUNTRY_NOT_FOUND.MessageObjf("no country with iso code %q", code))
		return
	}
	h.m().countries_requests_total.success_country.Inc()
	respJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"country": c,
		"display": c.Display(),
		"shared":  len(h.table().SharingCallingCode(c.CallingCode)) > 1,
	})
}

func (h *Handler) handleCallingCode(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setCORS(w)
	h.setCache(w)

	cc := strings.TrimPrefix(ps.ByName("code"), "+")
	if cc == "" || callingcode.Digits(cc) != cc {
		h.m().callingcodes_requests_total.reject_bad_request.Inc()
		respFail(w, r, http.StatusBadRequest, ErrorCode_BAD_REQUEST.MessageObjf("invalid calling code %q", ps.ByName("code")))
		return
	}

	cs := h.table().SharingCallingCode(cc)

	// the country an exact calling code resolves to
	var winner *callingcode.Country
	if len(cs) != 0 {
		if c, ok := (callingcode.Resolver{Table: h.table()}).Resolve(cc); ok {
			winner = &c
		}
	}

	h.m().callingcodes_requests_total.success.Inc()
	respJSON(w, r, http.StatusOK, map[string]any{
		"success":      true,
		"calling_code": cc,
		"countries":    cs,
		"country":      winner,
	})
}

func (h *Handler) handleRegions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	setCORS(w)
	h.setCache(w)

	rs := h.table().Regions()
	if rs == nil {
		rs = []string{}
	}
	h.m().regions_requests_total.success_list.Inc()
	respJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"regions": rs,
	})
}

func (h *Handler) handleRegion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setCORS(w)
	h.setCache(w)

	region := ps.ByName("region")
	cs := h.table().InRegion(region)
	if cs == nil {
		cs = []callingcode.Country{}
	}
	h.m().regions_requests_total.success_region.Inc()
	respJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"region":    region,
		"countries": cs,
	})
}
