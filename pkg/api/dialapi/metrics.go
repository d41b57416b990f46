package dialapi

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// note: for results, fail_ prefix is for errors which are likely a problem with the backend, and reject_ are for client errors

type apiMetrics struct {
	set                  *metrics.Set
	request_panics_total *metrics.Counter
	phone_requests_total struct {
		success_match      *metrics.Counter
		success_fallback   *metrics.Counter
		success_nomatch    *metrics.Counter
		success_empty      *metrics.Counter
		reject_bad_request *metrics.Counter
	}
	phone_resolved_total func(country string) *metrics.Counter
	phone_locale_total   struct {
		success_country *metrics.Counter
		success_unknown *metrics.Counter
		fail_lookup     *metrics.Counter
	}
	countries_requests_total struct {
		success_list             *metrics.Counter
		success_country          *metrics.Counter
		reject_country_not_found *metrics.Counter
	}
	callingcodes_requests_total struct {
		success            *metrics.Counter
		reject_bad_request *metrics.Counter
	}
	regions_requests_total struct {
		success_list   *metrics.Counter
		success_region *metrics.Counter
	}
	http_method_not_allowed_total *metrics.Counter
	http_not_found_total          *metrics.Counter
}

func (h *Handler) Metrics() *metrics.Set {
	return h.m().set
}

func (h *Handler) WritePrometheus(w io.Writer) {
	h.m().set.WritePrometheus(w)
}

// m gets metrics objects for h.
func (h *Handler) m() *apiMetrics {
	h.metricsInit.Do(func() {
		mo := &h.metricsObj
		mo.set = metrics.NewSet()
		mo.request_panics_total = mo.set.NewCounter(`dialcode_api_request_panics_total`)
		mo.phone_requests_total.success_match = mo.set.NewCounter(`dialcode_api_phone_requests_total{result="success_match"}`)
		mo.phone_requests_total.success_fallback = mo.set.NewCounter(`dialcode_api_phone_requests_total{result="success_fallback"}`)
		mo.phone_requests_total.success_nomatch = mo.set.NewCounter(`dialcode_api_phone_requests_total{result="success_nomatch"}`)
		mo.phone_requests_total.success_empty = mo.set.NewCounter(`dialcode_api_phone_requests_total{result="success_empty"}`)
		mo.phone_requests_total.reject_bad_request = mo.set.NewCounter(`dialcode_api_phone_requests_total{result="reject_bad_request"}`)
		mo.phone_resolved_total = func(country string) *metrics.Counter {
			return mo.set.GetOrCreateCounter(`dialcode_api_phone_resolved_total{country="` + country + `"}`)
		}
		mo.phone_locale_total.success_country = mo.set.NewCounter(`dialcode_api_phone_locale_total{result="success_country"}`)
		mo.phone_locale_total.success_unknown = mo.set.NewCounter(`dialcode_api_phone_locale_total{result="success_unknown"}`)
		mo.phone_locale_total.fail_lookup = mo.set.NewCounter(`dialcode_api_phone_locale_total{result="fail_lookup"}`)
		mo.countries_requests_total.success_list = mo.set.NewCounter(`dialcode_api_countries_requests_total{result="success_list"}`)
		mo.countries_requests_total.success_country = mo.set.NewCounter(`dialcode_api_countries_requests_total{result="success_country"}`)
		mo.countries_requests_total.reject_country_not_found = mo.set.NewCounter(`dialcode_api_countries_requests_total{result="reject_country_not_found"}`)
		mo.callingcodes_requests_total.success = mo.set.NewCounter(`dialcode_api_callingcodes_requests_total{result="success"}`)
		mo.callingcodes_requests_total.reject_bad_request = mo.set.NewCounter(`dialcode_api_callingcodes_requests_total{result="reject_bad_request"}`)
		mo.regions_requests_total.success_list = mo.set.NewCounter(`dialcode_api_regions_requests_total{result="success_list"}`)
		mo.regions_requests_total.success_region = mo.set.NewCounter(`dialcode_api_regions_requests_total{result="success_region"}`)
		mo.http_method_not_allowed_total = mo.set.NewCounter(`dialcode_api_http_method_not_allowed_total`)
		mo.http_not_found_total = mo.set.NewCounter(`dialcode_api_http_not_found_total`)
	})
	return &h.metricsObj
}
