// Package dialcode runs the dialcode server.
package dialcode

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config contains the configuration for the dialcode server. The env struct tag
// contains the environment variable name and the default value if missing, or
// empty (if not ?=). All string arrays are comma-separated.
type Config struct {
	// The addresses to listen on (comma-separated).
	Addr []string `env:"DIALCODE_ADDR?=:8080"`

	// Comma-separated list of case-insensitive hostnames to accept via the Host
	// header. If not provided, all hostnames are allowed.
	Host []string `env:"DIALCODE_HOST"`

	// Whether to trust the CF-Connecting-IP header from Cloudflare addresses.
	// This matters when the domestic fallback depends on the client location.
	Cloudflare bool `env:"DIALCODE_CLOUDFLARE"`

	// Comma-separated list of Cloudflare prefixes. If not provided, the
	// published lists are fetched at startup and refreshed daily.
	CloudflareIPs []string `env:"DIALCODE_CLOUDFLARE_IPS"`

	// The minimum log level (e.g., trace, debug, info, warn, error, fatal).
	LogLevel zerolog.Level `env:"DIALCODE_LOG_LEVEL=debug"`

	// Whether to log to stdout.
	LogStdout bool `env:"DIALCODE_LOG_STDOUT=true"`

	// Whether to use pretty logs.
	LogStdoutPretty bool `env:"DIALCODE_LOG_STDOUT_PRETTY=true"`

	// The minimum log level for stdout.
	LogStdoutLevel zerolog.Level `env:"DIALCODE_LOG_STDOUT_LEVEL=trace"`

	// The log file to output to, if provided. Reopened on SIGHUP.
	LogFile string `env:"DIALCODE_LOG_FILE"`

	// The minimum log level for the log file.
	LogFileLevel zerolog.Level `env:"DIALCODE_LOG_FILE_LEVEL=info"`

	// The permissions for the log file.
	LogFileChmod fs.FileMode `env:"DIALCODE_LOG_FILE_CHMOD"`

	// The ISO code of the country to assume for numbers without a known
	// calling code, but with exactly DomesticLength digits. If set to an empty
	// string or "none", there is no fallback.
	DomesticFallback string `env:"DIALCODE_DOMESTIC_FALLBACK?=US"`

	// The number of digits for the domestic fallback.
	DomesticLength int `env:"DIALCODE_DOMESTIC_LENGTH=10"`

	// Whether to use the country of the client IP (see IP2Location and
	// DomesticFallbackOverride) as the domestic fallback, if known.
	DomesticFallbackGeo bool `env:"DIALCODE_DOMESTIC_FALLBACK_GEO"`

	// Domestic fallback overrides for client IPs. Comma-separated list of
	// prefix=CC (example: 10.0.0.0/8=CA).
	DomesticFallbackOverride []string `env:"DIALCODE_DOMESTIC_FALLBACK_OVERRIDE"`

	// The path to the IP2Location database, which should contain at least the
	// country field. It can be replaced while running, and reloaded with
	// SIGHUP.
	IP2Location string `env:"DIALCODE_IP2LOCATION"`

	// How long clients may cache reference data. If zero, nothing is cached.
	CacheMaxAge time.Duration `env:"DIALCODE_CACHE_MAX_AGE=1h"`

	// Secret token for accessing process metrics. If it begins with @, it is
	// treated as the name of a systemd credential to load.
	MetricsSecret string `env:"DIALCODE_METRICS_SECRET" sdcreds:"load,trimspace"`

	// For sd-notify.
	NotifySocket string `env:"NOTIFY_SOCKET"`
}

// UnmarshalEnv unmarshals an array of environment variables into c, setting
// default values as appropriate. If incremental is true, default values will
// not be set for missing env vars, but only for empty ones.
func (c *Config) UnmarshalEnv(es []string, incremental bool) error {
	em := map[string]string{}
	for _, e := range es {
		if strings.HasPrefix(e, "DIALCODE_") || strings.HasPrefix(e, "NOTIFY_SOCKET=") {
			if k, v, ok := strings.Cut(e, "="); ok {
				em[k] = v
			}
		}
	}
	cv := reflect.ValueOf(c).Elem()
	for _, ctf := range reflect.VisibleFields(cv.Type()) {
		env, ok := ctf.Tag.Lookup("env")
		if !ok {
			continue
		}

		// a trailing ? on the key means it can be explicitly set to an empty
		// value instead of the default
		key, val, _ := strings.Cut(env, "=")
		key, unsettable := strings.CutSuffix(key, "?")

		if v, exists := em[key]; exists {
			v, err := sdcreds(v, ctf.Tag.Get("sdcreds"))
			if err != nil {
				return fmt.Errorf("env %s: expand systemd credentials: %w", key, err)
			}
			if unsettable || v != "" {
				val = v
			}
			delete(em, key)
		} else if incremental {
			continue
		}

		if err := setEnvField(cv.FieldByIndex(ctf.Index), val); err != nil {
			return fmt.Errorf("env %s (%s): %w", key, ctf.Type, err)
		}
	}
	for key, val := range em {
		if val != "" {
			return fmt.Errorf("unknown environment variable %q", key)
		}
	}
	return nil
}

// setEnvField parses val into f. Empty values are the zero value, except for
// log levels and durations, which must always be valid.
func setEnvField(f reflect.Value, val string) error {
	switch f.Interface().(type) {
	case string:
		f.SetString(val)
	case int:
		if val == "" {
			f.SetInt(0)
		} else if v, err := strconv.ParseInt(val, 10, 64); err == nil {
			f.SetInt(v)
		} else {
			return fmt.Errorf("parse %q: %w", val, err)
		}
	case bool:
		if val == "" {
			f.SetBool(false)
		} else if v, err := strconv.ParseBool(val); err == nil {
			f.SetBool(v)
		} else {
			return fmt.Errorf("parse %q: %w", val, err)
		}
	case []string:
		if val == "" {
			f.Set(reflect.ValueOf([]string{}))
		} else {
			f.Set(reflect.ValueOf(strings.Split(val, ",")))
		}
	case zerolog.Level:
		if v, err := zerolog.ParseLevel(val); err == nil {
			f.Set(reflect.ValueOf(v))
		} else {
			return fmt.Errorf("parse %q: %w", val, err)
		}
	case time.Duration:
		if v, err := time.ParseDuration(val); err == nil {
			f.Set(reflect.ValueOf(v))
		} else {
			return fmt.Errorf("parse %q: %w", val, err)
		}
	case fs.FileMode:
		if val == "" {
			f.Set(reflect.ValueOf(fs.FileMode(0)))
		} else if v, err := strconv.ParseUint(val, 8, 32); err == nil {
			f.Set(reflect.ValueOf(fs.FileMode(v)))
		} else {
			return fmt.Errorf("parse %q: %w", val, err)
		}
	default:
		return fmt.Errorf("unhandled type")
	}
	return nil
}

// sdcreds expands systemd credentials in v (prefixed by "@") according to tag,
// which is empty (v is returned unchanged) or "load", optionally followed by
// ",trimspace" to trim whitespace from the credential contents.
func sdcreds(v string, tag string) (string, error) {
	if tag == "" {
		return v, nil
	}

	mode, args, _ := strings.Cut(tag, ",")
	if mode != "load" {
		return "", fmt.Errorf("invalid struct tag %q", tag)
	}
	var trimspace bool
	for _, arg := range strings.Split(args, ",") {
		switch arg {
		case "":
		case "trimspace":
			trimspace = true
		default:
			return "", fmt.Errorf("invalid struct tag %q arg %q", tag, arg)
		}
	}

	cred, ok := strings.CutPrefix(v, "@")
	if !ok {
		return v, nil
	}

	crd := os.Getenv("CREDENTIALS_DIRECTORY")
	if crd == "" {
		return "", fmt.Errorf("expand %q: systemd CREDENTIALS_DIRECTORY env var not set", v)
	}
	if !filepath.IsAbs(crd) {
		return "", fmt.Errorf("expand %q: systemd CREDENTIALS_DIRECTORY=%q env var is not an absolute path", v, crd)
	}
	if cred == "" || strings.ContainsAny(cred, `/`+string(filepath.Separator)) {
		return "", fmt.Errorf("expand %q: invalid credential name %q", v, cred)
	}

	buf, err := os.ReadFile(filepath.Join(crd, cred))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("expand %q: no such credential %q", v, cred)
		}
		return "", fmt.Errorf("expand %q: read credential %q: %w", v, cred, err)
	}
	if trimspace {
		buf = bytes.TrimSpace(buf)
	}
	return string(buf), nil
}
