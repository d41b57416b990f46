package dialcode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/hammerhouse/dialcode/pkg/api/dialapi"
	"github.com/hammerhouse/dialcode/pkg/callingcode"
	"github.com/hammerhouse/dialcode/pkg/cloudflare"
	"github.com/hammerhouse/dialcode/pkg/geolocale"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type Server struct {
	Logger zerolog.Logger

	Addr          []string
	Handler       http.Handler
	NotifySocket  string
	MetricsSecret string
	API           *dialapi.Handler

	cloudflare *cloudflare.IPList // nil if not enabled or static
	ip2l       *ip2xMgr
	reload     []func()
	closed     bool
}

// NewServer configures a new server using c, which is assumed to be initialized
// to default or configured values (as done by UnmarshalEnv). It will perform
// any additional config checks as required.
func NewServer(c *Config) (*Server, error) {
	var s Server
	var success bool

	s.Addr = c.Addr
	s.NotifySocket = c.NotifySocket
	s.MetricsSecret = c.MetricsSecret

	if l, fn, err := configureLogging(c); err == nil {
		s.Logger = l
		s.reload = append(s.reload, fn)
	} else {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}

	defer func() {
		if !success && s.ip2l != nil {
			s.ip2l.Close()
		}
	}()

	var m middlewares

	m.Add(hlog.RequestIDHandler("", "X-Dialcode-Request-Id"))

	if len(c.Host) != 0 {
		m.Add(checkHost(c.Host))
	}

	if c.Cloudflare {
		cf, static, err := configureCloudflare(c)
		if err != nil {
			return nil, fmt.Errorf("initialize cloudflare: %w", err)
		}
		if !static {
			s.cloudflare = cf
		}
		m.Add(cloudflare.RealIP(cf, func(r *http.Request, err error) {
			e := s.Logger.Warn()
			if rid, ok := hlog.IDFromRequest(r); ok {
				e = e.Stringer("rid", rid)
			}
			e.
				Err(err).
				Str("component", "http").
				Str("request_ip", r.RemoteAddr).
				Msg("use cloudflare ip")
		}))
	}

	m.Add(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		e := s.Logger.Info()
		if rid, ok := hlog.IDFromRequest(r); ok {
			e = e.Stringer("rid", rid)
		}
		e.
			Str("request_ip", r.RemoteAddr).
			Str("request_host", r.Host).
			Str("request_method", r.Method).
			Stringer("request_uri", r.URL).
			Str("request_user_agent", r.UserAgent()).
			Int("response_status", status).
			Int("response_size", size).
			Dur("response_duration", duration).
			Msg("handle request")
	}))

	m.Add(hlog.NewHandler(s.Logger.With().Str("component", "api").Logger()))
	m.Add(hlog.RequestIDHandler("rid", ""))

	s.API = &dialapi.Handler{
		DomesticLength: c.DomesticLength,
		CacheMaxAge:    c.CacheMaxAge,
	}

	if cc, err := configureDomesticFallback(c); err == nil {
		s.API.DomesticFallback = cc
	} else {
		return nil, fmt.Errorf("initialize domestic fallback: %w", err)
	}
	if c.DomesticLength < 0 {
		return nil, fmt.Errorf("initialize domestic fallback: invalid length %d", c.DomesticLength)
	}

	if ip2l, err := configureIP2Location(c); err == nil {
		if ip2l != nil {
			s.ip2l = ip2l
			s.reload = append(s.reload, func() {
				if err := ip2l.Load(""); err != nil {
					s.Logger.Err(err).Msg("failed to reload ip2location database")
				}
			})
		}
	} else {
		return nil, fmt.Errorf("initialize ip2location: %w", err)
	}

	if fn, err := configureLocale(c, s.ip2l); err == nil {
		s.API.Locale = fn
	} else {
		return nil, fmt.Errorf("initialize locale: %w", err)
	}

	s.API.NotFound = new(middlewares).
		Add(hlog.NewHandler(s.Logger)).
		Add(hlog.RequestIDHandler("rid", "")).
		Then(http.HandlerFunc(s.serveRest))

	s.Handler = m.Then(s.API)

	s.Logger.Info().
		Str("domestic_fallback", s.API.DomesticFallback).
		Bool("domestic_fallback_geo", s.API.Locale != nil).
		Int("countries", callingcode.Default().Len()).
		Msg("initialized calling code api")

	success = true
	return &s, nil
}

// checkHost returns middleware rejecting requests for other hostnames.
func checkHost(hosts []string) func(http.Handler) http.Handler {
	ns := map[string]struct{}{}
	for _, n := range hosts {
		ns[strings.ToLower(n)] = struct{}{}
	}
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := r.Host
			if x, _, err := net.SplitHostPort(host); err == nil {
				host = x
			}
			if _, ok := ns[strings.ToLower(host)]; ok {
				h.ServeHTTP(w, r)
				return
			}
			setNoCache(w)
			http.Error(w, "Go away.", http.StatusForbidden)
		})
	}
}

// configureCloudflare parses the configured Cloudflare prefixes, or fetches
// them if there aren't any. If static is false, the list should be refreshed
// periodically.
func configureCloudflare(c *Config) (l *cloudflare.IPList, static bool, err error) {
	l = new(cloudflare.IPList)
	if len(c.CloudflareIPs) != 0 {
		var ps []netip.Prefix
		for _, x := range c.CloudflareIPs {
			p, err := cloudflare.ParsePrefix(strings.TrimSpace(x))
			if err != nil {
				return nil, false, err
			}
			ps = append(ps, p)
		}
		l.Set(ps)
		return l, true, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	if err := l.Update(ctx, nil); err != nil {
		return nil, false, fmt.Errorf("fetch ip list: %w", err)
	}
	return l, false, nil
}

func configureLogging(c *Config) (l zerolog.Logger, reopen func(), err error) {
	var outputs []io.Writer
	if c.LogStdout {
		if c.LogStdoutPretty {
			outputs = append(outputs, newZerologWriterLevel(zerolog.ConsoleWriter{
				Out: os.Stdout,
			}, c.LogStdoutLevel))
		} else {
			outputs = append(outputs, newZerologWriterLevel(os.Stdout, c.LogStdoutLevel))
		}
	}
	if fn := c.LogFile; fn != "" {
		x := newZerologWriterLevel(nil, c.LogFileLevel)
		if fn, err = filepath.Abs(fn); err != nil {
			err = fmt.Errorf("resolve log file: %w", err)
			return
		}
		reopen = func() {
			x.SwapWriter(func(old io.Writer) io.Writer {
				if o, ok := old.(io.Closer); ok {
					o.Close()
				}
				f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
				if err != nil {
					fmt.Fprintf(os.Stderr, "error: failed to open log file: %v\n", err)
					return nil
				}
				if c.LogFileChmod != 0 {
					if err := f.Chmod(c.LogFileChmod); err != nil {
						fmt.Fprintf(os.Stderr, "error: chmod log file: %v\n", err)
					}
				}
				return f
			})
		}
		outputs = append(outputs, x)
		reopen()
	}
	l = zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		Level(c.LogLevel).
		With().
		Timestamp().
		Logger()
	return
}

// configureDomesticFallback validates the static domestic fallback country.
func configureDomesticFallback(c *Config) (string, error) {
	switch cc := strings.TrimSpace(c.DomesticFallback); cc {
	case "", "none":
		return "", nil
	default:
		x, ok := callingcode.ByISO(cc)
		if !ok {
			return "", fmt.Errorf("unknown country %q", cc)
		}
		return x.Code, nil
	}
}

func configureIP2Location(c *Config) (*ip2xMgr, error) {
	if c.IP2Location == "" {
		return nil, nil
	}
	mgr := new(ip2xMgr)
	return mgr, mgr.Load(c.IP2Location)
}

// configureLocale returns the function used to get the domestic fallback for
// a request, or nil if it doesn't depend on the request.
func configureLocale(c *Config, ip2l *ip2xMgr) (func(*http.Request) (string, error), error) {
	if !c.DomesticFallbackGeo {
		if len(c.DomesticFallbackOverride) != 0 {
			return nil, fmt.Errorf("overrides require geo fallback to be enabled")
		}
		return nil, nil
	}
	var loc geolocale.Locator
	for _, x := range c.DomesticFallbackOverride {
		o, err := geolocale.ParseOverride(x)
		if err != nil {
			return nil, err
		}
		loc.Overrides = append(loc.Overrides, o)
	}
	if ip2l != nil {
		loc.Lookup = ip2l.Lookup
	}
	if loc.Lookup == nil && len(loc.Overrides) == 0 {
		return nil, fmt.Errorf("geo fallback requires an ip2location database or overrides")
	}
	return func(r *http.Request) (string, error) {
		a, err := netip.ParseAddrPort(r.RemoteAddr)
		if err != nil {
			return "", fmt.Errorf("parse remote addr: %w", err)
		}
		return loc.Country(a.Addr())
	}, nil
}

// Run runs the server, shutting it down gracefully when ctx is canceled, then
// waiting indefinitely for it to exit. It must only ever be called once, and
// the server is useless afterwards.
func (s *Server) Run(ctx context.Context) error {
	if s.closed {
		return http.ErrServerClosed
	}

	if s.cloudflare != nil {
		go s.refreshCloudflare(ctx, time.Hour*24)
	}

	var hs []*http.Server
	var as []string
	for _, a := range s.Addr {
		hs = append(hs, &http.Server{
			Addr:              a,
			Handler:           s.Handler,
			ReadHeaderTimeout: time.Second * 10,
		})
		as = append(as, "http://"+a)
	}
	if len(hs) == 0 {
		return fmt.Errorf("no listen addresses provided")
	}
	s.Logger.Log().Msgf("starting server on %s", strings.Join(as, ", "))

	errch := make(chan error, len(hs))
	for _, h := range hs {
		h := h
		go func() {
			errch <- h.ListenAndServe()
		}()
	}

	select {
	case <-ctx.Done():
	case <-time.After(time.Second * 2):
		go s.sdnotify("READY=1")
	case err := <-errch:
		s.Logger.Err(err).Msg("failed to start server")
		return err
	}

	select {
	case <-ctx.Done():
		s.closed = true
		s.Logger.Log().Msg("shutting down")

		go s.sdnotify("STOPPING=1")

		sctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		var wg sync.WaitGroup
		for _, h := range hs {
			h := h
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := h.Shutdown(sctx); err != nil {
					s.Logger.Warn().Err(err).Str("addr", h.Addr).Msg("failed to shut down gracefully")
				}
			}()
		}
		wg.Wait()

		if s.ip2l != nil {
			s.ip2l.Close()
		}
		return nil
	case err := <-errch:
		s.Logger.Err(err).Msg("failed to start server")
		return err
	}
}

func (s *Server) refreshCloudflare(ctx context.Context, interval time.Duration) {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			uctx, cancel := context.WithTimeout(ctx, time.Second*30)
			if err := s.cloudflare.Update(uctx, nil); err != nil {
				s.Logger.Err(err).Str("component", "cloudflare").Msg("failed to refresh ip list; using old one")
			} else {
				s.Logger.Info().Str("component", "cloudflare").Int("prefixes", s.cloudflare.Len()).Msg("refreshed ip list")
			}
			cancel()
		}
	}
}

func (s *Server) HandleSIGHUP() {
	if s.closed {
		return
	}

	s.sdnotify("RELOADING=1")
	defer s.sdnotify("READY=1")

	for _, fn := range s.reload {
		if fn != nil {
			fn()
		}
	}
}

// serveRest handles endpoints not handled by the API.
func (s *Server) serveRest(w http.ResponseWriter, r *http.Request) {
	setNoCache(w)

	switch r.URL.Path {
	case "/metrics":
		var internal bool
		if x := s.MetricsSecret; x != "" {
			if r.URL.Query().Get("secret") == x {
				internal = true
			}
		}

		var ms []func(io.Writer)
		if internal {
			ms = append(ms, metrics.WriteProcessMetrics)
		}
		ms = append(ms, s.API.WritePrometheus)

		var b bytes.Buffer
		for i, m := range ms {
			if i != 0 {
				b.WriteByte('\n')
			}
			m(&b)
		}

		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		w.Header().Set("Content-Length", strconv.Itoa(b.Len()))
		w.WriteHeader(http.StatusOK)
		b.WriteTo(w)
	case "/":
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "dialcode\n")
	default:
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

func (s *Server) sdnotify(state string) (bool, error) {
	if s.NotifySocket == "" {
		return false, nil
	}

	socketAddr := &net.UnixAddr{
		Name: s.NotifySocket,
		Net:  "unixgram",
	}

	conn, err := net.DialUnix(socketAddr.Net, nil, socketAddr)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	if _, err = conn.Write([]byte(state)); err != nil {
		return false, err
	}
	return true, nil
}
