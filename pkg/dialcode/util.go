package dialcode

import (
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"os"
	"sync"

	"github.com/pg9182/ip2x"
	"github.com/rs/zerolog"
)

// ip2xMgr wraps a file-backed IP2Location database which can be swapped while
// in use.
type ip2xMgr struct {
	file *os.File
	db   *ip2x.DB
	mu   sync.RWMutex
}

// Load replaces the currently loaded database with the specified file. If name
// is empty, the existing database, if any, is reopened.
func (m *ip2xMgr) Load(name string) error {
	if name == "" {
		m.mu.RLock()
		if m.file != nil {
			name = m.file.Name()
		}
		m.mu.RUnlock()

		if name == "" {
			return fmt.Errorf("no ip2location database loaded")
		}
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}

	db, err := ip2x.New(f)
	if err != nil {
		f.Close()
		return err
	}

	if p, _ := db.Info(); p != ip2x.IP2Location {
		f.Close()
		return fmt.Errorf("not an ip2location database")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file != nil {
		m.file.Close()
	}
	m.file = f
	m.db = db
	return nil
}

// Lookup calls [ip2x.DB.Lookup] if a database is loaded.
func (m *ip2xMgr) Lookup(ip netip.Addr) (ip2x.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return ip2x.Record{}, fmt.Errorf("no ip2location database loaded")
	}
	return m.db.Lookup(ip)
}

// Close closes the database file.
func (m *ip2xMgr) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file, m.db = nil, nil
	return err
}

// zerologWriterLevel filters writes below a minimum level, and allows the
// underlying writer to be swapped (e.g., when reopening log files).
type zerologWriterLevel struct {
	w io.Writer // or zerolog.LevelWriter
	l zerolog.Level
	m sync.Mutex
}

var _ zerolog.LevelWriter = (*zerologWriterLevel)(nil)

func newZerologWriterLevel(w io.Writer, l zerolog.Level) *zerologWriterLevel {
	return &zerologWriterLevel{w: w, l: l}
}

func (wl *zerologWriterLevel) Write(p []byte) (n int, err error) {
	wl.m.Lock()
	defer wl.m.Unlock()
	if wl.w != nil {
		return wl.w.Write(p)
	}
	return len(p), nil
}

func (wl *zerologWriterLevel) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	if l < wl.l {
		return len(p), nil
	}
	wl.m.Lock()
	defer wl.m.Unlock()
	switch w := wl.w.(type) {
	case nil:
		return len(p), nil
	case zerolog.LevelWriter:
		return w.WriteLevel(l, p)
	default:
		return w.Write(p)
	}
}

func (wl *zerologWriterLevel) SwapWriter(fn func(io.Writer) io.Writer) {
	wl.m.Lock()
	defer wl.m.Unlock()
	wl.w = fn(wl.w)
}

type middlewares []func(http.Handler) http.Handler

func (ms *middlewares) Add(m func(http.Handler) http.Handler) *middlewares {
	*ms = append(*ms, m)
	return ms
}

func (ms *middlewares) Then(h http.Handler) http.Handler {
	for i := len(*ms) - 1; i >= 0; i-- {
		h = (*ms)[i](h)
	}
	return h
}

func setNoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "private, no-cache, no-store")
	w.Header().Set("Expires", "0")
	w.Header().Set("Pragma", "no-cache")
}
