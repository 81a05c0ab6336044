/*
Package resource caches canvases loaded by name so that the same bitmap asset
used in several places is only decoded once.

Cached canvases are shared between callers and must be treated as read-only;
use Copy on the returned canvas before drawing onto it.
*/
package resource

import (
	"io"
	"log"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/bitmap"
	"github.com/zyedidia/generic/cache"
)

// DefaultCapacity is the number of canvases kept by a Manager when no other
// capacity is given.
const DefaultCapacity = 64

// A Loader produces the canvas for a named asset.
type Loader interface {
	Load(name string) (*bitmap.Canvas, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) (*bitmap.Canvas, error)

// Load calls f(name).
func (f LoaderFunc) Load(name string) (*bitmap.Canvas, error) { return f(name) }

// Dir loads BMP files from a directory. A name without an extension has
// ".bmp" appended, and names can never escape the directory.
type Dir string

// Load implements the Loader interface.
func (d Dir) Load(name string) (*bitmap.Canvas, error) {
	return bitmap.Load(d.path(name))
}

func (d Dir) path(name string) string {
	name = path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	if path.Ext(name) == "" {
		name += ".bmp"
	}
	return filepath.Join(string(d), filepath.FromSlash(name))
}

// Manager is an LRU cache of canvases in front of a Loader. It is safe for
// concurrent use.
type Manager struct {
	mu     sync.Mutex
	loader Loader
	cache  *cache.Cache[string, *bitmap.Canvas]
	logger *log.Logger

	hits, misses int
}

// New returns a Manager holding up to capacity canvases from loader. A nil
// logger discards all output.
func New(loader Loader, capacity int, logger *log.Logger) *Manager {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	m := &Manager{
		loader: loader,
		cache:  cache.New[string, *bitmap.Canvas](capacity),
		logger: logger,
	}
	m.cache.SetEvictCallback(func(name string, c *bitmap.Canvas) {
		m.logger.Printf("Evicting \"%s\" (%s)\n", name, c)
	})

	return m
}

// Get returns the canvas for name, loading it on first use.
func (m *Manager) Get(name string) (*bitmap.Canvas, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.cache.Get(name); ok {
		m.hits++
		return c, nil
	}
	m.misses++

	c, err := m.loader.Load(name)
	if err != nil {
		return nil, err
	}
	m.logger.Printf("Loaded \"%s\" (%s)\n", name, c)
	m.cache.Put(name, c)

	return c, nil
}

// Forget drops name from the cache so the next Get reloads it.
func (m *Manager) Forget(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Remove(name)
}

// Resize changes the number of canvases kept, evicting the least recently
// used ones if needed.
func (m *Manager) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Resize(capacity)
}

// Len returns the number of cached canvases.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Size()
}

// Names returns the cached names from most to least recently used.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, m.cache.Size())
	if m.cache.Size() > 0 {
		m.cache.Each(func(name string, _ *bitmap.Canvas) {
			names = append(names, name)
		})
	}
	return names
}

// Stats returns the number of cache hits and misses so far.
func (m *Manager) Stats() (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}
