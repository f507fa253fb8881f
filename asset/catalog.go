// Package asset resolves symbolic asset names to terminal render handles
package asset

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
)

// ErrUnknownAsset is returned by Lookup for a name with no registered handle
var ErrUnknownAsset = eris.New("unknown asset")

// Handle is a resolved renderable: one glyph with its style
type Handle struct {
	Name  string
	Glyph rune
	Style tcell.Style
}

// IsZero reports an unresolved handle
func (h Handle) IsZero() bool {
	return h.Glyph == 0
}

// Fallback is returned for unknown names so spawn never fails on a missing asset
var Fallback = Handle{
	Name:  "fallback",
	Glyph: '?',
	Style: tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
}

// Catalog maps asset names to handles
// Registration happens at startup; lookups are read-mostly
type Catalog struct {
	mu      sync.RWMutex
	handles map[string]Handle
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{handles: make(map[string]Handle)}
}

// NewDefaultCatalog returns a catalog preloaded with every game asset
func NewDefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, h := range defaultHandles {
		c.Register(h)
	}
	return c
}

// Register adds or replaces the handle under h.Name
func (c *Catalog) Register(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handles[h.Name] = h
}

// Lookup resolves name, returning Fallback with ErrUnknownAsset when missing
func (c *Catalog) Lookup(name string) (Handle, error) {
	c.mu.RLock()
	h, ok := c.handles[name]
	c.mu.RUnlock()
	if !ok {
		return Fallback, eris.Wrapf(ErrUnknownAsset, "lookup %q", name)
	}
	return h, nil
}

// Resolve is Lookup without the error, for spawn paths that accept the fallback
func (c *Catalog) Resolve(name string) Handle {
	h, _ := c.Lookup(name)
	return h
}

// Names returns registered names in sorted order
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.handles))
	for n := range c.handles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
