package weightgraph

import (
	"sync"

	"github.com/trayweave/cableroute/grid"
)

// Cache memoizes Build results per redCable for a single request's grid.
// It is created fresh per routing request and discarded afterwards; it is
// never a package-level or process-global cache, since each request may
// route against a different grid entirely.
type Cache struct {
	mu   sync.Mutex
	g    *grid.Grid
	byRC map[float64]*Graph
}

// NewCache returns a Cache bound to g. Every Graph it produces is built
// from this same grid.
func NewCache(g *grid.Grid) *Cache {
	return &Cache{
		g:    g,
		byRC: make(map[float64]*Graph),
	}
}

// GetOrBuild returns the cached Graph for redCable, building and storing
// it on first request. Safe for concurrent use: one mutex guards the map
// and is held while a missing Graph is built.
func (c *Cache) GetOrBuild(redCable float64) (*Graph, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if wg, ok := c.byRC[redCable]; ok {
		return wg, nil
	}
	wg, err := Build(c.g, redCable)
	if err != nil {
		return nil, err
	}
	c.byRC[redCable] = wg

	return wg, nil
}
