// Package planner is the caller layer around the shortest-path finder: it
// validates a user's city selection, plans the route, caches answers and keeps
// the last route for the map view.
package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/dijkstra"
	"github.com/katalvlaran/routeplanner/logging"
)

// Selection errors. Their text is suitable for showing to the user.
var (
	ErrMissingSelection = errors.New("please select both cities")
	ErrSameCity         = errors.New("start and destination cannot be the same")
	ErrUnknownCity      = errors.New("unknown city")
	ErrBadCacheSize     = errors.New("planner: cache size must not be negative")
)

// DefaultCacheSize is the number of routes kept when WithCacheSize is not given.
const DefaultCacheSize = 128

type routeKey struct {
	from, to string
}

// Planner plans routes on one immutable map. Safe for concurrent use.
type Planner struct {
	g         *core.Graph
	log       *slog.Logger
	cacheSize int
	cache     *lru.Cache[routeKey, dijkstra.Path] // nil when caching is off

	mu   sync.Mutex
	last []string
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// WithCacheSize sets how many routes are remembered; 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(p *Planner) { p.cacheSize = n }
}

// New returns a Planner for g.
func New(g *core.Graph, opts ...Option) (*Planner, error) {
	p := &Planner{
		g:         g,
		log:       logging.Discard(),
		cacheSize: DefaultCacheSize,
		last:      []string{},
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.cacheSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCacheSize, p.cacheSize)
	}
	if p.cacheSize > 0 {
		cache, err := lru.New[routeKey, dijkstra.Path](p.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("planner: create cache: %w", err)
		}
		p.cache = cache
	}

	return p, nil
}

// Graph returns the map the planner works on.
func (p *Planner) Graph() *core.Graph { return p.g }

// Cities returns the selectable cities in sorted order.
func (p *Planner) Cities() []string { return p.g.Vertices() }

// Plan validates the selection and returns the cheapest route from start to
// goal. A goal that cannot be reached is reported through the returned Path
// (Reachable() == false), never as an error.
//
// Errors:
//   - ErrMissingSelection: start or goal is empty.
//   - ErrSameCity: start == goal.
//   - ErrUnknownCity: start or goal is not on the map.
func (p *Planner) Plan(start, goal string) (dijkstra.Path, error) {
	if start == "" || goal == "" {
		return dijkstra.Path{}, ErrMissingSelection
	}
	if start == goal {
		return dijkstra.Path{}, ErrSameCity
	}
	for _, c := range []string{start, goal} {
		if !p.g.HasVertex(c) {
			return dijkstra.Path{}, fmt.Errorf("%w: %q", ErrUnknownCity, c)
		}
	}

	key := routeKey{from: start, to: goal}
	path, cached := p.lookup(key)
	if !cached {
		path = dijkstra.ShortestPath(p.g, start, goal)
		if p.cache != nil {
			p.cache.Add(key, path)
		}
	}

	p.mu.Lock()
	p.last = append([]string{}, path.Vertices...)
	p.mu.Unlock()

	if path.Reachable() {
		p.log.Debug("route planned", "from", start, "to", goal, "distance", path.Cost, "cached", cached)
	} else {
		p.log.Info("no route", "from", start, "to", goal, "cached", cached)
	}

	return clonePath(path), nil
}

// LastPath returns the route of the most recent successful Plan call, or an
// empty slice if it found no route or Plan has not run yet.
func (p *Planner) LastPath() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.last...)
}

func (p *Planner) lookup(key routeKey) (dijkstra.Path, bool) {
	if p.cache == nil {
		return dijkstra.Path{}, false
	}
	return p.cache.Get(key)
}

// clonePath copies the route so callers cannot corrupt cached entries.
func clonePath(path dijkstra.Path) dijkstra.Path {
	return dijkstra.Path{Cost: path.Cost, Vertices: append([]string{}, path.Vertices...)}
}
