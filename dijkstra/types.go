package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the cost of an unreachable goal. It compares greater than any
// achievable route cost.
const Infinity int64 = math.MaxInt64

// Sentinel errors for invalid options. The option constructors panic with
// their text, since a bad option is a programming error.
var (
	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would close every road.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Neighborer is the graph surface the search needs. *core.Graph satisfies it.
//
// Neighbors must return an empty map for unknown vertices and must never
// report a negative weight.
type Neighborer interface {
	Neighbors(id string) map[string]int64
}

// Path is the result of a route search.
//
// Cost is the sum of edge weights along Vertices, or Infinity when no route
// exists. Vertices runs from start to goal inclusive and is empty when
// unreachable.
type Path struct {
	Cost     int64
	Vertices []string
}

// Unreachable returns the "no route" result.
func Unreachable() Path {
	return Path{Cost: Infinity, Vertices: []string{}}
}

// Reachable reports whether p describes an actual route.
func (p Path) Reachable() bool {
	return p.Cost != Infinity && len(p.Vertices) > 0
}

// Hops returns consecutive vertex pairs along the route, e.g. [A B C] →
// [[A B] [B C]]. Renderers use it to highlight route edges.
func (p Path) Hops() [][2]string {
	if len(p.Vertices) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(p.Vertices)-1)
	for i := 1; i < len(p.Vertices); i++ {
		out = append(out, [2]string{p.Vertices[i-1], p.Vertices[i]})
	}

	return out
}

// Options configures a search.
//
// MaxCost          – routes costing more than this are not explored. Default Infinity.
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default Infinity.
type Options struct {
	MaxCost          int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxCost caps the cost of routes the search will consider.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as closed.
// Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no cost cap and no closed edges.
func DefaultOptions() Options {
	return Options{
		MaxCost:          Infinity,
		InfEdgeThreshold: Infinity,
	}
}
