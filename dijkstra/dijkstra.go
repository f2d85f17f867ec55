package dijkstra

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/routeplanner/core"
)

// ShortestPath returns the cheapest route from start to goal in g.
//
// The queue is seeded with (0, start, []). Each pop either discards a vertex
// that was already finalized, or appends the vertex to its route, finalizes it,
// and returns if it is goal. Otherwise every non-finalized neighbor is pushed
// with the accumulated cost. An exhausted queue means goal is unreachable.
//
// The first time a vertex is popped its cost is minimal, because weights are
// non-negative and the heap always yields the cheapest pending entry.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(E · L)
func ShortestPath(g Neighborer, start, goal string, opts ...Option) Path {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &search{
		g:       g,
		options: cfg,
		visited: make(map[string]bool),
	}
	s.push(0, start, nil)

	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*routeItem)

		// Stale entry: a cheaper one already finalized this vertex.
		if s.visited[item.id] {
			continue
		}
		// Everything left in the heap costs at least this much.
		if item.cost > cfg.MaxCost {
			break
		}

		// Full slice expression forces a copy so sibling entries never share
		// a backing array.
		route := append(item.route[:len(item.route):len(item.route)], item.id)
		s.visited[item.id] = true

		if item.id == goal {
			return Path{Cost: item.cost, Vertices: route}
		}

		s.relax(item.id, item.cost, route)
	}

	return Unreachable()
}

// Distances returns the cost of the cheapest route from source to every
// vertex of g, Infinity for unreachable ones. A source outside g yields
// Infinity everywhere.
//
// Complexity: O(E log E) time, O(V + E) space.
func Distances(g *core.Graph, source string, opts ...Option) map[string]int64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make(map[string]int64, g.VertexCount())
	for _, v := range g.Vertices() {
		dist[v] = Infinity
	}
	if !g.HasVertex(source) {
		return dist
	}

	s := &search{
		g:       g,
		options: cfg,
		visited: make(map[string]bool, g.VertexCount()),
	}
	s.push(0, source, nil)

	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*routeItem)
		if s.visited[item.id] {
			continue
		}
		if item.cost > cfg.MaxCost {
			break
		}
		s.visited[item.id] = true
		dist[item.id] = item.cost

		// Routes are not needed here; nil keeps the heap entries small.
		s.relax(item.id, item.cost, nil)
	}

	return dist
}

// search holds the mutable state of a single run.
type search struct {
	g       Neighborer
	options Options
	visited map[string]bool // finalized vertices
	pq      routePQ
	seq     uint64 // insertion counter for tie-breaking
}

// relax pushes every open, non-finalized neighbor of u.
// Neighbors are visited in sorted order so that ties resolve deterministically.
func (s *search) relax(u string, cost int64, route []string) {
	nbrs := s.g.Neighbors(u)
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	for _, v := range ids {
		if s.visited[v] {
			continue
		}
		w := nbrs[v]
		if w >= s.options.InfEdgeThreshold {
			continue
		}
		// Saturate instead of overflowing into negative costs.
		if w > Infinity-cost {
			continue
		}
		if cost+w > s.options.MaxCost {
			continue
		}
		s.push(cost+w, v, route)
	}
}

func (s *search) push(cost int64, id string, route []string) {
	heap.Push(&s.pq, &routeItem{id: id, cost: cost, route: route, seq: s.seq})
	s.seq++
}

// routeItem is a partial route waiting in the queue. route holds the vertices
// before id; id is appended when the item is finalized.
type routeItem struct {
	id    string
	cost  int64
	route []string
	seq   uint64
}

// routePQ is a min-heap of *routeItem ordered by (cost, seq).
type routePQ []*routeItem

func (pq routePQ) Len() int { return len(pq) }

func (pq routePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq routePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *routePQ) Push(x interface{}) { *pq = append(*pq, x.(*routeItem)) }

func (pq *routePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
