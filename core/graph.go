// File: graph.go
// Role: Read-only queries on an immutable Graph.
// Determinism:
//   - Vertices() sorted lex asc; Edges() sorted by (From, To) with From < To.
// Concurrency:
//   - No locks: the Graph is never mutated after Build().

package core

import "sort"

// Neighbors returns a copy of the adjacency of id: neighbor ID → edge weight.
//
// Behavior highlights:
//   - Unknown (or empty) id yields an empty, non-nil map, not an error. Searches
//     rely on this to treat missing vertices as dead ends.
//   - The returned map is owned by the caller.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id string) map[string]int64 {
	nbrs := g.adjacency[id]
	out := make(map[string]int64, len(nbrs))
	for v, w := range nbrs {
		out[v] = w
	}

	return out
}

// Vertices returns all vertex IDs sorted lexicographically.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Weight returns the weight of the edge from—to and whether it exists.
// Argument order does not matter.
func (g *Graph) Weight(from, to string) (int64, bool) {
	w, ok := g.adjacency[from][to]
	return w, ok
}

// Edges returns each undirected edge exactly once, normalized to From < To
// and sorted by (From, To).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Isolate returns a new Graph equal to g with every edge incident to id
// removed. The vertex itself is kept so it still shows up in Vertices().
// g is not modified. Isolating an unknown vertex returns an equal copy.
//
// Complexity: O(V+E).
func (g *Graph) Isolate(id string) *Graph {
	return &Graph{
		adjacency: copyAdjacency(g.adjacency, id),
		edgeCount: g.edgeCount - len(g.adjacency[id]),
	}
}
