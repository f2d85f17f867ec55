// File: builder.go
// Role: Construction phase: AddVertex/AddEdge/Build.
// Determinism:
//   - Build() output does not depend on insertion order.
// Concurrency:
//   - Builder is single-goroutine; the Graph it returns is immutable.

package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := b.adjacency[id]; !ok {
		b.adjacency[id] = make(map[string]int64)
	}

	return nil
}

// AddEdge inserts the undirected edge from—to with the given weight, adding
// missing endpoints. Re-adding an existing edge with the same weight is a no-op.
//
// Steps:
//  1. Validate IDs, loop and weight.
//  2. Ensure both endpoints exist.
//  3. Reject a weight that differs from an already stored edge.
//  4. Store the edge in both directions.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	_ = b.AddVertex(from)
	_ = b.AddVertex(to)

	if w, ok := b.adjacency[from][to]; ok {
		if w != weight {
			return fmt.Errorf("%w: %s—%s has %d, got %d", ErrConflictingEdge, from, to, w, weight)
		}
		return nil
	}

	b.adjacency[from][to] = weight
	b.adjacency[to][from] = weight
	b.edgeCount++

	return nil
}

// Build returns an immutable Graph holding a deep copy of the builder's state.
// The builder stays usable; later additions do not affect the returned Graph.
//
// Complexity: O(V+E).
func (b *Builder) Build() *Graph {
	return &Graph{
		adjacency: copyAdjacency(b.adjacency, ""),
		edgeCount: b.edgeCount,
	}
}

// copyAdjacency deep-copies adj, dropping every edge incident to skip
// (skip == "" keeps everything). Vertices are always kept.
func copyAdjacency(adj map[string]map[string]int64, skip string) map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(adj))
	for u, nbrs := range adj {
		inner := make(map[string]int64, len(nbrs))
		if u != skip {
			for v, w := range nbrs {
				if v == skip {
					continue
				}
				inner[v] = w
			}
		}
		out[u] = inner
	}

	return out
}
