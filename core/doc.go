// Package core provides the immutable, weighted, undirected Graph used by the
// route planner, together with the Builder that assembles it.
//
// The Graph G = (V,E) follows a small set of rules:
//
//   - Vertices are opaque string IDs (a city label such as "A").
//   - Edges are undirected: adding A—B makes B reachable from A and A reachable
//     from B with the same weight.
//   - Weights are non-negative integers (int64).
//   - No self-loops, no parallel edges.
//   - A Graph is read-only once Build() returns it, so it can be shared between
//     goroutines without locking.
//
// Builder Methods:
//
//	AddVertex(id string) error                       // O(1), idempotent
//	AddEdge(from, to string, weight int64) error     // O(1), idempotent for equal weight
//	Build() *Graph                                   // O(V+E) snapshot
//
// Graph Methods:
//
//	Neighbors(id string) map[string]int64   // O(d), copy; empty map for unknown id
//	Vertices() []string                     // O(V), sorted
//	HasVertex(id string) bool               // O(1)
//	Weight(from, to string) (int64, bool)   // O(1)
//	Edges() []Edge                          // O(E log E), each edge once, sorted
//	VertexCount() int / EdgeCount() int     // O(1)
//	Isolate(id string) *Graph               // O(V+E), copy without id's edges
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrLoopNotAllowed  – from == to
//	ErrNegativeWeight  – weight < 0
//	ErrConflictingEdge – the same pair added twice with different weights
//
// Quick ASCII example (the planner's sample map):
//
//	  A ──5── B
//	  │     / │
//	 10   3   9
//	  │ /     │
//	  C ──2── D ──6── E
package core
