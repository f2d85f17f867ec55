// Package dijkstra finds the cheapest route between two vertices of a weighted
// graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from start and stops as soon as goal
//     is finalized, returning the total cost and one route achieving it.
//   - Distances runs the same search to exhaustion and reports the cost from a
//     source to every vertex of a core.Graph.
//   - The priority queue is a binary min-heap of partial routes keyed by
//     accumulated cost. Stale entries are skipped when popped ("lazy deletion"),
//     so no decrease-key operation is needed.
//
// Unreachable is a value, not an error:
//
//	p := dijkstra.ShortestPath(g, "A", "Z")
//	if !p.Reachable() {
//	    // p.Cost == dijkstra.Infinity, len(p.Vertices) == 0
//	}
//
// A start or goal that is not in the graph simply has no neighbors, so the
// search reports Unreachable for it. start == goal yields Path{Cost: 0,
// Vertices: []string{start}}, whether or not start is a vertex; callers that
// care reject that case before searching.
//
// Options:
//
//   - WithMaxCost(c):          routes costing more than c are treated as unreachable.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable (closed roads).
//
// Ties between routes of equal cost are broken by queue insertion order, with
// neighbors expanded in lexicographic order. Callers must not depend on which
// of several equally cheap routes is returned.
//
// Complexity:
//
//   - Time:  O(E log E), at most one heap entry per relaxed edge.
//   - Space: O(E · L) where L is the longest route carried in the heap.
//
// Thread safety:
//
//   - Both functions only read the graph; concurrent calls on an immutable
//     core.Graph are safe.
package dijkstra
