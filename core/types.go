package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrConflictingEdge indicates an edge between the same two vertices was
	// added again with a different weight.
	ErrConflictingEdge = errors.New("core: conflicting edge weight")
)

// Edge is an undirected, weighted connection between two vertices.
//
// Edges returned by Graph.Edges are normalized so that From < To.
type Edge struct {
	// From is one endpoint (the lexicographically smaller one in Edges()).
	From string

	// To is the other endpoint.
	To string

	// Weight is the travel cost of the edge, never negative.
	Weight int64
}

// Graph is an immutable weighted undirected graph.
//
// adjacency[u][v] == adjacency[v][u] == weight of the edge u—v.
// Every vertex has an entry in adjacency, possibly empty.
type Graph struct {
	adjacency map[string]map[string]int64
	edgeCount int
}

// Builder accumulates vertices and edges and produces a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	adjacency map[string]map[string]int64
	edgeCount int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{adjacency: make(map[string]map[string]int64)}
}
