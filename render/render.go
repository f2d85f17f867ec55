// Package render turns routes and maps into text for people and tools:
// a one-line summary, a JSON document, and a Graphviz DOT diagram with the
// route's roads highlighted.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/dijkstra"
)

// NoRoute is printed when the destination cannot be reached.
const NoRoute = "No path found."

// Text formats p for display:
//
//	Shortest Path: A → B → C
//	Total Distance: 8
func Text(p dijkstra.Path) string {
	if !p.Reachable() {
		return NoRoute
	}
	return fmt.Sprintf("Shortest Path: %s\nTotal Distance: %d", strings.Join(p.Vertices, " → "), p.Cost)
}

// Route is the JSON form of a planned route. Distance is null when
// Reachable is false.
type Route struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reachable bool     `json:"reachable"`
	Distance  *int64   `json:"distance"`
	Path      []string `json:"path"`
}

// JSON writes the route from start to goal as an indented JSON document.
func JSON(w io.Writer, start, goal string, p dijkstra.Path) error {
	r := Route{
		From:      start,
		To:        goal,
		Reachable: p.Reachable(),
		Path:      append([]string{}, p.Vertices...),
	}
	if r.Reachable {
		cost := p.Cost
		r.Distance = &cost
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("render: encode route: %w", err)
	}

	return nil
}

// DOT writes g as an undirected Graphviz graph titled "Travel Map". Every
// road is labeled with its distance; roads along path are drawn red and
// thick. A nil or empty path highlights nothing.
func DOT(w io.Writer, g *core.Graph, path []string) error {
	onRoute := make(map[[2]string]bool, len(path))
	for _, hop := range (dijkstra.Path{Vertices: path}).Hops() {
		onRoute[edgeKey(hop[0], hop[1])] = true
	}

	var b strings.Builder
	b.WriteString("graph \"Travel Map\" {\n")
	b.WriteString("\tnode [shape=circle, style=filled, fillcolor=lightblue];\n")
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "\t%s;\n", quote(v))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "\t%s -- %s [label=\"%d\"", quote(e.From), quote(e.To), e.Weight)
		if onRoute[edgeKey(e.From, e.To)] {
			b.WriteString(", color=red, penwidth=3")
		}
		b.WriteString("];\n")
	}
	b.WriteString("}\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("render: write dot: %w", err)
	}

	return nil
}

// edgeKey normalizes an undirected pair to match core.Edge (From < To).
func edgeKey(u, v string) [2]string {
	if v < u {
		u, v = v, u
	}
	return [2]string{u, v}
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(id string) string {
	return `"` + dotEscaper.Replace(id) + `"`
}
