// Package citymap supplies road maps for the planner: the built-in five-city
// sample and a loader for YAML map files.
//
// Map file format:
//
//	cities: [A, B, C]          # optional; lists cities without roads too
//	roads:
//	  - {from: A, to: B, distance: 5}
//	  - {from: B, to: C, distance: 3}
//
// Every road is two-way with the same distance in both directions.
package citymap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routeplanner/core"
)

// ErrInvalidMap is wrapped by every Load error caused by the map contents.
var ErrInvalidMap = errors.New("citymap: invalid map")

// Road is one two-way connection in a map file.
type Road struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// File is the YAML document layout.
type File struct {
	Cities []string `yaml:"cities"`
	Roads  []Road   `yaml:"roads"`
}

var sampleRoads = []Road{
	{From: "A", To: "B", Distance: 5},
	{From: "A", To: "C", Distance: 10},
	{From: "B", To: "C", Distance: 3},
	{From: "B", To: "D", Distance: 9},
	{From: "C", To: "D", Distance: 2},
	{From: "D", To: "E", Distance: 6},
}

// Sample returns the built-in map of cities A–E.
func Sample() *core.Graph {
	g, err := build(File{Roads: sampleRoads})
	if err != nil {
		// The literal above is valid; this only fires if it is edited badly.
		panic(err)
	}

	return g
}

// Load decodes a YAML map from r. Unknown keys are rejected so that typos
// such as "distnace" do not silently produce zero-weight roads.
func Load(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidMap)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}

	return build(f)
}

// LoadFile reads and decodes the YAML map at path.
func LoadFile(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("citymap: read %s: %w", path, err)
	}
	g, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func build(f File) (*core.Graph, error) {
	b := core.NewBuilder()
	for i, c := range f.Cities {
		if err := b.AddVertex(c); err != nil {
			return nil, fmt.Errorf("%w: cities[%d]: %w", ErrInvalidMap, i, err)
		}
	}
	for i, r := range f.Roads {
		if err := b.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("%w: roads[%d] %s—%s: %w", ErrInvalidMap, i, r.From, r.To, err)
		}
	}
	g := b.Build()
	if g.VertexCount() == 0 {
		return nil, fmt.Errorf("%w: no cities", ErrInvalidMap)
	}

	return g, nil
}
