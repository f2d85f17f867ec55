package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/citymap"
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/dijkstra"
	"github.com/katalvlaran/routeplanner/render"
)

func TestText(t *testing.T) {
	p := dijkstra.ShortestPath(citymap.Sample(), "A", "E")
	assert.Equal(t, "Shortest Path: A → B → C → D → E\nTotal Distance: 16", render.Text(p))
	assert.Equal(t, render.NoRoute, render.Text(dijkstra.Unreachable()))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	p := dijkstra.ShortestPath(citymap.Sample(), "A", "D")
	require.NoError(t, render.JSON(&buf, "A", "D", p))

	assert.JSONEq(t, `{"from":"A","to":"D","reachable":true,"distance":10,"path":["A","B","C","D"]}`, buf.String())
}

func TestJSON_Unreachable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, "A", "E", dijkstra.Unreachable()))

	var r render.Route
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.False(t, r.Reachable)
	assert.Nil(t, r.Distance)
	assert.Empty(t, r.Path)
	assert.Contains(t, buf.String(), `"distance": null`)
	assert.Contains(t, buf.String(), `"path": []`)
}

func TestDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, citymap.Sample(), []string{"E", "D", "C"}))

	want := `graph "Travel Map" {
	node [shape=circle, style=filled, fillcolor=lightblue];
	"A";
	"B";
	"C";
	"D";
	"E";
	"A" -- "B" [label="5"];
	"A" -- "C" [label="10"];
	"B" -- "C" [label="3"];
	"B" -- "D" [label="9"];
	"C" -- "D" [label="2", color=red, penwidth=3];
	"D" -- "E" [label="6", color=red, penwidth=3];
}
`
	assert.Equal(t, want, buf.String())
}

func TestDOT_NoPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, citymap.Sample(), nil))
	assert.NotContains(t, buf.String(), "color=red")
	assert.Equal(t, 6, strings.Count(buf.String(), " -- "))
}

func TestDOT_QuotesIDs(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddEdge(`New "York"`, `C:\drive`, 1))

	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, b.Build(), nil))
	assert.Contains(t, buf.String(), `"C:\\drive" -- "New \"York\"" [label="1"];`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrors(t *testing.T) {
	assert.Error(t, render.DOT(failingWriter{}, citymap.Sample(), nil))
	assert.Error(t, render.JSON(failingWriter{}, "A", "B", dijkstra.Unreachable()))
}
