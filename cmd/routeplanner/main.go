// Command routeplanner finds the shortest route between two cities of a road
// map and prints it as text, JSON or a Graphviz diagram.
//
//	routeplanner route --from A --to E
//	routeplanner --map roads.yaml cities --from A
//	routeplanner map --from A --to E | dot -Tpng > map.png
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/routeplanner/citymap"
	"github.com/katalvlaran/routeplanner/config"
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/dijkstra"
	"github.com/katalvlaran/routeplanner/logging"
	"github.com/katalvlaran/routeplanner/planner"
	"github.com/katalvlaran/routeplanner/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "routeplanner: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, cmd, err := config.Parse(args)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Logging, stderr)

	g, err := loadMap(logger, cfg.MapFile)
	if err != nil {
		return err
	}

	p, err := planner.New(g, planner.WithLogger(logger), planner.WithCacheSize(cfg.CacheSize))
	if err != nil {
		return err
	}

	switch cmd {
	case config.CommandRoute:
		return runRoute(stdout, p, cfg.Route)
	case config.CommandCities:
		return runCities(stdout, p, cfg.Cities)
	case config.CommandMap:
		return runMap(stdout, p, cfg.Draw)
	}

	return fmt.Errorf("unknown command %q", cmd)
}

func loadMap(logger *slog.Logger, path string) (*core.Graph, error) {
	if path == "" {
		logger.Debug("using built-in map")
		return citymap.Sample(), nil
	}

	g, err := citymap.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded map", "path", path, "cities", g.VertexCount(), "roads", g.EdgeCount())

	return g, nil
}

func runRoute(w io.Writer, p *planner.Planner, args config.RouteCommand) error {
	path, err := p.Plan(args.From, args.To)
	if err != nil {
		return err
	}

	if args.Format == "json" {
		return render.JSON(w, args.From, args.To, path)
	}
	_, err = fmt.Fprintln(w, render.Text(path))
	return err
}

func runCities(w io.Writer, p *planner.Planner, args config.CitiesCommand) error {
	if args.From == "" {
		for _, c := range p.Cities() {
			if _, err := fmt.Fprintln(w, c); err != nil {
				return err
			}
		}
		return nil
	}

	if !p.Graph().HasVertex(args.From) {
		return fmt.Errorf("%w: %q", planner.ErrUnknownCity, args.From)
	}
	dist := dijkstra.Distances(p.Graph(), args.From)
	for _, c := range p.Cities() {
		d := "unreachable"
		if dist[c] != dijkstra.Infinity {
			d = fmt.Sprint(dist[c])
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", c, d); err != nil {
			return err
		}
	}

	return nil
}

// runMap draws the whole map. With both cities given it plans the route
// first and highlights it; an unreachable destination draws the plain map.
func runMap(w io.Writer, p *planner.Planner, args config.DrawCommand) error {
	if args.From != "" || args.To != "" {
		if _, err := p.Plan(args.From, args.To); err != nil {
			return err
		}
	}

	return render.DOT(w, p.Graph(), p.LastPath())
}
