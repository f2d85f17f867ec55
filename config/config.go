// Package config parses routeplanner's command line and environment.
package config

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
)

// Config aggregates global flags and the per-command arguments.
type Config struct {
	MapFile   string        `name:"map" help:"YAML road map to load (built-in five-city sample when empty)." env:"ROUTEPLANNER_MAP" placeholder:"FILE"`
	CacheSize int           `help:"Number of planned routes kept in memory (0 disables caching)." env:"ROUTEPLANNER_CACHE_SIZE" default:"128"`
	Logging   LoggingConfig `embed:"" prefix:"log-"`

	Route  RouteCommand  `cmd:"" help:"Find the shortest route between two cities."`
	Cities CitiesCommand `cmd:"" help:"List the cities on the map."`
	Draw   DrawCommand   `cmd:"" name:"map" help:"Print the map as Graphviz DOT, highlighting a route."`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"LOG_LEVEL"`
	Format        string `help:"Log format." enum:"text,json" default:"text" env:"LOG_FORMAT"`
	IncludeCaller bool   `help:"Annotate log lines with the source location." env:"LOG_INCLUDE_CALLER"`
}

// RouteCommand holds the arguments of "route".
type RouteCommand struct {
	From   string `help:"Start city." short:"f"`
	To     string `help:"Destination city." short:"t"`
	Format string `help:"Output format." enum:"text,json" default:"text"`
}

// CitiesCommand holds the arguments of "cities".
type CitiesCommand struct {
	From string `help:"Also print the distance from this city." short:"f"`
}

// DrawCommand holds the arguments of "map".
type DrawCommand struct {
	From string `help:"Start city of the highlighted route." short:"f"`
	To   string `help:"Destination city of the highlighted route." short:"t"`
}

// Command names returned by Parse.
const (
	CommandRoute  = "route"
	CommandCities = "cities"
	CommandMap    = "map"
)

// ErrBadCacheSize indicates a negative cache size.
var ErrBadCacheSize = errors.New("config: cache size must not be negative")

// Validate is called by kong after parsing.
func (c *Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: %d", ErrBadCacheSize, c.CacheSize)
	}
	return nil
}

// Parse parses args (without the program name) into a Config and returns the
// selected command name. Environment variables fill flags that are not given
// on the command line. Extra kong options, such as kong.Writers or kong.Exit,
// are applied after the defaults.
func Parse(args []string, options ...kong.Option) (Config, string, error) {
	var cfg Config

	opts := []kong.Option{
		kong.Name("routeplanner"),
		kong.Description("Plan the shortest route between two cities."),
		kong.UsageOnError(),
	}
	opts = append(opts, options...)

	parser, err := kong.New(&cfg, opts...)
	if err != nil {
		return Config{}, "", fmt.Errorf("config: build parser: %w", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return Config{}, "", err
	}

	return cfg, ctx.Command(), nil
}
