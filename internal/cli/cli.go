// Package cli parses command line arguments and orchestrates the
// translation pipeline: scan, locate, mark, compile, emit.
package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("typebridge", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Input, "input", "i", "", "model mapping document (default stdin, \"-\" for stdin)")
	fs.StringVarP(&cfg.Output, "output", "o", "", "data-set output document (default stdout)")
	fs.BoolVarP(&cfg.AllDataSets, "all", "a", false, "emit all known data-sets, not only reachable ones")
	fs.BoolVar(&cfg.NumericTypes, "numeric-types", false, "emit numeric primitive codes instead of names")
	fs.CountVarP(&cfg.Verbosity, "verbose", "v", "increase log verbosity")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
	case 1:
		cfg.Operator = rest[0]
	default:
		return nil, fmt.Errorf("at most one operator name expected, got %d arguments", len(rest))
	}

	if cfg.Input == "-" {
		cfg.Input = ""
	}
	return cfg, nil
}
