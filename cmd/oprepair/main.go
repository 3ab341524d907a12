// Command oprepair loads an operator, a machine, and a safety property as
// LTSA-format files, then searches for rewrite sequences that make the
// operator-machine composition violate the property.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/config"
	"github.com/oprepair/oprepair/library"
	"github.com/oprepair/oprepair/ltsa"
	"github.com/oprepair/oprepair/obslog"
	"github.com/oprepair/oprepair/property"
	"github.com/oprepair/oprepair/search"
)

type options struct {
	operatorPath     string
	machinePath      string
	propertyPath     string
	errorStates      string
	depth            int
	limitPerLevel    int
	propertyDeadline string
	verbose          bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Searches for operator-procedure rewrites that make the operator-machine composition violate a safety property.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.operatorPath, "operator", "op", "", "path to the operator LTSA file"),
		flagSet.StringVarP(&opts.machinePath, "machine", "m", "", "path to the machine LTSA file"),
		flagSet.StringVarP(&opts.propertyPath, "property", "pr", "", "path to the property LTSA file"),
		flagSet.StringVarP(&opts.errorStates, "error-states", "es", "", "comma-separated property error state indices"),
	)

	flagSet.CreateGroup("search", "Search",
		flagSet.IntVarP(&opts.depth, "depth", "d", 1, "number of pattern applications per trial"),
		flagSet.IntVarP(&opts.limitPerLevel, "limit-per-level", "lpl", 64, "embeddings tried per pattern per level"),
		flagSet.StringVarP(&opts.propertyDeadline, "property-deadline", "pd", "1s", "per-check property BFS deadline"),
		flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}
	return opts
}

func main() {
	opts := parseFlags()

	if opts.operatorPath == "" || opts.machinePath == "" || opts.propertyPath == "" {
		gologger.Fatal().Msg("-operator, -machine, and -property are required")
	}

	deadline, err := time.ParseDuration(opts.propertyDeadline)
	if err != nil {
		fatal("property-deadline", err)
	}

	logger := gologger.NewLogger()
	if opts.verbose {
		logger.SetMaxLevel(levels.LevelDebug)
	} else {
		logger.SetMaxLevel(levels.LevelInfo)
	}

	operator, err := loadLTSA(opts.operatorPath)
	if err != nil {
		fatal("operator", err)
	}
	machine, err := loadLTSA(opts.machinePath)
	if err != nil {
		fatal("machine", err)
	}
	sim, err := loadLTSA(opts.propertyPath)
	if err != nil {
		fatal("property", err)
	}

	errStates, err := parseIntList(opts.errorStates)
	if err != nil {
		fatal("error-states", err)
	}
	prop := property.New(sim, property.NOP, errStates)

	patterns, err := library.Init()
	if err != nil {
		fatal("pattern library", err)
	}

	cfg := config.DefaultConfig(
		config.WithDepth(opts.depth),
		config.WithLimitPerLevel(opts.limitPerLevel),
		config.WithPropertyDeadline(deadline),
		config.WithLogger(logger),
	)
	log := obslog.New(logger)

	found := 0
	outcome, err := search.Search(context.Background(), operator, machine, prop, patterns, cfg,
		func(v search.Violator) {
			found++
			log.Info("violator", "depth", v.Depth, "trials", len(v.Trials))
			fmt.Printf("--- violator %d (depth %d) ---\n", found, v.Depth)
			v.Operator.Print(os.Stdout)
		})
	if err != nil {
		fatal("search", err)
	}

	fmt.Printf("outcome: %s, violators found: %d\n", outcome, found)
	if outcome == search.NotFound {
		os.Exit(1)
	}
}

func loadLTSA(path string) (*automaton.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ltsa.Parse(f)
}

func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid error state %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func fatal(what string, err error) {
	gologger.Error().Msgf("%s: %v", what, err)
	os.Exit(1)
}
