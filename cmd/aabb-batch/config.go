package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	overlapbatch "aabb.theprimeagen.com/pkg/overlap-batch"
	prettylog "aabb.theprimeagen.com/pkg/pretty-log"
)

type config struct {
	Scenario  string
	Workers   int
	Store     string
	StoreKind string
	LogLevel  slog.Level
	Watch     bool
	Report    bool
}

func configFromEnv(getenv func(string) string) (config, error) {
	c := config{
		Scenario:  getenv("AABB_SCENARIO"),
		Workers:   overlapbatch.DefaultWorkers,
		Store:     getenv("AABB_STORE"),
		StoreKind: getenv("AABB_STORE_KIND"),
		LogLevel:  prettylog.ParseLevel(getenv("AABB_LOG_LEVEL")),
	}

	if w := getenv("AABB_WORKERS"); w != "" {
		workers, err := strconv.Atoi(w)
		if err != nil {
			return c, fmt.Errorf("AABB_WORKERS: %w", err)
		}
		c.Workers = workers
	}

	if c.StoreKind == "" && c.Store != "" {
		c.StoreKind = "json"
	}

	return c, nil
}

// loadConfig layers flags over the environment. godotenv has already run
// by the time this is called.
func loadConfig(args []string) (config, error) {
	c, err := configFromEnv(os.Getenv)
	if err != nil {
		return c, err
	}

	flags := flag.NewFlagSet("aabb-batch", flag.ContinueOnError)
	flags.StringVar(&c.Scenario, "scenario", c.Scenario, "scenario yaml file")
	flags.IntVar(&c.Workers, "workers", c.Workers, "concurrent evaluations")
	flags.StringVar(&c.Store, "store", c.Store, "where to record results, empty to skip")
	flags.StringVar(&c.StoreKind, "store-kind", c.StoreKind, "json or sqlite")
	flags.BoolVar(&c.Watch, "watch", false, "re-run whenever the scenario file changes")
	flags.BoolVar(&c.Report, "report", false, "print the stored results after the first run")
	if err := flags.Parse(args); err != nil {
		return c, err
	}

	if c.Scenario == "" && flags.NArg() > 0 {
		c.Scenario = flags.Arg(0)
	}
	if c.Scenario == "" {
		return c, fmt.Errorf("no scenario file, pass -scenario or set AABB_SCENARIO")
	}

	switch c.StoreKind {
	case "", "json", "sqlite":
	default:
		return c, fmt.Errorf("unknown store kind %q", c.StoreKind)
	}
	if c.StoreKind != "" && c.Store == "" {
		c.StoreKind = ""
	}

	return c, nil
}
