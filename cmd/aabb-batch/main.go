package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"aabb.theprimeagen.com/pkg/assert"
	"aabb.theprimeagen.com/pkg/ctrlc"
	overlapbatch "aabb.theprimeagen.com/pkg/overlap-batch"
	overlapstats "aabb.theprimeagen.com/pkg/overlap-stats"
	prettylog "aabb.theprimeagen.com/pkg/pretty-log"
	"aabb.theprimeagen.com/pkg/scenario"
	"github.com/joho/godotenv"
)

func openStore(c config) (overlapstats.ResultStore, error) {
	switch c.StoreKind {
	case "json":
		j, err := overlapstats.JSONMemoryFrom(c.Store)
		if err != nil {
			return nil, err
		}
		return j, nil
	case "sqlite":
		db, err := overlapstats.NewSqlite(c.Store)
		if err != nil {
			return nil, err
		}
		if err := db.SetSqliteModes(); err != nil {
			db.Close()
			return nil, err
		}
		if err := db.CreateOverlapResults(); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}
	return nil, nil
}

// runOnce evaluates the scenario file and reports how many pairs disagreed
// with their expectation.
func runOnce(ctx context.Context, c config, store overlapstats.ResultStore, logger *slog.Logger) (overlapbatch.Summary, error) {
	s, err := scenario.Load(c.Scenario)
	if err != nil {
		return overlapbatch.Summary{}, err
	}

	results, err := overlapbatch.Evaluate(ctx, s.Pairs, overlapbatch.Params{Workers: c.Workers})
	if err != nil {
		return overlapbatch.Summary{}, err
	}

	for _, r := range results {
		if r.Mismatch() {
			logger.Warn("mismatch", "pair", r.Name, "a", r.A.String(), "b", r.B.String(), "overlaps", r.Overlaps, "expect", *r.Expect)
		} else {
			logger.Info("evaluated", "pair", r.Name, "overlaps", r.Overlaps)
		}
	}

	if store != nil {
		if err := record(store, results, logger); err != nil {
			return overlapbatch.Summary{}, err
		}
	}

	return overlapbatch.Summarize(results), nil
}

// record replaces the stored results with this run's, so pairs removed from
// the scenario file do not linger.
func record(store overlapstats.ResultStore, results []overlapbatch.Result, logger *slog.Logger) error {
	for _, r := range results {
		if prev := store.GetByName(r.Name); prev != nil && prev.Overlaps != r.Overlaps {
			logger.Info("changed", "pair", r.Name, "was", prev.Overlaps, "now", r.Overlaps)
		}
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing results: %w", err)
	}
	if err := overlapstats.RecordAll(store, results); err != nil {
		return fmt.Errorf("recording results: %w", err)
	}

	logger.Info("stored", "summary", store.Summary().String())
	return nil
}

func report(w io.Writer, store overlapstats.ResultStore) error {
	all, err := store.GetAll()
	if err != nil {
		return err
	}
	for _, r := range all {
		fmt.Fprintln(w, r.String())
	}
	return nil
}

func watch(ctx context.Context, c config, store overlapstats.ResultStore, logger *slog.Logger) error {
	w, err := scenario.NewWatcher(filepath.Dir(c.Scenario))
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(c.Scenario)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors:
			logger.Error("watcher", "error", err)
		case changed := <-w.Events:
			if abs, _ := filepath.Abs(changed); abs != target {
				continue
			}
			summary, err := runOnce(ctx, c, store, logger)
			if err != nil {
				logger.Error("re-run failed", "error", err)
				continue
			}
			fmt.Println(summary.String())
		}
	}
}

func main() {
	godotenv.Load()

	c, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	prettylog.SetProgramLevelPrettyLogger("aabb-batch", c.LogLevel)
	logger := slog.Default().With("area", "BatchMain")

	store, err := openStore(c)
	assert.NoError(err, "unable to open result store", "kind", c.StoreKind, "store", c.Store)
	if store != nil {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctrlc.HandleCtrlC(cancel)

	summary, err := runOnce(ctx, c, store, logger)
	if err != nil {
		logger.Error("batch failed", "scenario", c.Scenario, "error", err)
		if !c.Watch {
			os.Exit(1)
		}
	} else {
		fmt.Println(summary.String())
	}

	if c.Report && store != nil {
		err = report(os.Stdout, store)
		assert.NoError(err, "unable to read back results", "store", c.Store)
	}

	if c.Watch {
		logger.Info("watching", "scenario", c.Scenario)
		err = watch(ctx, c, store, logger)
		logger.Warn("watch finished", "error", err)
		return
	}

	if summary.Mismatched > 0 {
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
