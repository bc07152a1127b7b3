package overlapbatch

import (
	"context"
	"fmt"
	"log/slog"

	quickmath "aabb.theprimeagen.com/pkg/quick-math"
	"aabb.theprimeagen.com/pkg/scenario"
	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 4

type Result struct {
	Name     string         `json:"name"`
	A        quickmath.Rect `json:"a"`
	B        quickmath.Rect `json:"b"`
	Overlaps bool           `json:"overlaps"`
	Expect   *bool          `json:"expect,omitempty"`
}

// Mismatch is true only when an expectation exists and disagrees.
func (r Result) Mismatch() bool {
	return r.Expect != nil && *r.Expect != r.Overlaps
}

func (r Result) String() string {
	return fmt.Sprintf("Result(%s): %s vs %s overlaps=%t", r.Name, r.A, r.B, r.Overlaps)
}

type Summary struct {
	Total       int `json:"total" db:"total"`
	Overlapping int `json:"overlapping" db:"overlapping"`
	Mismatched  int `json:"mismatched" db:"mismatched"`
}

func (s Summary) String() string {
	return fmt.Sprintf("total=%d overlapping=%d mismatched=%d", s.Total, s.Overlapping, s.Mismatched)
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Overlaps {
			s.Overlapping++
		}
		if r.Mismatch() {
			s.Mismatched++
		}
	}
	return s
}

type Params struct {
	Workers int
}

func Evaluate(ctx context.Context, pairs []scenario.Pair, params Params) ([]Result, error) {
	workers := params.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	logger := slog.Default().With("area", "OverlapBatch")
	logger.Debug("evaluating", "pairs", len(pairs), "workers", workers)

	results := make([]Result, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range pairs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{
				Name:     p.Name,
				A:        p.A,
				B:        p.B,
				Overlaps: quickmath.Overlaps(p.A, p.B),
				Expect:   p.Expect,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait only reports errors from inside Go; a cancel that stopped the loop
	// early leaves results half filled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
