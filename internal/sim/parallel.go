package sim

import (
	"context"
	"runtime"

	"github.com/san-kum/golife/internal/life"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs the same configuration over consecutive seeds. Each run gets
// its own Simulator from newSim because metrics carry state.
type Ensemble struct {
	newSim    func() *Simulator
	numRuns   int
	seedStart int64
	limit     int
}

func NewEnsemble(newSim func() *Simulator, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		newSim:    newSim,
		numRuns:   numRuns,
		seedStart: seedStart,
		limit:     runtime.GOMAXPROCS(0),
	}
}

// SetLimit caps the number of concurrent runs.
func (e *Ensemble) SetLimit(n int) {
	if n > 0 {
		e.limit = n
	}
}

// Run builds a board for each seed and simulates it. Results are indexed by
// run; the first error cancels the remaining runs.
func (e *Ensemble) Run(ctx context.Context, build func(seed int64) (*life.Board, error), cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.limit)
	for i := 0; i < e.numRuns; i++ {
		eg.Go(func() error {
			seed := e.seedStart + int64(i)
			b, err := build(seed)
			if err != nil {
				return err
			}

			cfgCopy := cfg
			cfgCopy.Seed = seed

			res, err := e.newSim().Run(ctx, b, cfgCopy)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
