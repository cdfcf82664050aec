package automation

import (
	"context"
	"fmt"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/metrics"
	"github.com/san-kum/golife/internal/sim"
)

// DensitySweep runs an ensemble of random soups at each of NumSteps evenly
// spaced densities between Min and Max.
type DensitySweep struct {
	Width       int
	Height      int
	Rule        life.Rule
	Min         float64
	Max         float64
	NumSteps    int
	Runs        int
	Generations int
	Seed        int64
	Workers     int
}

// SweepResult summarizes the ensemble at one density.
type SweepResult struct {
	Density         float64
	MeanFinal       float64
	MeanPeak        float64
	MeanSettle      float64
	ExtinctFraction float64
	StableFraction  float64
}

// RunSweep executes a density sweep
func RunSweep(ctx context.Context, sweep *DensitySweep) ([]SweepResult, error) {
	if sweep.NumSteps < 1 || sweep.Runs < 1 {
		return nil, fmt.Errorf("sweep needs at least one step and one run")
	}
	if sweep.Min < 0 || sweep.Max > 1 || sweep.Min > sweep.Max {
		return nil, fmt.Errorf("invalid density range [%g, %g]", sweep.Min, sweep.Max)
	}

	cfg := sim.DefaultConfig()
	cfg.Rule = sweep.Rule
	cfg.Generations = sweep.Generations

	step := 0.0
	if sweep.NumSteps > 1 {
		step = (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		density := sweep.Min + float64(i)*step

		ens := sim.NewEnsemble(metrics.NewSimulator, sweep.Runs, sweep.Seed)
		if sweep.Workers > 0 {
			ens.SetLimit(sweep.Workers)
		}
		runs, err := ens.Run(ctx, func(seed int64) (*life.Board, error) {
			return life.RandomBoard(sweep.Width, sweep.Height, seed, density)
		}, cfg)
		if err != nil {
			return nil, err
		}

		results = append(results, summarize(density, runs))
		fmt.Printf("Sweep %d/%d: density=%.3f\n", i+1, sweep.NumSteps, density)
	}

	return results, nil
}

func summarize(density float64, runs []*sim.Result) SweepResult {
	r := SweepResult{Density: density}
	settled := 0
	for _, run := range runs {
		r.MeanFinal += float64(run.Final.Population())
		r.MeanPeak += run.Metrics["peak_population"]
		if run.Extinct {
			r.ExtinctFraction++
		}
		if run.Period > 0 {
			r.StableFraction++
			r.MeanSettle += float64(run.StableAt)
			settled++
		}
	}
	n := float64(len(runs))
	r.MeanFinal /= n
	r.MeanPeak /= n
	r.ExtinctFraction /= n
	r.StableFraction /= n
	if settled > 0 {
		r.MeanSettle /= float64(settled)
	}
	return r
}

// SweepStats counts the densities at which every run died out.
func SweepStats(results []SweepResult) (allExtinct int, someSurvive int) {
	for _, r := range results {
		if r.ExtinctFraction == 1 {
			allExtinct++
		} else {
			someSurvive++
		}
	}
	return
}
