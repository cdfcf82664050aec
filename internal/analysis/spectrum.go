package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the DFT magnitudes of series up to the Nyquist bin,
// after removing its mean. Bin k corresponds to a period of len(series)/k.
func PowerSpectrum(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	ps := make([]float64, len(coeffs)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantPeriod finds the strongest non-constant bin of the population
// spectrum and converts it to a period in generations. It returns 0 when the
// series is flat.
func DominantPeriod(population []int) (period float64, power float64) {
	series := make([]float64, len(population))
	for i, p := range population {
		series[i] = float64(p)
	}

	ps := PowerSpectrum(series)
	best := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > power {
			power = ps[k]
			best = k
		}
	}
	if best == 0 || power < 1e-9 {
		return 0, 0
	}
	return float64(len(series)) / float64(best), power
}

// Stats describes a population series.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

func Summarize(population []int) Stats {
	if len(population) == 0 {
		return Stats{}
	}
	s := Stats{Min: population[0], Max: population[0]}
	for _, p := range population {
		s.Mean += float64(p)
		s.Min = min(s.Min, p)
		s.Max = max(s.Max, p)
	}
	s.Mean /= float64(len(population))
	for _, p := range population {
		d := float64(p) - s.Mean
		s.StdDev += d * d
	}
	s.StdDev = math.Sqrt(s.StdDev / float64(len(population)))
	return s
}
