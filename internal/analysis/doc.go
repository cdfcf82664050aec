// Package analysis looks at a run after the fact.
//
//   - [PowerSpectrum] and [DominantPeriod]: spectral view of a population
//     series, useful for oscillating populations that never repeat exactly
//   - [Damage]: how far a single flipped cell spreads, the grid analogue of
//     separating two nearby trajectories
//   - [Summarize]: mean, spread and range of a series
//
// # Damage spreading
//
// A growing damage curve means the board is sensitive to its initial state:
//
//	curve, _ := analysis.Damage(b, life.Conway, 25, 25, 200)
//	if analysis.SpreadRate(curve) > 0 {
//	    // perturbation keeps growing
//	}
package analysis
