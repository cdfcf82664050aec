package analysis

import (
	"math"

	"github.com/san-kum/golife/internal/life"
)

// Damage runs b and a copy with cell (x, y) flipped side by side and records
// the number of differing cells after each generation. curve[0] is 1.
func Damage(b *life.Board, r life.Rule, x, y, generations int) ([]int, error) {
	a := b.Clone()
	p := b.Clone()
	if err := p.Toggle(x, y); err != nil {
		return nil, err
	}

	curve := make([]int, 0, generations+1)
	curve = append(curve, hamming(a, p))
	for gen := 0; gen < generations; gen++ {
		a = life.StepRule(a, r)
		p = life.StepRule(p, r)
		curve = append(curve, hamming(a, p))
	}
	return curve, nil
}

// SpreadRate is the mean per-generation log growth of the damage curve,
// (1/t) ln(d(t)/d(0)) taken over the generations where damage survived.
// Positive means the perturbation grew, negative that it shrank. Damage that
// healed on the first generation gives -Inf.
func SpreadRate(curve []int) float64 {
	if len(curve) < 2 || curve[0] == 0 {
		return 0
	}
	d0 := float64(curve[0])
	t := 0
	for i := len(curve) - 1; i > 0; i-- {
		if curve[i] > 0 {
			t = i
			break
		}
	}
	if t == 0 {
		return math.Inf(-1)
	}
	return math.Log(float64(curve[t])/d0) / float64(t)
}

func hamming(a, b *life.Board) int {
	ca, cb := a.Cells(), b.Cells()
	n := 0
	for i := range ca {
		if ca[i] != cb[i] {
			n++
		}
	}
	return n
}
