package metrics

import (
	"github.com/san-kum/golife/internal/life"
)

type transitions struct {
	births, deaths int
}

func countTransitions(prev, next *life.Board) transitions {
	var t transitions
	p, n := prev.Cells(), next.Cells()
	for i := range p {
		if p[i] == n[i] {
			continue
		}
		if n[i] == life.Alive {
			t.births++
		} else {
			t.deaths++
		}
	}
	return t
}

// Births counts every dead-to-alive transition.
type Births struct {
	total int
}

func NewBirths() *Births { return &Births{} }

func (b *Births) Name() string { return "births" }

func (b *Births) Observe(prev, next *life.Board, generation int) {
	b.total += countTransitions(prev, next).births
}

func (b *Births) Value() float64 { return float64(b.total) }
func (b *Births) Reset()         { b.total = 0 }

// Deaths counts every alive-to-dead transition.
type Deaths struct {
	total int
}

func NewDeaths() *Deaths { return &Deaths{} }

func (d *Deaths) Name() string { return "deaths" }

func (d *Deaths) Observe(prev, next *life.Board, generation int) {
	d.total += countTransitions(prev, next).deaths
}

func (d *Deaths) Value() float64 { return float64(d.total) }
func (d *Deaths) Reset()         { d.total = 0 }

// Activity is the mean fraction of cells that change state per generation.
// A still life scores 0.
type Activity struct {
	changed float64
	cells   float64
}

func NewActivity() *Activity { return &Activity{} }

func (a *Activity) Name() string { return "activity" }

func (a *Activity) Observe(prev, next *life.Board, generation int) {
	t := countTransitions(prev, next)
	a.changed += float64(t.births + t.deaths)
	a.cells += float64(len(next.Cells()))
}

func (a *Activity) Value() float64 {
	if a.cells == 0 {
		return 0
	}
	return a.changed / a.cells
}

func (a *Activity) Reset() {
	a.changed = 0
	a.cells = 0
}
