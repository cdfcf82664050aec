package metrics

import (
	"github.com/san-kum/golife/internal/life"
)

// Population reports the mean live-cell count over the observed generations.
type Population struct {
	name    string
	sum     float64
	samples int
}

func NewPopulation() *Population {
	return &Population{name: "mean_population"}
}

func (p *Population) Name() string {
	return p.name
}

func (p *Population) Observe(prev, next *life.Board, generation int) {
	p.sum += float64(next.Population())
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.sum / float64(p.samples)
}

func (p *Population) Reset() {
	p.sum = 0
	p.samples = 0
}

// Peak tracks the largest population and the generation it occurred at.
type Peak struct {
	name    string
	peak    int
	at      int
	started bool
}

func NewPeak() *Peak {
	return &Peak{name: "peak_population"}
}

func (p *Peak) Name() string {
	return p.name
}

func (p *Peak) Observe(prev, next *life.Board, generation int) {
	if !p.started {
		p.peak = prev.Population()
		p.at = generation - 1
		p.started = true
	}
	if n := next.Population(); n > p.peak {
		p.peak = n
		p.at = generation
	}
}

func (p *Peak) Value() float64 {
	return float64(p.peak)
}

// Generation returns when the peak was first reached.
func (p *Peak) Generation() int {
	return p.at
}

func (p *Peak) Reset() {
	p.peak = 0
	p.at = 0
	p.started = false
}
