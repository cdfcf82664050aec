package metrics

import (
	"fmt"
	"sort"

	"github.com/san-kum/golife/internal/sim"
)

var constructors = map[string]func() sim.Metric{
	"mean_population": func() sim.Metric { return NewPopulation() },
	"peak_population": func() sim.Metric { return NewPeak() },
	"births":          func() sim.Metric { return NewBirths() },
	"deaths":          func() sim.Metric { return NewDeaths() },
	"activity":        func() sim.Metric { return NewActivity() },
}

// Get builds a fresh metric by name.
func Get(name string) (sim.Metric, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return c(), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Standard returns one of every metric, in name order.
func Standard() []sim.Metric {
	out := make([]sim.Metric, 0, len(constructors))
	for _, n := range Names() {
		out = append(out, constructors[n]())
	}
	return out
}

// NewSimulator returns a simulator with the standard metrics attached.
func NewSimulator() *sim.Simulator {
	s := sim.New()
	for _, m := range Standard() {
		s.AddMetric(m)
	}
	return s
}
