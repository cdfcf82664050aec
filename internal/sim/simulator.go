package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/golife/internal/life"
)

// Simulator runs a board headlessly for a fixed number of generations,
// recording population statistics and detecting when the board settles into
// a cycle.
type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, b0 *life.Board, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	n := cfg.Generations
	result := &Result{
		Population: make([]int, 0, n+1),
		Births:     make([]int, 0, n+1),
		Deaths:     make([]int, 0, n+1),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	pool := NewBoardPool(b0.Width(), b0.Height())
	cur := pool.Get()
	if err := cur.CopyFrom(b0); err != nil {
		return nil, err
	}

	result.Population = append(result.Population, cur.Population())
	result.Births = append(result.Births, 0)
	result.Deaths = append(result.Deaths, 0)

	seen := map[uint64]int{cur.Hash(): 0}

	for gen := 1; gen <= n; gen++ {
		select {
		case <-ctx.Done():
			result.Final = cur
			return result, ctx.Err()
		default:
		}

		next := pool.Get()
		var err error
		if cfg.Workers > 1 {
			err = life.StepParallel(next, cur, cfg.Rule, cfg.Workers)
		} else {
			err = life.StepInto(next, cur, cfg.Rule)
		}
		if err != nil {
			return nil, SimError{Generation: gen, Message: err.Error()}
		}

		births, deaths := diff(cur, next)
		for _, m := range s.metrics {
			m.Observe(cur, next, gen)
		}
		for _, obs := range s.observers {
			obs.OnStep(next, gen)
		}

		pool.Put(cur)
		cur = next
		result.Generations = gen
		result.Population = append(result.Population, births+result.Population[gen-1]-deaths)
		result.Births = append(result.Births, births)
		result.Deaths = append(result.Deaths, deaths)

		if result.Period == 0 {
			h := cur.Hash()
			if first, ok := seen[h]; ok {
				result.Period = gen - first
				result.StableAt = first
				if cfg.StopWhenStable {
					break
				}
			} else {
				seen[h] = gen
			}
		}
	}

	result.Final = cur
	result.Extinct = cur.Population() == 0

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return nil
}

// RunWithCallback steps b0 until the callback returns false, the context is
// done or cfg.Generations is reached.
func (s *Simulator) RunWithCallback(ctx context.Context, b0 *life.Board, cfg Config, callback func(b *life.Board, generation int) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	cur := b0.Clone()
	for gen := 0; gen <= cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(cur, gen) {
			return nil
		}
		cur = life.StepRule(cur, cfg.Rule)
	}

	return nil
}

func diff(prev, next *life.Board) (births, deaths int) {
	p, n := prev.Cells(), next.Cells()
	for i := range p {
		switch {
		case p[i] == life.Dead && n[i] == life.Alive:
			births++
		case p[i] == life.Alive && n[i] == life.Dead:
			deaths++
		}
	}
	return births, deaths
}
