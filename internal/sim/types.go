package sim

import (
	"fmt"

	"github.com/san-kum/golife/internal/life"
)

// Controller is the surface a frontend drives. Implementations are not
// required to be safe for concurrent use; frontends call them from a single
// goroutine.
type Controller interface {
	Step()
	Toggle(x, y int) error
	Clear()
	SetRunning(running bool)
	Running() bool
}

type Metric interface {
	Name() string
	Observe(prev, next *life.Board, generation int)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(b *life.Board, generation int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(b *life.Board, generation int)

func (f ObserverFunc) OnStep(b *life.Board, generation int) { f(b, generation) }

type Config struct {
	Generations    int
	Rule           life.Rule
	Workers        int
	StopWhenStable bool
	Seed           int64
}

func DefaultConfig() Config {
	return Config{
		Generations:    500,
		Rule:           life.Conway,
		StopWhenStable: true,
	}
}

type Result struct {
	Population  []int
	Births      []int
	Deaths      []int
	Generations int
	Final       *life.Board
	Metrics     map[string]float64

	// Period is the cycle length once the board repeats, 0 if it never did.
	// StableAt is the first generation of that cycle.
	Period   int
	StableAt int
	Extinct  bool
}

type SimError struct {
	Generation int
	Message    string
}

func (e SimError) Error() string {
	return fmt.Sprintf("generation %d: %s", e.Generation, e.Message)
}
