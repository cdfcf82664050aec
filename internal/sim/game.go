package sim

import (
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/pattern"
)

const historyCapacity = 600

// Game is the interactive controller behind every frontend: one board, a
// running flag and a generation counter. It is NOT safe for concurrent use.
type Game struct {
	board      *life.Board
	rule       life.Rule
	running    bool
	generation int
	history    []int
	observers  []Observer
}

var _ Controller = (*Game)(nil)

func NewGame(b *life.Board, rule life.Rule) *Game {
	g := &Game{
		board:   b,
		rule:    rule,
		history: make([]int, 0, historyCapacity),
	}
	g.record()
	return g
}

func (g *Game) AddObserver(o Observer) { g.observers = append(g.observers, o) }

// Step advances one generation regardless of the running flag.
func (g *Game) Step() {
	g.board = life.StepRule(g.board, g.rule)
	g.generation++
	g.record()
	for _, o := range g.observers {
		o.OnStep(g.board, g.generation)
	}
}

// Tick is called on every timer tick. It steps only while running and
// reports whether it did.
func (g *Game) Tick() bool {
	if !g.running {
		return false
	}
	g.Step()
	return true
}

func (g *Game) Toggle(x, y int) error {
	return g.board.Toggle(x, y)
}

// Clear replaces the board with an all-dead one and resets the counter.
func (g *Game) Clear() {
	g.board, _ = life.NewBoard(g.board.Width(), g.board.Height())
	g.resetCounters()
}

// Randomize replaces the board with a fresh random soup.
func (g *Game) Randomize(seed int64, density float64) {
	g.board, _ = life.RandomBoard(g.board.Width(), g.board.Height(), seed, density)
	g.resetCounters()
}

// Load clears the board and places p in the center.
func (g *Game) Load(p *pattern.Pattern) error {
	b, _ := life.NewBoard(g.board.Width(), g.board.Height())
	if err := p.PlaceCenter(b); err != nil {
		return err
	}
	g.board = b
	g.resetCounters()
	return nil
}

func (g *Game) SetRunning(running bool) { g.running = running }
func (g *Game) Running() bool           { return g.running }
func (g *Game) ToggleRunning()          { g.running = !g.running }

// Board returns the current board. Callers must treat it as read-only and
// go through Toggle for edits.
func (g *Game) Board() *life.Board { return g.board }

// Snapshot returns an independent copy of the current board.
func (g *Game) Snapshot() *life.Board { return g.board.Clone() }

func (g *Game) Rule() life.Rule { return g.rule }
func (g *Game) Size() life.Size { return g.board.Size() }
func (g *Game) Generation() int { return g.generation }
func (g *Game) Population() int { return g.board.Population() }

// History returns the population of the most recent generations, oldest first.
func (g *Game) History() []int {
	h := make([]int, len(g.history))
	copy(h, g.history)
	return h
}

func (g *Game) record() {
	g.history = append(g.history, g.board.Population())
	if len(g.history) > historyCapacity {
		g.history = g.history[1:]
	}
}

func (g *Game) resetCounters() {
	g.generation = 0
	g.history = g.history[:0]
	g.record()
}
