// Package ui holds the toolkit-independent part of the desktop frontends:
// where the buttons and cells are on screen, what each input means and how
// it is applied to a sim.Controller. The raylib, fyne and ebiten frontends
// only draw and forward input.
package ui

import (
	"fmt"
	"time"

	"github.com/san-kum/golife/internal/sim"
)

type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionStep
	ActionClear
	ActionRandomize
	ActionQuit
)

const (
	LabelStart     = "Start auto-update"
	LabelStop      = "Stop auto-update"
	LabelNextFrame = "Next frame"
	LabelClear     = "Clear field"
	LabelRandomize = "Randomize"

	Title = "Game of Life"
)

// Label returns the caption of the button for a. The run button reads
// "Stop auto-update" while running.
func Label(a Action, running bool) string {
	switch a {
	case ActionToggleRun:
		if running {
			return LabelStop
		}
		return LabelStart
	case ActionStep:
		return LabelNextFrame
	case ActionClear:
		return LabelClear
	case ActionRandomize:
		return LabelRandomize
	}
	return ""
}

// KeyAction maps a lower-case key name to its action.
func KeyAction(key string) Action {
	switch key {
	case " ", "space":
		return ActionToggleRun
	case "n":
		return ActionStep
	case "c":
		return ActionClear
	case "r":
		return ActionRandomize
	case "q", "esc", "escape":
		return ActionQuit
	}
	return ActionNone
}

// Randomizer is implemented by controllers that can reseed their board.
type Randomizer interface {
	Randomize(seed int64, density float64)
}

// Dispatch applies a to c and reports whether the frontend should quit.
// ActionRandomize is ignored unless c implements Randomizer.
func Dispatch(c sim.Controller, a Action, density float64) (quit bool) {
	switch a {
	case ActionToggleRun:
		c.SetRunning(!c.Running())
	case ActionStep:
		c.Step()
	case ActionClear:
		c.Clear()
	case ActionRandomize:
		if r, ok := c.(Randomizer); ok {
			r.Randomize(time.Now().UnixNano(), density)
		}
	case ActionQuit:
		return true
	}
	return false
}

// Status is the one-line summary shown under the board.
func Status(generation, population int, running bool) string {
	state := "stopped"
	if running {
		state = "running"
	}
	return fmt.Sprintf("generation %d  population %d  %s", generation, population, state)
}
