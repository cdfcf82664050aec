package ui

import "github.com/san-kum/golife/internal/sim"

const (
	ToolbarHeight = 40
	StatusHeight  = 22
	buttonGap     = 8
	buttonHeight  = 28
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

type Button struct {
	Action Action
	Rect   Rect
}

var buttonWidths = []struct {
	action Action
	width  int
}{
	{ActionToggleRun, 180},
	{ActionStep, 110},
	{ActionClear, 110},
	{ActionRandomize, 110},
}

// Layout places a toolbar row of buttons above a Cols x Rows canvas.
type Layout struct {
	Cols     int
	Rows     int
	CellSize int
}

func NewLayout(cols, rows, cellSize int) Layout {
	return Layout{Cols: cols, Rows: rows, CellSize: cellSize}
}

func (l Layout) toolbarWidth() int {
	w := buttonGap
	for _, b := range buttonWidths {
		w += b.width + buttonGap
	}
	return w
}

// CanvasSize is the board area in pixels.
func (l Layout) CanvasSize() (w, h int) {
	return l.Cols * l.CellSize, l.Rows * l.CellSize
}

// WindowSize is wide enough for both the canvas and the toolbar, with the
// status line below the canvas.
func (l Layout) WindowSize() (w, h int) {
	cw, ch := l.CanvasSize()
	return max(cw, l.toolbarWidth()), ToolbarHeight + ch + StatusHeight
}

// StatusRect is the strip below the canvas holding generation and population.
func (l Layout) StatusRect() Rect {
	w, h := l.WindowSize()
	return Rect{X: 0, Y: h - StatusHeight, W: w, H: StatusHeight}
}

// CanvasOrigin is the top-left pixel of cell (0, 0).
func (l Layout) CanvasOrigin() (x, y int) {
	return 0, ToolbarHeight
}

// CellRect is the on-screen square of cell (x, y).
func (l Layout) CellRect(x, y int) Rect {
	ox, oy := l.CanvasOrigin()
	return Rect{X: ox + x*l.CellSize, Y: oy + y*l.CellSize, W: l.CellSize, H: l.CellSize}
}

// CellAt maps a window pixel to a cell. ok is false outside the canvas.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	ox, oy := l.CanvasOrigin()
	px, py = px-ox, py-oy
	if px < 0 || py < 0 || l.CellSize <= 0 {
		return 0, 0, false
	}
	x, y = px/l.CellSize, py/l.CellSize
	if x >= l.Cols || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

func (l Layout) Buttons() []Button {
	buttons := make([]Button, 0, len(buttonWidths))
	x := buttonGap
	y := (ToolbarHeight - buttonHeight) / 2
	for _, b := range buttonWidths {
		buttons = append(buttons, Button{
			Action: b.action,
			Rect:   Rect{X: x, Y: y, W: b.width, H: buttonHeight},
		})
		x += b.width + buttonGap
	}
	return buttons
}

func (l Layout) ButtonAt(px, py int) Action {
	for _, b := range l.Buttons() {
		if b.Rect.Contains(px, py) {
			return b.Action
		}
	}
	return ActionNone
}

// Click handles a primary mouse click at a window pixel: a button press is
// dispatched, a press on the canvas toggles the cell under it.
func (l Layout) Click(c sim.Controller, px, py int, density float64) (quit bool) {
	if a := l.ButtonAt(px, py); a != ActionNone {
		return Dispatch(c, a, density)
	}
	if x, y, ok := l.CellAt(px, py); ok {
		_ = c.Toggle(x, y)
	}
	return false
}
