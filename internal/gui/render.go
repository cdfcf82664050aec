package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/ui"
)

const (
	fontSize      = 16
	smallFontSize = 12
	plotWidth     = 160
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.Dead)

	a.drawBoard()
	a.drawToolbar()
	a.drawStatus()
	if a.InMenu {
		a.drawMenu()
	}

	rl.EndDrawing()
}

func (a *App) drawBoard() {
	b := a.Game.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			r := a.Layout.CellRect(x, y)
			if b.At(x, y) == life.Alive {
				rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), a.Alive)
			}
			rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), a.Grid)
		}
	}
}

func (a *App) drawToolbar() {
	w, _ := a.Layout.WindowSize()
	rl.DrawRectangle(0, 0, int32(w), ui.ToolbarHeight, ColToolbar)

	mouse := rl.GetMousePosition()
	for _, b := range a.Layout.Buttons() {
		rect := rl.NewRectangle(float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H))
		fill := ColButton
		if rl.CheckCollisionPointRec(mouse, rect) {
			fill = ColHover
		}
		rl.DrawRectangleRec(rect, fill)
		rl.DrawRectangleLinesEx(rect, 1, ColBorder)

		label := ui.Label(b.Action, a.Game.Running())
		tw := rl.MeasureText(label, fontSize)
		tx := int32(b.Rect.X) + (int32(b.Rect.W)-tw)/2
		ty := int32(b.Rect.Y) + (int32(b.Rect.H)-fontSize)/2
		rl.DrawText(label, tx, ty, fontSize, ColText)
	}
}

func (a *App) drawStatus() {
	s := a.Layout.StatusRect()
	rl.DrawRectangle(int32(s.X), int32(s.Y), int32(s.W), int32(s.H), ColToolbar)
	status := ui.Status(a.Game.Generation(), a.Game.Population(), a.Game.Running())
	rl.DrawText(status, int32(s.X)+6, int32(s.Y)+5, smallFontSize, ColTextDim)
	a.drawPopulation(s)
}

// drawPopulation plots the recent population history at the right edge of
// the status strip.
func (a *App) drawPopulation(s ui.Rect) {
	hist := a.Game.History()
	if len(hist) < 2 {
		return
	}
	if len(hist) > plotWidth {
		hist = hist[len(hist)-plotWidth:]
	}

	minVal, maxVal := hist[0], hist[0]
	for _, v := range hist {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	rectX := float32(s.X + s.W - plotWidth - 6)
	rectY := float32(s.Y + 3)
	height := float32(s.H - 6)

	points := make([]rl.Vector2, len(hist))
	for i, v := range hist {
		px := rectX + float32(i)/float32(len(hist))*plotWidth
		norm := float32(v-minVal) / float32(maxVal-minVal)
		points[i] = rl.NewVector2(px, rectY+height-norm*height)
	}
	rl.DrawLineStrip(points, a.Alive)
}

func (a *App) drawMenu() {
	w, h := a.Layout.WindowSize()
	rl.DrawRectangle(0, 0, int32(w), int32(h), ColOverlay)
	rl.DrawText("Load pattern", 30, 30, 24, ColSelect)

	limit := (h - 120) / 24
	startIdx := 0
	if a.Selected >= limit {
		startIdx = a.Selected - limit + 1
	}

	y := int32(80)
	for i := startIdx; i < len(a.Patterns) && i < startIdx+limit; i++ {
		name := a.Patterns[i]
		if i == a.Selected {
			rl.DrawText(fmt.Sprintf("> %s", name), 30, y, 20, ColSelect)
		} else {
			rl.DrawText(fmt.Sprintf("  %s", name), 30, y, 20, ColBorder)
		}
		y += 24
	}

	rl.DrawText("ARROWS: NAVIGATE  ENTER: LOAD  ESC: BACK", 30, int32(h-30), smallFontSize, ColBorder)
}
