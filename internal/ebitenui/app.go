//go:build ebiten

package ebitenui

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/sim"
	"github.com/san-kum/golife/internal/ui"
)

const Available = true

var (
	colToolbar = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colButton  = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colBorder  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colText    = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// Game adapts a sim.Game to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	game    *sim.Game
	layout  ui.Layout
	ticker  *sim.FixedStep
	density float64

	alive color.Color
	dead  color.Color
	grid  color.Color
}

func New(game *sim.Game, cfg *config.Config) *Game {
	alive, dead, grid := cfg.Palette()
	size := game.Size()
	density := cfg.Board.Density
	if density <= 0 {
		density = config.DefaultDensity
	}
	return &Game{
		ctx:     context.Background(),
		game:    game,
		layout:  ui.NewLayout(size.W, size.H, cfg.Display.CellSize),
		ticker:  sim.NewFixedStep(cfg.Display.TPS),
		density: density,
		alive:   alive,
		dead:    dead,
		grid:    grid,
	}
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, game *sim.Game, cfg *config.Config) error {
	g := New(game, cfg)
	g.ctx = ctx
	w, h := g.layout.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(ui.Title)
	return ebiten.RunGame(g)
}

var keys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "esc"},
}

// Update handles input and advances the game on the fixed tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			if ui.Dispatch(g.game, ui.KeyAction(k.name), g.density) {
				return ebiten.Termination
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.layout.Click(g.game, x, y, g.density) {
			return ebiten.Termination
		}
	}

	if g.ticker.ShouldStep() {
		g.game.Tick()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.dead)

	b := g.game.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			r := g.layout.CellRect(x, y)
			if b.At(x, y) == life.Alive {
				vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), g.alive, false)
			}
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, g.grid, false)
		}
	}

	w, _ := g.layout.WindowSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), ui.ToolbarHeight, colToolbar, false)
	face := basicfont.Face7x13
	for _, btn := range g.layout.Buttons() {
		r := btn.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colButton, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colBorder, false)

		label := ui.Label(btn.Action, g.game.Running())
		tx := r.X + (r.W-len(label)*face.Advance)/2
		ty := r.Y + (r.H+face.Ascent)/2
		text.Draw(screen, label, face, tx, ty, colText)
	}

	s := g.layout.StatusRect()
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), colToolbar, false)
	status := ui.Status(g.game.Generation(), g.game.Population(), g.game.Running())
	text.Draw(screen, status, face, s.X+6, s.Y+(s.H+face.Ascent)/2, colText)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.WindowSize()
}
