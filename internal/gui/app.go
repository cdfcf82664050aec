package gui

import (
	"context"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/sim"
	"github.com/san-kum/golife/internal/ui"
)

const targetFPS = 60

var (
	ColToolbar = rl.NewColor(235, 235, 235, 255)
	ColButton  = rl.NewColor(250, 250, 250, 255)
	ColHover   = rl.NewColor(220, 228, 255, 255)
	ColBorder  = rl.NewColor(150, 150, 150, 255)
	ColText    = rl.NewColor(30, 30, 30, 255)
	ColTextDim = rl.NewColor(110, 110, 110, 255)
	ColOverlay = rl.NewColor(10, 10, 10, 220)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Game    *sim.Game
	Layout  ui.Layout
	Ticker  *sim.FixedStep
	Density float64

	Alive rl.Color
	Dead  rl.Color
	Grid  rl.Color

	// pattern picker
	InMenu   bool
	Patterns []string
	Selected int

	quit bool
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func NewApp(game *sim.Game, cfg *config.Config) *App {
	alive, dead, grid := cfg.Palette()
	size := game.Size()
	density := cfg.Board.Density
	if density <= 0 {
		density = config.DefaultDensity
	}
	return &App{
		Game:     game,
		Layout:   ui.NewLayout(size.W, size.H, cfg.Display.CellSize),
		Ticker:   sim.NewFixedStep(cfg.Display.TPS),
		Density:  density,
		Alive:    toColor(alive),
		Dead:     toColor(dead),
		Grid:     toColor(grid),
		Patterns: pattern.Names(),
	}
}

func (a *App) initWindow() {
	w, h := a.Layout.WindowSize()
	rl.InitWindow(int32(w), int32(h), ui.Title)
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed, the user quits or ctx
// is done.
func Run(ctx context.Context, game *sim.Game, cfg *config.Config) error {
	app := NewApp(game, cfg)
	app.initWindow()
	defer rl.CloseWindow()
	app.RunLoop(ctx)
	return nil
}

func (a *App) RunLoop(ctx context.Context) {
	for !a.Done(ctx) && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Done reports whether the loop should stop without asking the window.
func (a *App) Done(ctx context.Context) bool {
	return a.quit || ctx.Err() != nil
}

func (a *App) Update() {
	if a.InMenu {
		a.updateMenu()
		return
	}

	if rl.IsKeyPressed(rl.KeyP) {
		a.InMenu = true
		return
	}
	if action := keyAction(); action != ui.ActionNone {
		if ui.Dispatch(a.Game, action, a.Density) {
			a.quit = true
			return
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if a.Layout.Click(a.Game, int(pos.X), int(pos.Y), a.Density) {
			a.quit = true
			return
		}
	}

	if a.Ticker.ShouldStep() {
		a.Game.Tick()
	}
}

func keyAction() ui.Action {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		return ui.KeyAction("space")
	case rl.IsKeyPressed(rl.KeyN):
		return ui.KeyAction("n")
	case rl.IsKeyPressed(rl.KeyC):
		return ui.KeyAction("c")
	case rl.IsKeyPressed(rl.KeyR):
		return ui.KeyAction("r")
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return ui.ActionQuit
	}
	return ui.ActionNone
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyP) {
		a.InMenu = false
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Selected = (a.Selected + 1) % len(a.Patterns)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Selected = (a.Selected - 1 + len(a.Patterns)) % len(a.Patterns)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		name := a.Patterns[a.Selected]
		p, err := pattern.Lookup(name)
		if err == nil {
			err = a.Game.Load(p)
		}
		if err != nil {
			log.Printf("load %s: %v", name, err)
		}
		a.InMenu = false
	}
}
