// Package desktop is the fyne frontend: native buttons above a board image,
// a pattern picker and a status line.
package desktop

import (
	"context"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/export"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/sim"
	"github.com/san-kum/golife/internal/ui"
)

const helpText = `Click a cell to bring it to life or kill it.

Space   start / stop auto-update
N       next frame
C       clear field
R       randomize
Q, Esc  quit`

type App struct {
	game    *sim.Game
	density float64
	tps     int

	app    fyne.App
	window fyne.Window
	board  *boardView
	runBtn *widget.Button
	status *widget.Label
}

// Run builds the window and blocks until it is closed or ctx is done. All
// game access happens on the fyne main goroutine.
func Run(ctx context.Context, game *sim.Game, cfg *config.Config) error {
	a := app.New()
	w := a.NewWindow(ui.Title)

	alive, dead, grid := cfg.Palette()
	pal := export.Palette{Alive: alive, Dead: dead, Grid: grid}

	density := cfg.Board.Density
	if density <= 0 {
		density = config.DefaultDensity
	}

	d := &App{game: game, density: density, tps: cfg.Display.TPS, app: a, window: w}
	d.board = newBoardView(game.Board(), cfg.Display.CellSize, pal, func(x, y int) {
		if err := d.game.Toggle(x, y); err != nil {
			log.Printf("toggle: %v", err)
		}
		d.refresh()
	})
	d.status = widget.NewLabel("")
	d.runBtn = widget.NewButton(ui.LabelStart, func() { d.dispatch(ui.ActionToggleRun) })

	patterns := widget.NewSelect(pattern.Names(), func(name string) {
		p, err := pattern.Lookup(name)
		if err == nil {
			err = d.game.Load(p)
		}
		if err != nil {
			dialog.ShowError(err, w)
		}
		d.refresh()
	})
	patterns.PlaceHolder = "Load pattern"

	help := widget.NewButton("?", func() {
		dialog.NewCustom("Controls", "Close", widget.NewLabel(helpText), w).Show()
	})

	toolbar := container.NewHBox(
		d.runBtn,
		widget.NewButton(ui.LabelNextFrame, func() { d.dispatch(ui.ActionStep) }),
		widget.NewButton(ui.LabelClear, func() { d.dispatch(ui.ActionClear) }),
		widget.NewButton(ui.LabelRandomize, func() { d.dispatch(ui.ActionRandomize) }),
		patterns,
		help,
	)

	w.SetContent(container.NewBorder(toolbar, d.status, nil, nil, container.NewCenter(d.board)))
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		d.dispatch(ui.KeyAction(strings.ToLower(string(ev.Name))))
	})

	stop := make(chan struct{})
	w.SetOnClosed(func() { close(stop) })
	go d.tick(ctx, stop)

	d.refresh()
	w.ShowAndRun()
	return nil
}

func (d *App) dispatch(a ui.Action) {
	if ui.Dispatch(d.game, a, d.density) {
		d.window.Close()
		return
	}
	d.refresh()
}

// tick drives the game at the configured rate. The timer keeps firing while
// stopped; Tick is a no-op then. A done ctx quits the app.
func (d *App) tick(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(sim.NewFixedStep(d.tps).Interval())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			fyne.Do(d.app.Quit)
			return
		case <-ticker.C:
			fyne.Do(func() {
				if d.game.Tick() {
					d.refresh()
				}
			})
		}
	}
}

func (d *App) refresh() {
	d.board.update(d.game.Board())
	d.runBtn.SetText(ui.Label(ui.ActionToggleRun, d.game.Running()))
	d.status.SetText(ui.Status(d.game.Generation(), d.game.Population(), d.game.Running()))
}
