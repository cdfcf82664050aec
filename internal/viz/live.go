package viz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/export"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/sim"
	"github.com/san-kum/golife/internal/ui"
)

const (
	// rows above the board: title and a blank line
	boardTop = 2

	chartWidth    = 30
	chartHistory  = 120
	maxGIFFrames  = 600
	recordingFile = "golife.gif"
)

type TickMsg time.Time

// Model drives a sim.Game from the terminal. The board occupies the top-left
// corner below the title, two columns per cell, so mouse coordinates map
// directly onto cells.
type Model struct {
	game     *sim.Game
	interval time.Duration
	density  float64

	theme    Theme
	styles   styles
	braille  bool
	showHelp bool

	recording bool
	frames    []*life.Board
	message   string

	// terminal size, 0 until the first WindowSizeMsg; top is the first
	// board row on screen when the board is taller than the terminal
	width  int
	height int
	top    int

	quitting bool
}

func NewModel(game *sim.Game, cfg *config.Config) Model {
	density := cfg.Board.Density
	if density <= 0 {
		density = config.DefaultDensity
	}
	theme := GetTheme(cfg.Display.Theme)
	size := game.Size()
	return Model{
		game:     game,
		interval: sim.NewFixedStep(cfg.Display.TPS).Interval(),
		density:  density,
		theme:    theme,
		styles:   newStyles(theme),
		braille:  size.W > 80 || size.H > 60,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the game on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll(0)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.cellAt(msg.X, msg.Y); ok {
				_ = m.game.Toggle(x, y)
			}
		}
	case TickMsg:
		if m.game.Tick() {
			m.capture()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		return m, nil
	case "b":
		m.braille = !m.braille
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "up", "down", "pgup", "pgdown":
		m.scroll(scrollDelta(key, m.visibleRows()))
		return m, nil
	case "g":
		m.toggleRecording()
		return m, nil
	}

	action := ui.KeyAction(key)
	if ui.Dispatch(m.game, action, m.density) {
		m.quitting = true
		return m, tea.Quit
	}
	if action == ui.ActionStep {
		m.capture()
	}
	return m, nil
}

// cellAt maps a terminal cell to a board cell. Clicks are only mapped in the
// full view with the help closed.
func (m Model) cellAt(col, row int) (x, y int, ok bool) {
	if m.braille || m.showHelp {
		return 0, 0, false
	}
	size := m.game.Size()
	x, y = col/2, row-boardTop
	if x < 0 || y < 0 || x >= size.W || y >= m.visibleRows() {
		return 0, 0, false
	}
	return x, y + m.top, true
}

// visibleRows is the number of board rows that fit below the title.
func (m Model) visibleRows() int {
	h := m.game.Size().H
	if m.height <= 0 {
		return h
	}
	return max(min(m.height-boardTop, h), 1)
}

func (m *Model) scroll(delta int) {
	maxTop := m.game.Size().H - m.visibleRows()
	m.top = max(min(m.top+delta, maxTop), 0)
}

func scrollDelta(key string, page int) int {
	switch key {
	case "up":
		return -1
	case "down":
		return 1
	case "pgup":
		return -page
	}
	return page
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.frames = []*life.Board{m.game.Snapshot()}
		m.message = "recording"
		return
	}
	m.recording = false
	if err := m.saveGIF(recordingFile); err != nil {
		m.message = "gif: " + err.Error()
	} else {
		m.message = fmt.Sprintf("saved %d frames to %s", len(m.frames), recordingFile)
	}
	m.frames = nil
}

func (m *Model) capture() {
	if !m.recording || len(m.frames) >= maxGIFFrames {
		return
	}
	m.frames = append(m.frames, m.game.Snapshot())
}

func (m *Model) saveGIF(path string) error {
	if len(m.frames) == 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteGIF(f, m.frames, 6, 5, export.Classic)
}

// View renders the board and the stats panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.styles.header.Render("GAME OF LIFE") + "  " + m.styles.label.UnsetWidth().Render(m.game.Rule().String())

	if m.showHelp {
		return m.clip(title + "\n\n" + helpOverlay)
	}

	board := m.renderBoard()
	if m.braille {
		board = m.styles.alive.Render(board)
	}

	return m.clip(title + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, board, m.renderPanel()))
}

// clip drops lines below the terminal so the renderer never scrolls the
// title and the first board row off the top.
func (m Model) clip(view string) string {
	if m.height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if len(lines) <= m.height {
		return view
	}
	return strings.Join(lines[:m.height], "\n")
}

func (m Model) renderBoard() string {
	b := m.game.Board()
	if m.braille {
		c := CanvasFor(b)
		c.Draw(b)
		return c.String()
	}

	var sb strings.Builder
	for y := m.top; y < m.top+m.visibleRows(); y++ {
		if y > m.top {
			sb.WriteByte('\n')
		}
		// runs of equal cells share one styled span
		run, alive := 0, b.At(0, y) == life.Alive
		flush := func() {
			if alive {
				sb.WriteString(m.styles.alive.Render(strings.Repeat("██", run)))
			} else {
				sb.WriteString(m.styles.dead.Render(strings.Repeat("··", run)))
			}
		}
		for x := 0; x < b.Width(); x++ {
			a := b.At(x, y) == life.Alive
			if a != alive {
				flush()
				run, alive = 0, a
			}
			run++
		}
		flush()
	}
	return sb.String()
}

func (m Model) renderPanel() string {
	s := m.styles
	var sb strings.Builder

	status := s.stopped.Render("STOPPED")
	if m.game.Running() {
		status = s.running.Render("RUNNING")
	}
	if m.recording {
		status += "  " + s.sel.Render("● REC")
	}
	sb.WriteString(status + "\n\n")

	size := m.game.Size()
	cells := size.W * size.H
	pop := m.game.Population()
	sb.WriteString(s.label.Render("Generation") + s.value.Render(fmt.Sprintf("%d", m.game.Generation())) + "\n")
	sb.WriteString(s.label.Render("Population") + s.value.Render(fmt.Sprintf("%d", pop)) + "\n")
	sb.WriteString(s.label.Render("Board") + s.value.Render(fmt.Sprintf("%dx%d", size.W, size.H)) + "\n")
	sb.WriteString(s.label.Render("Density") + s.value.Render(ProgressBar(float64(pop)/float64(cells), 20)) + "\n")
	sb.WriteString(s.label.Render("Theme") + s.value.Render(m.theme.Name) + "\n")

	hist := m.game.History()
	if len(hist) > chartHistory {
		hist = hist[len(hist)-chartHistory:]
	}
	if len(hist) > 1 {
		data := make([]float64, len(hist))
		for i, v := range hist {
			data[i] = float64(v)
		}
		chart := asciigraph.Plot(data, asciigraph.Height(6), asciigraph.Width(chartWidth), asciigraph.Caption("Population"))
		sb.WriteString(s.graph.Render(chart) + "\n")
		sb.WriteString(s.label.Render("Trend") + s.alive.Render(SparklineChart(hist, chartWidth)) + "\n")
	}

	if m.message != "" {
		sb.WriteString("\n" + s.value.Render(m.message) + "\n")
	}

	sb.WriteString(s.help.Render(Separator(chartWidth) + "\nSP:Run N:Next C:Clear R:Random\nT:Theme B:Braille G:Record ?:Help Q:Quit"))
	return s.panel.Render(sb.String())
}

const helpOverlay = `╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/stop auto-update   ║
║  N        - Next frame               ║
║  C        - Clear field              ║
║  R        - Randomize                ║
║  Click    - Toggle cell              ║
║  ↑ ↓ PgUp - Scroll a tall board      ║
║  B        - Braille overview         ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q, Esc   - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the terminal frontend and blocks until it exits. An interrupt
// or a canceled ctx is a normal exit.
func Run(ctx context.Context, game *sim.Game, cfg *config.Config) error {
	return run(ctx, NewModel(game, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
}

func run(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithContext(ctx))
	_, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
