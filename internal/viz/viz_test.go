package viz

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	b, err := life.NewBoard(10, 8)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(sim.NewGame(b, life.Conway), config.DefaultConfig())
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t)

	m = press(m, " ")
	if !m.game.Running() {
		t.Error("space did not start auto-update")
	}
	m = press(m, " ")
	if m.game.Running() {
		t.Error("space did not stop auto-update")
	}

	m = press(m, "r")
	if m.game.Population() == 0 {
		t.Error("randomize left the board empty")
	}
	m = press(m, "n")
	if m.game.Generation() != 1 {
		t.Errorf("generation = %d after next frame", m.game.Generation())
	}
	m = press(m, "c")
	if m.game.Population() != 0 || m.game.Generation() != 0 {
		t.Error("clear did not reset the board")
	}

	m = press(m, "t")
	if m.theme.Name != "retro" {
		t.Errorf("theme = %s", m.theme.Name)
	}
}

func TestModelQuit(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := newTestModel(t)
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		if key == "esc" {
			next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
		}
		if cmd == nil || !next.(Model).quitting {
			t.Errorf("%s did not quit", key)
		}
	}
}

func TestModelTick(t *testing.T) {
	m := newTestModel(t)
	for x := 3; x <= 5; x++ {
		_ = m.game.Toggle(x, 4)
	}

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("tick must schedule the next tick")
	}
	if m.game.Generation() != 0 {
		t.Error("tick advanced a stopped game")
	}

	m.game.SetRunning(true)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.game.Generation() != 1 || m.game.Board().At(4, 3) != life.Alive {
		t.Error("tick did not step the running game")
	}
}

func TestModelMouseToggle(t *testing.T) {
	m := newTestModel(t)
	click := tea.MouseMsg{X: 7, Y: boardTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	next, _ := m.Update(click)
	m = next.(Model)
	if m.game.Board().At(3, 2) != life.Alive {
		t.Error("click did not toggle cell (3, 2)")
	}

	next, _ = m.Update(tea.MouseMsg{X: 7, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if m.game.Population() != 1 {
		t.Error("click on the title toggled a cell")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	_ = m.game.Toggle(0, 0)

	view := m.View()
	if !strings.Contains(view, "GAME OF LIFE") || !strings.Contains(view, "STOPPED") {
		t.Error("view is missing the header or status")
	}
	if !strings.Contains(view, "██") {
		t.Error("live cell not drawn")
	}

	m = press(m, "b")
	if !m.braille {
		t.Fatal("b did not switch to braille")
	}
	if !strings.ContainsRune(m.View(), 0x2801) {
		t.Error("braille view missing the live dot")
	}
}

func TestCanvas(t *testing.T) {
	b, _ := life.NewBoard(4, 4)
	_ = b.Set(0, 0, life.Alive)
	_ = b.Set(1, 3, life.Alive)

	c := CanvasFor(b)
	if c.Width != 2 || c.Height != 1 {
		t.Fatalf("canvas %dx%d", c.Width, c.Height)
	}
	c.Draw(b)
	if c.Grid[0][0] != 0x2800|0x1|0x80 {
		t.Errorf("grid = %U", c.Grid[0][0])
	}
	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2800|0x80 {
		t.Errorf("after unset grid = %U", c.Grid[0][0])
	}
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestSparklineAndBars(t *testing.T) {
	if got := SparklineChart([]int{0, 7}, 10); got != "▁█" {
		t.Errorf("sparkline = %q", got)
	}
	if got := SparklineChart([]int{1, 2, 3, 4}, 2); got != "▁█" {
		t.Errorf("sparkline keeps the tail, got %q", got)
	}
	if got := ProgressBar(0.5, 4); got != "██░░" {
		t.Errorf("progress = %q", got)
	}
	if got := len([]rune(Separator(20))); got != 20 {
		t.Errorf("separator width %d", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}
	if NextTheme("sunset").Name != "classic" {
		t.Error("theme cycle should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}

func TestMenuStartsPreset(t *testing.T) {
	m := *NewInteractiveApp("ocean")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m = next.(menu)
	for i, p := range m.presets {
		if p == "glider" {
			m.cursor = i
		}
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(menu)
	if m.live.height != 20 {
		t.Errorf("live model height = %d, want the terminal size from the menu", m.live.height)
	}
	if cmd == nil || m.state != stateSim {
		t.Fatal("enter did not start the preset")
	}
	if m.live.game.Population() != 5 || m.live.theme.Name != "ocean" {
		t.Errorf("started %d cells with theme %s", m.live.game.Population(), m.live.theme.Name)
	}
}

func tallModel(t *testing.T) Model {
	t.Helper()
	b, err := life.NewBoard(10, 30)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(sim.NewGame(b, life.Conway), config.DefaultConfig())
}

func clickAt(m Model, col, row int) Model {
	next, _ := m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return next.(Model)
}

func TestModelClickOnShortTerminal(t *testing.T) {
	m := tallModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	m = next.(Model)

	if m.visibleRows() != 10 {
		t.Fatalf("visible rows = %d, want 10", m.visibleRows())
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) > 12 {
		t.Errorf("view has %d lines on a 12 row terminal", len(lines))
	}
	if !strings.Contains(lines[0], "GAME OF LIFE") {
		t.Errorf("title not on the first row: %q", lines[0])
	}

	m = clickAt(m, 7, boardTop+3)
	if m.game.Board().At(3, 3) != life.Alive {
		t.Error("click did not toggle the cell under the cursor")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = next.(Model)
	if m.top != 10 {
		t.Fatalf("top = %d after page down", m.top)
	}
	m = clickAt(m, 7, boardTop+3)
	if m.game.Board().At(3, 13) != life.Alive {
		t.Error("click after scrolling missed the scrolled row")
	}

	m = clickAt(m, 7, boardTop+10)
	if m.game.Population() != 2 {
		t.Error("click below the visible board toggled a cell")
	}

	for i := 0; i < 5; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
		m = next.(Model)
	}
	if m.top != 20 {
		t.Errorf("top = %d, want it clamped to 20", m.top)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.top != 19 {
		t.Errorf("top = %d after up", m.top)
	}
}

func TestModelHelpBlocksClicks(t *testing.T) {
	m := tallModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	m = press(next.(Model), "?")

	if n := len(strings.Split(m.View(), "\n")); n > 12 {
		t.Errorf("help view has %d lines on a 12 row terminal", n)
	}
	m = clickAt(m, 7, boardTop+3)
	if m.game.Population() != 0 {
		t.Error("click through the help overlay toggled a cell")
	}
}

func TestRunInterruptIsCleanExit(t *testing.T) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}

	m := newTestModel(t)
	done := make(chan error, 1)
	go func() {
		done <- run(context.Background(), m, tea.WithInput(nil), tea.WithOutput(io.Discard))
	}()

	retry := time.NewTicker(20 * time.Millisecond)
	defer retry.Stop()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("run returned %v after SIGINT", err)
			}
			return
		case <-retry.C:
			if err := proc.Signal(os.Interrupt); err != nil {
				t.Skipf("cannot signal own process: %v", err)
			}
		case <-timeout:
			t.Fatal("program still running after SIGINT")
		}
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := run(ctx, newTestModel(t), tea.WithInput(nil), tea.WithOutput(io.Discard)); err != nil {
		t.Errorf("run with canceled context = %v", err)
	}
}
