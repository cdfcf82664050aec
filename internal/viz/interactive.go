package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/sim"
)

var presetInfo = map[string]string{
	"classic":    "random soup, 50x50",
	"glider":     "a lone glider",
	"gun":        "gosper glider gun",
	"pulsar":     "period 3 oscillator",
	"highlife":   "B36/S23 replicators",
	"methuselah": "r-pentomino, long lived",
}

const (
	stateMenu = iota
	stateSim
)

// menu lets the user pick a preset before the board starts.
type menu struct {
	state   int
	cursor  int
	presets []string
	theme   string
	live    Model
	err     error

	size tea.WindowSizeMsg
}

func NewInteractiveApp(theme string) *menu {
	return &menu{
		state:   stateMenu,
		presets: config.ListPresets(),
		theme:   theme,
	}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateSim {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.size = size
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		cmd, err := m.start()
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, cmd
	}
	return m, nil
}

func (m *menu) start() (tea.Cmd, error) {
	cfg := config.GetPreset(m.presets[m.cursor])
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", m.presets[m.cursor])
	}
	if m.theme != "" {
		cfg.Display.Theme = m.theme
	}
	b, err := cfg.BuildBoard()
	if err != nil {
		return nil, err
	}
	live := NewModel(sim.NewGame(b, cfg.Rule()), cfg)
	if m.size.Height > 0 {
		next, _ := live.Update(m.size)
		live = next.(Model)
	}
	m.live = live
	m.state = stateSim
	return m.live.Init(), nil
}

func (m menu) View() string {
	if m.state == stateSim {
		return m.live.View()
	}

	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cur := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	name := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dimName := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimDesc := lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render("GAME OF LIFE") + "\n    " + sub.Render("choose a preset") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, p := range m.presets {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cur.Render("▸"), name.Render(fmt.Sprintf("%-12s", p)), desc.Render(presetInfo[p])))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dimName.Render(fmt.Sprintf("  %-12s", p)), dimDesc.Render(presetInfo[p])))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + cur.Render("j/k") + sub.Render(" navigate  ") + cur.Render("enter") + sub.Render(" start  ") + cur.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive shows the preset menu, then runs the chosen board.
func RunInteractive(ctx context.Context, theme string) error {
	return run(ctx, NewInteractiveApp(theme), tea.WithAltScreen(), tea.WithMouseCellMotion())
}
