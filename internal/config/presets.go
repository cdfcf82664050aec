package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"glider": withBoard(BoardConfig{
		Width: 30, Height: 30, Rule: DefaultRule, Pattern: "glider",
	}),
	"gun": withBoard(BoardConfig{
		Width: 60, Height: 40, Rule: DefaultRule, Pattern: "gosper_gun",
	}),
	"pulsar": withBoard(BoardConfig{
		Width: 25, Height: 25, Rule: DefaultRule, Pattern: "pulsar",
	}),
	"highlife": withBoard(BoardConfig{
		Width: 80, Height: 60, Density: 0.3, Rule: "B36/S23",
	}),
	"methuselah": withRun(withBoard(BoardConfig{
		Width: 100, Height: 100, Rule: DefaultRule, Pattern: "r_pentomino",
	}), RunConfig{Generations: 1200, StopWhenStable: true}),
}

func withBoard(b BoardConfig) *Config {
	cfg := DefaultConfig()
	cfg.Board = b
	if b.Width > 60 {
		cfg.Display.CellSize = 8
	}
	return cfg
}

func withRun(cfg *Config, r RunConfig) *Config {
	cfg.Run = r
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
