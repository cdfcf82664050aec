package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/metrics"
	"github.com/san-kum/golife/internal/sim"
	"github.com/san-kum/golife/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Preset supplies the defaults and every
// non-zero field overrides it.
type ScenarioStep struct {
	Name        string   `yaml:"name"`
	Preset      string   `yaml:"preset"`
	Pattern     string   `yaml:"pattern"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Seed        int64    `yaml:"seed"`
	Density     *float64 `yaml:"density"`
	Rule        string   `yaml:"rule"`
	Generations int      `yaml:"generations"`
	SaveAs      string   `yaml:"save_as"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Config resolves the step into a full configuration.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Pattern != "" {
		cfg.Board.Pattern = s.Pattern
		cfg.Board.Density = 0
	}
	if s.Width > 0 {
		cfg.Board.Width = s.Width
	}
	if s.Height > 0 {
		cfg.Board.Height = s.Height
	}
	if s.Seed != 0 {
		cfg.Board.Seed = s.Seed
	}
	if s.Density != nil {
		cfg.Board.Density = *s.Density
	}
	if s.Rule != "" {
		cfg.Board.Rule = s.Rule
	}
	if s.Generations > 0 {
		cfg.Run.Generations = s.Generations
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s ScenarioStep) label() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Pattern != "":
		return s.Pattern
	case s.Preset != "":
		return s.Preset
	}
	return "soup"
}

// RunScenario executes all steps in a scenario. Steps with save_as are
// written to st when it is non-nil.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store) ([]*sim.Result, error) {
	results := make([]*sim.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Printf("Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.label())

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		b, err := cfg.BuildBoard()
		if err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := metrics.NewSimulator().Run(ctx, b, cfg.SimConfig())
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, result)

		if step.SaveAs != "" && st != nil {
			meta := storage.RunMetadata{
				Name:    step.SaveAs,
				Seed:    cfg.Board.Seed,
				Rule:    cfg.Board.Rule,
				Pattern: cfg.Board.Pattern,
				Density: cfg.Board.Density,
			}
			if _, err := st.Save(meta, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
	}

	return results, nil
}
