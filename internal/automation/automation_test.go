package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/storage"
)

const scenarioYAML = `
name: still-lifes
description: a few small patterns
steps:
  - name: block
    pattern: block
    width: 8
    height: 8
    generations: 20
    save_as: block
  - preset: glider
    generations: 8
  - width: 12
    height: 12
    seed: 5
    density: 0.0
    generations: 3
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "still-lifes" || len(sc.Steps) != 3 {
		t.Fatalf("parsed %+v", sc)
	}

	cfg, err := sc.Steps[0].Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Density != 0 || cfg.Board.Width != 8 {
		t.Errorf("step 0 board = %+v", cfg.Board)
	}

	cfg, err = sc.Steps[2].Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Density != 0 {
		t.Errorf("explicit zero density ignored: %v", cfg.Board.Density)
	}
}

func TestParseScenarioErrors(t *testing.T) {
	if _, err := ParseScenario([]byte("name: empty\n")); err == nil {
		t.Error("expected error for scenario without steps")
	}
	if _, err := (ScenarioStep{Preset: "nope"}).Config(); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := (ScenarioStep{Rule: "B9"}).Config(); err == nil {
		t.Error("expected error for invalid rule")
	}
}

func TestRunScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}

	st := storage.New(filepath.Join(dir, "runs"))
	results, err := RunScenario(context.Background(), sc, st)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Period != 1 || results[0].Final.Population() != 4 {
		t.Errorf("block: period %d population %d", results[0].Period, results[0].Final.Population())
	}
	if results[1].Final.Population() != 5 {
		t.Errorf("glider population %d", results[1].Final.Population())
	}
	if !results[2].Extinct {
		t.Error("empty soup should be extinct")
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Name != "block" || runs[0].Pattern != "block" {
		t.Errorf("saved runs = %+v", runs)
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &DensitySweep{
		Width:       16,
		Height:      16,
		Rule:        life.Conway,
		Min:         0,
		Max:         0.5,
		NumSteps:    3,
		Runs:        4,
		Generations: 50,
		Seed:        1,
		Workers:     2,
	}
	results, err := RunSweep(context.Background(), sweep)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[1].Density != 0.25 {
		t.Errorf("middle density = %v", results[1].Density)
	}
	if results[0].ExtinctFraction != 1 || results[0].MeanFinal != 0 {
		t.Errorf("empty soups: %+v", results[0])
	}

	extinct, _ := SweepStats(results)
	if extinct < 1 {
		t.Errorf("expected at least one fully extinct density, got %d", extinct)
	}
}

func TestRunSweepInvalid(t *testing.T) {
	if _, err := RunSweep(context.Background(), &DensitySweep{NumSteps: 0, Runs: 1}); err == nil {
		t.Error("expected error for zero steps")
	}
	if _, err := RunSweep(context.Background(), &DensitySweep{NumSteps: 2, Runs: 1, Min: 0.8, Max: 0.2}); err == nil {
		t.Error("expected error for inverted range")
	}
}
