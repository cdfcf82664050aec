package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/sim"
)

func runBlinker(t *testing.T) *sim.Result {
	t.Helper()
	b, _ := life.NewBoard(5, 5)
	for x := 1; x <= 3; x++ {
		_ = b.Set(x, 2, life.Alive)
	}
	cfg := sim.DefaultConfig()
	cfg.Generations = 10
	result, err := sim.New().Run(context.Background(), b, cfg)
	if err != nil {
		t.Fatal(err)
	}
	result.Metrics["births"] = 4
	return result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := runBlinker(t)
	runID, err := st.Save(RunMetadata{Name: "blinker", Seed: 42, Rule: "B3/S23"}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "blinker_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 || meta.Width != 5 || meta.Height != 5 {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Period != 2 || meta.Generations != 2 {
		t.Errorf("expected period 2 after 2 generations, got %d after %d", meta.Period, meta.Generations)
	}
	if meta.Metrics["births"] != 4 {
		t.Errorf("expected births 4, got %f", meta.Metrics["births"])
	}

	samples, err := st.LoadPopulation(runID)
	if err != nil {
		t.Fatalf("load population failed: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	if samples[1] != (Sample{Generation: 1, Population: 3, Births: 2, Deaths: 2}) {
		t.Errorf("sample 1 = %+v", samples[1])
	}

	final, err := st.LoadBoard(runID)
	if err != nil {
		t.Fatalf("load board failed: %v", err)
	}
	if !final.Equal(result.Final) {
		t.Errorf("final board differs:\n%s\nwant\n%s", final, result.Final)
	}
}

func TestStoreList(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "runs"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	result := runBlinker(t)
	first, err := st.Save(RunMetadata{Name: "a"}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := st.Save(RunMetadata{Name: "a"}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if first == second {
		t.Fatalf("run ids collide: %s", first)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}

	latest, err := st.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != second {
		t.Errorf("latest = %s, want %s", latest.ID, second)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(RunMetadata{Name: "test"}, runBlinker(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "population.csv", "final.rle"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Load: expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadPopulation("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("LoadPopulation: expected ErrRunNotFound, got %v", err)
	}
	if err := st.Delete("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Delete: expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.Latest(); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Latest: expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(RunMetadata{}, runBlinker(t))
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Delete(runID); err != nil {
		t.Fatal(err)
	}
	runs, _ := st.List()
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	result := runBlinker(t)
	var buf bytes.Buffer
	if err := ExportJSON(&buf, RunMetadata{ID: "x", Rule: "B3/S23"}, result); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatal(err)
	}
	if data.Run.ID != "x" || len(data.Population) != 3 {
		t.Errorf("unexpected export %+v", data)
	}
	if len(data.Final) != 5 || data.Final[2] != ".OOO." {
		t.Errorf("final rows = %q", data.Final)
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	samples := []Sample{{0, 3, 0, 0}, {1, 3, 2, 2}}
	if err := ExportCSV(&buf, samples); err != nil {
		t.Fatal(err)
	}
	want := "generation,population,births,deaths\n0,3,0,0\n1,3,2,2\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}
