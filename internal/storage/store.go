package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	finalFile      = "final.rle"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Rule        string             `json:"rule"`
	Pattern     string             `json:"pattern,omitempty"`
	Density     float64            `json:"density"`
	Generations int                `json:"generations"`
	Period      int                `json:"period"`
	StableAt    int                `json:"stable_at"`
	Extinct     bool               `json:"extinct"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Sample is one row of population.csv.
type Sample struct {
	Generation int
	Population int
	Births     int
	Deaths     int
}

// Save writes a run directory holding metadata.json, population.csv and the
// final board as final.rle. Fields of meta describing the result are filled
// in from result; the caller supplies the name, seed and board settings.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	if meta.Name == "" {
		meta.Name = "run"
	}
	now := time.Now()
	runID, runDir, err := s.newRunDir(meta.Name, now)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Generations = result.Generations
	meta.Period = result.Period
	meta.StableAt = result.StableAt
	meta.Extinct = result.Extinct
	meta.Metrics = result.Metrics
	if result.Final != nil {
		meta.Width = result.Final.Width()
		meta.Height = result.Final.Height()
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePopulation(filepath.Join(runDir, populationFile), result); err != nil {
		return "", err
	}
	if result.Final != nil {
		p := pattern.FromBoard(runID, result.Final)
		p.Rule = meta.Rule
		if err := os.WriteFile(filepath.Join(runDir, finalFile), []byte(pattern.EncodeRLE(p)), 0644); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) newRunDir(name string, now time.Time) (string, string, error) {
	base := fmt.Sprintf("%s_%d", name, now.Unix())
	runID := base
	for i := 2; ; i++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			if err := s.Init(); err != nil {
				return "", "", err
			}
			continue
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePopulation(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encodeSamples(f, Samples(result))
}

// Samples flattens the per-generation series of result.
func Samples(result *sim.Result) []Sample {
	samples := make([]Sample, len(result.Population))
	for i, p := range result.Population {
		samples[i] = Sample{Generation: i, Population: p}
		if i < len(result.Births) {
			samples[i].Births = result.Births[i]
		}
		if i < len(result.Deaths) {
			samples[i].Deaths = result.Deaths[i]
		}
	}
	return samples
}

func encodeSamples(out io.Writer, samples []Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"generation", "population", "births", "deaths"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Generation),
			strconv.Itoa(s.Population),
			strconv.Itoa(s.Births),
			strconv.Itoa(s.Deaths),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every run under the base directory, oldest first. Directories
// without readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadPopulation(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		var vals [4]int
		ok := true
		for j := range vals {
			v, err := strconv.Atoi(record[j])
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		samples = append(samples, Sample{
			Generation: vals[0],
			Population: vals[1],
			Births:     vals[2],
			Deaths:     vals[3],
		})
	}

	return samples, nil
}

// LoadBoard reads back the final board of a run.
func (s *Store) LoadBoard(runID string) (*life.Board, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, finalFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	p, err := pattern.ParseRLE(string(data))
	if err != nil {
		return nil, err
	}
	return p.Board()
}

func (s *Store) Delete(runID string) error {
	dir := filepath.Join(s.baseDir, runID)
	if _, err := os.Stat(filepath.Join(dir, metadataFile)); err != nil {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return os.RemoveAll(dir)
}

// Latest returns the most recent run.
func (s *Store) Latest() (*RunMetadata, error) {
	runs, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrRunNotFound
	}
	return &runs[len(runs)-1], nil
}
