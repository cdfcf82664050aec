package storage

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/san-kum/golife/internal/sim"
)

type ExportData struct {
	Run        RunMetadata `json:"run"`
	Population []int       `json:"population"`
	Births     []int       `json:"births"`
	Deaths     []int       `json:"deaths"`
	Final      []string    `json:"final,omitempty"`
}

// ExportJSON writes a run and its full population series as indented JSON.
// The final board is included as rows of 'O' and '.'.
func ExportJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	data := ExportData{
		Run:        meta,
		Population: result.Population,
		Births:     result.Births,
		Deaths:     result.Deaths,
	}
	if result.Final != nil {
		data.Final = strings.Split(strings.TrimSuffix(result.Final.String(), "\n"), "\n")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes samples in the population.csv layout.
func ExportCSV(w io.Writer, samples []Sample) error {
	return encodeSamples(w, samples)
}
