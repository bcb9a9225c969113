package storage

import (
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/steps"
)

type ExportData struct {
	Algorithm string             `json:"algorithm"`
	Name      string             `json:"name"`
	Input     []int              `json:"input"`
	Target    int                `json:"target"`
	StepCount int                `json:"step_count"`
	Steps     steps.Sequence     `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewExportData(info algorithms.Info, in algorithms.Input, seq steps.Sequence, metrics map[string]float64) ExportData {
	return ExportData{
		Algorithm: info.ID,
		Name:      info.Name,
		Input:     in.Values,
		Target:    in.Target,
		StepCount: len(seq),
		Steps:     seq,
		Metrics:   metrics,
	}
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}

func ExportJSONStdout(data ExportData) error {
	return WriteJSON(os.Stdout, data)
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
