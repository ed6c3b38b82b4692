package storage

import (
	"encoding/json"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/san-kum/dynctl/internal/sim"
)

type ExportData struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Model      string             `json:"model"`
	Integrator string             `json:"integrator"`
	Controller string             `json:"controller"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Completed  bool               `json:"completed"`
	Times      []float64          `json:"times"`
	States     [][]float64        `json:"states"`
	Inputs     [][]float64        `json:"inputs"`
	Errors     [][]float64        `json:"errors,omitempty"`
	Events     []sim.EventRecord  `json:"events,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
}

func NewExportData(meta *RunMetadata, result *sim.Result) ExportData {
	return ExportData{
		ID:         meta.ID,
		Scenario:   meta.Scenario,
		Model:      meta.Model,
		Integrator: meta.Integrator,
		Controller: meta.Controller,
		Dt:         meta.Dt,
		Steps:      result.StepsTaken,
		Completed:  result.Completed,
		Times:      result.Times,
		States:     result.States,
		Inputs:     result.Inputs,
		Errors:     result.Errors,
		Events:     result.Events,
		Metrics:    result.Metrics,
	}
}

// WriteJSON writes a stored run as one indented JSON document.
func (s *Store) WriteJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	result, err := s.LoadResult(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(meta, result))
}

// ExportJSON writes a stored run to path.
func (s *Store) ExportJSON(path, runID string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(file))

	return s.WriteJSON(file, runID)
}
