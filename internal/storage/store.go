package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	clk "github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/sim"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

type Store struct {
	baseDir string
	clock   clk.Clock
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, clock: clk.New()}
}

// WithClock sets the clock used to stamp runs.
func (s *Store) WithClock(c clk.Clock) *Store {
	s.clock = c
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Model      string             `json:"model"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	StepsTaken int                `json:"steps_taken"`
	Completed  bool               `json:"completed"`
	Integrator string             `json:"integrator"`
	Controller string             `json:"controller"`
	Matcher    string             `json:"matcher"`
	Waypoints  []config.Pose      `json:"waypoints"`
	Metrics    map[string]float64 `json:"metrics"`
	Events     []sim.EventRecord  `json:"events"`
}

// Save writes the run under a new directory and returns its id.
func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	now := s.clock.Now()
	runID := fmt.Sprintf("%s_%d", cfg.Name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   cfg.Name,
		Model:      cfg.Model,
		Timestamp:  now,
		Seed:       cfg.Seed,
		Dt:         cfg.Dt,
		Steps:      cfg.Steps,
		StepsTaken: result.StepsTaken,
		Completed:  result.Completed,
		Integrator: cfg.Body.Integrator,
		Controller: cfg.Controller,
		Matcher:    cfg.Matcher.Kind,
		Waypoints:  cfg.Waypoints,
		Metrics:    result.Metrics,
		Events:     result.Events,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeStates(filepath.Join(runDir, statesFile), result); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func width(rows [][]float64) int {
	for _, r := range rows {
		if len(r) > 0 {
			return len(r)
		}
	}
	return 0
}

func header(prefix string, n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return cols
}

// appendRow appends row padded or cut to n columns.
func appendRow(dst []string, row []float64, n int) []string {
	for j := 0; j < n; j++ {
		v := 0.0
		if j < len(row) {
			v = row[j]
		}
		dst = append(dst, strconv.FormatFloat(v, 'f', 6, 64))
	}
	return dst
}

func writeStates(path string, result *sim.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	w := csv.NewWriter(f)
	defer func() {
		w.Flush()
		err = multierr.Append(err, w.Error())
	}()

	if len(result.States) == 0 {
		return nil
	}

	nx, nu, ne := width(result.States), width(result.Inputs), width(result.Errors)
	cols := append([]string{"time"}, header("x", nx)...)
	cols = append(cols, header("u", nu)...)
	cols = append(cols, header("e", ne)...)
	if err := w.Write(cols); err != nil {
		return err
	}

	for i := range result.States {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		row = appendRow(row, result.States[i], nx)

		// the final state has no input applied yet
		var u, e []float64
		if i < len(result.Inputs) {
			u = result.Inputs[i]
		}
		if i < len(result.Errors) {
			e = result.Errors[i]
		}
		row = appendRow(row, u, nu)
		row = appendRow(row, e, ne)

		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns the stored runs, oldest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "storage: decode %s", runID)
	}
	return &meta, nil
}

// LoadResult reads back the series of a run. Metrics and events come from
// the metadata.
func (s *Store) LoadResult(runID string) (result *sim.Result, err error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "storage: read %s", statesFile)
	}

	result = &sim.Result{
		Metrics:    meta.Metrics,
		Events:     meta.Events,
		StepsTaken: meta.StepsTaken,
		Completed:  meta.Completed,
	}
	if len(records) < 2 {
		return result, nil
	}

	kinds := records[0]
	for i, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "storage: row %d", i+1)
		}
		result.Times = append(result.Times, t)

		var x, u, e []float64
		for j := 1; j < len(record) && j < len(kinds); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "storage: row %d column %s", i+1, kinds[j])
			}
			switch {
			case strings.HasPrefix(kinds[j], "x"):
				x = append(x, v)
			case strings.HasPrefix(kinds[j], "u"):
				u = append(u, v)
			case strings.HasPrefix(kinds[j], "e"):
				e = append(e, v)
			}
		}
		result.States = append(result.States, x)
		if i < meta.StepsTaken {
			result.Inputs = append(result.Inputs, u)
			result.Errors = append(result.Errors, e)
		}
	}
	return result, nil
}

func (s *Store) LoadStates(runID string) ([][]float64, []float64, error) {
	result, err := s.LoadResult(runID)
	if err != nil {
		return nil, nil, err
	}
	return result.States, result.Times, nil
}
