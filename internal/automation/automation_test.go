package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/san-kum/dynctl/internal/config"
)

func TestRunMonteCarlo(t *testing.T) {
	base := config.DefaultConfig()
	cfg := &MonteCarloConfig{Base: base, Perturbation: 0.2, NumTrials: 8, Workers: 3, Seed: 7}

	results, err := RunMonteCarlo(context.Background(), cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 8 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.TrialID != i {
			t.Errorf("result %d has TrialID %d", i, r.TrialID)
		}
		if r.Initial.Magnitude() > 0.2*1.8 {
			t.Errorf("trial %d: offset %v out of bounds", i, r.Initial)
		}
	}
	if completed, failed := MonteCarloStats(results); completed != 8 || failed != 0 {
		t.Errorf("completed %d failed %d", completed, failed)
	}
	if mean, std := MetricStats(results, "tracking_rms"); mean <= 0 || std < 0 {
		t.Errorf("tracking_rms mean %v std %v", mean, std)
	}
	if base.Initial.Position != (config.Vector{}) {
		t.Errorf("base config mutated: %v", base.Initial)
	}
}

func TestMonteCarloSeedIsDeterministic(t *testing.T) {
	cfg := &MonteCarloConfig{Base: config.DefaultConfig(), Perturbation: 0.5, NumTrials: 4, Seed: 3}
	a, err := RunMonteCarlo(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 1
	b, err := RunMonteCarlo(context.Background(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Initial != b[i].Initial || a[i].StepsTaken != b[i].StepsTaken {
			t.Errorf("trial %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMonteCarloCollectsTrialErrors(t *testing.T) {
	base := config.DefaultConfig()
	base.Controller = "mpc"
	cfg := &MonteCarloConfig{Base: base, NumTrials: 3, Seed: 1}

	results, err := RunMonteCarlo(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, failed := MonteCarloStats(results); failed != 3 {
		t.Errorf("failed = %d, want 3", failed)
	}
}

func TestRunSuite(t *testing.T) {
	dir := t.TempDir()
	scenario := config.DefaultConfig()
	scenario.Name = "from-file"
	if err := config.Save(filepath.Join(dir, "one.yaml"), scenario); err != nil {
		t.Fatal(err)
	}
	suiteYAML := []byte(`
name: smoke
scenarios:
  - config: one.yaml
  - preset: point/line
    steps: 50
`)
	path := filepath.Join(dir, "suite.yaml")
	if err := os.WriteFile(path, suiteYAML, 0644); err != nil {
		t.Fatal(err)
	}

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatal(err)
	}
	results, err := RunSuite(context.Background(), suite, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Scenario != "from-file" || !results[0].Result.Completed {
		t.Errorf("first scenario: %q completed=%v", results[0].Scenario, results[0].Result.Completed)
	}
	if results[1].Result.StepsTaken != 50 {
		t.Errorf("second scenario took %d steps, want 50", results[1].Result.StepsTaken)
	}
}

func TestRunSuiteUnknownPreset(t *testing.T) {
	suite := &Suite{Scenarios: []SuiteEntry{{Preset: "body/nope"}}}
	if _, err := RunSuite(context.Background(), suite, nil); err == nil {
		t.Error("expected an error")
	}

	suite = &Suite{Scenarios: []SuiteEntry{{}}}
	if _, err := RunSuite(context.Background(), suite, nil); err == nil {
		t.Error("expected an error for an empty entry")
	}
}
