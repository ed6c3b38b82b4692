package optim

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/experiment"
)

func TestGridSearchPrefersHigherGain(t *testing.T) {
	base := config.DefaultConfig()
	base.Steps = 300
	base.StopOnComplete = false
	logger := zaptest.NewLogger(t)

	g := NewGridSearch([]string{"kp"}, [][]float64{{0.5, 4}}, logger)
	params, best, err := g.Search(context.Background(), PositionGains(base, logger), "tracking_rms")
	if err != nil {
		t.Fatal(err)
	}
	if params["kp"] != 4 {
		t.Errorf("best kp = %v, want 4", params["kp"])
	}
	if best <= 0 {
		t.Errorf("best tracking_rms = %v", best)
	}
}

func TestGridSearchVisitsEveryCombination(t *testing.T) {
	var seen []map[string]float64
	build := func(params map[string]float64) (*experiment.Experiment, error) {
		seen = append(seen, params)
		return nil, errors.New("skip")
	}

	g := NewGridSearch([]string{"kp", "kd"}, [][]float64{{1, 2, 3}, {0, 1}}, nil)
	_, _, err := g.Search(context.Background(), build, "tracking_rms")
	if !errors.Is(err, ErrNoCandidate) {
		t.Errorf("Search() = %v, want ErrNoCandidate", err)
	}
	if len(seen) != 6 {
		t.Fatalf("visited %d combinations, want 6", len(seen))
	}
	if seen[5]["kp"] != 3 || seen[5]["kd"] != 1 {
		t.Errorf("last combination = %v", seen[5])
	}
}

func TestGridSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGridSearch([]string{"kp"}, [][]float64{{1}}, nil)
	if _, _, err := g.Search(ctx, nil, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Search() = %v, want context.Canceled", err)
	}
}
