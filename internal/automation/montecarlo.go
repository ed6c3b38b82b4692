package automation

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/dynctl/internal/algebra"
	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/experiment"
)

type MonteCarloConfig struct {
	Base *config.Config
	// Perturbation bounds the uniform offset applied to each coordinate
	// of the initial position.
	Perturbation float64
	NumTrials    int
	Workers      int
	Seed         int64
}

type MonteCarloResult struct {
	TrialID    int
	Initial    algebra.Vec3
	Final      []float64
	StepsTaken int
	Completed  bool
	Metrics    map[string]float64
	Err        error
}

// RunMonteCarlo runs NumTrials copies of the base scenario from perturbed
// initial positions. Each trial builds its own components, so trials run in
// parallel. Offsets are drawn up front, so a seed gives the same ensemble
// whatever the scheduling. Failed trials keep their Err and are combined into
// the returned error.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, logger *zap.Logger) ([]MonteCarloResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	results := make([]MonteCarloResult, cfg.NumTrials)
	for trial := range results {
		offset := algebra.V3(
			(rng.Float64()-0.5)*2*cfg.Perturbation,
			(rng.Float64()-0.5)*2*cfg.Perturbation,
			(rng.Float64()-0.5)*2*cfg.Perturbation,
		)
		results[trial] = MonteCarloResult{
			TrialID: trial,
			Initial: cfg.Base.Initial.Position.Vec3().Plus(offset),
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range results {
		res := &results[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Err = runTrial(ctx, cfg.Base, res, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var errs error
	for _, r := range results {
		errs = multierr.Append(errs, r.Err)
	}
	completed, failed := MonteCarloStats(results)
	logger.Info("monte carlo finished",
		zap.Int("trials", cfg.NumTrials),
		zap.Int("completed", completed),
		zap.Int("failed", failed),
		zap.Int64("seed", seed))
	return results, errs
}

func runTrial(ctx context.Context, base *config.Config, res *MonteCarloResult, logger *zap.Logger) error {
	cfg := base.Clone()
	cfg.Initial.Position = config.Vector{res.Initial.X, res.Initial.Y, res.Initial.Z}

	exp, err := experiment.Build(cfg, logger.With(zap.Int("trial", res.TrialID)))
	if err != nil {
		return err
	}
	result, err := exp.Run(ctx)
	if result != nil {
		res.StepsTaken = result.StepsTaken
		res.Completed = result.Completed
		res.Metrics = result.Metrics
		if n := len(result.States); n > 0 {
			res.Final = result.States[n-1]
		}
	}
	return err
}

// MonteCarloStats counts the trials that completed the trajectory and the
// ones that failed to run.
func MonteCarloStats(results []MonteCarloResult) (completed int, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else if r.Completed {
			completed++
		}
	}
	return
}

// MetricStats is the mean and standard deviation of a metric over the trials
// that ran.
func MetricStats(results []MonteCarloResult, name string) (mean, std float64) {
	var values []float64
	for _, r := range results {
		if v, ok := r.Metrics[name]; ok && r.Err == nil {
			values = append(values, v)
		}
	}
	switch len(values) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}
