package optim

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/experiment"
)

var ErrNoCandidate = errors.New("optim: no candidate ran")

// BuildFunc builds an experiment for one point of the grid.
type BuildFunc func(params map[string]float64) (*experiment.Experiment, error)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	logger     *zap.Logger
}

func NewGridSearch(params []string, ranges [][]float64, logger *zap.Logger) *GridSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GridSearch{paramNames: params, ranges: ranges, logger: logger}
}

// Search runs every combination of the ranges and returns the one with the
// lowest value of metricName. Candidates that fail to build or run are
// skipped; their errors are returned only when no candidate succeeded.
func (g *GridSearch) Search(ctx context.Context, build BuildFunc, metricName string) (map[string]float64, float64, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, errors.Errorf("optim: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}

	s := &search{best: math.Inf(1), build: build, metric: metricName, logger: g.logger}
	if err := g.searchRecursive(ctx, 0, map[string]float64{}, s); err != nil {
		return nil, 0, err
	}
	if s.bestParams == nil {
		return nil, 0, multierr.Append(ErrNoCandidate, s.errs)
	}
	return s.bestParams, s.best, nil
}

type search struct {
	build      BuildFunc
	metric     string
	best       float64
	bestParams map[string]float64
	errs       error
	logger     *zap.Logger
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, s *search) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		exp, err := s.build(current)
		if err != nil {
			s.errs = multierr.Append(s.errs, err)
			return nil
		}

		result, err := exp.Run(ctx)
		if err != nil {
			s.errs = multierr.Append(s.errs, err)
			return nil
		}

		val, ok := result.Metrics[s.metric]
		if !ok {
			s.errs = multierr.Append(s.errs, errors.Errorf("optim: no metric %q", s.metric))
			return nil
		}
		s.logger.Debug("candidate", zap.Any("params", current), zap.Float64(s.metric, val))
		if val < s.best {
			s.best = val
			s.bestParams = lo.Assign(current)
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := lo.Assign(current, map[string]float64{paramName: val})
		if err := g.searchRecursive(ctx, depth+1, next, s); err != nil {
			return err
		}
	}
	return nil
}

// PositionGains builds base with its position gains taken from the "kp",
// "ki" and "kd" params. Missing params keep the base value.
func PositionGains(base *config.Config, logger *zap.Logger) BuildFunc {
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := base.Clone()
		for i, name := range []string{"kp", "ki", "kd"} {
			if v, ok := params[name]; ok {
				cfg.Gains.Position[i] = v
			}
		}
		return experiment.Build(cfg, logger)
	}
}
