package automation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/experiment"
	"github.com/san-kum/dynctl/internal/sim"
)

// Suite is a scripted list of scenarios.
type Suite struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Scenarios   []SuiteEntry `yaml:"scenarios"`

	dir string
}

// SuiteEntry names a scenario file, relative to the suite file, or a
// preset written as model/name. Steps overrides the scenario when set.
type SuiteEntry struct {
	Config string `yaml:"config"`
	Preset string `yaml:"preset"`
	Steps  int    `yaml:"steps"`
}

type SuiteResult struct {
	Scenario string
	Config   *config.Config
	Result   *sim.Result
}

func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, errors.Wrapf(err, "automation: parse suite %s", path)
	}
	suite.dir = filepath.Dir(path)
	return &suite, nil
}

func (s *Suite) resolve(e SuiteEntry) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case e.Preset != "":
		model, name, _ := strings.Cut(e.Preset, "/")
		if cfg = config.GetPreset(model, name); cfg == nil {
			return nil, errors.Errorf("automation: no preset %q", e.Preset)
		}
	case e.Config != "":
		path := e.Config
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("automation: scenario needs a config or a preset")
	}
	if e.Steps > 0 {
		cfg.Steps = e.Steps
	}
	return cfg, nil
}

// RunSuite runs the scenarios in order and stops at the first failure.
func RunSuite(ctx context.Context, suite *Suite, logger *zap.Logger) ([]SuiteResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]SuiteResult, 0, len(suite.Scenarios))

	for i, entry := range suite.Scenarios {
		cfg, err := suite.resolve(entry)
		if err != nil {
			return results, errors.Wrapf(err, "scenario %d", i+1)
		}
		logger.Info("running scenario",
			zap.Int("index", i+1),
			zap.Int("of", len(suite.Scenarios)),
			zap.String("scenario", cfg.Name))

		exp, err := experiment.Build(cfg, logger)
		if err != nil {
			return results, errors.Wrapf(err, "scenario %d setup", i+1)
		}
		result, err := exp.Run(ctx)
		if err != nil {
			return results, errors.Wrapf(err, "scenario %d run", i+1)
		}

		results = append(results, SuiteResult{Scenario: cfg.Name, Config: cfg, Result: result})
	}

	return results, nil
}
