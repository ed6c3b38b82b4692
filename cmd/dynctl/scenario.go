package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/sim"
	"github.com/san-kum/dynctl/internal/storage"
)

// loadScenario resolves the scenario from the defaults, a preset, a file and
// the flags, in that order. Flags only apply when set explicitly.
func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Model = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Model))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Model = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("controller") {
		cfg.Controller = controller
	}
	if flags.Changed("integrator") {
		cfg.Body.Integrator = integrator
	}
	if flags.Changed("matcher") {
		cfg.Matcher.Kind = matcher
	}
	if flags.Changed("tolerance") {
		cfg.Matcher.Tolerance = tolerance
	}
	if flags.Changed("kp") {
		cfg.Gains.Position[0] = kp
	}
	if flags.Changed("ki") {
		cfg.Gains.Position[1] = ki
	}
	if flags.Changed("kd") {
		cfg.Gains.Position[2] = kd
	}
	if flags.Changed("max-force") {
		cfg.Limits.MaxForce = maxForce
	}
	if flags.Changed("max-torque") {
		cfg.Limits.MaxTorque = maxTorque
	}
	if flags.Changed("loop") {
		cfg.Loop = loop
	}

	return cfg, cfg.Validate()
}

func printMetrics(metrics map[string]float64) error {
	names := lo.Keys(metrics)
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%.6f\n", name, metrics[name])
	}
	return w.Flush()
}

func printResult(result *sim.Result) error {
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("completed: %v\n", result.Completed)
	fmt.Printf("waypoint events: %d\n", len(result.Events))
	fmt.Println("\nmetrics:")
	return printMetrics(result.Metrics)
}

func saveRun(cfg *config.Config, result *sim.Result) error {
	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	models := config.Models
	if len(args) > 0 {
		models = args[:1]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tPRESET\tCTRL\tWAYPOINTS\tLOOP")
	for _, model := range models {
		for _, name := range config.ListPresets(model) {
			p := config.GetPreset(model, name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\n", model, name, p.Controller, len(p.Waypoints), p.Loop)
		}
	}
	return w.Flush()
}
