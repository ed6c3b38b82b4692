package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/dynctl/internal/automation"
	"github.com/san-kum/dynctl/internal/optim"
)

func parseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad range %q: %w", s, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func tuneGains(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	names := []string{"kp", "ki", "kd"}
	ranges := make([][]float64, len(names))
	for i, s := range []string{kpRange, kiRange, kdRange} {
		if ranges[i], err = parseRange(s); err != nil {
			return err
		}
	}

	fmt.Printf("searching %d x %d x %d gains on %s...\n", len(ranges[0]), len(ranges[1]), len(ranges[2]), cfg.Name)
	g := optim.NewGridSearch(names, ranges, logger)
	best, value, err := g.Search(cmd.Context(), optim.PositionGains(cfg, logger), metricName)
	if err != nil {
		return err
	}

	fmt.Printf("best %s: %.6f\n", metricName, value)
	fmt.Printf("gains: kp=%g ki=%g kd=%g\n", best["kp"], best["ki"], best["kd"])
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	mc := &automation.MonteCarloConfig{
		Base:         cfg,
		Perturbation: perturbation,
		NumTrials:    trials,
		Workers:      workers,
		Seed:         cfg.Seed,
	}
	fmt.Printf("running %d trials of %s...\n", trials, cfg.Name)
	results, runErr := automation.RunMonteCarlo(cmd.Context(), mc, logger)

	completed, failed := automation.MonteCarloStats(results)
	fmt.Printf("completed: %d  incomplete: %d  failed: %d\n", completed, len(results)-completed-failed, failed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tSTD")
	for _, name := range []string{"tracking_rms", "peak_error", "control_effort", "settled", "waypoints_reached"} {
		mean, std := automation.MetricStats(results, name)
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\n", name, mean, std)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return runErr
}

func runSuite(cmd *cobra.Command, args []string) error {
	suite, err := automation.LoadSuite(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("suite %s: %d scenarios\n", suite.Name, len(suite.Scenarios))
	results, err := automation.RunSuite(cmd.Context(), suite, logger)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTEPS\tDONE\tRMS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%v\t%.4f\n", r.Scenario, r.Result.StepsTaken, r.Result.Completed, r.Result.Metrics["tracking_rms"])
	}
	if flushErr := w.Flush(); flushErr != nil {
		return flushErr
	}
	for _, r := range results {
		if saveErr := saveRun(r.Config, r.Result); saveErr != nil {
			return saveErr
		}
	}
	return err
}
