package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var (
	dataDir string
	verbose bool

	// scenario selection and overrides
	configFile string
	preset     string
	dt         float64
	steps      int
	seed       int64
	controller string
	integrator string
	matcher    string
	tolerance  float64
	kp         float64
	ki         float64
	kd         float64
	maxForce   float64
	maxTorque  float64
	loop       bool
	noSave     bool

	// live view
	speed float64

	// export
	outFile string

	// tune
	kpRange    string
	kiRange    string
	kdRange    string
	metricName string

	// montecarlo
	trials       int
	perturbation float64
	workers      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "dynctl",
		Short:         "feedback control and trajectory tracking lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dynctl", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development logging")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a tracking scenario and store it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run a scenario in the terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().Float64Var(&speed, "speed", 1.0, "playback speed, 0 for as fast as possible")
	liveCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run-id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run-id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list preset scenarios",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	tuneCmd := &cobra.Command{
		Use:   "tune [model]",
		Short: "grid search the position gains",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tuneGains,
	}
	addScenarioFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&kpRange, "kp-range", "1,2,4,8", "comma separated kp values")
	tuneCmd.Flags().StringVar(&kiRange, "ki-range", "0", "comma separated ki values")
	tuneCmd.Flags().StringVar(&kdRange, "kd-range", "1,2,4,8", "comma separated kd values")
	tuneCmd.Flags().StringVar(&metricName, "metric", "tracking_rms", "metric to minimise")

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo [model]",
		Short: "run a scenario from perturbed initial positions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMonteCarlo,
	}
	addScenarioFlags(monteCarloCmd)
	monteCarloCmd.Flags().IntVar(&trials, "trials", 50, "number of trials")
	monteCarloCmd.Flags().Float64Var(&perturbation, "perturb", 0.5, "initial position perturbation")
	monteCarloCmd.Flags().IntVar(&workers, "workers", 0, "parallel trials (default number of CPUs)")

	suiteCmd := &cobra.Command{
		Use:   "suite [file]",
		Short: "run a yaml list of scenarios",
		Args:  cobra.ExactArgs(1),
		RunE:  runSuite,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd, tuneCmd, monteCarloCmd, suiteCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "scenario file (yaml)")
	f.StringVar(&preset, "preset", "", "use a preset scenario")
	f.Float64Var(&dt, "dt", 0.01, "timestep")
	f.IntVar(&steps, "steps", 3000, "maximum number of steps")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.StringVar(&controller, "controller", "pid", "controller (pid, lqr, none)")
	f.StringVar(&integrator, "integrator", "rk4", "integrator (euler, rk4, verlet, leapfrog)")
	f.StringVar(&matcher, "matcher", "radius", "waypoint matcher (radius, plane, exact)")
	f.Float64Var(&tolerance, "tolerance", 0.1, "waypoint radius")
	f.Float64Var(&kp, "kp", 4, "position kp")
	f.Float64Var(&ki, "ki", 0, "position ki")
	f.Float64Var(&kd, "kd", 4, "position kd")
	f.Float64Var(&maxForce, "max-force", 10, "force limit, 0 for none")
	f.Float64Var(&maxTorque, "max-torque", 5, "torque limit, 0 for none")
	f.BoolVar(&loop, "loop", false, "loop over the waypoints")
}
