package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/dynctl/internal/config"
	"github.com/san-kum/dynctl/internal/storage"
	"github.com/san-kum/dynctl/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tMODEL\tTIME\tSTEPS\tDT\tCTRL\tDONE\tRMS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.4fs\t%s\t%v\t%.4f\n",
			run.ID,
			run.Scenario,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.StepsTaken,
			run.Dt,
			run.Controller,
			run.Completed,
			run.Metrics["tracking_rms"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	if len(result.States) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s (%s)\n", meta.Scenario, meta.Model)
	fmt.Printf("samples: %d\n\n", len(result.States))

	fmt.Println(viz.PlotSeries("position vs time", []viz.Series{
		{Name: "x", Values: viz.Column(result.States, 0)},
		{Name: "y", Values: viz.Column(result.States, 1)},
		{Name: "z", Values: viz.Column(result.States, 2)},
	}, 80, 10))
	fmt.Println()

	errNorms := lo.FilterMap(result.Errors, func(e []float64, _ int) (float64, bool) {
		return floats.Norm(e, 2), len(e) > 0
	})
	fmt.Println(viz.PlotSeries("tracking error", []viz.Series{{Name: "|e|", Values: errNorms}}, 80, 8))
	fmt.Println()

	waypoints := lo.Map(meta.Waypoints, func(p config.Pose, _ int) [2]float64 {
		return [2]float64{p.Position[0], p.Position[1]}
	})
	positions := lo.FilterMap(result.States, func(s []float64, _ int) ([2]float64, bool) {
		if len(s) < 2 {
			return [2]float64{}, false
		}
		return [2]float64{s[0], s[1]}, true
	})
	fmt.Println(viz.Path(waypoints, positions, 60, 20))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outFile == "" {
		return st.WriteJSON(os.Stdout, args[0])
	}
	if err := st.ExportJSON(outFile, args[0]); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], outFile)
	return nil
}
