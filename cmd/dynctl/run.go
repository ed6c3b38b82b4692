package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/dynctl/internal/experiment"
	"github.com/san-kum/dynctl/internal/viz"
)

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	exp, err := experiment.Build(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("running %s (%s, %s)...\n", cfg.Name, cfg.Model, cfg.Controller)
	start := time.Now()

	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("finished in %v\n", time.Since(start))

	if err := saveRun(cfg, result); err != nil {
		return err
	}
	return printResult(result)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	// the view owns the terminal
	exp, err := experiment.Build(cfg, nil)
	if err != nil {
		return err
	}

	var pace time.Duration
	if speed > 0 {
		pace = time.Duration(cfg.Dt / speed * float64(time.Second))
	}

	result, err := viz.RunLive(cmd.Context(), exp, pace)
	if err != nil {
		return err
	}
	if err := saveRun(cfg, result); err != nil {
		return err
	}
	return printResult(result)
}
