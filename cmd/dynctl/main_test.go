package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/dynctl/internal/config"
)

func scenarioCmd(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	configFile, preset = "", ""
	cmd := &cobra.Command{Use: "test"}
	addScenarioFlags(cmd)
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestLoadScenarioFlagsOverride(t *testing.T) {
	cmd := scenarioCmd(t, "--preset", "square", "--kd", "6", "--dt", "0.005")
	cfg, err := loadScenario(cmd, []string{"body"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "square" || cfg.Dt != 0.005 {
		t.Errorf("name %q dt %v", cfg.Name, cfg.Dt)
	}
	if cfg.Gains.Position != (config.Vector{4, 0, 6}) {
		t.Errorf("position gains = %v", cfg.Gains.Position)
	}
	if cfg.Steps != 6000 {
		t.Errorf("unchanged flag overrode the preset: steps = %d", cfg.Steps)
	}
}

func TestLoadScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte("name: file\nsteps: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cmd := scenarioCmd(t, "--config", path)
	cfg, err := loadScenario(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "file" || cfg.Steps != 10 {
		t.Errorf("name %q steps %d", cfg.Name, cfg.Steps)
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	if _, err := loadScenario(scenarioCmd(t, "--preset", "nope"), nil); err == nil {
		t.Error("expected an error for an unknown preset")
	}
	if _, err := loadScenario(scenarioCmd(t, "--steps", "0"), nil); err == nil {
		t.Error("expected an error for zero steps")
	}
}

func TestParseRange(t *testing.T) {
	got, err := parseRange("1, 2.5,4")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1] != 2.5 {
		t.Errorf("parseRange = %v", got)
	}
	if _, err := parseRange("1,x"); err == nil {
		t.Error("expected an error")
	}
}
