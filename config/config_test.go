package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	if cfg.Sim.Bound < 1 {
		t.Error("default bound missing")
	}
	if cfg.Sim.Strategy == "" {
		t.Error("default strategy missing")
	}
	if cfg.Rule.Preset == "" {
		t.Error("default rule preset missing")
	}
	if cfg.Telemetry.WindowTicks < 1 {
		t.Error("default telemetry window missing")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "sim:\n  bound: 96\n  strategy: sequential\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}
	if cfg.Sim.Bound != 96 {
		t.Errorf("bound = %d, want 96", cfg.Sim.Bound)
	}
	if cfg.Sim.Strategy != "sequential" {
		t.Errorf("strategy = %q, want sequential", cfg.Sim.Strategy)
	}
	// Fields absent from the overlay keep their defaults.
	if cfg.Screen.Width == 0 {
		t.Error("overlay clobbered unrelated defaults")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bound.yaml":  "sim:\n  bound: 0\n",
		"seeder.yaml": "sim:\n  seeder: gaussian\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Sim.Bound = 128

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Sim.Bound != 128 {
		t.Errorf("bound = %d, want 128", back.Sim.Bound)
	}
}
