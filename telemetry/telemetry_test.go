package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/lattice/sim"
)

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(10)

	for tick := int64(1); tick <= 9; tick++ {
		c.RecordTick(sim.TickStats{Spawns: 2, Deaths: 1})
		if c.ShouldFlush(tick) {
			t.Fatalf("flush requested at tick %d, window is 10", tick)
		}
	}
	c.RecordTick(sim.TickStats{Spawns: 2, Deaths: 1})
	if !c.ShouldFlush(10) {
		t.Fatal("flush not requested at window end")
	}

	ws := c.Flush(10, 500)
	if ws.Ticks != 10 || ws.Spawns != 20 || ws.Deaths != 10 || ws.Cells != 500 {
		t.Errorf("window stats = %+v", ws)
	}

	// Counters reset after flush.
	next := c.Flush(20, 0)
	if next.Ticks != 0 || next.Spawns != 0 {
		t.Errorf("collector not reset: %+v", next)
	}
}

func TestCollectorPhaseMeans(t *testing.T) {
	c := NewCollector(2)
	c.RecordTick(sim.TickStats{PhaseA: 100 * time.Microsecond, PhaseB: 50 * time.Microsecond})
	c.RecordTick(sim.TickStats{PhaseA: 300 * time.Microsecond, PhaseB: 150 * time.Microsecond})

	ws := c.Flush(2, 0)
	if ws.PhaseAMeanUs != 200 {
		t.Errorf("phase A mean = %f, want 200", ws.PhaseAMeanUs)
	}
	if ws.PhaseBMeanUs != 100 {
		t.Errorf("phase B mean = %f, want 100", ws.PhaseBMeanUs)
	}
	if ws.TickMeanUs != 300 {
		t.Errorf("tick mean = %f, want 300", ws.TickMeanUs)
	}
}

func TestOutputManagerCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	if err := om.WriteWindow(WindowStats{WindowEndTick: 60, Cells: 123}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteWindow(WindowStats{WindowEndTick: 120, Cells: 456}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") || !strings.Contains(lines[0], "cells") {
		t.Errorf("header missing columns: %q", lines[0])
	}
	if strings.Contains(lines[2], "window_end") {
		t.Error("header repeated on second write")
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("disabled manager errored: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// Nil receiver is a no-op, not a panic.
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("nil write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil close: %v", err)
	}
}
