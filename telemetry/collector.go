// Package telemetry accumulates per-tick simulation events into
// windowed statistics and writes them as CSV for offline analysis.
package telemetry

import (
	"time"

	"github.com/pthm-cable/lattice/sim"
)

// Collector aggregates tick events within fixed-size tick windows.
type Collector struct {
	windowTicks int64
	windowStart int64

	ticks  int
	spawns int
	deaths int
	phaseA time.Duration
	phaseB time.Duration
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int64(windowTicks)}
}

// RecordTick folds one Update's results into the current window.
func (c *Collector) RecordTick(stats sim.TickStats) {
	c.ticks++
	c.spawns += stats.Spawns
	c.deaths += stats.Deaths
	c.phaseA += stats.PhaseA
	c.phaseB += stats.PhaseB
}

// ShouldFlush reports whether the window ending at currentTick is due.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStart >= c.windowTicks
}

// Flush produces the window's stats and resets for the next window.
// cellCount is sampled at flush time.
func (c *Collector) Flush(currentTick int64, cellCount int) WindowStats {
	ws := WindowStats{
		WindowEndTick: currentTick,
		Ticks:         c.ticks,
		Cells:         cellCount,
		Spawns:        c.spawns,
		Deaths:        c.deaths,
	}
	if c.ticks > 0 {
		ws.PhaseAMeanUs = float64(c.phaseA.Microseconds()) / float64(c.ticks)
		ws.PhaseBMeanUs = float64(c.phaseB.Microseconds()) / float64(c.ticks)
		ws.TickMeanUs = ws.PhaseAMeanUs + ws.PhaseBMeanUs
	}

	c.windowStart = currentTick
	c.ticks = 0
	c.spawns = 0
	c.deaths = 0
	c.phaseA = 0
	c.phaseB = 0
	return ws
}
