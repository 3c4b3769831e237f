package telemetry

import "log/slog"

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowEndTick int64 `csv:"window_end"`
	Ticks         int   `csv:"ticks"`

	// Cells is the live count sampled at window end.
	Cells int `csv:"cells"`

	// Transitions during the window.
	Spawns int `csv:"spawns"`
	Deaths int `csv:"deaths"`

	// Mean per-tick phase durations in microseconds.
	PhaseAMeanUs float64 `csv:"phase_a_us"`
	PhaseBMeanUs float64 `csv:"phase_b_us"`
	TickMeanUs   float64 `csv:"tick_us"`
}

// Log emits the window via slog.
func (ws WindowStats) Log() {
	slog.Info("window stats",
		"tick", ws.WindowEndTick,
		"cells", ws.Cells,
		"spawns", ws.Spawns,
		"deaths", ws.Deaths,
		"phase_a_us", ws.PhaseAMeanUs,
		"phase_b_us", ws.PhaseBMeanUs,
	)
}
