// Package game wires the engine, camera, renderer, and telemetry into
// the interactive visualizer loop.
package game

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/pthm-cable/lattice/camera"
	"github.com/pthm-cable/lattice/config"
	"github.com/pthm-cable/lattice/renderer"
	"github.com/pthm-cable/lattice/rule"
	"github.com/pthm-cable/lattice/sim"
	"github.com/pthm-cable/lattice/telemetry"
	"github.com/pthm-cable/lattice/ui"
)

// Options configures a Game beyond the config file.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	SnapshotDir    string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete visualizer state.
type Game struct {
	opts Options

	engine *sim.Engine
	pool   *sim.Pool

	presets     []rule.Preset
	presetIdx   int
	rule        rule.Rule
	colorMethod rule.ColorMethod

	cam   *camera.Orbit
	cells *renderer.CellRenderer
	hud   *ui.Renderer

	instances []sim.Instance

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *PerfStats

	tick           int64
	paused         bool
	stepsPerUpdate int
	showPanel      bool

	// Bound pending from the panel slider, applied on release.
	pendingBound float32
}

// NewGameWithOptions builds a game from the global config plus options.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		opts:           opts,
		perf:           NewPerfStats(),
		collector:      telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		stepsPerUpdate: opts.StepsPerUpdate,
		showPanel:      !opts.Headless,
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}

	g.presets = rule.Builtin()
	if cfg.Rule.PresetsFile != "" {
		extra, err := rule.LoadPresets(cfg.Rule.PresetsFile)
		if err != nil {
			slog.Error("failed to load rule presets", "path", cfg.Rule.PresetsFile, "error", err)
		} else {
			g.presets = append(g.presets, extra...)
		}
	}
	g.presetIdx = 0
	for i, p := range g.presets {
		if p.Name == cfg.Rule.Preset {
			g.presetIdx = i
			break
		}
	}
	g.applyPreset()

	strategy, err := sim.ParseStrategy(cfg.Sim.Strategy)
	if err != nil {
		slog.Error("bad strategy in config, using sequential", "error", err)
	}
	g.engine = sim.NewEngine(strategy, opts.Seed)
	effective := g.engine.SetBounds(int32(cfg.Sim.Bound))
	if effective != int32(cfg.Sim.Bound) {
		slog.Info("bound rounded to chunk multiple",
			"requested", cfg.Sim.Bound, "effective", effective)
	}
	g.pendingBound = float32(effective)
	g.pool = sim.NewPool(cfg.Sim.Workers)

	g.spawnSeed()

	dist := float32(cfg.Camera.Distance) * float32(effective)
	if dist <= 0 {
		dist = 2.2 * float32(effective)
	}
	g.cam = camera.New(dist)
	g.cam.AutoRotate = float32(cfg.Camera.AutoRotate)
	if !opts.Headless {
		g.cells = renderer.NewCellRenderer()
		g.hud = ui.NewRenderer()
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	return g
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 { return g.tick }

// CellCount returns the number of live cells.
func (g *Game) CellCount() int { return g.engine.CellCount() }

// applyPreset resolves the active preset into an executable rule.
// Builtin presets are pre-validated, and LoadPresets rejects bad ones,
// so conversion cannot fail here.
func (g *Game) applyPreset() {
	p := g.presets[g.presetIdx]
	g.rule, _ = p.Rule()
	g.colorMethod, _ = p.ColorMethod()
}

// spawnSeed populates the grid using the configured seeder.
func (g *Game) spawnSeed() {
	cfg := config.Cfg()
	if cfg.Sim.Seeder == "simplex" {
		g.engine.SpawnSimplexCloud(&g.rule,
			int32(cfg.Sim.SimplexRadius), cfg.Sim.SimplexScale, cfg.Sim.SimplexThreshold)
		return
	}
	g.engine.SpawnNoise(&g.rule)
}

// reset discards the grid and reseeds it.
func (g *Game) reset() {
	g.engine.SetBounds(g.engine.Bounds())
	g.spawnSeed()
	g.tick = 0
}

// setBounds applies a new bound, reseeding from scratch, and returns
// the effective value.
func (g *Game) setBounds(bound int32) int32 {
	effective := g.engine.SetBounds(bound)
	g.spawnSeed()
	g.tick = 0

	dist := float32(config.Cfg().Camera.Distance) * float32(effective)
	if dist > 0 {
		g.cam.MaxDist = dist * 8
		g.cam.Dist = dist
	}
	return effective
}

// setStrategy rebuilds the engine under a new concurrency strategy,
// preserving nothing but the bound (the grid is reseeded).
func (g *Game) setStrategy(s sim.Strategy) {
	bound := g.engine.Bounds()
	g.engine = sim.NewEngine(s, g.opts.Seed+g.tick)
	g.engine.SetBounds(bound)
	g.spawnSeed()
	g.tick = 0
}

// cyclePreset advances to the next rule preset and reseeds.
func (g *Game) cyclePreset() {
	g.presetIdx = (g.presetIdx + 1) % len(g.presets)
	g.applyPreset()
	g.reset()
}

// step advances the simulation one tick and feeds telemetry.
func (g *Game) step() {
	stats := g.engine.Update(&g.rule, g.pool)
	g.tick++

	g.collector.RecordTick(stats)
	if g.collector.ShouldFlush(g.tick) {
		ws := g.collector.Flush(g.tick, g.engine.CellCount())
		if g.opts.LogStats {
			ws.Log()
		}
		if err := g.output.WriteWindow(ws); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// UpdateHeadless advances the simulation without any rendering work.
func (g *Game) UpdateHeadless() {
	start := time.Now()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
	g.perf.Record("update", time.Since(start))
}

// saveSnapshot writes the grid to the snapshot directory.
func (g *Game) saveSnapshot() {
	if g.opts.SnapshotDir == "" {
		return
	}
	path := filepath.Join(g.opts.SnapshotDir, fmt.Sprintf("lattice-%08d.zst", g.tick))
	if err := g.engine.SaveSnapshot(path, g.tick, &g.rule); err != nil {
		slog.Error("failed to save snapshot", "path", path, "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path, "tick", g.tick)
}

// Unload releases workers and output files.
func (g *Game) Unload() {
	g.pool.Close()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
