package game

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lattice/sim"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPanel = !g.showPanel
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyN) {
		g.engine.SpawnNoise(&g.rule)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.reset()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.cyclePreset()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		next := g.engine.Strategy() + 1
		if next > sim.ChunkedAtomic {
			next = sim.Sequential
		}
		g.setStrategy(next)
	}

	// Snapshot save/load
	if rl.IsKeyPressed(rl.KeyF5) {
		g.saveSnapshot()
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		g.loadLatestSnapshot()
	}

	g.handleCameraInput()
}

// handleCameraInput processes orbit/zoom controls.
func (g *Game) handleCameraInput() {
	// Dragging with the left button orbits; auto-rotation pauses while
	// the user is in control.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			g.cam.Rotating = false
			g.cam.Rotate(-delta.X*0.005, delta.Y*0.005)
		}
	}
	if rl.IsKeyPressed(rl.KeyA) {
		g.cam.Rotating = !g.cam.Rotating
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.cam.Zoom(-wheelMove * g.cam.Dist * 0.08)
	}
}

// loadLatestSnapshot restores the most recent snapshot in SnapshotDir.
func (g *Game) loadLatestSnapshot() {
	path, err := latestSnapshot(g.opts.SnapshotDir)
	if err != nil {
		slog.Error("no snapshot to load", "dir", g.opts.SnapshotDir, "error", err)
		return
	}
	tick, err := g.engine.LoadSnapshot(path, &g.rule)
	if err != nil {
		slog.Error("failed to load snapshot", "path", path, "error", err)
		return
	}
	g.tick = tick
	slog.Info("snapshot loaded", "path", path, "tick", tick)
}

// latestSnapshot returns the newest snapshot file in dir, by name;
// snapshot filenames embed the zero-padded tick so lexical order is
// chronological.
func latestSnapshot(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("snapshot directory not configured")
	}
	matches, err := filepath.Glob(filepath.Join(dir, "lattice-*.zst"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errors.New("no snapshots found")
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
