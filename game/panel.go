package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lattice/sim"
)

const panelWidth float32 = 270

// drawPanel renders the raygui control panel on the right edge.
func (g *Game) drawPanel() {
	panelX := float32(rl.GetScreenWidth()) - panelWidth - 10
	panelY := float32(10)

	g.hud.DrawPanel(int32(panelX)-10, int32(panelY)-2, int32(panelWidth)+20, 390)

	rl.DrawText("Simulation", int32(panelX), int32(panelY), 20, rl.RayWhite)
	panelY += 35

	// Bound slider. Resizing reallocates and reseeds the grid, so the
	// new value is applied only once the drag ends.
	rl.DrawText("Bound (grid edge length)", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	g.pendingBound = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 70, Height: 20},
		"32", "256",
		g.pendingBound, 32, 256,
	)
	rl.DrawText(fmt.Sprintf("%d", int32(g.pendingBound)), int32(panelX+panelWidth-60), int32(panelY+2), 16, rl.RayWhite)
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) &&
		int32(g.pendingBound) != g.engine.Bounds() {
		g.pendingBound = float32(g.setBounds(int32(g.pendingBound)))
	}
	panelY += 35

	rl.DrawText("Steps per frame", int32(panelX), int32(panelY), 14, rl.Gray)
	panelY += 18
	steps := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 70, Height: 20},
		"1", "10",
		float32(g.stepsPerUpdate), 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%d", g.stepsPerUpdate), int32(panelX+panelWidth-60), int32(panelY+2), 16, rl.RayWhite)
	g.stepsPerUpdate = int(steps)
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	panelY += 35

	rl.DrawLine(int32(panelX), int32(panelY), int32(panelX+panelWidth)-20, int32(panelY), rl.LightGray)
	panelY += 15

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 125, Height: 30},
		toggleText(g.paused, "Resume", "Pause")) {
		g.paused = !g.paused
	}
	if gui.Button(rl.Rectangle{X: panelX + 135, Y: panelY, Width: 125, Height: 30}, "Reset") {
		g.reset()
	}
	panelY += 40

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 125, Height: 30}, "Noise Burst") {
		g.engine.SpawnNoise(&g.rule)
	}
	if gui.Button(rl.Rectangle{X: panelX + 135, Y: panelY, Width: 125, Height: 30},
		"Rule: "+g.presets[g.presetIdx].Name) {
		g.cyclePreset()
	}
	panelY += 40

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 260, Height: 30},
		"Strategy: "+g.engine.Strategy().String()) {
		next := g.engine.Strategy() + 1
		if next > sim.ChunkedAtomic {
			next = sim.Sequential
		}
		g.setStrategy(next)
	}
	panelY += 40

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 125, Height: 30}, "Save (F5)") {
		g.saveSnapshot()
	}
	if gui.Button(rl.Rectangle{X: panelX + 135, Y: panelY, Width: 125, Height: 30}, "Load (F9)") {
		g.loadLatestSnapshot()
	}
	panelY += 40

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 260, Height: 30},
		toggleText(g.cam.Rotating, "Auto-Rotate: On", "Auto-Rotate: Off")) {
		g.cam.Rotating = !g.cam.Rotating
	}
}

func toggleText(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}
