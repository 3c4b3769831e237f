package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update advances one frame: input, simulation steps, and instance
// extraction for the renderer.
func (g *Game) Update() {
	g.handleInput()

	if !g.paused {
		start := time.Now()
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.step()
		}
		g.perf.Record("sim", time.Since(start))
	}

	start := time.Now()
	g.instances = g.engine.Extract(g.instances, &g.rule, g.colorMethod)
	g.perf.Record("extract", time.Since(start))

	g.cam.Update(rl.GetFrameTime())
}

// Draw renders the frame.
func (g *Game) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(8, 9, 12, 255))

	g.cells.Draw(g.instances, g.engine.Bounds(), g.cam)

	g.drawHUD()
	if g.showPanel {
		g.drawPanel()
	}

	rl.EndDrawing()
	g.perf.Record("draw", time.Since(start))
}

// drawHUD renders the stats overlay in the top-left corner.
func (g *Game) drawHUD() {
	const x, pad int32 = 12, 10
	g.hud.DrawPanel(x-pad+2, 8, 240, 232)

	y := g.hud.DrawSectionHeader(x, 16, g.presets[g.presetIdx].Name)
	y = g.hud.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d", g.tick))
	y = g.hud.DrawLabelValue(x, y, "Cells", fmt.Sprintf("%d", g.engine.CellCount()))
	y = g.hud.DrawLabelValue(x, y, "Bound", fmt.Sprintf("%d", g.engine.Bounds()))
	y = g.hud.DrawLabelValue(x, y, "Strategy", g.engine.Strategy().String())
	y = g.hud.DrawLabelValue(x, y, "Steps/frame", fmt.Sprintf("%d", g.stepsPerUpdate))
	y = g.hud.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", rl.GetFPS()))
	if g.paused {
		y = g.hud.DrawLabelValue(x, y, "State", "PAUSED")
	} else {
		y = g.hud.DrawLabelValue(x, y, "Sim ms",
			fmt.Sprintf("%.2f", float64(g.perf.Avg("sim").Microseconds())/1000))
	}

	y += 4
	y = g.hud.DrawHint(x, y, "space pause  n noise  r reset")
	g.hud.DrawHint(x, y, "p preset  c strategy  tab panel")
}
