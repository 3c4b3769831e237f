package sim

import (
	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

// Instance is one cell's render record: position relative to the grid
// center, a uniform scale, and a color derived from the rule's color
// method. The renderer consumes a flat slice of these each tick.
type Instance struct {
	X, Y, Z float32
	Scale   float32
	Color   rule.RGBA
}

// Extract appends a render record for every non-dead cell to dst and
// returns it. dst is truncated first so callers can reuse one buffer
// across ticks. Read-only with respect to the grid.
func (e *Engine) Extract(dst []Instance, r *rule.Rule, cm rule.ColorMethod) []Instance {
	dst = dst[:0]
	g := e.grid
	bound := g.Bound()
	center := geom.Center(bound)

	for idx, value := range g.values {
		if value == 0 {
			continue
		}
		pos := geom.IndexToPos(idx, bound)
		rel := pos.Sub(center)

		var neighbors uint8
		if n := g.neighbors[idx]; n >= 0 && n <= rule.MaxNeighbors {
			neighbors = uint8(n)
		}
		dst = append(dst, Instance{
			X:     float32(rel.X),
			Y:     float32(rel.Y),
			Z:     float32(rel.Z),
			Scale: 1.0,
			Color: cm.Color(r.States, value, neighbors, geom.DistToCenter(pos, bound)),
		})
	}
	return dst
}
