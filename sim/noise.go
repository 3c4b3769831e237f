package sim

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

// Default noise cluster: up to 12^3 samples in a half-width-6 cube.
const (
	noiseRadius = 6
	noiseAmount = 12 * 12 * 12
)

// SpawnNoise stochastically births a cluster of cells around the grid
// center. Already-alive positions are left untouched. This is a bulk
// edit outside the tick phases; each seeded cell's neighbor patch runs
// synchronously, so the count invariant holds on return.
func (e *Engine) SpawnNoise(r *rule.Rule) {
	center := geom.Center(e.grid.Bound())
	e.SpawnNoiseAt(r, center, noiseRadius, noiseAmount)
}

// SpawnNoiseAt births up to amount cells uniformly sampled from the
// cube of the given half-width around center, wrapped toroidally.
func (e *Engine) SpawnNoiseAt(r *rule.Rule, center geom.Vec3, radius int32, amount int) {
	bound := e.grid.Bound()
	span := 2*radius + 1
	for i := 0; i < amount; i++ {
		offset := geom.Vec3{
			X: e.rng.Int31n(span) - radius,
			Y: e.rng.Int31n(span) - radius,
			Z: e.rng.Int31n(span) - radius,
		}
		pos := geom.Wrap(center.Add(offset), bound)
		e.grid.seed(pos, r)
	}
}

// SpawnSimplexCloud births cells where a 3-D simplex field around the
// center exceeds threshold, producing a coherent blob rather than
// uniform speckle. scale is the noise frequency; threshold is in the
// normalized [0, 1] range.
func (e *Engine) SpawnSimplexCloud(r *rule.Rule, radius int32, scale, threshold float64) {
	bound := e.grid.Bound()
	center := geom.Center(bound)
	noise := opensimplex.NewNormalized(e.rng.Int63())

	for z := -radius; z <= radius; z++ {
		for y := -radius; y <= radius; y++ {
			for x := -radius; x <= radius; x++ {
				v := noise.Eval3(float64(x)*scale, float64(y)*scale, float64(z)*scale)
				if v < threshold {
					continue
				}
				pos := geom.Wrap(center.Add(geom.Vec3{X: x, Y: y, Z: z}), bound)
				e.grid.seed(pos, r)
			}
		}
	}
}
