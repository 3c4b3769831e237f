package sim

import (
	"fmt"

	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

// Validate recomputes every neighbor count by brute force and compares
// it with the incrementally-maintained array. A mismatch means a
// concurrency bug (race or wrong boundary classification) and is
// reported, never repaired. Cost is O(cells * neighbors); development
// and test use only.
func (e *Engine) Validate(r *rule.Rule) error {
	g := e.grid
	bound := g.Bound()
	dirs := r.Topology.Directions()

	mismatches := 0
	firstIdx := -1
	var firstWant, firstGot int32

	for idx := range g.values {
		pos := geom.IndexToPos(idx, bound)
		var want int32
		for _, dir := range dirs {
			npos := geom.Wrap(pos.Add(dir), bound)
			if g.values[geom.PosToIndex(npos, bound)] == r.States {
				want++
			}
		}
		if got := g.neighbors[idx]; got != want {
			if mismatches == 0 {
				firstIdx, firstWant, firstGot = idx, want, got
			}
			mismatches++
		}
	}

	if mismatches > 0 {
		pos := geom.IndexToPos(firstIdx, bound)
		return fmt.Errorf("neighbor count drift: %d cells wrong, first at %+v (have %d, want %d)",
			mismatches, pos, firstGot, firstWant)
	}
	return nil
}
