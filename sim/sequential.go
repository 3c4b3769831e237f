package sim

import (
	"time"

	"github.com/pthm-cable/lattice/rule"
)

// updateSequential runs both phases as plain loops over the whole
// lattice. No synchronization is needed: Phase A only writes values,
// Phase B only writes neighbor counts, and nothing runs concurrently.
func (e *Engine) updateSequential(r *rule.Rule) TickStats {
	g := e.grid
	e.spawns = e.spawns[:0]
	e.deaths = e.deaths[:0]

	start := time.Now()
	for idx := range g.values {
		v, spawned, died := stepValue(g.values[idx], g.neighbors[idx], r)
		g.values[idx] = v
		if spawned {
			e.spawns = append(e.spawns, idx)
		} else if died {
			e.deaths = append(e.deaths, idx)
		}
	}
	phaseA := time.Since(start)

	start = time.Now()
	for _, idx := range e.spawns {
		g.patchNeighbors(idx, r, 1)
	}
	for _, idx := range e.deaths {
		g.patchNeighbors(idx, r, -1)
	}

	return TickStats{
		Spawns: len(e.spawns),
		Deaths: len(e.deaths),
		PhaseA: phaseA,
		PhaseB: time.Since(start),
	}
}
