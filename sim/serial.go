package sim

import (
	"time"

	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

// updateChunkedSerial partitions the lattice into chunks. Phase A runs
// one task per chunk with disjoint writes. Phase B runs chunk-interior
// patches in parallel (a source cell off every chunk face patches only
// cells of its own chunk, which no other task touches) and then applies
// the collected face-cell patches in a single serial pass, since those
// can cross into neighboring chunks.
func (e *Engine) updateChunkedSerial(r *rule.Rule, pool *Pool) TickStats {
	if pool == nil {
		return e.updateSequential(r)
	}
	g := e.grid

	start := time.Now()
	tasks := make([]func(), e.chunkCount)
	for ci := 0; ci < e.chunkCount; ci++ {
		ci := ci
		d := &e.diffs[ci]
		d.reset()
		tasks[ci] = func() {
			e.updateChunkValues(r, ci, d, true)
		}
	}
	pool.Run(tasks)
	phaseA := time.Since(start)

	start = time.Now()
	for ci := 0; ci < e.chunkCount; ci++ {
		ci := ci
		d := &e.diffs[ci]
		tasks[ci] = func() {
			for _, idx := range d.spawns {
				e.patchNeighborsInterior(idx, r, 1)
			}
			for _, idx := range d.deaths {
				e.patchNeighborsInterior(idx, r, -1)
			}
		}
	}
	pool.Run(tasks)

	// Face-cell patches can target cells owned by adjacent chunks, so
	// they run on this goroutine only, after the parallel batch joined.
	for ci := range e.diffs[:e.chunkCount] {
		for _, idx := range e.diffs[ci].borderSpawns {
			g.patchNeighbors(idx, r, 1)
		}
		for _, idx := range e.diffs[ci].borderDeaths {
			g.patchNeighbors(idx, r, -1)
		}
	}

	stats := TickStats{PhaseA: phaseA, PhaseB: time.Since(start)}
	for ci := range e.diffs[:e.chunkCount] {
		stats.Spawns += len(e.diffs[ci].spawns) + len(e.diffs[ci].borderSpawns)
		stats.Deaths += len(e.diffs[ci].deaths) + len(e.diffs[ci].borderDeaths)
	}
	return stats
}

// patchNeighborsInterior patches all neighbors of a source cell known
// to sit off every face of its chunk. Every target is then inside the
// same chunk, so no wrap and no synchronization is needed.
func (e *Engine) patchNeighborsInterior(idx int, r *rule.Rule, delta int32) {
	g := e.grid
	pos := geom.IndexToPos(idx, g.bound)
	for _, dir := range r.Topology.Directions() {
		g.neighbors[geom.PosToIndex(pos.Add(dir), g.bound)] += delta
	}
}
