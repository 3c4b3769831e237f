package sim

import (
	"sync/atomic"
	"time"

	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

// updateChunkedAtomic is the fully-parallel variant: Phase B dispatches
// one patch task per chunk with no serial tail. Races are only possible
// at chunk boundaries, so a source cell within one lattice step of its
// chunk's face applies every one of its patches with an atomic add;
// strictly-interior sources use plain writes.
//
// The one-step margin matters: a source on the face writes into the
// adjacent chunk, and a source one step inside writes onto its own
// face cells, which the adjacent chunk's task may be writing at the
// same time. Two steps in, every target is beyond the reach of any
// other chunk's sources.
func (e *Engine) updateChunkedAtomic(r *rule.Rule, pool *Pool) TickStats {
	if pool == nil {
		return e.updateSequential(r)
	}

	start := time.Now()
	tasks := make([]func(), e.chunkCount)
	for ci := 0; ci < e.chunkCount; ci++ {
		ci := ci
		d := &e.diffs[ci]
		d.reset()
		tasks[ci] = func() {
			e.updateChunkValues(r, ci, d, false)
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
				e.patchNeighborsAtomic(idx, r, 1)
			}
			for _, idx := range d.deaths {
				e.patchNeighborsAtomic(idx, r, -1)
			}
		}
	}
	pool.Run(tasks)

	stats := TickStats{PhaseA: phaseA, PhaseB: time.Since(start)}
	for ci := range e.diffs[:e.chunkCount] {
		stats.Spawns += len(e.diffs[ci].spawns)
		stats.Deaths += len(e.diffs[ci].deaths)
	}
	return stats
}

// patchNeighborsAtomic patches all neighbors of one source cell,
// choosing atomic or plain writes by the source's distance to its
// chunk's faces.
func (e *Engine) patchNeighborsAtomic(idx int, r *rule.Rule, delta int32) {
	g := e.grid
	pos := geom.IndexToPos(idx, g.bound)

	if isChunkBorder(chunkLocal(pos), 1) {
		for _, dir := range r.Topology.Directions() {
			npos := geom.Wrap(pos.Add(dir), g.bound)
			atomic.AddInt32(&g.neighbors[geom.PosToIndex(npos, g.bound)], delta)
		}
		return
	}
	for _, dir := range r.Topology.Directions() {
		g.neighbors[geom.PosToIndex(pos.Add(dir), g.bound)] += delta
	}
}
