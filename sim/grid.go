// Package sim implements the cell-update engine: a dense cubic lattice
// advanced one generation per tick under a configurable rule, with
// incrementally-maintained neighbor counts and several interchangeable
// concurrency strategies.
package sim

import (
	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

// Grid is the dense lattice store: two co-indexed flat arrays over a
// cube of side bound. values[i] is the decay value (0 = dead,
// 1..=states = alive); neighbors[i] caches the number of neighboring
// cells at full value. Neighbor counts are int32 rather than a byte so
// the atomic-border strategy can use sync/atomic adds on them.
//
// The count invariant holds between ticks, never mid-tick: after each
// Update, neighbors[i] equals the brute-force count of full-value
// neighbors of i under the rule's topology with toroidal wrap.
type Grid struct {
	bound     int32
	values    []uint8
	neighbors []int32
}

// NewGrid allocates an all-dead grid with the given side length.
func NewGrid(bound int32) *Grid {
	if bound < 1 {
		bound = 1
	}
	n := int(bound) * int(bound) * int(bound)
	return &Grid{
		bound:     bound,
		values:    make([]uint8, n),
		neighbors: make([]int32, n),
	}
}

// Bound returns the cube side length.
func (g *Grid) Bound() int32 { return g.bound }

// Len returns the total cell count, bound cubed.
func (g *Grid) Len() int { return len(g.values) }

// Value returns the decay value of cell i.
func (g *Grid) Value(i int) uint8 { return g.values[i] }

// NeighborCount returns the cached full-value neighbor count of cell i.
func (g *Grid) NeighborCount(i int) int32 { return g.neighbors[i] }

// Clear marks every cell dead and zeroes all neighbor counts.
func (g *Grid) Clear() {
	clear(g.values)
	clear(g.neighbors)
}

// seed marks a dead cell as newly born at full value and patches its
// neighbors' counts, leaving the count invariant intact. Reports
// whether the cell was dead (and therefore seeded).
func (g *Grid) seed(pos geom.Vec3, r *rule.Rule) bool {
	idx := geom.PosToIndex(pos, g.bound)
	if g.values[idx] != 0 {
		return false
	}
	g.values[idx] = r.States
	g.patchNeighbors(idx, r, 1)
	return true
}

// patchNeighbors adds delta to the cached count of every neighbor of
// cell idx, with toroidal wrap. Plain writes; callers needing the
// atomic or chunk-local variants live in the strategy files.
func (g *Grid) patchNeighbors(idx int, r *rule.Rule, delta int32) {
	pos := geom.IndexToPos(idx, g.bound)
	for _, dir := range r.Topology.Directions() {
		npos := geom.Wrap(pos.Add(dir), g.bound)
		g.neighbors[geom.PosToIndex(npos, g.bound)] += delta
	}
}
