// Package rule defines the birth/survival rules driving the cellular
// automaton: neighbor-count membership sets, decay state count, and the
// neighbor topology.
package rule

import "github.com/pthm-cable/lattice/geom"

// MaxNeighbors is the largest possible neighbor count (full Moore shell).
const MaxNeighbors = 26

// NeighborSet is a membership set over neighbor counts 0..=26.
// Out-of-range lookups are simply not members.
type NeighborSet uint32

// NewNeighborSet builds a set from individual counts.
func NewNeighborSet(counts ...uint8) NeighborSet {
	var s NeighborSet
	for _, c := range counts {
		if c <= MaxNeighbors {
			s |= 1 << c
		}
	}
	return s
}

// NeighborRange builds a set containing every count in [lo, hi].
func NeighborRange(lo, hi uint8) NeighborSet {
	var s NeighborSet
	for c := lo; c <= hi && c <= MaxNeighbors; c++ {
		s |= 1 << c
	}
	return s
}

// Contains reports whether count is a member of the set.
func (s NeighborSet) Contains(count uint8) bool {
	if count > MaxNeighbors {
		return false
	}
	return s&(1<<count) != 0
}

// Counts returns the member counts in ascending order.
func (s NeighborSet) Counts() []uint8 {
	var out []uint8
	for c := uint8(0); c <= MaxNeighbors; c++ {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Topology selects the neighbor direction set.
type Topology uint8

const (
	// Moore is the full 26-direction cube shell.
	Moore Topology = iota
	// VonNeumann is the 6 axis-aligned directions.
	VonNeumann
)

func (t Topology) String() string {
	if t == VonNeumann {
		return "von-neumann"
	}
	return "moore"
}

var vonNeumannDirs = [6]geom.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: -1}, {Z: 1},
}

var mooreDirs = func() [26]geom.Vec3 {
	var dirs [26]geom.Vec3
	i := 0
	for z := int32(-1); z <= 1; z++ {
		for y := int32(-1); y <= 1; y++ {
			for x := int32(-1); x <= 1; x++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				dirs[i] = geom.Vec3{X: x, Y: y, Z: z}
				i++
			}
		}
	}
	return dirs
}()

// Directions returns the offset table for the topology. The returned
// slice is shared and must not be modified.
func (t Topology) Directions() []geom.Vec3 {
	if t == VonNeumann {
		return vonNeumannDirs[:]
	}
	return mooreDirs[:]
}

// Rule is an immutable automaton configuration. A live cell at full
// value (== States) survives when its neighbor count is in Survival;
// a dead cell is born at full value when its count is in Birth; any
// live cell that fails survival decays by one per tick until dead.
type Rule struct {
	Survival NeighborSet
	Birth    NeighborSet
	States   uint8
	Topology Topology
}
