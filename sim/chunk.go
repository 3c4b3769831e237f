package sim

import "github.com/pthm-cable/lattice/geom"

// ChunkSize is the side length of the cubic partitions used by the
// parallel strategies. Cells stay in one flat array; chunks only group
// indices for task dispatch, and chunk faces mark where neighbor
// patches may cross between concurrently-updated regions.
const ChunkSize = 32

const chunkCells = ChunkSize * ChunkSize * ChunkSize

// chunkRadius returns chunks per axis for a bound, rounding up.
func chunkRadius(bound int32) int32 {
	return (bound + ChunkSize - 1) / ChunkSize
}

// chunkOrigin returns the lattice position of a chunk's (0,0,0) corner.
func chunkOrigin(chunkIndex int, radius int32) geom.Vec3 {
	p := geom.IndexToPos(chunkIndex, radius)
	return geom.Vec3{X: p.X * ChunkSize, Y: p.Y * ChunkSize, Z: p.Z * ChunkSize}
}

// chunkLocal maps a lattice position to chunk-local coordinates.
func chunkLocal(pos geom.Vec3) geom.Vec3 {
	return geom.Vec3{X: pos.X % ChunkSize, Y: pos.Y % ChunkSize, Z: pos.Z % ChunkSize}
}

// isChunkBorder reports whether a chunk-local position lies within
// margin steps of any chunk face. margin 0 is the face itself; margin 1
// additionally covers cells whose neighbor footprint reaches the face.
func isChunkBorder(local geom.Vec3, margin int32) bool {
	return local.X-margin <= 0 || local.X+margin >= ChunkSize-1 ||
		local.Y-margin <= 0 || local.Y+margin >= ChunkSize-1 ||
		local.Z-margin <= 0 || local.Z+margin >= ChunkSize-1
}

// chunkDiff holds one chunk's per-tick transition lists. The slices
// are reused across ticks to avoid per-tick allocation.
type chunkDiff struct {
	spawns []int
	deaths []int

	// Used only by the serial-boundary strategy, which splits
	// transitions by whether the source cell sits on a chunk face.
	borderSpawns []int
	borderDeaths []int
}

func (d *chunkDiff) reset() {
	d.spawns = d.spawns[:0]
	d.deaths = d.deaths[:0]
	d.borderSpawns = d.borderSpawns[:0]
	d.borderDeaths = d.borderDeaths[:0]
}
