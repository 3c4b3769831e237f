package sim

import (
	"testing"

	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

func TestChunkRadius(t *testing.T) {
	cases := []struct{ bound, want int32 }{
		{1, 1}, {32, 1}, {33, 2}, {64, 2}, {65, 3}, {128, 4},
	}
	for _, tc := range cases {
		if got := chunkRadius(tc.bound); got != tc.want {
			t.Errorf("chunkRadius(%d) = %d, want %d", tc.bound, got, tc.want)
		}
	}
}

func TestIsChunkBorder(t *testing.T) {
	mid := int32(ChunkSize / 2)
	cases := []struct {
		local  geom.Vec3
		margin int32
		want   bool
	}{
		{geom.Vec3{X: 0, Y: mid, Z: mid}, 0, true},
		{geom.Vec3{X: ChunkSize - 1, Y: mid, Z: mid}, 0, true},
		{geom.Vec3{X: 1, Y: mid, Z: mid}, 0, false},
		{geom.Vec3{X: 1, Y: mid, Z: mid}, 1, true},
		{geom.Vec3{X: ChunkSize - 2, Y: mid, Z: mid}, 1, true},
		{geom.Vec3{X: 2, Y: 2, Z: 2}, 1, false},
		{geom.Vec3{X: mid, Y: mid, Z: mid}, 1, false},
		{geom.Vec3{X: mid, Y: mid, Z: 0}, 1, true},
	}
	for _, tc := range cases {
		if got := isChunkBorder(tc.local, tc.margin); got != tc.want {
			t.Errorf("isChunkBorder(%+v, %d) = %v, want %v", tc.local, tc.margin, got, tc.want)
		}
	}
}

// A birth sourced exactly on a chunk face must patch the adjacent
// chunk's cells, once, under the fully-parallel strategy.
func TestChunkBoundaryPatch(t *testing.T) {
	r := &rule.Rule{
		Survival: rule.NewNeighborSet(1),
		Birth:    rule.NewNeighborSet(1),
		States:   1,
		Topology: rule.Moore,
	}

	const bound = 2 * ChunkSize
	pool := NewPool(4)
	defer pool.Close()

	e := NewEngine(ChunkedAtomic, 1)
	if got := e.SetBounds(bound); got != bound {
		t.Fatalf("effective bound %d", got)
	}

	// Seed at local x=0 of the second x-chunk. Every neighbor of the
	// seed sees count 1 and is born this tick, including cells at
	// x=ChunkSize-1, which live in the first chunk.
	seedPos := geom.Vec3{X: ChunkSize, Y: 20, Z: 20}
	e.grid.seed(seedPos, r)

	across := geom.PosToIndex(geom.Vec3{X: ChunkSize - 1, Y: 20, Z: 20}, bound)
	if got := e.grid.NeighborCount(across); got != 1 {
		t.Fatalf("pre-tick neighbor count across boundary = %d, want 1", got)
	}

	e.Update(r, pool)

	if got := e.grid.Value(across); got != 1 {
		t.Errorf("cell across chunk boundary not born: value = %d", got)
	}
	// Any lost or double-counted boundary patch fails the recount.
	if err := e.Validate(r); err != nil {
		t.Errorf("after boundary tick: %v", err)
	}
}

// Sources one step inside a face write onto face cells that the
// adjacent chunk also writes; both must go through atomics. Stress the
// seam with a dense plane of births on both sides of a chunk face.
func TestChunkSeamDense(t *testing.T) {
	if testing.Short() {
		t.Skip("seam stress")
	}
	r := builderRule()

	const bound = 2 * ChunkSize
	pool := NewPool(8)
	defer pool.Close()

	for _, s := range []Strategy{ChunkedSerial, ChunkedAtomic} {
		e := NewEngine(s, 1)
		e.SetBounds(bound)

		// Live plates straddling the x = ChunkSize seam.
		for z := int32(10); z < 54; z++ {
			for y := int32(10); y < 54; y++ {
				for x := int32(ChunkSize - 2); x <= ChunkSize+1; x++ {
					e.grid.seed(geom.Vec3{X: x, Y: y, Z: z}, r)
				}
			}
		}
		if err := e.Validate(r); err != nil {
			t.Fatalf("%s: after seeding: %v", s, err)
		}

		for i := 0; i < 4; i++ {
			e.Update(r, pool)
			if err := e.Validate(r); err != nil {
				t.Fatalf("%s: after tick %d: %v", s, i+1, err)
			}
		}
	}
}
