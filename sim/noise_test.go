package sim

import (
	"testing"

	"github.com/pthm-cable/lattice/geom"
)

func TestSpawnNoiseInvariant(t *testing.T) {
	r := builderRule()
	e := NewEngine(Sequential, 42)
	e.SetBounds(32)

	e.SpawnNoise(r)

	if e.CellCount() == 0 {
		t.Fatal("noise spawned no cells")
	}
	if err := e.Validate(r); err != nil {
		t.Fatalf("invariant broken after noise: %v", err)
	}

	// All spawned cells are inside the sampling cube around center.
	center := geom.Center(32)
	for idx, v := range e.grid.values {
		if v == 0 {
			continue
		}
		d := geom.IndexToPos(idx, 32).Sub(center)
		if d.X < -noiseRadius || d.X > noiseRadius ||
			d.Y < -noiseRadius || d.Y > noiseRadius ||
			d.Z < -noiseRadius || d.Z > noiseRadius {
			t.Fatalf("cell %+v outside noise cube", d)
		}
		if v != r.States {
			t.Fatalf("spawned cell has value %d, want %d", v, r.States)
		}
	}
}

func TestSpawnNoiseTinyBound(t *testing.T) {
	// The sampling cube is far wider than the grid; every sample must
	// wrap cleanly instead of indexing out of range.
	r := builderRule()
	for _, bound := range []int32{2, 3, 5} {
		e := NewEngine(Sequential, 13)
		e.SetBounds(bound)

		e.SpawnNoise(r)

		if e.CellCount() == 0 {
			t.Fatalf("bound %d: noise spawned no cells", bound)
		}
		if err := e.Validate(r); err != nil {
			t.Fatalf("bound %d: invariant broken after noise: %v", bound, err)
		}
	}
}

func TestSpawnNoiseSkipsLiveCells(t *testing.T) {
	r := builderRule()
	e := NewEngine(Sequential, 42)
	e.SetBounds(32)

	// Put a partially-decayed cell at the center; noise must not
	// reset it to full value.
	center := geom.Center(32)
	idx := geom.PosToIndex(center, 32)
	e.grid.values[idx] = 3

	e.SpawnNoise(r)

	if got := e.grid.Value(idx); got != 3 {
		t.Errorf("live cell rewritten by noise: value = %d, want 3", got)
	}
}

func TestSpawnNoiseDeterministic(t *testing.T) {
	r := builderRule()

	a := NewEngine(Sequential, 99)
	a.SetBounds(32)
	a.SpawnNoise(r)

	b := NewEngine(Sequential, 99)
	b.SetBounds(32)
	b.SpawnNoise(r)

	for i := range a.grid.values {
		if a.grid.values[i] != b.grid.values[i] {
			t.Fatalf("same seed diverged at index %d", i)
		}
	}
}

func TestSpawnSimplexCloud(t *testing.T) {
	r := builderRule()
	e := NewEngine(Sequential, 7)
	e.SetBounds(32)

	e.SpawnSimplexCloud(r, 8, 0.15, 0.6)

	if e.CellCount() == 0 {
		t.Fatal("simplex cloud spawned no cells")
	}
	if err := e.Validate(r); err != nil {
		t.Fatalf("invariant broken after simplex cloud: %v", err)
	}

	center := geom.Center(32)
	for idx, v := range e.grid.values {
		if v == 0 {
			continue
		}
		d := geom.IndexToPos(idx, 32).Sub(center)
		if d.X < -8 || d.X > 8 || d.Y < -8 || d.Y > 8 || d.Z < -8 || d.Z > 8 {
			t.Fatalf("cell %+v outside cloud radius", d)
		}
	}
}
