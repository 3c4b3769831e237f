package rule

import (
	"testing"

	"github.com/pthm-cable/lattice/geom"
)

func TestNeighborSetMembership(t *testing.T) {
	s := NewNeighborSet(0, 4, 26)
	for c := uint8(0); c <= MaxNeighbors; c++ {
		want := c == 0 || c == 4 || c == 26
		if s.Contains(c) != want {
			t.Errorf("Contains(%d) = %v, want %v", c, s.Contains(c), want)
		}
	}
	// Out of range never panics and is never a member.
	if s.Contains(27) || s.Contains(255) {
		t.Error("out-of-range count reported as member")
	}
}

func TestNeighborSetIgnoresOutOfRange(t *testing.T) {
	s := NewNeighborSet(27, 100)
	if s != 0 {
		t.Errorf("set built from out-of-range counts should be empty, got %b", s)
	}
}

func TestNeighborRangeInclusive(t *testing.T) {
	s := NeighborRange(13, 26)
	if !s.Contains(13) || !s.Contains(26) {
		t.Error("range endpoints must be members")
	}
	if s.Contains(12) {
		t.Error("12 should not be a member of [13, 26]")
	}
	got := s.Counts()
	if len(got) != 14 {
		t.Errorf("expected 14 members, got %d", len(got))
	}
}

func TestTopologyDirections(t *testing.T) {
	moore := Moore.Directions()
	if len(moore) != 26 {
		t.Fatalf("Moore has %d directions, want 26", len(moore))
	}
	vn := VonNeumann.Directions()
	if len(vn) != 6 {
		t.Fatalf("VonNeumann has %d directions, want 6", len(vn))
	}

	// No duplicates, no zero vector, and every direction's negation is
	// also present (neighbor relations are symmetric).
	for _, dirs := range [][]geom.Vec3{moore, vn} {
		seen := make(map[geom.Vec3]bool)
		for _, d := range dirs {
			if d == (geom.Vec3{}) {
				t.Error("zero direction present")
			}
			if seen[d] {
				t.Errorf("duplicate direction %+v", d)
			}
			seen[d] = true
		}
		for _, d := range dirs {
			if !seen[geom.Vec3{X: -d.X, Y: -d.Y, Z: -d.Z}] {
				t.Errorf("direction %+v has no mirror", d)
			}
		}
	}
}

func TestColorMethods(t *testing.T) {
	m := ColorMethod{Mode: ColorStateLerp, Primary: RGBA{A: 1}, Secondary: RGBA{R: 1, A: 1}}
	if got := m.Color(10, 0, 0, 0); got.R != 0 {
		t.Errorf("value 0 should give primary, got %+v", got)
	}
	if got := m.Color(10, 10, 0, 0); got.R != 1 {
		t.Errorf("full value should give secondary, got %+v", got)
	}
	mid := m.Color(10, 5, 0, 0)
	if mid.R < 0.49 || mid.R > 0.51 {
		t.Errorf("half value should interpolate, got %+v", mid)
	}

	single := ColorMethod{Mode: ColorSingle, Primary: RGBA{G: 1, A: 1}}
	if got := single.Color(10, 3, 7, 0.5); got != single.Primary {
		t.Errorf("single mode must ignore inputs, got %+v", got)
	}
}

func TestBuiltinPresetsValid(t *testing.T) {
	presets := Builtin()
	if len(presets) == 0 {
		t.Fatal("no builtin presets")
	}
	names := make(map[string]bool)
	for _, p := range presets {
		if names[p.Name] {
			t.Errorf("duplicate preset name %q", p.Name)
		}
		names[p.Name] = true
		if _, err := p.Rule(); err != nil {
			t.Errorf("preset %q: %v", p.Name, err)
		}
		if _, err := p.ColorMethod(); err != nil {
			t.Errorf("preset %q: %v", p.Name, err)
		}
	}
}

func TestPresetRejectsBadTopology(t *testing.T) {
	p := Preset{Name: "bad", States: 2, Topology: "hexagonal"}
	if _, err := p.Rule(); err == nil {
		t.Error("expected error for unknown topology")
	}
}
