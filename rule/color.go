package rule

// RGBA is a normalized color with components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// Lerp interpolates between two colors; t is clamped to [0, 1].
func Lerp(a, b RGBA, t float32) RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// ColorMode selects how a cell's render color is derived.
type ColorMode uint8

const (
	// ColorSingle uses Primary for every cell.
	ColorSingle ColorMode = iota
	// ColorStateLerp interpolates Primary->Secondary by value/states.
	ColorStateLerp
	// ColorDistToCenter interpolates by normalized distance to center.
	ColorDistToCenter
	// ColorNeighborLerp interpolates by neighborCount/26.
	ColorNeighborLerp
)

// ColorMethod derives per-cell colors for render extraction.
type ColorMethod struct {
	Mode      ColorMode
	Primary   RGBA
	Secondary RGBA
}

// Color computes the color for a cell given its decay value, cached
// neighbor count, and normalized distance to the grid center.
func (m ColorMethod) Color(states, value, neighbors uint8, distToCenter float32) RGBA {
	switch m.Mode {
	case ColorStateLerp:
		return Lerp(m.Primary, m.Secondary, float32(value)/float32(states))
	case ColorDistToCenter:
		return Lerp(m.Primary, m.Secondary, distToCenter)
	case ColorNeighborLerp:
		return Lerp(m.Primary, m.Secondary, float32(neighbors)/float32(MaxNeighbors))
	default:
		return m.Primary
	}
}
