package rule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named, serializable rule definition. Presets are the unit
// of configuration: built-in ones ship with the binary and extra ones
// can be loaded from YAML files.
type Preset struct {
	Name     string  `yaml:"name"`
	Survival []uint8 `yaml:"survival"`
	Birth    []uint8 `yaml:"birth"`
	States   uint8   `yaml:"states"`
	Topology string  `yaml:"topology"` // "moore" or "von-neumann"
	Color    struct {
		Mode      string     `yaml:"mode"` // single, state, center, neighbor
		Primary   [4]float32 `yaml:"primary"`
		Secondary [4]float32 `yaml:"secondary"`
	} `yaml:"color"`
}

// Rule converts the preset into an executable Rule.
func (p Preset) Rule() (Rule, error) {
	r := Rule{
		Survival: NewNeighborSet(p.Survival...),
		Birth:    NewNeighborSet(p.Birth...),
		States:   p.States,
	}
	if r.States < 1 {
		return Rule{}, fmt.Errorf("preset %q: states must be >= 1, got %d", p.Name, p.States)
	}
	switch p.Topology {
	case "", "moore":
		r.Topology = Moore
	case "von-neumann", "vonneumann":
		r.Topology = VonNeumann
	default:
		return Rule{}, fmt.Errorf("preset %q: unknown topology %q", p.Name, p.Topology)
	}
	return r, nil
}

// ColorMethod converts the preset's color section.
func (p Preset) ColorMethod() (ColorMethod, error) {
	m := ColorMethod{
		Primary:   RGBA{p.Color.Primary[0], p.Color.Primary[1], p.Color.Primary[2], p.Color.Primary[3]},
		Secondary: RGBA{p.Color.Secondary[0], p.Color.Secondary[1], p.Color.Secondary[2], p.Color.Secondary[3]},
	}
	switch p.Color.Mode {
	case "", "single":
		m.Mode = ColorSingle
	case "state":
		m.Mode = ColorStateLerp
	case "center":
		m.Mode = ColorDistToCenter
	case "neighbor":
		m.Mode = ColorNeighborLerp
	default:
		return ColorMethod{}, fmt.Errorf("preset %q: unknown color mode %q", p.Name, p.Color.Mode)
	}
	return m, nil
}

// LoadPresets reads additional presets from a YAML file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}
	for _, p := range doc.Presets {
		if _, err := p.Rule(); err != nil {
			return nil, err
		}
		if _, err := p.ColorMethod(); err != nil {
			return nil, err
		}
	}
	return doc.Presets, nil
}

// Builtin returns the presets that ship with the binary. The first
// entry is the default rule.
func Builtin() []Preset {
	mk := func(name string, survival, birth []uint8, states uint8, topology, mode string, primary, secondary [4]float32) Preset {
		p := Preset{Name: name, Survival: survival, Birth: birth, States: states, Topology: topology}
		p.Color.Mode = mode
		p.Color.Primary = primary
		p.Color.Secondary = secondary
		return p
	}
	red := [4]float32{0.9, 0.15, 0.1, 1}
	yellow := [4]float32{0.95, 0.85, 0.2, 1}
	blue := [4]float32{0.15, 0.3, 0.9, 1}
	green := [4]float32{0.2, 0.85, 0.3, 1}
	white := [4]float32{0.95, 0.95, 0.95, 1}
	purple := [4]float32{0.6, 0.2, 0.8, 1}

	return []Preset{
		mk("builder", []uint8{2, 6, 9}, []uint8{4, 6, 8, 9, 10}, 10,
			"moore", "center", red, yellow),
		mk("445", []uint8{4}, []uint8{4}, 5,
			"moore", "state", purple, white),
		mk("clouds", rangeCounts(13, 26), []uint8{13, 14, 17, 18, 19}, 2,
			"moore", "center", white, blue),
		mk("amoeba", rangeCounts(9, 26), []uint8{5, 6, 7, 12, 13, 15}, 20,
			"moore", "state", blue, yellow),
		mk("pyroclastic", []uint8{4, 5, 6, 7}, []uint8{6, 7, 8}, 10,
			"moore", "state", red, yellow),
		mk("von-neumann-growth", []uint8{0, 1, 2, 3, 4, 5, 6}, []uint8{1, 3}, 2,
			"von-neumann", "center", blue, green),
	}
}

func rangeCounts(lo, hi uint8) []uint8 {
	out := make([]uint8, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		out = append(out, c)
	}
	return out
}
