// Package ui provides the HUD drawing helpers shared by the
// visualizer's overlay panels.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds the HUD's colors and metrics.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color

	FontSize       int32
	HeaderFontSize int32
	LineHeight     int32
	LabelWidth     int32
}

// DefaultTheme returns the standard dark HUD theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.NewColor(20, 22, 28, 215),
		PanelBorder:    rl.NewColor(70, 75, 90, 255),
		SectionHeader:  rl.NewColor(240, 200, 90, 255),
		LabelColor:     rl.NewColor(160, 165, 180, 255),
		ValueColor:     rl.NewColor(235, 238, 245, 255),
		FontSize:       16,
		HeaderFontSize: 18,
		LineHeight:     22,
		LabelWidth:     110,
	}
}
