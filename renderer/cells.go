// Package renderer draws the lattice with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lattice/camera"
	"github.com/pthm-cable/lattice/sim"
)

// CellRenderer renders extracted cell instances as cubes around the
// world origin (the grid center maps to the origin).
type CellRenderer struct {
	cam rl.Camera3D
}

// NewCellRenderer creates a new cell renderer.
func NewCellRenderer() *CellRenderer {
	return &CellRenderer{
		cam: rl.Camera3D{
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       50,
			Projection: rl.CameraPerspective,
		},
	}
}

// Draw renders one frame: the bounding wireframe plus one cube per
// instance, viewed through the orbit camera.
func (r *CellRenderer) Draw(instances []sim.Instance, bound int32, orbit *camera.Orbit) {
	x, y, z := orbit.Position()
	r.cam.Position = rl.NewVector3(x, y, z)
	r.cam.Target = rl.NewVector3(orbit.TargetX, orbit.TargetY, orbit.TargetZ)

	rl.BeginMode3D(r.cam)

	size := float32(bound)
	rl.DrawCubeWires(rl.NewVector3(0, 0, 0), size, size, size, rl.Gray)

	for i := range instances {
		in := &instances[i]
		rl.DrawCube(
			rl.NewVector3(in.X, in.Y, in.Z),
			in.Scale, in.Scale, in.Scale,
			toColor(in.Color.R, in.Color.G, in.Color.B, in.Color.A),
		)
	}

	rl.EndMode3D()
}

func toColor(r, g, b, a float32) rl.Color {
	return rl.NewColor(clamp8(r), clamp8(g), clamp8(b), clamp8(a))
}

func clamp8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
