// Package camera provides an orbiting 3D camera for viewing the
// lattice. Pure math; the game layer maps it onto the renderer's
// camera type.
package camera

import "math"

// Orbit circles a target point at a fixed distance, optionally
// auto-rotating around the vertical axis.
type Orbit struct {
	// Target is the point the camera looks at, world coordinates.
	TargetX, TargetY, TargetZ float32

	// Yaw rotates around the vertical (Y) axis; Pitch tilts above or
	// below the horizon. Radians.
	Yaw, Pitch float32

	// Dist is the distance from the target.
	Dist float32

	// AutoRotate is added to Yaw every second while enabled.
	AutoRotate float32
	Rotating   bool

	MinDist, MaxDist float32
}

// maxPitch keeps the camera off the poles, where yaw degenerates.
const maxPitch = math.Pi/2 - 0.05

// New creates a camera orbiting the origin at the given distance.
func New(dist float32) *Orbit {
	return &Orbit{
		Pitch:      0.4,
		Dist:       dist,
		AutoRotate: 0.25,
		Rotating:   true,
		MinDist:    4,
		MaxDist:    dist * 8,
	}
}

// Update advances the auto-rotation by dt seconds.
func (c *Orbit) Update(dt float32) {
	if c.Rotating {
		c.Yaw += c.AutoRotate * dt
		if c.Yaw > 2*math.Pi {
			c.Yaw -= 2 * math.Pi
		} else if c.Yaw < -2*math.Pi {
			c.Yaw += 2 * math.Pi
		}
	}
}

// Rotate applies manual yaw/pitch deltas, clamping pitch.
func (c *Orbit) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	} else if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Zoom moves the camera toward or away from the target, clamped to
// [MinDist, MaxDist].
func (c *Orbit) Zoom(delta float32) {
	c.Dist += delta
	if c.Dist < c.MinDist {
		c.Dist = c.MinDist
	} else if c.Dist > c.MaxDist {
		c.Dist = c.MaxDist
	}
}

// Position returns the camera's world position on its orbit sphere.
func (c *Orbit) Position() (x, y, z float32) {
	cosP := float32(math.Cos(float64(c.Pitch)))
	x = c.TargetX + c.Dist*cosP*float32(math.Sin(float64(c.Yaw)))
	y = c.TargetY + c.Dist*float32(math.Sin(float64(c.Pitch)))
	z = c.TargetZ + c.Dist*cosP*float32(math.Cos(float64(c.Yaw)))
	return x, y, z
}
