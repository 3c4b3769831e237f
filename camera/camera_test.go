package camera

import (
	"math"
	"testing"
)

func TestPositionOnSphere(t *testing.T) {
	cam := New(100)

	// Distance from target must equal Dist for any orientation.
	for _, yaw := range []float32{0, 1, 2.5, -1.3} {
		for _, pitch := range []float32{0, 0.5, -0.8, 1.2} {
			cam.Yaw = yaw
			cam.Pitch = pitch
			if pitch > maxPitch {
				cam.Pitch = maxPitch
			}
			x, y, z := cam.Position()
			d := math.Sqrt(float64(x*x + y*y + z*z))
			if math.Abs(d-100) > 0.01 {
				t.Errorf("yaw=%f pitch=%f: distance %f, want 100", yaw, cam.Pitch, d)
			}
		}
	}
}

func TestPositionTracksTarget(t *testing.T) {
	cam := New(50)
	cam.TargetX, cam.TargetY, cam.TargetZ = 10, 20, 30
	cam.Yaw, cam.Pitch = 0, 0

	x, y, z := cam.Position()
	if math.Abs(float64(x-10)) > 0.01 || math.Abs(float64(y-20)) > 0.01 || math.Abs(float64(z-80)) > 0.01 {
		t.Errorf("position = (%f, %f, %f), want (10, 20, 80)", x, y, z)
	}
}

func TestAutoRotate(t *testing.T) {
	cam := New(50)
	cam.Yaw = 0
	cam.AutoRotate = 1.0

	cam.Update(0.5)
	if math.Abs(float64(cam.Yaw-0.5)) > 1e-6 {
		t.Errorf("yaw = %f, want 0.5", cam.Yaw)
	}

	cam.Rotating = false
	cam.Update(0.5)
	if math.Abs(float64(cam.Yaw-0.5)) > 1e-6 {
		t.Errorf("yaw advanced while rotation disabled: %f", cam.Yaw)
	}
}

func TestPitchClamp(t *testing.T) {
	cam := New(50)
	cam.Rotate(0, 10)
	if cam.Pitch > maxPitch {
		t.Errorf("pitch %f exceeds clamp", cam.Pitch)
	}
	cam.Rotate(0, -20)
	if cam.Pitch < -maxPitch {
		t.Errorf("pitch %f exceeds negative clamp", cam.Pitch)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(50)
	cam.Zoom(-1000)
	if cam.Dist != cam.MinDist {
		t.Errorf("dist = %f, want MinDist %f", cam.Dist, cam.MinDist)
	}
	cam.Zoom(1e6)
	if cam.Dist != cam.MaxDist {
		t.Errorf("dist = %f, want MaxDist %f", cam.Dist, cam.MaxDist)
	}
}
