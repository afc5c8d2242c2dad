package sceneedit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(75, 4.0/3.0, 0.1, 5000)
	assertVec(t, "Forward", cam.Forward(), mgl64.Vec3{0, 0, -1}, epsilon)
	assertVec(t, "Right", cam.Right(), mgl64.Vec3{1, 0, 0}, epsilon)
	assertVec(t, "Up", cam.Up(), mgl64.Vec3{0, 1, 0}, epsilon)
	if cam.Focusing() {
		t.Error("new camera should not be focusing")
	}
}

func TestCameraFromConfig(t *testing.T) {
	cam := newCameraFromConfig(testConfig())
	assertVec(t, "Position", cam.Position, mgl64.Vec3{0, 0, 10}, epsilon)
	assertVec(t, "Forward", cam.Forward(), mgl64.Vec3{0, 0, -1}, 1e-9)

	def := newCameraFromConfig(DefaultConfig())
	want := mgl64.Vec3{0, -1, -3}.Normalize()
	assertVec(t, "default Forward", def.Forward(), want, 1e-9)
}

func TestCameraLookAt(t *testing.T) {
	tests := []struct {
		name   string
		target mgl64.Vec3
		want   mgl64.Vec3
	}{
		{"ahead", mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, -1}},
		{"right", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 0, 0}},
		{"behind", mgl64.Vec3{0, 0, 3}, mgl64.Vec3{0, 0, 1}},
		{"up 45", mgl64.Vec3{0, 1, -1}, mgl64.Vec3{0, math.Sqrt2 / 2, -math.Sqrt2 / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(75, 1, 0.1, 100)
			cam.LookAt(tt.target)
			assertVec(t, "Forward", cam.Forward(), tt.want, 1e-9)
			if !approxEqual(cam.Right().Y(), 0, 1e-9) {
				t.Errorf("Right().Y = %v, want 0 (no roll)", cam.Right().Y())
			}
		})
	}
}

func TestCameraLookAtSelfIsNoop(t *testing.T) {
	cam := NewCamera(75, 1, 0.1, 100)
	cam.Position = mgl64.Vec3{1, 2, 3}
	cam.LookAt(cam.Position)
	if cam.Rotation != mgl64.QuatIdent() {
		t.Errorf("Rotation = %v, want identity", cam.Rotation)
	}
}

func TestCameraEulerRoundTrip(t *testing.T) {
	cam := NewCamera(75, 1, 0.1, 100)
	cam.setEuler(0.3, 1.0, -0.2)
	pitch, yaw, roll := cam.Euler()
	if !approxEqual(pitch, 0.3, 1e-9) || !approxEqual(yaw, 1.0, 1e-9) || !approxEqual(roll, -0.2, 1e-9) {
		t.Errorf("Euler = (%v, %v, %v), want (0.3, 1.0, -0.2)", pitch, yaw, roll)
	}
}

func TestCameraLookYaw(t *testing.T) {
	cam := testCamera()
	cam.Look(100, 0, 0.002)
	f := cam.Forward()
	if f.X() <= 0 {
		t.Errorf("Forward.X = %v, want > 0 after looking right", f.X())
	}
	if !approxEqual(f.Y(), 0, 1e-9) {
		t.Errorf("Forward.Y = %v, want 0", f.Y())
	}
	_, yaw, _ := cam.Euler()
	if !approxEqual(yaw, -0.2, 1e-9) {
		t.Errorf("yaw = %v, want -0.2", yaw)
	}
}

func TestCameraLookPitchClamped(t *testing.T) {
	cam := testCamera()
	cam.Look(0, 10000, 0.002)
	if !approxEqual(cam.Forward().Y(), -1, 1e-9) {
		t.Errorf("Forward.Y = %v, want -1", cam.Forward().Y())
	}

	cam = testCamera()
	cam.Look(0, -10000, 0.002)
	if !approxEqual(cam.Forward().Y(), 1, 1e-9) {
		t.Errorf("Forward.Y = %v, want 1", cam.Forward().Y())
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := testCamera()
	ndc, ok := cam.Project(mgl64.Vec3{0, 0, 0})
	if !ok {
		t.Fatal("origin should be in front of the camera")
	}
	if !approxEqual(ndc.X(), 0, 1e-9) || !approxEqual(ndc.Y(), 0, 1e-9) {
		t.Errorf("ndc = %v, want (0, 0)", ndc)
	}
	if _, ok := cam.Project(mgl64.Vec3{0, 0, 20}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraRayFromNDC(t *testing.T) {
	cam := testCamera()
	r := cam.RayFromNDC(Vec2{})
	assertVec(t, "Origin", r.Origin, cam.Position, epsilon)
	assertVec(t, "Direction", r.Direction, mgl64.Vec3{0, 0, -1}, 1e-9)

	// A point along any picking ray projects back to the same NDC.
	for _, p := range []Vec2{{0.5, 0.5}, {-0.8, 0.3}, {1, -1}} {
		ray := cam.RayFromNDC(p)
		ndc, ok := cam.Project(ray.At(7))
		if !ok {
			t.Fatalf("ray point for %v behind camera", p)
		}
		if !approxEqual(ndc.X(), p.X, 1e-6) || !approxEqual(ndc.Y(), p.Y, 1e-6) {
			t.Errorf("round trip %v -> %v", p, ndc)
		}
	}
}

func TestCameraProjectionZeroAspect(t *testing.T) {
	cam := NewCamera(75, 0, 0.1, 100)
	want := mgl64.Perspective(mgl64.DegToRad(75), 1, 0.1, 100)
	if cam.ProjectionMatrix() != want {
		t.Error("non-positive aspect should fall back to 1")
	}
}

// --- Focus ---

func focusDistance(fov, radius float64) float64 {
	return radius / math.Sin(mgl64.DegToRad(fov)/2)
}

func TestCameraFocusImmediate(t *testing.T) {
	cam := testCamera()
	cam.FocusOn(mgl64.Vec3{0, 0, 0}, 1, 0, nil)
	assertVec(t, "Position", cam.Position, mgl64.Vec3{0, 0, focusDistance(75, 1)}, 1e-9)
	if cam.Focusing() {
		t.Error("immediate focus should not leave a tween running")
	}
}

func TestCameraFocusTween(t *testing.T) {
	cam := testCamera()
	center := mgl64.Vec3{2, 0, -4}
	cam.FocusOn(center, 2, 0.4, ease.Linear)
	if !cam.Focusing() {
		t.Fatal("Focusing = false after FocusOn")
	}
	want := center.Add(mgl64.Vec3{0, 0, focusDistance(75, 2)})

	if !cam.update(0.2) {
		t.Fatal("update should report movement")
	}
	half := mgl64.Vec3{0, 0, 10}.Add(want).Mul(0.5)
	assertVec(t, "halfway", cam.Position, half, 1e-5)

	cam.update(0.3)
	assertVec(t, "end", cam.Position, want, 1e-9)
	if cam.Focusing() {
		t.Error("tween should be finished")
	}
	if cam.update(0.1) {
		t.Error("update after finish should report no movement")
	}
}

func TestCameraCancelFocus(t *testing.T) {
	cam := testCamera()
	cam.FocusOn(mgl64.Vec3{}, 1, 1, nil)
	cam.update(0.1)
	pos := cam.Position
	cam.CancelFocus()
	cam.update(0.5)
	if cam.Position != pos {
		t.Errorf("Position moved after CancelFocus: %v -> %v", pos, cam.Position)
	}
}

func TestCameraFocusDefaultRadius(t *testing.T) {
	cam := testCamera()
	cam.FocusOn(mgl64.Vec3{}, 0, 0, nil)
	assertVec(t, "Position", cam.Position, mgl64.Vec3{0, 0, focusDistance(75, 0.5)}, 1e-9)
}
