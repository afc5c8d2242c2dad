package sceneedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// focusAnim holds an active focus tween. The tween runs from 0 to 1 and
// interpolates the camera between from and to.
type focusAnim struct {
	from, to mgl64.Vec3
	tween    *gween.Tween
}

var (
	worldUp      = mgl64.Vec3{0, 1, 0}
	localForward = mgl64.Vec3{0, 0, -1}
	localRight   = mgl64.Vec3{1, 0, 0}
)

// Camera is the viewport's perspective camera. It looks down its local -Z
// axis with +Y up.
type Camera struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat

	Fov    float64 // vertical field of view in degrees
	Aspect float64
	Near   float64
	Far    float64

	focus *focusAnim
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{
		Rotation: mgl64.QuatIdent(),
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// newCameraFromConfig creates the editor camera at its configured start pose.
func newCameraFromConfig(cfg Config) *Camera {
	c := NewCamera(cfg.Fov, 1, cfg.Near, cfg.Far)
	c.Position = vec3(cfg.CameraPosition)
	c.LookAt(vec3(cfg.CameraTarget))
	return c
}

// --- Orientation ---

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Rotation.Rotate(localForward)
}

// Right returns the unit right vector.
func (c *Camera) Right() mgl64.Vec3 {
	return c.Rotation.Rotate(localRight)
}

// Up returns the unit up vector.
func (c *Camera) Up() mgl64.Vec3 {
	return c.Rotation.Rotate(worldUp)
}

// LookAt rotates the camera so it faces target, without roll. No-op when
// target coincides with the camera position.
func (c *Camera) LookAt(target mgl64.Vec3) {
	d := target.Sub(c.Position)
	l := d.Len()
	if l == 0 {
		return
	}
	d = d.Mul(1 / l)
	yaw := math.Atan2(-d.X(), -d.Z())
	pitch := math.Asin(clamp(d.Y(), -1, 1))
	c.setEuler(pitch, yaw, 0)
}

// Euler returns the camera orientation as pitch (X), yaw (Y) and roll (Z)
// angles applied in YXZ order.
func (c *Camera) Euler() (pitch, yaw, roll float64) {
	m := c.Rotation.Normalize().Mat4()
	m13, m23, m33 := m.At(0, 2), m.At(1, 2), m.At(2, 2)
	pitch = math.Asin(-clamp(m23, -1, 1))
	if math.Abs(m23) < 0.9999999 {
		yaw = math.Atan2(m13, m33)
		roll = math.Atan2(m.At(1, 0), m.At(1, 1))
	} else {
		yaw = math.Atan2(-m.At(2, 0), m.At(0, 0))
	}
	return pitch, yaw, roll
}

func (c *Camera) setEuler(pitch, yaw, roll float64) {
	q := mgl64.QuatRotate(yaw, worldUp).
		Mul(mgl64.QuatRotate(pitch, localRight)).
		Mul(mgl64.QuatRotate(roll, mgl64.Vec3{0, 0, 1}))
	c.Rotation = q.Normalize()
}

// Look applies a pointer-lock style rotation: dx turns around world up, dy
// tilts the view. Pitch is clamped so the camera never flips over the poles.
func (c *Camera) Look(dx, dy, sensitivity float64) {
	pitch, yaw, roll := c.Euler()
	yaw -= dx * sensitivity
	pitch -= dy * sensitivity
	pitch = clamp(pitch, -math.Pi/2, math.Pi/2)
	c.setEuler(pitch, yaw, roll)
}

// --- Projection ---

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	world := mgl64.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).
		Mul4(c.Rotation.Normalize().Mat4())
	return world.Inv()
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// RayFromNDC returns the world-space ray from the camera through the given
// normalized device coordinates.
func (c *Camera) RayFromNDC(ndc Vec2) Ray {
	inv := c.ViewProjection().Inv()
	p := inv.Mul4x1(mgl64.Vec4{ndc.X, ndc.Y, 0.5, 1})
	if p.W() != 0 {
		p = p.Mul(1 / p.W())
	}
	return NewRay(c.Position, p.Vec3().Sub(c.Position))
}

// Project converts a world point to NDC. ok is false for points behind
// the camera.
func (c *Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec3, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip.W()), true
}

// --- Focus animation ---

// FocusOn starts a tween that moves the camera along its current view
// direction until a sphere at center with the given radius fills the view.
// A non-positive duration jumps immediately.
func (c *Camera) FocusOn(center mgl64.Vec3, radius float64, duration float32, easeFn ease.TweenFunc) {
	if radius <= 0 {
		radius = 0.5
	}
	half := mgl64.DegToRad(c.Fov) / 2
	dist := radius / math.Sin(half)
	to := center.Sub(c.Forward().Mul(dist))

	if duration <= 0 {
		c.Position = to
		c.focus = nil
		return
	}
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	c.focus = &focusAnim{
		from:  c.Position,
		to:    to,
		tween: gween.New(0, 1, duration, easeFn),
	}
}

// Focusing reports whether a focus tween is running.
func (c *Camera) Focusing() bool {
	return c.focus != nil
}

// CancelFocus stops any running focus tween where it is.
func (c *Camera) CancelFocus() {
	c.focus = nil
}

// update advances the focus tween by dt seconds. Returns true if the camera
// moved.
func (c *Camera) update(dt float32) bool {
	if c.focus == nil {
		return false
	}
	t, done := c.focus.tween.Update(dt)
	f := c.focus
	c.Position = f.from.Add(f.to.Sub(f.from).Mul(float64(t)))
	if done {
		c.Position = f.to
		c.focus = nil
	}
	return true
}

// --- Helpers ---

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func vec3(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}
