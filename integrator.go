package sceneedit

import "github.com/go-gl/mathgl/mgl64"

// Integrator moves the camera each frame according to the held movement
// flags. Speed is constant while a key is held; there is no momentum.
type Integrator struct {
	controls *Controls
	speed    float64
	maxDelta float64

	prev     float64
	started  bool
	delta    float64
	velocity mgl64.Vec3
}

// NewIntegrator creates an integrator reading flags from controls and moving
// controls' camera.
func NewIntegrator(controls *Controls, cfg Config) *Integrator {
	return &Integrator{
		controls: controls,
		speed:    cfg.MoveSpeed,
		maxDelta: cfg.MaxFrameDelta,
	}
}

// Step advances the camera to the frame time now, in milliseconds. The
// elapsed time is capped at the configured maximum frame delta. The first
// call only records the time. Returns true if the camera moved.
func (g *Integrator) Step(now float64) bool {
	if !g.started {
		g.started = true
		g.prev = now
		g.delta = 0
		g.velocity = g.Velocity()
		return false
	}
	g.delta = clamp((now-g.prev)/1000, 0, g.maxDelta)
	g.prev = now

	g.velocity = g.Velocity()
	if g.velocity.Len() == 0 || g.delta == 0 {
		return false
	}
	g.controls.MoveBy(g.velocity.Mul(g.delta))
	return true
}

// Velocity computes the velocity implied by the current flags and camera
// orientation, in world units per second.
func (g *Integrator) Velocity() mgl64.Vec3 {
	cam := g.controls.camera
	if cam == nil {
		return mgl64.Vec3{}
	}
	f := g.controls.flags
	fwd := axisSign(f.Forward, f.Backward)
	right := axisSign(f.Right, f.Left)
	up := axisSign(f.Up, f.Down)

	var v mgl64.Vec3
	if fwd != 0 {
		v = v.Add(cam.Forward().Mul(fwd))
	}
	if right != 0 {
		v = v.Add(cam.Right().Mul(right))
	}
	if up != 0 {
		v = v.Add(worldUp.Mul(up))
	}
	return v.Mul(g.speed)
}

// LastVelocity returns the velocity used by the most recent Step.
func (g *Integrator) LastVelocity() mgl64.Vec3 { return g.velocity }

// LastDelta returns the capped frame delta, in seconds, of the most recent Step.
func (g *Integrator) LastDelta() float64 { return g.delta }

// Reset forgets the previous frame time.
func (g *Integrator) Reset() {
	g.started = false
	g.delta = 0
	g.velocity = mgl64.Vec3{}
}

// axisSign is +1, -1 or 0 for a pair of opposing flags.
func axisSign(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}
