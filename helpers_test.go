package sceneedit

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// vecNear and matNear compare component-wise by absolute difference.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}

func matNear(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}

func assertVec(t *testing.T, name string, got, want mgl64.Vec3, eps float64) {
	t.Helper()
	if !vecNear(got, want, eps) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Fakes ---

type fakeSurface struct {
	bounds    Rect
	cursor    CursorShape
	cursors   []CursorShape
	shown     bool
	indicator Vec2
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{bounds: Rect{Width: 800, Height: 600}}
}

func (s *fakeSurface) Bounds() Rect { return s.bounds }

func (s *fakeSurface) SetCursor(shape CursorShape) {
	s.cursor = shape
	s.cursors = append(s.cursors, shape)
}

func (s *fakeSurface) ShowLockIndicator(x, y float64) {
	s.shown = true
	s.indicator = Vec2{X: x, Y: y}
}

func (s *fakeSurface) HideLockIndicator() { s.shown = false }

type fakeLock struct {
	locked  bool
	refuse  bool
	locks   int
	unlocks int
}

func (l *fakeLock) Lock() {
	l.locks++
	if !l.refuse {
		l.locked = true
	}
}

func (l *fakeLock) Unlock() {
	l.unlocks++
	l.locked = false
}

func (l *fakeLock) Locked() bool { return l.locked }

// --- Builders ---

// testConfig places the camera at (0, 0, 10) looking down -Z.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CameraPosition = [3]float64{0, 0, 10}
	cfg.CameraTarget = [3]float64{0, 0, 0}
	cfg.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return cfg
}

// testCamera looks down -Z from (0, 0, 10) with an 800x600 aspect.
func testCamera() *Camera {
	c := NewCamera(75, 800.0/600.0, 0.1, 5000)
	c.Position = mgl64.Vec3{0, 0, 10}
	return c
}

// stackedScene returns a scene with three cubes of edge 4 on the -Z axis at
// z = 0, -3 and -6.
func stackedScene(t *testing.T) (s *Scene, a, b, c *Node) {
	t.Helper()
	s = NewScene()
	a = NewMesh("A", CubeBox(4))
	b = NewMesh("B", CubeBox(4))
	c = NewMesh("C", CubeBox(4))
	b.SetPosition(0, 0, -3)
	c.SetPosition(0, 0, -6)
	for _, n := range []*Node{a, b, c} {
		if err := s.Add(n); err != nil {
			t.Fatal(err)
		}
	}
	return s, a, b, c
}

type mountedEditor struct {
	*Editor
	surface *fakeSurface
	lock    *fakeLock
	sched   *ManualScheduler
	now     float64
}

// mountTestEditor mounts an editor on fakes with the camera looking down -Z.
func mountTestEditor(t *testing.T, opts ...Option) *mountedEditor {
	t.Helper()
	m := &mountedEditor{
		Editor:  New(testConfig(), opts...),
		surface: newFakeSurface(),
		lock:    &fakeLock{},
		sched:   NewManualScheduler(),
	}
	if err := m.Mount(m.surface, m.lock, m.sched); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	t.Cleanup(m.Dismount)
	return m
}

// advance runs n frames 16 ms apart.
func (m *mountedEditor) advance(n int) {
	for range n {
		m.now += 16
		m.sched.Advance(m.now)
	}
}

// drain runs frames until the injection queue is empty.
func (m *mountedEditor) drain() {
	for i := 0; i < 1000 && m.PendingInput() > 0; i++ {
		m.advance(1)
	}
}

// notifyCounter counts scene notifications.
func notifyCounter(s *Scene) *int {
	n := new(int)
	s.Subscribe(func() { *n++ })
	return n
}
