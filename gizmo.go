package sceneedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Gizmo is the on-screen manipulator attached to the selected node.
type Gizmo interface {
	Attach(node *Node)
	Detach()
	SetMode(mode TransformMode)
	Mode() TransformMode
	// Helper returns the root of the gizmo's own nodes. Picking never
	// returns nodes from this subtree.
	Helper() *Node
	Dragging() bool
}

// DragNotifier is implemented by gizmos that report drag start and end.
type DragNotifier interface {
	OnDraggingChanged(fn func(dragging bool)) Subscription
}

// Axis indices used by the gizmo handles.
const (
	AxisX = iota
	AxisY
	AxisZ
)

var axisVectors = [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

const (
	defaultGizmoSize      = 1.0
	gizmoHandleThickness  = 0.08
	minGizmoScaleFactor   = 0.01
	defaultGizmoDragSpeed = 0.01
)

// TransformGizmo is the default Gizmo: three axis handles that translate,
// rotate or scale the attached node along one axis at a time.
type TransformGizmo struct {
	helper  *Node
	handles [3]*Node
	target  *Node
	mode    TransformMode

	dragging bool
	dragAxis int
	changed  Emitter[bool]

	// DragSpeed converts pointer pixels into drag amounts.
	DragSpeed float64
}

// NewTransformGizmo builds the helper subtree with handles of the given length.
func NewTransformGizmo(size float64) *TransformGizmo {
	if size <= 0 {
		size = defaultGizmoSize
	}
	g := &TransformGizmo{
		helper:    NewGroup("TransformGizmo"),
		DragSpeed: defaultGizmoDragSpeed,
	}
	g.helper.Visible = false
	names := [3]string{"GizmoX", "GizmoY", "GizmoZ"}
	t := gizmoHandleThickness
	for axis := range g.handles {
		lo := mgl64.Vec3{-t, -t, -t}
		hi := mgl64.Vec3{t, t, t}
		hi[axis] = size
		h := NewMesh(names[axis], NewBox(lo, hi))
		h.UserData = axis
		g.handles[axis] = h
		g.helper.AddChild(h)
	}
	return g
}

// Attach follows node. The helper becomes visible.
func (g *TransformGizmo) Attach(node *Node) {
	g.target = node
	g.helper.Visible = node != nil
	g.Sync()
}

// Detach stops following any node and ends an active drag.
func (g *TransformGizmo) Detach() {
	if g.dragging {
		g.EndDrag()
	}
	g.target = nil
	g.helper.Visible = false
}

// Target returns the attached node, or nil.
func (g *TransformGizmo) Target() *Node { return g.target }

// SetMode selects the manipulation performed by drags.
func (g *TransformGizmo) SetMode(mode TransformMode) { g.mode = mode }

// Mode returns the current manipulation.
func (g *TransformGizmo) Mode() TransformMode { return g.mode }

// Helper returns the gizmo's helper subtree root.
func (g *TransformGizmo) Helper() *Node { return g.helper }

// Handle returns the handle node for axis.
func (g *TransformGizmo) Handle(axis int) *Node { return g.handles[axis] }

// Dragging reports whether a handle is being dragged.
func (g *TransformGizmo) Dragging() bool { return g.dragging }

// OnDraggingChanged registers fn to run when a drag starts or ends.
func (g *TransformGizmo) OnDraggingChanged(fn func(dragging bool)) Subscription {
	return g.changed.Subscribe(fn)
}

// Sync moves the helper onto the target's world position.
func (g *TransformGizmo) Sync() {
	if g.target == nil {
		return
	}
	g.helper.Position = g.target.WorldPosition()
}

// HandleAt returns the nearest handle axis hit by ray. ok is false when the
// gizmo is hidden or nothing is hit.
func (g *TransformGizmo) HandleAt(ray Ray) (axis int, ok bool) {
	if g.target == nil || !g.helper.Visible {
		return 0, false
	}
	hits := BoundsRaycaster{}.Intersect(ray, g.handles[:])
	if len(hits) == 0 {
		return 0, false
	}
	return hits[0].Node.UserData.(int), true
}

// BeginDrag starts dragging the handle for axis. No-op without a target.
func (g *TransformGizmo) BeginDrag(axis int) {
	if g.target == nil || g.dragging || axis < AxisX || axis > AxisZ {
		return
	}
	g.dragging = true
	g.dragAxis = axis
	g.changed.Emit(true)
}

// DragBy applies amount to the target along the active axis according to
// the current mode: world units for translate, radians for rotate, and a
// relative factor for scale.
func (g *TransformGizmo) DragBy(amount float64) {
	if !g.dragging || g.target == nil || amount == 0 {
		return
	}
	axis := axisVectors[g.dragAxis]
	n := g.target
	switch g.mode {
	case TransformTranslate:
		world := n.WorldPosition().Add(axis.Mul(amount))
		if n.parent != nil {
			world = n.parent.WorldToLocal(world)
		}
		n.Position = world
	case TransformRotate:
		n.Rotation = n.Rotation.Mul(mgl64.QuatRotate(amount, axis)).Normalize()
	case TransformScale:
		f := math.Max(1+amount, minGizmoScaleFactor)
		n.Scale[g.dragAxis] *= f
	}
	g.Sync()
}

// DragPointer converts pointer movement into a drag along the active axis.
func (g *TransformGizmo) DragPointer(movementX, movementY float64) {
	g.DragBy((movementX - movementY) * g.DragSpeed)
}

// EndDrag finishes the active drag.
func (g *TransformGizmo) EndDrag() {
	if !g.dragging {
		return
	}
	g.dragging = false
	g.changed.Emit(false)
}
