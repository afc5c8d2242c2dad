package sceneedit

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

var (
	// ErrMounted is returned by Mount when the editor is already mounted.
	ErrMounted = errors.New("sceneedit: editor already mounted")
	// ErrNoScheduler is returned by Mount without a frame scheduler.
	ErrNoScheduler = errors.New("sceneedit: nil frame scheduler")
)

// EditorEventType identifies a kind of editor notification.
type EditorEventType uint8

const (
	EventSceneChanged     EditorEventType = iota // tree or selection changed
	EventSelectionChanged                        // the selected node changed
	EventCameraChanged                           // the camera moved or turned
)

func (t EditorEventType) String() string {
	switch t {
	case EventSelectionChanged:
		return "selection-changed"
	case EventCameraChanged:
		return "camera-changed"
	default:
		return "scene-changed"
	}
}

// EditorEvent carries a notification to an EventSink. NodeID and NodeName
// describe the selection (zero when nothing is selected).
type EditorEvent struct {
	Type           EditorEventType
	NodeID         uint64
	NodeName       string
	CameraPosition mgl64.Vec3
}

// EventSink receives editor notifications, e.g. for an ECS bridge.
type EventSink interface {
	EmitEvent(event EditorEvent)
}

// gizmoHandles is implemented by gizmos whose handles can be grabbed with
// the pointer.
type gizmoHandles interface {
	HandleAt(ray Ray) (axis int, ok bool)
	BeginDrag(axis int)
	DragPointer(movementX, movementY float64)
	EndDrag()
}

// Option configures an Editor.
type Option func(*Editor)

// WithScene edits an existing scene instead of a new empty one.
func WithScene(s *Scene) Option {
	return func(e *Editor) { e.scene = s }
}

// WithGizmo replaces the default TransformGizmo.
func WithGizmo(g Gizmo) Option {
	return func(e *Editor) { e.gizmo = g }
}

// WithRaycaster replaces the default BoundsRaycaster.
func WithRaycaster(r Raycaster) Option {
	return func(e *Editor) { e.raycaster = r }
}

// Editor owns the viewport state: the edited scene, a helper scene for the
// gizmo, the camera, and the controllers that connect input to them. Create
// with New, attach to a host with Mount and release with Dismount.
type Editor struct {
	cfg Config
	log *slog.Logger

	scene      *Scene
	helpers    *Scene
	camera     *Camera
	controls   *Controls
	integrator *Integrator
	selection  *Selection
	picker     *Picker
	gizmo      Gizmo
	raycaster  Raycaster
	loop       *FrameLoop

	surface Surface
	lock    PointerLock
	mounted bool
	subs    subscriptionSet

	sink         EventSink
	lastSelected *Node

	injectQueue []syntheticEvent
	runner      *ScriptRunner
}

// New creates an unmounted editor.
func New(cfg Config, opts ...Option) *Editor {
	e := &Editor{
		cfg: cfg,
		log: cfg.logger().With("component", "editor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.scene == nil {
		e.scene = NewScene()
	}
	e.scene.SetLogger(cfg.logger())
	e.scene.SetDebugMode(cfg.Debug)
	if e.gizmo == nil {
		e.gizmo = NewTransformGizmo(cfg.GizmoSize)
	}

	e.helpers = NewScene()
	e.helpers.SetLogger(cfg.logger())
	if h := e.gizmo.Helper(); h != nil {
		e.helpers.root.AddChild(h)
	}

	e.camera = newCameraFromConfig(cfg)
	e.controls = NewControls(e.camera, cfg)
	e.controls.OnLeftDown = e.onLeftDown
	e.integrator = NewIntegrator(e.controls, cfg)
	e.selection = NewSelection(e.scene, e.gizmo)
	e.picker = NewPicker(e.scene, e.camera, e.selection, e.raycaster)
	e.picker.Exclude = e.gizmo.Helper
	return e
}

// --- Accessors ---

// Scene returns the edited scene.
func (e *Editor) Scene() *Scene { return e.scene }

// Helpers returns the scene holding editor-only nodes such as the gizmo.
func (e *Editor) Helpers() *Scene { return e.helpers }

// Camera returns the viewport camera.
func (e *Editor) Camera() *Camera { return e.camera }

// Controls returns the input controls.
func (e *Editor) Controls() *Controls { return e.controls }

// Integrator returns the fly-movement integrator.
func (e *Editor) Integrator() *Integrator { return e.integrator }

// Selection returns the selection controller.
func (e *Editor) Selection() *Selection { return e.selection }

// Picker returns the click picker.
func (e *Editor) Picker() *Picker { return e.picker }

// Gizmo returns the transform gizmo.
func (e *Editor) Gizmo() Gizmo { return e.gizmo }

// Config returns the editor's settings.
func (e *Editor) Config() Config { return e.cfg }

// Mounted reports whether the editor is attached to a host.
func (e *Editor) Mounted() bool { return e.mounted }

// Running reports whether the frame loop is scheduled.
func (e *Editor) Running() bool { return e.loop != nil && e.loop.Running() }

// SetEventSink forwards editor notifications to sink. Nil disables forwarding.
func (e *Editor) SetEventSink(sink EventSink) { e.sink = sink }

// --- Lifecycle ---

// Mount attaches the editor to a host surface, pointer lock and frame
// scheduler and starts the frame loop. surface and lock may be nil.
func (e *Editor) Mount(surface Surface, lock PointerLock, sched FrameScheduler) error {
	if e.mounted {
		return ErrMounted
	}
	if sched == nil {
		return fmt.Errorf("mount: %w", ErrNoScheduler)
	}
	e.surface = surface
	e.lock = lock
	e.controls.SetSurface(surface)
	e.controls.SetPointerLock(lock)
	e.Resize()

	if dn, ok := e.gizmo.(DragNotifier); ok {
		e.subs.add(dn.OnDraggingChanged(func(dragging bool) {
			e.controls.SetEnabled(!dragging)
		}))
	}
	e.subs.add(e.scene.Subscribe(e.onSceneChanged))
	e.subs.add(e.controls.OnChange(e.onCameraChanged))
	e.lastSelected = e.selection.Current()

	e.integrator.Reset()
	e.loop = NewFrameLoop(sched, e.frame)
	e.loop.Start()
	e.mounted = true
	e.log.Info("editor mounted", "nodes", e.scene.Len())
	return nil
}

// Dismount stops the frame loop, releases the pointer lock, restores the
// cursor, clears input state and detaches every editor subscription. Safe to
// call more than once.
func (e *Editor) Dismount() {
	if !e.mounted {
		return
	}
	e.loop.Stop()
	if g, ok := e.gizmo.(gizmoHandles); ok && e.gizmo.Dragging() {
		g.EndDrag()
	}
	e.controls.Reset()
	e.controls.SetEnabled(true)
	e.subs.removeAll()
	e.camera.CancelFocus()

	e.controls.SetSurface(nil)
	e.controls.SetPointerLock(nil)
	e.surface = nil
	e.lock = nil
	e.injectQueue = e.injectQueue[:0]
	e.mounted = false
	e.log.Info("editor dismounted")
}

// Resize updates the camera aspect ratio from the surface bounds.
func (e *Editor) Resize() {
	if e.surface == nil {
		return
	}
	b := e.surface.Bounds()
	if b.Empty() {
		e.log.Debug("resize ignored", "reason", "empty surface")
		return
	}
	e.camera.Aspect = b.Width / b.Height
}

// frame is the per-frame step run by the loop.
func (e *Editor) frame(now float64) {
	var stats debugStats
	var t0 time.Time
	if e.cfg.Debug {
		t0 = time.Now()
		stats.frame = e.loop.Frames()
	}

	if e.runner != nil {
		e.runner.step(e)
	}
	stats.injected = e.processInjected()

	if e.cfg.Debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	e.integrator.Step(now)
	if e.camera.update(float32(e.integrator.LastDelta())) {
		e.controls.notifyChange()
	}
	if g, ok := e.gizmo.(interface{ Sync() }); ok {
		g.Sync()
	}

	if e.cfg.Debug {
		stats.integrateTime = time.Since(t0)
		stats.velocity = e.integrator.LastVelocity().Len()
		e.debugLog(stats)
	}
}

// --- Input routing ---

// HandlePointerDown routes a pointer press. A left press on a gizmo handle
// starts a gizmo drag; otherwise the controls get it and an accepted left
// press picks.
func (e *Editor) HandlePointerDown(ev PointerEvent) {
	if !e.mounted {
		return
	}
	if ev.Button == MouseButtonLeft && e.beginGizmoDrag(ev) {
		return
	}
	e.controls.PointerDown(ev)
}

// HandlePointerMove routes pointer motion to the gizmo drag or the controls.
func (e *Editor) HandlePointerMove(ev PointerEvent) {
	if !e.mounted {
		return
	}
	if g, ok := e.gizmo.(gizmoHandles); ok && e.gizmo.Dragging() {
		g.DragPointer(ev.MovementX, ev.MovementY)
		return
	}
	e.controls.PointerMove(ev)
}

// HandlePointerUp ends a gizmo drag, then lets the controls clear their state.
func (e *Editor) HandlePointerUp(ev PointerEvent) {
	if !e.mounted {
		return
	}
	if g, ok := e.gizmo.(gizmoHandles); ok && e.gizmo.Dragging() {
		g.EndDrag()
	}
	e.controls.PointerUp(ev)
}

// HandleWheel routes a wheel event to the controls.
func (e *Editor) HandleWheel(ev WheelEvent) {
	if !e.mounted {
		return
	}
	e.controls.Wheel(ev)
}

// HandleKeyDown routes a key press: movement keys to the controls, then the
// editor shortcuts.
func (e *Editor) HandleKeyDown(ev KeyEvent) {
	if !e.mounted {
		return
	}
	if e.controls.KeyDown(ev.Code) {
		return
	}
	switch ev.Code {
	case KeyBackspace, KeyDelete:
		_ = e.RemoveObject(nil)
	case KeyF:
		e.FocusSelection()
	case KeyDigit1:
		e.SetTransformMode(TransformTranslate)
	case KeyDigit2:
		e.SetTransformMode(TransformRotate)
	case KeyDigit3:
		e.SetTransformMode(TransformScale)
	}
}

// HandleKeyUp routes a key release to the controls.
func (e *Editor) HandleKeyUp(ev KeyEvent) {
	if !e.mounted {
		return
	}
	e.controls.KeyUp(ev.Code)
}

func (e *Editor) onLeftDown(ev PointerEvent) {
	if e.gizmo.Dragging() {
		return
	}
	e.PickAt(ev.ClientX, ev.ClientY)
}

// beginGizmoDrag starts a gizmo drag if the press lands on a handle.
func (e *Editor) beginGizmoDrag(ev PointerEvent) bool {
	g, ok := e.gizmo.(gizmoHandles)
	if !ok || e.surface == nil || e.controls.State() != StateIdle || !e.controls.Enabled() {
		return false
	}
	ndc, ok := PointerToNDC(ev.ClientX, ev.ClientY, e.surface.Bounds())
	if !ok {
		return false
	}
	axis, hit := g.HandleAt(e.camera.RayFromNDC(ndc))
	if !hit {
		return false
	}
	g.BeginDrag(axis)
	return e.gizmo.Dragging()
}

// PickAt selects the next node under the client point. Returns the newly
// selected node, or nil if nothing was hit.
func (e *Editor) PickAt(clientX, clientY float64) *Node {
	if e.surface == nil {
		e.log.Debug("pick ignored", "reason", "no surface")
		return nil
	}
	return e.picker.Pick(clientX, clientY, e.surface.Bounds())
}

// --- Scene operations for UI panels ---

// Subscribe registers fn to run after every scene or selection change.
func (e *Editor) Subscribe(fn func()) Subscription { return e.scene.Subscribe(fn) }

// Unsubscribe removes a subscription made with Subscribe.
func (e *Editor) Unsubscribe(sub Subscription) { e.scene.Unsubscribe(sub) }

// Roots returns the scene's top-level nodes.
func (e *Editor) Roots() []*Node { return e.scene.Roots() }

// SelectedObject returns the selected node, or nil.
func (e *Editor) SelectedObject() *Node { return e.selection.Current() }

// SetSelectedObject selects node, or clears the selection for nil.
func (e *Editor) SetSelectedObject(node *Node) { e.selection.Set(node) }

// RemoveObject removes node (nil for the selection) from the scene.
func (e *Editor) RemoveObject(node *Node) error {
	if err := e.scene.RemoveNode(node); err != nil {
		e.log.Debug("remove failed", "err", err)
		return err
	}
	return nil
}

// SetTransformMode switches the gizmo between translate, rotate and scale.
func (e *Editor) SetTransformMode(mode TransformMode) {
	e.selection.SetTransformMode(mode)
}

// AddObject adds node under the scene root and selects it.
func (e *Editor) AddObject(node *Node) error {
	if err := e.scene.Add(node); err != nil {
		return fmt.Errorf("add object: %w", err)
	}
	e.selection.Set(node)
	return nil
}

// AddToSelection adds node under the selected node, or under the scene root
// when nothing is selected.
func (e *Editor) AddToSelection(node *Node) error {
	parent := e.selection.Current()
	if parent == nil {
		parent = e.scene.root
	}
	if err := e.scene.AddChild(parent, node); err != nil {
		return fmt.Errorf("add to selection: %w", err)
	}
	return nil
}

// FocusSelection animates the camera so the selected subtree fills the view.
// Returns false when nothing is selected.
func (e *Editor) FocusSelection() bool {
	sel := e.selection.Current()
	if sel == nil {
		e.log.Debug("focus ignored", "reason", "nothing selected")
		return false
	}
	center := sel.WorldPosition()
	radius := 0.0
	if box, ok := subtreeBounds(sel); ok {
		center = box.Center()
		radius = box.Size().Len() / 2
	}
	e.camera.FocusOn(center, radius, float32(e.cfg.FocusDuration), ease.OutCubic)
	return true
}

// subtreeBounds returns the world box enclosing every Bounds in n's subtree.
func subtreeBounds(n *Node) (Box, bool) {
	var out Box
	found := false
	walkPreOrder(n, func(c *Node) bool {
		if c.Bounds == nil {
			return true
		}
		b := c.Bounds.Transform(c.WorldMatrix())
		if found {
			out = out.Union(b)
		} else {
			out = b
			found = true
		}
		return true
	})
	return out, found
}

// --- Notifications ---

func (e *Editor) onSceneChanged() {
	sel := e.selection.Current()
	changed := sel != e.lastSelected
	e.lastSelected = sel
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(e.selectionEvent(EventSceneChanged, sel))
	if changed {
		e.sink.EmitEvent(e.selectionEvent(EventSelectionChanged, sel))
	}
}

func (e *Editor) onCameraChanged() {
	if e.sink == nil {
		return
	}
	ev := e.selectionEvent(EventCameraChanged, e.selection.Current())
	e.sink.EmitEvent(ev)
}

func (e *Editor) selectionEvent(t EditorEventType, sel *Node) EditorEvent {
	ev := EditorEvent{Type: t, CameraPosition: e.camera.Position}
	if sel != nil {
		ev.NodeID = sel.ID
		ev.NodeName = sel.Name
	}
	return ev
}
