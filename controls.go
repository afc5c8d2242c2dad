package sceneedit

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PointerLock captures the pointer so that motion arrives as unbounded
// deltas. Locking may complete asynchronously, so Locked is polled.
type PointerLock interface {
	Lock()
	Unlock()
	Locked() bool
}

// Surface is the element the viewport renders into.
type Surface interface {
	// Bounds returns the surface rectangle in client coordinates.
	Bounds() Rect
	SetCursor(shape CursorShape)
	// ShowLockIndicator places the pointer-lock glyph with its top-left
	// corner at (x, y), relative to the surface.
	ShowLockIndicator(x, y float64)
	HideLockIndicator()
}

// PointerMode is the button that owns the current pointer interaction.
type PointerMode uint8

const (
	PointerNone PointerMode = iota
	PointerLeft
	PointerRight
	PointerWheel
)

// InteractionState is the controls' pointer state machine state.
type InteractionState uint8

const (
	StateIdle InteractionState = iota
	StateLeft
	StateRightNotDragging
	StateRightDragging
	StateWheel
)

func (s InteractionState) String() string {
	switch s {
	case StateLeft:
		return "left"
	case StateRightNotDragging:
		return "right"
	case StateRightDragging:
		return "right-dragging"
	case StateWheel:
		return "wheel"
	default:
		return "idle"
	}
}

// PointerState is the per-interaction pointer bookkeeping. ActiveMode is set
// by exactly one pointer-down and cleared by the next pointer-up.
type PointerState struct {
	ActiveMode PointerMode
	Dragging   bool
	DragStart  Vec2
	Locked     bool
}

// MovementFlags records which fly directions are held.
type MovementFlags struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
}

// Any reports whether any direction is held.
func (f MovementFlags) Any() bool {
	return f.Forward || f.Backward || f.Left || f.Right || f.Up || f.Down
}

// movementKey selects one MovementFlags field.
type movementKey uint8

const (
	moveForward movementKey = iota
	moveBackward
	moveLeft
	moveRight
	moveUp
	moveDown
)

// movementBindings maps physical keys to fly directions.
var movementBindings = map[KeyCode]movementKey{
	KeyArrowUp:    moveForward,
	KeyW:          moveForward,
	KeyArrowDown:  moveBackward,
	KeyS:          moveBackward,
	KeyArrowLeft:  moveLeft,
	KeyA:          moveLeft,
	KeyArrowRight: moveRight,
	KeyD:          moveRight,
	KeySpace:      moveUp,
	KeyE:          moveUp,
	KeyQ:          moveDown,
}

func (f *MovementFlags) set(k movementKey, v bool) {
	switch k {
	case moveForward:
		f.Forward = v
	case moveBackward:
		f.Backward = v
	case moveLeft:
		f.Left = v
	case moveRight:
		f.Right = v
	case moveUp:
		f.Up = v
	case moveDown:
		f.Down = v
	}
}

// Controls turns pointer, wheel and key events into camera motion. Pointer
// interactions are mutually exclusive: a press is ignored while another
// button's interaction is active.
type Controls struct {
	camera  *Camera
	lock    PointerLock
	surface Surface

	dragThreshold   float64
	panSpeed        float64
	zoomStep        float64
	lookSensitivity float64
	glyphHalf       float64

	pointer PointerState
	flags   MovementFlags
	enabled bool
	change  Emitter[struct{}]

	// OnLeftDown runs when a left press is accepted.
	OnLeftDown func(ev PointerEvent)

	log *slog.Logger
}

// NewControls creates controls driving camera with the settings from cfg.
func NewControls(camera *Camera, cfg Config) *Controls {
	return &Controls{
		camera:          camera,
		dragThreshold:   cfg.DragThreshold,
		panSpeed:        cfg.PanSpeed,
		zoomStep:        cfg.ZoomStep,
		lookSensitivity: cfg.LookSensitivity,
		glyphHalf:       cfg.LockGlyphSize / 2,
		enabled:         true,
		log:             cfg.logger().With("component", "controls"),
	}
}

// SetSurface sets the surface used for cursor and lock-indicator feedback.
func (c *Controls) SetSurface(s Surface) { c.surface = s }

// SetPointerLock sets the pointer lock collaborator.
func (c *Controls) SetPointerLock(l PointerLock) { c.lock = l }

// Pointer returns a copy of the pointer state.
func (c *Controls) Pointer() PointerState { return c.pointer }

// Flags returns the held movement directions.
func (c *Controls) Flags() MovementFlags { return c.flags }

// Enabled reports whether pointer presses and wheel events are processed.
func (c *Controls) Enabled() bool { return c.enabled }

// SetEnabled toggles pointer and wheel handling. Keyboard flags keep working.
func (c *Controls) SetEnabled(enabled bool) { c.enabled = enabled }

// OnChange registers fn to run after every camera mutation.
func (c *Controls) OnChange(fn func()) Subscription {
	return c.change.Subscribe(func(struct{}) { fn() })
}

func (c *Controls) notifyChange() {
	c.change.Emit(struct{}{})
}

// State derives the state machine state from the pointer state.
func (c *Controls) State() InteractionState {
	switch c.pointer.ActiveMode {
	case PointerLeft:
		return StateLeft
	case PointerRight:
		if c.pointer.Dragging {
			return StateRightDragging
		}
		return StateRightNotDragging
	case PointerWheel:
		return StateWheel
	}
	return StateIdle
}

// --- Pointer events ---

// PointerDown starts an interaction for ev.Button. It returns false when the
// press was ignored: controls disabled, another interaction active, or an
// unknown button.
func (c *Controls) PointerDown(ev PointerEvent) bool {
	if !c.enabled {
		return false
	}
	if c.pointer.ActiveMode != PointerNone {
		c.log.Debug("pointer down ignored", "button", ev.Button, "state", c.State())
		return false
	}
	switch ev.Button {
	case MouseButtonLeft:
		c.pointer.ActiveMode = PointerLeft
		if c.OnLeftDown != nil {
			c.OnLeftDown(ev)
		}
	case MouseButtonRight:
		c.pointer.ActiveMode = PointerRight
		c.pointer.DragStart = Vec2{X: ev.ClientX, Y: ev.ClientY}
	case MouseButtonMiddle:
		c.pointer.ActiveMode = PointerWheel
		c.setCursor(CursorGrab)
	default:
		return false
	}
	return true
}

// PointerMove advances the active interaction.
func (c *Controls) PointerMove(ev PointerEvent) {
	switch c.pointer.ActiveMode {
	case PointerRight:
		if !c.pointer.Dragging {
			c.maybeStartDrag(ev)
			return
		}
		if c.lock == nil {
			return
		}
		// A refused or pending lock is requested again on every move.
		if !c.lock.Locked() {
			c.lock.Lock()
			c.pointer.Locked = c.lock.Locked()
			return
		}
		c.pointer.Locked = true
		c.look(ev.MovementX, ev.MovementY)
	case PointerWheel:
		c.setCursor(CursorGrabbing)
		c.pan(ev.MovementX, ev.MovementY)
	}
}

// maybeStartDrag promotes a right press to a look drag once the pointer has
// travelled DragThreshold pixels on either axis.
func (c *Controls) maybeStartDrag(ev PointerEvent) {
	dx := math.Abs(ev.ClientX - c.pointer.DragStart.X)
	dy := math.Abs(ev.ClientY - c.pointer.DragStart.Y)
	if math.Max(dx, dy) < c.dragThreshold {
		return
	}
	c.pointer.Dragging = true
	if c.lock == nil {
		c.log.Debug("pointer lock unavailable")
	} else {
		c.lock.Lock()
		c.pointer.Locked = c.lock.Locked()
	}
	if c.surface != nil {
		b := c.surface.Bounds()
		c.surface.ShowLockIndicator(ev.ClientX-b.X-c.glyphHalf, ev.ClientY-b.Y-c.glyphHalf)
	}
}

// PointerUp ends whatever interaction is active. Every mode is cleared
// regardless of which button was released.
func (c *Controls) PointerUp(ev PointerEvent) {
	if !c.enabled {
		return
	}
	c.endPointer()
}

// endPointer runs the left, right and wheel release handlers.
func (c *Controls) endPointer() {
	if c.pointer.Dragging {
		if c.lock != nil {
			c.lock.Unlock()
		}
		if c.surface != nil {
			c.surface.HideLockIndicator()
		}
	}
	c.pointer = PointerState{}
	c.setCursor(CursorDefault)
}

// Wheel zooms along the view direction by one step. Positive DeltaY moves
// backward.
func (c *Controls) Wheel(ev WheelEvent) {
	if !c.enabled || c.camera == nil {
		return
	}
	dir := c.camera.Forward()
	if ev.DeltaY > 0 {
		dir = dir.Mul(-1)
	}
	c.camera.Position = c.camera.Position.Add(dir.Mul(c.zoomStep))
	c.notifyChange()
}

// --- Keyboard ---

// KeyDown sets the movement flag bound to code. Returns false for unbound keys.
func (c *Controls) KeyDown(code KeyCode) bool {
	k, ok := movementBindings[code]
	if !ok {
		return false
	}
	c.flags.set(k, true)
	return true
}

// KeyUp clears the movement flag bound to code. Returns false for unbound keys.
func (c *Controls) KeyUp(code KeyCode) bool {
	k, ok := movementBindings[code]
	if !ok {
		return false
	}
	c.flags.set(k, false)
	return true
}

// --- Camera motion ---

// pan slides the camera in its view plane. Speed grows with distance from
// the origin.
func (c *Controls) pan(movementX, movementY float64) {
	if c.camera == nil {
		return
	}
	distance := c.camera.Position.Len()
	speed := c.panSpeed * math.Max(distance/10, 1)
	delta := c.camera.Right().Mul(-movementX * speed).
		Add(c.camera.Up().Mul(movementY * speed))
	c.camera.Position = c.camera.Position.Add(delta)
	c.notifyChange()
}

func (c *Controls) look(dx, dy float64) {
	if c.camera == nil || (dx == 0 && dy == 0) {
		return
	}
	c.camera.Look(dx, dy, c.lookSensitivity)
	c.notifyChange()
}

// MoveBy translates the camera by a world-space offset and emits a change.
func (c *Controls) MoveBy(offset mgl64.Vec3) {
	if c.camera == nil {
		return
	}
	c.camera.Position = c.camera.Position.Add(offset)
	c.notifyChange()
}

func (c *Controls) setCursor(shape CursorShape) {
	if c.surface != nil {
		c.surface.SetCursor(shape)
	}
}

// Reset abandons any interaction: the lock is released, the glyph hidden,
// the cursor restored and all movement flags cleared.
func (c *Controls) Reset() {
	c.endPointer()
	if c.lock != nil && c.lock.Locked() {
		c.lock.Unlock()
	}
	c.flags = MovementFlags{}
}
