package sceneedit

import "fmt"

// Vec2 is a 2D vector used for screen-space positions and pointer deltas.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in client (pixel) coordinates. The origin
// is at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// MouseButton identifies a pointer button. Values follow DOM button numbering.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 0 // primary button
	MouseButtonMiddle MouseButton = 1 // wheel button
	MouseButtonRight  MouseButton = 2 // secondary button
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// CursorShape is the cursor the viewport surface should display.
type CursorShape uint8

const (
	CursorDefault  CursorShape = iota // platform arrow
	CursorGrab                        // open hand, wheel button held
	CursorGrabbing                    // closed hand, wheel-panning
)

func (c CursorShape) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}

// TransformMode selects the manipulation the transform gizmo performs.
type TransformMode uint8

const (
	TransformTranslate TransformMode = iota
	TransformRotate
	TransformScale
)

func (m TransformMode) String() string {
	switch m {
	case TransformRotate:
		return "rotate"
	case TransformScale:
		return "scale"
	default:
		return "translate"
	}
}

// ParseTransformMode converts "translate", "rotate" or "scale" to a mode.
func ParseTransformMode(s string) (TransformMode, error) {
	switch s {
	case "translate":
		return TransformTranslate, nil
	case "rotate":
		return TransformRotate, nil
	case "scale":
		return TransformScale, nil
	}
	return TransformTranslate, fmt.Errorf("sceneedit: unknown transform mode %q", s)
}

// KeyCode is a physical key identifier using DOM KeyboardEvent.code names.
type KeyCode string

const (
	KeyW          KeyCode = "KeyW"
	KeyA          KeyCode = "KeyA"
	KeyS          KeyCode = "KeyS"
	KeyD          KeyCode = "KeyD"
	KeyE          KeyCode = "KeyE"
	KeyQ          KeyCode = "KeyQ"
	KeyF          KeyCode = "KeyF"
	KeyArrowUp    KeyCode = "ArrowUp"
	KeyArrowDown  KeyCode = "ArrowDown"
	KeyArrowLeft  KeyCode = "ArrowLeft"
	KeyArrowRight KeyCode = "ArrowRight"
	KeySpace      KeyCode = "Space"
	KeyBackspace  KeyCode = "Backspace"
	KeyDelete     KeyCode = "Delete"
	KeyDigit1     KeyCode = "Digit1"
	KeyDigit2     KeyCode = "Digit2"
	KeyDigit3     KeyCode = "Digit3"
)

// PointerEvent is a pointer down, move or up event in client coordinates.
// MovementX and MovementY are the deltas since the previous move event.
type PointerEvent struct {
	Button    MouseButton
	ClientX   float64
	ClientY   float64
	MovementX float64
	MovementY float64
}

// WheelEvent is a scroll event. Positive DeltaY scrolls down (away from the
// content), matching the DOM convention.
type WheelEvent struct {
	DeltaY float64
}

// KeyEvent is a key-down or key-up event.
type KeyEvent struct {
	Code KeyCode
}
