package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sceneedit"
)

// keyCodes maps ebiten keys to the DOM key codes the editor binds.
var keyCodes = map[ebiten.Key]sceneedit.KeyCode{
	ebiten.KeyW:          sceneedit.KeyW,
	ebiten.KeyA:          sceneedit.KeyA,
	ebiten.KeyS:          sceneedit.KeyS,
	ebiten.KeyD:          sceneedit.KeyD,
	ebiten.KeyE:          sceneedit.KeyE,
	ebiten.KeyQ:          sceneedit.KeyQ,
	ebiten.KeyF:          sceneedit.KeyF,
	ebiten.KeyArrowUp:    sceneedit.KeyArrowUp,
	ebiten.KeyArrowDown:  sceneedit.KeyArrowDown,
	ebiten.KeyArrowLeft:  sceneedit.KeyArrowLeft,
	ebiten.KeyArrowRight: sceneedit.KeyArrowRight,
	ebiten.KeySpace:      sceneedit.KeySpace,
	ebiten.KeyBackspace:  sceneedit.KeyBackspace,
	ebiten.KeyDelete:     sceneedit.KeyDelete,
	ebiten.KeyDigit1:     sceneedit.KeyDigit1,
	ebiten.KeyDigit2:     sceneedit.KeyDigit2,
	ebiten.KeyDigit3:     sceneedit.KeyDigit3,
}

// mouseButtons maps ebiten buttons to editor buttons, in polling order.
var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	sb sceneedit.MouseButton
}{
	{ebiten.MouseButtonLeft, sceneedit.MouseButtonLeft},
	{ebiten.MouseButtonMiddle, sceneedit.MouseButtonMiddle},
	{ebiten.MouseButtonRight, sceneedit.MouseButtonRight},
}

// inputState tracks what is needed to turn polled input into events.
type inputState struct {
	lastX, lastY float64
	seen         bool
	keys         []ebiten.Key
}

// poll reads this tick's mouse, wheel and keyboard input and forwards it to
// ed as events: presses, then motion, then releases.
func (in *inputState) poll(ed *sceneedit.Editor) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	var dx, dy float64
	if in.seen {
		dx, dy = x-in.lastX, y-in.lastY
	}
	in.lastX, in.lastY, in.seen = x, y, true

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			ed.HandlePointerDown(sceneedit.PointerEvent{Button: b.sb, ClientX: x, ClientY: y})
		}
	}
	if dx != 0 || dy != 0 {
		ed.HandlePointerMove(sceneedit.PointerEvent{ClientX: x, ClientY: y, MovementX: dx, MovementY: dy})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			ed.HandlePointerUp(sceneedit.PointerEvent{Button: b.sb, ClientX: x, ClientY: y})
		}
	}

	// Ebiten reports positive Y for scrolling up; the editor uses the DOM sign.
	if _, wy := ebiten.Wheel(); wy != 0 {
		ed.HandleWheel(sceneedit.WheelEvent{DeltaY: -wy})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if code, ok := keyCodes[k]; ok {
			ed.HandleKeyDown(sceneedit.KeyEvent{Code: code})
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if code, ok := keyCodes[k]; ok {
			ed.HandleKeyUp(sceneedit.KeyEvent{Code: code})
		}
	}
}
