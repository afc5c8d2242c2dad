package sceneedit

// syntheticKind selects the handler a synthetic event is routed to.
type syntheticKind uint8

const (
	synthPointerDown syntheticKind = iota
	synthPointerMove
	synthPointerUp
	synthWheel
	synthKeyDown
	synthKeyUp
)

// syntheticEvent is one queued input event. Client coordinates are used,
// identical to real pointer input.
type syntheticEvent struct {
	kind    syntheticKind
	pointer PointerEvent
	wheel   WheelEvent
	key     KeyEvent
}

// InjectPointerDown queues a press of button at the given client point. The
// event is consumed on a later frame, one event per frame.
func (e *Editor) InjectPointerDown(button MouseButton, x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind:    synthPointerDown,
		pointer: PointerEvent{Button: button, ClientX: x, ClientY: y},
	})
}

// InjectPointerMove queues a move to (x, y) with movement (dx, dy).
func (e *Editor) InjectPointerMove(x, y, dx, dy float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind:    synthPointerMove,
		pointer: PointerEvent{ClientX: x, ClientY: y, MovementX: dx, MovementY: dy},
	})
}

// InjectPointerUp queues a release of button at the given client point.
func (e *Editor) InjectPointerUp(button MouseButton, x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind:    synthPointerUp,
		pointer: PointerEvent{Button: button, ClientX: x, ClientY: y},
	})
}

// InjectClick queues a left press and release at the same point. Consumes
// two frames.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPointerDown(MouseButtonLeft, x, y)
	e.InjectPointerUp(MouseButtonLeft, x, y)
}

// InjectDrag queues a full drag with button: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and release
// at (toX, toY). The sequence consumes frames frames, minimum 2.
func (e *Editor) InjectDrag(button MouseButton, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPointerDown(button, fromX, fromY)
	steps := frames - 2
	px, py := fromX, fromY
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		e.InjectPointerMove(x, y, x-px, y-py)
		px, py = x, y
	}
	e.InjectPointerUp(button, toX, toY)
}

// InjectWheel queues a wheel event.
func (e *Editor) InjectWheel(deltaY float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{
		kind:  synthWheel,
		wheel: WheelEvent{DeltaY: deltaY},
	})
}

// InjectKeyDown queues a key press.
func (e *Editor) InjectKeyDown(code KeyCode) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthKeyDown, key: KeyEvent{Code: code}})
}

// InjectKeyUp queues a key release.
func (e *Editor) InjectKeyUp(code KeyCode) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthKeyUp, key: KeyEvent{Code: code}})
}

// InjectKey queues a press and release of code. Consumes two frames.
func (e *Editor) InjectKey(code KeyCode) {
	e.InjectKeyDown(code)
	e.InjectKeyUp(code)
}

// PendingInput returns the number of queued synthetic events.
func (e *Editor) PendingInput() int { return len(e.injectQueue) }

// processInjected pops one event from the queue and routes it. Returns true
// if an event was consumed.
func (e *Editor) processInjected() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	ev := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch ev.kind {
	case synthPointerDown:
		e.HandlePointerDown(ev.pointer)
	case synthPointerMove:
		e.HandlePointerMove(ev.pointer)
	case synthPointerUp:
		e.HandlePointerUp(ev.pointer)
	case synthWheel:
		e.HandleWheel(ev.wheel)
	case synthKeyDown:
		e.HandleKeyDown(ev.key)
	case synthKeyUp:
		e.HandleKeyUp(ev.key)
	}
	return true
}
