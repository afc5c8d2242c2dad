package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sceneedit"
)

// cursorLock implements sceneedit.PointerLock with ebiten's cursor capture.
// In browsers capture maps to the Pointer Lock API and may be refused, so
// Locked reports the actual cursor mode.
type cursorLock struct{}

func (cursorLock) Lock()   { ebiten.SetCursorMode(ebiten.CursorModeCaptured) }
func (cursorLock) Unlock() { ebiten.SetCursorMode(ebiten.CursorModeVisible) }

func (cursorLock) Locked() bool {
	return ebiten.CursorMode() == ebiten.CursorModeCaptured
}

// cursorShapes maps editor cursors to ebiten cursor shapes. Ebiten has no
// open/closed hand, so grab uses the pointer and grabbing the move cursor.
var cursorShapes = map[sceneedit.CursorShape]ebiten.CursorShapeType{
	sceneedit.CursorDefault:  ebiten.CursorShapeDefault,
	sceneedit.CursorGrab:     ebiten.CursorShapePointer,
	sceneedit.CursorGrabbing: ebiten.CursorShapeMove,
}

// surface implements sceneedit.Surface for the ebiten screen. The game
// window is the whole surface, so bounds start at the origin.
type surface struct {
	width, height float64
	cursor        sceneedit.CursorShape

	indicatorShown bool
	indicatorX     float64
	indicatorY     float64
}

func (s *surface) Bounds() sceneedit.Rect {
	return sceneedit.Rect{Width: s.width, Height: s.height}
}

func (s *surface) SetCursor(shape sceneedit.CursorShape) {
	s.cursor = shape
	if cs, ok := cursorShapes[shape]; ok {
		ebiten.SetCursorShape(cs)
	}
}

func (s *surface) ShowLockIndicator(x, y float64) {
	s.indicatorShown = true
	s.indicatorX, s.indicatorY = x, y
}

func (s *surface) HideLockIndicator() {
	s.indicatorShown = false
}

// resize updates the surface size. Returns true if it changed.
func (s *surface) resize(w, h int) bool {
	fw, fh := float64(w), float64(h)
	if fw == s.width && fh == s.height {
		return false
	}
	s.width, s.height = fw, fh
	return true
}
