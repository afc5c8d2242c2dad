// Package ebitenview hosts a sceneedit.Editor in an Ebitengine window or, when
// built for js/wasm, a browser canvas.
package ebitenview

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sceneedit"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowHUD bool
	// ClearColor fills the screen before drawing. Zero means a dark grey.
	ClearColor color.RGBA
}

var defaultClearColor = color.RGBA{0x1e, 0x1e, 0x24, 0xff}

// Game implements ebiten.Game around an Editor. It provides the editor's
// surface, pointer lock and frame scheduler.
type Game struct {
	editor  *sceneedit.Editor
	sched   *sceneedit.ManualScheduler
	surface *surface
	input   inputState
	start   time.Time
	cfg     RunConfig
	closed  bool
}

// NewGame mounts ed on a new ebiten host.
func NewGame(ed *sceneedit.Editor, cfg RunConfig) (*Game, error) {
	if cfg.ClearColor == (color.RGBA{}) {
		cfg.ClearColor = defaultClearColor
	}
	g := &Game{
		editor:  ed,
		sched:   sceneedit.NewManualScheduler(),
		surface: &surface{width: float64(cfg.Width), height: float64(cfg.Height)},
		start:   time.Now(),
		cfg:     cfg,
	}
	if err := ed.Mount(g.surface, cursorLock{}, g.sched); err != nil {
		return nil, err
	}
	return g, nil
}

// Close dismounts the editor. The next Update ends the game.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.editor.Dismount()
}

// Update forwards input and runs the editor's frame callbacks.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}
	g.input.poll(g.editor)
	now := float64(time.Since(g.start).Microseconds()) / 1000
	g.sched.Advance(now)
	return nil
}

// Draw renders the wireframe view.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	if g.closed {
		return
	}
	r := renderer{cam: g.editor.Camera(), w: g.surface.width, h: g.surface.height}
	r.grid(screen)
	r.scene(screen, g.editor.Scene(), g.editor.SelectedObject())
	r.gizmo(screen, g.editor.Gizmo())
	lockGlyph(screen, g.surface, g.editor.Config().LockGlyphSize)
	if g.cfg.ShowHUD {
		hud(screen, g.editor)
	}
}

// Layout tracks the window size and keeps the camera aspect in sync.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.surface.resize(outsideWidth, outsideHeight) {
		g.editor.Resize()
	}
	return outsideWidth, outsideHeight
}

// Run opens a window, mounts ed and blocks until the window closes.
func Run(ed *sceneedit.Editor, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	g, err := NewGame(ed, cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}
