package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/sceneedit"
)

var (
	colorGrid     = color.RGBA{0x3a, 0x3a, 0x44, 0xff}
	colorNode     = color.RGBA{0xb0, 0xb0, 0xb8, 0xff}
	colorSelected = color.RGBA{0xff, 0xc8, 0x30, 0xff}
	colorGlyph    = color.RGBA{0xff, 0xff, 0xff, 0xc0}
	colorHUDBack  = color.RGBA{0, 0, 0, 0x80}
	axisColors    = [3]color.RGBA{
		{0xe0, 0x40, 0x40, 0xff},
		{0x40, 0xe0, 0x40, 0xff},
		{0x40, 0x70, 0xff, 0xff},
	}
)

// boxEdges lists corner index pairs of Box.Corners forming the 12 edges.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

const (
	gridHalfExtent = 10
	lineWidth      = 1
)

// renderer draws a wireframe view of the editor scenes.
type renderer struct {
	cam  *sceneedit.Camera
	w, h float64
}

// toScreen projects a world point to pixels. ok is false behind the camera.
func (r *renderer) toScreen(p mgl64.Vec3) (x, y float32, ok bool) {
	ndc, ok := r.cam.Project(p)
	if !ok {
		return 0, 0, false
	}
	return float32((ndc.X() + 1) / 2 * r.w), float32((1 - ndc.Y()) / 2 * r.h), true
}

func (r *renderer) line(dst *ebiten.Image, a, b mgl64.Vec3, clr color.Color) {
	x0, y0, ok0 := r.toScreen(a)
	x1, y1, ok1 := r.toScreen(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(dst, x0, y0, x1, y1, lineWidth, clr, true)
}

func (r *renderer) grid(dst *ebiten.Image) {
	for i := -gridHalfExtent; i <= gridHalfExtent; i++ {
		f := float64(i)
		r.line(dst, mgl64.Vec3{f, 0, -gridHalfExtent}, mgl64.Vec3{f, 0, gridHalfExtent}, colorGrid)
		r.line(dst, mgl64.Vec3{-gridHalfExtent, 0, f}, mgl64.Vec3{gridHalfExtent, 0, f}, colorGrid)
	}
}

// box draws n.Bounds transformed by the node's world matrix.
func (r *renderer) box(dst *ebiten.Image, n *sceneedit.Node, clr color.Color) {
	world := n.WorldMatrix()
	corners := n.Bounds.Corners()
	var pts [8]mgl64.Vec3
	for i, c := range corners {
		pts[i] = world.Mul4x1(c.Vec4(1)).Vec3()
	}
	for _, e := range boxEdges {
		r.line(dst, pts[e[0]], pts[e[1]], clr)
	}
}

// scene draws every visible node with bounds. Bones are drawn as a line to
// their parent.
func (r *renderer) scene(dst *ebiten.Image, s *sceneedit.Scene, selected *sceneedit.Node) {
	s.Walk(func(n *sceneedit.Node) bool {
		if !n.Visible {
			return true
		}
		clr := color.Color(colorNode)
		if n == selected {
			clr = colorSelected
		}
		if n.Bounds != nil {
			r.box(dst, n, clr)
		}
		if n.Kind == sceneedit.KindBone && n.Parent() != nil && n.Parent().Kind == sceneedit.KindBone {
			r.line(dst, n.Parent().WorldPosition(), n.WorldPosition(), clr)
		}
		return true
	})
}

// gizmo draws the transform gizmo's axis handles.
func (r *renderer) gizmo(dst *ebiten.Image, g sceneedit.Gizmo) {
	h := g.Helper()
	if h == nil || !h.Visible {
		return
	}
	for i, c := range h.Children() {
		if c.Bounds == nil || i >= len(axisColors) {
			continue
		}
		r.box(dst, c, axisColors[i])
	}
}

// lockGlyph draws the pointer-lock indicator at the surface position.
func lockGlyph(dst *ebiten.Image, s *surface, size float64) {
	if !s.indicatorShown {
		return
	}
	half := float32(size / 2)
	cx := float32(s.indicatorX) + half
	cy := float32(s.indicatorY) + half
	vector.StrokeCircle(dst, cx, cy, half-1, 2, colorGlyph, true)
	vector.StrokeLine(dst, cx-half/2, cy, cx+half/2, cy, 2, colorGlyph, true)
	vector.StrokeLine(dst, cx, cy-half/2, cx, cy+half/2, 2, colorGlyph, true)
}

// hud draws the status overlay: FPS, transform mode and selection.
func hud(dst *ebiten.Image, ed *sceneedit.Editor) {
	sel := "none"
	if n := ed.SelectedObject(); n != nil {
		sel = fmt.Sprintf("%s (%s)", n.Name, n.Kind)
	}
	msg := fmt.Sprintf("FPS: %.1f\nmode: %s\nstate: %s\nselected: %s",
		ebiten.ActualFPS(), ed.Selection().TransformMode(), ed.Controls().State(), sel)
	vector.DrawFilledRect(dst, 0, 0, 260, 68, colorHUDBack, false)
	ebitenutil.DebugPrint(dst, msg)
}
