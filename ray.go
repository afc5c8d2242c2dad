package sceneedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl64.Vec3
}

// NewBox creates a box from two corners, swapping components so Min <= Max.
func NewBox(a, b mgl64.Vec3) Box {
	return Box{
		Min: mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])},
		Max: mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])},
	}
}

// CubeBox returns a box of edge length size centered on the origin.
func CubeBox(size float64) Box {
	h := size / 2
	return Box{Min: mgl64.Vec3{-h, -h, -h}, Max: mgl64.Vec3{h, h, h}}
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extents along each axis.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
	}
}

// Transform returns the axis-aligned box enclosing b after applying m.
func (b Box) Transform(m mgl64.Mat4) Box {
	corners := b.Corners()
	out := Box{Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}, Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}}
	for _, c := range corners {
		p := m.Mul4x1(c.Vec4(1)).Vec3()
		for i := 0; i < 3; i++ {
			out.Min[i] = math.Min(out.Min[i], p[i])
			out.Max[i] = math.Max(out.Max[i], p[i])
		}
	}
	return out
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	return NewBox(
		mgl64.Vec3{math.Min(b.Min[0], other.Min[0]), math.Min(b.Min[1], other.Min[1]), math.Min(b.Min[2], other.Min[2])},
		mgl64.Vec3{math.Max(b.Max[0], other.Max[0]), math.Max(b.Max[1], other.Max[1]), math.Max(b.Max[2], other.Max[2])},
	)
}

// Ray is a half-line in 3D space. Direction is normalized by the constructors.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a ray, normalizing dir.
func NewRay(origin, dir mgl64.Vec3) Ray {
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: origin, Direction: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBox tests the ray against an axis-aligned box using the slab
// method. Returns the ray parameter of the entry point, or of the exit point
// when the origin lies inside the box. Direction need not be normalized; t is
// expressed in units of Direction.
func (r Ray) IntersectBox(box Box) (t float64, hit bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin[axis]
		d := r.Direction[axis]
		if d != 0 {
			t1 := (box.Min[axis] - o) / d
			t2 := (box.Max[axis] - o) / d
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tmin = math.Max(tmin, t1)
			tmax = math.Min(tmax, t2)
		} else if o < box.Min[axis] || o > box.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// PointerToNDC converts client pixel coordinates to normalized device
// coordinates relative to bounds: x in [-1, 1] left to right, y in [-1, 1]
// bottom to top. ok is false when bounds has no area.
func PointerToNDC(clientX, clientY float64, bounds Rect) (ndc Vec2, ok bool) {
	if bounds.Empty() {
		return Vec2{}, false
	}
	return Vec2{
		X: ((clientX-bounds.X)/bounds.Width)*2 - 1,
		Y: -((clientY-bounds.Y)/bounds.Height)*2 + 1,
	}, true
}
