package sceneedit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLocalMatrixIdentity(t *testing.T) {
	n := NewGroup("n")
	if !matNear(n.LocalMatrix(), mgl64.Ident4(), epsilon) {
		t.Errorf("LocalMatrix = %v, want identity", n.LocalMatrix())
	}
}

func TestLocalMatrixOrder(t *testing.T) {
	// Scale, then rotate 90 degrees about Y, then translate.
	n := NewGroup("n")
	n.SetScale(2, 1, 1)
	n.SetRotationEuler(0, math.Pi/2, 0)
	n.SetPosition(10, 0, 0)

	got := n.LocalToWorld(mgl64.Vec3{1, 0, 0})
	// (1,0,0) -> scale (2,0,0) -> rotY90 (0,0,-2) -> translate (10,0,-2)
	assertVec(t, "point", got, mgl64.Vec3{10, 0, -2}, 1e-9)
}

func TestWorldMatrixNested(t *testing.T) {
	root := NewGroup("root")
	root.SetPosition(1, 0, 0)
	root.SetScale(2, 2, 2)
	child := NewGroup("child")
	child.SetPosition(0, 3, 0)
	root.AddChild(child)

	assertVec(t, "WorldPosition", child.WorldPosition(), mgl64.Vec3{1, 6, 0}, epsilon)
	assertVec(t, "WorldScale", child.WorldScale(), mgl64.Vec3{2, 2, 2}, epsilon)
}

func TestWorldToLocalRoundTrip(t *testing.T) {
	p := NewGroup("p")
	p.SetPosition(3, -1, 2)
	p.SetRotationEuler(0.4, 1.1, -0.2)
	p.SetScale(1.5, 0.5, 2)
	c := NewGroup("c")
	c.SetPosition(1, 1, 1)
	p.AddChild(c)

	w := mgl64.Vec3{7, 8, 9}
	assertVec(t, "round trip", c.LocalToWorld(c.WorldToLocal(w)), w, 1e-9)
}

func TestSetFromMatrixRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		pos   mgl64.Vec3
		euler mgl64.Vec3
		scale mgl64.Vec3
	}{
		{"identity", mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}},
		{"translated", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}},
		{"rotated", mgl64.Vec3{}, mgl64.Vec3{0.3, -0.8, 1.2}, mgl64.Vec3{1, 1, 1}},
		{"non-uniform", mgl64.Vec3{-4, 0, 9}, mgl64.Vec3{0.1, 0.2, 0.3}, mgl64.Vec3{2, 0.5, 3}},
		{"mirrored", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{-1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewGroup("src")
			src.Position = tt.pos
			src.SetRotationEuler(tt.euler[0], tt.euler[1], tt.euler[2])
			src.Scale = tt.scale

			dst := NewGroup("dst")
			dst.SetFromMatrix(src.LocalMatrix())

			if !matNear(dst.LocalMatrix(), src.LocalMatrix(), 1e-9) {
				t.Errorf("matrix mismatch:\n%v\nwant\n%v", dst.LocalMatrix(), src.LocalMatrix())
			}
			assertVec(t, "Position", dst.Position, tt.pos, 1e-9)
		})
	}
}

func TestDecomposeCollapsedScale(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(0, 1, 1))
	pos, rot, scale := decompose(m)
	assertVec(t, "pos", pos, mgl64.Vec3{1, 2, 3}, epsilon)
	if rot != mgl64.QuatIdent() {
		t.Errorf("rot = %v, want identity", rot)
	}
	if scale[0] != 0 {
		t.Errorf("scale.x = %v, want 0", scale[0])
	}
}
