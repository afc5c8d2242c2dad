package sceneedit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// decomposeEpsilon guards against dividing by a collapsed scale axis.
const decomposeEpsilon = 1e-12

// LocalMatrix composes the node's local transform.
//
// Composition order:
//
//	Scale -> Rotate -> Translate(Position)
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := n.Rotation.Normalize().Mat4()
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns parent.World * local, walking up to the root.
// The tree is small and edits are interactive, so nothing is cached.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// SetFromMatrix replaces the node's local position, rotation and scale with
// the decomposition of m.
func (n *Node) SetFromMatrix(m mgl64.Mat4) {
	n.Position, n.Rotation, n.Scale = decompose(m)
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// WorldRotation returns the node's orientation in world space.
func (n *Node) WorldRotation() mgl64.Quat {
	_, r, _ := decompose(n.WorldMatrix())
	return r
}

// WorldScale returns the node's scale in world space.
func (n *Node) WorldScale() mgl64.Vec3 {
	_, _, s := decompose(n.WorldMatrix())
	return s
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// WorldToLocal converts a world-space point to this node's local space.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return n.WorldMatrix().Inv().Mul4x1(p.Vec4(1)).Vec3()
}

// --- Transform property setters ---

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = mgl64.Vec3{x, y, z}
}

// SetScale sets the node's local scale.
func (n *Node) SetScale(x, y, z float64) {
	n.Scale = mgl64.Vec3{x, y, z}
}

// SetRotationEuler sets the node's local rotation from XYZ Euler angles in radians.
func (n *Node) SetRotationEuler(x, y, z float64) {
	n.Rotation = mgl64.AnglesToQuat(x, y, z, mgl64.XYZ)
}

// decompose splits an affine matrix into translation, rotation and scale.
// A negative determinant is folded into the X scale.
func decompose(m mgl64.Mat4) (pos mgl64.Vec3, rot mgl64.Quat, scale mgl64.Vec3) {
	c0 := m.Col(0).Vec3()
	c1 := m.Col(1).Vec3()
	c2 := m.Col(2).Vec3()

	sx, sy, sz := c0.Len(), c1.Len(), c2.Len()
	if m.Det() < 0 {
		sx = -sx
	}
	pos = m.Col(3).Vec3()
	scale = mgl64.Vec3{sx, sy, sz}

	if math.Abs(sx) < decomposeEpsilon || math.Abs(sy) < decomposeEpsilon || math.Abs(sz) < decomposeEpsilon {
		return pos, mgl64.QuatIdent(), scale
	}
	r := mgl64.Mat3FromCols(c0.Mul(1/sx), c1.Mul(1/sy), c2.Mul(1/sz))
	rot = mgl64.Mat4ToQuat(r.Mat4()).Normalize()
	return pos, rot, scale
}
