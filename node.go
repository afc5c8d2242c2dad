package sceneedit

import (
	"github.com/go-gl/mathgl/mgl64"
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: the editor is single-threaded).
var nodeIDCounter uint64

func nextNodeID() uint64 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. A single flat struct is used for every
// kind; Kind selects the editor behavior through the kind table.
type Node struct {
	// Identity
	ID   uint64
	Name string
	Kind NodeKind

	// Hierarchy. parent is a lookup reference only; children own the tree.
	parent   *Node
	children []*Node

	// Transform (local)
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	// Bounds is the local-space box used for picking. Nil means the node
	// itself cannot be hit, though its children still can.
	Bounds *Box

	Visible bool

	// Metadata
	UserData any
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Rotation = mgl64.QuatIdent()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Visible = true
}

// NewNode creates a node of the given kind with an identity transform.
func NewNode(name string, kind NodeKind) *Node {
	n := &Node{Name: name, Kind: kind}
	nodeDefaults(n)
	return n
}

// NewGroup creates a grouping node.
func NewGroup(name string) *Node {
	return NewNode(name, KindGroup)
}

// NewMesh creates a mesh node whose geometry occupies the given local box.
func NewMesh(name string, bounds Box) *Node {
	n := NewNode(name, KindMesh)
	n.Bounds = &bounds
	return n
}

// NewSkinnedMesh creates a skinned mesh node whose bind-pose geometry
// occupies the given local box.
func NewSkinnedMesh(name string, bounds Box) *Node {
	n := NewNode(name, KindSkinnedMesh)
	n.Bounds = &bounds
	return n
}

// NewBone creates a skeleton joint.
func NewBone(name string) *Node {
	return NewNode(name, KindBone)
}

// NewCameraNode creates a node standing for a camera placed in the scene.
func NewCameraNode(name string) *Node {
	return NewNode(name, KindCamera)
}

// NewLight creates a light node.
func NewLight(name string) *Node {
	return NewNode(name, KindLight)
}

// --- Tree manipulation ---

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends child to this node's children, keeping child's local
// transform. If child already has a parent, it is removed from that parent
// first. Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sceneedit: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("sceneedit: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Attach appends child to this node's children while keeping child's world
// transform: its local transform is re-expressed relative to n.
// Same panics as AddChild.
func (n *Node) Attach(child *Node) {
	if child == nil {
		panic("sceneedit: cannot attach nil child")
	}
	if isAncestor(child, n) {
		panic("sceneedit: attaching child would create a cycle")
	}
	world := child.WorldMatrix()
	local := n.WorldMatrix().Inv().Mul4(world)
	n.AddChild(child)
	child.SetFromMatrix(local)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent() != n.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n {
		panic("sceneedit: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil || other == n {
		return false
	}
	return isAncestor(n, other)
}

// Root walks parent links up to the top of the node's tree.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of parent links between n and its root.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of node's ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
