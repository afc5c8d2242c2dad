package sceneedit

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
)

var (
	// ErrNilNode is returned when an operation receives a nil node.
	ErrNilNode = errors.New("sceneedit: nil node")
	// ErrCycle is returned when a reparent would make a node its own ancestor.
	ErrCycle = errors.New("sceneedit: node would become its own ancestor")
	// ErrDetached is returned when a node is not attached under the scene root
	// or cannot be detached (the root itself).
	ErrDetached = errors.New("sceneedit: node is not attached to the scene")
)

// Scene owns the editable node tree and the change channel UI panels listen
// on. Every structural mutation made through Scene notifies subscribers
// exactly once.
type Scene struct {
	root      *Node
	listeners Emitter[struct{}]
	selection *Selection
	log       *slog.Logger
	debug     bool
}

// NewScene creates a scene with an empty root group.
func NewScene() *Scene {
	return &Scene{
		root: NewGroup("Scene"),
		log:  slog.Default().With("component", "scene"),
	}
}

// SetLogger replaces the scene's logger. A nil logger restores slog.Default.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.log = l.With("component", "scene")
}

// SetDebugMode enables tree-shape warnings on every AddChild.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Root returns the scene root.
func (s *Scene) Root() *Node {
	return s.root
}

// Roots returns the top-level nodes (the root's children). The returned
// slice MUST NOT be mutated.
func (s *Scene) Roots() []*Node {
	return s.root.children
}

// Contains reports whether n is the root or attached somewhere beneath it.
func (s *Scene) Contains(n *Node) bool {
	return n != nil && n.Root() == s.root
}

// Selected returns the currently selected node, or nil.
func (s *Scene) Selected() *Node {
	if s.selection == nil {
		return nil
	}
	return s.selection.Current()
}

// Add appends node under the scene root. See AddChild.
func (s *Scene) Add(node *Node) error {
	return s.AddChild(s.root, node)
}

// AddChild appends node to parent's children and notifies subscribers. When
// node already has a parent its world pose is kept and its local transform is
// re-expressed relative to parent.
func (s *Scene) AddChild(parent, node *Node) error {
	if parent == nil || node == nil {
		s.log.Debug("add child ignored", "reason", "nil node")
		return ErrNilNode
	}
	if !s.Contains(parent) {
		return fmt.Errorf("add %q under %q: %w", node.Name, parent.Name, ErrDetached)
	}
	if isAncestor(node, parent) {
		return fmt.Errorf("add %q under %q: %w", node.Name, parent.Name, ErrCycle)
	}

	if node.parent != nil {
		parent.Attach(node)
	} else {
		parent.AddChild(node)
	}

	if s.debug {
		debugCheckTreeDepth(s.log, node)
		debugCheckChildCount(s.log, parent)
	}
	s.Notify()
	return nil
}

// RemoveNode detaches node from its parent and notifies subscribers once. A
// nil node means the current selection. If the removed subtree contains the
// selection, the selection is cleared as part of the same notification.
func (s *Scene) RemoveNode(node *Node) error {
	if node == nil {
		node = s.Selected()
		if node == nil {
			s.log.Debug("remove ignored", "reason", "nothing selected")
			return ErrNilNode
		}
	}
	if node == s.root || node.parent == nil || !s.Contains(node) {
		s.log.Debug("remove ignored", "reason", "not removable", "node", node.Name)
		return fmt.Errorf("remove %q: %w", node.Name, ErrDetached)
	}

	sel := s.Selected()
	clearSel := sel != nil && (sel == node || node.IsAncestorOf(sel))

	node.RemoveFromParent()
	if clearSel {
		s.selection.clear()
	}
	s.Notify()
	return nil
}

// Traverse returns a pre-order iterator over the tree starting at the root.
// Each call produces a fresh walk; stopping early is supported.
func (s *Scene) Traverse() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walkPreOrder(s.root, yield)
	}
}

// Walk calls fn for every node in pre-order until fn returns false.
func (s *Scene) Walk(fn func(*Node) bool) {
	walkPreOrder(s.root, fn)
}

// walkPreOrder visits n then its children. Returns false once fn stops.
func walkPreOrder(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !walkPreOrder(c, fn) {
			return false
		}
	}
	return true
}

// FindByID returns the attached node with the given ID, or nil.
func (s *Scene) FindByID(id uint64) *Node {
	for n := range s.Traverse() {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// FindByName returns the first node in pre-order with the given name, or nil.
func (s *Scene) FindByName(name string) *Node {
	for n := range s.Traverse() {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Len returns the number of nodes in the tree, including the root.
func (s *Scene) Len() int {
	count := 0
	for range s.Traverse() {
		count++
	}
	return count
}

// --- Change notification ---

// Subscribe registers fn to run after every scene or selection change.
func (s *Scene) Subscribe(fn func()) Subscription {
	return s.listeners.Subscribe(func(struct{}) { fn() })
}

// Unsubscribe removes a subscription made with Subscribe. Unknown or already
// removed subscriptions are ignored.
func (s *Scene) Unsubscribe(sub Subscription) {
	if !s.listeners.owns(sub) {
		return
	}
	sub.Remove()
}

// Notify calls every subscriber synchronously in registration order.
func (s *Scene) Notify() {
	s.listeners.Emit(struct{}{})
}

// Subscribers returns the number of registered subscribers.
func (s *Scene) Subscribers() int {
	return s.listeners.Len()
}
