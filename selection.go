package sceneedit

import "log/slog"

// Selection is the single source of truth for the selected node. It keeps
// the transform gizmo attached to the selection and notifies the scene's
// subscribers on every change.
type Selection struct {
	scene   *Scene
	gizmo   Gizmo
	current *Node
	log     *slog.Logger
}

// NewSelection creates the selection for scene and links it so that
// Scene.RemoveNode can invalidate it. gizmo may be nil.
func NewSelection(scene *Scene, gizmo Gizmo) *Selection {
	sel := &Selection{
		scene: scene,
		gizmo: gizmo,
		log:   scene.log.With("component", "selection"),
	}
	scene.selection = sel
	return sel
}

// Current returns the selected node, or nil.
func (s *Selection) Current() *Node {
	return s.current
}

// Set selects node. A nil node, the scene root, or a node that is not
// attached to the scene clears the selection instead. Subscribers are
// notified exactly once.
func (s *Selection) Set(node *Node) {
	if node == nil {
		s.Clear()
		return
	}
	if node == s.scene.root || !s.scene.Contains(node) {
		s.log.Debug("selection cleared", "reason", "node not attached", "node", node.Name)
		s.Clear()
		return
	}
	if s.gizmo != nil {
		s.gizmo.Detach()
		s.gizmo.Attach(node)
	}
	s.current = node
	s.scene.Notify()
}

// Clear deselects and notifies subscribers.
func (s *Selection) Clear() {
	s.clear()
	s.scene.Notify()
}

// clear deselects without notifying.
func (s *Selection) clear() {
	if s.gizmo != nil {
		s.gizmo.Detach()
	}
	s.current = nil
}

// SetTransformMode forwards mode to the gizmo.
func (s *Selection) SetTransformMode(mode TransformMode) {
	if s.gizmo == nil {
		s.log.Debug("transform mode ignored", "reason", "no gizmo")
		return
	}
	s.gizmo.SetMode(mode)
}

// TransformMode returns the gizmo's mode, or TransformTranslate without a gizmo.
func (s *Selection) TransformMode() TransformMode {
	if s.gizmo == nil {
		return TransformTranslate
	}
	return s.gizmo.Mode()
}
