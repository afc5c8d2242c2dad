package sceneedit

import "log/slog"

// Picker turns viewport clicks into selections. Repeated clicks on the same
// spot cycle through every node under the pointer, nearest first.
type Picker struct {
	scene     *Scene
	camera    *Camera
	selection *Selection
	raycaster Raycaster

	// Exclude returns the root of a subtree that is never pickable, usually
	// the gizmo helper. May be nil.
	Exclude func() *Node

	candidates []*Node
	log        *slog.Logger
}

// NewPicker creates a picker over scene. A nil raycaster uses BoundsRaycaster.
func NewPicker(scene *Scene, camera *Camera, selection *Selection, raycaster Raycaster) *Picker {
	if raycaster == nil {
		raycaster = BoundsRaycaster{}
	}
	return &Picker{
		scene:     scene,
		camera:    camera,
		selection: selection,
		raycaster: raycaster,
		log:       scene.log.With("component", "picker"),
	}
}

// Candidates returns the pickable nodes in pre-order: every visible node
// outside the excluded subtree. The returned slice is reused by the next call.
func (p *Picker) Candidates() []*Node {
	var excluded *Node
	if p.Exclude != nil {
		excluded = p.Exclude()
	}
	p.candidates = collectPickable(p.scene.root, excluded, p.candidates[:0])
	return p.candidates
}

// collectPickable appends n and its descendants, skipping hidden subtrees
// and the excluded subtree.
func collectPickable(n, excluded *Node, buf []*Node) []*Node {
	if n == excluded || !n.Visible {
		return buf
	}
	buf = append(buf, n)
	for _, c := range n.children {
		buf = collectPickable(c, excluded, buf)
	}
	return buf
}

// Hits returns the nodes under the NDC point, nearest first.
func (p *Picker) Hits(ndc Vec2) []Hit {
	if p.camera == nil {
		return nil
	}
	ray := p.camera.RayFromNDC(ndc)
	return dedupeHits(p.raycaster.Intersect(ray, p.Candidates()))
}

// Pick selects the next node under the client point (clientX, clientY)
// inside bounds. It returns the newly selected node, or nil when nothing was
// hit and the selection is unchanged.
func (p *Picker) Pick(clientX, clientY float64, bounds Rect) *Node {
	ndc, ok := PointerToNDC(clientX, clientY, bounds)
	if !ok {
		p.log.Debug("pick ignored", "reason", "empty surface")
		return nil
	}
	return p.PickNDC(ndc)
}

// PickNDC is Pick with the point already in normalized device coordinates.
func (p *Picker) PickNDC(ndc Vec2) *Node {
	hits := p.Hits(ndc)
	if len(hits) == 0 {
		p.log.Debug("pick missed", "x", ndc.X, "y", ndc.Y)
		return nil
	}
	var current *Node
	if p.selection != nil {
		current = p.selection.Current()
	}
	next := hits[nextHit(hits, current)].Node
	if p.selection != nil {
		p.selection.Set(next)
	}
	return next
}

// nextHit returns the index after current's position in hits, wrapping
// around, or 0 when current is not among hits.
func nextHit(hits []Hit, current *Node) int {
	if current == nil {
		return 0
	}
	for i, h := range hits {
		if h.Node == current {
			return (i + 1) % len(hits)
		}
	}
	return 0
}
