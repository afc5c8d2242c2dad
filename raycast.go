package sceneedit

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is one ray intersection.
type Hit struct {
	Node     *Node
	Distance float64    // world-space distance from the ray origin
	Point    mgl64.Vec3 // world-space intersection point
}

// Raycaster intersects a ray with a set of candidate nodes. Results are
// ordered by ascending distance with at most one hit per node.
type Raycaster interface {
	Intersect(ray Ray, nodes []*Node) []Hit
}

// BoundsRaycaster tests the ray against each node's local Bounds. Nodes
// without Bounds or with a singular world matrix are skipped.
type BoundsRaycaster struct{}

// Intersect implements Raycaster. Equal distances keep candidate order.
func (BoundsRaycaster) Intersect(ray Ray, nodes []*Node) []Hit {
	var hits []Hit
	for _, n := range nodes {
		if n == nil || n.Bounds == nil {
			continue
		}
		if h, ok := intersectNode(ray, n); ok {
			hits = append(hits, h)
		}
	}
	sortHits(hits)
	return hits
}

// intersectNode transforms the ray into n's local space and tests n.Bounds.
func intersectNode(ray Ray, n *Node) (Hit, bool) {
	world := n.WorldMatrix()
	if math.Abs(world.Det()) < decomposeEpsilon {
		return Hit{}, false
	}
	inv := world.Inv()
	local := Ray{
		Origin:    inv.Mul4x1(ray.Origin.Vec4(1)).Vec3(),
		Direction: inv.Mul4x1(ray.Direction.Vec4(0)).Vec3(),
	}
	t, ok := local.IntersectBox(*n.Bounds)
	if !ok {
		return Hit{}, false
	}
	point := world.Mul4x1(local.At(t).Vec4(1)).Vec3()
	return Hit{
		Node:     n,
		Distance: point.Sub(ray.Origin).Len(),
		Point:    point,
	}, true
}

// sortHits orders hits by distance, keeping ties in input order.
func sortHits(hits []Hit) {
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
}

// dedupeHits keeps the nearest hit per node. hits must be sorted.
func dedupeHits(hits []Hit) []Hit {
	if len(hits) < 2 {
		return hits
	}
	seen := make(map[*Node]struct{}, len(hits))
	out := hits[:0]
	for _, h := range hits {
		if _, dup := seen[h.Node]; dup {
			continue
		}
		seen[h.Node] = struct{}{}
		out = append(out, h)
	}
	return out
}
