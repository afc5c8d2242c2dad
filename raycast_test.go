package sceneedit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsRaycasterOrdersByDistance(t *testing.T) {
	_, a, b, c := stackedScene(t)
	ray := NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1})

	hits := BoundsRaycaster{}.Intersect(ray, []*Node{c, a, b})
	require.Len(t, hits, 3)
	assert.Same(t, a, hits[0].Node)
	assert.Same(t, b, hits[1].Node)
	assert.Same(t, c, hits[2].Node)
	assert.InDelta(t, 8.0, hits[0].Distance, 1e-9)
	assert.InDelta(t, 11.0, hits[1].Distance, 1e-9)
	assert.InDelta(t, 14.0, hits[2].Distance, 1e-9)
	assertVec(t, "Point", hits[0].Point, mgl64.Vec3{0, 0, 2}, 1e-9)
}

func TestBoundsRaycasterWorldDistance(t *testing.T) {
	// A scaled, rotated parent: the distance must be measured in world units.
	p := NewGroup("p")
	p.SetScale(3, 3, 3)
	p.SetRotationEuler(0, 0.9, 0)
	n := NewMesh("n", CubeBox(2))
	p.AddChild(n)

	ray := NewRay(mgl64.Vec3{0, 20, 0}, mgl64.Vec3{0, -1, 0})
	hits := BoundsRaycaster{}.Intersect(ray, []*Node{n})
	require.Len(t, hits, 1)
	// Top face is at y = 1 * 3.
	assert.InDelta(t, 17.0, hits[0].Distance, 1e-9)
	assertVec(t, "Point", hits[0].Point, mgl64.Vec3{0, 3, 0}, 1e-9)
}

func TestBoundsRaycasterSkipsUnbounded(t *testing.T) {
	g := NewGroup("g")
	ray := NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1})
	assert.Empty(t, BoundsRaycaster{}.Intersect(ray, []*Node{g, nil}))
}

func TestBoundsRaycasterSkipsSingular(t *testing.T) {
	n := NewMesh("flat", CubeBox(2))
	n.SetScale(1, 0, 1)
	ray := NewRay(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -1, 0})
	assert.Empty(t, BoundsRaycaster{}.Intersect(ray, []*Node{n}))
}

func TestSortHitsStableForTies(t *testing.T) {
	a, b, c := NewGroup("a"), NewGroup("b"), NewGroup("c")
	hits := []Hit{{Node: a, Distance: 2}, {Node: b, Distance: 1}, {Node: c, Distance: 2}}
	sortHits(hits)
	assert.Same(t, b, hits[0].Node)
	assert.Same(t, a, hits[1].Node)
	assert.Same(t, c, hits[2].Node)
}

func TestDedupeHits(t *testing.T) {
	a, b := NewGroup("a"), NewGroup("b")
	hits := []Hit{{Node: a, Distance: 1}, {Node: b, Distance: 2}, {Node: a, Distance: 3}}
	out := dedupeHits(hits)
	require.Len(t, out, 2)
	assert.Same(t, a, out[0].Node)
	assert.Equal(t, 1.0, out[0].Distance)
	assert.Same(t, b, out[1].Node)
}
