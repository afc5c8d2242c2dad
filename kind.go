package sceneedit

// NodeKind tags a Node with what it represents. It is fixed at construction.
type NodeKind uint8

const (
	KindGeneric     NodeKind = iota // plain transform node
	KindGroup                       // grouping node with no geometry of its own
	KindMesh                        // static geometry
	KindSkinnedMesh                 // geometry deformed by a skeleton
	KindBone                        // skeleton joint
	KindCamera                      // camera placed in the scene
	KindLight                       // light source
)

// kindInfo centralizes the per-kind behavior the editor needs.
type kindInfo struct {
	name string
	icon string
	// geometry marks kinds whose Bounds describe renderable geometry.
	geometry bool
}

var kindTable = [...]kindInfo{
	KindGeneric:     {name: "Object3D", icon: "Box"},
	KindGroup:       {name: "Group", icon: "Boxes"},
	KindMesh:        {name: "Mesh", icon: "Box", geometry: true},
	KindSkinnedMesh: {name: "SkinnedMesh", icon: "Box", geometry: true},
	KindBone:        {name: "Bone", icon: "Bone"},
	KindCamera:      {name: "PerspectiveCamera", icon: "Video"},
	KindLight:       {name: "DirectionalLight", icon: "Box"},
}

func (k NodeKind) info() kindInfo {
	if int(k) < len(kindTable) {
		return kindTable[k]
	}
	return kindTable[KindGeneric]
}

// String returns the kind's type name.
func (k NodeKind) String() string { return k.info().name }

// Icon returns the icon name a tree view should show for this kind.
// Unknown kinds fall back to "Box".
func (k NodeKind) Icon() string { return k.info().icon }

// HasGeometry reports whether nodes of this kind carry renderable geometry.
func (k NodeKind) HasGeometry() bool { return k.info().geometry }
