package sceneedit

// OutlineRow is one line of a scene tree view.
type OutlineRow struct {
	ID          uint64
	Name        string
	Kind        NodeKind
	Icon        string
	Depth       int // 0 for top-level nodes
	Selected    bool
	HasChildren bool
}

// Outline mirrors the scene into flat rows for a tree or list view. The rows
// are rebuilt on every scene notification until Close is called.
type Outline struct {
	scene    *Scene
	rows     []OutlineRow
	sub      Subscription
	builds   int
	onChange func(rows []OutlineRow)
}

// NewOutline builds the initial rows and subscribes to scene changes.
// onChange, if non-nil, runs after each rebuild.
func NewOutline(scene *Scene, onChange func(rows []OutlineRow)) *Outline {
	o := &Outline{scene: scene, onChange: onChange}
	o.rebuild()
	o.sub = scene.Subscribe(func() {
		o.rebuild()
		if o.onChange != nil {
			o.onChange(o.rows)
		}
	})
	return o
}

// Rows returns the current rows. The returned slice MUST NOT be mutated.
func (o *Outline) Rows() []OutlineRow { return o.rows }

// Builds returns how many times the rows have been built.
func (o *Outline) Builds() int { return o.builds }

// Select selects the node shown in the row with the given ID. Returns false
// if no such node is attached.
func (o *Outline) Select(id uint64) bool {
	n := o.scene.FindByID(id)
	if n == nil || n == o.scene.root || o.scene.selection == nil {
		return false
	}
	o.scene.selection.Set(n)
	return true
}

// Close stops mirroring. Safe to call more than once.
func (o *Outline) Close() {
	o.sub.Remove()
}

func (o *Outline) rebuild() {
	o.builds++
	o.rows = o.rows[:0]
	sel := o.scene.Selected()
	for _, top := range o.scene.Roots() {
		walkPreOrder(top, func(n *Node) bool {
			o.rows = append(o.rows, OutlineRow{
				ID:          n.ID,
				Name:        n.Name,
				Kind:        n.Kind,
				Icon:        n.Kind.Icon(),
				Depth:       n.Depth() - 1,
				Selected:    n == sel,
				HasChildren: len(n.children) > 0,
			})
			return true
		})
	}
}
