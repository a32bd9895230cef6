package tree

// BindLast appends the node after all existing children.
const BindLast = -1

// Container groups an ordered sequence of children under an orientation
// and layout mode.
type Container struct {
	nodeBase
	orientation Orientation
	layout      Layout
	children    []Node
	mru         Node
}

// NewContainer creates a detached container with no children.
func NewContainer(o Orientation, l Layout) *Container {
	return &Container{orientation: o, layout: l}
}

// Orientation returns the container's split axis.
func (c *Container) Orientation() Orientation { return c.orientation }

// Layout returns the container's display mode.
func (c *Container) Layout() Layout { return c.layout }

// SetLayout switches the container's display mode.
func (c *Container) SetLayout(l Layout) { c.layout = l }

// Children returns the ordered child sequence. Callers must not mutate
// the returned slice; use Bind and Unbind.
func (c *Container) Children() []Node { return c.children }

// MRUChild returns the most recently focused child, or nil for an
// empty container.
func (c *Container) MRUChild() Node { return c.mru }

// FocusChild records n as the container's most recently focused child,
// reporting whether n is actually a child.
func (c *Container) FocusChild(n Node) bool {
	if c.indexOf(n) < 0 {
		return false
	}
	c.mru = n
	return true
}

// Leaves returns all window nodes reachable under the container, in
// depth-first child order. Windows parked in system buckets are not
// tiling members and are excluded.
func (c *Container) Leaves() []*WindowNode {
	var out []*WindowNode
	for _, child := range c.children {
		switch child := child.(type) {
		case *WindowNode:
			out = append(out, child)
		case *Container:
			out = append(out, child.Leaves()...)
		}
	}
	return out
}

func (c *Container) indexOf(n Node) int {
	for i, child := range c.children {
		if child == n {
			return i
		}
	}
	return -1
}

// BindingData is the information needed to re-bind a node where it was
// unbound from.
type BindingData struct {
	Parent *Container
	Index  int
	Weight float64
}

// Bind attaches a detached node as a child of parent at the given index
// (BindLast appends) with the given weight. A non-positive weight
// defaults to DefaultWeight. Binding an already-bound node fails; the
// caller must Unbind it first.
func Bind(n Node, parent *Container, weight float64, index int) error {
	if n.Parent() != nil {
		return ErrAlreadyBound
	}
	if weight <= 0 {
		weight = DefaultWeight
	}
	if index == BindLast || index >= len(parent.children) {
		parent.children = append(parent.children, n)
	} else {
		if index < 0 {
			index = 0
		}
		parent.children = append(parent.children, nil)
		copy(parent.children[index+1:], parent.children[index:])
		parent.children[index] = n
	}
	n.SetWeight(weight)
	n.attach(parent)
	if parent.mru == nil {
		parent.mru = n
	}
	return nil
}

// Unbind detaches n from its parent and returns the data needed to
// re-bind it elsewhere. The node itself is not destroyed. If n was the
// parent's MRU child, the child now occupying n's former position (or
// the new last child) becomes MRU.
func Unbind(n Node) (BindingData, error) {
	p := n.Parent()
	if p == nil {
		return BindingData{}, ErrNotBound
	}
	idx := p.indexOf(n)
	data := BindingData{Parent: p, Index: idx, Weight: n.Weight()}
	p.children = append(p.children[:idx], p.children[idx+1:]...)
	if p.mru == n {
		p.mru = nil
		if len(p.children) > 0 {
			succ := idx
			if succ >= len(p.children) {
				succ = len(p.children) - 1
			}
			p.mru = p.children[succ]
		}
	}
	n.detach()
	return data, nil
}

// ChangeOrientation flips the container's split axis. A no-op when the
// orientation is unchanged; otherwise the flip may create a
// same-orientation nesting with the parent or with child containers, so
// a normalization pass runs over the affected subtree.
func ChangeOrientation(c *Container, o Orientation) {
	if c.orientation == o {
		return
	}
	c.orientation = o
	if p := c.Parent(); p != nil {
		NormalizeNestedContainers(p)
	} else {
		NormalizeNestedContainers(c)
	}
}

// NormalizeNestedContainers restores the no-orientation-collapse
// invariant below c: no container may share its orientation with its
// direct parent container. Violating containers are spliced into their
// parent — each child rebound at the container's former position, in
// order, with the container's weight split evenly across them. The pass
// runs bottom-up; a splice re-runs normalization on the parent since it
// may expose a new violation one level up.
func NormalizeNestedContainers(c *Container) {
	children := append([]Node(nil), c.children...)
	for _, child := range children {
		if nested, ok := child.(*Container); ok {
			NormalizeNestedContainers(nested)
		}
	}

	p := c.Parent()
	if p == nil || c.orientation != p.orientation {
		return
	}
	spliceIntoParent(c, p)
	NormalizeNestedContainers(p)
}

// spliceIntoParent replaces c with its children inside p, preserving
// document order and the parent's MRU child where possible.
func spliceIntoParent(c, p *Container) {
	prevMRU := p.mru
	kids := append([]Node(nil), c.children...)
	idx := p.indexOf(c)

	for _, kid := range kids {
		if _, err := Unbind(kid); err != nil {
			panic("tree: child of live container is unbound")
		}
	}
	if _, err := Unbind(c); err != nil {
		panic("tree: normalized container is unbound")
	}

	if len(kids) == 0 {
		return
	}
	evenWeight := c.Weight() / float64(len(kids))
	for i, kid := range kids {
		if err := Bind(kid, p, evenWeight, idx+i); err != nil {
			panic("tree: spliced child is still bound")
		}
	}

	if prevMRU != c && prevMRU != nil {
		p.mru = prevMRU
	} else {
		p.mru = kids[0]
	}
}
