// Package tree implements the weighted N-ary tiling tree.
//
// A Workspace owns one root Container plus a list of floating windows.
// Containers group children (containers, window nodes, or system
// buckets) under an orientation and layout mode. Every node has exactly
// one parent; a node's weight is meaningful only relative to its
// current siblings under the parent's orientation.
//
// The tree is not safe for concurrent mutation. All mutating operations
// must be issued serially by the single actor that owns the session.
package tree

import (
	"errors"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/window"
)

var (
	// ErrAlreadyBound indicates a bind target that still has a parent.
	ErrAlreadyBound = errors.New("node is already bound to a parent")

	// ErrNotBound indicates an unbind target that has no parent.
	ErrNotBound = errors.New("node is not bound to a parent")
)

// DefaultWeight is the weight assumed for nodes bound without an
// explicit weight.
const DefaultWeight = 1.0

// Orientation is the axis along which a container splits its children.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Layout is a container's display mode.
type Layout int

const (
	// Tiles gives children disjoint proportional regions along the
	// orientation axis.
	Tiles Layout = iota

	// Accordion stacks children with only one fully visible at a time.
	Accordion
)

func (l Layout) String() string {
	if l == Accordion {
		return "accordion"
	}
	return "tiles"
}

// Node is any tree participant that can be bound under a container.
// The implementing set is closed: *Container, *WindowNode and
// *SystemBucket are the only node kinds.
type Node interface {
	// Parent returns the owning container, or nil for a detached node
	// or a workspace root.
	Parent() *Container

	// Weight returns the node's share of space among its siblings.
	Weight() float64

	// SetWeight overwrites the node's weight. Non-positive weights are
	// ignored.
	SetWeight(w float64)

	attach(p *Container)
	detach()
}

// nodeBase carries the parent back-link and weight shared by all node
// kinds. The back-link is used only for lookup (orientation queries,
// unbind), never for ownership.
type nodeBase struct {
	parent *Container
	weight float64
}

func (n *nodeBase) Parent() *Container { return n.parent }

func (n *nodeBase) Weight() float64 {
	if n.weight <= 0 {
		return DefaultWeight
	}
	return n.weight
}

func (n *nodeBase) SetWeight(w float64) {
	if w > 0 {
		n.weight = w
	}
}

func (n *nodeBase) attach(p *Container) { n.parent = p }
func (n *nodeBase) detach()             { n.parent = nil }

// WindowNode is a leaf representing one live on-screen window.
type WindowNode struct {
	nodeBase
	handle window.Handle
}

// NewWindowNode creates a detached window node for the given handle.
func NewWindowNode(h window.Handle) *WindowNode {
	return &WindowNode{handle: h}
}

// Handle returns the OS window this node stands for.
func (w *WindowNode) Handle() window.Handle { return w.handle }

// BucketKind classifies the non-tiling system buckets. Windows parked
// in a bucket are alive but excluded from the tiling layout, and
// buckets are never serialized into a layout document.
type BucketKind int

const (
	BucketMinimized BucketKind = iota
	BucketFullscreen
	BucketHidden
)

func (k BucketKind) String() string {
	switch k {
	case BucketMinimized:
		return "minimized"
	case BucketFullscreen:
		return "fullscreen"
	default:
		return "hidden"
	}
}

// SystemBucket holds windows temporarily removed from tiling
// (minimized, fullscreen or hidden).
type SystemBucket struct {
	nodeBase
	kind    BucketKind
	windows []*WindowNode
}

// NewSystemBucket creates a detached bucket of the given kind.
func NewSystemBucket(kind BucketKind) *SystemBucket {
	return &SystemBucket{kind: kind}
}

// Kind returns the bucket's classification.
func (b *SystemBucket) Kind() BucketKind { return b.kind }

// Windows returns the windows currently parked in the bucket.
func (b *SystemBucket) Windows() []*WindowNode { return b.windows }

// Park adds a window node to the bucket.
func (b *SystemBucket) Park(w *WindowNode) {
	b.windows = append(b.windows, w)
}

// Release removes a window node from the bucket, reporting whether it
// was present.
func (b *SystemBucket) Release(w *WindowNode) bool {
	for i, other := range b.windows {
		if other == w {
			b.windows = append(b.windows[:i], b.windows[i+1:]...)
			return true
		}
	}
	return false
}
