package tree

// Workspace is a named top-level grouping holding one tiling tree and
// an unordered collection of floating windows.
type Workspace struct {
	name     string
	root     *Container
	floating []*WindowNode
}

func newWorkspace(name string) *Workspace {
	return &Workspace{
		name: name,
		root: NewContainer(Horizontal, Tiles),
	}
}

// Name returns the workspace name.
func (w *Workspace) Name() string { return w.name }

// Root returns the workspace's root tiling container.
func (w *Workspace) Root() *Container { return w.root }

// ReplaceRoot swaps in a new root container and returns the previous
// one, still holding its subtree. Callers use the returned root to
// account for windows the replacement left behind.
func (w *Workspace) ReplaceRoot(root *Container) *Container {
	old := w.root
	w.root = root
	return old
}

// Floating returns the workspace's floating window nodes.
func (w *Workspace) Floating() []*WindowNode { return w.floating }

// AddFloating places a window node in the workspace's floating set.
func (w *Workspace) AddFloating(n *WindowNode) {
	w.floating = append(w.floating, n)
}

// RemoveFloating takes a window node out of the floating set, reporting
// whether it was present.
func (w *Workspace) RemoveFloating(n *WindowNode) bool {
	for i, other := range w.floating {
		if other == n {
			w.floating = append(w.floating[:i], w.floating[i+1:]...)
			return true
		}
	}
	return false
}

// TilingWindows returns the window leaves of the root tiling tree.
func (w *Workspace) TilingWindows() []*WindowNode {
	return w.root.Leaves()
}

// IsEffectivelyEmpty reports whether the workspace holds no tiling and
// no floating windows. Effectively empty workspaces are skipped when
// saving a layout.
func (w *Workspace) IsEffectivelyEmpty() bool {
	return len(w.floating) == 0 && len(w.root.Leaves()) == 0
}

// Registry is the process-scoped set of workspaces, keyed by name.
// Lookup by name creates the workspace on first use, so two lookups of
// the same name always yield the same workspace.
type Registry struct {
	byName map[string]*Workspace
	order  []string
}

// NewRegistry creates an empty workspace registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Workspace)}
}

// Get returns the workspace with the given name, creating it if absent.
func (r *Registry) Get(name string) *Workspace {
	if ws, ok := r.byName[name]; ok {
		return ws
	}
	ws := newWorkspace(name)
	r.byName[name] = ws
	r.order = append(r.order, name)
	return ws
}

// Lookup returns the workspace with the given name without creating it.
func (r *Registry) Lookup(name string) (*Workspace, bool) {
	ws, ok := r.byName[name]
	return ws, ok
}

// All returns the workspaces in creation order.
func (r *Registry) All() []*Workspace {
	out := make([]*Workspace, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
