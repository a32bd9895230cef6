package engine

import (
	"context"
	"fmt"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/snapshot"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/tree"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/window"
)

// LoadRequest represents a request to restore a saved layout.
type LoadRequest struct {
	// Path is the layout document path to read.
	Path string
}

// MatchRecord is the per-window log entry produced during restore.
type MatchRecord struct {
	// Workspace is the document workspace the entry belongs to.
	Workspace string

	// AppBundleID and Title identify the document entry.
	AppBundleID string
	Title       string

	// Outcome is how the entry resolved against the live windows.
	Outcome MatchOutcome

	// LiveTitle is the matched window's actual title when it differs
	// from the document title (fuzzy matches only).
	LiveTitle string
}

// LoadResult represents the result of a restore operation.
type LoadResult struct {
	// Path is the layout document path that was read.
	Path string

	// Workspaces is the number of workspaces rebuilt from the document.
	Workspaces int

	// Matched is the number of document entries bound to live windows.
	Matched int

	// Unmatched is the number of document entries with no live
	// counterpart. Unmatched entries are skipped, never an error.
	Unmatched int

	// Log holds one record per document window entry, in document
	// order.
	Log []MatchRecord
}

// frameRestore is a deferred geometry command. Geometry is applied only
// after the whole tree is rebuilt and the layout pass has run,
// otherwise the layout engine would immediately override it.
type frameRestore struct {
	handle window.Handle
	pos    window.Point
	size   *window.Size
}

// orphanScan records the windows that were tiled in a workspace before
// its tree was rebuilt, for the orphan check after the whole document
// has been processed.
type orphanScan struct {
	workspace string
	leaves    []*tree.WindowNode
}

// LoadLayout reads the layout document at req.Path and rebuilds the
// live tree from it. Document entries are matched against the live
// windows by exact (owner app ID, title) key with a fuzzy title
// fallback; unmatched entries are skipped. Live windows that were tiled
// in a workspace before the restore but were claimed by no document
// entry in any workspace are orphans and are forced back into that
// workspace's tiling layout. All fallible steps run before the first
// tree mutation.
func (e *Engine) LoadLayout(ctx context.Context, req *LoadRequest) (*LoadResult, error) {
	if req.Path == "" {
		return nil, ErrNoLayoutPath
	}

	raw, err := e.fs.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	world, err := snapshot.UnmarshalWorld(raw)
	if err != nil {
		return nil, err
	}

	handles, err := e.backend.Windows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	pool := newWindowPool(handles)

	// Rebuild begins. Nothing below is allowed to fail.
	res := &LoadResult{Path: req.Path, Workspaces: len(world.Workspaces)}
	claimed := make(map[window.Handle]bool)
	var frames []frameRestore
	var scans []orphanScan
	for _, sws := range world.Workspaces {
		frames = e.restoreWorkspace(sws, pool, res, frames, claimed, &scans)
	}

	// Orphan recovery waits until every workspace is rebuilt: a window
	// tiled in one workspace may be claimed by a document entry in
	// another, and it is an orphan only when no entry anywhere took it.
	for _, scan := range scans {
		for _, orphan := range scan.leaves {
			if !claimed[orphan.Handle()] {
				_ = e.backend.ForceTile(orphan.Handle(), scan.workspace)
			}
		}
	}

	// Let the layout pass place the rebuilt trees before any saved
	// geometry is applied on top.
	_ = e.backend.Refresh()
	for _, fr := range frames {
		_ = fr.handle.SetFrame(fr.pos, fr.size)
	}

	return res, nil
}

func (e *Engine) restoreWorkspace(sws snapshot.Workspace, pool *windowPool, res *LoadResult, frames []frameRestore, claimed map[window.Handle]bool, scans *[]orphanScan) []frameRestore {
	ws := e.registry.Get(sws.Name)
	newRoot := tree.NewContainer(
		snapshot.ParseOrientation(sws.RootTilingNode.Orientation),
		snapshot.ParseLayout(sws.RootTilingNode.Layout),
	)
	oldRoot := ws.ReplaceRoot(newRoot)
	if leaves := oldRoot.Leaves(); len(leaves) > 0 {
		*scans = append(*scans, orphanScan{workspace: ws.Name(), leaves: leaves})
	}

	frames = e.rebuildChildren(newRoot, sws.RootTilingNode.Children, sws.Name, pool, res, frames, claimed)

	for _, sw := range sws.FloatingWindows {
		lw, outcome := pool.match(sw)
		rec := MatchRecord{
			Workspace:   sws.Name,
			AppBundleID: sw.AppBundleID,
			Title:       sw.WindowTitle,
			Outcome:     outcome,
		}
		if lw == nil {
			res.Unmatched++
		} else {
			res.Matched++
			if outcome == MatchFuzzy {
				rec.LiveTitle = lw.title
			}
			node := tree.NewWindowNode(lw.handle)
			node.SetWeight(sw.Weight)
			ws.AddFloating(node)
			claimed[lw.handle] = true
			frames = appendFrame(frames, lw.handle, sw)
		}
		res.Log = append(res.Log, rec)
	}

	// A hand-edited document may nest same-orientation containers;
	// normalization keeps the invariant without failing the restore.
	tree.NormalizeNestedContainers(newRoot)
	return frames
}

// rebuildChildren reconstructs a container's children from document
// nodes, depth-first in document order. Children are bound at the last
// position rather than an explicit index, so gaps left by unmatched
// entries never push a bind out of bounds.
func (e *Engine) rebuildChildren(parent *tree.Container, children []snapshot.TreeNode, workspace string, pool *windowPool, res *LoadResult, frames []frameRestore, claimed map[window.Handle]bool) []frameRestore {
	for _, child := range children {
		switch {
		case child.Container != nil:
			sc := child.Container
			c := tree.NewContainer(snapshot.ParseOrientation(sc.Orientation), snapshot.ParseLayout(sc.Layout))
			if err := tree.Bind(c, parent, sc.Weight, tree.BindLast); err != nil {
				panic("engine: freshly created container is bound")
			}
			frames = e.rebuildChildren(c, sc.Children, workspace, pool, res, frames, claimed)
		case child.Window != nil:
			sw := *child.Window
			lw, outcome := pool.match(sw)
			rec := MatchRecord{
				Workspace:   workspace,
				AppBundleID: sw.AppBundleID,
				Title:       sw.WindowTitle,
				Outcome:     outcome,
			}
			if lw == nil {
				res.Unmatched++
			} else {
				res.Matched++
				if outcome == MatchFuzzy {
					rec.LiveTitle = lw.title
				}
				node := tree.NewWindowNode(lw.handle)
				if err := tree.Bind(node, parent, sw.Weight, tree.BindLast); err != nil {
					panic("engine: freshly created window node is bound")
				}
				claimed[lw.handle] = true
				frames = appendFrame(frames, lw.handle, sw)
			}
			res.Log = append(res.Log, rec)
		}
	}
	return frames
}

// appendFrame queues a geometry restore when the document entry carries
// a position. Size is restored only when both dimensions are present.
func appendFrame(frames []frameRestore, h window.Handle, sw snapshot.Window) []frameRestore {
	if !sw.HasPosition() {
		return frames
	}
	fr := frameRestore{handle: h, pos: window.Point{X: *sw.X, Y: *sw.Y}}
	if sw.HasSize() {
		fr.size = &window.Size{Width: *sw.Width, Height: *sw.Height}
	}
	return append(frames, fr)
}
