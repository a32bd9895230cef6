package engine

import (
	"context"
	"fmt"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/snapshot"
)

// SaveRequest represents a request to save the current layout.
type SaveRequest struct {
	// Path is the layout document path to write.
	Path string
}

// SaveResult represents the result of a save operation.
type SaveResult struct {
	// Path is the layout document path that was written.
	Path string

	// Workspaces is the number of workspaces in the written document.
	Workspaces int

	// Windows is the total number of window entries in the written
	// document, including preserved ones.
	Windows int

	// Preserved is the number of window entries carried over from the
	// prior document because their windows are not currently running.
	Preserved int
}

// SaveLayout snapshots the live tree into a layout document and writes
// it to req.Path. If a document already exists there, windows recorded
// in it whose (owner app ID, title) key is absent from the current live
// set are preserved: missing tiling windows are appended to the
// matching workspace's root container, missing floating windows to its
// floating list, and workspaces that are not live at all are carried
// over unchanged. A previously known window is therefore never dropped
// just because it is not open right now; it is only overwritten once a
// later save observes the same key as present again.
func (e *Engine) SaveLayout(ctx context.Context, req *SaveRequest) (*SaveResult, error) {
	if req.Path == "" {
		return nil, ErrNoLayoutPath
	}

	monitors, err := e.backend.Monitors()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate monitors: %w", err)
	}

	// Volatile window state is collected once, up front, so the tree
	// walk below never queries the window system.
	data := e.collectWindowData()

	world := snapshot.World{
		Workspaces:                 []snapshot.Workspace{},
		VisibleWorkspacePerMonitor: []string{},
	}
	for _, ws := range e.registry.All() {
		if ws.IsEffectivelyEmpty() {
			continue
		}
		world.Workspaces = append(world.Workspaces, snapshot.EncodeWorkspace(ws, data))
	}

	preserved := 0
	exists, err := e.fs.Exists(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to check layout file: %w", err)
	}
	if exists {
		raw, err := e.fs.ReadFile(req.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read prior layout file: %w", err)
		}
		prior, err := snapshot.UnmarshalWorld(raw)
		if err != nil {
			return nil, err
		}
		world, preserved = mergeWorlds(world, prior)
	}

	for _, m := range monitors {
		world.VisibleWorkspacePerMonitor = append(world.VisibleWorkspacePerMonitor, m.ActiveWorkspace)
	}

	out, err := snapshot.MarshalWorld(&world)
	if err != nil {
		return nil, err
	}
	if err := e.fs.AtomicWrite(req.Path, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write layout file: %w", err)
	}

	return &SaveResult{
		Path:       req.Path,
		Workspaces: len(world.Workspaces),
		Windows:    countWindows(&world),
		Preserved:  preserved,
	}, nil
}

// mergeWorlds folds the prior document into the current one. It returns
// the merged world and the number of window entries preserved from the
// prior document.
func mergeWorlds(current snapshot.World, prior *snapshot.World) (snapshot.World, int) {
	byName := make(map[string]int, len(current.Workspaces))
	for i, ws := range current.Workspaces {
		byName[ws.Name] = i
	}

	preserved := 0
	for _, pws := range prior.Workspaces {
		if i, ok := byName[pws.Name]; ok {
			merged, n := mergeWorkspace(current.Workspaces[i], pws)
			current.Workspaces[i] = merged
			preserved += n
		} else {
			// Workspace not live at all: carried over in its entirety.
			current.Workspaces = append(current.Workspaces, pws)
			preserved += workspaceWindowCount(pws)
		}
	}
	return current, preserved
}

// mergeWorkspace appends the prior workspace's windows whose keys do
// not appear anywhere in the current workspace. Appended tiling windows
// keep their original weight and do not redistribute existing
// siblings' weights.
func mergeWorkspace(current, prior snapshot.Workspace) (snapshot.Workspace, int) {
	keys := make(map[snapshot.WindowKey]struct{})
	walkWindows(current.RootTilingNode, func(w snapshot.Window) {
		keys[w.Key()] = struct{}{}
	})
	for _, w := range current.FloatingWindows {
		keys[w.Key()] = struct{}{}
	}

	preserved := 0
	walkWindows(prior.RootTilingNode, func(w snapshot.Window) {
		if _, ok := keys[w.Key()]; ok {
			return
		}
		win := w
		current.RootTilingNode.Children = append(current.RootTilingNode.Children, snapshot.TreeNode{Window: &win})
		preserved++
	})
	for _, w := range prior.FloatingWindows {
		if _, ok := keys[w.Key()]; ok {
			continue
		}
		current.FloatingWindows = append(current.FloatingWindows, w)
		preserved++
	}
	return current, preserved
}

// walkWindows visits every window entry under c, depth-first in
// document order.
func walkWindows(c snapshot.Container, fn func(snapshot.Window)) {
	for _, child := range c.Children {
		switch {
		case child.Container != nil:
			walkWindows(*child.Container, fn)
		case child.Window != nil:
			fn(*child.Window)
		}
	}
}

func workspaceWindowCount(ws snapshot.Workspace) int {
	n := len(ws.FloatingWindows)
	walkWindows(ws.RootTilingNode, func(snapshot.Window) { n++ })
	return n
}

func countWindows(w *snapshot.World) int {
	n := 0
	for _, ws := range w.Workspaces {
		n += workspaceWindowCount(ws)
	}
	return n
}
