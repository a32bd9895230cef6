// Package engine implements saving and restoring tiling layouts.
//
// SaveLayout walks the live tree into a snapshot document, merges it
// with the previously saved document so windows that are not currently
// running survive, and writes the result atomically. LoadLayout parses
// a document, matches live windows against its entries by
// (owner app ID, title), rebuilds the tree, recovers orphans, and
// restores per-window geometry.
//
// Both operations run on the single actor that owns the tree. Every
// fallible step — window-system reads, file IO, parsing — happens
// before the first tree mutation, so a failure can never leave the tree
// half-mutated.
package engine

import (
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/fsops"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/platform"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/snapshot"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/tree"
)

// Engine performs layout save and restore over a workspace registry.
type Engine struct {
	fs       fsops.FS
	backend  platform.Backend
	registry *tree.Registry
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, backend platform.Backend, registry *tree.Registry) *Engine {
	return &Engine{
		fs:       fs,
		backend:  backend,
		registry: registry,
	}
}

// Registry returns the workspace registry the engine operates on.
func (e *Engine) Registry() *tree.Registry { return e.registry }

// collectWindowData captures the title and frame of every window in
// the live tree, before any encoding starts. Title reads cross into
// the window system and may block or fail; a window whose title read
// fails is still saved, under an empty title.
func (e *Engine) collectWindowData() map[*tree.WindowNode]snapshot.WindowData {
	data := make(map[*tree.WindowNode]snapshot.WindowData)
	for _, ws := range e.registry.All() {
		nodes := append(ws.TilingWindows(), ws.Floating()...)
		for _, n := range nodes {
			h := n.Handle()
			title, err := h.Title()
			if err != nil {
				title = ""
			}
			d := snapshot.WindowData{
				AppBundleID: h.OwnerAppID(),
				Title:       title,
			}
			if frame, ok := h.Frame(); ok {
				d.Frame = &frame
			}
			data[n] = d
		}
	}
	return data
}
