// Package platform holds the pluggable window-system backend.
//
// The layout engine is platform-agnostic: enumerating OS windows,
// reading monitors, and re-tiling orphaned windows all go through the
// Backend interface. Platform integrations register themselves at init
// time, the same way database/sql drivers do, so the core never imports
// OS-specific code.
package platform

import (
	"errors"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/tree"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/window"
)

// ErrNoBackend indicates no platform backend has been registered in
// this build.
var ErrNoBackend = errors.New("no window backend registered")

// Backend is the platform-specific window system integration.
type Backend interface {
	// Windows enumerates the currently live window handles.
	Windows() ([]window.Handle, error)

	// Monitors returns the ordered monitor list, each with the name of
	// the workspace currently visible on it.
	Monitors() ([]window.Monitor, error)

	// ForceTile moves a window back into the tiling layout of the
	// named workspace. Used to recover orphans after a restore.
	ForceTile(h window.Handle, workspace string) error

	// Refresh re-runs the layout pass so freshly rebuilt trees are
	// reflected on screen.
	Refresh() error

	// Registry returns the live workspace registry the backend keeps
	// in sync with the window system. Save reads the current trees
	// from it and load rebuilds into it.
	Registry() *tree.Registry
}

var registered Backend

// Register installs the process-wide backend. It panics if called
// twice or with a nil backend.
func Register(b Backend) {
	if b == nil {
		panic("platform: Register called with nil backend")
	}
	if registered != nil {
		panic("platform: backend already registered")
	}
	registered = b
}

// Default returns the registered backend, or ErrNoBackend when the
// build carries no platform integration.
func Default() (Backend, error) {
	if registered == nil {
		return nil, ErrNoBackend
	}
	return registered, nil
}
