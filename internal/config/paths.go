// Package config manages aerostate configuration and filesystem paths.
//
// The default root is ~/.aerostate/ containing the layout document and
// an optional config.yaml. The root can be overridden with the
// AEROSTATE_ROOT environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by aerostate.
type Paths struct {
	// Root is the base directory for all aerostate data
	// (default: ~/.aerostate).
	Root string

	// LayoutFile is the default layout document path, used when a
	// command is given no path argument and the config file sets none.
	LayoutFile string

	// Config is the path to the config file.
	Config string
}

// DefaultPaths returns the default paths for aerostate. The root can be
// overridden with AEROSTATE_ROOT.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("AEROSTATE_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".aerostate")
	}

	return &Paths{
		Root:       root,
		LayoutFile: filepath.Join(root, "layout.json"),
		Config:     filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates the root directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
