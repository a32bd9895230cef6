package cli

import (
	"fmt"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/config"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/engine"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/fsops"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/platform"
)

// newEngine creates an engine wired to the registered platform backend
// and the backend's own workspace registry, so save sees the trees the
// backend maintains and load rebuilds them in place.
func newEngine() (*engine.Engine, error) {
	backend, err := platform.Default()
	if err != nil {
		return nil, err
	}
	return engine.New(fsops.NewRealFS(), backend, backend.Registry()), nil
}

// resolveLayoutPath picks the layout document path: the positional
// argument when given, else the configured default.
func resolveLayoutPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		return "", fmt.Errorf("failed to get config paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return "", fmt.Errorf("failed to ensure directories: %w", err)
	}
	cfg, err := config.Load(paths.Config)
	if err != nil {
		return "", err
	}
	return paths.ResolveLayoutFile(cfg), nil
}
