package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("expected a missing config to be fine, got %v", err)
	}
	if cfg.LayoutFile != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_ParsesLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("layoutFile: /tmp/my-layout.json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LayoutFile != "/tmp/my-layout.json" {
		t.Errorf("unexpected layout file: %q", cfg.LayoutFile)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("layoutFile: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestResolveLayoutFile(t *testing.T) {
	paths := &Paths{LayoutFile: "/default/layout.json"}

	if got := paths.ResolveLayoutFile(&Config{}); got != "/default/layout.json" {
		t.Errorf("expected the default path, got %q", got)
	}
	if got := paths.ResolveLayoutFile(nil); got != "/default/layout.json" {
		t.Errorf("expected the default path for a nil config, got %q", got)
	}
	if got := paths.ResolveLayoutFile(&Config{LayoutFile: "/custom/l.json"}); got != "/custom/l.json" {
		t.Errorf("expected the configured path, got %q", got)
	}
}

func TestResolveLayoutFile_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	paths := &Paths{LayoutFile: "/default/layout.json"}
	got := paths.ResolveLayoutFile(&Config{LayoutFile: "~/layouts/work.json"})
	if got != filepath.Join(home, "layouts", "work.json") {
		t.Errorf("expected home expansion, got %q", got)
	}
}
