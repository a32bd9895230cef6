package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/fsops"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/snapshot"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/tree"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/window"
)

func f(v float64) *float64 { return &v }

func tilingWorkspace(name string, windows ...snapshot.Window) snapshot.Workspace {
	ws := snapshot.Workspace{
		Name: name,
		RootTilingNode: snapshot.Container{
			Layout:      "tiles",
			Orientation: "h",
			Weight:      1,
			Children:    []snapshot.TreeNode{},
		},
		FloatingWindows: []snapshot.Window{},
	}
	for i := range windows {
		win := windows[i]
		ws.RootTilingNode.Children = append(ws.RootTilingNode.Children, snapshot.TreeNode{Window: &win})
	}
	return ws
}

func TestMergeWorkspace_PreservesMissingWindows(t *testing.T) {
	current := tilingWorkspace("1",
		snapshot.Window{AppBundleID: "com.app.A", WindowTitle: "Doc", Weight: 1},
	)
	prior := tilingWorkspace("1",
		snapshot.Window{AppBundleID: "com.app.A", WindowTitle: "Doc", Weight: 4, X: f(1), Y: f(1)},
		snapshot.Window{AppBundleID: "com.app.B", WindowTitle: "Mail", Weight: 2},
	)
	prior.FloatingWindows = append(prior.FloatingWindows,
		snapshot.Window{AppBundleID: "com.app.C", WindowTitle: "Scratch", Weight: 1},
	)

	merged, preserved := mergeWorkspace(current, prior)

	if preserved != 2 {
		t.Errorf("expected 2 preserved windows, got %d", preserved)
	}
	// The running window keeps its current entry, not the prior one.
	if len(merged.RootTilingNode.Children) != 2 {
		t.Fatalf("expected 2 tiling entries, got %d", len(merged.RootTilingNode.Children))
	}
	first := merged.RootTilingNode.Children[0].Window
	if first.Weight != 1 || first.HasPosition() {
		t.Errorf("expected the live entry to win for a present key: %+v", first)
	}
	// The missing window is appended with its original weight.
	second := merged.RootTilingNode.Children[1].Window
	if second.AppBundleID != "com.app.B" || second.Weight != 2 {
		t.Errorf("unexpected preserved entry: %+v", second)
	}
	if len(merged.FloatingWindows) != 1 || merged.FloatingWindows[0].AppBundleID != "com.app.C" {
		t.Error("expected the missing floating window to be preserved")
	}
}

func TestMergeWorkspace_FloatingKeyBlocksTilingCarryover(t *testing.T) {
	// A key present anywhere in the current workspace, including the
	// floating list, counts as present.
	current := tilingWorkspace("1")
	current.FloatingWindows = append(current.FloatingWindows,
		snapshot.Window{AppBundleID: "com.app.A", WindowTitle: "Doc", Weight: 1},
	)
	prior := tilingWorkspace("1",
		snapshot.Window{AppBundleID: "com.app.A", WindowTitle: "Doc", Weight: 3},
	)

	merged, preserved := mergeWorkspace(current, prior)
	if preserved != 0 {
		t.Errorf("expected no preserved windows, got %d", preserved)
	}
	if len(merged.RootTilingNode.Children) != 0 {
		t.Error("expected no tiling carryover for a floating key")
	}
}

func TestMergeWorlds_CarriesOverAbsentWorkspace(t *testing.T) {
	current := snapshot.World{
		Workspaces: []snapshot.Workspace{tilingWorkspace("1",
			snapshot.Window{AppBundleID: "com.app.A", WindowTitle: "Doc", Weight: 1},
		)},
	}
	prior := &snapshot.World{
		Workspaces: []snapshot.Workspace{
			tilingWorkspace("1",
				snapshot.Window{AppBundleID: "com.app.B", WindowTitle: "Mail", Weight: 1},
			),
			tilingWorkspace("2",
				snapshot.Window{AppBundleID: "com.app.D", WindowTitle: "Chat", Weight: 1},
				snapshot.Window{AppBundleID: "com.app.E", WindowTitle: "Music", Weight: 1},
			),
		},
	}

	merged, preserved := mergeWorlds(current, prior)
	if preserved != 3 {
		t.Errorf("expected 3 preserved windows, got %d", preserved)
	}
	if len(merged.Workspaces) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(merged.Workspaces))
	}
	carried := merged.Workspaces[1]
	if carried.Name != "2" {
		t.Fatalf("expected workspace 2 to be carried over, got %q", carried.Name)
	}
	if len(carried.RootTilingNode.Children) != 2 {
		t.Error("expected workspace 2 to be carried over in its entirety")
	}
}

func saveTestEngine(backend *fakeBackend) *Engine {
	return New(fsops.NewRealFS(), backend, tree.NewRegistry())
}

func addTiledWindow(t *testing.T, ws *tree.Workspace, h window.Handle, weight float64) *tree.WindowNode {
	t.Helper()
	n := tree.NewWindowNode(h)
	if err := tree.Bind(n, ws.Root(), weight, tree.BindLast); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	return n
}

func TestSaveLayout_WritesDocument(t *testing.T) {
	backend := &fakeBackend{
		monitors: []window.Monitor{
			{Name: "built-in", ActiveWorkspace: "1"},
			{Name: "external", ActiveWorkspace: "2"},
		},
	}
	eng := saveTestEngine(backend)

	ws := eng.Registry().Get("1")
	addTiledWindow(t, ws, &fakeHandle{
		appID: "com.app.A",
		title: "Doc",
		frame: &window.Rect{X: 0, Y: 0, Width: 640, Height: 480},
	}, 1)
	ws.AddFloating(tree.NewWindowNode(&fakeHandle{appID: "com.app.C", title: "Scratch"}))
	// Workspaces without any window are skipped.
	eng.Registry().Get("empty")

	path := filepath.Join(t.TempDir(), "layout.json")
	result, err := eng.SaveLayout(context.Background(), &SaveRequest{Path: path})
	if err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}
	if result.Workspaces != 1 || result.Windows != 2 || result.Preserved != 0 {
		t.Errorf("unexpected result: %+v", result)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written document: %v", err)
	}
	world, err := snapshot.UnmarshalWorld(raw)
	if err != nil {
		t.Fatalf("written document does not parse: %v", err)
	}
	if len(world.Workspaces) != 1 || world.Workspaces[0].Name != "1" {
		t.Fatalf("unexpected workspaces: %+v", world.Workspaces)
	}
	saved := world.Workspaces[0]
	if len(saved.RootTilingNode.Children) != 1 {
		t.Fatalf("expected 1 tiling entry, got %d", len(saved.RootTilingNode.Children))
	}
	win := saved.RootTilingNode.Children[0].Window
	if win.AppBundleID != "com.app.A" || win.WindowTitle != "Doc" {
		t.Errorf("unexpected tiling entry: %+v", win)
	}
	if !win.HasPosition() || !win.HasSize() {
		t.Error("expected the tiling entry to carry its frame")
	}
	if len(saved.FloatingWindows) != 1 || saved.FloatingWindows[0].WindowTitle != "Scratch" {
		t.Errorf("unexpected floating entries: %+v", saved.FloatingWindows)
	}
	want := []string{"1", "2"}
	if len(world.VisibleWorkspacePerMonitor) != 2 ||
		world.VisibleWorkspacePerMonitor[0] != want[0] ||
		world.VisibleWorkspacePerMonitor[1] != want[1] {
		t.Errorf("unexpected monitor mapping: %v", world.VisibleWorkspacePerMonitor)
	}
}

func TestSaveLayout_MergesPriorDocument(t *testing.T) {
	backend := &fakeBackend{}
	eng := saveTestEngine(backend)

	ws := eng.Registry().Get("1")
	addTiledWindow(t, ws, &fakeHandle{appID: "com.app.A", title: "Doc"}, 1)

	prior := &snapshot.World{
		Workspaces: []snapshot.Workspace{tilingWorkspace("1",
			snapshot.Window{AppBundleID: "com.app.A", WindowTitle: "Doc", Weight: 9},
			snapshot.Window{AppBundleID: "com.app.B", WindowTitle: "Mail", Weight: 2},
		)},
	}
	path := filepath.Join(t.TempDir(), "layout.json")
	raw, err := snapshot.MarshalWorld(prior)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	result, err := eng.SaveLayout(context.Background(), &SaveRequest{Path: path})
	if err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}
	if result.Preserved != 1 {
		t.Errorf("expected 1 preserved window, got %d", result.Preserved)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	world, err := snapshot.UnmarshalWorld(written)
	if err != nil {
		t.Fatal(err)
	}
	children := world.Workspaces[0].RootTilingNode.Children
	if len(children) != 2 {
		t.Fatalf("expected 2 entries after merge, got %d", len(children))
	}
	// The running window was re-saved, not duplicated from the prior
	// document.
	if children[0].Window.Weight != 1 {
		t.Errorf("expected the live entry to replace the prior one: %+v", children[0].Window)
	}
	if children[1].Window.AppBundleID != "com.app.B" || children[1].Window.Weight != 2 {
		t.Errorf("unexpected preserved entry: %+v", children[1].Window)
	}
}

func TestSaveLayout_TitleReadFailure(t *testing.T) {
	backend := &fakeBackend{}
	eng := saveTestEngine(backend)
	ws := eng.Registry().Get("1")
	addTiledWindow(t, ws, &fakeHandle{appID: "com.app.A", titleErr: errWindowGone}, 1)

	path := filepath.Join(t.TempDir(), "layout.json")
	if _, err := eng.SaveLayout(context.Background(), &SaveRequest{Path: path}); err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}

	raw, _ := os.ReadFile(path)
	world, err := snapshot.UnmarshalWorld(raw)
	if err != nil {
		t.Fatal(err)
	}
	win := world.Workspaces[0].RootTilingNode.Children[0].Window
	if win.AppBundleID != "com.app.A" || win.WindowTitle != "" {
		t.Errorf("expected the window to be saved under an empty title: %+v", win)
	}
}

func TestSaveLayout_NoPath(t *testing.T) {
	eng := saveTestEngine(&fakeBackend{})
	if _, err := eng.SaveLayout(context.Background(), &SaveRequest{}); !errors.Is(err, ErrNoLayoutPath) {
		t.Errorf("expected ErrNoLayoutPath, got %v", err)
	}
}

func TestSaveLayout_CorruptPriorAborts(t *testing.T) {
	eng := saveTestEngine(&fakeBackend{})
	ws := eng.Registry().Get("1")
	addTiledWindow(t, ws, &fakeHandle{appID: "com.app.A", title: "Doc"}, 1)

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := eng.SaveLayout(context.Background(), &SaveRequest{Path: path}); err == nil {
		t.Fatal("expected a corrupt prior document to abort the save")
	}
	// The corrupt file is left untouched.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "{broken" {
		t.Error("expected the prior file to be left untouched on abort")
	}
}
