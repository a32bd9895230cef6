package snapshot

import (
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/tree"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/window"
)

// WindowData is the externally collected per-window state attached to
// window entries during encoding. Titles and frames are volatile; the
// caller collects them once, up front, so the tree walk never queries
// the window system.
type WindowData struct {
	AppBundleID string
	Title       string
	Frame       *window.Rect
}

// EncodeWorkspace converts a live workspace into its serialized form.
// The data map supplies the per-window title and frame captured by the
// caller; windows absent from the map are encoded with empty titles and
// no geometry.
func EncodeWorkspace(ws *tree.Workspace, data map[*tree.WindowNode]WindowData) Workspace {
	out := Workspace{
		Name:            ws.Name(),
		RootTilingNode:  EncodeContainer(ws.Root(), data),
		FloatingWindows: []Window{},
	}
	for _, fl := range ws.Floating() {
		out.FloatingWindows = append(out.FloatingWindows, encodeWindow(fl, data))
	}
	return out
}

// EncodeContainer converts a live container subtree into its serialized
// form. Non-tiling children (system buckets) are dropped, not
// serialized.
func EncodeContainer(c *tree.Container, data map[*tree.WindowNode]WindowData) Container {
	out := Container{
		Layout:      LayoutTag(c.Layout()),
		Orientation: OrientationTag(c.Orientation()),
		Weight:      serializedWeight(c),
		Children:    []TreeNode{},
	}
	for _, child := range c.Children() {
		switch child := child.(type) {
		case *tree.Container:
			nested := EncodeContainer(child, data)
			out.Children = append(out.Children, TreeNode{Container: &nested})
		case *tree.WindowNode:
			win := encodeWindow(child, data)
			out.Children = append(out.Children, TreeNode{Window: &win})
		}
	}
	return out
}

func encodeWindow(n *tree.WindowNode, data map[*tree.WindowNode]WindowData) Window {
	d := data[n]
	out := Window{
		AppBundleID: d.AppBundleID,
		WindowTitle: d.Title,
		Weight:      serializedWeight(n),
	}
	if d.Frame != nil {
		out.X = f64(d.Frame.X)
		out.Y = f64(d.Frame.Y)
		out.Width = f64(d.Frame.Width)
		out.Height = f64(d.Frame.Height)
	}
	return out
}

// serializedWeight is the node's weight relative to its parent's
// orientation, or 1 for a node with no oriented parent (a root).
func serializedWeight(n tree.Node) float64 {
	if n.Parent() == nil {
		return tree.DefaultWeight
	}
	return n.Weight()
}

func f64(v float64) *float64 { return &v }
