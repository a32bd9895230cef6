// Package snapshot defines the portable layout document and its codec.
//
// Snapshot values are immutable data with no ownership semantics,
// identified only by structural position and content. They exist
// transiently: the save engine produces them from a tree walk, the
// restore engine consumes them after parsing, and neither holds them as
// long-lived state. The on-disk shape is JSON; a node's kind is carried
// by a "type" tag that is either "container" or "window" — anything
// else is a hard parse error, since the tag is the one place a
// malformed or future-versioned document is distinguishable from
// corruption.
package snapshot

import (
	"encoding/json"
	"fmt"
)

const (
	nodeTypeContainer = "container"
	nodeTypeWindow    = "window"
)

// UnknownNodeTypeError reports a document node whose type tag is
// neither "container" nor "window".
type UnknownNodeTypeError struct {
	Tag string
}

func (e *UnknownNodeTypeError) Error() string {
	return fmt.Sprintf("unknown layout node type %q", e.Tag)
}

// World is the root of a layout document.
type World struct {
	Workspaces                 []Workspace `json:"workspaces"`
	VisibleWorkspacePerMonitor []string    `json:"visibleWorkspacePerMonitor"`
}

// Workspace is one saved workspace: a tiling tree plus floating
// windows.
type Workspace struct {
	Name            string    `json:"name"`
	RootTilingNode  Container `json:"rootTilingNode"`
	FloatingWindows []Window  `json:"floatingWindows"`
}

// Container is a serialized tiling container.
type Container struct {
	Layout      string     `json:"layout"`
	Orientation string     `json:"orientation"`
	Weight      float64    `json:"weight"`
	Children    []TreeNode `json:"children"`
}

// Window is a serialized window entry. Geometry fields are optional for
// backward compatibility with documents written before geometry capture
// existed; position is usable only when both X and Y are present.
type Window struct {
	AppBundleID string   `json:"appBundleId"`
	WindowTitle string   `json:"windowTitle"`
	Weight      float64  `json:"weight"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
}

// Key returns the window's durable identity.
func (w Window) Key() WindowKey {
	return WindowKey{AppBundleID: w.AppBundleID, WindowTitle: w.WindowTitle}
}

// HasPosition reports whether the entry carries a restorable position.
func (w Window) HasPosition() bool { return w.X != nil && w.Y != nil }

// HasSize reports whether the entry carries a restorable size.
func (w Window) HasSize() bool { return w.Width != nil && w.Height != nil }

// WindowKey is the (owner app, title) pair used to match saved entries
// against live windows. Windows have no stable cross-run identifier;
// this pair is the only durable identity available.
type WindowKey struct {
	AppBundleID string
	WindowTitle string
}

// TreeNode is the tagged union of the two serializable child kinds.
// Exactly one of Container or Window is non-nil.
type TreeNode struct {
	Container *Container
	Window    *Window
}

// MarshalJSON writes the node as its underlying container or window,
// which carry their own type tags.
func (n TreeNode) MarshalJSON() ([]byte, error) {
	switch {
	case n.Container != nil:
		return json.Marshal(*n.Container)
	case n.Window != nil:
		return json.Marshal(*n.Window)
	default:
		return nil, fmt.Errorf("tree node has neither container nor window")
	}
}

// UnmarshalJSON dispatches on the type tag, rejecting unknown tags with
// an UnknownNodeTypeError.
func (n *TreeNode) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.Type {
	case nodeTypeContainer:
		var c Container
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		n.Container = &c
		n.Window = nil
	case nodeTypeWindow:
		var w Window
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		n.Window = &w
		n.Container = nil
	default:
		return &UnknownNodeTypeError{Tag: probe.Type}
	}
	return nil
}

// MarshalJSON writes the container with its type tag so that a
// container is self-describing wherever it appears, including as a
// workspace's root node.
func (c Container) MarshalJSON() ([]byte, error) {
	type bare Container
	return json.Marshal(struct {
		Type string `json:"type"`
		bare
	}{Type: nodeTypeContainer, bare: bare(c)})
}

// UnmarshalJSON reads a container, rejecting a present-but-wrong type
// tag. The tag may be absent in hand-edited documents; absence is
// tolerated where the surrounding structure already fixes the kind.
func (c *Container) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Type != "" && probe.Type != nodeTypeContainer {
		return &UnknownNodeTypeError{Tag: probe.Type}
	}
	type bare Container
	var b bare
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*c = Container(b)
	return nil
}

// MarshalJSON writes the window with its type tag.
func (w Window) MarshalJSON() ([]byte, error) {
	type bare Window
	return json.Marshal(struct {
		Type string `json:"type"`
		bare
	}{Type: nodeTypeWindow, bare: bare(w)})
}

// UnmarshalJSON reads a window, rejecting a present-but-wrong type tag.
func (w *Window) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Type != "" && probe.Type != nodeTypeWindow {
		return &UnknownNodeTypeError{Tag: probe.Type}
	}
	type bare Window
	var b bare
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*w = Window(b)
	return nil
}
