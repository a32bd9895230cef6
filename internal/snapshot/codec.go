package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/tree"
)

// Wire tags for orientation and layout. Orientation uses the short
// "h"/"v" form; layout spells "accordion" in full and treats any other
// value as tiles when decoding, so older or hand-edited documents
// degrade to the default mode instead of failing.
const (
	orientationHorizontal = "h"
	orientationVertical   = "v"
	layoutTiles           = "tiles"
	layoutAccordion       = "accordion"
)

// OrientationTag returns the wire tag for an orientation.
func OrientationTag(o tree.Orientation) string {
	if o == tree.Vertical {
		return orientationVertical
	}
	return orientationHorizontal
}

// ParseOrientation decodes an orientation wire tag. Anything other than
// "v" decodes as horizontal.
func ParseOrientation(tag string) tree.Orientation {
	if tag == orientationVertical {
		return tree.Vertical
	}
	return tree.Horizontal
}

// LayoutTag returns the wire tag for a layout mode.
func LayoutTag(l tree.Layout) string {
	if l == tree.Accordion {
		return layoutAccordion
	}
	return layoutTiles
}

// ParseLayout decodes a layout wire tag. Anything other than
// "accordion" decodes as tiles.
func ParseLayout(tag string) tree.Layout {
	if tag == layoutAccordion {
		return tree.Accordion
	}
	return tree.Tiles
}

// MarshalWorld renders a layout document as indented JSON.
func MarshalWorld(w *World) ([]byte, error) {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout document: %w", err)
	}
	return data, nil
}

// UnmarshalWorld parses a layout document. An unknown node type tag
// surfaces as an UnknownNodeTypeError inside the returned error chain.
func UnmarshalWorld(data []byte) (*World, error) {
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse layout document: %w", err)
	}
	return &w, nil
}
