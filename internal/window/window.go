// Package window defines the capability surface the layout engine uses
// to observe and move OS windows.
//
// The engine never talks to the window system directly. Everything it
// needs from the OS — titles, owning application IDs, on-screen frames,
// monitor arrangement — comes through the interfaces in this package,
// implemented by a platform backend. A window has no stable identifier
// across process restarts; the pair (owner app ID, title) is the only
// durable identity the engine can rely on.
package window

// Rect is an on-screen frame in screen coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Point is an on-screen position.
type Point struct {
	X float64
	Y float64
}

// Size is an on-screen extent.
type Size struct {
	Width  float64
	Height float64
}

// Handle is a live OS window.
type Handle interface {
	// Title returns the window's current title. It crosses into the
	// window system and may block or fail.
	Title() (string, error)

	// OwnerAppID returns the bundle/application identifier of the
	// process that owns the window.
	OwnerAppID() string

	// Frame returns the window's current on-screen frame. The second
	// return is false when the window system cannot report it.
	Frame() (Rect, bool)

	// SetFrame moves the window to pos. A nil size keeps the current
	// size.
	SetFrame(pos Point, size *Size) error
}

// Monitor is one physical display, identified by name, together with
// the workspace currently visible on it.
type Monitor struct {
	Name            string
	ActiveWorkspace string
}
