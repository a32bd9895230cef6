package engine

import (
	"errors"
	"fmt"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/platform"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/tree"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/window"
)

// opLog records backend side effects in order, shared between fakes so
// tests can assert ordering across them (e.g. refresh before frame
// restore).
type opLog struct {
	ops []string
}

func (l *opLog) record(format string, args ...any) {
	l.ops = append(l.ops, fmt.Sprintf(format, args...))
}

// fakeHandle implements window.Handle.
type fakeHandle struct {
	appID    string
	title    string
	titleErr error
	frame    *window.Rect
	log      *opLog

	setPos  []window.Point
	setSize []*window.Size
}

func (h *fakeHandle) Title() (string, error) {
	if h.titleErr != nil {
		return "", h.titleErr
	}
	return h.title, nil
}

func (h *fakeHandle) OwnerAppID() string { return h.appID }

func (h *fakeHandle) Frame() (window.Rect, bool) {
	if h.frame == nil {
		return window.Rect{}, false
	}
	return *h.frame, true
}

func (h *fakeHandle) SetFrame(pos window.Point, size *window.Size) error {
	h.setPos = append(h.setPos, pos)
	h.setSize = append(h.setSize, size)
	if h.log != nil {
		h.log.record("setframe %s %q", h.appID, h.title)
	}
	return nil
}

type forceTileCall struct {
	handle    window.Handle
	workspace string
}

// fakeBackend implements platform.Backend.
type fakeBackend struct {
	windows    []window.Handle
	monitors   []window.Monitor
	windowsErr error
	log        *opLog
	registry   *tree.Registry

	forceTiled []forceTileCall
	refreshed  int
}

var _ platform.Backend = (*fakeBackend)(nil)

func (b *fakeBackend) Windows() ([]window.Handle, error) {
	if b.windowsErr != nil {
		return nil, b.windowsErr
	}
	return b.windows, nil
}

func (b *fakeBackend) Monitors() ([]window.Monitor, error) {
	return b.monitors, nil
}

func (b *fakeBackend) ForceTile(h window.Handle, workspace string) error {
	b.forceTiled = append(b.forceTiled, forceTileCall{handle: h, workspace: workspace})
	if b.log != nil {
		b.log.record("forcetile %s", workspace)
	}
	return nil
}

func (b *fakeBackend) Refresh() error {
	b.refreshed++
	if b.log != nil {
		b.log.record("refresh")
	}
	return nil
}

func (b *fakeBackend) Registry() *tree.Registry {
	if b.registry == nil {
		b.registry = tree.NewRegistry()
	}
	return b.registry
}

var errWindowGone = errors.New("window is gone")
