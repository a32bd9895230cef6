package engine

import (
	"strings"

	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/snapshot"
	"github.com/yuliswe/Devs-Best-AeroSpace-fork/internal/window"
)

// MatchOutcome is the per-entry result of matching a document window
// against the live window pool.
type MatchOutcome string

const (
	// MatchExact means the (owner app ID, title) key matched exactly.
	MatchExact MatchOutcome = "exact"

	// MatchFuzzy means the key missed but a live window of the same
	// app had an equal, containing, or contained title.
	MatchFuzzy MatchOutcome = "fuzzy"

	// MatchNone means no live window satisfied either tier.
	MatchNone MatchOutcome = "unmatched"
)

// liveWindow is one entry in the matching pool. The title is read once,
// eagerly, when the pool is built.
type liveWindow struct {
	handle window.Handle
	appID  string
	title  string
	taken  bool
}

// windowPool indexes the live windows for restore-time matching. The
// whole document is matched against one pool: entries are consumed in
// document order, so when two saved workspaces claim the same key and
// only one live window carries it, the workspace that appears first in
// the document wins.
type windowPool struct {
	all   []*liveWindow
	byKey map[snapshot.WindowKey][]*liveWindow
}

// newWindowPool reads the identity of every live window up front.
// Title reads may block or fail; a window whose title read fails stays
// in the pool under an empty title.
func newWindowPool(handles []window.Handle) *windowPool {
	p := &windowPool{byKey: make(map[snapshot.WindowKey][]*liveWindow)}
	for _, h := range handles {
		title, err := h.Title()
		if err != nil {
			title = ""
		}
		lw := &liveWindow{handle: h, appID: h.OwnerAppID(), title: title}
		p.all = append(p.all, lw)
		key := snapshot.WindowKey{AppBundleID: lw.appID, WindowTitle: lw.title}
		p.byKey[key] = append(p.byKey[key], lw)
	}
	return p
}

// match resolves a document entry against the pool: exact key lookup
// first, then a fuzzy scan. A matched window is consumed and cannot
// match twice.
func (p *windowPool) match(sw snapshot.Window) (*liveWindow, MatchOutcome) {
	if lw := p.takeExact(sw.Key()); lw != nil {
		return lw, MatchExact
	}
	if lw := p.takeFuzzy(sw.AppBundleID, sw.WindowTitle); lw != nil {
		return lw, MatchFuzzy
	}
	return nil, MatchNone
}

func (p *windowPool) takeExact(key snapshot.WindowKey) *liveWindow {
	for _, lw := range p.byKey[key] {
		if !lw.taken {
			lw.taken = true
			return lw
		}
	}
	return nil
}

// takeFuzzy scans the remaining pool in enumeration order for a window
// of the same app whose title equals, contains, or is contained by the
// document title. First hit wins; enumeration order is not guaranteed
// stable across runs.
func (p *windowPool) takeFuzzy(appID, title string) *liveWindow {
	for _, lw := range p.all {
		if lw.taken || lw.appID != appID {
			continue
		}
		if lw.title == title || strings.Contains(lw.title, title) || strings.Contains(title, lw.title) {
			lw.taken = true
			return lw
		}
	}
	return nil
}
