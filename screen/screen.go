// SPDX-License-Identifier: Unlicense OR MIT

// Package screen places windows on a desktop made of several monitors.
//
// Enumerating monitors is left to the host toolkit; this package only does
// the geometry on top of the list it is given.
package screen

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/tkgui/boxkit"
	"github.com/tkgui/boxkit/geom"
)

// Monitor describes one display in desktop coordinates.
type Monitor struct {
	Name    string
	Primary bool
	// Full is the whole display.
	Full geom.BBox
	// Work is the part of Full not covered by task bars and docks. The
	// zero value means the host does not know and Full is used instead.
	Work geom.BBox
}

// WorkArea returns the area windows should be placed in.
func (m Monitor) WorkArea() geom.BBox {
	if m.Work == (geom.BBox{}) {
		return m.Full
	}
	return m.Work
}

// Size returns the size of the whole display.
func (m Monitor) Size() geom.Size { return m.Full.Size() }

// Position returns the top left corner of the display in desktop
// coordinates.
func (m Monitor) Position() geom.Position { return m.Full.Position() }

// Set is the list of monitors of a desktop.
type Set []Monitor

// Sorted returns a copy of s with the primary monitor first and the rest
// ordered top to bottom, then left to right.
func (s Set) Sorted() Set {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b Monitor) int {
		switch {
		case a.Primary && !b.Primary:
			return -1
		case b.Primary && !a.Primary:
			return 1
		}
		if c := cmp.Compare(a.Full.Top, b.Full.Top); c != 0 {
			return c
		}
		return cmp.Compare(a.Full.Left, b.Full.Left)
	})
	return out
}

// At returns the first monitor whose full area contains (x, y). Edges are
// inclusive, so a point on the boundary of two monitors belongs to the one
// listed first.
func (s Set) At(x, y int) (Monitor, bool) {
	for _, m := range s {
		f := m.Full
		if f.Left <= x && x <= f.Right && f.Top <= y && y <= f.Bottom {
			return m, true
		}
	}
	return Monitor{}, false
}

// Primary returns the monitor flagged primary, or the first one when none
// is.
func (s Set) Primary() (Monitor, bool) {
	if i := slices.IndexFunc(s, func(m Monitor) bool { return m.Primary }); i >= 0 {
		return s[i], true
	}
	if len(s) > 0 {
		return s[0], true
	}
	return Monitor{}, false
}

// Place returns the position that centers win.
//
// With a parent, win is centered on the parent and then pulled back inside
// the work area of the monitor under the parent's top left corner, along
// the axes where it spills out. Without one, win is centered in the work
// area of the monitor under its own top left corner. Place reports false
// when no monitor is under the reference corner.
func Place(mons Set, win geom.BBox, parent *geom.BBox) (geom.Position, bool) {
	ref := win
	if parent != nil {
		ref = *parent
	}
	m, ok := mons.At(ref.Left, ref.Top)
	if !ok {
		boxkit.Logger().Debug("screen: no monitor found", "x", ref.Left, "y", ref.Top)
		return geom.Position{}, false
	}
	work := m.WorkArea()
	boxkit.Logger().Debug("screen: placing window", "monitor", m.Name, "work", work)
	if parent == nil {
		return work.Center(win).Position(), true
	}
	centered := parent.Center(win)
	placed := work.LazyCenter(centered)
	if placed != centered {
		boxkit.Logger().Debug("screen: recentered in work area", "monitor", m.Name, "from", centered, "to", placed)
	}
	return placed.Position(), true
}
