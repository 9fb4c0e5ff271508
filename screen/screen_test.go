// SPDX-License-Identifier: Unlicense OR MIT

package screen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tkgui/boxkit/geom"
)

// desktop has a primary monitor on the right of a secondary one, both with
// a task bar along the bottom.
var desktop = Set{
	{Name: "left", Full: geom.Rect(-1920, 0, 0, 1080), Work: geom.Rect(-1920, 0, 0, 1040)},
	{Name: "right", Primary: true, Full: geom.Rect(0, 0, 2560, 1440), Work: geom.Rect(0, 0, 2560, 1400)},
	{Name: "above", Full: geom.Rect(0, -1080, 1920, 0)},
}

func TestWorkArea(t *testing.T) {
	if got, want := desktop[0].WorkArea(), geom.Rect(-1920, 0, 0, 1040); got != want {
		t.Errorf("WorkArea = %v, want %v", got, want)
	}
	if got, want := desktop[2].WorkArea(), desktop[2].Full; got != want {
		t.Errorf("WorkArea without Work = %v, want %v", got, want)
	}
	if got, want := desktop[1].Size(), geom.Sz(2560, 1440); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}
	if got, want := desktop[0].Position(), geom.Pt(-1920, 0); got != want {
		t.Errorf("Position = %v, want %v", got, want)
	}
}

func TestSorted(t *testing.T) {
	var names []string
	for _, m := range desktop.Sorted() {
		names = append(names, m.Name)
	}
	if diff := cmp.Diff([]string{"right", "above", "left"}, names); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}
	if desktop[0].Name != "left" {
		t.Error("Sorted modified its receiver")
	}
}

func TestAt(t *testing.T) {
	tests := []struct {
		x, y int
		want string
		ok   bool
	}{
		{-100, 500, "left", true},
		{100, 500, "right", true},
		{100, -500, "above", true},
		// Shared edges belong to the monitor listed first.
		{0, 500, "left", true},
		{-100, -100, "", false},
		{3000, 0, "", false},
	}
	for _, tc := range tests {
		m, ok := desktop.At(tc.x, tc.y)
		if ok != tc.ok || m.Name != tc.want {
			t.Errorf("At(%d, %d) = %q, %v; want %q, %v", tc.x, tc.y, m.Name, ok, tc.want, tc.ok)
		}
	}
}

func TestPrimary(t *testing.T) {
	if m, ok := desktop.Primary(); !ok || m.Name != "right" {
		t.Errorf("Primary = %q, %v", m.Name, ok)
	}
	if m, ok := desktop[2:].Primary(); !ok || m.Name != "above" {
		t.Errorf("Primary without flag = %q, %v", m.Name, ok)
	}
	if _, ok := (Set{}).Primary(); ok {
		t.Error("Primary of an empty set reported a monitor")
	}
}

func TestPlace(t *testing.T) {
	win := geom.FromPosSize(100, 100, 400, 300)
	tests := []struct {
		name   string
		win    geom.BBox
		parent *geom.BBox
		want   geom.Position
		ok     bool
	}{
		{"own monitor", win, nil, geom.Pt(1080, 550), true},
		{"secondary monitor", win.WithPos(-1800, 10), nil, geom.Pt(-1160, 370), true},
		{"parent inside", win, ptr(geom.FromPosSize(200, 200, 800, 600)), geom.Pt(400, 350), true},
		// The parent hugs the bottom of the work area, so the child moves up.
		{"parent at edge", win, ptr(geom.FromPosSize(1000, 1300, 200, 100)), geom.Pt(900, 550), true},
		{"off screen", win.WithPos(5000, 5000), nil, geom.Position{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Place(desktop, tc.win, tc.parent)
			if ok != tc.ok || got != tc.want {
				t.Errorf("Place = %v, %v; want %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func ptr(b geom.BBox) *geom.BBox { return &b }
