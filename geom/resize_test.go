// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"errors"
	"testing"
)

func TestTargetSize(t *testing.T) {
	src := Sz(1920, 1080)
	tests := []struct {
		name string
		w, h float64
		keep bool
		want Size
	}{
		{"unspecified", 0, 0, true, Sz(1920, 1080)},
		{"height only", 0, 540, true, Sz(960, 540)},
		{"width only", 960, 0, true, Sz(960, 540)},
		{"narrower box", 800, 600, true, Sz(800, 450)},
		{"wider box", 1000, 400, true, Sz(711, 400)},
		{"equal ratio", 1600, 900, true, Sz(1600, 900)},
		{"no ratio", 800.9, 600.2, false, Sz(800, 600)},
		{"no ratio height only", 0, 500, false, Sz(1920, 500)},
		{"no ratio width only", 500, 0, false, Sz(500, 1080)},
		{"sub-pixel clamps", 0.5, 0.25, false, Sz(1, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := src.TargetSize(tc.w, tc.h, tc.keep)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("TargetSize(%v, %v, %v) = %v, want %v", tc.w, tc.h, tc.keep, got, tc.want)
			}
		})
	}
}

func TestFitInside(t *testing.T) {
	src := Sz(1920, 1080)
	tests := []struct {
		box  Size
		keep bool
		want Size
	}{
		{Sz(2000, 2000), true, Sz(1920, 1080)},
		{Sz(1920, 1080), true, Sz(1920, 1080)},
		{Sz(2000, 540), true, Sz(960, 540)},
		{Sz(960, 2000), true, Sz(960, 540)},
		{Sz(800, 600), true, Sz(800, 450)},
		{Sz(800, 600), false, Sz(800, 600)},
		{Sz(2000, 540), false, Sz(1920, 540)},
	}
	for _, tc := range tests {
		got, err := src.FitInside(tc.box, tc.keep)
		if err != nil {
			t.Errorf("FitInside(%v, %v): %v", tc.box, tc.keep, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FitInside(%v, %v) = %v, want %v", tc.box, tc.keep, got, tc.want)
		}
	}
}

func TestFitInsideNeverExceedsBox(t *testing.T) {
	boxes := []Size{Sz(1, 1), Sz(7, 3), Sz(100, 100), Sz(640, 480), Sz(33, 250)}
	for w := 1; w <= 120; w += 7 {
		for h := 1; h <= 120; h += 5 {
			src := Sz(w, h)
			for _, box := range boxes {
				got, err := src.FitInside(box, true)
				if err != nil {
					t.Fatalf("%v.FitInside(%v): %v", src, box, err)
				}
				if got.Width > box.Width || got.Height > box.Height {
					t.Errorf("%v.FitInside(%v) = %v exceeds the box", src, box, got)
				}
				if got.Width > src.Width || got.Height > src.Height {
					t.Errorf("%v.FitInside(%v) = %v upscaled the source", src, box, got)
				}
			}
		}
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		src, box Size
		keep     bool
		want     Size
	}{
		{Sz(192, 108), Sz(1920, 1920), true, Sz(1920, 1080)},
		{Sz(192, 108), Sz(1920, 1920), false, Sz(1920, 1920)},
		{Sz(1920, 1080), Sz(800, 600), true, Sz(800, 450)},
		{Sz(100, 500), Sz(200, 400), true, Sz(80, 400)},
	}
	for _, tc := range tests {
		got, err := tc.src.Fill(tc.box, tc.keep)
		if err != nil {
			t.Errorf("%v.Fill(%v, %v): %v", tc.src, tc.box, tc.keep, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v.Fill(%v, %v) = %v, want %v", tc.src, tc.box, tc.keep, got, tc.want)
		}
	}
}

func TestFillUpscalesSmallSources(t *testing.T) {
	box := Sz(300, 200)
	for w := 1; w < box.Width; w += 11 {
		for h := 1; h < box.Height; h += 13 {
			src := Sz(w, h)
			got, err := src.Fill(box, true)
			if err != nil {
				t.Fatalf("%v.Fill(%v): %v", src, box, err)
			}
			if got == src {
				t.Errorf("%v.Fill(%v) returned the unscaled source", src, box)
			}
			if got.Width != box.Width && got.Height != box.Height {
				t.Errorf("%v.Fill(%v) = %v touches neither edge of the box", src, box, got)
			}
			if got.Width < src.Width || got.Height < src.Height {
				t.Errorf("%v.Fill(%v) = %v shrank the source", src, box, got)
			}
		}
	}
}

func TestScale(t *testing.T) {
	src := Sz(200, 100)
	got, err := src.Scale(Sz(100, 100), true)
	if err != nil {
		t.Fatal(err)
	}
	if want := Sz(50, 25); got != want {
		t.Errorf("Scale(keep) = %v, want %v", got, want)
	}
	got, err = src.Scale(Sz(100, 100), false)
	if err != nil {
		t.Fatal(err)
	}
	if want := Sz(50, 100); got != want {
		t.Errorf("Scale(no keep) = %v, want %v", got, want)
	}
}

func TestScalePercent(t *testing.T) {
	got, err := Sz(1920, 1080).ScalePercent(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if want := Sz(960, 540); got != want {
		t.Errorf("ScalePercent(0.5) = %v, want %v", got, want)
	}
	got, err = Sz(100, 50).ScalePercent(2)
	if err != nil {
		t.Fatal(err)
	}
	if want := Sz(200, 100); got != want {
		t.Errorf("ScalePercent(2) = %v, want %v", got, want)
	}
	if _, err := Sz(100, 50).ScalePercent(0); !errors.Is(err, ErrGeometry) {
		t.Errorf("ScalePercent(0) error = %v, want ErrGeometry", err)
	}
}

func TestResizeErrors(t *testing.T) {
	if _, err := Sz(0, 10).TargetSize(5, 5, true); !errors.Is(err, ErrGeometry) {
		t.Errorf("TargetSize on empty source: error = %v, want ErrGeometry", err)
	}
	if _, err := Sz(0, 10).TargetSize(5, 5, false); err != nil {
		t.Errorf("TargetSize without ratio should not need one: %v", err)
	}
	if _, err := Sz(10, 10).FitInside(Sz(0, 5), true); !errors.Is(err, ErrGeometry) {
		t.Errorf("FitInside empty box: error = %v, want ErrGeometry", err)
	}
	if _, err := Sz(10, 10).Fill(Sz(5, 0), true); !errors.Is(err, ErrGeometry) {
		t.Errorf("Fill empty box: error = %v, want ErrGeometry", err)
	}
	if _, err := Sz(0, 10).Scale(Sz(5, 5), true); !errors.Is(err, ErrGeometry) {
		t.Errorf("Scale empty source: error = %v, want ErrGeometry", err)
	}
}

func TestResizeThroughSized(t *testing.T) {
	// A BBox's size feeds the same policies.
	b := FromPosSize(30, 40, 400, 300)
	got, err := b.Size().FitInside(Sz(200, 200), true)
	if err != nil {
		t.Fatal(err)
	}
	if want := Sz(200, 150); got != want {
		t.Errorf("FitInside = %v, want %v", got, want)
	}
}
