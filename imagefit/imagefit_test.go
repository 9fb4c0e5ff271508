// SPDX-License-Identifier: Unlicense OR MIT

package imagefit

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/draw"

	"github.com/tkgui/boxkit/geom"
)

// gradient returns an image over r whose pixels encode their coordinates.
func gradient(r image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestSourceSize(t *testing.T) {
	src := Source{gradient(image.Rect(5, 5, 45, 25))}
	if got, want := src.Size(), geom.Sz(40, 20); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}
}

func TestTargetSize(t *testing.T) {
	src := geom.Sz(400, 200)
	tests := []struct {
		mode Mode
		box  geom.Size
		want geom.Size
	}{
		{Fit, geom.Sz(100, 100), geom.Sz(100, 50)},
		{Fit, geom.Sz(1000, 1000), geom.Sz(400, 200)},
		{Fill, geom.Sz(1000, 1000), geom.Sz(1000, 500)},
		{Scale, geom.Sz(200, 200), geom.Sz(100, 50)},
		{Exact, geom.Sz(100, 100), geom.Sz(100, 100)},
	}
	for _, tc := range tests {
		got, err := TargetSize(src, tc.box, tc.mode, true)
		if err != nil {
			t.Errorf("TargetSize(%v, %v): %v", tc.box, tc.mode, err)
			continue
		}
		if got != tc.want {
			t.Errorf("TargetSize(%v, %v) = %v, want %v", tc.box, tc.mode, got, tc.want)
		}
	}
	if _, err := TargetSize(src, geom.Sz(0, 10), Exact, true); !errors.Is(err, geom.ErrGeometry) {
		t.Errorf("Exact into empty box: error = %v, want ErrGeometry", err)
	}
	if _, err := TargetSize(src, geom.Sz(10, 10), Mode(42), true); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestModeNames(t *testing.T) {
	for _, m := range []Mode{Fit, Fill, Scale, Exact} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if m, err := ParseMode(" FILL "); err != nil || m != Fill {
		t.Errorf("ParseMode is case sensitive: %v, %v", m, err)
	}
	if _, err := ParseMode("stretch"); err == nil {
		t.Error("ParseMode accepted an unknown name")
	}
	if s := Mode(-1).String(); s != "Mode(-1)" {
		t.Errorf("String = %q", s)
	}
}

func TestResize(t *testing.T) {
	red := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	draw.Draw(red, red.Bounds(), image.NewUniform(color.NRGBA{R: 0xff, A: 0xff}), image.Point{}, draw.Src)
	for _, kernel := range []draw.Interpolator{nil, draw.ApproxBiLinear} {
		got, err := Resize(red, geom.Sz(20, 10), kernel)
		if err != nil {
			t.Fatal(err)
		}
		if b := got.Bounds(); b != image.Rect(0, 0, 20, 10) {
			t.Errorf("bounds = %v", b)
		}
		if c := got.NRGBAAt(10, 5); c.R < 0xf0 || c.G != 0 || c.B != 0 || c.A < 0xf0 {
			t.Errorf("center pixel = %v, want opaque red", c)
		}
	}
	if _, err := Resize(red, geom.Sz(0, 10), nil); !errors.Is(err, geom.ErrGeometry) {
		t.Errorf("empty size: error = %v, want ErrGeometry", err)
	}
}

// opaque hides the SubImage method of the image it wraps.
type opaque struct{ image.Image }

func TestCropToRatio(t *testing.T) {
	img := gradient(image.Rect(10, 10, 50, 30))
	square := geom.MustParseAspectRatio("1:1")

	sub, err := CropToRatio(img, square)
	if err != nil {
		t.Fatal(err)
	}
	if b := sub.Bounds(); b != image.Rect(20, 10, 40, 30) {
		t.Errorf("SubImage bounds = %v", b)
	}

	cp, err := CropToRatio(opaque{img}, square)
	if err != nil {
		t.Fatal(err)
	}
	if b := cp.Bounds(); b != image.Rect(0, 0, 20, 20) {
		t.Errorf("copy bounds = %v", b)
	}
	if got, want := cp.At(0, 0), img.At(20, 10); got != want {
		t.Errorf("copied corner = %v, want %v", got, want)
	}

	if _, err := CropToRatio(img, geom.AspectRatio{}); !errors.Is(err, geom.ErrGeometry) {
		t.Errorf("zero ratio: error = %v, want ErrGeometry", err)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"thumb=200x100", Variant{Name: "thumb", Width: 200, Height: 100}},
		{"hero=1920x1080:fill", Variant{Name: "hero", Width: 1920, Height: 1080, Mode: Fill}},
		{" icon = 64*64:exact", Variant{Name: "icon", Width: 64, Height: 64, Mode: Exact}},
	}
	for _, tc := range tests {
		got, err := ParseVariant(tc.in)
		if err != nil {
			t.Errorf("ParseVariant(%q): %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseVariant(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
	for _, in := range []string{"", "thumb", "=10x10", "thumb=10", "thumb=10x10:blur", "thumb=0x10"} {
		if _, err := ParseVariant(in); err == nil {
			t.Errorf("ParseVariant(%q) succeeded", in)
		}
	}
	v := Variant{Name: "hero", Width: 10, Height: 5, Mode: Scale}
	if s := v.String(); s != "hero=10x5:scale" {
		t.Errorf("String = %q", s)
	}
}

func TestResizeAll(t *testing.T) {
	img := gradient(image.Rect(0, 0, 40, 20))
	variants := []Variant{
		{Name: "small", Width: 10, Height: 10},
		{Name: "stretched", Width: 80, Height: 10, Mode: Exact},
		{Name: "big", Width: 400, Height: 400, Mode: Fill},
	}
	out, err := ResizeAll(context.Background(), img, variants)
	if err != nil {
		t.Fatal(err)
	}
	var got []image.Rectangle
	for _, o := range out {
		got = append(got, o.Bounds())
	}
	want := []image.Rectangle{image.Rect(0, 0, 10, 5), image.Rect(0, 0, 80, 10), image.Rect(0, 0, 400, 200)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestResizeAllErrors(t *testing.T) {
	img := gradient(image.Rect(0, 0, 4, 4))
	if _, err := ResizeAll(context.Background(), img, nil); err == nil {
		t.Error("no variants accepted")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ResizeAll(ctx, img, []Variant{{Name: "a", Width: 2, Height: 2}}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: error = %v", err)
	}
	_, err := ResizeAll(context.Background(), img, []Variant{{Name: "empty", Width: 0, Height: 2}})
	if !errors.Is(err, geom.ErrGeometry) {
		t.Errorf("empty variant: error = %v, want ErrGeometry", err)
	}
}
