// SPDX-License-Identifier: Unlicense OR MIT

// Package imagefit applies the geom resize policies to images.
package imagefit

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/tkgui/boxkit"
	"github.com/tkgui/boxkit/geom"
)

// Source adapts an image to geom.Sized.
type Source struct {
	image.Image
}

// Size returns the size of the image bounds.
func (s Source) Size() geom.Size {
	b := s.Bounds()
	return geom.Sz(b.Dx(), b.Dy())
}

// Mode selects the resize policy used to fit an image to a box.
type Mode int

const (
	// Fit shrinks the image to fit inside the box and never enlarges it.
	Fit Mode = iota
	// Fill is Fit, except that images smaller than the box on both axes
	// are enlarged to fill it.
	Fill
	// Scale sizes the image toward the box regardless of its size. See
	// geom.Size.Scale.
	Scale
	// Exact stretches the image to the box, ignoring its aspect ratio.
	Exact
)

var modeNames = [...]string{Fit: "fit", Fill: "fill", Scale: "scale", Exact: "exact"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the Mode named s, ignoring case.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("imagefit: unknown mode %q", s)
}

// TargetSize returns the size src should be resized to for box under mode.
func TargetSize(src geom.Sized, box geom.Size, mode Mode, keepRatio bool) (geom.Size, error) {
	s := src.Size()
	switch mode {
	case Fit:
		return s.FitInside(box, keepRatio)
	case Fill:
		return s.Fill(box, keepRatio)
	case Scale:
		return s.Scale(box, keepRatio)
	case Exact:
		if box.Empty() {
			return geom.Size{}, fmt.Errorf("%w: target box %v is empty", geom.ErrGeometry, box)
		}
		return box, nil
	default:
		return geom.Size{}, fmt.Errorf("imagefit: unknown mode %v", mode)
	}
}

// Resize scales img to size with kernel, or draw.CatmullRom when kernel is
// nil. draw.ApproxBiLinear is a cheaper choice for previews.
func Resize(img image.Image, size geom.Size, kernel draw.Interpolator) (*image.NRGBA, error) {
	if size.Empty() {
		return nil, fmt.Errorf("%w: cannot resize to %v", geom.ErrGeometry, size)
	}
	if kernel == nil {
		kernel = draw.CatmullRom
	}
	dst := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.Width, Y: size.Height}})
	kernel.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// CropToRatio returns the largest centered part of img with ratio r.
// Images that support SubImage share their pixels with the result; others
// are copied.
func CropToRatio(img image.Image, r geom.AspectRatio) (image.Image, error) {
	b := img.Bounds()
	crop, err := geom.FromPosSize(0, 0, b.Dx(), b.Dy()).CropToAspectRatio(r)
	if err != nil {
		return nil, err
	}
	rect := image.Rect(crop.Left, crop.Top, crop.Right, crop.Bottom).Add(b.Min)
	if sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(rect), nil
	}
	dst := image.NewNRGBA(image.Rectangle{Max: rect.Size()})
	draw.Draw(dst, dst.Bounds(), img, rect.Min, draw.Src)
	return dst, nil
}

// Variant is one named output size.
type Variant struct {
	Name   string
	Width  int
	Height int
	Mode   Mode
}

// Box returns the target box Width x Height.
func (v Variant) Box() geom.Size { return geom.Sz(v.Width, v.Height) }

func (v Variant) String() string {
	return fmt.Sprintf("%s=%dx%d:%v", v.Name, v.Width, v.Height, v.Mode)
}

// ParseVariant parses "name=WxH" or "name=WxH:mode". The mode defaults to
// Fit.
func ParseVariant(s string) (Variant, error) {
	name, rest, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Variant{}, fmt.Errorf("imagefit: variant %q: want name=WxH[:mode]", s)
	}
	v := Variant{Name: name}
	size, mode, ok := strings.Cut(rest, ":")
	if ok {
		m, err := ParseMode(mode)
		if err != nil {
			return Variant{}, fmt.Errorf("imagefit: variant %q: %w", s, err)
		}
		v.Mode = m
	}
	sz, err := geom.ParseSize(size)
	if err != nil {
		return Variant{}, fmt.Errorf("imagefit: variant %q: %w", s, err)
	}
	if sz.Empty() {
		return Variant{}, fmt.Errorf("%w: variant %q has an empty size", geom.ErrGeometry, s)
	}
	v.Width, v.Height = sz.Width, sz.Height
	return v, nil
}

// errVariant wraps the error of a variant with its name.
func errVariant(v Variant, err error) error {
	return fmt.Errorf("imagefit: variant %s: %w", v.Name, err)
}

// ResizeAll resizes img to every variant in parallel, keeping aspect ratios,
// and returns the results in the order of variants. It stops early when ctx
// is done or any variant fails.
func ResizeAll(ctx context.Context, img image.Image, variants []Variant) ([]image.Image, error) {
	if len(variants) == 0 {
		return nil, errors.New("imagefit: no variants")
	}
	out := make([]image.Image, len(variants))
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			size, err := TargetSize(Source{img}, v.Box(), v.Mode, true)
			if err != nil {
				return errVariant(v, err)
			}
			boxkit.Logger().Debug("imagefit: resizing", "variant", v.Name, "size", size)
			scaled, err := Resize(img, size, nil)
			if err != nil {
				return errVariant(v, err)
			}
			out[i] = scaled
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
