// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"fmt"
	"math"
)

// The resize policies below compute target sizes for a source of size s.
// Requested dimensions are float64 because scaling produces fractional
// targets; a requested dimension <= 0 means "unspecified". Results are
// floored and clamped to at least 1 pixel. The aspect ratio arithmetic is
// exact, so repeated resizes do not drift.

// TargetSize returns the size s should be resized to for the requested
// width w and height h.
//
// With neither dimension given, s is returned unchanged. With one given,
// the other is derived from s's aspect ratio, or kept as is when keepRatio
// is false. With both given and keepRatio set, the result is the largest
// size with s's ratio inside w x h: when w/h >= ratio the height is used and
// the width derived, otherwise the width is used and the height derived.
func (s Size) TargetSize(w, h float64, keepRatio bool) (Size, error) {
	wSet, hSet := w > 0, h > 0
	switch {
	case !wSet && !hSet:
		return s, nil
	case !wSet:
		dh := floorDim(h)
		if !keepRatio {
			return Size{Width: s.Width, Height: dh}, nil
		}
		r, err := s.ratio()
		if err != nil {
			return Size{}, err
		}
		return Size{Width: r.NewWidth(dh), Height: dh}, nil
	case !hSet:
		dw := floorDim(w)
		if !keepRatio {
			return Size{Width: dw, Height: s.Height}, nil
		}
		r, err := s.ratio()
		if err != nil {
			return Size{}, err
		}
		return Size{Width: dw, Height: r.NewHeight(dw)}, nil
	case keepRatio:
		r, err := s.ratio()
		if err != nil {
			return Size{}, err
		}
		return r.boundedSize(floorDim(w), floorDim(h)), nil
	default:
		return Size{Width: floorDim(w), Height: floorDim(h)}, nil
	}
}

// FitInside returns a size for s that fits entirely inside box. A source
// that already fits is returned unchanged; it is never upscaled.
func (s Size) FitInside(box Size, keepRatio bool) (Size, error) {
	if err := checkBox(box); err != nil {
		return Size{}, err
	}
	wOK, hOK := s.Width <= box.Width, s.Height <= box.Height
	switch {
	case wOK && hOK:
		return s, nil
	case wOK:
		return s.TargetSize(float64(s.Width), float64(box.Height), keepRatio)
	case hOK:
		return s.TargetSize(float64(box.Width), float64(s.Height), keepRatio)
	default:
		return s.TargetSize(float64(box.Width), float64(box.Height), keepRatio)
	}
}

// Fill is like FitInside, except that a source smaller than box on both axes
// is upscaled to fill it.
func (s Size) Fill(box Size, keepRatio bool) (Size, error) {
	if err := checkBox(box); err != nil {
		return Size{}, err
	}
	if s.Width >= box.Width || s.Height >= box.Height {
		return s.FitInside(box, keepRatio)
	}
	return s.TargetSize(float64(box.Width), float64(box.Height), keepRatio)
}

// Scale sizes s toward box regardless of its current size. Each axis
// targets box / (current / box), so that when s is the bounding box of an
// image's visible content, cropping the scaled image to that content comes
// as close to box as possible.
func (s Size) Scale(box Size, keepRatio bool) (Size, error) {
	if err := checkBox(box); err != nil {
		return Size{}, err
	}
	if s.Empty() {
		return Size{}, fmt.Errorf("%w: cannot scale the empty size %v", ErrGeometry, s)
	}
	bw, bh := float64(box.Width), float64(box.Height)
	tw := bw / (float64(s.Width) / bw)
	th := bh / (float64(s.Height) / bh)
	return s.TargetSize(tw, th, keepRatio)
}

// ScalePercent multiplies both dimensions by pct (1 is 100%) and keeps the
// aspect ratio.
func (s Size) ScalePercent(pct float64) (Size, error) {
	if pct <= 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return Size{}, fmt.Errorf("%w: invalid scale %v", ErrGeometry, pct)
	}
	return s.TargetSize(float64(s.Width)*pct, float64(s.Height)*pct, true)
}

func (s Size) ratio() (AspectRatio, error) {
	r, err := s.AspectRatio()
	if err != nil {
		return AspectRatio{}, fmt.Errorf("%w: %v has no aspect ratio: %w", ErrGeometry, s, err)
	}
	return r, nil
}

// boundedSize returns the largest size with ratio r inside x by y. Equal
// ratios take the first branch and derive the width.
func (r AspectRatio) boundedSize(x, y int) Size {
	if cmpFrac(int64(x), int64(y), r.x, r.y) >= 0 {
		return Size{Width: r.NewWidth(y), Height: y}
	}
	return Size{Width: x, Height: r.NewHeight(x)}
}

func checkBox(box Size) error {
	if box.Empty() {
		return fmt.Errorf("%w: target box %v is empty", ErrGeometry, box)
	}
	return nil
}

func floorDim(f float64) int {
	f = math.Floor(f)
	switch {
	case f < 1 || math.IsNaN(f):
		return 1
	case f > maxDim:
		return maxDim
	}
	return int(f)
}
