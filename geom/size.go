// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Sized is implemented by anything with a pixel size. Size, BBox and Block
// implement it, so operations taking a Sized accept a bare size as well as
// an object that has one.
type Sized interface {
	Size() Size
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// Position is the X, Y coordinate of a box's top left corner.
type Position struct {
	X, Y int
}

// Pt is shorthand for Position{X: x, Y: y}.
func Pt(x, y int) Position {
	return Position{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Size returns s itself so that a Size satisfies Sized.
func (s Size) Size() Size { return s }

// Area returns Width * Height.
func (s Size) Area() int { return s.Width * s.Height }

// Empty reports whether s has no area.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// AspectRatio returns the reduced Width:Height ratio.
func (s Size) AspectRatio() (AspectRatio, error) {
	return NewAspectRatio(s.Width, s.Height)
}

// Pad returns s grown by e on every side.
func (s Size) Pad(e Edges) Size {
	return e.Around(s)
}

func (s Size) String() string {
	return fmt.Sprintf("%d x %d", s.Width, s.Height)
}

// ParseSize parses "WxH", also accepting "W x H", "W*H" and "W,H".
func ParseSize(str string) (Size, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	i := strings.IndexAny(str, "x*,")
	if i < 0 {
		return Size{}, fmt.Errorf("geom: malformed size %q", str)
	}
	w, err := strconv.Atoi(strings.TrimSpace(str[:i]))
	if err != nil {
		return Size{}, fmt.Errorf("geom: malformed size %q: %w", str, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(str[i+1:]))
	if err != nil {
		return Size{}, fmt.Errorf("geom: malformed size %q: %w", str, err)
	}
	if w < 0 || h < 0 {
		return Size{}, fmt.Errorf("%w: negative size %q", ErrGeometry, str)
	}
	return Size{Width: w, Height: h}, nil
}

// Add returns the point p+q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Position) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
