// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "fmt"

// BBox is an axis-aligned box given by its edge coordinates. Right and
// Bottom are exclusive, like image.Rectangle's Max.
//
// Consumers expect Right >= Left and Bottom >= Top. The type does not
// enforce it, but every operation that would produce such a box returns
// ErrGeometry instead.
type BBox struct {
	Left, Top, Right, Bottom int
}

// Rect is shorthand for BBox{Left: l, Top: t, Right: r, Bottom: b}.
func Rect(l, t, r, b int) BBox {
	return BBox{Left: l, Top: t, Right: r, Bottom: b}
}

// FromPosSize returns the box of size w x h with its top left corner at
// (x, y).
func FromPosSize(x, y, w, h int) BBox {
	return BBox{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// FromSized returns a box at the origin with the size of s.
func FromSized(s Sized) BBox {
	sz := s.Size()
	return FromPosSize(0, 0, sz.Width, sz.Height)
}

// Width returns Right - Left.
func (b BBox) Width() int { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b BBox) Height() int { return b.Bottom - b.Top }

// Size returns the width and height of b.
func (b BBox) Size() Size {
	return Size{Width: b.Width(), Height: b.Height()}
}

// Position returns the top left corner of b.
func (b BBox) Position() Position { return b.Min() }

// Min returns the top left corner.
func (b BBox) Min() Position { return Position{X: b.Left, Y: b.Top} }

// Max returns the bottom right corner.
func (b BBox) Max() Position { return Position{X: b.Right, Y: b.Bottom} }

// CenterPos returns the center point, rounded toward the top left.
func (b BBox) CenterPos() Position {
	return Position{X: b.Left + floorDiv(b.Width(), 2), Y: b.Top + floorDiv(b.Height(), 2)}
}

// IsOrigin reports whether b's top left corner is (0, 0).
func (b BBox) IsOrigin() bool { return b.Left == 0 && b.Top == 0 }

// Valid reports whether b has non-negative width and height.
func (b BBox) Valid() bool { return b.Right >= b.Left && b.Bottom >= b.Top }

func (b BBox) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.Left, b.Top, b.Right, b.Bottom)
}

// Contains reports whether o lies within b on both axes. With inclusive set,
// touching edges count as contained.
func (b BBox) Contains(o BBox, inclusive bool) bool {
	return b.ContainsX(o, inclusive) && b.ContainsY(o, inclusive)
}

// ContainsX is Contains for the horizontal axis only.
func (b BBox) ContainsX(o BBox, inclusive bool) bool {
	if inclusive {
		return b.Left <= o.Left && b.Right >= o.Right
	}
	return b.Left < o.Left && b.Right > o.Right
}

// ContainsY is Contains for the vertical axis only.
func (b BBox) ContainsY(o BBox, inclusive bool) bool {
	if inclusive {
		return b.Top <= o.Top && b.Bottom >= o.Bottom
	}
	return b.Top < o.Top && b.Bottom > o.Bottom
}

// FitsInside reports whether b's size fits within the size of s, ignoring
// position.
func (b BBox) FitsInside(s Sized, inclusive bool) bool {
	sz := s.Size()
	return b.FitsInsideX(sz.Width, inclusive) && b.FitsInsideY(sz.Height, inclusive)
}

// FitsInsideX reports whether b's width fits within width.
func (b BBox) FitsInsideX(width int, inclusive bool) bool {
	if inclusive {
		return width >= b.Width()
	}
	return width > b.Width()
}

// FitsInsideY reports whether b's height fits within height.
func (b BBox) FitsInsideY(height int, inclusive bool) bool {
	if inclusive {
		return height >= b.Height()
	}
	return height > b.Height()
}

// FitsAround reports whether the size of s fits within b's size, ignoring
// position.
func (b BBox) FitsAround(s Sized, inclusive bool) bool {
	sz := s.Size()
	return b.FitsAroundX(sz.Width, inclusive) && b.FitsAroundY(sz.Height, inclusive)
}

// FitsAroundX reports whether width fits within b's width.
func (b BBox) FitsAroundX(width int, inclusive bool) bool {
	if inclusive {
		return width <= b.Width()
	}
	return width < b.Width()
}

// FitsAroundY reports whether height fits within b's height.
func (b BBox) FitsAroundY(height int, inclusive bool) bool {
	if inclusive {
		return height <= b.Height()
	}
	return height < b.Height()
}

// WithSizeOffset grows b by dx and dy (negative values shrink it). The top
// left corner stays put unless anchorCenter is set, in which case the box
// grows or shrinks about its center: the corner moves by half the offset,
// rounded down.
func (b BBox) WithSizeOffset(dx, dy int, anchorCenter bool) (BBox, error) {
	w, h := b.Width()+dx, b.Height()+dy
	if w < 0 || h < 0 {
		return BBox{}, fmt.Errorf("%w: offset (%d, %d) leaves %v with size %d x %d", ErrGeometry, dx, dy, b, w, h)
	}
	x, y := b.Left, b.Top
	if anchorCenter {
		x -= halfOffset(dx)
		y -= halfOffset(dy)
	}
	return FromPosSize(x, y, w, h), nil
}

// halfOffset returns |d|/2 rounded down, carrying the sign of d.
func halfOffset(d int) int {
	if d < 0 {
		return -(-d / 2)
	}
	return d / 2
}

// WithPos returns b moved so that its top left corner is (x, y).
func (b BBox) WithPos(x, y int) BBox {
	return FromPosSize(x, y, b.Width(), b.Height())
}

// Offset returns b translated by (dx, dy).
func (b BBox) Offset(dx, dy int) BBox {
	return BBox{Left: b.Left + dx, Top: b.Top + dy, Right: b.Right + dx, Bottom: b.Bottom + dy}
}

// CenterX returns the left coordinate that centers width horizontally in b.
func (b BBox) CenterX(width int) int {
	return b.Left + floorDiv(b.Width()-width, 2)
}

// CenterY returns the top coordinate that centers height vertically in b.
func (b BBox) CenterY(height int) int {
	return b.Top + floorDiv(b.Height()-height, 2)
}

// CenterCoords returns the top left corner that centers s in b.
func (b BBox) CenterCoords(s Sized) Position {
	sz := s.Size()
	return Position{X: b.CenterX(sz.Width), Y: b.CenterY(sz.Height)}
}

// Center returns a box with the size of s whose center coincides with b's.
func (b BBox) Center(s Sized) BBox {
	sz := s.Size()
	return FromPosSize(b.CenterX(sz.Width), b.CenterY(sz.Height), sz.Width, sz.Height)
}

// LazyCenter centers o in b only along the axes where o is not already
// contained in b. Axes that already fit keep o's coordinate, so a box the
// caller placed deliberately does not jump.
func (b BBox) LazyCenter(o BBox) BBox {
	inX, inY := b.ContainsX(o, true), b.ContainsY(o, true)
	if inX && inY {
		return o
	}
	x, y := o.Left, o.Top
	if !inX {
		x = b.CenterX(o.Width())
	}
	if !inY {
		y = b.CenterY(o.Height())
	}
	return FromPosSize(x, y, o.Width(), o.Height())
}

// CenteredCropToRatio is CropToAspectRatio for the ratio x:y.
func (b BBox) CenteredCropToRatio(x, y int) (BBox, error) {
	if !b.IsOrigin() {
		return BBox{}, errCropOffset(b)
	}
	r, err := NewAspectRatio(x, y)
	if err != nil {
		return BBox{}, fmt.Errorf("%w: unable to crop %v to %d:%d: %w", ErrGeometry, b, x, y, err)
	}
	return b.CropToAspectRatio(r)
}

// CropToAspectRatio returns the largest box centered in b with aspect ratio
// r that keeps either b's width or its height. Only boxes anchored at the
// origin may be cropped.
//
// A target wider than b keeps the width and trims the height; a narrower
// target keeps the height and trims the width. The leading edge gets the
// smaller half of an odd excess.
func (b BBox) CropToAspectRatio(r AspectRatio) (BBox, error) {
	if !b.IsOrigin() {
		return BBox{}, errCropOffset(b)
	}
	if r.IsZero() {
		return BBox{}, fmt.Errorf("%w: unable to crop %v to the zero ratio", ErrGeometry, b)
	}
	w, h := b.Width(), b.Height()
	cur, err := b.Size().AspectRatio()
	if err != nil {
		return BBox{}, fmt.Errorf("%w: unable to crop %v to %v: %w", ErrGeometry, b, r, err)
	}
	if r == cur {
		return b, nil
	}
	if r.Cmp(cur) > 0 {
		nh := r.NewHeight(w)
		top := floorDiv(h-nh, 2)
		if top < 0 {
			return BBox{}, fmt.Errorf("%w: unable to crop %v to %v while keeping its width", ErrGeometry, b, r)
		}
		return Rect(0, top, w, top+nh), nil
	}
	nw := r.NewWidth(h)
	left := floorDiv(w-nw, 2)
	if left < 0 {
		return BBox{}, fmt.Errorf("%w: unable to crop %v to %v while keeping its height", ErrGeometry, b, r)
	}
	return Rect(left, 0, left+nw, h), nil
}

func errCropOffset(b BBox) error {
	return fmt.Errorf("%w: crop to ratio requires a box without a top/left offset, got %v", ErrGeometry, b)
}
