// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "fmt"

// Edges is the spacing around the four sides of a box, following the CSS box
// model. Padding, Border and Margin are the concrete layers.
type Edges struct {
	Top, Right, Bottom, Left int
}

// Padding is the space between a box's content and its border.
type Padding struct{ Edges }

// Border is the space taken by a box's border. Line style and color are not
// modeled.
type Border struct{ Edges }

// Margin is the space outside a box's border.
type Margin struct{ Edges }

// NewEdges expands 1 to 4 values the way CSS padding shorthand does:
//
//	NewEdges(all)
//	NewEdges(vertical, horizontal)
//	NewEdges(top, horizontal, bottom)
//	NewEdges(top, right, bottom, left)
func NewEdges(v ...int) (Edges, error) {
	for _, n := range v {
		if n < 0 {
			return Edges{}, fmt.Errorf("%w: negative edge spacing %v", ErrGeometry, v)
		}
	}
	switch len(v) {
	case 1:
		return Edges{Top: v[0], Right: v[0], Bottom: v[0], Left: v[0]}, nil
	case 2:
		return Edges{Top: v[0], Right: v[1], Bottom: v[0], Left: v[1]}, nil
	case 3:
		return Edges{Top: v[0], Right: v[1], Bottom: v[2], Left: v[1]}, nil
	case 4:
		return Edges{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}, nil
	default:
		return Edges{}, fmt.Errorf("%w: edge spacing takes 1 to 4 values; found %d", ErrGeometry, len(v))
	}
}

// NewPadding is NewEdges for Padding.
func NewPadding(v ...int) (Padding, error) {
	e, err := NewEdges(v...)
	return Padding{e}, err
}

// NewBorder is NewEdges for Border.
func NewBorder(v ...int) (Border, error) {
	e, err := NewEdges(v...)
	return Border{e}, err
}

// NewMargin is NewEdges for Margin.
func NewMargin(v ...int) (Margin, error) {
	e, err := NewEdges(v...)
	return Margin{e}, err
}

// UniformPadding returns Padding with v on every side. Negative values are
// treated as 0.
func UniformPadding(v int) Padding {
	if v < 0 {
		v = 0
	}
	return Padding{Edges{Top: v, Right: v, Bottom: v, Left: v}}
}

// IsZero reports whether every side is 0.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

// Around returns the size of s with e added on every side.
func (e Edges) Around(s Sized) Size {
	sz := s.Size()
	return Size{Width: sz.Width + e.Horizontal(), Height: sz.Height + e.Vertical()}
}

// Inset shrinks b by e.
func (e Edges) Inset(b BBox) (BBox, error) {
	in := BBox{Left: b.Left + e.Left, Top: b.Top + e.Top, Right: b.Right - e.Right, Bottom: b.Bottom - e.Bottom}
	if !in.Valid() {
		return BBox{}, fmt.Errorf("%w: %v does not fit inside %v", ErrGeometry, e, b)
	}
	return in, nil
}

// Outset grows b by e.
func (e Edges) Outset(b BBox) BBox {
	return BBox{Left: b.Left - e.Left, Top: b.Top - e.Top, Right: b.Right + e.Right, Bottom: b.Bottom + e.Bottom}
}

func (e Edges) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", e.Top, e.Right, e.Bottom, e.Left)
}
