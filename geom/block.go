// SPDX-License-Identifier: Unlicense OR MIT

package geom

// Block is a positioned box of content surrounded by padding.
type Block struct {
	Content Size
	Pos     Position
	Pad     Padding
}

// Size returns the content size plus padding.
func (b Block) Size() Size {
	return b.Pad.Around(b.Content)
}

// BBox returns the outer box of b, padding included, placed at Pos.
func (b Block) BBox() BBox {
	sz := b.Size()
	return FromPosSize(b.Pos.X, b.Pos.Y, sz.Width, sz.Height)
}

// ContentBox returns the box of the content alone.
func (b Block) ContentBox() BBox {
	return FromPosSize(b.Pos.X+b.Pad.Left, b.Pos.Y+b.Pad.Top, b.Content.Width, b.Content.Height)
}
