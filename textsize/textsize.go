// SPDX-License-Identifier: Unlicense OR MIT

// Package textsize measures text so that labels can take part in the geom
// sizing policies.
package textsize

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tkgui/boxkit/geom"
)

// Default returns the face used when none is given, a 7x13 fixed width
// bitmap font.
func Default() font.Face {
	return basicfont.Face7x13
}

// Measure returns the pixel size of s set in face. Lines are separated by
// "\n". The width is the advance of the widest line and the height is the
// number of lines times the face's line height, both rounded up. An empty
// string measures as one empty line.
func Measure(face font.Face, s string) geom.Size {
	if face == nil {
		face = Default()
	}
	var widest fixed.Int26_6
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		if w := font.MeasureString(face, l); w > widest {
			widest = w
		}
	}
	h := face.Metrics().Height.Mul(fixed.I(len(lines)))
	return geom.Sz(widest.Ceil(), h.Ceil())
}

// Label is text with padding. It implements geom.Sized.
type Label struct {
	Text string
	// Face is the font; nil means Default.
	Face font.Face
	Pad  geom.Padding
}

func (l Label) Size() geom.Size {
	return l.Pad.Around(Measure(l.Face, l.Text))
}
