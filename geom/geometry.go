// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGeometry parses a window geometry string of the form "WxH+X+Y" as
// used by X11 and Tk. The offsets may be written "+N", "-N" or "+-N", all
// denoting plain desktop coordinates; "WxH" alone places the box at the
// origin.
func ParseGeometry(s string) (BBox, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, "+-")
	sizePart, offsets := s, ""
	if i >= 0 {
		sizePart, offsets = s[:i], s[i:]
	}
	sz, err := ParseSize(sizePart)
	if err != nil {
		return BBox{}, fmt.Errorf("geom: malformed geometry %q: %w", s, err)
	}
	if offsets == "" {
		return FromPosSize(0, 0, sz.Width, sz.Height), nil
	}
	x, rest, err := parseOffset(offsets)
	if err != nil {
		return BBox{}, fmt.Errorf("geom: malformed geometry %q: %w", s, err)
	}
	y, rest, err := parseOffset(rest)
	if err != nil || rest != "" {
		return BBox{}, fmt.Errorf("geom: malformed geometry %q", s)
	}
	return FromPosSize(x, y, sz.Width, sz.Height), nil
}

// parseOffset reads one signed offset off the front of s.
func parseOffset(s string) (int, string, error) {
	if s == "" {
		return 0, "", fmt.Errorf("missing offset")
	}
	neg := s[0] == '-'
	s = s[1:]
	if !neg && strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	end := strings.IndexAny(s, "+-")
	if end < 0 {
		end = len(s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, "", err
	}
	if neg {
		n = -n
	}
	return n, s[end:], nil
}

// Geometry formats b as "WxH+X+Y", writing negative offsets as "+-N".
func (b BBox) Geometry() string {
	return fmt.Sprintf("%dx%d+%d+%d", b.Width(), b.Height(), b.Left, b.Top)
}
