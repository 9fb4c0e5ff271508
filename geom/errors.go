// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "errors"

var (
	// ErrInvalidRatio is returned when an aspect ratio would be zero,
	// negative or have a zero denominator.
	ErrInvalidRatio = errors.New("geom: invalid aspect ratio")
	// ErrParse is returned for malformed aspect ratio strings.
	ErrParse = errors.New("geom: malformed aspect ratio")
	// ErrGeometry is returned when an operation would violate a box
	// invariant, such as producing a negative size.
	ErrGeometry = errors.New("geom: invalid geometry")
)
