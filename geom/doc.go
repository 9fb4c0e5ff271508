// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom implements integer box geometry for laying out widgets: exact
aspect ratios, sizes, CSS-style edge spacing, bounding boxes and the resize
policies that compute a target pixel size for a source with a fixed aspect
ratio.

The coordinate space has the origin in the top left corner with the axes
extending right and down. Every type is an immutable value; operations that
"change" a box return a new one, so values can be shared between goroutines
without synchronization.
*/
package geom
