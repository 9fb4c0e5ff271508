// SPDX-License-Identifier: Unlicense OR MIT

/*
Package boxkit holds the shared configuration of the boxkit packages.

The interesting code lives in the sub-packages:

  - geom: aspect ratios, sizes, edge spacing, bounding boxes and the
    resize policies built on them.
  - future: futures completed by callbacks scheduled on a single-threaded
    UI loop.
  - loop: a cooperative single-goroutine loop implementing future.Scheduler.
  - screen: window placement across monitors.
  - imagefit and textsize: Sized sources for images and text.

By default nothing is logged; see SetLogger.
*/
package boxkit
