// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface paints scene graph shapes into pixel buffers.
//
// ImageSurface implements sg.Surface on an *image.RGBA. Every primitive
// arrives with an sg.Style carrying its colors, line settings, opacity and
// the transform that maps shape coordinates to pixels.
//
// # Rendering
//
// Curves are flattened to polylines in shape coordinates and then mapped
// through the style transform, so rotated and scaled shapes are exact up to
// the flattening tolerance. Convex fills and stroke outlines are covered with
// golang.org/x/image/vector using the nonzero rule; polygons use a small
// even-odd scanline filler so self-intersecting outlines leave holes the same
// way hit testing does.
//
// Strokes are expanded to polygons by internal/stroke. Dashed line styles
// are split into dashes first; the pattern scales with the line width.
//
// Text is drawn with golang.org/x/image/font faces from a text.Registry.
// Images and rotated text are resampled with golang.org/x/image/draw.
//
// # Clipping
//
// SetClip restricts painting to a rectangle. A canvas repainting a damaged
// region clears the region and redraws the whole tree with the clip set.
//
// Example:
//
//	s := surface.NewImageSurface(320, 240)
//	s.Clear(color.White)
//	root.Draw(s)
//	img := s.Snapshot()
package surface
