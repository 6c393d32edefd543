// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/sg/text"

// Option configures an ImageSurface during creation.
//
// Example:
//
//	s := surface.NewImageSurface(640, 480, surface.WithAntiAlias(false))
type Option func(*ImageSurface)

// WithAntiAlias enables or disables anti-aliased edges (default true).
// Primitives whose style asks for aliasing are never anti-aliased.
func WithAntiAlias(on bool) Option {
	return func(s *ImageSurface) {
		s.antiAlias = on
	}
}

// WithFonts sets the registry text faces are taken from.
// The default is text.Default().
func WithFonts(r *text.Registry) Option {
	return func(s *ImageSurface) {
		if r != nil {
			s.fonts = r
		}
	}
}
