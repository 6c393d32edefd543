// Package stroke converts stroked polylines into filled outlines.
//
// Every segment becomes a quad offset by half the line width on each side.
// Interior vertices get a join piece and open ends get caps. All pieces are
// wound the same way, so filling them together with a non-zero rasterizer
// gives the union without seams.
//
// # Line Caps
//
//   - CapButt: flat end exactly at the endpoint
//   - CapRound: half disk of radius width/2
//   - CapSquare: flat end extended width/2 past the endpoint
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falling back to a bevel past the miter limit
//   - JoinRound: disk at the corner
//   - JoinBevel: straight cut across the corner
//
// # Usage
//
//	st := stroke.Style{Width: 2, Cap: stroke.CapButt, Join: stroke.JoinMiter, MiterLimit: 4}
//	pieces := stroke.Outline(pts, false, st)
//
// Dash patterns split a polyline into its visible runs before outlining:
//
//	d := stroke.NewDash(8, 4)
//	for _, run := range d.Apply(pts, true) {
//	    pieces = append(pieces, stroke.Outline(run, false, st)...)
//	}
package stroke
