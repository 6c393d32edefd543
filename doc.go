// Package sg provides a retained-mode 2D scene graph.
//
// # Overview
//
// A scene is a tree of shapes. Leaves are arcs, lines, ovals, polygons,
// rectangles, rounded rectangles, text and images; a Compound groups shapes
// and fixes the order they are painted in. Every shape knows its bounds and
// can answer whether a point lies inside it, which is all a UI layer needs
// for hit testing.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/sg"
//		"github.com/gogpu/sg/canvas"
//	)
//
//	env := sg.NewEnv()
//	cv := canvas.New(env, 400, 300)
//
//	r := sg.NewRect(20, 20, 100, 60)
//	r.SetFillColor("light blue")
//	cv.Root().Add(r)
//
//	label := sg.NewText(env, "hello", 30, 55)
//	cv.Root().Add(label)
//
//	if cv.Root().TopElementAt(50, 40) == r {
//		r.SetColor("red")
//	}
//	cv.SavePNG("scene.png")
//
// # Stacking Order
//
// Element 0 of a compound paints first and is at the back; the last element
// paints last and is in front. ElementAt scans from the back and returns the
// back-most hit; TopElementAt scans from the front.
//
// # Repainting
//
// Every change that affects appearance asks the compound at the root of the
// tree to repaint the Canvas it is attached to. The request is run through a
// Dispatcher: synchronously when the caller is on the UI thread, queued
// otherwise. Shapes themselves are not locked; mutate a tree from one
// goroutine at a time.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, increases counter-clockwise
//
// Rotate and Scale pivot about the shape's location. A transformed shape
// reports the axis-aligned envelope of its rotated box as its bounds and
// maps query points back through the inverse transform for containment.
// Its size can no longer be changed until ResetTransform.
//
// # Errors
//
// Calls that break a contract (an opacity outside [0, 1], a negative size,
// an index out of range) leave the shape unchanged and return a
// *ContractError wrapping one of the Err* sentinels.
package sg
