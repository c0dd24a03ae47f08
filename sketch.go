// seehuhn.de/go/sketch - stylised outline rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package sketch draws the outline of a path in a stylised way.
//
// Instead of stroking the path with a continuous line, the path is
// flattened, split into straight segments, and a [Pen] is asked to draw
// one unit at every multiple of its segment spacing along each segment.
// Pens draw in a local coordinate frame: the origin is the placement
// point and the x-axis points along the segment.
//
// The same traversal is used to compute a bounding box for the drawing,
// from the boxes the pen reports for its units.  Both traversals number
// the placements identically, so that pens which use the placement index
// to select pseudo-random variations draw the same shape every time.
package sketch

import (
	"errors"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Kind distinguishes the first and last unit of a subpath from the units
// in between.
type Kind int

// These are the possible values of [Kind].
const (
	Normal Kind = iota
	Start
	End
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "Kind(invalid)"
	}
}

// Pen draws the units which make up a stylised outline.
//
// Start, Draw and End are called with the context transformed into the
// local frame of the placement.  The index counts placements across the
// whole path, starting at 0, and rotation is the direction of the
// segment in user space.  A Pen may change the graphics state of the
// context; the caller saves and restores the state around every call.
type Pen interface {
	// Prepare is called once per shape, before any unit is drawn.
	// Pens use it to configure the context and to derive shape dependent
	// state, such as a random seed, from p.
	Prepare(ctx Context, p path.Path)

	// Start draws the first unit of a subpath.
	Start(ctx Context, index int, rotation float64)

	// Draw draws a unit in the middle of a subpath.
	Draw(ctx Context, index int, rotation float64)

	// End draws the last unit of a subpath.
	End(ctx Context, index int, rotation float64)

	// BoundingBox returns a rectangle in the local frame which contains
	// everything the corresponding drawing method paints.  A rectangle
	// of zero area means that nothing is painted.
	BoundingBox(kind Kind, rotation float64) rect.Rect

	// SpecialBounds returns the bounding box of anything the pen draws
	// once per shape, rather than once per unit.  The second return
	// value is false if there is no such drawing.
	SpecialBounds(p path.Path) (rect.Rect, bool)

	// SegmentSpacing returns the distance between consecutive units.
	// The value must be positive and must not change while a shape is
	// being drawn.
	SegmentSpacing() float64
}

// Context is the drawing surface used by pens.
type Context interface {
	// Save pushes a copy of the graphics state onto a stack.
	Save()

	// Restore pops the graphics state pushed by the matching Save.
	Restore()

	// Transform modifies the current transformation matrix such that m
	// is applied before the previous transformation.
	Transform(m matrix.Matrix)

	// CTM returns the current transformation matrix, mapping user space
	// to device space.
	CTM() matrix.Matrix

	// Clip returns the clip region in device space.
	Clip() rect.Rect

	SetColor(c color.Color)
	Color() color.Color
	SetLineWidth(w float64)
	LineWidth() float64
	SetLineCap(style graphics.LineCapStyle)
	SetLineJoin(style graphics.LineJoinStyle)

	// Fill fills p using the nonzero winding rule.
	Fill(p path.Path)

	// Stroke strokes p using the current line width, cap and join style.
	Stroke(p path.Path)
}

// ImageDrawer is implemented by contexts which can composite images.
// Pens use this to paint pre-rendered units.
type ImageDrawer interface {
	// DrawImage paints img such that its pixel grid is aligned with user
	// space and the top-left corner of the image bounds is at the point at.
	DrawImage(img image.Image, at vec.Vec2)
}

// Options control how a [Drawer] traverses a path.
// The zero value selects exact orientations and no culling.
type Options struct {
	// Cull skips units whose bounding box lies outside the clip region
	// of the context.  This does not change the output.
	Cull bool

	// FastOrientation computes segment directions using a rational
	// approximation of the arc tangent, with a maximal error of about
	// 0.0015 radians.
	FastOrientation bool
}

var (
	// ErrNilPen is returned when a nil Pen is passed to a constructor.
	ErrNilPen = errors.New("sketch: nil pen")

	// ErrSpacing is returned when a pen reports a segment spacing which
	// is not a positive number.
	ErrSpacing = errors.New("sketch: invalid segment spacing")
)
