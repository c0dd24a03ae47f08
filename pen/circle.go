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

package pen

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketch"
)

// Circle draws every unit as an outlined ellipse, twice as long as it is
// high.  The first unit of every subpath is blue, the last one is red, so
// that the pen can be used to visualise the structure of a path.
type Circle struct {
	// Color is the fill colour of units in the middle of a subpath.
	Color color.Color

	spacing float64
	shape   *path.Data
	box     rect.Rect
}

var _ sketch.Pen = (*Circle)(nil)

var (
	circleStart   = color.RGBA{B: 255, A: 255}
	circleEnd     = color.RGBA{R: 255, A: 255}
	circleDefault = color.RGBA{R: 255, G: 255, A: 255}
)

// NewCircle returns a new Circle pen.  If col is nil, yellow is used.
func NewCircle(col color.Color, spacing float64) *Circle {
	if col == nil {
		col = circleDefault
	}
	c := &Circle{Color: col}
	c.SetSpacing(spacing)
	return c
}

// SetSpacing changes the distance between units.
func (c *Circle) SetSpacing(spacing float64) {
	s := spacingOrDefault(spacing)
	c.spacing = s
	outline := rect.Rect{LLx: 0, LLy: -s / 4, URx: s, URy: s / 4}
	c.shape = ellipse(outline)
	c.box = expand(outline, 0.5)
}

// SegmentSpacing implements the [sketch.Pen] interface.
func (c *Circle) SegmentSpacing() float64 {
	return c.spacing
}

// Prepare implements the [sketch.Pen] interface.
func (c *Circle) Prepare(ctx sketch.Context, _ path.Path) {
	ctx.SetLineWidth(1)
}

// Start implements the [sketch.Pen] interface.
func (c *Circle) Start(ctx sketch.Context, _ int, _ float64) {
	c.paint(ctx, circleStart)
}

// Draw implements the [sketch.Pen] interface.
func (c *Circle) Draw(ctx sketch.Context, _ int, _ float64) {
	c.paint(ctx, c.Color)
}

// End implements the [sketch.Pen] interface.
func (c *Circle) End(ctx sketch.Context, _ int, _ float64) {
	c.paint(ctx, circleEnd)
}

func (c *Circle) paint(ctx sketch.Context, fill color.Color) {
	ctx.SetColor(fill)
	ctx.Fill(c.shape.Iter())
	ctx.SetColor(color.Black)
	ctx.Stroke(c.shape.Iter())
}

// BoundingBox implements the [sketch.Pen] interface.
func (c *Circle) BoundingBox(sketch.Kind, float64) rect.Rect {
	return c.box
}

// SpecialBounds implements the [sketch.Pen] interface.
func (c *Circle) SpecialBounds(path.Path) (rect.Rect, bool) {
	return rect.Rect{}, false
}
