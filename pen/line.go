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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
)

// Line draws every unit as a straight line along the segment.
// Drawn with a Line pen, a path looks like a normally stroked path.
type Line struct {
	// Color is the line colour.  If nil, the colour of the context is
	// used.
	Color color.Color

	// Width is the line width.  Values <= 0 select width 1.
	Width float64

	spacing float64
	unit    *path.Data
}

var _ sketch.Stamper = (*Line)(nil)

// NewLine returns a new Line pen.
func NewLine(col color.Color, width, spacing float64) *Line {
	l := &Line{Color: col, Width: width}
	l.SetSpacing(spacing)
	return l
}

// SetSpacing changes the distance between units.
func (l *Line) SetSpacing(spacing float64) {
	l.spacing = spacingOrDefault(spacing)
	l.unit = (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: l.spacing, Y: 0})
}

// SegmentSpacing implements the [sketch.Stamper] interface.
func (l *Line) SegmentSpacing() float64 {
	return l.spacing
}

// Prepare implements the [sketch.Stamper] interface.
func (l *Line) Prepare(ctx sketch.Context, _ path.Path) {
	if l.Color != nil {
		ctx.SetColor(l.Color)
	}
	ctx.SetLineWidth(l.width())
	ctx.SetLineCap(graphics.LineCapButt)
}

// Draw implements the [sketch.Stamper] interface.
func (l *Line) Draw(ctx sketch.Context, _ int, _ float64) {
	ctx.Stroke(l.unit.Iter())
}

// BoundingBox implements the [sketch.Stamper] interface.
func (l *Line) BoundingBox(sketch.Kind, float64) rect.Rect {
	return expand(rect.Rect{URx: l.spacing}, l.width()/2)
}

func (l *Line) width() float64 {
	if l.Width > 0 {
		return l.Width
	}
	return 1
}
