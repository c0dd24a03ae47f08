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

package sketch

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Stamper is a pen which draws all units in the same way.
// Use [Adapt] to turn a Stamper into a [Pen].
type Stamper interface {
	Prepare(ctx Context, p path.Path)
	Draw(ctx Context, index int, rotation float64)
	BoundingBox(kind Kind, rotation float64) rect.Rect
	SegmentSpacing() float64
}

// Adapter turns a Stamper into a Pen.  The first and last unit of every
// subpath are drawn using the Draw method, and there are no special
// bounds.
type Adapter struct {
	Stamper
}

// Adapt returns a Pen which draws every unit using s.
func Adapt(s Stamper) Adapter {
	return Adapter{Stamper: s}
}

// Start implements the [Pen] interface.
func (a Adapter) Start(ctx Context, index int, rotation float64) {
	a.Draw(ctx, index, rotation)
}

// End implements the [Pen] interface.
func (a Adapter) End(ctx Context, index int, rotation float64) {
	a.Draw(ctx, index, rotation)
}

// SpecialBounds implements the [Pen] interface.
func (a Adapter) SpecialBounds(path.Path) (rect.Rect, bool) {
	return rect.Rect{}, false
}
