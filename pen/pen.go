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

// Package pen provides pens for drawing stylised outlines.
//
// Pens which only implement Draw are [sketch.Stamper]s and must be wrapped
// using [sketch.Adapt] before use.  Pencil and Crayon draw randomised
// units and use a [TileCache] to avoid redrawing them for every
// placement.
package pen

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultSpacing is the segment spacing used when a non-positive spacing
// is given to a constructor.
const DefaultSpacing = 10.0

// kappa is the distance of the control points from the end points, for
// approximating a quarter circle of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

func spacingOrDefault(s float64) float64 {
	if s > 0 {
		return s
	}
	return DefaultSpacing
}

// ellipse returns the ellipse inscribed in the rectangle r.
func ellipse(r rect.Rect) *path.Data {
	cx := (r.LLx + r.URx) / 2
	cy := (r.LLy + r.URy) / 2
	rx := (r.URx - r.LLx) / 2
	ry := (r.URy - r.LLy) / 2
	kx, ky := kappa*rx, kappa*ry

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: cx + x, Y: cy + y} }
	return (&path.Data{}).
		MoveTo(pt(rx, 0)).
		CubeTo(pt(rx, ky), pt(kx, ry), pt(0, ry)).
		CubeTo(pt(-kx, ry), pt(-rx, ky), pt(-rx, 0)).
		CubeTo(pt(-rx, -ky), pt(-kx, -ry), pt(0, -ry)).
		CubeTo(pt(kx, -ry), pt(rx, -ky), pt(rx, 0)).
		Close()
}

// expand returns r grown by d on every side.
func expand(r rect.Rect, d float64) rect.Rect {
	return rect.Rect{LLx: r.LLx - d, LLy: r.LLy - d, URx: r.URx + d, URy: r.URy + d}
}
