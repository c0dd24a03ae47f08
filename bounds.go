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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// TransformRect returns the smallest axis-parallel rectangle which
// contains the image of r under m.  For affine maps it is enough to
// transform the four corners.
func TransformRect(m matrix.Matrix, r rect.Rect) rect.Rect {
	xs := [4]float64{r.LLx, r.URx, r.LLx, r.URx}
	ys := [4]float64{r.LLy, r.LLy, r.URy, r.URy}

	var res rect.Rect
	for i := range 4 {
		x := m[0]*xs[i] + m[2]*ys[i] + m[4]
		y := m[1]*xs[i] + m[3]*ys[i] + m[5]
		if i == 0 {
			res = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			continue
		}
		res.LLx = min(res.LLx, x)
		res.LLy = min(res.LLy, y)
		res.URx = max(res.URx, x)
		res.URy = max(res.URy, y)
	}
	return res
}

// PathBounds returns the bounding box of all points of p, including
// curve control points.  The zero rectangle is returned if p has no points.
func PathBounds(p path.Path) rect.Rect {
	var res rect.Rect
	first := true
	for _, pts := range p {
		for _, pt := range pts {
			if first {
				res = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
				first = false
				continue
			}
			res.LLx = min(res.LLx, pt.X)
			res.LLy = min(res.LLy, pt.Y)
			res.URx = max(res.URx, pt.X)
			res.URy = max(res.URy, pt.Y)
		}
	}
	return res
}

// isEmpty reports whether r has zero area.
func isEmpty(r rect.Rect) bool {
	return !(r.URx > r.LLx && r.URy > r.LLy)
}

// union returns the smallest rectangle containing a and b.
// Rectangles with zero area are ignored.
func union(a, b rect.Rect) rect.Rect {
	if isEmpty(b) {
		return a
	}
	if isEmpty(a) {
		return b
	}
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// overlaps reports whether the interiors of a and b intersect.
func overlaps(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}
