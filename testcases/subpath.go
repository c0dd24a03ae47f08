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


package testcases

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(18, 32, 46, 32, 10).Iter(),
		Width:  64,
		Height: 64,
		Pen:    Circle,
	},
	{
		Name:   "two_triangles_line",
		Path:   twoTriangles(18, 32, 46, 32, 10).Iter(),
		Width:  64,
		Height: 64,
		Pen:    Line,
	},
	{
		Name:   "degenerate",
		Path:   degenerate().Iter(),
		Width:  64,
		Height: 64,
		Pen:    Circle,
	},
	{
		Name:   "open_and_closed",
		Path:   openAndClosed().Iter(),
		Width:  64,
		Height: 64,
		Pen:    Crayon,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := &path.Data{}
	for _, c := range [][2]float64{{cx1, cy1}, {cx2, cy2}} {
		cx, cy := c[0], c[1]
		p.MoveTo(pt(cx, cy-size)).
			LineTo(pt(cx+size, cy+size)).
			LineTo(pt(cx-size, cy+size)).
			Close()
	}
	return p
}

// degenerate builds a path with an isolated point, a zero-length segment
// and a dangling MoveTo, around one regular subpath.
func degenerate() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(5, 5)).
		MoveTo(pt(10, 20)).
		LineTo(pt(10, 20)).
		MoveTo(pt(10, 40)).
		LineTo(pt(54, 40)).
		LineTo(pt(54, 40)).
		MoveTo(pt(60, 60))
}

// openAndClosed builds an open polyline followed by a closed square.
func openAndClosed() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(6, 12)).
		LineTo(pt(30, 12)).
		LineTo(pt(30, 24)).
		MoveTo(pt(12, 32)).
		LineTo(pt(52, 32)).
		LineTo(pt(52, 56)).
		LineTo(pt(12, 56)).
		Close()
}
