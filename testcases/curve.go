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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurveOpen(10, 50, 32, 0, 54, 50).Iter(),
		Width:  64,
		Height: 64,
		Pen:    Line,
	},
	{
		Name:    "cubic_circle",
		Path:    cubicCurveOpen(10, 50, 10, 10, 54, 10, 54, 50).Iter(),
		Width:   64,
		Height:  64,
		Pen:     Circle,
		Spacing: 7,
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurveOpen(8, 32, 30, -10, 34, 74, 56, 32).Iter(),
		Width:  64,
		Height: 64,
		Pen:    Pencil,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 22).Iter(),
		Width:  64,
		Height: 64,
		Pen:    Line,
	},
	{
		Name:   "circle_crayon",
		Path:   circle(32, 32, 22).Iter(),
		Width:  64,
		Height: 64,
		Pen:    Crayon,
	},
	{
		Name:   "hill_snow",
		Path:   quadraticCurveOpen(4, 56, 64, 0, 124, 56).Iter(),
		Width:  128,
		Height: 64,
		Pen:    Snow,
	},
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurveOpen builds an open path with a cubic Bezier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}
