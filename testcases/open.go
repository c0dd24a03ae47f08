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

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var openCases = []TestCase{
	{
		Name:   "line",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Pen:    Line,
	},
	{
		Name:    "line_circle",
		Path:    horizontalLine(6, 32, 58),
		Width:   64,
		Height:  64,
		Pen:     Circle,
		Spacing: 8,
	},
	{
		Name:   "line_short",
		Path:   horizontalLine(28, 32, 31),
		Width:  64,
		Height: 64,
		Pen:    Circle,
	},
	{
		Name:   "corner",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Pen:    Line,
	},
	{
		Name:    "corner_pencil",
		Path:    corner(10, 50, 32, 14, 54, 50),
		Width:   64,
		Height:  64,
		Pen:     Pencil,
		Spacing: 6,
	},
	{
		Name:   "zigzag",
		Path:   zigzagPath(8, 32, 56, 12),
		Width:  64,
		Height: 64,
		Pen:    Crayon,
	},
	{
		Name:   "ridge_snow",
		Path:   zigzagPath(4, 40, 124, 10),
		Width:  128,
		Height: 64,
		Pen:    Snow,
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y}})
	}
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}})
	}
}

// zigzagPath builds a zigzag line with five segments.
func zigzagPath(x1, cy, x2, amplitude float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		segments := 5
		segWidth := (x2 - x1) / float64(segments)

		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: cy}}) {
			return
		}
		for i := 1; i <= segments; i++ {
			x := x1 + float64(i)*segWidth
			y := cy + amplitude
			if i%2 == 1 {
				y = cy - amplitude
			}
			if !yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}}) {
				return
			}
		}
	}
}
