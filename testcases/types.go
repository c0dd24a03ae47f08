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


// Package testcases contains outlines and pens used to test sketch
// rendering, both by the unit tests and by the reference image generator.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/pen"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name    string        // lowercase a-z, 0-9 and _ only
	Path    path.Path     // the outline to draw
	Width   int           // canvas width in pixels
	Height  int           // canvas height in pixels
	Pen     PenStyle      // the pen to draw with
	Spacing float64       // segment spacing (0 selects the pen default)
	CTM     matrix.Matrix // transformation matrix (zero-value means no transform)
}

// PenStyle selects one of the pens from package pen.
type PenStyle int

// These are the available pen styles.
const (
	Line PenStyle = iota
	Circle
	Pencil
	Crayon
	Snow
)

func (s PenStyle) String() string {
	switch s {
	case Line:
		return "line"
	case Circle:
		return "circle"
	case Pencil:
		return "pencil"
	case Crayon:
		return "crayon"
	case Snow:
		return "snow"
	default:
		return "PenStyle(invalid)"
	}
}

// NewPen returns a freshly allocated pen for the test case.
func (tc TestCase) NewPen() sketch.Pen {
	switch tc.Pen {
	case Circle:
		return pen.NewCircle(nil, tc.Spacing)
	case Pencil:
		return sketch.Adapt(pen.NewPencil(color.Black, tc.Spacing, nil))
	case Crayon:
		c := pen.NewCrayon(color.Black, 3, nil)
		if tc.Spacing > 0 {
			c.SetSpacing(tc.Spacing)
		}
		return sketch.Adapt(c)
	case Snow:
		underlay, err := sketch.NewDrawer(sketch.Adapt(pen.NewLine(color.Black, 2, 4)), nil)
		if err != nil {
			panic(err)
		}
		s := pen.NewSnow(underlay, 4, nil)
		if tc.Spacing > 0 {
			s.Crayon().SetSpacing(tc.Spacing)
		}
		return s
	default:
		return sketch.Adapt(pen.NewLine(color.Black, 2, tc.Spacing))
	}
}

// Transform returns the transformation matrix of the test case.
func (tc TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
