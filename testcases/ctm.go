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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  64,
		Height: 64,
		Pen:    Line,
		CTM:    matrix.Scale(2, 2).Translate(12, 12),
	},
	{
		Name:   "scale_half_circle",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Pen:    Circle,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "rotate_30deg",
		Path:   horizontalLine(-24, 0, 24),
		Width:  64,
		Height: 64,
		Pen:    Crayon,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "scale_2x_1y",
		Path:   circle(0, 0, 14).Iter(),
		Width:  64,
		Height: 64,
		Pen:    Circle,
		CTM:    matrix.Scale(2, 1).Translate(32, 32),
	},
}
