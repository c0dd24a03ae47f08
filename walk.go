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
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Placement describes where one unit of the outline is drawn.
type Placement struct {
	Kind Kind

	// Index counts the placements along the whole path, starting at 0.
	Index int

	// Rotation is the direction of the segment the unit is placed on.
	Rotation float64

	// Frame maps the local frame of the unit to user space.
	Frame matrix.Matrix
}

// Placements returns the units placed along p, in path order.
//
// On a segment of length L, units are placed at positions 0, spacing,
// 2*spacing, ... as long as the position does not exceed L - spacing/2.
// The last unit may thus overshoot the end of the segment by up to half a
// unit.  Zero-length segments get no units.  The first unit of a subpath
// has kind Start, the last one has kind End; if a subpath has only one
// unit, its kind is Start.
//
// If spacing is not positive, no units are placed.
func Placements(p path.Path, spacing float64, fast bool) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		if !(spacing > 0) {
			return
		}

		index := 0
		for seg := range Segments(p, spacing, fast) {
			if seg.IsZero() {
				continue
			}

			base := concat(rotate(seg.Rotation), translate(seg.Start.X, seg.Start.Y))
			end := max(seg.Length-spacing/2, 0)
			for pos := 0.0; pos <= end; pos += spacing {
				kind := Normal
				if seg.First && pos == 0 {
					kind = Start
				} else if seg.Last && pos+spacing > end {
					kind = End
				}

				pl := Placement{
					Kind:     kind,
					Index:    index,
					Rotation: seg.Rotation,
					Frame:    concat(translate(pos, 0), base),
				}
				if !yield(pl) {
					return
				}
				index++
			}
		}
	}
}

func translate(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}

func rotate(phi float64) matrix.Matrix {
	s, c := math.Sincos(phi)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// concat returns the matrix which first applies a and then b.
func concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}
