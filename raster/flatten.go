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

package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Flatten returns a path which approximates p using straight lines only.
// No point of the approximation is further than (approximately) tolerance
// away from the original curve.
//
// The returned path contains only MoveTo, LineTo and Close commands.
// Drawing commands which occur before the first MoveTo are dropped.
// The point slices passed to the consumer are reused between iterations.
func Flatten(p path.Path, tolerance float64) path.Path {
	if !(tolerance > 0) {
		tolerance = defaultFlatness
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		lineTo := func(pt vec.Vec2) bool {
			buf[0] = pt
			return yield(path.CmdLineTo, buf[:])
		}

		var current, subpathStart vec.Vec2
		inSubpath := false
		for cmd, pts := range p {
			switch cmd {
			case path.CmdMoveTo:
				current = pts[0]
				subpathStart = current
				inSubpath = true
				buf[0] = current
				if !yield(path.CmdMoveTo, buf[:]) {
					return
				}

			case path.CmdLineTo:
				if !inSubpath {
					continue
				}
				current = pts[0]
				if !lineTo(current) {
					return
				}

			case path.CmdQuadTo:
				if !inSubpath {
					continue
				}
				p0, p1, p2 := current, pts[0], pts[1]
				n := quadSteps(p0, p1, p2, tolerance)
				for i := 1; i <= n; i++ {
					if !lineTo(quadPoint(p0, p1, p2, float64(i)/float64(n))) {
						return
					}
				}
				current = p2

			case path.CmdCubeTo:
				if !inSubpath {
					continue
				}
				p0, p1, p2, p3 := current, pts[0], pts[1], pts[2]
				n := cubicSteps(p0, p1, p2, p3, tolerance)
				for i := 1; i <= n; i++ {
					if !lineTo(cubicPoint(p0, p1, p2, p3, float64(i)/float64(n))) {
						return
					}
				}
				current = p3

			case path.CmdClose:
				if !inSubpath {
					continue
				}
				current = subpathStart
				if !yield(path.CmdClose, buf[:0]) {
					return
				}
			}
		}
	}
}

// quadSteps returns the number of line segments needed to approximate a
// quadratic Bézier curve.  The error vector e = (P0 - 2*P1 + P2) / 4 bounds
// the deviation of the chord from the curve.
func quadSteps(p0, p1, p2 vec.Vec2, tolerance float64) int {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	dist := e.Length()
	if dist <= tolerance {
		return 1
	}
	return min(int(math.Ceil(math.Sqrt(dist/tolerance))), maxSubdivisions)
}

// cubicSteps returns the number of line segments needed to approximate a
// cubic Bézier curve, using Wang's formula.
func cubicSteps(p0, p1, p2, p3 vec.Vec2, tolerance float64) int {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := math.Sqrt(3 * m / (4 * tolerance))
	if !(n > 1) {
		return 1
	}
	return min(int(math.Ceil(n)), maxSubdivisions)
}

// quadPoint evaluates B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2.
func quadPoint(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
}

// cubicPoint evaluates B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3.
func cubicPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).
		Add(p1.Mul(3 * omt2 * t)).
		Add(p2.Mul(3 * omt * t2)).
		Add(p3.Mul(t2 * t))
}

// transformPath returns p with all points mapped through m.
// Bézier curves are affine invariant, so flattening the transformed path
// in device space is equivalent to flattening with a CTM-aware tolerance.
func transformPath(p path.Path, m matrix.Matrix) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for cmd, pts := range p {
			out := buf[:len(pts)]
			for i, pt := range pts {
				out[i] = apply(m, pt)
			}
			if !yield(cmd, out) {
				return
			}
		}
	}
}

// apply maps a point from user space to device space.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
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

// userScale estimates how many device pixels one user space unit covers.
func userScale(m matrix.Matrix) float64 {
	det := math.Abs(m[0]*m[3] - m[1]*m[2])
	if det == 0 {
		return 1
	}
	return math.Sqrt(det)
}
