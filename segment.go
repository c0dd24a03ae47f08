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
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
)

// Segment is one straight piece of a flattened path.
type Segment struct {
	// Start is the start point of the segment.
	Start vec.Vec2

	// Rotation is the direction of the segment, in radians.
	Rotation float64

	// Length is the length of the segment.
	Length float64

	// First is set for the first segment of a subpath.
	First bool

	// Last is set for the last segment of a subpath.
	Last bool
}

// IsZero reports whether the start and end point of the segment coincide.
// Zero-length segments carry the First and Last flags of their position
// in the subpath, but no units are placed on them.
func (s Segment) IsZero() bool {
	return s.Length == 0
}

// Segments splits p into straight segments.  Curves are flattened with
// tolerance sqrt(spacing), so that finer spacing gives finer flattening.
// If fast is set, segment directions are computed using an approximation
// of the arc tangent.
//
// The segments are generated on the fly, one segment ahead of the
// consumer, so that the Last flag can be set.
func Segments(p path.Path, spacing float64, fast bool) iter.Seq[Segment] {
	tol := math.Sqrt(spacing)
	return func(yield func(Segment) bool) {
		segmentsOf(raster.Flatten(p, tol), fast, yield)
	}
}

// segmentsOf splits a flattened path into segments.
// The path must only contain MoveTo, LineTo and Close commands.
func segmentsOf(flat path.Path, fast bool, yield func(Segment) bool) {
	var pending Segment
	havePending := false

	var current, subpathStart vec.Vec2
	inSubpath := false
	first := false

	// lineTo makes the segment from current to to pending, and passes the
	// previously pending segment on.
	lineTo := func(to vec.Vec2) bool {
		seg := newSegment(current, to, fast)
		seg.First = first
		first = false
		current = to
		if havePending && !yield(pending) {
			return false
		}
		pending = seg
		havePending = true
		return true
	}

	for cmd, pts := range flat {
		switch cmd {
		case path.CmdMoveTo:
			if havePending {
				pending.Last = true
				havePending = false
				if !yield(pending) {
					return
				}
			}
			current = pts[0]
			subpathStart = current
			inSubpath = true
			first = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			if !lineTo(pts[0]) {
				return
			}

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if !lineTo(subpathStart) {
				return
			}

		default:
			panic(fmt.Sprintf("sketch: unexpected path command %d after flattening", cmd))
		}
	}

	if havePending {
		pending.Last = true
		yield(pending)
	}
}

func newSegment(from, to vec.Vec2, fast bool) Segment {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return Segment{
		Start:    from,
		Rotation: orientation(dx, dy, fast),
		Length:   math.Hypot(dx, dy),
	}
}

// orientation returns the direction of the vector (dx, dy).
// The result lies in the range [-π/2, 3π/2].
func orientation(dx, dy float64, fast bool) float64 {
	if dx == 0 {
		if dy > 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	}
	var base float64
	if dx < 0 {
		base = math.Pi
	}
	if fast {
		return base + fastAtan(dy/dx)
	}
	return base + math.Atan(dy/dx)
}

// fastAtan approximates the arc tangent.  On [-1, 1] a rational
// approximation with maximal error about 0.0015 is used, outside this
// range the exact value is computed.
func fastAtan(x float64) float64 {
	if x < -1 || x > 1 {
		return math.Atan(x)
	}
	ax := math.Abs(x)
	return math.Pi/4*x - x*(ax-1)*(0.2447+0.0663*ax)
}
