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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment represents a line segment in user coordinates
// with precomputed tangent and normal.
type strokeSegment struct {
	A, B vec.Vec2 // start and end point
	T    vec.Vec2 // unit tangent
	N    vec.Vec2 // unit normal, (-T.Y, T.X)
}

// stroker builds the outline of a stroked path as a set of polygons.
// Every polygon covers a part of the stroke: the body of one segment, a
// cap or a join.  The polygons overlap; filling all of them with the
// nonzero rule, after normalising their orientation, gives the stroke.
type stroker struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Tolerance is the flattening tolerance in user space units.
	Tolerance float64

	segs    []strokeSegment
	points  []vec.Vec2 // vertices of the current subpath
	polys   []vec.Vec2 // all polygons, contiguous
	offsets []int      // start index of each polygon in polys
}

// outline computes the polygons for stroking p.
// The result can be read via polygon(i) for i < numPolygons().
func (s *stroker) outline(p path.Path) {
	s.polys = s.polys[:0]
	s.offsets = s.offsets[:0]

	d := s.Width / 2
	if !(d > 0) {
		return
	}

	// After a Close, drawing continues from the start of the closed subpath.
	var start vec.Vec2
	afterClose := false
	s.points = s.points[:0]
	for cmd, pts := range Flatten(p, s.Tolerance) {
		switch cmd {
		case path.CmdMoveTo:
			s.subpath(false, d)
			s.points = append(s.points, pts[0])
			start = pts[0]
			afterClose = false
		case path.CmdLineTo:
			if afterClose {
				s.points = append(s.points, start)
				afterClose = false
			}
			if len(s.points) > 0 {
				s.points = append(s.points, pts[0])
			}
		case path.CmdClose:
			if len(s.points) > 0 {
				s.subpath(true, d)
				afterClose = true
			}
		}
	}
	s.subpath(false, d)
}

func (s *stroker) numPolygons() int {
	return len(s.offsets)
}

func (s *stroker) polygon(i int) []vec.Vec2 {
	end := len(s.polys)
	if i+1 < len(s.offsets) {
		end = s.offsets[i+1]
	}
	return s.polys[s.offsets[i]:end]
}

// subpath adds the polygons for the points collected in s.points.
func (s *stroker) subpath(closed bool, d float64) {
	if len(s.points) == 0 {
		return
	}

	s.segs = s.segs[:0]
	for i := 1; i < len(s.points); i++ {
		s.addSegment(s.points[i-1], s.points[i])
	}
	if closed {
		s.addSegment(s.points[len(s.points)-1], s.points[0])
	}

	if len(s.segs) == 0 {
		// zero-length subpath: only round and square caps are visible
		P := s.points[0]
		switch s.Cap {
		case graphics.LineCapRound:
			s.addCircle(P, d)
		case graphics.LineCapSquare:
			s.beginPolygon()
			s.polys = append(s.polys,
				vec.Vec2{X: P.X - d, Y: P.Y - d},
				vec.Vec2{X: P.X + d, Y: P.Y - d},
				vec.Vec2{X: P.X + d, Y: P.Y + d},
				vec.Vec2{X: P.X - d, Y: P.Y + d})
		}
		s.points = s.points[:0]
		return
	}

	for i := range s.segs {
		seg := &s.segs[i]
		off := seg.N.Mul(d)
		s.beginPolygon()
		s.polys = append(s.polys, seg.A.Add(off), seg.B.Add(off), seg.B.Sub(off), seg.A.Sub(off))

		if i > 0 {
			s.addJoin(&s.segs[i-1], seg, d)
		}
	}

	if closed {
		s.addJoin(&s.segs[len(s.segs)-1], &s.segs[0], d)
	} else {
		first := &s.segs[0]
		last := &s.segs[len(s.segs)-1]
		s.addCap(first.A, first.T.Mul(-1), d)
		s.addCap(last.B, last.T, d)
	}
	s.points = s.points[:0]
}

// addSegment adds a line segment to the segment buffer.
// Segments shorter than zeroLengthThreshold are dropped.
func (s *stroker) addSegment(a, b vec.Vec2) {
	dir := b.Sub(a)
	length := dir.Length()
	if length < zeroLengthThreshold {
		return
	}
	T := dir.Mul(1 / length)
	s.segs = append(s.segs, strokeSegment{
		A: a,
		B: b,
		T: T,
		N: vec.Vec2{X: -T.Y, Y: T.X},
	})
}

// addCap adds a line cap at point P.
// T is the outward tangent direction (away from the line).
func (s *stroker) addCap(P, T vec.Vec2, d float64) {
	switch s.Cap {
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
		ext := P.Add(T.Mul(d))
		s.beginPolygon()
		s.polys = append(s.polys, P.Add(N), ext.Add(N), ext.Sub(N), P.Sub(N))
	case graphics.LineCapRound:
		s.addCircle(P, d)
	}
}

// addJoin adds the join geometry on the outer side of the corner where
// seg turns into next.
func (s *stroker) addJoin(seg, next *strokeSegment, d float64) {
	P := seg.B
	sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
	cosTheta := seg.T.Dot(next.T)
	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	if s.Join == graphics.LineJoinRound {
		s.addCircle(P, d)
		return
	}

	// If sinTheta > 0, the +N side is the inner side of the corner.
	n1, n2 := seg.N.Mul(d), next.N.Mul(d)
	if sinTheta > 0 {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}

	s.beginPolygon()
	if s.Join == graphics.LineJoinMiter {
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= s.MiterLimit+miterEpsilon {
			bisector := n1.Add(n2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				tip := P.Add(bisector.Mul(d / (sinHalf * l)))
				s.polys = append(s.polys, P, P.Add(n1), tip, P.Add(n2))
				return
			}
		}
	}
	s.polys = append(s.polys, P, P.Add(n1), P.Add(n2))
}

// addCircle adds a polygonal approximation of a circle.
func (s *stroker) addCircle(center vec.Vec2, radius float64) {
	n := 8
	if radius > s.Tolerance {
		// A chord subtending angle θ deviates r*(1 - cos(θ/2)) from the arc.
		angleStep := 2 * math.Acos(1-s.Tolerance/radius)
		if angleStep > 0 {
			n = max(n, int(math.Ceil(2*math.Pi/angleStep)))
		}
	}
	n = min(n, maxSubdivisions)

	s.beginPolygon()
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		s.polys = append(s.polys, vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		})
	}
}

func (s *stroker) beginPolygon() {
	s.offsets = append(s.offsets, len(s.polys))
}

// signedArea returns twice the signed area of a polygon.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	n := len(pts)
	for i := range n {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}
