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
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// rasteriser converts device space polygons to pixel coverage values,
// using the nonzero winding rule.  Internal buffers grow as needed but
// never shrink.
type rasteriser struct {
	edges     []edge
	activeIdx []int
	cover     []float32 // cover change per pixel; reused as output
	area      []float32 // area within pixel
	crossings []float64 // y values where an edge crosses pixel boundaries

	bboxEmpty              bool
	devXMin, devXMax       float64
	devYMin, devYMax       float64
	current, subpathStart  vec.Vec2
	inSubpath, needClosing bool
}

// reset discards all edges, keeping the buffer capacity.
func (r *rasteriser) reset() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	r.inSubpath = false
	r.needClosing = false
}

// addPath adds the edges of a flattened device space path.
// Every subpath is implicitly closed, as required for filling.
func (r *rasteriser) addPath(p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.current = pts[0]
			r.subpathStart = r.current
			r.inSubpath = true
		case path.CmdLineTo:
			if !r.inSubpath {
				continue
			}
			r.addEdge(r.current, pts[0])
			r.current = pts[0]
			r.needClosing = true
		case path.CmdClose:
			r.closeSubpath()
		}
	}
	r.closeSubpath()
}

func (r *rasteriser) closeSubpath() {
	if r.needClosing {
		r.addEdge(r.current, r.subpathStart)
		r.current = r.subpathStart
		r.needClosing = false
	}
}

// addPolygon adds a closed device space polygon.
// If reverse is set, the vertices are traversed backwards.
func (r *rasteriser) addPolygon(pts []vec.Vec2, reverse bool) {
	n := len(pts)
	if n < 3 {
		return
	}
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		if reverse {
			a, b = b, a
		}
		r.addEdge(a, b)
	}
}

// addEdge adds an edge in device coordinates.
func (r *rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	xLo, xHi := min(p0.X, p1.X), max(p0.X, p1.X)
	yLo, yHi := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	if r.bboxEmpty {
		r.devXMin, r.devXMax = xLo, xHi
		r.devYMin, r.devYMax = yLo, yHi
		r.bboxEmpty = false
	} else {
		r.devXMin = min(r.devXMin, xLo)
		r.devXMax = max(r.devXMax, xHi)
		r.devYMin = min(r.devYMin, yLo)
		r.devYMax = max(r.devYMax, yHi)
	}
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// Final coverage is computed by integrateScanline:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]
//
// This computes the signed area of the polygon within each pixel.

// fill rasterises all edges added since the last reset.  Coverage is
// delivered row by row to emit, restricted to clip.  The coverage slice is
// only valid for the duration of the callback.
func (r *rasteriser) fill(clip image.Rectangle, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), clip.Min.X)
	xMax := min(int(math.Floor(r.devXMax))+1, clip.Max.X)
	yMin := max(int(math.Floor(r.devYMin)), clip.Min.Y)
	yMax := min(int(math.Floor(r.devYMax))+1, clip.Max.Y)
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	// active edge list (indices into r.edges)
	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for nextEdge < len(r.edges) {
			e := &r.edges[nextEdge]
			if min(e.y0, e.y1) >= yfNext {
				break
			}
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]

			if max(e.y0, e.y1) <= yf {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}

			if r.accumulateEdge(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}

		if !touched {
			continue
		}

		integrateScanlineNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulateEdge adds a single edge's contribution for scanline y to the
// cover and area buffers, which are indexed by x - bboxXMin.  It reports
// whether the edge contributed anything.
func (r *rasteriser) accumulateEdge(e *edge, y, bboxXMin, bboxXMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	// +1 for downward edges, -1 for upward
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		v := sign * float32(yBot-yTop)
		r.cover[0] += v
		r.area[0] += v
		return true
	}
	if pixLeft >= bboxXMax {
		return false
	}

	r.crossings = append(r.crossings[:0], yTop, yBot)
	if pixLeft != pixRight {
		dydx := 1 / e.dxdy
		for x := pixLeft + 1; x <= pixRight; x++ {
			yAtX := e.y0 + dydx*(float64(x)-e.x0)
			if yAtX > yTop && yAtX < yBot {
				r.crossings = append(r.crossings, yAtX)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		coverVal := sign * float32(y1-y0)

		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := int(math.Floor(xMid))
		switch {
		case pix < bboxXMin:
			r.cover[0] += coverVal
			r.area[0] += coverVal
		case pix < bboxXMax:
			idx := pix - bboxXMin
			r.cover[idx] += coverVal
			r.area[idx] += coverVal * float32(1-(xMid-float64(pix)))
		}
	}
	return true
}

// integrateScanlineNonZero converts accumulated cover/area to final coverage
// values using the nonzero winding rule. The cover slice is modified in place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		cov := raw
		if raw < 0 {
			cov = -raw
		}
		if cov > 1 {
			cov = 1
		}
		cover[i] = cov
	}
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// Default values for canvas parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript.  Joins are converted to
	// bevels when the interior angle is less than approximately 11.5 degrees.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// maxSubdivisions bounds the number of lines a single curve is
	// flattened into.
	maxSubdivisions = 1 << 12
)
