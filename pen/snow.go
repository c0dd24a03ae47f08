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

package pen

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketch"
)

// DefaultMaxSlope is the steepest segment direction, in radians, on
// which a [Snow] pen still places snow.
const DefaultMaxSlope = math.Pi / 6

// Snow draws a layer of snow on top of the flat parts of an outline.
//
// The snow is drawn with a white Crayon.  Units on segments steeper than
// MaxSlope are left out, and the layer gets thinner as the slope
// increases.  If an underlay is set, the outline itself is drawn first,
// once per shape.
type Snow struct {
	Decorator

	// MaxSlope is the steepest segment direction, in radians, which
	// still gets snow.
	MaxSlope float64

	crayon    *Crayon
	underlay  *sketch.Drawer
	thickness float64
}

var _ sketch.Pen = (*Snow)(nil)

// NewSnow returns a new Snow pen.  If underlay is not nil, it is used to
// draw the outline below the snow.  If cfg is nil, the default cache
// configuration is used.
func NewSnow(underlay *sketch.Drawer, thickness float64, cfg *CacheConfig) *Snow {
	crayon := NewCrayon(color.White, thickness, cfg)
	return &Snow{
		Decorator: Decorator{Pen: sketch.Adapt(crayon)},
		MaxSlope:  DefaultMaxSlope,
		crayon:    crayon,
		underlay:  underlay,
		thickness: thickness,
	}
}

// Crayon returns the crayon used to draw the snow.
func (s *Snow) Crayon() *Crayon {
	return s.crayon
}

// Prepare implements the [sketch.Pen] interface.
func (s *Snow) Prepare(ctx sketch.Context, p path.Path) {
	if s.underlay != nil {
		s.underlay.Draw(ctx, p)
	}
	s.Decorator.Prepare(ctx, p)
}

// Start implements the [sketch.Pen] interface.
func (s *Snow) Start(ctx sketch.Context, index int, rotation float64) {
	if m, ok := s.frame(rotation); ok {
		ctx.Transform(m)
		s.Decorator.Start(ctx, index, rotation)
	}
}

// Draw implements the [sketch.Pen] interface.
func (s *Snow) Draw(ctx sketch.Context, index int, rotation float64) {
	if m, ok := s.frame(rotation); ok {
		ctx.Transform(m)
		s.Decorator.Draw(ctx, index, rotation)
	}
}

// End implements the [sketch.Pen] interface.
func (s *Snow) End(ctx sketch.Context, index int, rotation float64) {
	if m, ok := s.frame(rotation); ok {
		ctx.Transform(m)
		s.Decorator.End(ctx, index, rotation)
	}
}

// BoundingBox implements the [sketch.Pen] interface.
func (s *Snow) BoundingBox(kind sketch.Kind, rotation float64) rect.Rect {
	m, ok := s.frame(rotation)
	if !ok {
		return rect.Rect{}
	}
	return sketch.TransformRect(m, s.Decorator.BoundingBox(kind, rotation))
}

// SpecialBounds implements the [sketch.Pen] interface.
// The bounding box of the underlay is reported here.
func (s *Snow) SpecialBounds(p path.Path) (rect.Rect, bool) {
	if s.underlay == nil {
		return rect.Rect{}, false
	}
	b := s.underlay.Bounds(p)
	return b, b.URx > b.LLx && b.URy > b.LLy
}

// frame returns the transformation from the crayon frame to the unit
// frame, for a segment with the given direction.  The crayon band is
// thinned according to the slope and lifted upwards by two thirds of the
// thickness.  The second return value is false if no snow is placed on
// the segment.
func (s *Snow) frame(rotation float64) (matrix.Matrix, bool) {
	sl := slope(rotation)
	if sl > s.MaxSlope {
		return matrix.Matrix{}, false
	}
	f := 1 - sl/(math.Pi/2)
	if f <= 0 {
		return matrix.Matrix{}, false
	}

	// (0, -k) in device orientation, expressed in the unit frame
	k := s.thickness * 2 / 3
	sin, cos := math.Sincos(rotation)
	return matrix.Matrix{1, 0, 0, f, -k * sin, -k * cos}, true
}

// slope returns the angle between a segment direction and the
// horizontal, in the range [0, π/2].
func slope(rotation float64) float64 {
	return math.Abs(math.Remainder(rotation, math.Pi))
}
