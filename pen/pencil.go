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
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
)

// Shape parameters of the pencil strokes, relative to the segment spacing.
const (
	pencilShiftX    = 0.5
	pencilShiftY    = 0
	pencilSpreadX   = 0.5
	pencilSpreadY   = 0.125
	pencilMaxLength = 1.125

	pencilCount     = 25
	pencilLineWidth = 0.5
	pencilAlpha     = 0x40

	// gaussLimit is the number of standard deviations at which normal
	// samples are clipped.
	gaussLimit = 4
)

// Pencil draws every unit as a bundle of short, thin, translucent lines at
// random positions, which gives the look of a pencil sketch.
type Pencil struct {
	color   color.Color
	spacing float64
	cache   *TileCache

	// standard deviations and means of the line positions and lengths
	sx, sy, mx, my, sl float64
	box                rect.Rect
	buf                path.Data
}

var _ sketch.Stamper = (*Pencil)(nil)

// NewPencil returns a new Pencil pen.  The alpha value of col is
// replaced by a fixed, low value.  If col is nil, dark grey is used.
// If cfg is nil, the default cache configuration is used.
func NewPencil(col color.Color, spacing float64, cfg *CacheConfig) *Pencil {
	p := &Pencil{cache: NewTileCache(cfg)}
	p.SetColor(col)
	p.SetSpacing(spacing)
	return p
}

// SetColor changes the pen colour.  The alpha value of col is replaced
// by a fixed, low value.
func (p *Pencil) SetColor(col color.Color) {
	c := color.NRGBA{R: 0x30, G: 0x30, B: 0x30}
	if col != nil {
		c = color.NRGBAModel.Convert(col).(color.NRGBA)
	}
	c.A = pencilAlpha
	if !sameColor(c, p.color) {
		p.cache.Invalidate()
	}
	p.color = c
}

// Color returns the pen colour.
func (p *Pencil) Color() color.Color {
	return p.color
}

// SetSpacing changes the distance between units.
func (p *Pencil) SetSpacing(spacing float64) {
	s := spacingOrDefault(spacing)
	p.spacing = s
	p.sx = s * pencilSpreadX
	p.sy = s * pencilSpreadY
	p.mx = s * pencilShiftX
	p.my = s * pencilShiftY
	p.sl = s * pencilMaxLength

	left := p.mx - gaussLimit*p.sx - gaussLimit*p.sl
	right := p.mx + gaussLimit*p.sx + gaussLimit*p.sl
	top := p.my - gaussLimit*p.sy
	bottom := p.my + gaussLimit*p.sy
	p.box = expand(rect.Rect{LLx: left, LLy: top, URx: right, URy: bottom}, pencilLineWidth/2)
	p.cache.Invalidate()
}

// SegmentSpacing implements the [sketch.Stamper] interface.
func (p *Pencil) SegmentSpacing() float64 {
	return p.spacing
}

// Cache returns the tile cache used by the pen.
func (p *Pencil) Cache() *TileCache {
	return p.cache
}

// Prepare implements the [sketch.Stamper] interface.
func (p *Pencil) Prepare(ctx sketch.Context, s path.Path) {
	ctx.SetColor(p.color)
	ctx.SetLineWidth(pencilLineWidth)
	p.cache.Reset(ShapeSeed(s))
}

// Draw implements the [sketch.Stamper] interface.
func (p *Pencil) Draw(ctx sketch.Context, index int, _ float64) {
	p.cache.Draw(ctx, index, p.box, p.drawUnit)
}

// BoundingBox implements the [sketch.Stamper] interface.
func (p *Pencil) BoundingBox(sketch.Kind, float64) rect.Rect {
	return p.cache.TileBox(p.box)
}

func (p *Pencil) drawUnit(ctx sketch.Context, rng *rand.Rand) {
	ctx.SetLineCap(graphics.LineCapSquare)
	for range pencilCount {
		x := gauss(rng)*p.sx + p.mx
		y := gauss(rng)*p.sy + p.my
		l := gauss(rng) * p.sl

		p.buf.Cmds = p.buf.Cmds[:0]
		p.buf.Coords = p.buf.Coords[:0]
		p.buf.MoveTo(vec.Vec2{X: x, Y: y}).LineTo(vec.Vec2{X: x + l, Y: y})
		ctx.Stroke(p.buf.Iter())
	}
}

// gauss returns a standard normal sample, clipped to [-gaussLimit, gaussLimit].
func gauss(rng *rand.Rand) float64 {
	return max(-gaussLimit, min(gaussLimit, rng.NormFloat64()))
}
