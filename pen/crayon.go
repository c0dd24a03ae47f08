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
	"math/rand/v2"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

// DefaultPressure is the crayon pressure used by [NewCrayon].
const DefaultPressure = 2.0

// Crayon draws every unit as a band of small square grains, scattered
// randomly across the width of the band.
type Crayon struct {
	color     color.Color
	spacing   float64
	thickness float64
	pressure  float64
	cache     *TileCache

	box rect.Rect
	buf path.Data
}

var _ sketch.Stamper = (*Crayon)(nil)

// NewCrayon returns a new Crayon pen with the given colour and band
// thickness.  If cfg is nil, the default cache configuration is used.
func NewCrayon(col color.Color, thickness float64, cfg *CacheConfig) *Crayon {
	if col == nil {
		col = color.Black
	}
	c := &Crayon{
		color:     col,
		spacing:   DefaultSpacing,
		thickness: thickness,
		pressure:  DefaultPressure,
		cache:     NewTileCache(cfg),
	}
	c.update()
	return c
}

// SetColor changes the pen colour.
func (c *Crayon) SetColor(col color.Color) {
	if !sameColor(col, c.color) {
		c.cache.Invalidate()
	}
	c.color = col
}

// Color returns the pen colour.
func (c *Crayon) Color() color.Color {
	return c.color
}

// SetSpacing changes the distance between units.
func (c *Crayon) SetSpacing(spacing float64) {
	c.spacing = spacingOrDefault(spacing)
	c.update()
}

// SegmentSpacing implements the [sketch.Stamper] interface.
func (c *Crayon) SegmentSpacing() float64 {
	return c.spacing
}

// SetThickness changes the width of the band.
func (c *Crayon) SetThickness(thickness float64) {
	c.thickness = thickness
	c.update()
}

// Thickness returns the width of the band.
func (c *Crayon) Thickness() float64 {
	return c.thickness
}

// SetPressure changes the density of grains.  Every unit has
// round(thickness*pressure) grains per unit of length.
func (c *Crayon) SetPressure(pressure float64) {
	c.pressure = pressure
	c.update()
}

// Pressure returns the density of grains.
func (c *Crayon) Pressure() float64 {
	return c.pressure
}

// Cache returns the tile cache used by the pen.
func (c *Crayon) Cache() *TileCache {
	return c.cache
}

// update recomputes the unit bounding box and discards all tiles.
func (c *Crayon) update() {
	ht := c.thickness / 2
	c.box = expand(rect.Rect{
		LLx: -0.5,
		LLy: -ht - 0.5,
		URx: c.spacing + 2.5,
		URy: ht + 0.5,
	}, 0.5)
	c.cache.Invalidate()
}

// Prepare implements the [sketch.Stamper] interface.
func (c *Crayon) Prepare(ctx sketch.Context, s path.Path) {
	ctx.SetColor(c.color)
	ctx.SetLineWidth(1)
	c.cache.Reset(ShapeSeed(s))
}

// Draw implements the [sketch.Stamper] interface.
func (c *Crayon) Draw(ctx sketch.Context, index int, _ float64) {
	c.cache.Draw(ctx, index, c.box, c.drawUnit)
}

// BoundingBox implements the [sketch.Stamper] interface.
func (c *Crayon) BoundingBox(sketch.Kind, float64) rect.Rect {
	return c.cache.TileBox(c.box)
}

func (c *Crayon) drawUnit(ctx sketch.Context, rng *rand.Rand) {
	n := int(math.Round(c.thickness * c.pressure))
	if n <= 0 {
		return
	}
	ht := c.thickness / 2

	c.buf.Cmds = c.buf.Cmds[:0]
	c.buf.Coords = c.buf.Coords[:0]
	for pos := 0.0; pos <= c.spacing+2; pos++ {
		for range n {
			y := rng.Float64()*c.thickness - ht
			x0, y0 := pos-0.5, y-0.5
			c.buf.MoveTo(vec.Vec2{X: x0, Y: y0}).
				LineTo(vec.Vec2{X: x0 + 1, Y: y0}).
				LineTo(vec.Vec2{X: x0 + 1, Y: y0 + 1}).
				LineTo(vec.Vec2{X: x0, Y: y0 + 1}).
				Close()
		}
	}
	ctx.Fill(c.buf.Iter())
}
