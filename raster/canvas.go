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

// Package raster implements a drawing context which renders into an
// [image.RGBA].
//
// Device space coincides with the pixel grid of the image: the pixel
// (x, y) covers the unit square [x, x+1] × [y, y+1].  Paths are
// flattened to polygons and converted to exact-area anti-aliased coverage
// using the nonzero winding rule.
package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas draws paths and images onto an RGBA image.
//
// The caller creates one Canvas per image and reuses it for many drawing
// operations.  Internal buffers grow as needed but never shrink.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Image is the target image.
	Image *image.RGBA

	// Flatness is the curve flattening tolerance in device pixels.
	// Values <= 0 select the default of 0.25.
	Flatness float64

	// MiterLimit is the miter limit for miter joins.
	// Must be >= 1.0.
	MiterLimit float64

	state gstate
	stack []gstate

	r      rasteriser
	s      stroker
	devBuf []vec.Vec2
}

// gstate is the part of the canvas state which is saved and restored by
// Save and Restore.
type gstate struct {
	ctm   matrix.Matrix
	clip  rect.Rect
	color color.Color
	width float64
	cap   graphics.LineCapStyle
	join  graphics.LineJoinStyle
}

// NewCanvas creates a new Canvas for the given image.  The CTM is the
// identity, the clip region is the image bounds, the colour is opaque
// black and the line width is 1.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		Image:      img,
		Flatness:   defaultFlatness,
		MiterLimit: defaultMiterLimit,
		state: gstate{
			ctm: matrix.Identity,
			clip: rect.Rect{
				LLx: float64(b.Min.X),
				LLy: float64(b.Min.Y),
				URx: float64(b.Max.X),
				URy: float64(b.Max.Y),
			},
			color: color.Black,
			width: 1,
			cap:   graphics.LineCapButt,
			join:  graphics.LineJoinMiter,
		},
	}
}

// Save pushes a copy of the current graphics state onto the state stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the topmost graphics state from the state stack.
// Restore without a matching Save panics.
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		panic("raster: Restore without matching Save")
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Transform modifies the CTM such that m is applied before the current
// transformation.
func (c *Canvas) Transform(m matrix.Matrix) {
	c.state.ctm = concat(m, c.state.ctm)
}

// CTM returns the current transformation matrix, mapping user space to
// device space.
func (c *Canvas) CTM() matrix.Matrix {
	return c.state.ctm
}

// Clip returns the current clip region in device space.
func (c *Canvas) Clip() rect.Rect {
	return c.state.clip
}

// SetClip intersects the current clip region with r, given in device space.
// The result is rounded outwards to whole pixels.
func (c *Canvas) SetClip(r rect.Rect) {
	cl := &c.state.clip
	cl.LLx = max(cl.LLx, math.Floor(r.LLx))
	cl.LLy = max(cl.LLy, math.Floor(r.LLy))
	cl.URx = min(cl.URx, math.Ceil(r.URx))
	cl.URy = min(cl.URy, math.Ceil(r.URy))
	if cl.URx < cl.LLx {
		cl.URx = cl.LLx
	}
	if cl.URy < cl.LLy {
		cl.URy = cl.LLy
	}
}

// SetColor sets the colour used for filling and stroking.
func (c *Canvas) SetColor(col color.Color) {
	c.state.color = col
}

// Color returns the colour used for filling and stroking.
func (c *Canvas) Color() color.Color {
	return c.state.color
}

// SetLineWidth sets the stroke width in user space units.
// A width of 0 selects the thinnest line which can be rendered.
func (c *Canvas) SetLineWidth(w float64) {
	c.state.width = w
}

// LineWidth returns the stroke width in user space units.
func (c *Canvas) LineWidth() float64 {
	return c.state.width
}

// SetLineCap sets the line cap style for stroke end points.
func (c *Canvas) SetLineCap(style graphics.LineCapStyle) {
	c.state.cap = style
}

// SetLineJoin sets the line join style for stroke corners.
func (c *Canvas) SetLineJoin(style graphics.LineJoinStyle) {
	c.state.join = style
}

// Fill fills the interior of p using the nonzero winding rule.
// Open subpaths are implicitly closed.
func (c *Canvas) Fill(p path.Path) {
	c.r.reset()
	c.r.addPath(Flatten(transformPath(p, c.state.ctm), c.flatness()))
	c.r.fill(c.clipRect(), c.blend)
}

// Stroke draws the outline of p using the current line width, cap and join
// style.
func (c *Canvas) Stroke(p path.Path) {
	scale := userScale(c.state.ctm)
	width := c.state.width
	if width <= 0 {
		width = 1 / scale
	}

	c.s.Width = width
	c.s.Cap = c.state.cap
	c.s.Join = c.state.join
	c.s.MiterLimit = c.MiterLimit
	c.s.Tolerance = c.flatness() / scale
	c.s.outline(p)

	c.r.reset()
	for i := range c.s.numPolygons() {
		poly := c.s.polygon(i)
		c.devBuf = c.devBuf[:0]
		for _, pt := range poly {
			c.devBuf = append(c.devBuf, apply(c.state.ctm, pt))
		}
		// All polygons are given the same orientation, so that
		// overlapping parts of the stroke are painted only once.
		c.r.addPolygon(c.devBuf, signedArea(c.devBuf) > 0)
	}
	c.r.fill(c.clipRect(), c.blend)
}

// DrawImage composites img over the canvas.  The pixel grid of img is
// aligned with user space, so that the top-left corner of the image
// bounds is placed at the user space point at and every image pixel
// covers one unit square.  The image is resampled with bilinear
// interpolation.
func (c *Canvas) DrawImage(img image.Image, at vec.Vec2) {
	clip := c.clipRect()
	if clip.Empty() {
		return
	}
	dst, ok := c.Image.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}

	b := img.Bounds()
	m := c.state.ctm
	tx := at.X - float64(b.Min.X)
	ty := at.Y - float64(b.Min.Y)
	s2d := f64.Aff3{
		m[0], m[2], m[0]*tx + m[2]*ty + m[4],
		m[1], m[3], m[1]*tx + m[3]*ty + m[5],
	}
	xdraw.BiLinear.Transform(dst, s2d, img, b, xdraw.Over, nil)
}

func (c *Canvas) flatness() float64 {
	if c.Flatness > 0 {
		return c.Flatness
	}
	return defaultFlatness
}

// clipRect returns the clip region as an integer rectangle inside the
// image bounds.
func (c *Canvas) clipRect() image.Rectangle {
	cl := c.state.clip
	r := image.Rect(
		int(math.Floor(cl.LLx)), int(math.Floor(cl.LLy)),
		int(math.Ceil(cl.URx)), int(math.Ceil(cl.URy)))
	return r.Intersect(c.Image.Bounds())
}

// blend composites the current colour, scaled by coverage, over one row
// of pixels.
func (c *Canvas) blend(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := c.state.color.RGBA()
	img := c.Image
	i := img.PixOffset(xMin, y)
	for _, cov := range coverage {
		m := uint32(cov*0xffff + 0.5)
		a := 0xffff - sa*m/0xffff
		pix := img.Pix[i : i+4 : i+4]
		pix[0] = uint8((uint32(pix[0])*0x101*a/0xffff + sr*m/0xffff) >> 8)
		pix[1] = uint8((uint32(pix[1])*0x101*a/0xffff + sg*m/0xffff) >> 8)
		pix[2] = uint8((uint32(pix[2])*0x101*a/0xffff + sb*m/0xffff) >> 8)
		pix[3] = uint8((uint32(pix[3])*0x101*a/0xffff + sa*m/0xffff) >> 8)
		i += 4
	}
}
