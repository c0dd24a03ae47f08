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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Drawer draws paths using a Pen.
type Drawer struct {
	pen     Pen
	spacing float64
	opt     Options
}

// NewDrawer returns a Drawer which draws paths using p.
// The segment spacing of the pen is read once, here.
// If opt is nil, default options are used.
func NewDrawer(p Pen, opt *Options) (*Drawer, error) {
	if p == nil {
		return nil, ErrNilPen
	}
	spacing := p.SegmentSpacing()
	if !(spacing > 0) {
		return nil, ErrSpacing
	}
	d := &Drawer{
		pen:     p,
		spacing: spacing,
	}
	if opt != nil {
		d.opt = *opt
	}
	return d, nil
}

// Pen returns the pen used by the Drawer.
func (d *Drawer) Pen() Pen {
	return d.pen
}

// Draw draws the outline of p onto ctx.
// The graphics state of ctx is unchanged when Draw returns.
func (d *Drawer) Draw(ctx Context, p path.Path) {
	ctx.Save()
	d.pen.Prepare(ctx, p)
	for pl := range Placements(p, d.spacing, d.opt.FastOrientation) {
		ctx.Save()
		ctx.Transform(pl.Frame)
		if !d.opt.Cull || d.visible(ctx, pl) {
			switch pl.Kind {
			case Start:
				d.pen.Start(ctx, pl.Index, pl.Rotation)
			case End:
				d.pen.End(ctx, pl.Index, pl.Rotation)
			default:
				d.pen.Draw(ctx, pl.Index, pl.Rotation)
			}
		}
		ctx.Restore()
	}
	ctx.Restore()
}

// visible reports whether the unit at pl may paint inside the clip region.
// The context must already be transformed into the local frame.
func (d *Drawer) visible(ctx Context, pl Placement) bool {
	box := d.pen.BoundingBox(pl.Kind, pl.Rotation)
	if isEmpty(box) {
		return false
	}
	return overlaps(TransformRect(ctx.CTM(), box), ctx.Clip())
}

// Bounds returns a rectangle which contains everything Draw paints for p,
// in user space.  The zero rectangle is returned if nothing is painted.
//
// The result is computed from the boxes reported by the pen, without
// calling Prepare.
func (d *Drawer) Bounds(p path.Path) rect.Rect {
	var res rect.Rect
	if sb, ok := d.pen.SpecialBounds(p); ok {
		res = union(res, sb)
	}
	for pl := range Placements(p, d.spacing, d.opt.FastOrientation) {
		box := d.pen.BoundingBox(pl.Kind, pl.Rotation)
		if isEmpty(box) {
			continue
		}
		res = union(res, TransformRect(pl.Frame, box))
	}
	return res
}

// Drawable returns a Drawable for the outline of p.
func (d *Drawer) Drawable(p path.Path) *Drawable {
	return &Drawable{drawer: d, path: p}
}

// Drawable is the stylised outline of a fixed path, drawn with a fixed
// pen.  The path must support repeated iteration and must not change
// while the Drawable is in use.
type Drawable struct {
	drawer *Drawer
	path   path.Path

	bounds     rect.Rect
	haveBounds bool
}

// NewDrawable returns a Drawable which draws the outline of p using pen.
func NewDrawable(pen Pen, p path.Path, opt *Options) (*Drawable, error) {
	d, err := NewDrawer(pen, opt)
	if err != nil {
		return nil, err
	}
	return d.Drawable(p), nil
}

// Render draws the outline onto ctx.
func (dr *Drawable) Render(ctx Context) {
	dr.drawer.Draw(ctx, dr.path)
}

// Bounds returns the bounding box of the outline in user space.
// The box is computed on the first call and cached afterwards.
func (dr *Drawable) Bounds() rect.Rect {
	if !dr.haveBounds {
		dr.bounds = dr.drawer.Bounds(dr.path)
		dr.haveBounds = true
	}
	return dr.bounds
}

// RenderIfVisible draws the outline if its bounding box intersects the
// viewport, given in user space.  The return value reports whether the
// outline was drawn.
func (dr *Drawable) RenderIfVisible(ctx Context, viewport rect.Rect) bool {
	if !overlaps(dr.Bounds(), viewport) {
		return false
	}
	dr.Render(ctx)
	return true
}
