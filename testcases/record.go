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


package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
)

// Op is one recorded fill or stroke operation.
type Op struct {
	Stroke bool
	Path   *path.Data    // in user space
	CTM    matrix.Matrix // maps user space to device space
	Color  color.Color
	Width  float64
	Cap    graphics.LineCapStyle
	Join   graphics.LineJoinStyle
}

// Recorder is a [sketch.Context] which records all fill and stroke
// operations instead of drawing them.  Recorder does not implement
// [sketch.ImageDrawer], so pens draw all units directly.
type Recorder struct {
	Ops []Op

	state recState
	stack []recState
}

type recState struct {
	ctm   matrix.Matrix
	clip  rect.Rect
	color color.Color
	width float64
	cap   graphics.LineCapStyle
	join  graphics.LineJoinStyle
}

var _ sketch.Context = (*Recorder)(nil)

// NewRecorder returns a Recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		state: recState{
			ctm:   matrix.Identity,
			clip:  rect.Rect{URx: float64(width), URy: float64(height)},
			color: color.Black,
			width: 1,
			cap:   graphics.LineCapButt,
			join:  graphics.LineJoinMiter,
		},
	}
}

// Record draws the test case into a new Recorder.
func Record(tc TestCase) *Recorder {
	r := NewRecorder(tc.Width, tc.Height)
	r.Transform(tc.Transform())
	d, err := sketch.NewDrawer(tc.NewPen(), nil)
	if err != nil {
		panic(err)
	}
	d.Draw(r, tc.Path)
	return r
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
}

func (r *Recorder) Restore() {
	n := len(r.stack) - 1
	if n < 0 {
		panic("testcases: Restore without matching Save")
	}
	r.state = r.stack[n]
	r.stack = r.stack[:n]
}

func (r *Recorder) Transform(m matrix.Matrix) {
	c := r.state.ctm
	r.state.ctm = matrix.Matrix{
		m[0]*c[0] + m[1]*c[2],
		m[0]*c[1] + m[1]*c[3],
		m[2]*c[0] + m[3]*c[2],
		m[2]*c[1] + m[3]*c[3],
		m[4]*c[0] + m[5]*c[2] + c[4],
		m[4]*c[1] + m[5]*c[3] + c[5],
	}
}

func (r *Recorder) CTM() matrix.Matrix     { return r.state.ctm }
func (r *Recorder) Clip() rect.Rect        { return r.state.clip }
func (r *Recorder) SetColor(c color.Color) { r.state.color = c }
func (r *Recorder) Color() color.Color     { return r.state.color }
func (r *Recorder) SetLineWidth(w float64) { r.state.width = w }
func (r *Recorder) LineWidth() float64     { return r.state.width }

func (r *Recorder) SetLineCap(style graphics.LineCapStyle) {
	r.state.cap = style
}

func (r *Recorder) SetLineJoin(style graphics.LineJoinStyle) {
	r.state.join = style
}

func (r *Recorder) Fill(p path.Path) {
	r.record(false, p)
}

func (r *Recorder) Stroke(p path.Path) {
	r.record(true, p)
}

func (r *Recorder) record(stroke bool, p path.Path) {
	data := &path.Data{}
	for cmd, pts := range p {
		data.Cmds = append(data.Cmds, cmd)
		data.Coords = append(data.Coords, pts...)
	}
	r.Ops = append(r.Ops, Op{
		Stroke: stroke,
		Path:   data,
		CTM:    r.state.ctm,
		Color:  r.state.color,
		Width:  r.state.width,
		Cap:    r.state.cap,
		Join:   r.state.join,
	})
}
