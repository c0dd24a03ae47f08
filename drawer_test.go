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
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sketch/raster"
)

// call records one call of a drawing method of testPen.
type call struct {
	Kind  Kind
	Index int
}

// testPen fills a small rectangle for every unit and records its calls.
type testPen struct {
	spacing  float64
	calls    []call
	prepared int
	boxes    int
	special  *rect.Rect
}

func (p *testPen) Prepare(ctx Context, _ path.Path) {
	p.prepared++
	ctx.SetColor(color.NRGBA{R: 255, A: 255})
}

func (p *testPen) unit(ctx Context, kind Kind, index int) {
	p.calls = append(p.calls, call{kind, index})
	b := p.box()
	r := (&path.Data{}).
		MoveTo(pt(b.LLx, b.LLy)).
		LineTo(pt(b.URx, b.LLy)).
		LineTo(pt(b.URx, b.URy)).
		LineTo(pt(b.LLx, b.URy)).
		Close()
	ctx.Fill(r.Iter())
}

func (p *testPen) Start(ctx Context, index int, _ float64) { p.unit(ctx, Start, index) }
func (p *testPen) Draw(ctx Context, index int, _ float64)  { p.unit(ctx, Normal, index) }
func (p *testPen) End(ctx Context, index int, _ float64)   { p.unit(ctx, End, index) }

func (p *testPen) box() rect.Rect {
	return rect.Rect{LLx: 0, LLy: -1, URx: p.spacing * 0.8, URy: 1}
}

func (p *testPen) BoundingBox(Kind, float64) rect.Rect {
	p.boxes++
	return p.box()
}

func (p *testPen) SpecialBounds(path.Path) (rect.Rect, bool) {
	if p.special == nil {
		return rect.Rect{}, false
	}
	return *p.special, true
}

func (p *testPen) SegmentSpacing() float64 { return p.spacing }

// depthContext tracks the nesting of Save and Restore calls.
type depthContext struct {
	*raster.Canvas
	depth, maxDepth int
}

func (c *depthContext) Save() {
	c.depth++
	c.maxDepth = max(c.maxDepth, c.depth)
	c.Canvas.Save()
}

func (c *depthContext) Restore() {
	c.depth--
	c.Canvas.Restore()
}

func newTestCanvas(w, h int) *raster.Canvas {
	return raster.NewCanvas(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func square(x0, y0, size float64) path.Path {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x0+size, y0)).
		LineTo(pt(x0+size, y0+size)).
		LineTo(pt(x0, y0+size)).
		Close().Iter()
}

func TestNewDrawerErrors(t *testing.T) {
	if _, err := NewDrawer(nil, nil); !errors.Is(err, ErrNilPen) {
		t.Errorf("nil pen: got %v", err)
	}
	for _, s := range []float64{0, -3} {
		_, err := NewDrawer(&testPen{spacing: s}, nil)
		if !errors.Is(err, ErrSpacing) {
			t.Errorf("spacing %g: got %v", s, err)
		}
	}
	if _, err := NewDrawable(nil, square(0, 0, 1), nil); !errors.Is(err, ErrNilPen) {
		t.Errorf("NewDrawable: got %v", err)
	}
}

func TestDrawStateBalanced(t *testing.T) {
	pen := &testPen{spacing: 10}
	d, err := NewDrawer(pen, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := &depthContext{Canvas: newTestCanvas(64, 64)}
	ctx.Transform(matrix.Matrix{1, 0, 0, 1, 2, 3})
	before := ctx.CTM()
	d.Draw(ctx, square(5, 5, 40))

	if ctx.depth != 0 {
		t.Errorf("unbalanced Save/Restore: depth %d", ctx.depth)
	}
	if ctx.maxDepth != 2 {
		t.Errorf("max depth %d, want 2", ctx.maxDepth)
	}
	if d := cmp.Diff(before, ctx.CTM()); d != "" {
		t.Errorf("CTM changed (-before +after):\n%s", d)
	}
	if pen.prepared != 1 {
		t.Errorf("Prepare called %d times", pen.prepared)
	}

	want := []call{
		{Start, 0}, {Normal, 1}, {Normal, 2}, {Normal, 3},
		{Normal, 4}, {Normal, 5}, {Normal, 6}, {Normal, 7},
		{Normal, 8}, {Normal, 9}, {Normal, 10}, {Normal, 11},
		{Normal, 12}, {Normal, 13}, {Normal, 14}, {End, 15},
	}
	if d := cmp.Diff(want, pen.calls); d != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", d)
	}
}

func TestDrawEmptyPath(t *testing.T) {
	pen := &testPen{spacing: 10}
	d, _ := NewDrawer(pen, nil)

	ctx := newTestCanvas(16, 16)
	for _, p := range []path.Path{
		(&path.Data{}).Iter(),
		(&path.Data{}).MoveTo(pt(3, 3)).LineTo(pt(3, 3)).Iter(),
	} {
		d.Draw(ctx, p)
		if got := d.Bounds(p); got != (rect.Rect{}) {
			t.Errorf("bounds %v, want zero rectangle", got)
		}
	}
	if len(pen.calls) != 0 {
		t.Errorf("unexpected calls %v", pen.calls)
	}
	for _, v := range ctx.Image.Pix {
		if v != 0 {
			t.Fatal("empty path painted pixels")
		}
	}
}

// TestBoundsContainDrawing checks that no pixel is painted outside the
// rectangle returned by Bounds.
func TestBoundsContainDrawing(t *testing.T) {
	pen := &testPen{spacing: 7}
	d, _ := NewDrawer(pen, nil)

	p := (&path.Data{}).
		MoveTo(pt(10, 10)).
		CubeTo(pt(10, 60), pt(60, 60), pt(50, 15)).
		MoveTo(pt(40, 50)).
		LineTo(pt(55, 58))
	ctx := newTestCanvas(80, 80)
	d.Draw(ctx, p.Iter())

	b := d.Bounds(p.Iter())
	if b.LLx < 8 || b.URx > 62 || b.LLy < 8 || b.URy > 62 {
		t.Errorf("bounds %v too large", b)
	}
	painted := 0
	img := ctx.Image
	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			painted++
			if float64(x+1) <= b.LLx || float64(x) >= b.URx ||
				float64(y+1) <= b.LLy || float64(y) >= b.URy {
				t.Fatalf("pixel (%d, %d) lies outside %v", x, y, b)
			}
		}
	}
	if painted == 0 {
		t.Error("nothing painted")
	}
}

func TestSpecialBounds(t *testing.T) {
	special := rect.Rect{LLx: -50, LLy: -40, URx: -30, URy: -20}
	pen := &testPen{spacing: 10, special: &special}
	d, _ := NewDrawer(pen, nil)

	got := d.Bounds(square(0, 0, 20))
	if got.LLx != -50 || got.LLy != -40 || got.URx < 20 || got.URy < 20 {
		t.Errorf("special bounds not included: %v", got)
	}
	if pen.prepared != 0 {
		t.Error("Bounds called Prepare")
	}
}

func TestDrawableCachesBounds(t *testing.T) {
	pen := &testPen{spacing: 10}
	dr, err := NewDrawable(pen, square(0, 0, 30), nil)
	if err != nil {
		t.Fatal(err)
	}

	b1 := dr.Bounds()
	n := pen.boxes
	if n == 0 {
		t.Fatal("BoundingBox not used")
	}
	b2 := dr.Bounds()
	if pen.boxes != n {
		t.Error("bounds computed twice")
	}
	if b1 != b2 {
		t.Errorf("bounds changed: %v != %v", b1, b2)
	}
}

func TestRenderIfVisible(t *testing.T) {
	pen := &testPen{spacing: 10}
	dr, _ := NewDrawable(pen, square(10, 10, 20), nil)
	ctx := newTestCanvas(64, 64)

	far := rect.Rect{LLx: 100, LLy: 100, URx: 200, URy: 200}
	if dr.RenderIfVisible(ctx, far) {
		t.Error("drawn outside viewport")
	}
	if len(pen.calls) != 0 {
		t.Error("pen called for invisible outline")
	}

	near := rect.Rect{LLx: 0, LLy: 0, URx: 15, URy: 15}
	if !dr.RenderIfVisible(ctx, near) {
		t.Error("visible outline not drawn")
	}
	if len(pen.calls) == 0 {
		t.Error("pen not called")
	}
}

// TestCullingKeepsOutput checks that culling skips units without changing
// the image.
func TestCullingKeepsOutput(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(5, 5)).
		LineTo(pt(95, 5)).
		LineTo(pt(95, 95)).
		LineTo(pt(5, 60)).
		Close()

	clip := rect.Rect{LLx: 30, LLy: 0, URx: 70, URy: 50}
	render := func(cull bool) (*raster.Canvas, int) {
		pen := &testPen{spacing: 6}
		d, _ := NewDrawer(pen, &Options{Cull: cull})
		ctx := newTestCanvas(100, 100)
		ctx.SetClip(clip)
		d.Draw(ctx, p.Iter())
		return ctx, len(pen.calls)
	}

	plain, nPlain := render(false)
	culled, nCulled := render(true)
	if nCulled >= nPlain {
		t.Errorf("culling drew %d of %d units", nCulled, nPlain)
	}
	if nCulled == 0 {
		t.Fatal("culling removed everything")
	}
	if !bytes.Equal(plain.Image.Pix, culled.Image.Pix) {
		t.Error("culling changed the output")
	}
}

func TestFastOrientation(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(30, 17))
	exact, _ := NewDrawer(&testPen{spacing: 5}, nil)
	fast, _ := NewDrawer(&testPen{spacing: 5}, &Options{FastOrientation: true})

	a := exact.Bounds(p.Iter())
	b := fast.Bounds(p.Iter())
	for _, d := range []float64{a.LLx - b.LLx, a.LLy - b.LLy, a.URx - b.URx, a.URy - b.URy} {
		if d < -0.1 || d > 0.1 {
			t.Errorf("bounds differ too much: %v vs %v", a, b)
			break
		}
	}
}

func TestAdapter(t *testing.T) {
	s := &stampRecorder{}
	pen := Adapt(s)
	d, err := NewDrawer(pen, nil)
	if err != nil {
		t.Fatal(err)
	}
	d.Draw(newTestCanvas(32, 32), (&path.Data{}).MoveTo(pt(0, 10)).LineTo(pt(25, 10)).Iter())

	if d := cmp.Diff([]int{0, 1, 2}, s.indices); d != "" {
		t.Errorf("unexpected indices (-want +got):\n%s", d)
	}
	if _, ok := pen.SpecialBounds(nil); ok {
		t.Error("adapter reports special bounds")
	}
}

type stampRecorder struct {
	indices []int
}

func (s *stampRecorder) Prepare(Context, path.Path) {}

func (s *stampRecorder) Draw(_ Context, index int, _ float64) {
	s.indices = append(s.indices, index)
}

func (s *stampRecorder) BoundingBox(Kind, float64) rect.Rect {
	return rect.Rect{URx: 10, LLy: -1, URy: 1}
}

func (s *stampRecorder) SegmentSpacing() float64 { return 10 }
