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
	"bytes"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/raster"
)

func newCanvas(w, h int) *raster.Canvas {
	return raster.NewCanvas(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func square(x0, y0, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x0+size, y0)).
		LineTo(pt(x0+size, y0+size)).
		LineTo(pt(x0, y0+size)).
		Close()
}

// render draws p with pen onto a fresh canvas.
func render(t testing.TB, pen sketch.Pen, p *path.Data, w, h int) *image.RGBA {
	t.Helper()
	d, err := sketch.NewDrawer(pen, nil)
	if err != nil {
		t.Fatal(err)
	}
	cv := newCanvas(w, h)
	d.Draw(cv, p.Iter())
	return cv.Image
}

// plainContext hides the DrawImage method of the wrapped context.
type plainContext struct {
	sketch.Context
}

func countTiles(c *TileCache) int {
	n := 0
	for _, tile := range c.tiles {
		if tile != nil {
			n++
		}
	}
	return n
}

func alphaSum(img *image.RGBA) int {
	sum := 0
	for i := 3; i < len(img.Pix); i += 4 {
		sum += int(img.Pix[i])
	}
	return sum
}

func TestBucket(t *testing.T) {
	c := NewTileCache(&CacheConfig{Tiles: 7})
	c.Reset(42)

	counts := make([]int, 7)
	for i := range 1000 {
		b := c.Bucket(i)
		if b < 0 || b >= 7 {
			t.Fatalf("bucket %d out of range", b)
		}
		counts[b]++
	}
	for b, n := range counts {
		if n == 0 {
			t.Errorf("bucket %d never used", b)
		}
	}

	first := make([]int, 50)
	for i := range first {
		first[i] = c.Bucket(i)
	}
	for i := range first {
		if got := c.Bucket(i); got != first[i] {
			t.Fatalf("bucket of %d changed from %d to %d", i, first[i], got)
		}
	}

	c.Reset(43)
	same := true
	for i := range first {
		if c.Bucket(i) != first[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("bucket assignment does not depend on the seed")
	}
}

func TestTileBox(t *testing.T) {
	c := NewTileCache(nil)
	box := rect.Rect{LLx: -1.5, LLy: -2.25, URx: 3, URy: 2}
	got := c.TileBox(box)
	want := rect.Rect{LLx: -1.5, LLy: -2.25, URx: 3.5, URy: 2.75}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	empty := rect.Rect{LLx: 1, LLy: 1, URx: 1, URy: 5}
	if got := c.TileBox(empty); got != empty {
		t.Errorf("empty box changed to %v", got)
	}
}

func TestShapeSeed(t *testing.T) {
	a := ShapeSeed(square(0, 0, 30).Iter())
	b := ShapeSeed(square(17.5, -4, 30).Iter())
	c := ShapeSeed(square(0, 0, 31).Iter())
	if a != b {
		t.Error("seed changes under translation")
	}
	if a == c {
		t.Error("seed does not depend on the shape size")
	}
}

func TestDeterministic(t *testing.T) {
	p := square(10.5, 12, 60)
	pens := map[string]func() sketch.Pen{
		"pencil": func() sketch.Pen { return sketch.Adapt(NewPencil(nil, 8, nil)) },
		"crayon": func() sketch.Pen { return sketch.Adapt(NewCrayon(color.Black, 3, nil)) },
	}
	for name, mk := range pens {
		t.Run(name, func(t *testing.T) {
			pen := mk()
			img1 := render(t, pen, p, 90, 90)
			img2 := render(t, pen, p, 90, 90)
			img3 := render(t, mk(), p, 90, 90)
			if !bytes.Equal(img1.Pix, img2.Pix) {
				t.Error("second drawing differs")
			}
			if !bytes.Equal(img1.Pix, img3.Pix) {
				t.Error("drawing with a new pen differs")
			}
			if alphaSum(img1) == 0 {
				t.Error("nothing drawn")
			}
		})
	}
}

func TestCacheInvalidation(t *testing.T) {
	crayon := NewCrayon(color.Black, 4, nil)
	c := crayon.Cache()
	p := square(5, 5, 50)

	draw := func() {
		t.Helper()
		render(t, sketch.Adapt(crayon), p, 64, 64)
		if countTiles(c) == 0 {
			t.Fatal("no tiles rendered")
		}
	}

	draw()
	n := countTiles(c)
	crayon.SetColor(color.Black)
	if countTiles(c) != n {
		t.Error("tiles discarded for unchanged colour")
	}
	crayon.SetColor(color.NRGBA{R: 200, A: 255})
	if countTiles(c) != 0 {
		t.Error("tiles kept after colour change")
	}

	draw()
	crayon.SetSpacing(7)
	if countTiles(c) != 0 {
		t.Error("tiles kept after spacing change")
	}

	draw()
	crayon.SetThickness(6)
	if countTiles(c) != 0 {
		t.Error("tiles kept after thickness change")
	}

	draw()
	seed := c.Seed()
	c.Reset(seed)
	if countTiles(c) == 0 {
		t.Error("tiles discarded for unchanged seed")
	}
	c.Reset(seed + 1)
	if countTiles(c) != 0 {
		t.Error("tiles kept after seed change")
	}
}

func TestCacheFollowsContext(t *testing.T) {
	c := NewTileCache(nil)
	c.Reset(1)
	box := rect.Rect{LLx: 0, LLy: -2, URx: 4, URy: 2}
	unit := func(ctx sketch.Context, _ *rand.Rand) {
		ctx.Fill(square(0, -2, 4).Iter())
	}

	cv := newCanvas(16, 16)
	cv.SetColor(color.Black)
	c.Draw(cv, 0, box, unit)
	if countTiles(c) != 1 {
		t.Fatalf("%d tiles", countTiles(c))
	}
	c.Draw(cv, 0, box, unit)
	if countTiles(c) != 1 {
		t.Errorf("%d tiles after redraw", countTiles(c))
	}

	cv.SetColor(color.White)
	c.Draw(cv, 0, box, unit)
	if countTiles(c) != 1 {
		t.Errorf("%d tiles after colour change", countTiles(c))
	}
	tile := c.tiles[c.Bucket(0)]
	if got := tile.RGBAAt(1, 1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("tile not redrawn in new colour: %v", got)
	}
}

// TestNonImageDrawer checks that units are drawn directly, if the context
// cannot draw images.
func TestNonImageDrawer(t *testing.T) {
	p := square(8, 8, 40)

	disabled := sketch.Adapt(NewCrayon(color.Black, 3, &CacheConfig{Disabled: true}))
	want := render(t, disabled, p, 64, 64)

	crayon := NewCrayon(color.Black, 3, nil)
	d, err := sketch.NewDrawer(sketch.Adapt(crayon), nil)
	if err != nil {
		t.Fatal(err)
	}
	cv := newCanvas(64, 64)
	d.Draw(plainContext{cv}, p.Iter())

	if countTiles(crayon.Cache()) != 0 {
		t.Error("tiles rendered for a plain context")
	}
	if !bytes.Equal(want.Pix, cv.Image.Pix) {
		t.Error("direct drawing differs from disabled cache")
	}
}

// TestDisabledCoverage checks that cached and uncached drawing give
// roughly the same amount of ink.
func TestDisabledCoverage(t *testing.T) {
	p := square(10, 10, 80)
	cached := alphaSum(render(t, sketch.Adapt(NewCrayon(color.Black, 4, nil)), p, 100, 100))
	direct := alphaSum(render(t, sketch.Adapt(NewCrayon(color.Black, 4, &CacheConfig{Disabled: true})), p, 100, 100))

	if direct == 0 {
		t.Fatal("nothing drawn")
	}
	ratio := float64(cached) / float64(direct)
	if ratio < 0.85 || ratio > 1.15 {
		t.Errorf("cached/direct ink ratio %.3f", ratio)
	}
}

func TestSupersample(t *testing.T) {
	p := square(10, 10, 40)
	pen := NewPencil(color.Black, 6, &CacheConfig{Supersample: 3})
	img := render(t, sketch.Adapt(pen), p, 64, 64)
	if alphaSum(img) == 0 {
		t.Fatal("nothing drawn")
	}
	for _, tile := range pen.Cache().tiles {
		if tile == nil {
			continue
		}
		w, h := tileSize(pen.box)
		if tile.Bounds().Dx() != w || tile.Bounds().Dy() != h {
			t.Errorf("tile size %v, want %dx%d", tile.Bounds(), w, h)
		}
	}
}

func BenchmarkCrayon(b *testing.B) {
	p := (&path.Data{}).
		MoveTo(pt(10, 10)).
		CubeTo(pt(10, 300), pt(300, 300), pt(300, 10)).
		Close()
	for _, disabled := range []bool{false, true} {
		name := "cached"
		if disabled {
			name = "direct"
		}
		b.Run(name, func(b *testing.B) {
			pen := sketch.Adapt(NewCrayon(color.Black, 4, &CacheConfig{Disabled: disabled}))
			d, err := sketch.NewDrawer(pen, nil)
			if err != nil {
				b.Fatal(err)
			}
			cv := newCanvas(320, 320)
			for b.Loop() {
				d.Draw(cv, p.Iter())
			}
		})
	}
}
