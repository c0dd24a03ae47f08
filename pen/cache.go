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
	"encoding/binary"
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/raster"
)

// DefaultTiles is the default number of tiles kept by a [TileCache].
const DefaultTiles = 20

// maxTilePixels limits the size of a single tile.  Larger units are
// drawn directly.
const maxTilePixels = 1 << 22

// CacheConfig configures a [TileCache].
// The zero value selects DefaultTiles tiles without supersampling.
type CacheConfig struct {
	// Disabled switches off caching.  Every unit is then drawn directly,
	// using random numbers seeded by the placement index.
	Disabled bool

	// Tiles is the number of different tiles.  Placements are mapped to
	// tiles pseudo-randomly, so that units look varied.
	Tiles int

	// Supersample is the resolution, in pixels per user space unit, at
	// which tiles are rendered before they are scaled down.  Values
	// below 1 are treated as 1.
	Supersample float64
}

// UnitFunc draws one unit of a randomised pen into ctx, in the local
// frame of the unit.  All random choices must be taken from rng.
type UnitFunc func(ctx sketch.Context, rng *rand.Rand)

// TileCache stores pre-rendered units of a randomised pen.
//
// The cache is seeded once per shape, see [TileCache.Reset].  Every
// placement is mapped to one of a fixed number of tiles by a
// pseudo-random function of the seed and the placement index.  The
// content of each tile is drawn using random numbers seeded by the seed
// and the tile number, so that drawing the same shape twice gives
// identical results.
//
// A TileCache is not safe for concurrent use.
type TileCache struct {
	disabled    bool
	supersample float64

	seed      uint64
	tiles     []*image.RGBA
	tileSeed  uint64
	tilesUsed bool

	// state the tiles were rendered with
	box       rect.Rect
	haveBox   bool
	color     [4]uint32
	haveColor bool
	width     float64

	bucketSrc rand.PCG
	bucketRng *rand.Rand
	unitSrc   rand.PCG
	unitRng   *rand.Rand
}

// NewTileCache returns a new, empty TileCache.
// If cfg is nil, default values are used.
func NewTileCache(cfg *CacheConfig) *TileCache {
	if cfg == nil {
		cfg = &CacheConfig{}
	}
	n := cfg.Tiles
	if n <= 0 {
		n = DefaultTiles
	}
	c := &TileCache{
		disabled:    cfg.Disabled,
		supersample: max(cfg.Supersample, 1),
		tiles:       make([]*image.RGBA, n),
	}
	c.bucketRng = rand.New(&c.bucketSrc)
	c.unitRng = rand.New(&c.unitSrc)
	return c
}

// Reset sets the seed for the next shape.  If the seed differs from the
// one the current tiles were drawn with, all tiles are discarded.
func (c *TileCache) Reset(seed uint64) {
	c.seed = seed
	if c.tilesUsed && seed != c.tileSeed {
		c.Invalidate()
	}
}

// Seed returns the current seed.
func (c *TileCache) Seed() uint64 {
	return c.seed
}

// Invalidate discards all tiles.
func (c *TileCache) Invalidate() {
	clear(c.tiles)
	c.tilesUsed = false
}

// Bucket returns the tile number used for the given placement.
func (c *TileCache) Bucket(index int) int {
	c.bucketSrc.Seed(c.seed, uint64(index))
	return c.bucketRng.IntN(len(c.tiles))
}

// TileBox returns the area covered by a tile for a unit with bounding
// box box.  Tiles have integer size, so the result may be slightly larger
// than box.
func (c *TileCache) TileBox(box rect.Rect) rect.Rect {
	w, h := tileSize(box)
	if w <= 0 || h <= 0 {
		return box
	}
	return rect.Rect{
		LLx: box.LLx,
		LLy: box.LLy,
		URx: box.LLx + float64(w),
		URy: box.LLy + float64(h),
	}
}

// Draw draws the unit for the given placement.  The unit must fit into
// box, given in the local frame.
//
// If the cache is disabled, if box is empty, if ctx cannot draw images,
// or if the unit is too large, the unit is drawn directly into ctx.
// Otherwise the tile for the placement is copied into ctx, rendering it
// first if needed.
func (c *TileCache) Draw(ctx sketch.Context, index int, box rect.Rect, unit UnitFunc) {
	if c.disabled {
		c.drawDirect(ctx, index, unit)
		return
	}

	c.checkState(ctx, box)

	id, ok := ctx.(sketch.ImageDrawer)
	w, h := tileSize(box)
	s := c.supersample
	if !ok || w <= 0 || h <= 0 || float64(w)*float64(h)*s*s > maxTilePixels {
		c.drawDirect(ctx, index, unit)
		return
	}

	bucket := c.Bucket(index)
	tile := c.tiles[bucket]
	if tile == nil {
		tile = c.render(ctx, bucket, box, w, h, unit)
		c.tiles[bucket] = tile
		c.tileSeed = c.seed
		c.tilesUsed = true
	}
	id.DrawImage(tile, vec.Vec2{X: box.LLx, Y: box.LLy})
}

// checkState discards all tiles if the unit box or the graphics state
// differ from the ones the tiles were rendered with.
func (c *TileCache) checkState(ctx sketch.Context, box rect.Rect) {
	var col [4]uint32
	col[0], col[1], col[2], col[3] = ctx.Color().RGBA()
	width := ctx.LineWidth()

	if !c.haveBox || box != c.box || !c.haveColor || col != c.color || width != c.width {
		c.Invalidate()
		c.box = box
		c.haveBox = true
		c.color = col
		c.haveColor = true
		c.width = width
	}
}

func (c *TileCache) drawDirect(ctx sketch.Context, index int, unit UnitFunc) {
	c.unitSrc.Seed(c.seed, uint64(index))
	unit(ctx, c.unitRng)
}

// render draws the tile for the given bucket.
func (c *TileCache) render(ctx sketch.Context, bucket int, box rect.Rect, w, h int, unit UnitFunc) *image.RGBA {
	s := c.supersample
	sw := int(math.Ceil(float64(w) * s))
	sh := int(math.Ceil(float64(h) * s))

	img := image.NewRGBA(image.Rect(0, 0, sw, sh))
	cv := raster.NewCanvas(img)
	cv.SetColor(ctx.Color())
	cv.SetLineWidth(ctx.LineWidth())
	cv.Transform(matrix.Scale(s, s))
	cv.Transform(matrix.Matrix{1, 0, 0, 1, -box.LLx, -box.LLy})

	c.unitSrc.Seed(c.seed, uint64(bucket))
	unit(cv, c.unitRng)

	if sw == w && sh == h {
		return img
	}
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return small
}

func tileSize(box rect.Rect) (w, h int) {
	bw := box.URx - box.LLx
	bh := box.URy - box.LLy
	if !(bw > 0 && bh > 0) || math.IsInf(bw, 0) || math.IsInf(bh, 0) {
		return 0, 0
	}
	return int(math.Ceil(bw)), int(math.Ceil(bh))
}

// ShapeSeed derives a seed from the size of the bounding box of p.
// The seed does not change when the path is translated.
func ShapeSeed(p path.Path) uint64 {
	b := sketch.PathBounds(p)
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(b.URx-b.LLx))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(b.URy-b.LLy))
	h.Write(buf[:])
	return h.Sum64()
}

// sameColor reports whether a and b have the same RGBA values.
func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
