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
	"fmt"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func straight(length float64) path.Path {
	return (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(length, 0)).Iter()
}

func TestPlacementCount(t *testing.T) {
	for _, S := range []float64{1, 3, 7.5, 10} {
		for _, L := range []float64{0.1, 1, 4.9, 5, 5.1, 10, 14.9, 15, 33, 100} {
			t.Run(fmt.Sprintf("L%g_S%g", L, S), func(t *testing.T) {
				got := 0
				for range Placements(straight(L), S, false) {
					got++
				}
				want := int(math.Floor(max(L-S/2, 0)/S)) + 1
				if got != want {
					t.Errorf("got %d placements, want %d", got, want)
				}
			})
		}
	}
}

func TestPlacementsExample(t *testing.T) {
	pls := slices.Collect(Placements(straight(100), 10, false))
	if len(pls) != 10 {
		t.Fatalf("got %d placements, want 10", len(pls))
	}
	for i, pl := range pls {
		want := Normal
		switch i {
		case 0:
			want = Start
		case 9:
			want = End
		}
		if pl.Kind != want {
			t.Errorf("placement %d: kind %s, want %s", i, pl.Kind, want)
		}
		if pl.Index != i {
			t.Errorf("placement %d: index %d", i, pl.Index)
		}
		origin := pt(pl.Frame[4], pl.Frame[5])
		if d := cmp.Diff(pt(float64(10*i), 0), origin); d != "" {
			t.Errorf("placement %d: wrong origin (-want +got):\n%s", i, d)
		}
	}
}

// TestSingleUnitIsStart checks that the only unit of a short single-segment
// subpath is classified as Start, even though it is also the last one.
func TestSingleUnitIsStart(t *testing.T) {
	pls := slices.Collect(Placements(straight(3), 10, false))
	if len(pls) != 1 {
		t.Fatalf("got %d placements, want 1", len(pls))
	}
	if pls[0].Kind != Start {
		t.Errorf("kind %s, want start", pls[0].Kind)
	}
}

func TestPlacementIndexAcrossSubpaths(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(30, 0)).
		MoveTo(pt(0, 10)).LineTo(pt(0, 10)).
		MoveTo(pt(0, 20)).LineTo(pt(30, 20)).LineTo(pt(30, 40))

	var kinds []Kind
	for i, pl := range enumerate(Placements(p.Iter(), 10, false)) {
		if pl.Index != i {
			t.Errorf("placement %d has index %d", i, pl.Index)
		}
		kinds = append(kinds, pl.Kind)
	}
	want := []Kind{
		Start, Normal, End,
		Start, Normal, Normal, Normal, End,
	}
	if d := cmp.Diff(want, kinds); d != "" {
		t.Errorf("unexpected kinds (-want +got):\n%s", d)
	}
}

func TestPlacementFrame(t *testing.T) {
	// a vertical segment, pointing down in device space
	p := (&path.Data{}).MoveTo(pt(5, 5)).LineTo(pt(5, 45)).Iter()
	pls := slices.Collect(Placements(p, 10, false))
	if len(pls) != 4 {
		t.Fatalf("got %d placements", len(pls))
	}

	// The local x-axis points along the segment.
	m := pls[2].Frame
	got := apply(m, pt(1, 0))
	want := pt(5, 26)
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("local (1,0) maps to %v, want %v", got, want)
	}
	if math.Abs(pls[2].Rotation-math.Pi/2) > 1e-12 {
		t.Errorf("rotation %g", pls[2].Rotation)
	}
}

func TestPlacementsInvalidSpacing(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN()} {
		for range Placements(straight(10), s, false) {
			t.Fatalf("spacing %g: unexpected placement", s)
		}
	}
}

func TestConcat(t *testing.T) {
	a := rotate(0.3)
	b := translate(4, -2)
	p := pt(1.5, 2)
	got := apply(concat(a, b), p)
	want := apply(b, apply(a, p))
	if got.Sub(want).Length() > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
