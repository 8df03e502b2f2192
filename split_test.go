// seehuhn.de/go/polyraster - analytic coverage rasterization
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

package polyraster

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

// ringOf returns a ring holding pts, with some consumed space in front,
// so that physical and logical indices differ.
func ringOf(pts ...Point) *Ring[Point] {
	r := NewRing[Point](len(pts) + 3)
	for range 3 {
		r.Push(Point{})
	}
	r.ConsumeAt(r.End())
	for _, p := range pts {
		r.Push(p)
	}
	return r
}

// randomStar returns a simple, anticlockwise polygon with n vertices,
// star-shaped around (cx, cy).
func randomStar(rng *rand.Rand, cx, cy int64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		angle := 2 * math.Pi * (float64(i) + 0.8*rng.Float64()) / float64(n)
		r := 1000 + 9000*rng.Float64()
		pts[i] = Point{
			X: cx + int64(math.Round(r*math.Cos(angle))),
			Y: cy + int64(math.Round(r*math.Sin(angle))),
		}
	}
	return pts
}

func TestRoundDiv(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 4},
		{-7, 2, -3},
		{5, 3, 2},
		{4, 3, 1},
		{-5, 3, -2},
		{5, -3, -2},
		{-5, -3, 2},
		{1, 2, 1},
		{-1, 2, 0},
		{1, 3, 0},
		{0, 7, 0},
	}
	for _, c := range cases {
		if got := roundDiv(c.a, c.b); got != c.want {
			t.Errorf("roundDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSplitConservesArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		pts := randomStar(rng, 0, 0, 3+rng.IntN(12))
		at := rng.Int64N(16000) - 8000
		orig := doubleArea(ringOf(pts...), 0, 0)

		// each rounded intersection point changes the total by at most
		// half the extent of its edge across the line
		var tol int64
		for i, p := range pts {
			q := pts[(i+1)%len(pts)]
			tol += max(abs64(q.X-p.X), abs64(q.Y-p.Y))
		}
		tol = tol/2 + 1

		for _, split := range []struct {
			name string
			fn   func(at int64, w, rw *Ring[Point])
		}{
			{"h", hSplit},
			{"v", vSplit},
		} {
			rw := ringOf(pts...)
			w := NewRing[Point](0)
			w.Rewind(2 * len(pts))
			rw.Rewind(2 * len(pts))
			split.fn(at, w, rw)

			a1 := doubleArea(w, 0, 0)
			a2 := doubleArea(rw, 0, 0)
			if a1 < 0 || a2 < 0 {
				t.Fatalf("%s split of %v at %d: negative area %d, %d", split.name, pts, at, a1, a2)
			}
			if d := abs64(a1 + a2 - orig); d > tol {
				t.Errorf("%s split of %v at %d: area %d + %d != %d", split.name, pts, at, a1, a2, orig)
			}
		}
	}
}

func TestSplitSides(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	w := NewRing[Point](0)
	rw := ringOf(square...)
	w.Rewind(8)
	rw.Rewind(8)
	hSplit(4, w, rw)
	for _, p := range w.Values() {
		if p.Y < 4 {
			t.Errorf("hSplit: %v in the upper part", p)
		}
	}
	for _, p := range rw.Values() {
		if p.Y > 4 {
			t.Errorf("hSplit: %v in the lower part", p)
		}
	}
	if a := doubleArea(w, 0, 0); a != 2*60 {
		t.Errorf("hSplit: upper area %d, want 120", a)
	}
	if a := doubleArea(rw, 0, 0); a != 2*40 {
		t.Errorf("hSplit: lower area %d, want 80", a)
	}

	w.Clear()
	rw = ringOf(square...)
	w.Rewind(8)
	rw.Rewind(8)
	vSplit(3, w, rw)
	for _, p := range w.Values() {
		if p.X > 3 {
			t.Errorf("vSplit: %v in the left part", p)
		}
	}
	for _, p := range rw.Values() {
		if p.X < 3 {
			t.Errorf("vSplit: %v in the right part", p)
		}
	}
	if a := doubleArea(w, 0, 0); a != 2*30 {
		t.Errorf("vSplit: left area %d, want 60", a)
	}
}

func TestSplitOutside(t *testing.T) {
	tri := []Point{{1000, 1000}, {5000, 2000}, {2000, 6000}}

	// line above the polygon: nothing above, everything below
	w := NewRing[Point](0)
	rw := ringOf(tri...)
	w.Rewind(6)
	rw.Rewind(6)
	hSplit(7000, w, rw)
	if w.Len() != 0 {
		t.Errorf("upper part %v, want empty", w.Values())
	}
	if !slices.Equal(rw.Values(), tri) {
		t.Errorf("lower part %v, want %v", rw.Values(), tri)
	}

	// line left of the polygon: nothing left, everything right
	w.Clear()
	rw = ringOf(tri...)
	w.Rewind(6)
	rw.Rewind(6)
	vSplit(0, w, rw)
	if w.Len() != 0 {
		t.Errorf("left part %v, want empty", w.Values())
	}
	if !slices.Equal(rw.Values(), tri) {
		t.Errorf("right part %v, want %v", rw.Values(), tri)
	}

	// line below the polygon: everything above, nothing below
	w.Clear()
	rw = ringOf(tri...)
	w.Rewind(6)
	rw.Rewind(6)
	hSplit(1000, w, rw)
	if !slices.Equal(w.Values(), tri) {
		t.Errorf("upper part %v, want %v", w.Values(), tri)
	}
	if rw.Len() != 0 {
		t.Errorf("lower part %v, want empty", rw.Values())
	}
}

func TestSplitDegenerate(t *testing.T) {
	w := NewRing[Point](0)
	rw := ringOf(Point{0, 0}, Point{10, 10})
	w.Rewind(4)
	rw.Rewind(4)
	hSplit(5, w, rw)
	if w.Len() != 0 || rw.Len() != 0 {
		t.Errorf("two-vertex input: got %v and %v, want empty", w.Values(), rw.Values())
	}
}

func TestSplitSharedEdge(t *testing.T) {
	// Two triangles share the edge from a to b, traversed in opposite
	// directions.  Splitting must produce the same intersection point.
	a, b := Point{3, 7}, Point{1004, 2999}
	left := []Point{a, b, {0, 3000}}
	right := []Point{a, {1500, 0}, b}

	cut := func(pts []Point) []Point {
		w := NewRing[Point](0)
		rw := ringOf(pts...)
		w.Rewind(6)
		rw.Rewind(6)
		hSplit(1234, w, rw)
		var res []Point
		for _, p := range w.Values() {
			if p.Y == 1234 {
				res = append(res, p)
			}
		}
		return res
	}
	onEdge := func(ps []Point) Point {
		for _, p := range ps {
			if p.X > 100 && p.X < 1004 {
				return p
			}
		}
		return Point{}
	}
	p1 := onEdge(cut(left))
	p2 := onEdge(cut(right))
	if p1 == (Point{}) {
		t.Fatal("no intersection found")
	}
	if p1 != p2 {
		t.Errorf("intersection points differ: %v vs %v", p1, p2)
	}
}

func TestShiftKeepsArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		pts := randomStar(rng, 500, -200, 3+rng.IntN(10))
		want := doubleArea(ringOf(pts...), 0, 0)

		for _, shift := range []func(*Ring[Point]){shiftToMinX1, shiftToMinY1} {
			r := ringOf(pts...)
			r.Rewind(r.Len())
			shift(r)
			if r.Len() != len(pts) {
				t.Fatalf("shift changed the length from %d to %d", len(pts), r.Len())
			}
			if got := doubleArea(r, 0, 0); got != want {
				t.Errorf("area changed from %d to %d", want, got)
			}
			if got := doubleArea(r, 123, 456); got != want {
				t.Errorf("area relative to origin changed from %d to %d", want, got)
			}
		}

		r := ringOf(pts...)
		r.Rewind(r.Len())
		shiftToMinX1(r)
		for _, p := range r.Values() {
			if p.X < r.First().X {
				t.Errorf("first vertex %v is not leftmost, %v is", r.First(), p)
			}
		}
		r.Rewind(r.Len())
		shiftToMinY1(r)
		for _, p := range r.Values() {
			if p.Y < r.First().Y {
				t.Errorf("first vertex %v is not lowest, %v is", r.First(), p)
			}
		}
	}
}
