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

// Splitting model:
//
// A polygon is held as the closed ring of its vertices.  Splitting it at
// an axis-aligned line walks all edges p1 → p2, including the edge from
// the last vertex back to the first, and appends vertices to two output
// rings:
//
//   - p2 is appended to the side it lies on, or to both sides if it lies
//     on the line,
//   - if the edge crosses the line, the intersection point is appended to
//     both sides before p2.
//
// This is the single-plane step of Sutherland-Hodgman clipping.  For
// non-convex polygons the output may contain edges running back and
// forth along the cut line; these enclose no area and do no harm.
//
// One side is appended to the write ring w.  The other side is appended
// behind the input in the read/write ring rw, and the input is consumed
// afterwards.  Both rings must have been prepared with Rewind(2*n), where
// n is the number of input vertices: every edge emits at most two
// vertices per side.

// splitFunc processes the edge p1 → p2 for a split at the line "at".
type splitFunc func(at int64, p1, p2 Point, w, rw *Ring[Point])

// hvSplit splits the polygon held in rw using fn.  Results with fewer than
// three vertices enclose no area and are normalised to empty rings.
func hvSplit(fn splitFunc, at int64, w, rw *Ring[Point]) {
	start, end := rw.Start(), rw.End()
	if end-start < 3 {
		rw.Clear()
		return
	}

	p1 := rw.At(end - 1)
	for i := start; i < end; i++ {
		p2 := rw.At(i)
		fn(at, p1, p2, w, rw)
		p1 = p2
	}
	rw.ConsumeAt(end)

	if w.Len() < 3 {
		w.Clear()
	}
	if rw.Len() < 3 {
		rw.Clear()
	}
}

// hSplit splits the polygon in rw at the horizontal line y = at.
// The part above the line (y >= at) is appended to w, the part below
// (y <= at) remains in rw.
func hSplit(at int64, w, rw *Ring[Point]) {
	hvSplit(hSplitEdge, at, w, rw)
}

func hSplitEdge(at int64, p1, p2 Point, w, rw *Ring[Point]) {
	s1 := sign64(p1.Y - at)
	s2 := sign64(p2.Y - at)
	if s1*s2 < 0 {
		q := Point{X: hIntersect(at, p1, p2), Y: at}
		w.Push(q)
		rw.Push(q)
	}
	if s2 >= 0 {
		w.Push(p2)
	}
	if s2 <= 0 {
		rw.Push(p2)
	}
}

// hIntersect returns the x coordinate where the segment p1p2 crosses the
// line y = at.  The endpoints are put into a fixed order first, so that
// both polygons sharing an edge compute the same point.
func hIntersect(at int64, p1, p2 Point) int64 {
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	return p1.X + roundDiv((at-p1.Y)*(p2.X-p1.X), p2.Y-p1.Y)
}

// vSplit splits the polygon in rw at the vertical line x = at.
// The part to the left of the line (x <= at) is appended to w, the part
// to the right (x >= at) remains in rw.
func vSplit(at int64, w, rw *Ring[Point]) {
	hvSplit(vSplitEdge, at, w, rw)
}

func vSplitEdge(at int64, p1, p2 Point, w, rw *Ring[Point]) {
	s1 := sign64(p1.X - at)
	s2 := sign64(p2.X - at)
	if s1*s2 < 0 {
		q := Point{X: at, Y: vIntersect(at, p1, p2)}
		w.Push(q)
		rw.Push(q)
	}
	if s2 <= 0 {
		w.Push(p2)
	}
	if s2 >= 0 {
		rw.Push(p2)
	}
}

// vIntersect returns the y coordinate where the segment p1p2 crosses the
// line x = at.
func vIntersect(at int64, p1, p2 Point) int64 {
	if p2.X < p1.X {
		p1, p2 = p2, p1
	}
	return p1.Y + roundDiv((at-p1.X)*(p2.Y-p1.Y), p2.X-p1.X)
}

// roundDiv returns a/b rounded to the nearest integer, with halves
// rounded up.  Truncating division would move all intersection points in
// the same direction and the error would accumulate over the many cuts
// applied to a polygon.  Rounding halves up, rather than away from zero,
// makes p + roundDiv(a, b) depend only on the exact value p + a/b, so
// that the order of intersection points along a cut line is preserved.
func roundDiv(a, b int64) int64 {
	if b < 0 {
		a, b = -a, -b
	}
	q := floorDiv(a, b)
	if 2*(a-q*b) >= b {
		q++
	}
	return q
}

// shiftToMinX1 rotates the ring so that it starts at the vertex with the
// smallest x coordinate (ties are broken by y).  The ring must have been
// prepared with Rewind(Len()).
func shiftToMinX1(r *Ring[Point]) {
	shiftTo(r, func(p, q Point) bool {
		return p.X < q.X || p.X == q.X && p.Y < q.Y
	})
}

// shiftToMinY1 rotates the ring so that it starts at the vertex with the
// smallest y coordinate (ties are broken by x).  The ring must have been
// prepared with Rewind(Len()).
func shiftToMinY1(r *Ring[Point]) {
	shiftTo(r, func(p, q Point) bool {
		return p.Y < q.Y || p.Y == q.Y && p.X < q.X
	})
}

func shiftTo(r *Ring[Point], less func(p, q Point) bool) {
	start, end := r.Start(), r.End()
	if end-start < 2 {
		return
	}
	best := start
	for i := start + 1; i < end; i++ {
		if less(r.At(i), r.At(best)) {
			best = i
		}
	}
	for i := start; i < best; i++ {
		r.Push(r.At(i))
	}
	r.ConsumeAt(best)
}
