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

import "math/bits"

// resolvePoly appends the boundary of polygon i to ring.  Straight edges
// contribute their first endpoint.  Arcs contribute their first endpoint
// followed by the points where they cross the grid lines x = k*step and
// y = k*step, so that the arc is replaced by chords no longer than one
// grid cell.
func resolvePoly(s *Scene, i int, step int64, ring *Ring[Point]) {
	poly := s.Polys[i]
	for j := poly.Start; j < poly.End; j++ {
		e := s.Edges[j]
		first, last := s.edgeEnds(j)
		p1, p2 := s.Points[first], s.Points[last]

		ring.Rewind(1)
		ring.Push(p1)
		if !e.Type.IsArc() {
			continue
		}

		c := s.Circles[e.Circle]
		resolveArc(s.Points[c.Center], c.Radius, e.Type.Quadrant(), p1, p2, step, ring)
	}
}

// arcSamples estimates the number of points resolvePoly produces for
// polygon i.
func arcSamples(s *Scene, i int, step int64) int {
	poly := s.Polys[i]
	n := poly.End - poly.Start
	for j := poly.Start; j < poly.End; j++ {
		if !s.Edges[j].Type.IsArc() {
			continue
		}
		seg := s.Segments[s.Edges[j].Seg]
		a, b := s.Points[seg.A], s.Points[seg.B]
		n += int((abs64(b.X-a.X)+abs64(b.Y-a.Y))/step) + 2
	}
	return n
}

// resolveArc appends the interior grid crossings of the arc from p1 to p2
// (exclusive of both endpoints) to ring, in the order of travel.
func resolveArc(center Point, r int64, q Quadrant, p1, p2 Point, step int64, ring *Ring[Point]) {
	sx, sy := sign64(p2.X-p1.X), sign64(p2.Y-p1.Y)

	// crossings with vertical grid lines, x strictly between p1 and p2
	var x, xEnd int64
	if sx > 0 {
		x, xEnd = floorDiv(p1.X, step)*step+step, p2.X
	} else {
		x, xEnd = ceilDiv(p1.X, step)*step-step, p2.X
	}
	// crossings with horizontal grid lines, y strictly between p1 and p2
	var y, yEnd int64
	if sy > 0 {
		y, yEnd = floorDiv(p1.Y, step)*step+step, p2.Y
	} else {
		y, yEnd = ceilDiv(p1.Y, step)*step-step, p2.Y
	}
	xOK := func() bool { return sx != 0 && (x-xEnd)*sx < 0 }
	yOK := func() bool { return sy != 0 && (y-yEnd)*sy < 0 }

	last := p1
	emit := func(p Point) {
		if p == last {
			return
		}
		ring.Rewind(1)
		ring.Push(p)
		last = p
	}

	haveX, haveY := xOK(), yOK()
	var px, py Point
	if haveX {
		px = Point{x, center.Y + q.sy()*circleOffset(r, abs64(x-center.X))}
	}
	if haveY {
		py = Point{center.X + q.sx()*circleOffset(r, abs64(y-center.Y)), y}
	}
	for haveX || haveY {
		// x is monotonic along an arc inside one quadrant
		useX := haveX && (!haveY || (px.X-py.X)*sx < 0 || px.X == py.X && (px.Y-py.Y)*sy <= 0)
		if useX {
			emit(px)
			x += sx * step
			if haveX = xOK(); haveX {
				px = Point{x, center.Y + q.sy()*circleOffset(r, abs64(x-center.X))}
			}
		} else {
			emit(py)
			y += sy * step
			if haveY = yOK(); haveY {
				py = Point{center.X + q.sx()*circleOffset(r, abs64(y-center.Y)), y}
			}
		}
	}
	if last == p2 {
		// the final sample rounded onto the endpoint; the next edge adds it
		ring.dropLast()
	}
}

// circleOffset returns sqrt(r² − d²), rounded to the nearest integer: the
// distance from the center axis of a circle with radius r to the circle,
// at offset d along the axis.  The points d == 0 and d == r are singular
// and must be avoided by the caller.
func circleOffset(r, d int64) int64 {
	if d <= 0 || d >= r {
		invariantf("circle", nil, "offset %d outside (0, %d)", d, r)
	}
	return isqrtRound(uint64(r*r - d*d))
}

// isqrtRound returns the integer closest to the square root of n.
func isqrtRound(n uint64) int64 {
	if n == 0 {
		return 0
	}
	// Newton iteration from above, converging to floor(sqrt(n))
	s := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		t := (s + n/s) / 2
		if t >= s {
			break
		}
		s = t
	}
	// (s + 1/2)² = s² + s + 1/4
	if n-s*s > s {
		s++
	}
	return int64(s)
}

func sign64(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv returns ceil(a/b) for b > 0.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
