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

// solidRun describes a run of fully covered pixels found by solidFollow.
type solidRun struct {
	n      int // number of whole pixels
	top    int // physical index of the vertex (xb, yHi)
	bottom int // physical index of the vertex (xb, yLo)
}

// solidFollow inspects the part of a pixel row which remains after a
// vertical split at x = xb.  The row spans yLo <= y <= yHi.
//
// If the ring has exactly one edge on the cut line, running downwards
// from (xb, yHi) to (xb, yLo) across the full row, which is preceded by a
// horizontal edge along the top of the row and followed by a horizontal
// edge along the bottom of the row, then the rectangle from xb to the
// leftmost of all other vertices is inside the polygon: no other part of
// the boundary can reach into it.  The number of whole pixels in this
// rectangle is returned.  Otherwise the result has n == 0.
func solidFollow(r *Ring[Point], xb, yLo, yHi, unit int64) solidRun {
	start, end := r.Start(), r.End()
	if end-start < 4 {
		return solidRun{}
	}

	top, bottom := -1, -1
	m := int64(0)
	haveM := false
	for i := start; i < end; i++ {
		p := r.At(i)
		switch {
		case p.X < xb:
			return solidRun{}
		case p.X == xb && p.Y == yHi && top < 0:
			top = i
		case p.X == xb && p.Y == yLo && bottom < 0:
			bottom = i
		case p.X == xb:
			// more than one edge on the cut line
			return solidRun{}
		default:
			if !haveM || p.X < m {
				m = p.X
				haveM = true
			}
		}
	}
	if top < 0 || bottom < 0 || !haveM || r.NextIndex(top) != bottom {
		return solidRun{}
	}

	before := edgeBetween(r.At(r.PrevIndex(top)), r.At(top))
	after := edgeBetween(r.At(bottom), r.At(r.NextIndex(bottom)))
	if before.Kind != Horizontal || before.Y1 != yHi ||
		after.Kind != Horizontal || after.Y1 != yLo {
		return solidRun{}
	}

	return solidRun{
		n:      int((m - xb) / unit),
		top:    top,
		bottom: bottom,
	}
}

// advanceSolid removes the pixels of run from the ring, by moving the
// vertical edge found by solidFollow to the right.
func advanceSolid(r *Ring[Point], run solidRun, unit int64) {
	dx := int64(run.n) * unit
	p := r.At(run.top)
	r.Set(run.top, Point{p.X + dx, p.Y})
	p = r.At(run.bottom)
	r.Set(run.bottom, Point{p.X + dx, p.Y})
}
