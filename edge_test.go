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
	"testing"
)

func TestEdgeTypeReversed(t *testing.T) {
	// Reversed must agree with the canonical segment order for every
	// direction of travel.
	dirs := []struct{ dx, dy int64 }{
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	for _, d := range dirs {
		typ := lineType(d.dx, d.dy)
		from := Point{0, 0}
		to := Point{d.dx, d.dy}
		want := to.less(from)
		if typ.Reversed() != want {
			t.Errorf("%v: Reversed() = %t, want %t", typ, typ.Reversed(), want)
		}
	}
}

func TestEdgeTypeArcs(t *testing.T) {
	for q := TopRight; q <= BottomLeft; q++ {
		for _, cw := range []bool{true, false} {
			typ := arcType(q, cw)
			if !typ.IsArc() {
				t.Errorf("%v: IsArc() = false", typ)
			}
			if typ.Clockwise() != cw {
				t.Errorf("%v: Clockwise() = %t, want %t", typ, typ.Clockwise(), cw)
			}
			if typ.Quadrant() != q {
				t.Errorf("%v: Quadrant() = %v, want %v", typ, typ.Quadrant(), q)
			}

			// travelling in the quadrant, x increases iff the arc
			// turns clockwise in the upper half or anticlockwise in the
			// lower half
			xIncreases := cw == (q.sy() > 0)
			if typ.Reversed() == xIncreases {
				t.Errorf("%v: Reversed() = %t", typ, typ.Reversed())
			}
		}
	}
}

func TestEdgeTypeOpposite(t *testing.T) {
	for typ := range numEdgeTypes {
		opp := typ.Opposite()
		if opp.Opposite() != typ {
			t.Errorf("%v: Opposite is not an involution", typ)
		}
		if opp.IsArc() != typ.IsArc() {
			t.Errorf("%v: Opposite changes the edge kind", typ)
		}
		if typ.IsArc() {
			if opp.Quadrant() != typ.Quadrant() || opp.Clockwise() == typ.Clockwise() {
				t.Errorf("%v: Opposite() = %v", typ, opp)
			}
		}
		if opp.Reversed() == typ.Reversed() {
			t.Errorf("%v: Opposite() = %v has the same orientation", typ, opp)
		}
	}
}

func TestEdgeTypeString(t *testing.T) {
	if s := ArcAcwBL.String(); s != "ArcAcwBL" {
		t.Errorf("ArcAcwBL.String() = %q", s)
	}
	if s := EdgeType(99).String(); s != "EdgeType(99)" {
		t.Errorf("EdgeType(99).String() = %q", s)
	}
}

func TestQuadrantOf(t *testing.T) {
	cases := []struct {
		ox, oy float64
		want   Quadrant
	}{
		{1, 1, TopRight},
		{-1, 1, TopLeft},
		{-1, -1, BottomLeft},
		{1, -1, BottomRight},
		{1, 0, TopRight},
		{0, 1, TopLeft},
		{-1, 0, BottomLeft},
		{0, -1, BottomRight},
	}
	for _, c := range cases {
		if got := quadrantOf(c.ox, c.oy); got != c.want {
			t.Errorf("quadrantOf(%g, %g) = %v, want %v", c.ox, c.oy, got, c.want)
		}
	}
}

func TestEdgeBetween(t *testing.T) {
	cases := []struct {
		p1, p2 Point
		want   EdgeKind
	}{
		{Point{0, 5}, Point{10, 5}, Horizontal},
		{Point{3, 3}, Point{3, 3}, Horizontal},
		{Point{4, 0}, Point{4, -7}, Vertical},
		{Point{0, 0}, Point{1, 2}, Inclined},
	}
	for _, c := range cases {
		e := edgeBetween(c.p1, c.p2)
		if e.Kind != c.want {
			t.Errorf("edgeBetween(%v, %v).Kind = %d, want %d", c.p1, c.p2, e.Kind, c.want)
		}
		if e.X1 != c.p1.X || e.Y1 != c.p1.Y || e.X2 != c.p2.X || e.Y2 != c.p2.Y {
			t.Errorf("edgeBetween(%v, %v) = %+v", c.p1, c.p2, e)
		}
	}
}
