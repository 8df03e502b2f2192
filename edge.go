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

import "fmt"

// EdgeType describes how a polygon edge connects the endpoints of its
// segment: as a straight line in one of eight directions, or as a
// clockwise or anticlockwise circular arc inside one quadrant of its
// circle.
type EdgeType uint8

// Line edges are named after their direction of travel.  Arc edges are
// named after their sense of rotation and the quadrant of the circle
// they lie in.
const (
	LineTR EdgeType = iota // up and to the right
	LineTL                 // up and to the left
	LineBR                 // down and to the right
	LineBL                 // down and to the left
	LineRight
	LineLeft
	LineUp
	LineDown
	ArcCwTR
	ArcCwTL
	ArcCwBR
	ArcCwBL
	ArcAcwTR
	ArcAcwTL
	ArcAcwBR
	ArcAcwBL

	numEdgeTypes
)

var edgeTypeNames = [numEdgeTypes]string{
	"LineTR", "LineTL", "LineBR", "LineBL",
	"LineRight", "LineLeft", "LineUp", "LineDown",
	"ArcCwTR", "ArcCwTL", "ArcCwBR", "ArcCwBL",
	"ArcAcwTR", "ArcAcwTL", "ArcAcwBR", "ArcAcwBL",
}

func (t EdgeType) String() string {
	if t < numEdgeTypes {
		return edgeTypeNames[t]
	}
	return fmt.Sprintf("EdgeType(%d)", uint8(t))
}

// IsArc reports whether the edge is a circular arc.
func (t EdgeType) IsArc() bool {
	return t >= ArcCwTR && t < numEdgeTypes
}

// Clockwise reports whether an arc edge turns clockwise.
func (t EdgeType) Clockwise() bool {
	return t >= ArcCwTR && t <= ArcCwBL
}

// Quadrant returns the quadrant of the circle an arc edge lies in.
// For inclined line edges, the quadrant of the direction of travel is
// returned.  The result is meaningless for axis-aligned lines.
func (t EdgeType) Quadrant() Quadrant {
	switch {
	case t <= LineBL:
		return Quadrant(t)
	case t >= ArcCwTR && t <= ArcCwBL:
		return Quadrant(t - ArcCwTR)
	case t >= ArcAcwTR:
		return Quadrant(t - ArcAcwTR)
	}
	return 0
}

// Reversed reports whether the edge is traversed from the segment's B
// point to its A point.  Segments store their endpoints ordered by x, so
// this is the case whenever x decreases along the edge (or, for vertical
// lines, when y decreases).
func (t EdgeType) Reversed() bool {
	switch t {
	case LineTL, LineBL, LineLeft, LineDown:
		return true
	case ArcCwBR, ArcCwBL, ArcAcwTR, ArcAcwTL:
		return true
	}
	return false
}

// Opposite returns the type of the same edge traversed backwards.
func (t EdgeType) Opposite() EdgeType {
	switch {
	case t.IsArc():
		return arcType(t.Quadrant(), !t.Clockwise())
	case t == LineTR:
		return LineBL
	case t == LineBL:
		return LineTR
	case t == LineTL:
		return LineBR
	case t == LineBR:
		return LineTL
	case t == LineRight:
		return LineLeft
	case t == LineLeft:
		return LineRight
	case t == LineUp:
		return LineDown
	case t == LineDown:
		return LineUp
	}
	return t
}

// lineType returns the type of a line edge with direction (dx, dy).
// The direction must not be zero.
func lineType(dx, dy int64) EdgeType {
	switch {
	case dy == 0 && dx > 0:
		return LineRight
	case dy == 0:
		return LineLeft
	case dx == 0 && dy > 0:
		return LineUp
	case dx == 0:
		return LineDown
	case dx > 0 && dy > 0:
		return LineTR
	case dx < 0 && dy > 0:
		return LineTL
	case dx > 0:
		return LineBR
	default:
		return LineBL
	}
}

// arcType returns the type of an arc edge in quadrant q.
func arcType(q Quadrant, clockwise bool) EdgeType {
	if clockwise {
		return ArcCwTR + EdgeType(q)
	}
	return ArcAcwTR + EdgeType(q)
}

// Quadrant identifies one quarter of the plane around a point.
type Quadrant uint8

// These are the four quadrants.
const (
	TopRight Quadrant = iota
	TopLeft
	BottomRight
	BottomLeft
)

func (q Quadrant) String() string {
	switch q {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	}
	return fmt.Sprintf("Quadrant(%d)", uint8(q))
}

// sx is the sign of x offsets in the quadrant.
func (q Quadrant) sx() int64 {
	if q == TopLeft || q == BottomLeft {
		return -1
	}
	return 1
}

// sy is the sign of y offsets in the quadrant.
func (q Quadrant) sy() int64 {
	if q == BottomRight || q == BottomLeft {
		return -1
	}
	return 1
}

// contains reports whether p lies in the closed quadrant q of the square
// of half-width r around center.
func (q Quadrant) contains(center Point, r int64, p Point) bool {
	ox := (p.X - center.X) * q.sx()
	oy := (p.Y - center.Y) * q.sy()
	return ox >= 0 && oy >= 0 && ox <= r && oy <= r
}

// quadrantOf returns the quadrant containing the offset (ox, oy).
// Points on the axes belong to the quadrant entered when turning
// anticlockwise.
func quadrantOf(ox, oy float64) Quadrant {
	switch {
	case ox > 0 && oy >= 0:
		return TopRight
	case ox <= 0 && oy > 0:
		return TopLeft
	case ox < 0 && oy <= 0:
		return BottomLeft
	default:
		return BottomRight
	}
}

// EdgeKind distinguishes the shapes of resolved polygon edges.
type EdgeKind uint8

// After splitting, every pair of consecutive ring vertices forms exactly
// one of these.
const (
	Horizontal EdgeKind = iota
	Vertical
	Inclined
)

// Edge is a resolved straight edge between two consecutive ring vertices.
//
// For Horizontal edges, Y1 == Y2.  For Vertical edges, X1 == X2 and
// Y1 != Y2.  Inclined edges differ in both coordinates.
type Edge struct {
	Kind   EdgeKind
	X1, Y1 int64
	X2, Y2 int64
}

// edgeBetween classifies the edge from p1 to p2.  Coincident points form
// a horizontal edge of length zero.
func edgeBetween(p1, p2 Point) Edge {
	e := Edge{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
	switch {
	case p1.Y == p2.Y:
		e.Kind = Horizontal
	case p1.X == p2.X:
		e.Kind = Vertical
	default:
		e.Kind = Inclined
	}
	return e
}
