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
	"fmt"
)

// Point is a location in subpixel units.  The y axis points up.
type Point struct {
	X, Y int64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// less orders points by x, then by y.  Segments store their endpoints in
// this order.
func (p Point) less(q Point) bool {
	return p.X < q.X || p.X == q.X && p.Y < q.Y
}

// Segment connects two points, given as indices into Scene.Points.
// A must come before B in (x, y) order.
type Segment struct {
	A, B int
}

// Circle is given by the index of its center in Scene.Points and its
// radius in subpixel units.
type Circle struct {
	Center int
	Radius int64
}

// maxCoord limits coordinates in subpixel units, so that the products
// in the area and intersection computations cannot overflow.
const maxCoord = 1 << 30

// NoCircle is used as the circle index of line edges.
const NoCircle = -1

// EdgeSrc describes one edge of a polygon boundary.
type EdgeSrc struct {
	Type   EdgeType
	Seg    int // index into Scene.Segments
	Circle int // index into Scene.Circles, or NoCircle
}

// Poly is a closed polygon boundary, given by the edges
// Scene.Edges[Start:End], filled with the palette entry Scene.Colors[Color].
type Poly struct {
	Start, End int
	Color      int
}

// Scene holds the geometry of a frame as parallel arrays which refer to
// each other by index.  Adjacent polygons share points and segments, so
// that their common boundaries are split identically and their fills
// meet without cracks.
//
// Every polygon boundary must be simple and traversed anticlockwise.
type Scene struct {
	Points   []Point
	Segments []Segment
	Circles  []Circle
	Edges    []EdgeSrc
	Polys    []Poly

	// Colors gives, for each palette entry, the palette index written for
	// a fully covered pixel.  Partially covered pixels use a linear ramp
	// from 0.
	Colors []uint8
}

// Validate checks the references and the geometry of the scene.
// All returned errors wrap ErrInvalidScene.
func (s *Scene) Validate() error {
	np := len(s.Points)
	for i, p := range s.Points {
		if p.X < -maxCoord || p.X > maxCoord || p.Y < -maxCoord || p.Y > maxCoord {
			return invalid("point %d: %v out of range", i, p)
		}
	}
	for i, seg := range s.Segments {
		if seg.A < 0 || seg.A >= np || seg.B < 0 || seg.B >= np {
			return invalid("segment %d: point index out of range", i)
		}
		if !s.Points[seg.A].less(s.Points[seg.B]) {
			return invalid("segment %d: endpoints %v, %v not in canonical order",
				i, s.Points[seg.A], s.Points[seg.B])
		}
	}
	for i, c := range s.Circles {
		if c.Center < 0 || c.Center >= np {
			return invalid("circle %d: center index out of range", i)
		}
		if c.Radius <= 0 || c.Radius > maxCoord {
			return invalid("circle %d: radius %d out of range", i, c.Radius)
		}
	}
	for i := range s.Edges {
		if err := s.validateEdge(i); err != nil {
			return err
		}
	}
	for i, poly := range s.Polys {
		if poly.Start < 0 || poly.End > len(s.Edges) || poly.End-poly.Start < 2 {
			return invalid("poly %d: bad edge range [%d,%d)", i, poly.Start, poly.End)
		}
		if poly.Color < 0 || poly.Color >= len(s.Colors) {
			return invalid("poly %d: color index %d out of range", i, poly.Color)
		}
		for j := poly.Start; j < poly.End; j++ {
			next := j + 1
			if next == poly.End {
				next = poly.Start
			}
			_, end := s.edgeEnds(j)
			start, _ := s.edgeEnds(next)
			if end != start {
				return invalid("poly %d: edge %d ends at %v, edge %d starts at %v",
					i, j, s.Points[end], next, s.Points[start])
			}
		}
	}
	return nil
}

func (s *Scene) validateEdge(i int) error {
	e := s.Edges[i]
	if e.Type >= numEdgeTypes {
		return invalid("edge %d: unknown edge type %d", i, e.Type)
	}
	if e.Seg < 0 || e.Seg >= len(s.Segments) {
		return invalid("edge %d: segment index out of range", i)
	}
	seg := s.Segments[e.Seg]
	a, b := s.Points[seg.A], s.Points[seg.B]
	dx, dy := b.X-a.X, b.Y-a.Y
	if e.Type.Reversed() {
		dx, dy = -dx, -dy
	}

	if !e.Type.IsArc() {
		if e.Circle != NoCircle {
			return invalid("edge %d: line edge refers to circle %d", i, e.Circle)
		}
		if lineType(dx, dy) != e.Type {
			return invalid("edge %d: %v does not match direction (%d,%d)", i, e.Type, dx, dy)
		}
		return nil
	}

	if e.Circle < 0 || e.Circle >= len(s.Circles) {
		return invalid("edge %d: circle index out of range", i)
	}
	if a.X == b.X {
		return invalid("edge %d: arc endpoints %v, %v are vertically aligned", i, a, b)
	}
	c := s.Circles[e.Circle]
	center := s.Points[c.Center]
	q := e.Type.Quadrant()
	for _, p := range []Point{a, b} {
		if !q.contains(center, c.Radius, p) {
			return invalid("edge %d: arc endpoint %v outside the %v quadrant of circle %d",
				i, p, q, e.Circle)
		}
		ox, oy := p.X-center.X, p.Y-center.Y
		err := ox*ox + oy*oy - c.Radius*c.Radius
		if err < 0 {
			err = -err
		}
		// endpoints are rounded to integer coordinates
		if err > 2*c.Radius+2 {
			return invalid("edge %d: arc endpoint %v is not on circle %d", i, p, e.Circle)
		}
	}
	// the direction of travel must agree with the quadrant
	wantDx := q.sy()
	if !e.Type.Clockwise() {
		wantDx = -wantDx
	}
	if dx*wantDx < 0 {
		return invalid("edge %d: %v does not match direction (%d,%d)", i, e.Type, dx, dy)
	}
	return nil
}

// edgeEnds returns the indices of the first and last point of edge i,
// in the direction of travel.
func (s *Scene) edgeEnds(i int) (first, last int) {
	e := s.Edges[i]
	seg := s.Segments[e.Seg]
	if e.Type.Reversed() {
		return seg.B, seg.A
	}
	return seg.A, seg.B
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidScene}, args...)...)
}
