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
	"errors"
	"testing"
)

// polygonScene returns a scene with a single straight-edged polygon,
// filled with full ink.
func polygonScene(pts ...Point) *Scene {
	s := &Scene{Colors: []uint8{255}}
	addPolygon(s, 0, pts...)
	return s
}

// addPolygon appends a straight-edged polygon to s.  Points and segments
// are shared with earlier polygons where possible.
func addPolygon(s *Scene, color int, pts ...Point) {
	point := func(p Point) int {
		for i, q := range s.Points {
			if q == p {
				return i
			}
		}
		s.Points = append(s.Points, p)
		return len(s.Points) - 1
	}
	segment := func(p, q Point) int {
		if q.less(p) {
			p, q = q, p
		}
		seg := Segment{A: point(p), B: point(q)}
		for i, other := range s.Segments {
			if other == seg {
				return i
			}
		}
		s.Segments = append(s.Segments, seg)
		return len(s.Segments) - 1
	}

	start := len(s.Edges)
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s.Edges = append(s.Edges, EdgeSrc{
			Type:   lineType(q.X-p.X, q.Y-p.Y),
			Seg:    segment(p, q),
			Circle: NoCircle,
		})
	}
	s.Polys = append(s.Polys, Poly{Start: start, End: len(s.Edges), Color: color})
}

// quarterDiskScene returns the quarter disk with center (0, 0) and radius
// r in the top-right quadrant.
func quarterDiskScene(r int64) *Scene {
	return &Scene{
		Points:   []Point{{0, 0}, {r, 0}, {0, r}},
		Segments: []Segment{{A: 0, B: 1}, {A: 2, B: 1}, {A: 0, B: 2}},
		Circles:  []Circle{{Center: 0, Radius: r}},
		Edges: []EdgeSrc{
			{Type: LineRight, Seg: 0, Circle: NoCircle},
			{Type: ArcAcwTR, Seg: 1, Circle: 0},
			{Type: LineDown, Seg: 2, Circle: NoCircle},
		},
		Polys:  []Poly{{Start: 0, End: 3, Color: 0}},
		Colors: []uint8{255},
	}
}

func TestValidateGood(t *testing.T) {
	scenes := map[string]*Scene{
		"triangle":     polygonScene(Point{0, 0}, Point{12000, 0}, Point{0, 12000}),
		"quarter disk": quarterDiskScene(5000),
	}
	for name, s := range scenes {
		if err := s.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestValidateBad(t *testing.T) {
	cases := map[string]func(s *Scene){
		"segment out of range": func(s *Scene) {
			s.Segments[0].B = 17
		},
		"segment order": func(s *Scene) {
			s.Segments[0].A, s.Segments[0].B = s.Segments[0].B, s.Segments[0].A
		},
		"bad radius": func(s *Scene) {
			s.Circles[0].Radius = 0
		},
		"huge radius": func(s *Scene) {
			s.Circles[0].Radius = maxCoord + 1
		},
		"point out of range": func(s *Scene) {
			s.Points[0].X = 1 << 40
		},
		"negative point out of range": func(s *Scene) {
			s.Points[2].Y = -maxCoord - 1
		},
		"wrong line type": func(s *Scene) {
			s.Edges[0].Type = LineUp
		},
		"line with circle": func(s *Scene) {
			s.Edges[0].Circle = 0
		},
		"wrong arc sense": func(s *Scene) {
			s.Edges[1].Type = ArcCwTR
		},
		"wrong arc quadrant": func(s *Scene) {
			s.Edges[1].Type = ArcAcwBL
		},
		"arc endpoint off circle": func(s *Scene) {
			s.Points[1].X -= 100
		},
		"unknown edge type": func(s *Scene) {
			s.Edges[0].Type = numEdgeTypes
		},
		"short poly": func(s *Scene) {
			s.Polys[0].End = 1
		},
		"bad color": func(s *Scene) {
			s.Polys[0].Color = 3
		},
		"open chain": func(s *Scene) {
			s.Polys[0].End = 2
		},
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			s := quarterDiskScene(5000)
			modify(s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("got %v, want an ErrInvalidScene", err)
			}
		})
	}
}
