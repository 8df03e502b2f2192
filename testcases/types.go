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

// Package testcases contains a catalogue of scenes used to test the
// rasteriser.  Coordinates are given with the y axis pointing up.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultUnit is the number of subpixel units per pixel used when a test
// case does not specify one.
const DefaultUnit = 1000

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Unit   int64         // subpixel units per pixel (zero means DefaultUnit)
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
	Shapes []Shape       // filled regions, painted in order
}

// Shape is a filled region bounded by a single closed outline.
//
// The outline is given either as a path, which may use lines and Bézier
// curves, or as a start point followed by steps, which may also contain
// circular arcs.
type Shape struct {
	Ink   uint8 // gray level at full coverage
	Path  *path.Data
	Start vec.Vec2
	Steps []Step
}

// Step is one piece of a shape outline.
type Step interface {
	isStep()
}

// Line is a straight edge to To.
type Line struct {
	To vec.Vec2
}

func (Line) isStep() {}

// Arc is a circular arc around Center, starting at the current point and
// ending on the ray from Center through To.
type Arc struct {
	Center    vec.Vec2
	To        vec.Vec2
	Clockwise bool
}

func (Arc) isStep() {}

// Curve is a cubic Bézier curve.
type Curve struct {
	C1, C2, To vec.Vec2
}

func (Curve) isStep() {}

// Outline returns the outline of the shape as a path.  Arcs are
// approximated by cubic Bézier curves.
func (s Shape) Outline() *path.Data {
	if s.Path != nil {
		return s.Path
	}
	p := (&path.Data{}).MoveTo(s.Start)
	cur := s.Start
	for _, step := range s.Steps {
		switch step := step.(type) {
		case Line:
			p.LineTo(step.To)
			cur = step.To
		case Curve:
			p.CubeTo(step.C1, step.C2, step.To)
			cur = step.To
		case Arc:
			cur = arcToCubic(p, cur, step)
		}
	}
	return p.Close()
}

// arcToCubic appends an arc to p, using one cubic Bézier curve per
// quarter circle or less.  The end point of the arc is returned.
func arcToCubic(p *path.Data, cur vec.Vec2, a Arc) vec.Vec2 {
	v0 := cur.Sub(a.Center)
	r := v0.Length()
	dir := a.To.Sub(a.Center)
	if r == 0 || dir.Length() == 0 {
		p.LineTo(a.To)
		return a.To
	}

	theta0 := math.Atan2(v0.Y, v0.X)
	theta1 := math.Atan2(dir.Y, dir.X)
	sign := 1.0
	if a.Clockwise {
		sign = -1
	}
	sweep := math.Mod(sign*(theta1-theta0), 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}

	n := max(int(math.Ceil(sweep/(math.Pi/2))), 1)
	delta := sign * sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)
	at := func(theta float64) vec.Vec2 {
		return a.Center.Add(vec.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
	}
	tangent := func(theta float64) vec.Vec2 {
		return vec.Vec2{X: -r * math.Sin(theta), Y: r * math.Cos(theta)}
	}
	theta := theta0
	for range n {
		next := theta + delta
		p0, p3 := at(theta), at(next)
		p.CubeTo(p0.Add(tangent(theta).Mul(k)), p3.Sub(tangent(next).Mul(k)), p3)
		theta = next
	}
	return at(theta)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed polygonal path.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p.Close()
}

// rectangle builds a rectangular path, anticlockwise.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// disk returns the steps of a full circle, starting at the rightmost
// point.
func disk(cx, cy, r float64) (vec.Vec2, []Step) {
	c := pt(cx, cy)
	return pt(cx+r, cy), []Step{
		Arc{Center: c, To: pt(cx-r, cy)},
		Arc{Center: c, To: pt(cx+r, cy)},
	}
}
