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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: quadraticCurve(10, 12, 32, 60, 54, 12)}},
	},
	{
		Name:   "quadratic_shallow",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: quadraticCurve(10, 30, 32, 36, 54, 30)}},
	},
	{
		Name:   "cubic",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: cubicCurve(10, 12, 16, 60, 48, 60, 54, 12)}},
	},
	{
		Name:   "cubic_scurve",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: sCurve(8, 10, 56, 54)}},
	},
	{
		Name:   "cubic_nearly_straight",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: cubicCurve(10, 20, 25, 21, 40, 21, 54, 20)}},
	},
	{
		Name:   "bezier_circle",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: circle(32, 32, 25)}},
	},
	{
		Name:   "ellipse",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: ellipse(32, 32, 28, 14)}},
	},
	{
		Name:   "mixed_lines_arcs_curves",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{
			Ink:   255,
			Start: pt(8, 8),
			Steps: []Step{
				Line{To: pt(40, 8)},
				Arc{Center: pt(40, 24), To: pt(56, 24)},
				Curve{C1: pt(56, 40), C2: pt(40, 58), To: pt(24, 54)},
				Line{To: pt(8, 40)},
			},
		}},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurve builds a band bounded by two parallel S-shaped cubic curves.
func sCurve(x1, y1, x2, y2 float64) *path.Data {
	const w = 10
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x1+w, y1)).
		CubeTo(pt(x2+w, y1), pt(x1+w, y2), pt(x2, y2)).
		LineTo(pt(x2-w, y2)).
		CubeTo(pt(x1, y2), pt(x2, y1), pt(x1, y1)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}
