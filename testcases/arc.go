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

var arcCases = []TestCase{
	{
		Name:   "disk",
		Width:  64,
		Height: 64,
		Shapes: []Shape{diskShape(255, 32, 32, 25)},
	},
	{
		Name:   "disk_offset",
		Width:  64,
		Height: 64,
		Shapes: []Shape{diskShape(255, 31.3, 32.7, 20.45)},
	},
	{
		Name:   "disk_small",
		Width:  16,
		Height: 16,
		Shapes: []Shape{diskShape(255, 8, 8, 3.5)},
	},
	{
		Name:   "disk_large",
		Width:  256,
		Height: 256,
		Shapes: []Shape{diskShape(255, 128, 128, 120)},
	},
	{
		Name:   "half_disk",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{
			Ink:   255,
			Start: pt(8, 20),
			Steps: []Step{
				Line{To: pt(56, 20)},
				Arc{Center: pt(32, 20), To: pt(8, 20)},
			},
		}},
	},
	{
		Name:   "pie_slice",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{
			Ink:   255,
			Start: pt(32, 32),
			Steps: []Step{
				Line{To: pt(58, 32)},
				Arc{Center: pt(32, 32), To: pt(32, 6)},
				Line{To: pt(32, 32)},
			},
		}},
	},
	{
		Name:   "pie_slice_clockwise",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{
			Ink:   255,
			Start: pt(32, 32),
			Steps: []Step{
				Line{To: pt(32, 58)},
				Arc{Center: pt(32, 32), To: pt(58, 58), Clockwise: true},
				Line{To: pt(32, 32)},
			},
		}},
	},
	{
		Name:   "rounded_rectangle",
		Width:  64,
		Height: 64,
		Shapes: []Shape{roundedRectangle(255, 8, 14, 56, 50, 9)},
	},
	{
		Name:   "lens",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{
			Ink:   255,
			Start: pt(20, 32),
			Steps: []Step{
				Arc{Center: pt(32, 52), To: pt(44, 32)},
				Arc{Center: pt(32, 12), To: pt(20, 32)},
			},
		}},
	},
}

// diskShape returns a full circle.
func diskShape(ink uint8, cx, cy, r float64) Shape {
	start, steps := disk(cx, cy, r)
	return Shape{Ink: ink, Start: start, Steps: steps}
}

// roundedRectangle returns a rectangle with circular corners of radius r.
func roundedRectangle(ink uint8, x1, y1, x2, y2, r float64) Shape {
	return Shape{
		Ink:   ink,
		Start: pt(x1+r, y1),
		Steps: []Step{
			Line{To: pt(x2-r, y1)},
			Arc{Center: pt(x2-r, y1+r), To: pt(x2, y1+r)},
			Line{To: pt(x2, y2-r)},
			Arc{Center: pt(x2-r, y2-r), To: pt(x2-r, y2)},
			Line{To: pt(x1+r, y2)},
			Arc{Center: pt(x1+r, y2-r), To: pt(x1, y2-r)},
			Line{To: pt(x1, y1+r)},
			Arc{Center: pt(x1+r, y1+r), To: pt(x1+r, y1)},
		},
	}
}
