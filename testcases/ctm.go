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
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
		Shapes: []Shape{{Ink: 255, Path: rectangle(0, 0, 20, 20)}},
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
		Shapes: []Shape{{Ink: 255, Path: rectangle(0, 0, 80, 80)}},
	},
	{
		Name:   "scale_10x_disk",
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(10, 10).Translate(64, 64),
		Shapes: []Shape{diskShape(255, 0, 0, 5.5)},
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
		Shapes: []Shape{{Ink: 255, Path: rectangle(-10, -10, 10, 10)}},
	},
	{
		Name:   "rotate_5deg",
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
		Shapes: []Shape{{Ink: 255, Path: rectangle(-20, -10, 20, 10)}},
	},
	{
		Name:   "rotate_rounded_rectangle",
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
		Shapes: []Shape{roundedRectangle(255, -22, -14, 22, 14, 6)},
	},

	// reflection
	{
		Name:   "flip_y",
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
		Shapes: []Shape{
			{
				Ink:   255,
				Start: pt(32, 32),
				Steps: []Step{
					Line{To: pt(58, 32)},
					Arc{Center: pt(32, 32), To: pt(32, 6)},
					Line{To: pt(32, 32)},
				},
			},
		},
	},

	// non-uniform scaling turns circles into ellipses
	{
		Name:   "scale_2x_1y",
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
		Shapes: []Shape{{Ink: 255, Path: rectangle(-10, -10, 10, 10)}},
	},
	{
		Name:   "disk_to_ellipse",
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
		Shapes: []Shape{diskShape(255, 0, 0, 15)},
	},

	// shear
	{
		Name:   "shear_horizontal",
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
		Shapes: []Shape{{Ink: 255, Path: rectangle(-15, -15, 15, 15)}},
	},
	{
		Name:   "shear_and_rotate",
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
		Shapes: []Shape{{Ink: 255, Path: rectangle(-12, -12, 12, 12)}},
	},
}
