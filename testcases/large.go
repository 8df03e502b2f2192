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

// largeCases contain long runs of fully covered pixels.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Width:  512,
		Height: 512,
		Shapes: []Shape{{Ink: 255, Path: rectangle(50, 50, 462, 462)}},
	},
	{
		Name:   "large_diamond",
		Width:  512,
		Height: 512,
		Shapes: []Shape{{Ink: 255, Path: diamond(256, 256, 180)}},
	},
	{
		Name:   "large_disk",
		Width:  512,
		Height: 512,
		Shapes: []Shape{diskShape(255, 256.5, 255.25, 230)},
	},
	{
		Name:   "large_grid",
		Width:  512,
		Height: 512,
		Shapes: rectangleGrid(8, 8, 512, 512, 4),
	},
	{
		Name:   "large_clipped",
		Width:  512,
		Height: 512,
		Shapes: []Shape{{Ink: 255, Path: rectangle(-100, 100, 612, 400)}},
	},
	{
		Name:   "large_clipped_disk",
		Width:  512,
		Height: 512,
		Shapes: []Shape{diskShape(255, 0, 512, 400)},
	},
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}

// rectangleGrid builds a grid of separate rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) []Shape {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var shapes []Shape
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			ink := uint8(64 + 191*(row+col)/(rows+cols-2))
			shapes = append(shapes, Shape{Ink: ink, Path: rectangle(x1, y1, x2, y2)})
		}
	}
	return shapes
}
