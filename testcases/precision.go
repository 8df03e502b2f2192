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

var precisionCases = []TestCase{
	// subpixel positioning
	{
		Name:   "subpixel_offset_00",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: offsetRectangle(20, 20, 24, 24, 0.0)}},
	},
	{
		Name:   "subpixel_offset_25",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: offsetRectangle(20, 20, 24, 24, 0.25)}},
	},
	{
		Name:   "subpixel_offset_50",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: offsetRectangle(20, 20, 24, 24, 0.5)}},
	},
	{
		Name:   "subpixel_offset_75",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: offsetRectangle(20, 20, 24, 24, 0.75)}},
	},
	{
		Name:   "thin_bar_integer",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: rectangle(5, 9.5, 59, 10.5)}},
	},
	{
		Name:   "thin_bar_half",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: rectangle(5, 10, 59, 11)}},
	},

	// subpixel resolution
	{
		Name:   "unit_4",
		Width:  64,
		Height: 64,
		Unit:   4,
		Shapes: []Shape{{Ink: 255, Path: polygon(pt(3, 5), pt(61, 17), pt(22, 59))}},
	},
	{
		Name:   "unit_16",
		Width:  64,
		Height: 64,
		Unit:   16,
		Shapes: []Shape{{Ink: 255, Path: polygon(pt(3, 5), pt(61, 17), pt(22, 59))}},
	},
	{
		Name:   "unit_65536",
		Width:  64,
		Height: 64,
		Unit:   1 << 16,
		Shapes: []Shape{diskShape(255, 32, 32, 29)},
	},

	// large coordinates
	{
		Name:   "large_coord_centered",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: largeOffsetRectangle(1000, 1000, 20)}},
	},
	{
		Name:   "small_shape_large_offset",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: largeOffsetRectangle(10000, 10000, 2)}},
	},
	{
		Name:   "float64_precision",
		Width:  64,
		Height: 64,
		Shapes: []Shape{{Ink: 255, Path: float64PrecisionShape()}},
	},
}

// offsetRectangle builds a rectangular path with a subpixel offset applied to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// largeOffsetRectangle builds a square centered at large coordinates,
// but translated back to fit the canvas. This tests precision at large offsets.
func largeOffsetRectangle(cx, cy, size float64) *path.Data {
	translateX := 32 - cx
	translateY := 32 - cy

	x1 := cx - size/2 + translateX
	y1 := cy - size/2 + translateY
	x2 := cx + size/2 + translateX
	y2 := cy + size/2 + translateY
	return rectangle(x1, y1, x2, y2)
}

// float64PrecisionShape builds a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() *path.Data {
	// these values differ only in the low bits of float64
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	x1 := base - 10 + delta1
	y1 := base - 10 + delta1
	x2 := base + 10 + delta2
	y2 := base + 10 + delta2
	return rectangle(x1, y1, x2, y2)
}
