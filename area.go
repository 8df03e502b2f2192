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

// doubleArea returns twice the signed area of the polygon in r, using the
// shoelace formula.  Coordinates are taken relative to (ox, oy), which
// does not change the result but keeps the products small when the
// origin is chosen near the polygon.  Anticlockwise polygons have
// positive area.
func doubleArea(r *Ring[Point], ox, oy int64) int64 {
	start, end := r.Start(), r.End()
	if end-start < 3 {
		return 0
	}
	p1 := r.At(end - 1)
	x1, y1 := p1.X-ox, p1.Y-oy
	var sum int64
	for i := start; i < end; i++ {
		p2 := r.At(i)
		x2, y2 := p2.X-ox, p2.Y-oy
		sum += x1*y2 - y1*x2
		x1, y1 = x2, y2
	}
	return sum
}

// Level maps a pixel coverage to a palette index.  The coverage is given
// as twice the covered area, out of full (twice the pixel area).  The
// result interpolates linearly between 0 for an empty pixel and ink for a
// fully covered one, rounding to the nearest index.
func Level(area, full int64, ink uint8) uint8 {
	if area <= 0 {
		return 0
	}
	if area >= full {
		return ink
	}
	return uint8((area*int64(ink) + full/2) / full)
}
