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

import "testing"

func TestDoubleArea(t *testing.T) {
	cases := []struct {
		name string
		pts  []Point
		want int64
	}{
		{"empty", nil, 0},
		{"two points", []Point{{0, 0}, {5, 5}}, 0},
		{"unit square", []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 2},
		{"clockwise square", []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, -2},
		{"triangle", []Point{{0, 0}, {12000, 0}, {0, 12000}}, 12000 * 12000},
		{"collinear", []Point{{0, 0}, {1, 1}, {2, 2}}, 0},
	}
	for _, c := range cases {
		r := ringOf(c.pts...)
		if got := doubleArea(r, 0, 0); got != c.want {
			t.Errorf("%s: doubleArea = %d, want %d", c.name, got, c.want)
		}
		if got := doubleArea(r, -77, 1234); got != c.want {
			t.Errorf("%s: doubleArea relative to origin = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestLevel(t *testing.T) {
	const full = 2 * 1000 * 1000
	cases := []struct {
		area int64
		ink  uint8
		want uint8
	}{
		{0, 255, 0},
		{-5, 255, 0},
		{full, 255, 255},
		{full + 1, 255, 255},
		{full / 2, 255, 128},
		{full / 4, 255, 64},
		{full / 2, 100, 50},
		{full, 100, 100},
		{1, 255, 0},
		{full - 1, 255, 255},
	}
	for _, c := range cases {
		if got := Level(c.area, full, c.ink); got != c.want {
			t.Errorf("Level(%d, full, %d) = %d, want %d", c.area, c.ink, got, c.want)
		}
	}
}

func TestLevelComplement(t *testing.T) {
	// two polygons splitting a pixel between them add up to full ink
	const full = 2 * 16 * 16
	for a := int64(0); a <= full; a++ {
		sum := int(Level(a, full, 255)) + int(Level(full-a, full, 255))
		if sum < 255 {
			t.Fatalf("Level(%d) + Level(%d) = %d", a, full-a, sum)
		}
	}
}
