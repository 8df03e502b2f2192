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
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestFramePixels(t *testing.T) {
	f := NewFrame(4, 3)
	f.PutPixel(1, 2, 7)
	f.PutPixel(-1, 0, 9)
	f.PutPixel(4, 0, 9)
	f.PutPixel(0, 3, 9)

	if got := f.Pixel(1, 2); got != 7 {
		t.Errorf("Pixel(1,2) = %d, want 7", got)
	}
	if got := f.Pix[2*f.Stride+1]; got != 7 {
		t.Errorf("Pix = %d, want 7", got)
	}
	if got := f.Pixel(-1, 0); got != 0 {
		t.Errorf("Pixel outside = %d", got)
	}
	n := 0
	for _, c := range f.Pix {
		if c != 0 {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d pixels set, want 1", n)
	}
}

func TestFrameClearStride(t *testing.T) {
	// a frame which is a window into a larger buffer
	buf := make([]byte, 5*3)
	for i := range buf {
		buf[i] = 1
	}
	f := &Frame{Pix: buf, Width: 3, Height: 3, Stride: 5}
	f.Clear()
	for y := range 3 {
		for x := range 5 {
			want := byte(0)
			if x >= 3 {
				want = 1
			}
			if got := buf[y*5+x]; got != want {
				t.Errorf("buf[%d,%d] = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFrameImage(t *testing.T) {
	f := NewFrame(4, 3)
	img := f.Image(Ramp(color.Black, color.White))
	f.PutPixel(2, 1, 200)
	if got := img.ColorIndexAt(2, 1); got != 200 {
		t.Errorf("image index = %d, want 200", got)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("wrong bounds %v", b)
	}
}

func TestRamp(t *testing.T) {
	p := Ramp(colornames.Midnightblue, colornames.Gold)
	if len(p) != 256 {
		t.Fatalf("palette has %d entries", len(p))
	}
	same := func(a, b color.Color) bool {
		r0, g0, b0, a0 := a.RGBA()
		r1, g1, b1, a1 := b.RGBA()
		return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
	}
	if !same(p[0], colornames.Midnightblue) {
		t.Errorf("first entry %v", p[0])
	}
	if !same(p[255], colornames.Gold) {
		t.Errorf("last entry %v", p[255])
	}

	gray := Ramp(color.Black, color.White)
	for i, c := range gray {
		r, _, _, _ := c.RGBA()
		if want := uint32(i) * 0x101; r != want {
			t.Errorf("gray[%d] = %d, want %d", i, r, want)
		}
	}
}

func TestPainterSaturates(t *testing.T) {
	f := NewFrame(2, 2)
	fp := &framePainter{frame: f, full: 200, ink: 200, top: 1}
	fp.Cell(0, 0, 100)
	fp.Cell(0, 0, 100)
	fp.Span(0, 0, 2)
	if got := f.Pixel(0, 1); got != 255 {
		t.Errorf("saturated pixel = %d, want 255", got)
	}
	if got := f.Pixel(1, 1); got != 200 {
		t.Errorf("span pixel = %d, want 200", got)
	}
	if got := f.Pixel(0, 0); got != 0 {
		t.Errorf("row above painter = %d, want 0", got)
	}
}
