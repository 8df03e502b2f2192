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
	"image"
	"image/color"
)

// Frame is an 8-bit palette-index frame buffer in row-major order, with
// row 0 at the top.
type Frame struct {
	Pix           []byte
	Width, Height int
	Stride        int
}

// NewFrame allocates a cleared frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]byte, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// Clear sets all pixels to palette index 0.
func (f *Frame) Clear() {
	for y := range f.Height {
		clear(f.Pix[y*f.Stride : y*f.Stride+f.Width])
	}
}

// PutPixel sets the pixel at (x, y) to palette index c.
// Coordinates outside the frame are ignored.
func (f *Frame) PutPixel(x, y int, c uint8) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pix[y*f.Stride+x] = c
}

// Pixel returns the palette index at (x, y), or 0 outside the frame.
func (f *Frame) Pixel(x, y int) uint8 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Stride+x]
}

// Image returns a paletted image which shares the frame's pixels.
// The palette should have 256 entries.
func (f *Frame) Image(p color.Palette) *image.Paletted {
	return &image.Paletted{
		Pix:     f.Pix,
		Stride:  f.Stride,
		Rect:    image.Rect(0, 0, f.Width, f.Height),
		Palette: p,
	}
}

// Ramp returns a 256-entry palette which interpolates linearly from
// "from" at index 0 to "to" at index 255.
func Ramp(from, to color.Color) color.Palette {
	r0, g0, b0, a0 := from.RGBA()
	r1, g1, b1, a1 := to.RGBA()
	lerp := func(c0, c1 uint32, i int) uint16 {
		return uint16((int(c0)*(255-i) + int(c1)*i + 127) / 255)
	}
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.RGBA64{
			R: lerp(r0, r1, i),
			G: lerp(g0, g1, i),
			B: lerp(b0, b1, i),
			A: lerp(a0, a1, i),
		}
	}
	return p
}

// framePainter composites the coverage of one polygon into a frame.
// Coverage is added with saturation, so that the partial pixels of two
// polygons sharing an edge sum to full coverage.
type framePainter struct {
	frame *Frame
	full  int64
	ink   uint8
	top   int // frame row of painter row 0
}

func (fp *framePainter) Cell(x, y int, area int64) {
	fp.plotPolyPixel(x, y, Level(area, fp.full, fp.ink))
}

func (fp *framePainter) Span(x, y, n int) {
	for i := range n {
		fp.plotPolyPixel(x+i, y, fp.ink)
	}
}

func (fp *framePainter) plotPolyPixel(x, y int, c uint8) {
	if c == 0 {
		return
	}
	y += fp.top
	old := fp.frame.Pixel(x, y)
	fp.frame.PutPixel(x, y, uint8(min(int(old)+int(c), 255)))
}
