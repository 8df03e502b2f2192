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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Painter receives the coverage of a polygon.  Coordinates are frame
// pixels, with row 0 at the top of the clip rectangle.
type Painter interface {
	// Cell reports a partially covered pixel.  The area is given as twice
	// the covered area in square subpixel units, so that a fully covered
	// pixel has area 2*Unit*Unit.
	Cell(x, y int, area int64)

	// Span reports n fully covered pixels, starting at (x, y) and
	// extending to the right.
	Span(x, y, n int)
}

// Rasteriser computes the exact area each polygon of a scene covers in
// every pixel.  Create one instance and reuse it for many frames.  The
// internal rings grow to the size of the largest polygon seen and are
// then reused, so that rendering does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip is the region of the scene which is rendered, in pixel units
	// with y pointing up.  Coordinates must be integers.  Pixel row 0 of
	// the frame is the top row of the clip rectangle.
	Clip rect.Rect

	// Unit is the number of subpixel units per pixel.  Must be positive.
	Unit int64

	// ArcStep is the spacing of the grid lines at which arcs are
	// evaluated, in subpixel units.  Zero means Unit.
	ArcStep int64

	// noSolidRuns disables the solid-run shortcut, so that every pixel is
	// split individually.  Used to test the shortcut.
	noSolidRuns bool

	up    *Ring[Point] // rows of the polygon not yet processed
	right *Ring[Point] // the current row, right of the current column
	left  *Ring[Point] // the current pixel
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// unit subpixel units per pixel.
func NewRasteriser(clip rect.Rect, unit int64) *Rasteriser {
	return &Rasteriser{
		Clip:    clip,
		Unit:    unit,
		ArcStep: unit,

		up:    NewRing[Point](defaultRingCapacity),
		right: NewRing[Point](defaultRingCapacity),
		left:  NewRing[Point](defaultRingCapacity),
	}
}

// Reset sets a new clip rectangle and empties the internal rings, keeping
// their capacity.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.up.Clear()
	r.right.Clear()
	r.left.Clear()
}

// Render validates the scene, clears the frame and fills all polygons.
// The frame should have the size of the clip rectangle.
//
// If a geometric invariant is violated during rasterisation, the call is
// aborted and an *InvariantError is returned.  The frame is left
// partially drawn in this case.
func (r *Rasteriser) Render(s *Scene, f *Frame) (err error) {
	if err := r.check(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	f.Clear()
	err = r.paintScene(s, f, 0)
	Logger().Debug("frame rendered",
		"polys", len(s.Polys),
		"points", len(s.Points),
		"ringCap", r.up.Cap())
	return err
}

// paintScene composites all polygons into f.  Row 0 of the clip
// rectangle is drawn into frame row top.
func (r *Rasteriser) paintScene(s *Scene, f *Frame, top int) (err error) {
	defer recoverInvariant(&err)
	full := 2 * r.Unit * r.Unit
	for i, poly := range s.Polys {
		fp := &framePainter{frame: f, full: full, ink: s.Colors[poly.Color], top: top}
		r.fillPoly(s, i, fp)
	}
	return nil
}

// FillPoly reports the coverage of polygon i of the scene to p.  The scene
// must be valid, see Scene.Validate.
func (r *Rasteriser) FillPoly(s *Scene, i int, p Painter) (err error) {
	if err := r.check(); err != nil {
		return err
	}
	defer recoverInvariant(&err)
	r.fillPoly(s, i, p)
	return nil
}

func (r *Rasteriser) check() error {
	if r.Unit <= 0 {
		return fmt.Errorf("polyraster: invalid unit %d", r.Unit)
	}
	if r.ArcStep < 0 {
		return fmt.Errorf("polyraster: invalid arc step %d", r.ArcStep)
	}
	return nil
}

// clipBounds returns the clip rectangle in whole pixels.
func (r *Rasteriser) clipBounds() (x0, y0, x1, y1 int64) {
	x0 = int64(math.Floor(r.Clip.LLx))
	y0 = int64(math.Floor(r.Clip.LLy))
	x1 = int64(math.Floor(r.Clip.URx))
	y1 = int64(math.Floor(r.Clip.URy))
	return x0, y0, x1, y1
}

// fillPoly implements the scanline algorithm.  The polygon is peeled
// off row by row, from the top, using horizontal splits.  Each row is
// then peeled off pixel by pixel, from the left, using vertical splits.
func (r *Rasteriser) fillPoly(s *Scene, i int, p Painter) {
	unit := r.Unit
	step := r.ArcStep
	if step == 0 {
		step = unit
	}
	x0, y0, x1, y1 := r.clipBounds()
	if x0 >= x1 || y0 >= y1 {
		return
	}

	up := r.up
	up.Clear()
	r.right.Clear()
	r.left.Clear()

	up.Rewind(arcSamples(s, i, step))
	resolvePoly(s, i, step, up)
	n := up.Len()
	if n < 3 {
		up.Clear()
		return
	}

	up.Rewind(n)
	shiftToMinY1(up)
	yMin := up.First().Y
	yMax := yMin
	for _, q := range up.Values() {
		yMax = max(yMax, q.Y)
	}

	bandTop := ceilDiv(yMax, unit) // exclusive
	bandBottom := max(floorDiv(yMin, unit), y0)
	// Rows above the clip rectangle are cut off one at a time.  This way
	// every row is split exactly as it would be with a taller clip
	// rectangle, and pixel values do not depend on the clip.
	for ; bandTop > y1 && up.Len() > 0; bandTop-- {
		r.split(hSplit, (bandTop-1)*unit, r.right, up)
		r.right.Clear()
	}
	bandTop = min(bandTop, y1)

	for band := bandTop - 1; band >= bandBottom && up.Len() > 0; band-- {
		yLo := band * unit
		r.split(hSplit, yLo, r.right, up)
		if r.right.Len() == 0 {
			continue
		}
		r.fillRow(yLo, yLo+unit, int(y1-1-band), x0, x1, p)
	}
	up.Clear()
}

// fillRow paints the row fragment held in r.right, which lies between
// yLo and yHi.  Row is the frame row.
func (r *Rasteriser) fillRow(yLo, yHi int64, row int, x0, x1 int64, p Painter) {
	unit := r.Unit
	right, left := r.right, r.left

	right.Rewind(right.Len())
	shiftToMinX1(right)
	xMin := right.First().X
	xMax := xMin
	for _, q := range right.Values() {
		xMax = max(xMax, q.X)
	}

	col := floorDiv(xMin, unit)
	colEnd := ceilDiv(xMax, unit) // exclusive
	if colEnd <= x0 || col >= x1 {
		right.Clear()
		return
	}
	if col < x0 {
		// discard the part left of the clip rectangle
		r.split(vSplit, x0*unit, left, right)
		left.Clear()
		col = x0
	}

	for col < colEnd-1 && col < x1 && right.Len() > 0 {
		xb := (col + 1) * unit
		r.split(vSplit, xb, left, right)
		r.plot(left, col, yLo, int(col-x0), row, p)
		left.Clear()
		col++

		if r.noSolidRuns || right.Len() == 0 {
			continue
		}
		run := solidFollow(right, xb, yLo, yHi, unit)
		if run.n == 0 {
			continue
		}
		if n := min(int64(run.n), x1-col); n > 0 {
			p.Span(int(col-x0), row, int(n))
		}
		advanceSolid(right, run, unit)
		col += int64(run.n)
	}
	if col < x1 && right.Len() > 0 {
		r.plot(right, col, yLo, int(col-x0), row, p)
	}
	right.Clear()
}

// split prepares the rings and splits rw at the given line.  Any previous
// contents of w are discarded.
func (r *Rasteriser) split(fn func(at int64, w, rw *Ring[Point]), at int64, w, rw *Ring[Point]) {
	n := rw.Len()
	w.Clear()
	w.Rewind(2 * n)
	rw.Rewind(2 * n)
	fn(at, w, rw)
}

// plot reports the coverage of a single pixel fragment.  The pixel has
// its lower left corner at (col*Unit, yLo).
func (r *Rasteriser) plot(ring *Ring[Point], col, yLo int64, x, y int, p Painter) {
	a := doubleArea(ring, col*r.Unit, yLo)
	if a < 0 {
		invariantf("area", ring.Values(),
			"negative area %d in pixel column %d at y=%d", a, col, yLo)
	}
	if a == 0 {
		return
	}
	p.Cell(x, y, a)
}

// defaultRingCapacity is the initial size of the rings.  Rings grow as
// needed.
const defaultRingCapacity = 64
