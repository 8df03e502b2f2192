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
	"errors"
	"runtime"
	"sync"

	"seehuhn.de/go/geom/rect"
)

// Pool renders frames using several goroutines.  The rows of the clip
// rectangle are divided into horizontal bands, one per worker.  Every
// worker owns a private Rasteriser, and thus private rings, and writes
// only to the frame rows of its band.
//
// A Pool is not safe for concurrent use, but its workers run in
// parallel.
type Pool struct {
	// Clip, Unit and ArcStep have the same meaning as for Rasteriser.
	Clip    rect.Rect
	Unit    int64
	ArcStep int64

	workers []*Rasteriser
}

// NewPool returns a pool with the given number of workers.  If workers is
// zero or negative, GOMAXPROCS is used.
func NewPool(clip rect.Rect, unit int64, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		Clip:    clip,
		Unit:    unit,
		ArcStep: unit,
		workers: make([]*Rasteriser, workers),
	}
	for i := range p.workers {
		p.workers[i] = NewRasteriser(clip, unit)
	}
	return p
}

// Render validates the scene, clears the frame and fills all polygons.
// Errors from all workers are joined.  The result is identical to that
// of Rasteriser.Render.
func (p *Pool) Render(s *Scene, f *Frame) error {
	if len(p.workers) == 0 {
		return errors.New("polyraster: pool without workers")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	proto := Rasteriser{Clip: p.Clip, Unit: p.Unit, ArcStep: p.ArcStep}
	if err := proto.check(); err != nil {
		return err
	}
	x0, y0, x1, y1 := proto.clipBounds()
	height := int(max(y1-y0, 0))

	f.Clear()

	n := min(len(p.workers), max(height, 1))
	errs := make([]error, n)
	var wg sync.WaitGroup
	for k := range n {
		rowStart := k * height / n
		rowEnd := (k + 1) * height / n
		if rowStart == rowEnd {
			continue
		}

		w := p.workers[k]
		w.Unit = p.Unit
		w.ArcStep = p.ArcStep
		w.Reset(rect.Rect{
			LLx: float64(x0),
			LLy: float64(y1 - int64(rowEnd)),
			URx: float64(x1),
			URy: float64(y1 - int64(rowStart)),
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[k] = w.paintScene(s, f, rowStart)
		}()
	}
	wg.Wait()

	Logger().Debug("frame rendered in parallel", "polys", len(s.Polys), "bands", n)
	return errors.Join(errs...)
}
