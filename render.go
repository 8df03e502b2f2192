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

// Package polyraster implements an analytic-coverage rasteriser for
// polygons with straight and circular-arc edges.
//
// Instead of sampling pixels, the rasteriser computes the exact area
// each polygon covers in every pixel.  All geometry uses fixed-point
// integer coordinates in subpixel units.  Polygons are cut into pixel
// rows and then into single pixels by splitting them at axis-aligned
// lines, and the area of every fragment is found with the shoelace
// formula.  Runs of fully covered pixels are detected and painted
// without splitting.
//
// Scenes are usually constructed with a [Builder].  Adjacent polygons
// which share their boundary meet without cracks.
package polyraster

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/polyraster/testcases"
)

// RenderExample renders a test case into f.  The frame must have the size
// of the test case.  Shape i uses palette entry i, which reaches the
// shape's ink level at full coverage.
func RenderExample(tc testcases.TestCase, f *Frame) error {
	s, err := BuildScene(tc)
	if err != nil {
		return err
	}
	r := NewRasteriser(exampleClip(tc), exampleUnit(tc))
	return r.Render(s, f)
}

// BuildScene converts a test case into a scene.
func BuildScene(tc testcases.TestCase) (*Scene, error) {
	b := NewBuilder(exampleUnit(tc))
	if tc.CTM != (matrix.Matrix{}) {
		b.CTM = tc.CTM
	}

	for _, shape := range tc.Shapes {
		color := b.AddColor(shape.Ink)
		if shape.Path != nil {
			b.AddPath(shape.Path, color)
			continue
		}

		b.MoveTo(shape.Start)
		for _, step := range shape.Steps {
			switch step := step.(type) {
			case testcases.Line:
				b.LineTo(step.To)
			case testcases.Arc:
				b.ArcTo(step.Center, step.To, step.Clockwise)
			case testcases.Curve:
				b.CurveTo(step.C1, step.C2, step.To)
			}
		}
		b.Close(color)
	}
	return b.Scene()
}

func exampleClip(tc testcases.TestCase) rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
}

func exampleUnit(tc testcases.TestCase) int64 {
	if tc.Unit > 0 {
		return tc.Unit
	}
	return testcases.DefaultUnit
}
