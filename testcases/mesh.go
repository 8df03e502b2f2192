package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Mesh cases consist of shapes which tile a region without overlap.  All
// shapes use full ink, so that the interior of the tiled region must be
// uniformly covered.
var meshCases = []TestCase{
	{
		Name:   "square_diagonal",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: polygon(pt(10, 10), pt(54, 10), pt(54, 54))},
			{Ink: 255, Path: polygon(pt(10, 10), pt(54, 54), pt(10, 54))},
		},
	},
	{
		Name:   "fan",
		Width:  64,
		Height: 64,
		Shapes: fan(32.3, 31.6, 27, 11),
	},
	{
		Name:   "grid",
		Width:  64,
		Height: 64,
		Shapes: jitteredGrid(6, 4, 60, 0.2),
	},
	{
		Name:   "disk_quarters",
		Width:  64,
		Height: 64,
		Shapes: diskQuarters(32, 32, 25),
	},
}

// fan returns n triangles around (cx, cy) which together form a regular
// n-gon.
func fan(cx, cy, r float64, n int) []Shape {
	c := pt(cx, cy)
	corner := func(i int) vec.Vec2 {
		angle := 2 * math.Pi * float64(i%n) / float64(n)
		return pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	shapes := make([]Shape, n)
	for i := range shapes {
		shapes[i] = Shape{Ink: 255, Path: polygon(c, corner(i), corner(i+1))}
	}
	return shapes
}

// jitteredGrid returns an n×n grid of quadrilaterals covering the square
// from (x0, x0) to (x1, x1).  The inner grid points are displaced by up
// to jitter cells, so that no edge is axis-aligned.
func jitteredGrid(n int, x0, x1, jitter float64) []Shape {
	cell := (x1 - x0) / float64(n)
	grid := func(i, j int) vec.Vec2 {
		p := pt(x0+float64(i)*cell, x0+float64(j)*cell)
		if i > 0 && i < n && j > 0 && j < n {
			p.X += jitter * cell * math.Sin(float64(3*i+7*j))
			p.Y += jitter * cell * math.Cos(float64(5*i+2*j))
		}
		return p
	}
	var shapes []Shape
	for j := range n {
		for i := range n {
			shapes = append(shapes, Shape{
				Ink:  255,
				Path: polygon(grid(i, j), grid(i+1, j), grid(i+1, j+1), grid(i, j+1)),
			})
		}
	}
	return shapes
}

// diskQuarters returns a disk divided into four quarter slices.
func diskQuarters(cx, cy, r float64) []Shape {
	c := pt(cx, cy)
	axis := []vec.Vec2{pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy), pt(cx, cy-r)}
	shapes := make([]Shape, 4)
	for i := range shapes {
		shapes[i] = Shape{
			Ink:   255,
			Start: c,
			Steps: []Step{
				Line{To: axis[i]},
				Arc{Center: c, To: axis[(i+1)%4]},
				Line{To: c},
			},
		}
	}
	return shapes
}
