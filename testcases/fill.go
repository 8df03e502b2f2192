package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "right_triangle",
		Width:  12,
		Height: 12,
		Shapes: []Shape{
			{Ink: 255, Path: polygon(pt(0, 0), pt(12, 0), pt(0, 12))},
		},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: polygon(pt(10, 14), pt(54, 14), pt(32, 54))},
		},
	},
	{
		Name:   "triangle_clockwise",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: polygon(pt(10, 14), pt(32, 54), pt(54, 14))},
		},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: rectangle(10, 10, 44, 44)},
		},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: star(32, 32, 28, 11, 5)},
		},
	},
	{
		Name:   "arrow",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: polygon(
				pt(6, 26), pt(36, 26), pt(36, 12), pt(58, 32),
				pt(36, 52), pt(36, 38), pt(6, 38),
			)},
		},
	},
	{
		Name:   "thin_sliver",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: polygon(pt(4, 30), pt(60, 31), pt(4, 30.5))},
		},
	},
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 64,
		Shapes: []Shape{
			{Ink: 255, Path: polygon(pt(4, 4), pt(28, 4), pt(16, 28))},
			{Ink: 128, Path: polygon(pt(36, 36), pt(60, 36), pt(48, 60))},
		},
	},
	{
		Name:   "gray_levels",
		Width:  64,
		Height: 16,
		Shapes: []Shape{
			{Ink: 32, Path: rectangle(2.5, 2.5, 14.5, 13.5)},
			{Ink: 96, Path: rectangle(18.25, 2.5, 30.25, 13.5)},
			{Ink: 160, Path: rectangle(34, 2.75, 46, 13.25)},
			{Ink: 224, Path: rectangle(50.5, 2, 62.5, 14)},
		},
	},
}

// star builds a star-shaped polygon with n points.  The outline does not
// intersect itself.
func star(cx, cy, rOuter, rInner float64, n int) *path.Data {
	pts := make([]vec.Vec2, 2*n)
	for i := range pts {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		angle := float64(i)*math.Pi/float64(n) + math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}
