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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Builder constructs a Scene from floating point geometry.
//
// Coordinates are given in user space and mapped to pixel space by CTM.
// Pixel space has the y axis pointing up.  Points are then rounded to
// subpixel units.  Points, segments and circles which occur more than
// once are stored only once, so that polygons sharing a boundary also
// share its representation in the scene.
//
// Every closed subpath becomes a separate polygon.  After a close, the
// current point is the start of the closed subpath, and drawing
// continues there with a new subpath.  Clockwise boundaries are
// reversed, so that the orientation of the input does not matter.
// Polygons do not cancel each other: holes are not supported.
//
// Errors are sticky.  The first error is reported by Scene.
type Builder struct {
	// CTM maps user space to pixel space.  Arcs keep their exact form only
	// if CTM is a similarity transform; otherwise they are flattened.
	CTM matrix.Matrix

	// Unit is the number of subpixel units per pixel.
	Unit int64

	// Flatness is the curve flattening tolerance in pixels.
	Flatness float64

	scene    Scene
	points   map[Point]int
	segments map[Segment]int
	circles  map[Circle]int

	cur, start   vec.Vec2 // user space
	curP, startP Point    // subpixel units
	open         bool
	polyStart    int

	err error
}

// NewBuilder returns a Builder with the identity CTM.
func NewBuilder(unit int64) *Builder {
	b := &Builder{
		CTM:      matrix.Identity,
		Unit:     unit,
		Flatness: defaultFlatness,
	}
	b.Reset()
	return b
}

// Reset discards all geometry and the error state.  CTM, Unit and
// Flatness are kept.
func (b *Builder) Reset() {
	b.scene = Scene{}
	b.points = make(map[Point]int)
	b.segments = make(map[Segment]int)
	b.circles = make(map[Circle]int)
	b.open = false
	b.polyStart = 0
	b.err = nil
}

// AddColor adds a palette entry, which reaches ink at full coverage, and
// returns its index.
func (b *Builder) AddColor(ink uint8) int {
	b.scene.Colors = append(b.scene.Colors, ink)
	return len(b.scene.Colors) - 1
}

// MoveTo starts a new subpath.  The previous subpath must have been
// closed.
func (b *Builder) MoveTo(p vec.Vec2) {
	if b.open && len(b.scene.Edges) > b.polyStart {
		b.fail(errors.New("polyraster: MoveTo inside an unclosed subpath"))
		return
	}
	b.cur, b.start = p, p
	b.curP = b.device(p)
	b.startP = b.curP
	b.open = true
	b.polyStart = len(b.scene.Edges)
}

// LineTo adds a straight edge to the current subpath.
func (b *Builder) LineTo(p vec.Vec2) {
	if !b.needPoint() {
		return
	}
	b.lineDev(b.device(p))
	b.cur = p
}

// QuadTo adds a quadratic Bézier curve, flattened to straight edges.
func (b *Builder) QuadTo(c, p vec.Vec2) {
	if !b.needPoint() {
		return
	}
	b.flattenQuadratic(b.cur, c, p, b.emitLine)
	b.cur = p
}

// CurveTo adds a cubic Bézier curve, flattened to straight edges.
func (b *Builder) CurveTo(c1, c2, p vec.Vec2) {
	if !b.needPoint() {
		return
	}
	b.flattenCubic(b.cur, c1, c2, p, b.emitLine)
	b.cur = p
}

// ArcTo adds a circular arc around center, starting at the current point.
// The arc ends where the ray from center through to meets the circle.
// If the end point coincides with the current point, nothing is drawn.
func (b *Builder) ArcTo(center, to vec.Vec2, clockwise bool) {
	if !b.needPoint() {
		return
	}
	r := b.cur.Sub(center).Length()
	dir := to.Sub(center)
	if r == 0 || dir.Length() == 0 {
		b.LineTo(to)
		return
	}
	end := center.Add(dir.Mul(r / dir.Length()))

	if b.conformal() {
		b.arcDev(center, r, dir, clockwise)
	} else {
		b.flattenArc(center, r, dir, clockwise)
	}
	b.cur = end
}

// AddCircle adds a full circle as a separate polygon and returns the
// polygon index.
func (b *Builder) AddCircle(center vec.Vec2, r float64, color int) int {
	b.MoveTo(center.Add(vec.Vec2{X: r}))
	b.ArcTo(center, center.Sub(vec.Vec2{X: r}), false)
	b.ArcTo(center, center.Add(vec.Vec2{X: r}), false)
	return b.Close(color)
}

// Close closes the current subpath with a straight edge and turns it into
// a polygon with the given palette entry.  The index of the new polygon
// is returned, or -1 if the subpath encloses no area.
func (b *Builder) Close(color int) int {
	if !b.needPoint() {
		return -1
	}
	b.lineDev(b.startP)
	b.cur = b.start

	start := b.polyStart
	idx := -1
	switch area := b.orientation(start); {
	case area == 0:
		b.scene.Edges = b.scene.Edges[:start]
	default:
		if area < 0 {
			edges := b.scene.Edges[start:]
			slices.Reverse(edges)
			for i := range edges {
				edges[i].Type = edges[i].Type.Opposite()
			}
		}
		b.scene.Polys = append(b.scene.Polys, Poly{
			Start: start,
			End:   len(b.scene.Edges),
			Color: color,
		})
		idx = len(b.scene.Polys) - 1
	}

	// a new, still empty subpath starts at the closing point
	b.open = true
	b.polyStart = len(b.scene.Edges)
	return idx
}

// AddPath adds all subpaths of p, filled with the given palette entry.
// Open subpaths are closed implicitly.
func (b *Builder) AddPath(p *path.Data, color int) {
	closeOpen := func() {
		if b.open && len(b.scene.Edges) > b.polyStart {
			b.Close(color)
		}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeOpen()
			b.MoveTo(p.Coords[coordIdx])
			coordIdx++

		case path.CmdLineTo:
			b.LineTo(p.Coords[coordIdx])
			coordIdx++

		case path.CmdQuadTo:
			b.QuadTo(p.Coords[coordIdx], p.Coords[coordIdx+1])
			coordIdx += 2

		case path.CmdCubeTo:
			b.CurveTo(p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			coordIdx += 3

		case path.CmdClose:
			b.Close(color)
		}
	}
	closeOpen()
	b.open = false
}

// Scene returns the scene built so far.  Later calls to the builder do
// not modify the returned scene.
func (b *Builder) Scene() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.open && len(b.scene.Edges) > b.polyStart {
		return nil, errors.New("polyraster: unclosed subpath")
	}
	s := b.scene
	s.Points = slices.Clip(s.Points)
	s.Segments = slices.Clip(s.Segments)
	s.Circles = slices.Clip(s.Circles)
	s.Edges = slices.Clip(s.Edges[:b.edgesDone()])
	s.Polys = slices.Clip(s.Polys)
	s.Colors = slices.Clip(s.Colors)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// edgesDone returns the number of edges which belong to closed polygons.
func (b *Builder) edgesDone() int {
	if b.open {
		return b.polyStart
	}
	return len(b.scene.Edges)
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) needPoint() bool {
	if b.err != nil {
		return false
	}
	if !b.open {
		b.fail(errors.New("polyraster: no current point"))
		return false
	}
	return true
}

// device maps a point from user space to subpixel units.
func (b *Builder) device(v vec.Vec2) Point {
	x := b.CTM[0]*v.X + b.CTM[2]*v.Y + b.CTM[4]
	y := b.CTM[1]*v.X + b.CTM[3]*v.Y + b.CTM[5]
	return b.round(vec.Vec2{X: x, Y: y})
}

// round converts a pixel space position to subpixel units.
func (b *Builder) round(v vec.Vec2) Point {
	if b.Unit <= 0 {
		b.fail(fmt.Errorf("polyraster: invalid unit %d", b.Unit))
		return Point{}
	}
	u := float64(b.Unit)
	x, y := math.Round(v.X*u), math.Round(v.Y*u)
	if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x) > maxCoord || math.Abs(y) > maxCoord {
		b.fail(fmt.Errorf("polyraster: coordinate %v out of range", v))
		return Point{}
	}
	return Point{int64(x), int64(y)}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (b *Builder) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: b.CTM[0]*v.X + b.CTM[2]*v.Y,
		Y: b.CTM[1]*v.X + b.CTM[3]*v.Y,
	}
}

// conformal reports whether CTM maps circles to circles.
func (b *Builder) conformal() bool {
	a, bb, c, d := b.CTM[0], b.CTM[1], b.CTM[2], b.CTM[3]
	tol := 1e-9 * (math.Abs(a) + math.Abs(bb) + math.Abs(c) + math.Abs(d))
	rotation := math.Abs(a-d) <= tol && math.Abs(bb+c) <= tol
	reflection := math.Abs(a+d) <= tol && math.Abs(bb-c) <= tol
	return (rotation || reflection) && a*d-bb*c != 0
}

func (b *Builder) emitLine(_, to vec.Vec2) {
	b.lineDev(b.device(to))
}

// lineDev adds a straight edge from the current point to q.
func (b *Builder) lineDev(q Point) {
	p := b.curP
	if p == q {
		return
	}
	b.addEdge(lineType(q.X-p.X, q.Y-p.Y), p, q, NoCircle)
	b.curP = q
}

func (b *Builder) addEdge(t EdgeType, p, q Point, circle int) {
	if b.err != nil {
		return
	}
	b.scene.Edges = append(b.scene.Edges, EdgeSrc{
		Type:   t,
		Seg:    b.segment(p, q),
		Circle: circle,
	})
}

func (b *Builder) point(p Point) int {
	if i, ok := b.points[p]; ok {
		return i
	}
	i := len(b.scene.Points)
	b.scene.Points = append(b.scene.Points, p)
	b.points[p] = i
	return i
}

func (b *Builder) segment(p, q Point) int {
	if q.less(p) {
		p, q = q, p
	}
	key := Segment{A: b.point(p), B: b.point(q)}
	if i, ok := b.segments[key]; ok {
		return i
	}
	i := len(b.scene.Segments)
	b.scene.Segments = append(b.scene.Segments, key)
	b.segments[key] = i
	return i
}

func (b *Builder) circle(center Point, r int64) int {
	key := Circle{Center: b.point(center), Radius: r}
	if i, ok := b.circles[key]; ok {
		return i
	}
	i := len(b.scene.Circles)
	b.scene.Circles = append(b.scene.Circles, key)
	b.circles[key] = i
	return i
}

// orientation returns twice the signed area enclosed by the edges from
// start onwards, rounded to an integer.  Arcs contribute their chord and
// the circular segment between chord and arc.
func (b *Builder) orientation(start int) int64 {
	edges := b.scene.Edges[start:]
	if len(edges) < 2 {
		return 0
	}
	var sum int64
	var segments float64
	for _, e := range edges {
		seg := b.scene.Segments[e.Seg]
		p, q := b.scene.Points[seg.A], b.scene.Points[seg.B]
		if e.Type.Reversed() {
			p, q = q, p
		}
		sum += p.X*q.Y - p.Y*q.X
		if e.Type.IsArc() {
			a := segmentArea2(p, q, b.scene.Circles[e.Circle].Radius)
			if e.Type.Clockwise() {
				a = -a
			}
			segments += a
		}
	}
	return sum + int64(math.Round(segments))
}

// segmentArea2 returns twice the area between the chord pq and the
// shorter arc of radius r through p and q.
func segmentArea2(p, q Point, r int64) float64 {
	rf := float64(r)
	chord := math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
	theta := 2 * math.Asin(min(chord/(2*rf), 1))
	return rf * rf * (theta - math.Sin(theta))
}

// arcDev adds an arc in pixel space.  CTM must be conformal.
func (b *Builder) arcDev(center vec.Vec2, r float64, dir vec.Vec2, clockwise bool) {
	a, bb, c, d := b.CTM[0], b.CTM[1], b.CTM[2], b.CTM[3]
	det := a*d - bb*c
	if det < 0 {
		clockwise = !clockwise
	}
	scale := math.Sqrt(math.Abs(det))

	cp := b.device(center)
	rr := math.Round(r * scale * float64(b.Unit))
	if rr < 1 {
		b.lineDev(b.device(center.Add(dir.Mul(r / dir.Length()))))
		return
	}
	R := int64(rr)
	onCircle := func(theta float64) Point {
		return Point{
			X: cp.X + int64(math.Round(rr*math.Cos(theta))),
			Y: cp.Y + int64(math.Round(rr*math.Sin(theta))),
		}
	}

	v0 := b.transformLinear(b.cur.Sub(center))
	v1 := b.transformLinear(dir)
	theta0 := math.Atan2(v0.Y, v0.X)
	theta1 := math.Atan2(v1.Y, v1.X)
	sign := 1.0
	if clockwise {
		sign = -1
	}
	sweep := math.Mod(sign*(theta1-theta0), 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}

	// make sure the arc starts on the circle
	b.lineDev(onCircle(theta0))
	if b.curP == onCircle(theta0+sign*sweep) {
		return
	}

	circle := b.circle(cp, R)
	prevTheta := theta0
	piece := func(q Point, theta float64) {
		p := b.curP
		mid := (prevTheta + theta) / 2
		prevTheta = theta
		switch {
		case p == q:
			return
		case p.X == q.X:
			b.lineDev(q)
			return
		}
		quad := quadrantOf(math.Cos(mid), math.Sin(mid))
		b.addEdge(arcType(quad, clockwise), p, q, circle)
		b.curP = q
	}

	// split the arc where it crosses the axes through the center
	const quarter = math.Pi / 2
	axis := func(k int) Point {
		switch ((k % 4) + 4) % 4 {
		case 0:
			return Point{cp.X + R, cp.Y}
		case 1:
			return Point{cp.X, cp.Y + R}
		case 2:
			return Point{cp.X - R, cp.Y}
		default:
			return Point{cp.X, cp.Y - R}
		}
	}
	if clockwise {
		for k := int(math.Ceil(theta0/quarter)) - 1; float64(k)*quarter > theta0-sweep; k-- {
			piece(axis(k), float64(k)*quarter)
		}
	} else {
		for k := int(math.Floor(theta0/quarter)) + 1; float64(k)*quarter < theta0+sweep; k++ {
			piece(axis(k), float64(k)*quarter)
		}
	}
	thetaEnd := theta0 + sign*sweep
	piece(onCircle(thetaEnd), thetaEnd)
}

// flattenArc approximates an arc by straight edges, for use when CTM
// distorts circles.
func (b *Builder) flattenArc(center vec.Vec2, r float64, dir vec.Vec2, clockwise bool) {
	v0 := b.cur.Sub(center)
	theta0 := math.Atan2(v0.Y, v0.X)
	theta1 := math.Atan2(dir.Y, dir.X)
	sign := 1.0
	if clockwise {
		sign = -1
	}
	sweep := math.Mod(sign*(theta1-theta0), 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}

	// the Frobenius norm bounds the stretch of the linear part
	stretch := math.Sqrt(b.CTM[0]*b.CTM[0] + b.CTM[1]*b.CTM[1] +
		b.CTM[2]*b.CTM[2] + b.CTM[3]*b.CTM[3])
	rDev := r * stretch
	n := 1
	if rDev > b.Flatness {
		maxStep := 2 * math.Acos(1-b.Flatness/rDev)
		n = max(int(math.Ceil(sweep/maxStep)), 1)
	}
	for i := 1; i <= n; i++ {
		theta := theta0 + sign*sweep*float64(i)/float64(n)
		p := center.Add(vec.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
		b.lineDev(b.device(p))
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
// All points are in user space; CTM-aware tolerance checking is used.
func (b *Builder) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	eDev := b.transformLinear(e)

	n := 1
	errDev := eDev.Length()
	if errDev > b.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / b.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint. All in user space.
func (b *Builder) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	mDev := max(b.transformLinear(d1).Length(), b.transformLinear(d2).Length())
	n := 1
	if mDev > 0 {
		nFloat := math.Sqrt(3 * mDev / (4 * b.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is the PDF default flatness tolerance, in pixels.
	defaultFlatness = 0.25
)
