// seehuhn.de/go/glyphseg - decompose glyph outlines into x-monotone segments
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

package glyphseg

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// cubicParts is the number of equal-parameter pieces a cubic Bézier
// curve is cut into before each piece is approximated by a quadratic.
const cubicParts = 4

// Segment is a piece of a glyph outline which describes y as a function
// of x over a closed interval [x0, x1] with x0 < x1.
//
// The concrete types are *Line and *Curve.
type Segment interface {
	// Dir returns +1 if the segment is stored in the same order as it was
	// traversed in the outline, and -1 if the end points were swapped.
	Dir() int

	// Bounds returns the bounding box of the segment.
	Bounds() rect.Rect

	isSegment()
}

// Line is a straight segment from (X0, Y0) to (X1, Y1).
type Line struct {
	X0, Y0    float64 // left end point
	X1, Y1    float64 // right end point, X1 > X0
	Slope     float64 // (Y1-Y0)/(X1-X0)
	Direction int     // +1 or -1, see Segment.Dir
}

// Dir implements the Segment interface.
func (l *Line) Dir() int { return l.Direction }

// Bounds implements the Segment interface.
func (l *Line) Bounds() rect.Rect {
	return rect.Rect{
		LLx: l.X0,
		LLy: min(l.Y0, l.Y1),
		URx: l.X1,
		URy: max(l.Y0, l.Y1),
	}
}

// YAt returns the y-coordinate of the line at x.
func (l *Line) YAt(x float64) float64 {
	return l.Y0 + l.Slope*(x-l.X0)
}

func (*Line) isSegment() {}

// Curve is a quadratic Bézier segment in polynomial form:
//
//	x(t) = AX·t² + BX·t + CX
//	y(t) = AY·t² + BY·t + CY
//
// for t in [0, 1].  The x-coordinate is non-decreasing in t.
type Curve struct {
	X0, Y0             float64 // start point, at t=0
	X1, Y1             float64 // end point, at t=1
	ControlX, ControlY float64 // Bézier control point

	AX, BX, CX float64
	AY, BY, CY float64

	Direction int // +1 or -1, see Segment.Dir
}

// Dir implements the Segment interface.
func (c *Curve) Dir() int { return c.Direction }

// At evaluates the curve at parameter t.
func (c *Curve) At(t float64) vec.Vec2 {
	return vec.Vec2{
		X: (c.AX*t+c.BX)*t + c.CX,
		Y: (c.AY*t+c.BY)*t + c.CY,
	}
}

// Bounds implements the Segment interface.
func (c *Curve) Bounds() rect.Rect {
	yMin := min(c.Y0, c.Y1)
	yMax := max(c.Y0, c.Y1)

	// Solve dy/dt = 0.
	if c.AY != 0 {
		t := -c.BY / (2 * c.AY)
		if t >= 0 && t <= 1 {
			y := c.At(t).Y
			yMin = min(yMin, y)
			yMax = max(yMax, y)
		}
	}

	return rect.Rect{
		LLx: c.X0,
		LLy: yMin,
		URx: c.X1,
		URy: yMax,
	}
}

func (*Curve) isSegment() {}

// segmenter turns lines and Bézier curves into x-monotone segments.
// All input points must already be in the output coordinate frame.
type segmenter struct {
	precision      int  // decimal places
	trackDirection bool // whether lines record their direction
	out            []Segment
}

func (s *segmenter) round(x float64) float64 {
	return Round(x, s.precision)
}

func (s *segmenter) roundPt(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: s.round(p.X), Y: s.round(p.Y)}
}

// addLine appends the straight segment from p0 to p1.
// Vertical segments are dropped.
func (s *segmenter) addLine(p0, p1 vec.Vec2) {
	p0 = s.roundPt(p0)
	p1 = s.roundPt(p1)
	if p0.X == p1.X {
		return
	}

	dir := 1
	if p1.X < p0.X {
		p0, p1 = p1, p0
		if s.trackDirection {
			dir = -1
		}
	}

	s.out = append(s.out, &Line{
		X0:        p0.X,
		Y0:        p0.Y,
		X1:        p1.X,
		Y1:        p1.Y,
		Slope:     (p1.Y - p0.Y) / (p1.X - p0.X),
		Direction: dir,
	})
}

// addQuadratic appends the quadratic Bézier curve with end points p0, p2
// and control point p1.  If x is not monotone along the curve, the curve
// is split at its x-extremum.
func (s *segmenter) addQuadratic(p0, p1, p2 vec.Vec2) {
	p0 = s.roundPt(p0)
	p1 = s.roundPt(p1)
	p2 = s.roundPt(p2)
	if p0.X == p1.X && p1.X == p2.X {
		return
	}

	dir := 1
	if p2.X < p0.X {
		p0, p2 = p2, p0
		dir = -1
	}

	if p0.X <= p1.X && p1.X <= p2.X {
		s.addCurve(p0, p1, p2, dir)
		return
	}

	// The control point lies outside [x0, x2], so ax != 0 here.
	ax := p2.X - 2*p1.X + p0.X
	bx := 2 * (p1.X - p0.X)
	t := -bx / (2 * ax)

	c0 := lerp(p0, p1, t)
	c1 := lerp(p1, p2, t)
	mid := lerp(c0, c1, t)

	s.addHalf(p0, c0, mid, dir)
	s.addHalf(mid, c1, p2, dir)
}

// addHalf appends one half of a quadratic curve which was split at its
// x-extremum.  The half is monotone in x up to rounding errors, which are
// corrected by moving the control point into the x-range of the end points.
func (s *segmenter) addHalf(p0, p1, p2 vec.Vec2, dir int) {
	p0 = s.roundPt(p0)
	p1 = s.roundPt(p1)
	p2 = s.roundPt(p2)

	if p2.X < p0.X {
		p0, p2 = p2, p0
		dir = -dir
	}
	if p0.X == p2.X {
		// After clamping, the control point would be vertically aligned too.
		return
	}
	p1.X = min(max(p1.X, p0.X), p2.X)

	s.addCurve(p0, p1, p2, dir)
}

// addCurve appends a quadratic curve which is already known to be
// monotone in x, with p0.X <= p2.X.
func (s *segmenter) addCurve(p0, p1, p2 vec.Vec2, dir int) {
	s.out = append(s.out, &Curve{
		X0:       p0.X,
		Y0:       p0.Y,
		X1:       p2.X,
		Y1:       p2.Y,
		ControlX: p1.X,
		ControlY: p1.Y,

		AX: s.round(p2.X - 2*p1.X + p0.X),
		BX: s.round(2 * (p1.X - p0.X)),
		CX: p0.X,

		AY: s.round(p2.Y - 2*p1.Y + p0.Y),
		BY: s.round(2 * (p1.Y - p0.Y)),
		CY: p0.Y,

		Direction: dir,
	})
}

// addCubic appends the cubic Bézier curve with end points p0, p3 and
// control points p1, p2.  The curve is cut into cubicParts pieces of equal
// parameter length, and each piece is replaced by a quadratic curve.
func (s *segmenter) addCubic(p0, p1, p2, p3 vec.Vec2) {
	p0 = s.roundPt(p0)
	p1 = s.roundPt(p1)
	p2 = s.roundPt(p2)
	p3 = s.roundPt(p3)
	if p0.X == p1.X && p1.X == p2.X && p2.X == p3.X {
		return
	}

	for parts := cubicParts; parts > 1; parts-- {
		// Cut off the first 1/parts of what is left, using De Casteljau.
		t := 1 / float64(parts)

		a := lerp(p0, p1, t)
		m := lerp(p1, p2, t)
		d := lerp(p2, p3, t)
		b := lerp(a, m, t)
		c := lerp(m, d, t)
		mid := lerp(b, c, t)

		s.approxCubic(p0, a, b, mid)
		p0, p1, p2 = mid, c, d
	}
	s.approxCubic(p0, p1, p2, p3)
}

// approxCubic appends a quadratic approximation of a cubic Bézier curve.
// The control point is chosen to match the cubic's end point tangents
// on average.
func (s *segmenter) approxCubic(p0, p1, p2, p3 vec.Vec2) {
	ctrl := p1.Mul(0.75).Sub(p0.Mul(0.25)).Add(p2.Mul(0.75).Sub(p3.Mul(0.25)))
	s.addQuadratic(p0, ctrl, p3)
}

// lerp interpolates linearly between a (t=0) and b (t=1).
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
