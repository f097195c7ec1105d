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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var lineCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(32, 10, 54, 54, 10, 54),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(12, 16, 40, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring",
		Path:   ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Path:   star(32, 32, 28, 12, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "fractional",
		Path:   triangle(10.123456789, 10.987654321, 53.3333333333, 20.1, 30.0000005, 54.75),
		Width:  64,
		Height: 64,
	},
}

// triangle builds a closed triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds an axis-aligned rectangle, clockwise on screen.
func rectangle(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+w, y)).
		LineTo(pt(x+w, y+h)).
		LineTo(pt(x, y+h)).
		Close()
}

// ring builds a square with a square hole.  The inner contour runs in the
// opposite direction.
func ring(cx, cy, outer, inner float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx-outer, cy-outer)).
		LineTo(pt(cx+outer, cy-outer)).
		LineTo(pt(cx+outer, cy+outer)).
		LineTo(pt(cx-outer, cy+outer)).
		Close().
		MoveTo(pt(cx-inner, cy-inner)).
		LineTo(pt(cx-inner, cy+inner)).
		LineTo(pt(cx+inner, cy+inner)).
		LineTo(pt(cx+inner, cy-inner)).
		Close()
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		Close().
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size)).
		Close()
}

// star builds a star polygon with the given number of points.  The path is
// left open; the final edge comes from the Close command.
func star(cx, cy, outer, inner float64, n int) *path.Data {
	p := &path.Data{}
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := float64(i)*math.Pi/float64(n) - math.Pi/2
		q := pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p.Close()
}
