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

import "seehuhn.de/go/geom/path"

var glyphCases = []TestCase{
	{
		Name:   "letter_o",
		Path:   letterO(32, 32, 26, 18),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_d",
		Path:   letterD(12, 6, 40, 52),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "letter_v",
		Path:   letterV(),
		Width:  64,
		Height: 64,
	},
}

// letterO builds an "O" from an outer ellipse and an inner ellipse running
// in the opposite direction.
func letterO(cx, cy, outer, inner float64) *path.Data {
	ko := outer * kappa
	ki := inner * kappa
	wo := outer * 0.8
	wi := inner * 0.7

	return (&path.Data{}).
		MoveTo(pt(cx+wo, cy)).
		CubeTo(pt(cx+wo, cy-ko), pt(cx+wo*kappa, cy-outer), pt(cx, cy-outer)).
		CubeTo(pt(cx-wo*kappa, cy-outer), pt(cx-wo, cy-ko), pt(cx-wo, cy)).
		CubeTo(pt(cx-wo, cy+ko), pt(cx-wo*kappa, cy+outer), pt(cx, cy+outer)).
		CubeTo(pt(cx+wo*kappa, cy+outer), pt(cx+wo, cy+ko), pt(cx+wo, cy)).
		Close().
		MoveTo(pt(cx+wi, cy)).
		CubeTo(pt(cx+wi, cy+ki), pt(cx+wi*kappa, cy+inner), pt(cx, cy+inner)).
		CubeTo(pt(cx-wi*kappa, cy+inner), pt(cx-wi, cy+ki), pt(cx-wi, cy)).
		CubeTo(pt(cx-wi, cy-ki), pt(cx-wi*kappa, cy-inner), pt(cx, cy-inner)).
		CubeTo(pt(cx+wi*kappa, cy-inner), pt(cx+wi, cy-ki), pt(cx+wi, cy)).
		Close()
}

// letterD builds a "D" with a vertical stem and a bowl made of quadratic
// curves, with a counter running in the opposite direction.
func letterD(x, y, w, h float64) *path.Data {
	const stroke = 8
	midY := y + h/2

	return (&path.Data{}).
		MoveTo(pt(x, y)).
		LineTo(pt(x+w/2, y)).
		QuadTo(pt(x+w, y), pt(x+w, midY)).
		QuadTo(pt(x+w, y+h), pt(x+w/2, y+h)).
		LineTo(pt(x, y+h)).
		Close().
		MoveTo(pt(x+stroke, y+stroke)).
		LineTo(pt(x+stroke, y+h-stroke)).
		LineTo(pt(x+w/2, y+h-stroke)).
		QuadTo(pt(x+w-stroke, y+h-stroke), pt(x+w-stroke, midY)).
		QuadTo(pt(x+w-stroke, y+stroke), pt(x+w/2, y+stroke)).
		Close()
}

// letterV builds a "V" as a single polygon.  The last edge is left to the
// Close command.
func letterV() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 8)).
		LineTo(pt(18, 8)).
		LineTo(pt(32, 44)).
		LineTo(pt(46, 8)).
		LineTo(pt(56, 8)).
		LineTo(pt(38, 56)).
		LineTo(pt(26, 56)).
		Close()
}
