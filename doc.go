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

// Package glyphseg decomposes glyph outlines into x-monotone segments and
// serializes them in a compact text format.
//
// Each segment is either a straight line or a quadratic curve which
// describes y as a single-valued function of x over a closed interval.
// Quadratic curves which turn back in x are split at their x-extremum, and
// cubic curves are cut into four pieces which are then approximated by
// quadratic curves.  Together with the direction sign stored in every
// segment, this allows a consumer to reconstruct the fill of the glyph by
// evaluating y = f(x) for each segment.
package glyphseg

//go:generate go run ./testcases/export
