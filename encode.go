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
	"strings"

	"seehuhn.de/go/geom/path"
)

// Encoder serializes segments into the flat text format read by the
// runtime evaluator.  All fields are terminated by ';'.
//
// A glyph is encoded as a header "count;;;;;" followed by one token per
// segment:
//
//	L±;x0;x1;4y0;4slope;
//	Q±;x0;x1;p;-bx;ax;cx;ay;2by;4cy;    (ax > 0)
//	Q±;x0;x1;m;-bx;ax;cx;ay;2by;4cy;    (ax < 0)
//	Q±;x0;x1;z;0;bx;cx;4ay;4by;4cy;     (ax = 0)
//
// The sign after the letter is the segment direction.
type Encoder struct {
	Formatter
}

// NewEncoder returns an Encoder which keeps 12 significant digits.
func NewEncoder() *Encoder {
	return &Encoder{
		Formatter: Formatter{SignificantDigits: defaultSignificantDigits},
	}
}

// Encode returns the encoding of a complete glyph.
func (e *Encoder) Encode(segs []Segment) string {
	var b strings.Builder
	b.WriteString(e.Format(float64(len(segs))))
	b.WriteString(";;;;;")
	for _, seg := range segs {
		e.writeToken(&b, seg)
	}
	return b.String()
}

// Token returns the encoding of a single segment.
func (e *Encoder) Token(seg Segment) string {
	var b strings.Builder
	e.writeToken(&b, seg)
	return b.String()
}

func (e *Encoder) writeToken(b *strings.Builder, seg Segment) {
	field := func(x float64) {
		b.WriteString(e.Format(x))
		b.WriteByte(';')
	}
	sign := func(dir int) {
		if dir > 0 {
			b.WriteString("+;")
		} else {
			b.WriteString("-;")
		}
	}

	switch seg := seg.(type) {
	case *Line:
		b.WriteByte('L')
		sign(seg.Direction)
		field(seg.X0)
		field(seg.X1)
		field(4 * seg.Y0)
		field(4 * seg.Slope)

	case *Curve:
		b.WriteByte('Q')
		sign(seg.Direction)
		field(seg.X0)
		field(seg.X1)
		if seg.AX == 0 {
			// x is an affine function of t
			b.WriteString("z;0;")
			field(seg.BX)
			field(seg.CX)
			field(4 * seg.AY)
			field(4 * seg.BY)
			field(4 * seg.CY)
		} else {
			if seg.AX > 0 {
				b.WriteString("p;")
			} else {
				b.WriteString("m;")
			}
			field(-seg.BX)
			field(seg.AX)
			field(seg.CX)
			field(seg.AY)
			field(2 * seg.BY)
			field(4 * seg.CY)
		}
	}
}

// EncodeGlyph decomposes the outline p using the default settings and
// returns its encoding.
func EncodeGlyph(p path.Path) (string, error) {
	segs, err := NewDecomposer().Decompose(p)
	if err != nil {
		return "", err
	}
	return NewEncoder().Encode(segs), nil
}
