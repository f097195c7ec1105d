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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrUnsupportedCommand is returned when a path contains a command other
// than MoveTo, LineTo, QuadTo, CubeTo and Close, or a command with too few
// points.
var ErrUnsupportedCommand = errors.New("unsupported path command")

// Decomposer converts glyph outlines into x-monotone segments.
//
// A Decomposer is not modified by Decompose, so a single instance can be
// used from several goroutines at once.
type Decomposer struct {
	// CTM maps input coordinates to output coordinates, before the
	// y-axis is flipped.  The zero matrix is treated as the identity.
	CTM matrix.Matrix

	// Precision is the number of decimal places all coordinates and
	// polynomial coefficients are rounded to.
	Precision int

	// TrackDirection controls whether lines record the direction in which
	// they were traversed.  If false, all lines report direction +1.
	// Curves always record their direction, since the two halves of a
	// curve split at its x-extremum run in opposite directions.
	TrackDirection bool

	// FlipY negates all y-coordinates.  Glyph outlines normally use a
	// y-down coordinate system, while segments are computed in a y-up frame.
	FlipY bool
}

// NewDecomposer returns a Decomposer with the default settings:
// identity transformation, six decimal places, direction tracking
// enabled and the y-axis flipped.
func NewDecomposer() *Decomposer {
	return &Decomposer{
		CTM:            matrix.Identity,
		Precision:      defaultPrecision,
		TrackDirection: true,
		FlipY:          true,
	}
}

// Decompose splits the outline p into x-monotone segments, in traversal
// order.  Vertical pieces of the outline produce no segments.
//
// If p contains an unsupported command, an error wrapping
// ErrUnsupportedCommand is returned and no segments are returned.
func (d *Decomposer) Decompose(p path.Path) ([]Segment, error) {
	s := &segmenter{
		precision:      max(d.Precision, 0),
		trackDirection: d.TrackDirection,
	}

	var current vec.Vec2 // current point (input space)
	var subpath vec.Vec2 // subpath start (input space)

	i := 0
	for cmd, pts := range p {
		need, ok := pointCount(cmd)
		if !ok || len(pts) < need {
			return nil, fmt.Errorf("command %d (%v): %w", i, cmd, ErrUnsupportedCommand)
		}

		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current

		case path.CmdLineTo:
			s.addLine(d.toFrame(current), d.toFrame(pts[0]))
			current = pts[0]

		case path.CmdQuadTo:
			s.addQuadratic(d.toFrame(current), d.toFrame(pts[0]), d.toFrame(pts[1]))
			current = pts[1]

		case path.CmdCubeTo:
			s.addCubic(d.toFrame(current), d.toFrame(pts[0]), d.toFrame(pts[1]), d.toFrame(pts[2]))
			current = pts[2]

		case path.CmdClose:
			s.addLine(d.toFrame(current), d.toFrame(subpath))
			current = subpath
		}
		i++
	}

	return s.out, nil
}

// pointCount returns the number of points which come with a path command.
func pointCount(cmd path.Command) (int, bool) {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1, true
	case path.CmdQuadTo:
		return 2, true
	case path.CmdCubeTo:
		return 3, true
	case path.CmdClose:
		return 0, true
	default:
		return 0, false
	}
}

// toFrame maps a point from input space to the frame used for the
// segments.  This is the only place where the y-axis is flipped.
func (d *Decomposer) toFrame(p vec.Vec2) vec.Vec2 {
	m := d.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	q := vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
	if d.FlipY {
		q.Y = -q.Y
	}
	return q
}
