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
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// cmdInvalid is passed on for sfnt segment operations we don't know.
const cmdInvalid = path.Command(0xff)

// FromSegments converts a glyph outline loaded with
// golang.org/x/image/font/sfnt into a path.
//
// The contours of an sfnt outline are implicitly closed, so a Close
// command is inserted at the end of every contour.  Like the sfnt
// outline, the path uses a y-down coordinate system.
//
// The point slices passed to the iterator's yield function are only
// valid during the call.
func FromSegments(segs sfnt.Segments) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		open := false // whether the current contour has drawing commands

		for _, seg := range segs {
			var cmd path.Command
			var n int
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					if !yield(path.CmdClose, nil) {
						return
					}
				}
				cmd, n = path.CmdMoveTo, 1
				open = false
			case sfnt.SegmentOpLineTo:
				cmd, n = path.CmdLineTo, 1
				open = true
			case sfnt.SegmentOpQuadTo:
				cmd, n = path.CmdQuadTo, 2
				open = true
			case sfnt.SegmentOpCubeTo:
				cmd, n = path.CmdCubeTo, 3
				open = true
			default:
				cmd = cmdInvalid
			}

			for i := range n {
				buf[i] = fromFixed(seg.Args[i])
			}
			if !yield(cmd, buf[:n]) {
				return
			}
		}

		if open {
			yield(path.CmdClose, nil)
		}
	}
}

func fromFixed(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}
