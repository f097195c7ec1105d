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
	"maps"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/glyphseg/testcases"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// decomposeYUp decomposes p without flipping the y-axis.
func decomposeYUp(t *testing.T, p *path.Data) []Segment {
	t.Helper()
	d := NewDecomposer()
	d.FlipY = false
	segs, err := d.Decompose(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	return segs
}

// checkSegments verifies the invariants every emitted segment must satisfy.
func checkSegments(t *testing.T, segs []Segment, precision int) {
	t.Helper()

	const eps = 1e-9
	isRounded := func(x float64) bool { return Round(x, precision) == x }

	for i, seg := range segs {
		if dir := seg.Dir(); dir != 1 && dir != -1 {
			t.Errorf("segment %d: direction %d", i, dir)
		}
		switch seg := seg.(type) {
		case *Line:
			if !(seg.X0 < seg.X1) {
				t.Errorf("line %d: x0=%g, x1=%g", i, seg.X0, seg.X1)
			}
			for _, x := range []float64{seg.X0, seg.Y0, seg.X1, seg.Y1} {
				if !isRounded(x) {
					t.Errorf("line %d: %g is not rounded", i, x)
				}
			}
		case *Curve:
			if !(seg.X0 < seg.X1) {
				t.Errorf("curve %d: x0=%g, x1=%g", i, seg.X0, seg.X1)
			}
			// x'(t) = 2·AX·t + BX is linear, so checking the end points suffices.
			if seg.BX < -eps || 2*seg.AX+seg.BX < -eps {
				t.Errorf("curve %d: not monotone, AX=%g, BX=%g", i, seg.AX, seg.BX)
			}
			for _, x := range []float64{seg.X0, seg.Y0, seg.X1, seg.Y1,
				seg.AX, seg.BX, seg.CX, seg.AY, seg.BY, seg.CY} {
				if !isRounded(x) {
					t.Errorf("curve %d: %g is not rounded", i, x)
				}
			}
			if p := seg.At(1); abs(p.X-seg.X1) > 1e-5 || abs(p.Y-seg.Y1) > 1e-5 {
				t.Errorf("curve %d: end point %v, want (%g, %g)", i, p, seg.X1, seg.Y1)
			}
		default:
			t.Errorf("segment %d: unexpected type %T", i, seg)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestLineScenario(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(10, 10))
	segs := decomposeYUp(t, p)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	line, ok := segs[0].(*Line)
	if !ok {
		t.Fatalf("got %T, want *Line", segs[0])
	}
	if line.Slope != 1 || line.Direction != 1 {
		t.Errorf("slope=%g, direction=%d", line.Slope, line.Direction)
	}

	got := NewEncoder().Token(line)
	if want := "L+;0;10;0;4;"; got != want {
		t.Errorf("token %q, want %q", got, want)
	}

	// With the default settings, the y-axis is flipped.
	enc, err := EncodeGlyph(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if want := "1;;;;;L+;0;10;0;-4;"; enc != want {
		t.Errorf("encoding %q, want %q", enc, want)
	}
}

func TestVerticalDropped(t *testing.T) {
	cases := map[string]*path.Data{
		"line":      (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(0, 10)),
		"quadratic": (&path.Data{}).MoveTo(pt(5, 0)).QuadTo(pt(5, 7), pt(5, 20)),
		"cubic":     (&path.Data{}).MoveTo(pt(5, 0)).CubeTo(pt(5, 7), pt(5, -3), pt(5, 20)),
		"close":     (&path.Data{}).MoveTo(pt(3, 0)).LineTo(pt(3, 10)).Close(),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			segs := decomposeYUp(t, p)
			if len(segs) != 0 {
				t.Errorf("got %d segments, want 0", len(segs))
			}
			if got := NewEncoder().Encode(segs); got != "0;;;;;" {
				t.Errorf("encoding %q", got)
			}
		})
	}
}

func TestLineDirection(t *testing.T) {
	fwd := decomposeYUp(t, (&path.Data{}).MoveTo(pt(1, 2)).LineTo(pt(11, 7)))
	rev := decomposeYUp(t, (&path.Data{}).MoveTo(pt(11, 7)).LineTo(pt(1, 2)))
	if len(fwd) != 1 || len(rev) != 1 {
		t.Fatalf("got %d and %d segments", len(fwd), len(rev))
	}
	a, b := fwd[0].(*Line), rev[0].(*Line)
	if a.Direction != 1 || b.Direction != -1 {
		t.Errorf("directions %d and %d", a.Direction, b.Direction)
	}
	if a.X0 != b.X0 || a.Y0 != b.Y0 || a.X1 != b.X1 || a.Y1 != b.Y1 || a.Slope != b.Slope {
		t.Errorf("%v != %v", a, b)
	}

	e := NewEncoder()
	if got := e.Token(b); got != "L-;1;11;8;2;" {
		t.Errorf("token %q", got)
	}

	// Without direction tracking, reversed lines keep direction +1.
	d := NewDecomposer()
	d.FlipY = false
	d.TrackDirection = false
	segs, err := d.Decompose((&path.Data{}).MoveTo(pt(11, 7)).LineTo(pt(1, 2)).Iter())
	if err != nil {
		t.Fatal(err)
	}
	if segs[0].Dir() != 1 {
		t.Errorf("direction %d without tracking", segs[0].Dir())
	}
}

func TestQuadraticMonotone(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(10, 0)).QuadTo(pt(5, 10), pt(0, 0))
	segs := decomposeYUp(t, p)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	c := segs[0].(*Curve)
	if c.Direction != -1 || c.X0 != 0 || c.X1 != 10 {
		t.Errorf("unexpected curve %+v", c)
	}
	if c.AX != 0 || c.BX != 10 || c.AY != -20 || c.BY != 20 {
		t.Errorf("unexpected coefficients %+v", c)
	}
	if b := c.Bounds(); b.LLy != 0 || b.URy != 5 {
		t.Errorf("bounds %v", b)
	}

	got := NewEncoder().Token(c)
	if want := "Q-;0;10;z;0;10;0;-80;80;0;"; got != want {
		t.Errorf("token %q, want %q", got, want)
	}
}

func TestQuadraticToken(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(2, 4), pt(10, 0))
	segs := decomposeYUp(t, p)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	got := NewEncoder().Token(segs[0])
	if want := "Q+;0;10;p;-4;6;0;-8;16;0;"; got != want {
		t.Errorf("token %q, want %q", got, want)
	}

	p = (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(8, 4), pt(10, 0))
	segs = decomposeYUp(t, p)
	got = NewEncoder().Token(segs[0])
	if want := "Q+;0;10;m;-16;-6;0;-8;16;0;"; got != want {
		t.Errorf("token %q, want %q", got, want)
	}
}

func TestQuadraticSplit(t *testing.T) {
	// The control point lies to the right of both end points.
	p := (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(10, 10), pt(5, 0))
	segs := decomposeYUp(t, p)
	checkSegments(t, segs, defaultPrecision)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	a, b := segs[0].(*Curve), segs[1].(*Curve)

	// The x-extremum is at t=2/3, x=20/3.
	const xMax = 6.666667
	if a.X1 != xMax || b.X1 != xMax {
		t.Errorf("split at x=%g and x=%g, want %g", a.X1, b.X1, xMax)
	}
	if a.Y1 != b.Y1 {
		t.Errorf("halves do not meet: y=%g and y=%g", a.Y1, b.Y1)
	}
	if lo := min(a.X0, b.X0); lo != 0 {
		t.Errorf("domain starts at %g, want 0", lo)
	}
	if a.Direction != 1 || b.Direction != -1 {
		t.Errorf("directions %d and %d, want 1 and -1", a.Direction, b.Direction)
	}
}

func TestCubicFanOut(t *testing.T) {
	cases := []struct {
		name       string
		p          *path.Data
		minN, maxN int
	}{
		{"monotone", (&path.Data{}).MoveTo(pt(0, 0)).CubeTo(pt(1, 1), pt(2, -1), pt(3, 0)), 4, 4},
		{"arch", (&path.Data{}).MoveTo(pt(10, 50)).CubeTo(pt(20, 10), pt(44, 10), pt(54, 50)), 4, 4},
		{"turning", (&path.Data{}).MoveTo(pt(0, 0)).CubeTo(pt(30, 10), pt(-30, 20), pt(10, 30)), 5, 8},
		{"backwards", (&path.Data{}).MoveTo(pt(10, 0)).CubeTo(pt(7, 5), pt(3, -5), pt(0, 0)), 4, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			segs := decomposeYUp(t, c.p)
			checkSegments(t, segs, defaultPrecision)
			if len(segs) < c.minN || len(segs) > c.maxN {
				t.Errorf("got %d segments, want %d to %d", len(segs), c.minN, c.maxN)
			}
			for i, seg := range segs {
				if _, ok := seg.(*Curve); !ok {
					t.Errorf("segment %d is %T", i, seg)
				}
			}
		})
	}
}

func TestCubicScenario(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(0, 0)).CubeTo(pt(1, 1), pt(2, -1), pt(3, 0))
	segs, err := NewDecomposer().Decompose(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	enc := NewEncoder().Encode(segs)

	header, body, ok := strings.Cut(enc, ";;;;;")
	if !ok {
		t.Fatalf("no header in %q", enc)
	}
	if header != FormatNum(float64(len(segs))) {
		t.Errorf("header %q for %d segments", header, len(segs))
	}
	tokens := strings.Count(body, "Q") + strings.Count(body, "L")
	if tokens != len(segs) {
		t.Errorf("%d tokens for %d segments", tokens, len(segs))
	}
}

func TestUnsupportedCommand(t *testing.T) {
	bad := func(cmd path.Command, pts []vec.Vec2) path.Path {
		return func(yield func(path.Command, []vec.Vec2) bool) {
			if !yield(path.CmdMoveTo, []vec.Vec2{pt(0, 0)}) {
				return
			}
			if !yield(path.CmdLineTo, []vec.Vec2{pt(10, 10)}) {
				return
			}
			yield(cmd, pts)
		}
	}

	cases := map[string]path.Path{
		"unknown":    bad(cmdInvalid, nil),
		"few points": bad(path.CmdCubeTo, []vec.Vec2{pt(1, 1), pt(2, 2)}),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			segs, err := NewDecomposer().Decompose(p)
			if !errors.Is(err, ErrUnsupportedCommand) {
				t.Errorf("got error %v", err)
			}
			if segs != nil {
				t.Errorf("got %d segments after error", len(segs))
			}
		})
	}
}

func TestTransform(t *testing.T) {
	d := NewDecomposer()
	d.CTM = matrix.Matrix{2, 0, 0, 2, 1, 0}
	segs, err := d.Decompose((&path.Data{}).MoveTo(pt(0, 1)).LineTo(pt(3, 2)).Iter())
	if err != nil {
		t.Fatal(err)
	}
	line := segs[0].(*Line)
	if line.X0 != 1 || line.Y0 != -2 || line.X1 != 7 || line.Y1 != -4 {
		t.Errorf("unexpected line %+v", line)
	}

	// The zero matrix means no transformation.
	d.CTM = matrix.Matrix{}
	segs, err = d.Decompose((&path.Data{}).MoveTo(pt(0, 1)).LineTo(pt(3, 2)).Iter())
	if err != nil {
		t.Fatal(err)
	}
	if line := segs[0].(*Line); line.X1 != 3 {
		t.Errorf("unexpected line %+v", line)
	}
}

func TestPrecision(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(0.1234567, 0)).LineTo(pt(1.7654321, 1))

	d := NewDecomposer()
	d.FlipY = false
	d.Precision = 5
	segs, err := d.Decompose(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	line := segs[0].(*Line)
	if line.X0 != 0.12346 || line.X1 != 1.76543 {
		t.Errorf("x0=%g, x1=%g", line.X0, line.X1)
	}
	checkSegments(t, segs, 5)
}

func TestAllCasesInvariants(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				segs, err := NewDecomposer().Decompose(tc.Path.Iter())
				if err != nil {
					t.Fatal(err)
				}
				if len(segs) == 0 {
					t.Fatal("no segments")
				}
				checkSegments(t, segs, defaultPrecision)

				e := NewEncoder()
				enc := e.Encode(segs)
				if enc != e.Encode(segs) {
					t.Error("encoding is not deterministic")
				}
				if !strings.HasPrefix(enc, FormatNum(float64(len(segs)))+";;;;;") {
					t.Errorf("bad header in %q", enc)
				}
			})
		}
	}
}

func TestBounds(t *testing.T) {
	cases := []struct {
		name string
		p    *path.Data
		want rect.Rect
	}{
		{ // y(t) has its minimum at t=-0.5
			name: "extremum before start",
			p:    (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(5, 5), pt(10, 20)),
			want: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20},
		},
		{ // y(t) has its maximum at t=1.25
			name: "extremum after end",
			p:    (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(5, 10), pt(10, 12)),
			want: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 12},
		},
		{
			name: "extremum inside",
			p:    (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(5, 10), pt(10, 0)),
			want: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5},
		},
		{
			name: "affine y",
			p:    (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(5, 5), pt(10, 10)),
			want: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10},
		},
		{
			name: "reversed line",
			p:    (&path.Data{}).MoveTo(pt(10, 4)).LineTo(pt(0, 2)),
			want: rect.Rect{LLx: 0, LLy: 2, URx: 10, URy: 4},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			segs := decomposeYUp(t, c.p)
			if len(segs) != 1 {
				t.Fatalf("got %d segments, want 1", len(segs))
			}
			if got := segs[0].Bounds(); got != c.want {
				t.Errorf("bounds %v, want %v", got, c.want)
			}
		})
	}
}

func TestLineYAt(t *testing.T) {
	segs := decomposeYUp(t, (&path.Data{}).MoveTo(pt(10, 4)).LineTo(pt(0, 2)))
	line := segs[0].(*Line)
	if line.Dir() != -1 {
		t.Errorf("direction %d, want -1", line.Dir())
	}
	for _, c := range []struct{ x, y float64 }{{0, 2}, {5, 3}, {10, 4}} {
		if got := line.YAt(c.x); abs(got-c.y) > 1e-12 {
			t.Errorf("YAt(%g) = %g, want %g", c.x, got, c.y)
		}
	}
}

func TestCurveAffineY(t *testing.T) {
	segs := decomposeYUp(t, (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(5, 5), pt(10, 10)))
	c := segs[0].(*Curve)
	if c.AY != 0 || c.AX != 0 {
		t.Errorf("AX=%g, AY=%g, want 0", c.AX, c.AY)
	}
}

// TestHalfClamp covers the case where, after rounding, the control point of
// one half of a split quadratic lies just outside the x-range of its end
// points.
func TestHalfClamp(t *testing.T) {
	cases := []struct {
		name       string
		p0, p1, p2 vec.Vec2
		dir        int
		wantCtrlX  float64
		wantDir    int
	}{
		{"right", pt(0, 0), pt(10.0000006, 5), pt(10, 0), 1, 10, 1},
		{"left", pt(10, 0), pt(-0.000001, 5), pt(0, 0), -1, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := &segmenter{precision: defaultPrecision, trackDirection: true}
			s.addHalf(c.p0, c.p1, c.p2, c.dir)
			if len(s.out) != 1 {
				t.Fatalf("got %d segments, want 1", len(s.out))
			}
			checkSegments(t, s.out, defaultPrecision)

			curve := s.out[0].(*Curve)
			if curve.ControlX != c.wantCtrlX {
				t.Errorf("control x %g, want %g", curve.ControlX, c.wantCtrlX)
			}
			if curve.Direction != c.wantDir {
				t.Errorf("direction %d, want %d", curve.Direction, c.wantDir)
			}
			if curve.ControlY != 5 {
				t.Errorf("control y %g, want 5", curve.ControlY)
			}
		})
	}

	// End points which round to the same x give no segment.
	s := &segmenter{precision: defaultPrecision, trackDirection: true}
	s.addHalf(pt(5, 0), pt(6, 3), pt(5.0000001, 1), 1)
	if len(s.out) != 0 {
		t.Errorf("got %d segments for a degenerate half", len(s.out))
	}
}

func TestTrackDirectionCurves(t *testing.T) {
	d := NewDecomposer()
	d.FlipY = false
	d.TrackDirection = false
	segs, err := d.Decompose((&path.Data{}).MoveTo(pt(10, 0)).QuadTo(pt(5, 10), pt(0, 0)).Iter())
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 || segs[0].Dir() != -1 {
		t.Errorf("curve direction not kept without line tracking: %v", segs)
	}
}
