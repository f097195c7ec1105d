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

// Command genpdf draws the segments of every test case into a PDF file,
// for visual inspection.  Segments which keep the direction of the
// outline are drawn in white, reversed segments in grey.  If the -png flag
// is given, the PDFs are also rendered to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/glyphseg"
	"seehuhn.de/go/glyphseg/testcases"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// scale is the number of PDF points per test case unit.
const scale = 4

func main() {
	outDir := flag.String("o", "debug", "output directory")
	withPNG := flag.Bool("png", false, "render PNG files using Ghostscript")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	d := glyphseg.NewDecomposer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			segs, err := d.Decompose(tc.Path.Iter())
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, segs, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("wrote preview", "case", name, "segments", len(segs))

			if *withPNG {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, segs []glyphseg.Segment, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: scale * float64(tc.Width),
		URy: scale * float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// The segments live in a y-up frame where the outline occupies
	// negative y values.  Shift them back onto the page.
	page.Transform(matrix.Matrix{scale, 0, 0, scale, 0, scale * float64(tc.Height)})

	page.SetLineWidth(0.5)
	page.SetLineCap(graphics.LineCapRound)
	for _, seg := range segs {
		if seg.Dir() > 0 {
			page.SetStrokeColor(color.DeviceGray(1))
		} else {
			page.SetStrokeColor(color.DeviceGray(0.5))
		}

		switch seg := seg.(type) {
		case *glyphseg.Line:
			page.MoveTo(seg.X0, seg.Y0)
			page.LineTo(seg.X1, seg.Y1)
		case *glyphseg.Curve:
			// PDF has no quadratic curves; use the equivalent cubic.
			c1x := seg.X0 + 2*(seg.ControlX-seg.X0)/3
			c1y := seg.Y0 + 2*(seg.ControlY-seg.Y0)/3
			c2x := seg.X1 + 2*(seg.ControlX-seg.X1)/3
			c2y := seg.Y1 + 2*(seg.ControlY-seg.Y1)/3
			page.MoveTo(seg.X0, seg.Y0)
			page.CurveTo(c1x, c1y, c2x, c2y, seg.X1, seg.Y1)
		}
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
