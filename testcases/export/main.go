// Command export writes the test outlines together with their encoded
// segments to JSON, for checking the runtime evaluator against.
// Run from the glyphseg module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/glyphseg"
	"seehuhn.de/go/glyphseg/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	flipY := flag.Bool("flip", true, "flip the y-axis")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	d := glyphseg.NewDecomposer()
	d.FlipY = *flipY
	e := glyphseg.NewEncoder()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(d, e, category, tc)
			if err != nil {
				logger.Error("cannot decompose", "case", category+"_"+tc.Name, "err", err)
				os.Exit(1)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
	logger.Info("wrote test cases", "file", *outFile, "count", len(out.TestCases))
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	FlipY    bool          `json:"flip_y"`
	Path     []jsonCommand `json:"path"`
	Segments int           `json:"segments"`
	Encoded  string        `json:"encoded"`
}

type jsonCommand struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(d *glyphseg.Decomposer, e *glyphseg.Encoder, category string, tc testcases.TestCase) (jsonTestCase, error) {
	segs, err := d.Decompose(tc.Path.Iter())
	if err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		FlipY:    d.FlipY,
		Path:     pathToJSON(tc.Path.Iter()),
		Segments: len(segs),
		Encoded:  e.Encode(segs),
	}, nil
}

func pathToJSON(p path.Path) []jsonCommand {
	var cmds []jsonCommand
	for cmd, pts := range p {
		c := jsonCommand{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			c.Cmd = "M"
		case path.CmdLineTo:
			c.Cmd = "L"
		case path.CmdQuadTo:
			c.Cmd = "Q"
		case path.CmdCubeTo:
			c.Cmd = "C"
		case path.CmdClose:
			c.Cmd = "Z"
		}
		for i, pt := range pts {
			c.Pts[i] = []float64{pt.X, pt.Y}
		}
		cmds = append(cmds, c)
	}
	return cmds
}
