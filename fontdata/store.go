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

// Package fontdata stores the encoded glyphs of several fonts in one flat
// list of strings, as expected by the runtime evaluator.
//
// Each font occupies one contiguous run of list items.  A separate index
// records where each run starts.
//
// Only the glyph data is modelled.  The first item of a run is the plain
// font name, without any version stamp, and no license text or other
// per-font metadata is stored alongside the runs.
package fontdata

import (
	"slices"
	"strings"

	"seehuhn.de/go/glyphseg"
)

// Glyph is one encoded character of a font.
type Glyph struct {
	Index   int     // position of the character in the character table
	Advance float64 // advance width
	Outline string  // output of glyphseg.Encoder.Encode
}

// BuildRun returns the list items for a font.  The run starts with the
// lower-cased font name and the number of glyphs, followed by three items
// for every glyph: the one-based character index, the advance width
// rounded to the given number of decimal places, and the outline.
func BuildRun(name string, glyphs []Glyph, precision int) []string {
	run := make([]string, 0, 2+3*len(glyphs))
	run = append(run, strings.ToLower(name), glyphseg.FormatNum(float64(len(glyphs))))
	for _, g := range glyphs {
		run = append(run,
			glyphseg.FormatNum(float64(g.Index+1)),
			glyphseg.FormatNum(glyphseg.Round(g.Advance, precision)),
			g.Outline)
	}
	return run
}

// Store holds the runs of several fonts.  Font names are case-insensitive.
//
// The zero value is an empty store ready to use.
// A Store is not safe for concurrent use.
type Store struct {
	names   []string // lower-cased font names
	offsets []int    // start of each run in items
	items   []string
}

// Upsert stores the run for the named font.  If the font is already
// present, its run is replaced in place and the runs of all later fonts
// are shifted.  Otherwise the run is appended at the end.
func (s *Store) Upsert(name string, run []string) {
	key := strings.ToLower(name)
	i := slices.Index(s.names, key)
	if i < 0 {
		s.names = append(s.names, key)
		s.offsets = append(s.offsets, len(s.items))
		s.items = append(s.items, run...)
		return
	}

	start, end := s.offsets[i], s.end(i)
	s.items = slices.Replace(s.items, start, end, run...)

	delta := len(run) - (end - start)
	for j := i + 1; j < len(s.offsets); j++ {
		s.offsets[j] += delta
	}
}

// Run returns a copy of the run of the named font.
func (s *Store) Run(name string) ([]string, bool) {
	i := slices.Index(s.names, strings.ToLower(name))
	if i < 0 {
		return nil, false
	}
	return slices.Clone(s.items[s.offsets[i]:s.end(i)]), true
}

// Offset returns the position of the first item of the named font's run.
func (s *Store) Offset(name string) (int, bool) {
	i := slices.Index(s.names, strings.ToLower(name))
	if i < 0 {
		return 0, false
	}
	return s.offsets[i], true
}

// Names returns the stored font names, in storage order.
func (s *Store) Names() []string {
	return slices.Clone(s.names)
}

// Items returns a copy of the flat item list.
func (s *Store) Items() []string {
	return slices.Clone(s.items)
}

func (s *Store) end(i int) int {
	if i+1 < len(s.offsets) {
		return s.offsets[i+1]
	}
	return len(s.items)
}
