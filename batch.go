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
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/path"
)

// EncodeGlyphs encodes several glyph outlines concurrently.  At most limit
// glyphs are processed at the same time; limit <= 0 means no limit.
//
// The result has one entry per glyph, in the order of the input.  If any
// glyph fails to decompose, the remaining work is cancelled and the error
// of the first failing glyph is returned.
func EncodeGlyphs(ctx context.Context, d *Decomposer, e *Encoder, glyphs []path.Path, limit int) ([]string, error) {
	out := make([]string, len(glyphs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, p := range glyphs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			segs, err := d.Decompose(p)
			if err != nil {
				return fmt.Errorf("glyph %d: %w", i, err)
			}
			out[i] = e.Encode(segs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
