// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/clockface"

// BlendMode selects how a fragment combines with the destination
// pixel, mirroring the fixed-function blend states the GPU pipelines
// configure.
type BlendMode int

const (
	// BlendReplace overwrites the destination outright.
	BlendReplace BlendMode = iota

	// BlendSourceOver blends color by source alpha but replaces the
	// destination alpha with the source's. The shape passes use this:
	// coverage shapes the color while the written alpha carries the
	// glow mask forward, uncontaminated by what was underneath.
	BlendSourceOver

	// BlendAdditive sums source and destination channels, clamped by
	// the 8-bit store.
	BlendAdditive
)

func blend(mode BlendMode, src, dst clockface.RGBA) clockface.RGBA {
	switch mode {
	case BlendSourceOver:
		a := src.A
		return clockface.RGBA{
			R: src.R*a + dst.R*(1-a),
			G: src.G*a + dst.G*(1-a),
			B: src.B*a + dst.B*(1-a),
			A: src.A,
		}
	case BlendAdditive:
		return clockface.RGBA{
			R: src.R + dst.R,
			G: src.G + dst.G,
			B: src.B + dst.B,
			A: src.A + dst.A,
		}
	default:
		return src
	}
}
