package composite

import (
	"github.com/gogpu/clockface"
)

// glowTint scales the blurred contribution when it is added back onto
// the original. Tuned by eye; above 1 overdrives lit segments into
// bloom.
var glowTint = clockface.RGB(0.9, 0.9, 1.0)

// BlurHorizontal runs the first separable pass: each destination pixel
// sums source samples offset along X by the table taps. Every sample
// is weighted by its own alpha, so the alpha channel written by the
// forward pass acts as a per-pixel "contributes to glow" mask.
//
// dst and src must be distinct buffers of equal size.
func BlurHorizontal(dst, src *clockface.Pixmap, taps []BlurTap) {
	blurAxis(dst, src, taps, false)
}

// BlurVertical runs the second separable pass along Y over the
// horizontally blurred intermediate.
func BlurVertical(dst, src *clockface.Pixmap, taps []BlurTap) {
	blurAxis(dst, src, taps, true)
}

func blurAxis(dst, src *clockface.Pixmap, taps []BlurTap, vertical bool) {
	w := float32(src.Width())
	h := float32(src.Height())

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			u := (float32(x) + 0.5) / w
			v := (float32(y) + 0.5) / h

			var acc clockface.RGBA
			for _, tap := range taps {
				su, sv := u, v
				if vertical {
					sv += tap.Offset / h
				} else {
					su += tap.Offset / w
				}
				s := src.Sample(su, sv)
				// Alpha-weighted: masked-out pixels contribute nothing.
				f := tap.Weight * s.A
				acc.R += s.R * f
				acc.G += s.G * f
				acc.B += s.B * f
				acc.A += s.A * tap.Weight
			}
			dst.SetPixel(x, y, acc)
		}
	}
}

// GlowCombine writes the final composite: the un-blurred original plus
// the tinted blurred glow, additively, with the output alpha forced to
// 1 so the presented frame is opaque.
//
// Pass separation note: two 1D passes cost O(n) taps per pixel where
// the single-pass equivalent costs O(n^2).
func GlowCombine(dst, original, blurred *clockface.Pixmap) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			o := original.GetPixel(x, y)
			b := blurred.GetPixel(x, y)
			dst.SetPixel(x, y, clockface.RGBA{
				R: o.R + b.R*glowTint.R,
				G: o.G + b.G*glowTint.G,
				B: o.B + b.B*glowTint.B,
				A: 1,
			})
		}
	}
}
