package sprite

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clockface"
)

// Palette selects the per-fragment coloring program for segment
// islands. Selectors cycle SolidBlue..Waves; anything past the known
// range falls back to a flat gray so an out-of-range selector is
// visually obvious rather than undefined.
type Palette uint32

const (
	SolidBlue Palette = iota
	SolidGreen
	SolidOrange
	HueFade
	Waves

	// PaletteCount is the number of cycling palettes; the fallback is
	// not part of the cycle.
	PaletteCount
)

// unlitDim scales a lit color down for islands that are off; dead LED
// segments stay faintly visible like on real hardware.
const unlitDim = 0.08

func solid(c clockface.RGBA, lit bool) clockface.RGBA {
	if lit {
		return c
	}
	return c.Scale(unlitDim).WithAlpha(1)
}

// SegmentColor runs the palette dispatch for one fragment of a segment
// island. pos is the fragment's model-space position, timestamp the
// current second with sub-second fraction for the animated palettes.
// The alpha channel doubles as the glow mask read by the blur passes:
// lit fragments glow, unlit ones do not.
func SegmentColor(sel Palette, lit bool, pos clockface.Vec2, timestamp float32) clockface.RGBA {
	var c clockface.RGBA
	switch sel {
	case SolidBlue:
		c = solid(clockface.RGB(0.25, 0.55, 1.0), lit)
	case SolidGreen:
		c = solid(clockface.RGB(0.20, 0.95, 0.35), lit)
	case SolidOrange:
		c = solid(clockface.RGB(1.0, 0.55, 0.10), lit)
	case HueFade:
		// One full hue revolution per minute, offset by horizontal
		// position so neighboring digits drift apart in color.
		hue := math32.Mod(timestamp/60*360+pos.X*40, 360)
		if hue < 0 {
			hue += 360
		}
		c = solid(clockface.HSL(hue, 1, 0.5), lit)
	case Waves:
		// Two slow sine fronts sweeping across the face.
		w := 0.5 + 0.25*math32.Sin(pos.X*4+timestamp*2) +
			0.25*math32.Sin(pos.Y*6-timestamp*1.3)
		c = solid(clockface.RGB(w, 0.3+0.5*w, 1-0.6*w), lit)
	default:
		c = solid(clockface.RGB(0.5, 0.5, 0.5), lit)
	}

	if !lit {
		// Unlit islands must not contribute to the glow mask.
		c.A = 0
	}
	return c
}

// NextPalette advances the cycling selector.
func NextPalette(sel Palette) Palette {
	return (sel + 1) % PaletteCount
}
