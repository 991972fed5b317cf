package clockface

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Scale multiplies all four components by s.
func (c RGBA) Scale(s float32) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// PackedRGBA is a color packed into a single 32-bit value with byte
// order R, G, B, A from most to least significant byte. This is the
// wire form parameter blocks carry; pipelines unpack it once per draw.
type PackedRGBA uint32

// Pack packs four 8-bit channels into a PackedRGBA.
func Pack(r, g, b, a uint8) PackedRGBA {
	return PackedRGBA(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Channels returns the four 8-bit channels of the packed color.
func (p PackedRGBA) Channels() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Unpack expands the packed color to floating-point components by
// dividing each byte by 255.
func (p PackedRGBA) Unpack() RGBA {
	const scale = 1.0 / 255.0
	r, g, b, a := p.Channels()
	return RGBA{
		R: float32(r) * scale,
		G: float32(g) * scale,
		B: float32(b) * scale,
		A: float32(a) * scale,
	}
}

// LerpPacked interpolates two packed colors per channel. Each channel
// is widened to float, blended, and truncated back to 8 bits, so
// t=0 reproduces c0 and t=1 reproduces c1 exactly.
func LerpPacked(c0, c1 PackedRGBA, t float64) PackedRGBA {
	r0, g0, b0, a0 := c0.Channels()
	r1, g1, b1, a1 := c1.Channels()

	lerp := func(x0, x1 uint8) uint8 {
		return uint8((1.0-t)*float64(x0) + t*float64(x1))
	}

	return Pack(lerp(r0, r1), lerp(g0, g1), lerp(b0, b1), lerp(a0, a1))
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float32) RGBA {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math32.Abs(2*l-1)) * s
	x := c * (1 - math32.Abs(math32.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float32
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
