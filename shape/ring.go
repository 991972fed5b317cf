package shape

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clockface"
)

// RingInfo parameterizes one annular arc draw. Supplied fresh per draw
// call (one per visible ring or arc) and immutable for that draw.
//
// Angle is the clockwise sweep from 12 o'clock: 0 draws nothing but
// the coincident round caps (a dot), 2π a full ring. Values at or
// above 2π are not supported; the host clamps. Thickness must not
// exceed 2*Radius or the inner edge of the band turns inside out.
type RingInfo struct {
	Center    clockface.Vec2
	Radius    float32
	Thickness float32
	Angle     float32
	Divisions uint32
	Color     clockface.PackedRGBA
}

// Strip synthesizes the bounding n-gon band as a triangle strip of
// inner/outer vertex pairs, one pair per division step plus a repeated
// closing pair (2n+2 vertices). The outer vertex uses the
// circumscribed distance for the outer band edge plus guard; the inner
// vertex sits at the inner band edge minus guard with no circumscribing
// correction, since there is no curve to protect on the concave side.
func (r RingInfo) Strip(density float32) []clockface.Vec2 {
	guard := Guarding(density)
	outer := circumscribe(r.Radius+r.Thickness/2+guard, r.Divisions)
	inner := r.Radius - r.Thickness/2 - guard
	step := 2 * math32.Pi / float32(r.Divisions)

	verts := make([]clockface.Vec2, 0, 2*r.Divisions+2)
	for i := uint32(0); i < r.Divisions; i++ {
		a := float32(i) * step
		verts = append(verts,
			ngonVertex(r.Center, a, inner),
			ngonVertex(r.Center, a, outer))
	}
	// Close by repeating the opening pair exactly; recomputing the trig
	// at 2π would land a rounding step away and leave a seam.
	verts = append(verts, verts[0], verts[1])
	return verts
}

// Coverage returns the anti-aliased coverage of the arc at the given
// model-space position.
//
// The fragment's clockwise angle about the center decides which test
// applies: inside the swept sector it is the straight annulus band
// (inner and outer radius smoothsteps multiplied), outside it the two
// round line-cap disks at the arc endpoints, summed and clamped to 1.
// Summing rather than averaging keeps overlapping caps at full opacity
// and lets nearly coincident caps blend without a seam.
func (r RingInfo) Coverage(p clockface.Vec2, density float32) float32 {
	feather := Feather(density)
	rel := p.Sub(r.Center)

	if clockface.ClockAngle(rel) >= math32.Pi-r.Angle {
		dist := rel.Length()
		in := smoothstep(r.Radius-r.Thickness/2-feather, r.Radius-r.Thickness/2, dist)
		out := smoothstep(r.Radius+r.Thickness/2+feather, r.Radius+r.Thickness/2, dist)
		return in * out
	}

	capRadius := r.Thickness / 2
	d0 := rel.Distance(clockface.ClockPoint(0, r.Radius))
	d1 := rel.Distance(clockface.ClockPoint(r.Angle, r.Radius))
	sum := smoothstep(capRadius+feather, capRadius, d0) +
		smoothstep(capRadius+feather, capRadius, d1)
	if sum > 1 {
		return 1
	}
	return sum
}

// Shade returns the fragment color at p: the unpacked draw color
// scaled by coverage in all four channels.
func (r RingInfo) Shade(p clockface.Vec2, density float32) clockface.RGBA {
	return r.Color.Unpack().Scale(r.Coverage(p, density))
}
