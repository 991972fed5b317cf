package shape

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clockface"
)

// DefaultDivisions is the n-gon segment count used by the stock clock
// faces. Raising it tightens the bounding polygon and wastes fewer
// fragment invocations, but also produces thin triangles that
// rasterize poorly; a dodecagon is a good trade for clock-scale
// shapes.
const DefaultDivisions = 12

// DiskInfo parameterizes one filled disk draw. Supplied fresh per draw
// call and immutable for that draw.
//
// Divisions must be even: the alternating-sign fan strip only closes
// on an even vertex count. Odd values leave a pie-slice gap, a visual
// defect rather than an error.
type DiskInfo struct {
	Center    clockface.Vec2
	Radius    float32
	Divisions uint32
	Color     clockface.PackedRGBA
}

// Strip synthesizes the bounding n-gon as a triangle strip, one vertex
// per division. Vertex i sits at the signed fan angle, at the
// circumscribed distance for Radius plus the density guard margin, so
// the polygon fully contains the curve the fragment stage resolves.
func (d DiskInfo) Strip(density float32) []clockface.Vec2 {
	step := 2 * math32.Pi / float32(d.Divisions)
	dist := circumscribe(d.Radius+Guarding(density), d.Divisions)

	verts := make([]clockface.Vec2, d.Divisions)
	for i := uint32(0); i < d.Divisions; i++ {
		verts[i] = ngonVertex(d.Center, fanIndex(i)*step, dist)
	}
	return verts
}

// Coverage returns the anti-aliased coverage of the disk at the given
// model-space position: 1 strictly inside Radius, 0 strictly outside
// Radius plus the feather band, with a Hermite ramp between.
func (d DiskInfo) Coverage(p clockface.Vec2, density float32) float32 {
	dist := p.Distance(d.Center)
	return smoothstep(d.Radius+Feather(density), d.Radius, dist)
}

// Shade returns the fragment color at p: the unpacked draw color
// scaled by coverage in all four channels.
func (d DiskInfo) Shade(p clockface.Vec2, density float32) clockface.RGBA {
	return d.Color.Unpack().Scale(d.Coverage(p, density))
}
