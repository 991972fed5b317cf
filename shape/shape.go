// Package shape provides the ring and disk generators: analytic n-gon
// geometry synthesized in the vertex stage from a compact parameter
// block, with the true curved silhouette resolved in the fragment stage
// by distance-field smoothstep tests. No curve is ever tessellated into
// many small triangles; the polygon only bounds the region the fragment
// stage shades.
package shape

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/clockface"
)

// guardScale and smoothScale were obtained via trial and error against
// reference captures; treat them as configuration, not derivation.
//
// guardScale sets the margin (in pixels) by which the bounding n-gon is
// inflated past the true shape radius, so the polygon silhouette never
// cuts into the anti-aliased curve. smoothScale sets the feather band
// width (in pixels) of the fragment-stage smoothstep.
const (
	guardScale  = 2.0
	smoothScale = 1.5
)

// Guarding returns the n-gon inflation margin in model units for the
// given density.
func Guarding(density float32) float32 { return guardScale / density }

// Feather returns the anti-aliasing band width in model units for the
// given density. Dividing by density keeps the band a constant number
// of physical pixels wide regardless of logical scale.
func Feather(density float32) float32 { return smoothScale / density }

// smoothstep is the GLSL/WGSL smoothstep: a Hermite ramp from 0 at
// edge0 to 1 at edge1. Callers pass edge0 > edge1 to get the reversed
// ramp (1 inside, 0 outside).
func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// fanIndex maps strip vertex i to the signed fan step, yielding the
// sequence 0, 1, -1, 2, -2, ... so a triangle strip sweeps the polygon
// without fan topology. The caller's division count must be even for
// the strip to close.
func fanIndex(i uint32) float32 {
	s := float32((i + 1) / 2)
	if i%2 == 0 {
		return -s
	}
	return s
}

// ngonVertex returns the vertex at the given clockwise angle and
// center distance, in model space about center.
func ngonVertex(center clockface.Vec2, angle, dist float32) clockface.Vec2 {
	return center.Add(clockface.ClockPoint(angle, dist))
}

// circumscribe returns the center-to-vertex distance of a regular
// n-gon whose inscribed circle has the given radius. Placing vertices
// at this distance guarantees every polygon edge stays outside the
// circle.
func circumscribe(radius float32, divisions uint32) float32 {
	return radius / math32.Cos(math32.Pi/float32(divisions))
}
