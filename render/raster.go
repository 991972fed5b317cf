// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/clockface"
)

// FillStrip2D rasterizes a model-space triangle strip into the target,
// invoking shade once per covered pixel with the pixel center's
// model-space position. This is the software analogue of the 2D shape
// pipelines: the strip is the bounding n-gon, shade the fragment
// stage.
func FillStrip2D(t *Target, strip []clockface.Vec2, scales clockface.DrawspaceScales,
	shade func(clockface.Vec2) clockface.RGBA, mode BlendMode) {

	for i := 0; i+3 <= len(strip); i++ {
		a := scales.ToPixel(strip[i])
		b := scales.ToPixel(strip[i+1])
		c := scales.ToPixel(strip[i+2])
		fillTriangle2D(t, a, b, c, scales, shade, mode)
	}
}

// FillTriangle2D rasterizes a single model-space triangle. Indexed
// meshes (the segment face) call this once per index triple; flat
// per-triangle attributes are baked into the shade closure.
func FillTriangle2D(t *Target, a, b, c clockface.Vec2, scales clockface.DrawspaceScales,
	shade func(clockface.Vec2) clockface.RGBA, mode BlendMode) {
	fillTriangle2D(t, scales.ToPixel(a), scales.ToPixel(b), scales.ToPixel(c), scales, shade, mode)
}

func fillTriangle2D(t *Target, a, b, c clockface.Vec2, scales clockface.DrawspaceScales,
	shade func(clockface.Vec2) clockface.RGBA, mode BlendMode) {

	area := edge(a, b, c)
	if area == 0 {
		return
	}
	// Normalize winding so the edge tests below are sign-stable for
	// both strip parities.
	if area < 0 {
		b, c = c, b
		area = -area
	}

	minX, minY, maxX, maxY := bounds(t, a, b, c)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := clockface.V2(float32(x)+0.5, float32(y)+0.5)
			if edge(a, b, p) < 0 || edge(b, c, p) < 0 || edge(c, a, p) < 0 {
				continue
			}
			src := shade(scales.FromPixel(p))
			if src.A == 0 && src.R == 0 && src.G == 0 && src.B == 0 {
				continue
			}
			dst := t.Color.GetPixel(x, y)
			t.Color.SetPixel(x, y, blend(mode, src, dst))
		}
	}
}

// Vertex3D is one vertex of a perspective triangle after the vertex
// stage: clip-space position plus the varyings the fragment stage
// interpolates.
type Vertex3D struct {
	Clip Vec4
	UV   clockface.Vec2
	// Shade is a free scalar varying (the wheel face uses it for the
	// equator darkening factor).
	Shade float32
}

// DrawStrip3D rasterizes a clip-space triangle strip with
// perspective-correct varying interpolation and a less-than depth
// test, invoking frag per covered surviving pixel. Triangles touching
// the plane w <= 0 are dropped rather than clipped; the clock scenes
// keep their geometry well inside the frustum.
func DrawStrip3D(t *Target, verts []Vertex3D,
	frag func(uv clockface.Vec2, shade float32) clockface.RGBA, mode BlendMode) {

	for i := 0; i+3 <= len(verts); i++ {
		drawTriangle3D(t, verts[i], verts[i+1], verts[i+2], frag, mode)
	}
}

type screenVertex struct {
	pos   clockface.Vec2
	z     float32 // NDC depth
	invW  float32
	uoW   float32 // u / w
	voW   float32
	soW   float32
}

func drawTriangle3D(t *Target, v0, v1, v2 Vertex3D,
	frag func(uv clockface.Vec2, shade float32) clockface.RGBA, mode BlendMode) {

	if v0.Clip.W <= 0 || v1.Clip.W <= 0 || v2.Clip.W <= 0 {
		return
	}

	w := float32(t.Width())
	h := float32(t.Height())
	project := func(v Vertex3D) screenVertex {
		invW := 1 / v.Clip.W
		ndcX := v.Clip.X * invW
		ndcY := v.Clip.Y * invW
		return screenVertex{
			pos: clockface.V2(
				(ndcX*0.5+0.5)*w,
				(0.5-ndcY*0.5)*h),
			z:    v.Clip.Z * invW,
			invW: invW,
			uoW:  v.UV.X * invW,
			voW:  v.UV.Y * invW,
			soW:  v.Shade * invW,
		}
	}
	s0, s1, s2 := project(v0), project(v1), project(v2)

	area := edge(s0.pos, s1.pos, s2.pos)
	if area == 0 {
		return
	}
	if area < 0 {
		s1, s2 = s2, s1
		area = -area
	}

	minX, minY, maxX, maxY := bounds(t, s0.pos, s1.pos, s2.pos)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := clockface.V2(float32(x)+0.5, float32(y)+0.5)
			w0 := edge(s1.pos, s2.pos, p)
			w1 := edge(s2.pos, s0.pos, p)
			w2 := edge(s0.pos, s1.pos, p)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			b0 := w0 / area
			b1 := w1 / area
			b2 := w2 / area

			depth := b0*s0.z + b1*s1.z + b2*s2.z
			if depth >= t.DepthAt(x, y) {
				continue
			}

			invW := b0*s0.invW + b1*s1.invW + b2*s2.invW
			uv := clockface.V2(
				(b0*s0.uoW+b1*s1.uoW+b2*s2.uoW)/invW,
				(b0*s0.voW+b1*s1.voW+b2*s2.voW)/invW)
			shade := (b0*s0.soW + b1*s1.soW + b2*s2.soW) / invW

			src := frag(uv, shade)
			if src.A == 0 {
				continue
			}
			t.setDepth(x, y, depth)
			dst := t.Color.GetPixel(x, y)
			t.Color.SetPixel(x, y, blend(mode, src, dst))
		}
	}
}

// edge is the signed doubled area of triangle abc; its sign tells
// which side of ab the point c lies on.
func edge(a, b, c clockface.Vec2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func bounds(t *Target, a, b, c clockface.Vec2) (minX, minY, maxX, maxY int) {
	minXf := min3(a.X, b.X, c.X)
	minYf := min3(a.Y, b.Y, c.Y)
	maxXf := max3(a.X, b.X, c.X)
	maxYf := max3(a.Y, b.Y, c.Y)

	minX = clampInt(int(minXf), 0, t.Width()-1)
	minY = clampInt(int(minYf), 0, t.Height()-1)
	maxX = clampInt(int(maxXf)+1, 0, t.Width()-1)
	maxY = clampInt(int(maxYf)+1, 0, t.Height()-1)
	return
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
