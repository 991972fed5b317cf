// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/gogpu/clockface"
	"github.com/gogpu/clockface/shape"
)

func TestFillStrip2DQuad(t *testing.T) {
	target := NewTarget("t", 64, 64)
	scales := clockface.NewDrawspaceScales(clockface.V2(64, 64), clockface.V2(1, 1))

	// A unit quad centered on the origin covers the middle of the
	// target.
	strip := []clockface.Vec2{
		clockface.V2(-0.5, 0.5),
		clockface.V2(-0.5, -0.5),
		clockface.V2(0.5, 0.5),
		clockface.V2(0.5, -0.5),
	}
	red := func(clockface.Vec2) clockface.RGBA { return clockface.RGB(1, 0, 0) }
	FillStrip2D(target, strip, scales, red, BlendReplace)

	if got := target.Color.GetPixel(32, 32); got.R < 0.9 {
		t.Errorf("center pixel = %+v, want red", got)
	}
	if got := target.Color.GetPixel(2, 2); got.R > 0.1 {
		t.Errorf("corner pixel = %+v, want empty", got)
	}
}

// TestRedSemicircleEndToEnd drives a full ring draw: vertex stage
// strip, fragment stage coverage, rasterized into a pixmap target. A
// red semicircular arc with round caps must appear with its edges
// anti-aliased at the density-scaled feather width.
func TestRedSemicircleEndToEnd(t *testing.T) {
	const size = 256
	target := NewTarget("face", size, size)
	scales := clockface.NewDrawspaceScales(clockface.V2(size, size), clockface.V2(16, 16))

	ring := shape.RingInfo{
		Center:    clockface.V2(0, 0),
		Radius:    10,
		Thickness: 2.4,
		Angle:     math.Pi,
		Divisions: shape.DefaultDivisions,
		Color:     clockface.Pack(255, 0, 0, 255),
	}

	FillStrip2D(target, ring.Strip(scales.Density), scales,
		func(p clockface.Vec2) clockface.RGBA { return ring.Shade(p, scales.Density) },
		BlendSourceOver)

	probe := func(p clockface.Vec2) clockface.RGBA {
		px := scales.ToPixel(p)
		return target.Color.GetPixel(int(px.X), int(px.Y))
	}

	// Centerline mid-sweep (3 o'clock) is solid red.
	if got := probe(clockface.ClockPoint(math.Pi/2, ring.Radius)); got.R < 0.95 {
		t.Errorf("3 o'clock centerline = %+v, want solid red", got)
	}
	// The non-swept side (9 o'clock) is untouched.
	if got := probe(clockface.ClockPoint(3*math.Pi/2, ring.Radius)); got.R > 0.05 {
		t.Errorf("9 o'clock = %+v, want empty", got)
	}
	// The round cap extends past the sweep end at 6 o'clock.
	if got := probe(clockface.ClockPoint(math.Pi+0.05, ring.Radius)); got.R < 0.9 {
		t.Errorf("cap past sweep end = %+v, want red", got)
	}
	// Inside the hole.
	if got := probe(clockface.V2(0, 0)); got.R > 0.05 {
		t.Errorf("ring hole center = %+v, want empty", got)
	}
	// The outer edge is feathered: walking radially outward at
	// 3 o'clock, coverage falls from full to zero within a few pixels.
	edge := ring.Radius + ring.Thickness/2
	inside := probe(clockface.V2(edge-0.3, 0))
	outside := probe(clockface.V2(edge+shape.Feather(scales.Density)+0.1, 0))
	if inside.R < 0.9 {
		t.Errorf("just inside outer edge = %+v, want red", inside)
	}
	if outside.R > 0.05 {
		t.Errorf("past feather = %+v, want empty", outside)
	}
}

func TestDrawStrip3DDepthTest(t *testing.T) {
	target := NewDepthTarget("t", 32, 32)
	target.ClearDepth()

	fullscreen := func(z, w float32) []Vertex3D {
		mk := func(x, y float32) Vertex3D {
			return Vertex3D{Clip: Vec4{x * w, y * w, z * w, w}}
		}
		return []Vertex3D{mk(-1, 1), mk(-1, -1), mk(1, 1), mk(1, -1)}
	}

	red := func(clockface.Vec2, float32) clockface.RGBA { return clockface.RGB(1, 0, 0) }
	green := func(clockface.Vec2, float32) clockface.RGBA { return clockface.RGB(0, 1, 0) }

	// Near quad first, far quad second: the far quad must lose the
	// depth test everywhere.
	DrawStrip3D(target, fullscreen(0.25, 1), red, BlendReplace)
	DrawStrip3D(target, fullscreen(0.75, 1), green, BlendReplace)

	got := target.Color.GetPixel(16, 16)
	if got.R < 0.9 || got.G > 0.1 {
		t.Errorf("center = %+v, want red (near quad wins)", got)
	}
}

func TestDrawStrip3DPerspectiveUV(t *testing.T) {
	target := NewDepthTarget("t", 64, 64)
	target.ClearDepth()

	// A fullscreen quad at uniform w interpolates UVs linearly; check
	// the corners land in the right cells.
	verts := []Vertex3D{
		{Clip: Vec4{-1, 1, 0.5, 1}, UV: clockface.V2(0, 0)},
		{Clip: Vec4{-1, -1, 0.5, 1}, UV: clockface.V2(0, 1)},
		{Clip: Vec4{1, 1, 0.5, 1}, UV: clockface.V2(1, 0)},
		{Clip: Vec4{1, -1, 0.5, 1}, UV: clockface.V2(1, 1)},
	}
	frag := func(uv clockface.Vec2, _ float32) clockface.RGBA {
		return clockface.RGBA{R: uv.X, G: uv.Y, A: 1}
	}
	DrawStrip3D(target, verts, frag, BlendReplace)

	tl := target.Color.GetPixel(2, 2)
	br := target.Color.GetPixel(61, 61)
	if tl.R > 0.1 || tl.G > 0.1 {
		t.Errorf("top-left = %+v, want UV near (0,0)", tl)
	}
	if br.R < 0.9 || br.G < 0.9 {
		t.Errorf("bottom-right = %+v, want UV near (1,1)", br)
	}
}

func TestDrawStrip3DRejectsBehindCamera(t *testing.T) {
	target := NewDepthTarget("t", 16, 16)
	target.ClearDepth()

	verts := []Vertex3D{
		{Clip: Vec4{-1, 1, 0, -1}},
		{Clip: Vec4{-1, -1, 0, -1}},
		{Clip: Vec4{1, 1, 0, -1}},
	}
	frag := func(clockface.Vec2, float32) clockface.RGBA { return clockface.RGB(1, 1, 1) }
	DrawStrip3D(target, verts, frag, BlendReplace)

	if got := target.Color.GetPixel(8, 8); got.R != 0 {
		t.Errorf("triangle behind camera drew pixels: %+v", got)
	}
}
