// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/clockface"
)

// Target is a pixmap-backed offscreen render destination, format
// tagged so the GPU path can allocate a matching texture. Passes
// ping-pong between targets: one pass's write is the next pass's
// sampled read.
type Target struct {
	Color *clockface.Pixmap

	// Depth is the optional depth buffer, one float per pixel, used by
	// the perspective pipelines. Nil for pure 2D targets.
	Depth []float32

	format gputypes.TextureFormat
	name   string
}

// NewTarget creates a color-only target.
func NewTarget(name string, width, height int) *Target {
	return &Target{
		Color:  clockface.NewPixmap(width, height),
		format: gputypes.TextureFormatRGBA8Unorm,
		name:   name,
	}
}

// NewDepthTarget creates a target with both a color and a depth
// attachment.
func NewDepthTarget(name string, width, height int) *Target {
	t := NewTarget(name, width, height)
	t.Depth = make([]float32, width*height)
	return t
}

// Name identifies the target in graph validation errors.
func (t *Target) Name() string { return t.name }

// Width returns the target width in pixels.
func (t *Target) Width() int { return t.Color.Width() }

// Height returns the target height in pixels.
func (t *Target) Height() int { return t.Color.Height() }

// Format returns the pixel format of the target.
func (t *Target) Format() gputypes.TextureFormat { return t.format }

// ClearColor fills the color attachment, the software analogue of a
// LoadOp clear.
func (t *Target) ClearColor(c clockface.RGBA) { t.Color.Clear(c) }

// ClearDepth resets the depth attachment to the far plane.
func (t *Target) ClearDepth() {
	for i := range t.Depth {
		t.Depth[i] = 1
	}
}

// DepthAt returns the stored depth for a pixel, or 1 when the target
// has no depth attachment.
func (t *Target) DepthAt(x, y int) float32 {
	if t.Depth == nil {
		return 1
	}
	return t.Depth[y*t.Width()+x]
}

func (t *Target) setDepth(x, y int, d float32) {
	if t.Depth != nil {
		t.Depth[y*t.Width()+x] = d
	}
}
