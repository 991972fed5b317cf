// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/clockface"

// GPU-side uniform layouts. Field order and padding must match the
// structs declared in the corresponding WGSL sources.

// GPUDrawspaceScales matches DrawspaceScales in ring.wgsl, disk.wgsl
// and segment.wgsl.
type GPUDrawspaceScales struct {
	ScaleX, ScaleY           float32
	ExtentX, ExtentY         float32
	ResolutionX, ResolutionY float32
	Density                  float32
	Pad                      float32
}

// NewGPUDrawspaceScales converts host scales to the uniform layout.
func NewGPUDrawspaceScales(d clockface.DrawspaceScales) GPUDrawspaceScales {
	return GPUDrawspaceScales{
		ScaleX: d.Scale.X, ScaleY: d.Scale.Y,
		ExtentX: d.Extent.X, ExtentY: d.Extent.Y,
		ResolutionX: d.Resolution.X, ResolutionY: d.Resolution.Y,
		Density: d.Density,
	}
}

// GPURingInfo matches RingInfo in ring.wgsl.
type GPURingInfo struct {
	CenterX, CenterY float32
	Radius           float32
	Thickness        float32
	Angle            float32
	Divisions        uint32
	Color            uint32
	Pad              uint32
}

// GPUDiskInfo matches DiskInfo in disk.wgsl.
type GPUDiskInfo struct {
	CenterX, CenterY float32
	Radius           float32
	Divisions        uint32
	Color            uint32
	Pad1, Pad2, Pad3 uint32
}

// GPUClockData matches ClockData in segment.wgsl.
type GPUClockData struct {
	Flagset   [2]uint32
	Selector  uint32
	Timestamp float32
}

// GPUWheelAngles matches WheelAngles in wheel.wgsl: six angles padded
// into two vec4s.
type GPUWheelAngles struct {
	Angles [8]float32
}

// NewGPUWheelAngles packs the six live wheel rotations.
func NewGPUWheelAngles(live [6]float32) GPUWheelAngles {
	var a GPUWheelAngles
	copy(a.Angles[:], live[:])
	return a
}

// GPUBlurTap matches BlurTap in filter.wgsl.
type GPUBlurTap struct {
	Weight float32
	Offset float32
}

// GPUFilterParams matches FilterParams in filter.wgsl.
type GPUFilterParams struct {
	TapCount uint32
	Vertical uint32
}
