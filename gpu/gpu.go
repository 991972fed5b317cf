// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu builds the WebGPU resources for the clock-face
// pipelines: WGSL shader modules compiled through naga, plus the bind
// group and pipeline layouts each program binds. Device acquisition,
// buffer uploads and render-pass encoding stay host concerns.
package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/clockface"
)

//go:embed shaders/ring.wgsl
var ringShaderWGSL string

//go:embed shaders/disk.wgsl
var diskShaderWGSL string

//go:embed shaders/wheel.wgsl
var wheelShaderWGSL string

//go:embed shaders/segment.wgsl
var segmentShaderWGSL string

//go:embed shaders/filter.wgsl
var filterShaderWGSL string

//go:embed shaders/portal.wgsl
var portalShaderWGSL string

// Program is one compiled pipeline program: its shader module and the
// layouts a render pipeline over it must use. The host assembles the
// pipeline itself (color target format and blend state are surface
// decisions).
type Program struct {
	Module           hal.ShaderModule
	BindGroupLayouts []hal.BindGroupLayout
	PipelineLayout   hal.PipelineLayout
}

// Pipelines holds every clock-face program, compiled once per device.
type Pipelines struct {
	Ring    *Program
	Disk    *Program
	Wheel   *Program
	Segment *Program
	Filter  *Program
	Portal  *Program

	device hal.Device
}

// NewPipelines compiles all shader programs and creates their layouts
// on the given device.
func NewPipelines(device hal.Device) (*Pipelines, error) {
	if device == nil {
		return nil, fmt.Errorf("gpu: device is required")
	}
	p := &Pipelines{device: device}

	log := clockface.Logger()
	build := func(dst **Program, name, wgsl string, groups [][]types.BindGroupLayoutEntry) error {
		prog, err := p.buildProgram(name, wgsl, groups)
		if err != nil {
			return err
		}
		log.Info("gpu: compiled program", "program", name)
		*dst = prog
		return nil
	}

	uniformPair := [][]types.BindGroupLayoutEntry{{
		uniformEntry(0, types.ShaderStageVertex|types.ShaderStageFragment),
		uniformEntry(1, types.ShaderStageVertex|types.ShaderStageFragment),
	}}

	if err := build(&p.Ring, "ring", ringShaderWGSL, uniformPair); err != nil {
		return nil, err
	}
	if err := build(&p.Disk, "disk", diskShaderWGSL, uniformPair); err != nil {
		return nil, err
	}
	if err := build(&p.Wheel, "wheel", wheelShaderWGSL, [][]types.BindGroupLayoutEntry{{
		uniformEntry(0, types.ShaderStageVertex),
		uniformEntry(1, types.ShaderStageVertex),
		textureEntry(2, types.ShaderStageFragment),
		samplerEntry(3, types.ShaderStageFragment),
	}}); err != nil {
		return nil, err
	}
	if err := build(&p.Segment, "segment", segmentShaderWGSL, [][]types.BindGroupLayoutEntry{
		{
			textureEntry(0, types.ShaderStageFragment),
			samplerEntry(1, types.ShaderStageFragment),
		},
		{
			uniformEntry(0, types.ShaderStageVertex|types.ShaderStageFragment),
			uniformEntry(1, types.ShaderStageVertex|types.ShaderStageFragment),
		},
	}); err != nil {
		return nil, err
	}
	if err := build(&p.Filter, "filter", filterShaderWGSL, [][]types.BindGroupLayoutEntry{
		{
			textureEntry(0, types.ShaderStageFragment),
			samplerEntry(1, types.ShaderStageFragment),
		},
		{
			readOnlyStorageEntry(0, types.ShaderStageFragment),
			uniformEntry(1, types.ShaderStageFragment),
		},
		{
			textureEntry(0, types.ShaderStageFragment),
			samplerEntry(1, types.ShaderStageFragment),
		},
	}); err != nil {
		return nil, err
	}
	if err := build(&p.Portal, "portal", portalShaderWGSL, [][]types.BindGroupLayoutEntry{
		{
			uniformEntry(0, types.ShaderStageVertex),
			uniformEntry(1, types.ShaderStageVertex),
		},
		{
			textureEntry(0, types.ShaderStageFragment),
			samplerEntry(1, types.ShaderStageFragment),
		},
	}); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pipelines) buildProgram(name, wgsl string, groups [][]types.BindGroupLayoutEntry) (*Program, error) {
	spirv, err := CompileWGSL(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile %s shader: %w", name, err)
	}

	module, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  name + "_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to create %s shader module: %w", name, err)
	}

	layouts := make([]hal.BindGroupLayout, 0, len(groups))
	for i, entries := range groups {
		layout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("%s_group%d_layout", name, i),
			Entries: entries,
		})
		if err != nil {
			return nil, fmt.Errorf("gpu: failed to create %s bind group layout %d: %w", name, i, err)
		}
		layouts = append(layouts, layout)
	}

	pipelineLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            name + "_pipeline_layout",
		BindGroupLayouts: layouts,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to create %s pipeline layout: %w", name, err)
	}

	return &Program{
		Module:           module,
		BindGroupLayouts: layouts,
		PipelineLayout:   pipelineLayout,
	}, nil
}

// CompileWGSL compiles a WGSL source to SPIR-V words.
func CompileWGSL(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

func uniformEntry(binding uint32, visibility types.ShaderStage) types.BindGroupLayoutEntry {
	return types.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer: &types.BufferBindingLayout{
			Type: types.BufferBindingTypeUniform,
		},
	}
}

func readOnlyStorageEntry(binding uint32, visibility types.ShaderStage) types.BindGroupLayoutEntry {
	return types.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer: &types.BufferBindingLayout{
			Type: types.BufferBindingTypeReadOnlyStorage,
		},
	}
}

func textureEntry(binding uint32, visibility types.ShaderStage) types.BindGroupLayoutEntry {
	return types.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Texture: &types.TextureBindingLayout{
			SampleType:    types.TextureSampleTypeFloat,
			ViewDimension: types.TextureViewDimension2D,
		},
	}
}

func samplerEntry(binding uint32, visibility types.ShaderStage) types.BindGroupLayoutEntry {
	return types.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Sampler: &types.SamplerBindingLayout{
			Type: types.SamplerBindingTypeFiltering,
		},
	}
}
