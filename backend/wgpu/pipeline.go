package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

//go:embed shaders/terminal.wgsl
var terminalShaderWGSL string

//go:embed shaders/output.wgsl
var outputShaderWGSL string

// workgroupSize is the compute workgroup edge length; dispatches cover
// the output in 8x8 pixel tiles.
const workgroupSize = 8

// compileToSPIRV compiles WGSL source to a SPIR-V word slice.
// SPIR-V is little-endian 32-bit words.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: shader compilation failed: %w", err)
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

// stagePipeline holds the GPU objects for one pipeline stage.
type stagePipeline struct {
	module       hal.ShaderModule
	inputLayout  hal.BindGroupLayout
	outputLayout hal.BindGroupLayout
	layout       hal.PipelineLayout
	pipeline     hal.ComputePipeline
}

// pipelines holds both stages plus the cached SPIR-V for verification.
type pipelines struct {
	device hal.Device

	terminal stagePipeline
	output   stagePipeline

	terminalSPIRV []uint32
	outputSPIRV   []uint32
}

// buildPipelines compiles both stage shaders and creates their compute
// pipelines on the device.
func buildPipelines(device hal.Device) (*pipelines, error) {
	p := &pipelines{device: device}

	var err error
	p.terminalSPIRV, err = compileToSPIRV(terminalShaderWGSL)
	if err != nil {
		return nil, err
	}
	p.outputSPIRV, err = compileToSPIRV(outputShaderWGSL)
	if err != nil {
		return nil, err
	}

	if err := p.buildStage(&p.terminal, "terminal", p.terminalSPIRV, "cs_terminal", terminalInputBindings(), 2); err != nil {
		p.destroy()
		return nil, err
	}
	if err := p.buildStage(&p.output, "output", p.outputSPIRV, "cs_output", outputInputBindings(), 1); err != nil {
		p.destroy()
		return nil, err
	}
	return p, nil
}

// terminalInputBindings returns the group-0 layout entries of the
// terminal stage: config uniform plus five read-only storage buffers.
func terminalInputBindings() []types.BindGroupLayoutEntry {
	entries := []types.BindGroupLayoutEntry{{
		Binding:    0,
		Visibility: types.ShaderStageCompute,
		Buffer: &types.BufferBindingLayout{
			Type:           types.BufferBindingTypeUniform,
			MinBindingSize: terminalConfigSize,
		},
	}}
	for b := uint32(1); b <= 5; b++ {
		entries = append(entries, types.BindGroupLayoutEntry{
			Binding:    b,
			Visibility: types.ShaderStageCompute,
			Buffer: &types.BufferBindingLayout{
				Type: types.BufferBindingTypeReadOnlyStorage,
			},
		})
	}
	return entries
}

// outputInputBindings returns the group-0 layout entries of the output
// stage: config uniform plus the intermediate buffer.
func outputInputBindings() []types.BindGroupLayoutEntry {
	return []types.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: types.ShaderStageCompute,
			Buffer: &types.BufferBindingLayout{
				Type:           types.BufferBindingTypeUniform,
				MinBindingSize: outputConfigSize,
			},
		},
		{
			Binding:    1,
			Visibility: types.ShaderStageCompute,
			Buffer: &types.BufferBindingLayout{
				Type: types.BufferBindingTypeReadOnlyStorage,
			},
		},
	}
}

func (p *pipelines) buildStage(s *stagePipeline, name string, spirv []uint32, entry string, inputs []types.BindGroupLayoutEntry, outputs int) error {
	module, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  name + "_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("wgpu: %s shader module: %w", name, err)
	}
	s.module = module

	inputLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   name + "_input_layout",
		Entries: inputs,
	})
	if err != nil {
		return fmt.Errorf("wgpu: %s input layout: %w", name, err)
	}
	s.inputLayout = inputLayout

	outEntries := make([]types.BindGroupLayoutEntry, outputs)
	for i := range outEntries {
		outEntries[i] = types.BindGroupLayoutEntry{
			Binding:    uint32(i),
			Visibility: types.ShaderStageCompute,
			Buffer: &types.BufferBindingLayout{
				Type: types.BufferBindingTypeStorage,
			},
		}
	}
	outputLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   name + "_output_layout",
		Entries: outEntries,
	})
	if err != nil {
		return fmt.Errorf("wgpu: %s output layout: %w", name, err)
	}
	s.outputLayout = outputLayout

	layout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            name + "_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{s.inputLayout, s.outputLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: %s pipeline layout: %w", name, err)
	}
	s.layout = layout

	pipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  name + "_pipeline",
		Layout: s.layout,
		Compute: hal.ComputeState{
			Module:     s.module,
			EntryPoint: entry,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: %s pipeline: %w", name, err)
	}
	s.pipeline = pipeline
	return nil
}

func (p *pipelines) destroy() {
	p.destroyStage(&p.terminal)
	p.destroyStage(&p.output)
}

func (p *pipelines) destroyStage(s *stagePipeline) {
	if p.device == nil {
		return
	}
	if s.pipeline != nil {
		p.device.DestroyComputePipeline(s.pipeline)
		s.pipeline = nil
	}
	if s.layout != nil {
		p.device.DestroyPipelineLayout(s.layout)
		s.layout = nil
	}
	if s.inputLayout != nil {
		p.device.DestroyBindGroupLayout(s.inputLayout)
		s.inputLayout = nil
	}
	if s.outputLayout != nil {
		p.device.DestroyBindGroupLayout(s.outputLayout)
		s.outputLayout = nil
	}
	if s.module != nil {
		p.device.DestroyShaderModule(s.module)
		s.module = nil
	}
}
