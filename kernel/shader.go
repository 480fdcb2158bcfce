// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/kernelbridge"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application owns the device and queue; this package only
// borrows them to create shader modules and uniform buffers. DeviceHandle
// is an alias for gpucontext.DeviceProvider, keeping full compatibility
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNilDevice reports a nil HAL device passed to a GPU helper.
var ErrNilDevice = errors.New("kernel: nil device")

// ErrEmptyUniforms reports an empty uniform block passed to UploadUniforms.
var ErrEmptyUniforms = errors.New("kernel: empty uniform block")

// CompileToSPIRV compiles the kernel's WGSL source to SPIR-V words.
func (k *Kernel) CompileToSPIRV() ([]uint32, error) {
	spirvBytes, err := naga.Compile(k.Source)
	if err != nil {
		return nil, fmt.Errorf("kernel %q: compile failed: %w", k.Name, err)
	}

	// SPIR-V is little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	kernelbridge.Logger().Debug("kernel: compiled WGSL to SPIR-V",
		"kernel", k.Name, "words", len(code))
	return code, nil
}

// NewShaderModule creates a HAL shader module from compiled SPIR-V code.
func NewShaderModule(device hal.Device, label string, code []uint32) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
}

// UploadUniforms creates a uniform buffer on the device and writes the
// packed block into it. The caller owns the returned buffer and must
// destroy it when the dispatch that uses it has completed.
func UploadUniforms(device hal.Device, queue hal.Queue, label string, data []byte) (hal.Buffer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if len(data) == 0 {
		return nil, ErrEmptyUniforms
	}
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("kernel: uniform buffer creation failed: %w", err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
