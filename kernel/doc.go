// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package kernel describes shader kernels and binds script-supplied
// arguments to their parameters.
//
// A [Kernel] carries WGSL source, an output texture format, and the
// ordered list of [Parameter] slots the shader declares. [Kernel.Bind]
// decodes a set of host values against those slots through the
// kernelbridge conversion rules; each parameter binds (or fails)
// independently, so one malformed argument never blocks the rest.
//
// Bound arguments can be packed into a std140 uniform block with
// [Args.PackUniforms] and uploaded to a GPU device via [UploadUniforms].
// Kernel sources compile to SPIR-V with [CompileToSPIRV].
package kernel
