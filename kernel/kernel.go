// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/kernelbridge"
)

// Validation errors returned by [Kernel.Validate].
var (
	// ErrNoName reports a kernel without a name.
	ErrNoName = errors.New("kernel: kernel has no name")

	// ErrDuplicateParameter reports two parameter slots sharing a name.
	ErrDuplicateParameter = errors.New("kernel: duplicate parameter name")

	// ErrInvalidKind reports a parameter slot with no valid shape.
	ErrInvalidKind = errors.New("kernel: parameter has invalid kind")

	// ErrDefaultKindMismatch reports a default value whose shape differs
	// from the declared parameter shape.
	ErrDefaultKindMismatch = errors.New("kernel: default value kind does not match parameter kind")
)

// Parameter is one shader parameter slot: a name, the shape the shader
// expects there, and an optional default used when the caller supplies
// no argument.
type Parameter struct {
	Name    string
	Kind    kernelbridge.Kind
	Default kernelbridge.Value
}

// Kernel is the metadata for one shader kernel.
//
// Params is ordered; the order fixes the uniform block layout produced
// by [Args.PackUniforms]. Kernel is plain data and safe to share between
// goroutines once constructed.
type Kernel struct {
	// Name identifies the kernel in logs and error messages.
	Name string

	// Source is the kernel's WGSL source.
	Source string

	// Params are the parameter slots the shader declares, in layout order.
	Params []Parameter

	// OutputFormat is the texture format the kernel renders into.
	OutputFormat gputypes.TextureFormat
}

// Param returns the slot with the given name.
func (k *Kernel) Param(name string) (Parameter, bool) {
	for _, p := range k.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Validate checks the kernel metadata: a non-empty name, distinct
// parameter names, valid shapes, and defaults that match their slot.
func (k *Kernel) Validate() error {
	if k.Name == "" {
		return ErrNoName
	}
	seen := make(map[string]bool, len(k.Params))
	for _, p := range k.Params {
		if p.Kind.Arity() == 0 {
			return fmt.Errorf("%w: %q", ErrInvalidKind, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateParameter, p.Name)
		}
		seen[p.Name] = true
		if p.Default != nil && p.Default.Kind() != p.Kind {
			return fmt.Errorf("%w: %q declared %s, default is %s",
				ErrDefaultKindMismatch, p.Name, p.Kind, p.Default.Kind())
		}
	}
	return nil
}
