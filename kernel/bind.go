// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import (
	"errors"
	"fmt"

	"github.com/gogpu/kernelbridge"
	"github.com/gogpu/kernelbridge/hostval"
)

// Binding errors. Each failed parameter is reported as a [*BindError]
// wrapping one of these (or a kernelbridge decode error).
var (
	// ErrMissingArgument reports a parameter with no argument and no default.
	ErrMissingArgument = errors.New("kernel: no argument and no default for parameter")

	// ErrUnknownParameter reports an argument name the kernel does not declare.
	ErrUnknownParameter = errors.New("kernel: unknown parameter")
)

// BindError describes one parameter that failed to bind.
type BindError struct {
	Param string
	Err   error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %q: %v", e.Param, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// Args holds the successfully bound arguments of one Bind call.
type Args struct {
	kernel *Kernel
	values map[string]kernelbridge.Value
}

// Bind decodes each supplied argument against its declared parameter
// shape.
//
// Parameters bind independently: a malformed argument fails only its own
// slot, and every failure is reported (joined into the returned error)
// while the remaining parameters still bind. A parameter with no
// argument falls back to its default; with no default it fails with
// [ErrMissingArgument]. Argument names the kernel does not declare fail
// with [ErrUnknownParameter].
//
// The returned Args always covers every parameter that bound, even when
// err is non-nil, so callers can choose between all-or-nothing and
// best-effort binding.
func (k *Kernel) Bind(args map[string]hostval.Value) (*Args, error) {
	bound := &Args{kernel: k, values: make(map[string]kernelbridge.Value, len(k.Params))}
	var errs []error

	for _, p := range k.Params {
		arg, ok := args[p.Name]
		if !ok {
			if p.Default == nil {
				errs = append(errs, &BindError{Param: p.Name, Err: ErrMissingArgument})
				continue
			}
			bound.values[p.Name] = p.Default
			continue
		}
		v, err := kernelbridge.Decode(arg, p.Kind)
		if err != nil {
			kernelbridge.Logger().Warn("kernel: parameter failed to bind",
				"kernel", k.Name, "param", p.Name, "kind", p.Kind, "err", err)
			errs = append(errs, &BindError{Param: p.Name, Err: err})
			continue
		}
		bound.values[p.Name] = v
	}

	for name := range args {
		if _, ok := k.Param(name); !ok {
			errs = append(errs, &BindError{Param: name, Err: ErrUnknownParameter})
		}
	}

	return bound, errors.Join(errs...)
}

// Len returns the number of bound parameters.
func (a *Args) Len() int { return len(a.values) }

// Value returns the bound value for the named parameter.
func (a *Args) Value(name string) (kernelbridge.Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Read encodes the named bound value back into the host's value space,
// allocating through the arena. For scalar int parameters intAsScalar
// selects between a bare host integer and a one-element array. The
// second result is false when the parameter never bound.
func (a *Args) Read(arena *hostval.Arena, name string, intAsScalar bool) (hostval.Value, bool) {
	v, ok := a.values[name]
	if !ok {
		return hostval.Undefined, false
	}
	return kernelbridge.Encode(arena, v, intAsScalar), true
}
