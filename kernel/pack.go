// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package kernel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/kernelbridge"
)

// ErrUnboundParameter reports a numeric parameter that has no bound
// value at packing time.
var ErrUnboundParameter = errors.New("kernel: parameter not bound")

// PackUniforms lays the bound numeric parameters out as a std140 uniform
// block, in the kernel's declared parameter order.
//
// Layout follows the std140 rules: scalars are 4 bytes with 4-byte
// alignment, 2-wide vectors align to 8, 3- and 4-wide vectors align to
// 16, and matrices are arrays of column vectors with a 16-byte stride.
// Int lanes are widened to i32; the row-major matrix payloads are
// transposed into column-major GPU order. String parameters carry no
// uniform data and are skipped. The block size is rounded up to 16
// bytes.
//
// Every numeric parameter must be bound; a missing one fails with
// [ErrUnboundParameter].
func (a *Args) PackUniforms() ([]byte, error) {
	var buf []byte
	for _, p := range a.kernel.Params {
		if p.Kind == kernelbridge.KindString {
			continue
		}
		v, ok := a.values[p.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnboundParameter, p.Name)
		}
		buf = appendUniform(buf, v)
	}
	buf = padTo(buf, 16)
	kernelbridge.Logger().Debug("kernel: packed uniform block",
		"kernel", a.kernel.Name, "bytes", len(buf))
	return buf, nil
}

// appendUniform appends one value at its std140 alignment.
func appendUniform(buf []byte, v kernelbridge.Value) []byte {
	switch t := v.(type) {
	case kernelbridge.Int:
		return appendI32(padTo(buf, 4), int32(t))
	case kernelbridge.Float:
		return appendF32(padTo(buf, 4), float32(t))
	case kernelbridge.Int2:
		buf = padTo(buf, 8)
		for _, n := range t {
			buf = appendI32(buf, int32(n))
		}
		return buf
	case kernelbridge.Int3:
		buf = padTo(buf, 16)
		for _, n := range t {
			buf = appendI32(buf, int32(n))
		}
		return buf
	case kernelbridge.Int4:
		buf = padTo(buf, 16)
		for _, n := range t {
			buf = appendI32(buf, int32(n))
		}
		return buf
	case kernelbridge.Float2:
		buf = padTo(buf, 8)
		for _, f := range t {
			buf = appendF32(buf, f)
		}
		return buf
	case kernelbridge.Float3:
		buf = padTo(buf, 16)
		for _, f := range t {
			buf = appendF32(buf, f)
		}
		return buf
	case kernelbridge.Float4:
		buf = padTo(buf, 16)
		for _, f := range t {
			buf = appendF32(buf, f)
		}
		return buf
	case kernelbridge.Float2x2:
		return appendMatrix(buf, t[:], 2)
	case kernelbridge.Float3x3:
		return appendMatrix(buf, t[:], 3)
	case kernelbridge.Float4x4:
		return appendMatrix(buf, t[:], 4)
	}
	return buf
}

// appendMatrix writes an n x n row-major matrix as n column vectors,
// each on a 16-byte stride.
func appendMatrix(buf []byte, m []float32, n int) []byte {
	buf = padTo(buf, 16)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			buf = appendF32(buf, m[r*n+c])
		}
		buf = padTo(buf, 16)
	}
	return buf
}

func appendF32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}

func appendI32(buf []byte, i int32) []byte {
	return binary.LittleEndian.AppendUint32(buf, uint32(i))
}

// padTo pads buf with zero bytes to the given alignment.
func padTo(buf []byte, align int) []byte {
	for len(buf)%align != 0 {
		buf = append(buf, 0)
	}
	return buf
}
