// Package kernelbridge converts between shader kernel parameter values
// and a scripting host's dynamic values.
//
// # Overview
//
// A shader kernel exposes parameters in a fixed, closed set of shapes:
// scalar strings, 16-bit ints and 32-bit floats, 2/3/4-wide int and
// float vectors, and 2x2/3x3/4x4 float matrices. Script code supplies
// those parameters as dynamic host values (text, integers, doubles, and
// ordered arrays) and reads results back the same way. kernelbridge is
// the conversion layer between the two worlds.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/kernelbridge"
//	    "github.com/gogpu/kernelbridge/hostval"
//	)
//
//	arena := hostval.NewArena()
//
//	// Script -> shader: decode a host array against the expected shape.
//	in := arena.Of(hostval.Num(0.5), hostval.Num(1.5), hostval.Num(2.5))
//	v, err := kernelbridge.Decode(in, kernelbridge.KindFloat3)
//
//	// Shader -> script: encode a result back into host values.
//	out := kernelbridge.Encode(arena, v, false)
//
// # Conversion Rules
//
// Decoding enforces exact arity and rejects holes in input arrays;
// elements are coerced with the host's standard numeric rules, then
// narrowed (float64 to float32, int32 to int16 with wrap). Encoding
// never fails: floats with no fractional part surface as host integers,
// scalar floats are always wrapped in a one-element array, and a scalar
// int is wrapped or bare depending on the caller's flag.
//
// Both directions are pure and stateless; calls may run concurrently on
// independent inputs without coordination.
//
// # Packages
//
//   - kernelbridge: the Kind and Value shapes, Decode and Encode
//   - hostval: the host's dynamic value model, coercions, and arena
//   - kernel: parameter metadata, binding, uniform packing, GPU upload
//   - camera: capture device enumeration for video-input kernels
//
// # Errors
//
// Decode failures wrap the sentinel errors in this package and carry the
// failing shape and element index; see [DecodeError]. Malformed script
// input is always a recoverable, reported condition, never a panic.
package kernelbridge
