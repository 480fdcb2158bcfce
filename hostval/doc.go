// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hostval models the dynamic value space of a scripting host.
//
// A [Value] is text, a 32-bit integer, a double-precision number, or an
// ordered [Array] of values. Arrays may be sparse: a slot that was never
// assigned holds the Undefined value, called a hole. Holes are preserved
// faithfully; it is up to consumers (such as the kernelbridge decoder)
// to decide whether a hole is an error.
//
// # Coercion
//
// [ToNumber], [ToInt32] and [ToText] implement the host's standard
// conversion rules: numeric strings parse after trimming, blank strings
// convert to zero, and integer conversion wraps modulo 2^32 the way the
// legacy numeric platform did. Arrays and holes do not coerce to numbers;
// those conversions return an error rather than a default.
//
// # Allocation
//
// New host-owned arrays are created through an [Arena], an explicit
// allocation context passed to any code that needs to construct values.
// The arena itself is not safe for concurrent use; callers that share one
// across goroutines must provide their own coordination.
package hostval
