package kernelbridge

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/kernelbridge/hostval"
)

// Encode converts a shader parameter value back into the host's dynamic
// value space, allocating through the given arena.
//
// Strings encode as host strings. An Int encodes as a bare host integer
// when intAsScalar is true, otherwise as a one-element array; every other
// numeric shape always encodes as an array, including scalar floats, so
// shader float outputs look the same to script code whether or not they
// are vectors. Float-family elements pass through numeric normalization:
// a float with no fractional part surfaces as a host integer. Int-family
// vectors encode their elements as integers directly. Matrix elements
// are emitted in stored (row-major) order.
//
// Encode cannot fail: a Value is well formed by construction. Each call
// allocates fresh host values and retains no reference to them.
func Encode(a *hostval.Arena, v Value, intAsScalar bool) hostval.Value {
	switch t := v.(type) {
	case String:
		return hostval.Str(string(t))
	case Int:
		if intAsScalar {
			return hostval.Int(int32(t))
		}
		return a.Of(hostval.Int(int32(t)))
	case Float:
		return a.Of(normalizeFloat(float32(t)))
	case Float2:
		return encodeFloats(a, t[:])
	case Float3:
		return encodeFloats(a, t[:])
	case Float4:
		return encodeFloats(a, t[:])
	case Float2x2:
		return encodeFloats(a, t[:])
	case Float3x3:
		return encodeFloats(a, t[:])
	case Float4x4:
		return encodeFloats(a, t[:])
	case Int2:
		return encodeInts(a, t[:])
	case Int3:
		return encodeInts(a, t[:])
	case Int4:
		return encodeInts(a, t[:])
	}
	// Unreachable: Value is sealed.
	return hostval.Undefined
}

func encodeFloats(a *hostval.Arena, fs []float32) hostval.Value {
	elems := make([]hostval.Value, len(fs))
	for i, f := range fs {
		elems[i] = normalizeFloat(f)
	}
	return a.Of(elems...)
}

func encodeInts(a *hostval.Arena, is []int16) hostval.Value {
	elems := make([]hostval.Value, len(is))
	for i, n := range is {
		elems[i] = hostval.Int(int32(n))
	}
	return a.Of(elems...)
}

// normalizeFloat collapses a float with zero fractional part into a host
// integer using the legacy wrap-on-overflow conversion; anything else
// (fractional, NaN, infinite) widens to a host number. The host's
// numeric slots expect integral shader results to look like integers
// rather than floats with a trailing ".0".
func normalizeFloat(f float32) hostval.Value {
	_, frac := math32.Modf(f)
	if frac == 0 {
		return hostval.Int(hostval.WrapInt32(float64(f)))
	}
	return hostval.Num(float64(f))
}
