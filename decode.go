package kernelbridge

import (
	"fmt"

	"github.com/gogpu/kernelbridge/hostval"
)

// Decode converts a host value into the shader parameter shape named by
// kind.
//
// Scalar shapes accept their matching host scalar directly: String for
// KindString, Number for KindFloat (narrowed to float32) and Integer for
// KindInt (wrapped to int16). Every other accepted input is a host array
// whose elements are coerced through the host's numeric rules, float
// family to float32 and int family to int16 with two's-complement wrap.
// The element count must equal the kind's arity exactly, and a hole in
// the array fails the whole call; it is never skipped or defaulted.
// Matrix elements are consumed in row-major order.
//
// Decode never mutates v and retains no reference to it. Failures are
// returned as a [*DecodeError] wrapping one of [ErrShapeMismatch],
// [ErrHole], [ErrNotCoercible] or [ErrUnsupportedInput]; Decode never
// panics on malformed input.
func Decode(v hostval.Value, kind Kind) (Value, error) {
	switch kind {
	case KindString:
		if v.Kind() == hostval.KindString {
			return String(v.Text()), nil
		}
		return nil, decodeErr(kind, -1, fmt.Errorf("%w: got %s", ErrUnsupportedInput, v.Kind()))
	case KindFloat:
		if v.Kind() == hostval.KindNumber {
			return Float(float32(v.Number())), nil
		}
	case KindInt:
		if v.Kind() == hostval.KindInteger {
			return Int(int16(v.Integer())), nil
		}
	case KindInvalid:
		return nil, decodeErr(kind, -1, fmt.Errorf("%w: invalid shape", ErrUnsupportedInput))
	}

	// Everything else must arrive as an array of the exact arity.
	if v.Kind() != hostval.KindArray {
		return nil, decodeErr(kind, -1, fmt.Errorf("%w: got %s, want Array", ErrUnsupportedInput, v.Kind()))
	}
	arr := v.Array()
	if arr.Len() != kind.Arity() {
		return nil, decodeErr(kind, -1, fmt.Errorf("%w: got %d elements, want %d",
			ErrShapeMismatch, arr.Len(), kind.Arity()))
	}

	if kind.IsFloat() {
		return decodeFloats(arr, kind)
	}
	return decodeInts(arr, kind)
}

func decodeFloats(arr *hostval.Array, kind Kind) (Value, error) {
	var buf [16]float32
	out := buf[:kind.Arity()]
	for i := range out {
		e, ok := arr.Get(i)
		if !ok {
			return nil, decodeErr(kind, i, ErrHole)
		}
		n, err := hostval.ToNumber(e)
		if err != nil {
			return nil, decodeErr(kind, i, fmt.Errorf("%w: %v", ErrNotCoercible, err))
		}
		out[i] = float32(n)
	}
	switch kind {
	case KindFloat:
		return Float(out[0]), nil
	case KindFloat2:
		return Float2(out), nil
	case KindFloat3:
		return Float3(out), nil
	case KindFloat4:
		return Float4(out), nil
	case KindFloat2x2:
		return Float2x2(out), nil
	case KindFloat3x3:
		return Float3x3(out), nil
	case KindFloat4x4:
		return Float4x4(out), nil
	}
	return nil, decodeErr(kind, -1, ErrUnsupportedInput)
}

func decodeInts(arr *hostval.Array, kind Kind) (Value, error) {
	var buf [4]int16
	out := buf[:kind.Arity()]
	for i := range out {
		e, ok := arr.Get(i)
		if !ok {
			return nil, decodeErr(kind, i, ErrHole)
		}
		n, err := hostval.ToInt32(e)
		if err != nil {
			return nil, decodeErr(kind, i, fmt.Errorf("%w: %v", ErrNotCoercible, err))
		}
		out[i] = int16(n)
	}
	switch kind {
	case KindInt:
		return Int(out[0]), nil
	case KindInt2:
		return Int2(out), nil
	case KindInt3:
		return Int3(out), nil
	case KindInt4:
		return Int4(out), nil
	}
	return nil, decodeErr(kind, -1, ErrUnsupportedInput)
}
