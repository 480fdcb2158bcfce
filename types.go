package kernelbridge

import "fmt"

// Kind identifies one of the closed set of shader parameter shapes.
//
// The set is fixed: three scalar kinds (string, 16-bit int, 32-bit float),
// six vector kinds (2/3/4-wide float and int), and three square float
// matrix kinds. Shader parameter metadata supplies the expected Kind for
// each slot; the bridge never invents one.
type Kind int32

const (
	// KindInvalid is the zero value and matches no shape.
	KindInvalid Kind = iota

	KindString
	KindInt
	KindFloat

	KindInt2
	KindInt3
	KindInt4

	KindFloat2
	KindFloat3
	KindFloat4

	KindFloat2x2
	KindFloat3x3
	KindFloat4x4
)

var kindNames = map[Kind]string{
	KindInvalid:  "Invalid",
	KindString:   "String",
	KindInt:      "Int",
	KindFloat:    "Float",
	KindInt2:     "Int2",
	KindInt3:     "Int3",
	KindInt4:     "Int4",
	KindFloat2:   "Float2",
	KindFloat3:   "Float3",
	KindFloat4:   "Float4",
	KindFloat2x2: "Float2x2",
	KindFloat3x3: "Float3x3",
	KindFloat4x4: "Float4x4",
}

// String returns the shape name, e.g. "Float3x3".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Arity returns the number of elements in the shape's payload.
// Scalars (including strings) have arity 1.
func (k Kind) Arity() int {
	switch k {
	case KindString, KindInt, KindFloat:
		return 1
	case KindInt2, KindFloat2:
		return 2
	case KindInt3, KindFloat3:
		return 3
	case KindInt4, KindFloat4, KindFloat2x2:
		return 4
	case KindFloat3x3:
		return 9
	case KindFloat4x4:
		return 16
	}
	return 0
}

// IsFloat reports whether the shape belongs to the 32-bit float family
// (scalar, vector, or matrix).
func (k Kind) IsFloat() bool {
	switch k {
	case KindFloat, KindFloat2, KindFloat3, KindFloat4,
		KindFloat2x2, KindFloat3x3, KindFloat4x4:
		return true
	}
	return false
}

// IsInt reports whether the shape belongs to the 16-bit int family.
func (k Kind) IsInt() bool {
	switch k {
	case KindInt, KindInt2, KindInt3, KindInt4:
		return true
	}
	return false
}

// IsMatrix reports whether the shape is one of the square matrix kinds.
func (k Kind) IsMatrix() bool {
	switch k {
	case KindFloat2x2, KindFloat3x3, KindFloat4x4:
		return true
	}
	return false
}

// MatrixDim returns the row/column count for matrix kinds, 0 otherwise.
func (k Kind) MatrixDim() int {
	switch k {
	case KindFloat2x2:
		return 2
	case KindFloat3x3:
		return 3
	case KindFloat4x4:
		return 4
	}
	return 0
}

// Value is a shader parameter value with exact-arity storage.
//
// Value is a sealed interface: the twelve variants defined in this package
// are the only implementations, one per Kind. A Value always holds a fully
// populated payload; partially filled vectors or matrices cannot be
// constructed.
type Value interface {
	// Kind returns the shape of the stored payload.
	Kind() Kind

	// valueMarker implements the sealed Value interface.
	valueMarker()
}

// String is a text parameter value.
type String string

// Int is a 16-bit signed scalar parameter value.
type Int int16

// Float is a 32-bit float scalar parameter value.
type Float float32

// Int2 is a 2-wide vector of 16-bit signed integers.
type Int2 [2]int16

// Int3 is a 3-wide vector of 16-bit signed integers.
type Int3 [3]int16

// Int4 is a 4-wide vector of 16-bit signed integers.
type Int4 [4]int16

// Float2 is a 2-wide vector of 32-bit floats.
type Float2 [2]float32

// Float3 is a 3-wide vector of 32-bit floats.
type Float3 [3]float32

// Float4 is a 4-wide vector of 32-bit floats.
type Float4 [4]float32

// Float2x2 is a 2x2 float matrix stored row-major.
type Float2x2 [4]float32

// Float3x3 is a 3x3 float matrix stored row-major.
type Float3x3 [9]float32

// Float4x4 is a 4x4 float matrix stored row-major.
type Float4x4 [16]float32

func (String) Kind() Kind   { return KindString }
func (Int) Kind() Kind      { return KindInt }
func (Float) Kind() Kind    { return KindFloat }
func (Int2) Kind() Kind     { return KindInt2 }
func (Int3) Kind() Kind     { return KindInt3 }
func (Int4) Kind() Kind     { return KindInt4 }
func (Float2) Kind() Kind   { return KindFloat2 }
func (Float3) Kind() Kind   { return KindFloat3 }
func (Float4) Kind() Kind   { return KindFloat4 }
func (Float2x2) Kind() Kind { return KindFloat2x2 }
func (Float3x3) Kind() Kind { return KindFloat3x3 }
func (Float4x4) Kind() Kind { return KindFloat4x4 }

func (String) valueMarker()   {}
func (Int) valueMarker()      {}
func (Float) valueMarker()    {}
func (Int2) valueMarker()     {}
func (Int3) valueMarker()     {}
func (Int4) valueMarker()     {}
func (Float2) valueMarker()   {}
func (Float3) valueMarker()   {}
func (Float4) valueMarker()   {}
func (Float2x2) valueMarker() {}
func (Float3x3) valueMarker() {}
func (Float4x4) valueMarker() {}
