package kernelbridge

import "testing"

func TestKindArity(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindString, 1},
		{KindInt, 1},
		{KindFloat, 1},
		{KindInt2, 2},
		{KindInt3, 3},
		{KindInt4, 4},
		{KindFloat2, 2},
		{KindFloat3, 3},
		{KindFloat4, 4},
		{KindFloat2x2, 4},
		{KindFloat3x3, 9},
		{KindFloat4x4, 16},
		{KindInvalid, 0},
	}
	for _, tt := range tests {
		if got := tt.kind.Arity(); got != tt.want {
			t.Errorf("%v.Arity() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKindFamilies(t *testing.T) {
	floats := []Kind{KindFloat, KindFloat2, KindFloat3, KindFloat4, KindFloat2x2, KindFloat3x3, KindFloat4x4}
	for _, k := range floats {
		if !k.IsFloat() || k.IsInt() {
			t.Errorf("%v: IsFloat = %v, IsInt = %v", k, k.IsFloat(), k.IsInt())
		}
	}
	ints := []Kind{KindInt, KindInt2, KindInt3, KindInt4}
	for _, k := range ints {
		if !k.IsInt() || k.IsFloat() {
			t.Errorf("%v: IsInt = %v, IsFloat = %v", k, k.IsInt(), k.IsFloat())
		}
	}
	if KindString.IsFloat() || KindString.IsInt() {
		t.Error("KindString must belong to neither numeric family")
	}
}

func TestKindMatrix(t *testing.T) {
	dims := map[Kind]int{KindFloat2x2: 2, KindFloat3x3: 3, KindFloat4x4: 4}
	for k, dim := range dims {
		if !k.IsMatrix() {
			t.Errorf("%v.IsMatrix() = false", k)
		}
		if got := k.MatrixDim(); got != dim {
			t.Errorf("%v.MatrixDim() = %d, want %d", k, got, dim)
		}
		if k.Arity() != dim*dim {
			t.Errorf("%v.Arity() = %d, want %d", k, k.Arity(), dim*dim)
		}
	}
	if KindFloat4.IsMatrix() || KindFloat4.MatrixDim() != 0 {
		t.Error("KindFloat4 is not a matrix")
	}
}

func TestValueKinds(t *testing.T) {
	tests := []struct {
		v    Value
		want Kind
	}{
		{String("s"), KindString},
		{Int(1), KindInt},
		{Float(1), KindFloat},
		{Int2{}, KindInt2},
		{Int3{}, KindInt3},
		{Int4{}, KindInt4},
		{Float2{}, KindFloat2},
		{Float3{}, KindFloat3},
		{Float4{}, KindFloat4},
		{Float2x2{}, KindFloat2x2},
		{Float3x3{}, KindFloat3x3},
		{Float4x4{}, KindFloat4x4},
	}
	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindFloat3x3.String() != "Float3x3" {
		t.Errorf("KindFloat3x3.String() = %q", KindFloat3x3.String())
	}
	if Kind(99).String() == "" {
		t.Error("unknown kind should still render")
	}
}
