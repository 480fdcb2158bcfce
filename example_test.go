package kernelbridge_test

import (
	"fmt"

	"github.com/gogpu/kernelbridge"
	"github.com/gogpu/kernelbridge/hostval"
)

func ExampleDecode() {
	arena := hostval.NewArena()
	in := arena.Of(hostval.Num(0.5), hostval.Num(1.5), hostval.Num(2.5))

	v, err := kernelbridge.Decode(in, kernelbridge.KindFloat3)
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	fmt.Println(v)
	// Output: [0.5 1.5 2.5]
}

func ExampleEncode() {
	arena := hostval.NewArena()

	// Integral floats surface as host integers; fractional ones stay numbers.
	out := kernelbridge.Encode(arena, kernelbridge.Float2{2.0, 3.5}, false)
	fmt.Println(out)
	// Output: [2, 3.5]
}

func ExampleDecode_shapeMismatch() {
	arena := hostval.NewArena()
	in := arena.Of(hostval.Num(1), hostval.Num(2), hostval.Num(3))

	_, err := kernelbridge.Decode(in, kernelbridge.KindFloat4)
	fmt.Println(err)
	// Output: decode Float4: kernelbridge: element count does not match shape: got 3 elements, want 4
}
