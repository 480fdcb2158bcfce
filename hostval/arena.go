// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hostval

// Arena is an explicit allocation context for host-owned arrays.
//
// Code that constructs new host values receives an Arena instead of
// reaching for a hidden global allocator, so ownership of everything it
// produces is visible at the call site. The arena tracks how many arrays
// it has handed out, which tests use to pin down allocation behavior.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	arrays int
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// NewArray allocates an array of n hole slots.
func (a *Arena) NewArray(n int) *Array {
	a.arrays++
	if n <= 0 {
		return &Array{}
	}
	return &Array{elems: make([]Value, n)}
}

// Of allocates an array holding exactly the given elements and returns
// it as a Value.
func (a *Arena) Of(elems ...Value) Value {
	a.arrays++
	arr := &Array{elems: make([]Value, len(elems))}
	copy(arr.elems, elems)
	return Arr(arr)
}

// Allocated returns the number of arrays allocated so far.
func (a *Arena) Allocated() int { return a.arrays }
