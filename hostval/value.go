// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hostval

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the runtime category of a Value.
type Kind int32

const (
	// KindUndefined is the zero value: an unassigned slot (a hole).
	KindUndefined Kind = iota

	KindString
	KindInteger
	KindNumber
	KindArray
)

var kindNames = [...]string{"Undefined", "String", "Integer", "Number", "Array"}

// String returns the category name, e.g. "Integer".
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Value is a single host value. The zero Value is Undefined.
//
// Value is a small struct and is passed by value everywhere; the only
// indirection is the backing storage of an Array.
type Value struct {
	kind Kind
	num  float64
	i    int32
	str  string
	arr  *Array
}

// Undefined is the hole value.
var Undefined = Value{}

// Str returns a String value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an Integer value.
func Int(i int32) Value { return Value{kind: KindInteger, i: i} }

// Num returns a Number value.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Arr returns an Array value backed by a.
func Arr(a *Array) Value { return Value{kind: KindArray, arr: a} }

// Kind returns the value's runtime category.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is a hole.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// Text returns the stored string. It is only meaningful for String values.
func (v Value) Text() string { return v.str }

// Integer returns the stored 32-bit integer. Only meaningful for Integer values.
func (v Value) Integer() int32 { return v.i }

// Number returns the stored double. Only meaningful for Number values.
func (v Value) Number() float64 { return v.num }

// Array returns the backing array, or nil for non-Array values.
func (v Value) Array() *Array { return v.arr }

// Equal reports deep equality between two values. Arrays compare
// element-wise, holes included.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindUndefined:
		return true
	case KindString:
		return v.str == w.str
	case KindInteger:
		return v.i == w.i
	case KindNumber:
		return v.num == w.num
	case KindArray:
		if v.arr.Len() != w.arr.Len() {
			return false
		}
		for i := 0; i < v.arr.Len(); i++ {
			a, aok := v.arr.Get(i)
			b, bok := w.arr.Get(i)
			if aok != bok || !a.Equal(b) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value for diagnostics; it is not the host's
// string coercion (use ToText for that).
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindString:
		return strconv.Quote(v.str)
	case KindInteger:
		return strconv.FormatInt(int64(v.i), 10)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindArray:
		parts := make([]string, v.arr.Len())
		for i := range parts {
			e, ok := v.arr.Get(i)
			if !ok {
				parts[i] = "<hole>"
				continue
			}
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "invalid"
}

// Array is ordered, indexed storage for host values. Slots that were
// never assigned hold Undefined and read back as holes.
type Array struct {
	elems []Value
}

// Len returns the array length, holes included.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// Get returns the element at i. The second result is false when i is out
// of range or the slot is a hole.
func (a *Array) Get(i int) (Value, bool) {
	if a == nil || i < 0 || i >= len(a.elems) {
		return Undefined, false
	}
	v := a.elems[i]
	return v, v.kind != KindUndefined
}

// Set assigns the element at i, growing the array (with holes) as needed.
func (a *Array) Set(i int, v Value) {
	if i < 0 {
		return
	}
	for i >= len(a.elems) {
		a.elems = append(a.elems, Undefined)
	}
	a.elems[i] = v
}

// Append adds v after the last slot.
func (a *Array) Append(v Value) {
	a.elems = append(a.elems, v)
}
