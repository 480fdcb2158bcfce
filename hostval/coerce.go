// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hostval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumeric reports a value that cannot become a number: an array, a
// hole, or a string with no numeric interpretation.
var ErrNotNumeric = errors.New("hostval: value is not numeric")

const twoPow32 = 4294967296.0

// ToNumber converts v to a double using the host's standard rules:
// numbers pass through, integers widen, strings parse after trimming
// (a blank string is 0). Arrays and holes are not numeric.
func ToNumber(v Value) (float64, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindInteger:
		return float64(v.i), nil
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, v.str)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotNumeric, v.kind)
}

// ToInt32 converts v to a 32-bit integer: ToNumber followed by the
// legacy wrapping reduction of WrapInt32.
func ToInt32(v Value) (int32, error) {
	if v.kind == KindInteger {
		return v.i, nil
	}
	f, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	return WrapInt32(f), nil
}

// ToText converts v to its host string form. Arrays join their elements
// with commas (holes render empty), matching the host's array-to-string
// behavior.
func ToText(v Value) string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindString:
		return v.str
	case KindInteger:
		return strconv.FormatInt(int64(v.i), 10)
	case KindNumber:
		return formatNumber(v.num)
	case KindArray:
		parts := make([]string, v.arr.Len())
		for i := range parts {
			if e, ok := v.arr.Get(i); ok {
				parts[i] = ToText(e)
			}
		}
		return strings.Join(parts, ",")
	}
	return ""
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WrapInt32 reduces f into the signed 32-bit range the way the legacy
// numeric platform coerced float to int: NaN and infinities become 0,
// everything else truncates toward zero and wraps modulo 2^32.
func WrapInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	t := math.Trunc(f)
	m := math.Mod(t, twoPow32)
	if m < 0 {
		m += twoPow32
	}
	if m >= twoPow32/2 {
		m -= twoPow32
	}
	return int32(m)
}
