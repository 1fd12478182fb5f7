// Package valuerange implements the integer value-set abstract domain used
// by the Sentra toolchain's static-analysis consumers (internal/jit,
// internal/compiler) to reason about the possible runtime values of
// integer-typed expressions at compile time.
//
// A Value (type S) denotes a possibly-empty subset of the 64-bit signed
// integers, represented canonically as a sorted, non-overlapping,
// non-adjacent sequence of closed intervals. Every operation is pure: it
// never mutates its receiver or arguments, and always returns a fresh,
// canonical S.
package valuerange

import "math"

// Width selects the fixed-width two's-complement semantics an arithmetic
// transfer function should emulate. Values themselves are always stored as
// int64; Width only governs wraparound behavior during a transfer.
type Width int

const (
	// Width64 is ordinary 64-bit two's-complement arithmetic.
	Width64 Width = iota
	// Width32 emulates 32-bit two's-complement arithmetic by truncating
	// 64-bit results, matching the surrounding toolchain's "is_long" flag.
	Width32
)

// Is64 reports whether w denotes 64-bit semantics, mirroring the distilled
// spec's "is_long bool" parameter for callers that prefer that shape.
func (w Width) Is64() bool { return w == Width64 }

// WidthOf converts the conventional is_long flag into a Width.
func WidthOf(isLong bool) Width {
	if isLong {
		return Width64
	}
	return Width32
}

func (w Width) bits() int {
	if w == Width32 {
		return 32
	}
	return 64
}

func (w Width) min() int64 {
	if w == Width32 {
		return math.MinInt32
	}
	return math.MinInt64
}

func (w Width) max() int64 {
	if w == Width32 {
		return math.MaxInt32
	}
	return math.MaxInt64
}

// String renders the width the way diagnostics in the rest of the toolchain
// name it.
func (w Width) String() string {
	if w == Width32 {
		return "int32"
	}
	return "int64"
}
