package valuerange

import (
	"math/big"

	"modernc.org/mathutil"
)

// Cardinality returns the exact population count of s — the number of
// distinct int64 values it denotes. A single interval's count, hi-lo+1, can
// itself reach 2^64 (the full domain), which overflows a uint64, so the sum
// is accumulated in arbitrary precision rather than risking a silent
// wraparound.
func Cardinality(s S) *big.Int {
	total := new(big.Int)
	one := big.NewInt(1)
	for _, iv := range s.intervals() {
		span := new(big.Int).Sub(big.NewInt(iv.Hi), big.NewInt(iv.Lo))
		span.Add(span, one)
		total.Add(total, span)
	}
	return total
}

// FitsInt64 reports whether s's exact population count is representable as
// a plain int64, the fast path most callers (loop trip-count estimates,
// enumeration-limit checks) actually want.
func FitsInt64(s S) (int64, bool) {
	card := Cardinality(s)
	if !card.IsInt64() {
		return 0, false
	}
	return card.Int64(), true
}

// LargestPieceSpan returns the population count of s's single largest
// contiguous piece — the figure internal/jit consults when deciding
// whether a loop counter's live range is small enough for a fast-path
// template, as opposed to the sum of every disjoint piece Cardinality
// reports.
func LargestPieceSpan(s S) *big.Int {
	largest := new(big.Int)
	one := big.NewInt(1)
	for _, iv := range s.intervals() {
		span := new(big.Int).Sub(big.NewInt(iv.Hi), big.NewInt(iv.Lo))
		span.Add(span, one)
		largest = mathutil.BigIntMax(largest, span)
	}
	return largest
}
