package valuerange

import (
	"math"

	"sentra/internal/valuerange/internal/ranges"
)

type shape uint8

const (
	shapeEmpty shape = iota
	shapePoint
	shapeRange
	shapeRangeSet
)

// S is the abstract value-set domain: an immutable, canonical representation
// of a subset of the 64-bit signed integers, always one of four shapes —
// empty, a single point, a contiguous range, or a sorted, disjoint,
// non-adjacent sequence of ranges (RangeSet, at least two pieces). The zero
// value of S is the empty set.
//
// All fields are unexported; every S in circulation is built through the
// package's constructors, which enforce canonical form, so no method ever
// needs to re-normalize a value it receives.
type S struct {
	kind   shape
	lo, hi int64   // populated for shapePoint (lo == hi) and shapeRange
	ranges []int64 // populated for shapeRangeSet: lo0, hi0, lo1, hi1, ...
}

// Empty returns the bottom element of the lattice: the set containing no
// values.
func Empty() S {
	return S{kind: shapeEmpty}
}

// Point returns the singleton set {v}.
func Point(v int64) S {
	return S{kind: shapePoint, lo: v, hi: v}
}

// Range returns the closed interval [from, to]. It collapses to Point when
// from == to. It returns a *DomainError (via panic, not a return value —
// see Range's sibling MustRange for the non-panicking form used
// internally) when from > to.
func Range(from, to int64) (S, error) {
	if from > to {
		return S{}, newDomainError(ErrInvalidRange, "range bounds out of order: %d > %d", from, to)
	}
	if from == to {
		return Point(from), nil
	}
	return S{kind: shapeRange, lo: from, hi: to}, nil
}

// mustRange is Range without the error return, for call sites that have
// already established from <= to.
func mustRange(from, to int64) S {
	s, err := Range(from, to)
	if err != nil {
		panic(err)
	}
	return s
}

// All returns the full 64-bit signed integer domain, the top element of the
// lattice.
func All() S {
	return mustRange(math.MinInt64, math.MaxInt64)
}

// AllOf returns the full domain of w's width, e.g. [-2^31, 2^31-1] for
// Width32.
func AllOf(w Width) S {
	return mustRange(w.min(), w.max())
}

// FromRanges builds a value from an already-disjoint, already-sorted,
// already-non-adjacent flat array of interval bounds [lo0, hi0, lo1, hi1,
// ...], mirroring spec's from_ranges constructor. It validates the
// canonical-form invariants and returns a *DomainError if arr violates them;
// callers that only want to union an arbitrary (possibly overlapping,
// unsorted) collection of intervals should use unite repeatedly, or the
// package-internal fromIntervals normalizer.
func FromRanges(arr []int64) (S, error) {
	if len(arr)%2 != 0 {
		return S{}, newDomainError(ErrMalformedRangeSet, "odd-length bounds array (len=%d)", len(arr))
	}
	if len(arr) == 0 {
		return Empty(), nil
	}
	for i := 0; i < len(arr); i += 2 {
		if arr[i] > arr[i+1] {
			return S{}, newDomainError(ErrMalformedRangeSet, "piece %d out of order: %d > %d", i/2, arr[i], arr[i+1])
		}
		if i > 0 {
			prevHi, curLo := arr[i-1], arr[i]
			if curLo <= prevHi || uint64(curLo)-uint64(prevHi) < 2 {
				return S{}, newDomainError(ErrMalformedRangeSet, "piece %d is not strictly past and non-adjacent to piece %d", i/2, i/2-1)
			}
		}
	}
	if len(arr) == 2 {
		return Range(arr[0], arr[1])
	}
	out := make([]int64, len(arr))
	copy(out, arr)
	return S{kind: shapeRangeSet, ranges: out}, nil
}

// IndexRange is the shared constant spec.md §3/§6 names alongside the
// per-width full ranges: the fixed non-negative range 0..2^31-1, the widest
// a collection index can be without itself needing 64-bit storage.
func IndexRange() S {
	return mustRange(0, math.MaxInt32)
}

// BoundedIndexRange returns the non-negative range [0, length-1] suitable
// for a zero-based index into a collection of the given length, or Empty
// when length <= 0. A tighter, caller-supplied specialization of
// IndexRange for when the collection's exact size is known.
func BoundedIndexRange(length int64) S {
	if length <= 0 {
		return Empty()
	}
	return mustRange(0, length-1)
}

// intervals returns s's denotation as a slice of disjoint, sorted
// half-open... closed intervals, used internally by every operation that
// needs to iterate s's pieces uniformly regardless of shape.
func (s S) intervals() []ranges.Interval[int64] {
	switch s.kind {
	case shapeEmpty:
		return nil
	case shapePoint, shapeRange:
		return []ranges.Interval[int64]{{Lo: s.lo, Hi: s.hi}}
	case shapeRangeSet:
		out := make([]ranges.Interval[int64], 0, len(s.ranges)/2)
		for i := 0; i < len(s.ranges); i += 2 {
			out = append(out, ranges.Interval[int64]{Lo: s.ranges[i], Hi: s.ranges[i+1]})
		}
		return out
	}
	return nil
}

// fromIntervals normalizes an arbitrary (possibly empty, overlapping,
// unsorted) slice of intervals into canonical form. This is the shared
// builder every lattice and arithmetic operation uses once it has computed
// the raw pieces of its result.
func fromIntervals(ivs []ranges.Interval[int64]) S {
	if len(ivs) == 0 {
		return Empty()
	}
	merged := ranges.Merge(ivs, math.MaxInt64)
	switch len(merged) {
	case 0:
		return Empty()
	case 1:
		return mustRange(merged[0].Lo, merged[0].Hi)
	default:
		arr := make([]int64, 0, len(merged)*2)
		for _, iv := range merged {
			arr = append(arr, iv.Lo, iv.Hi)
		}
		return S{kind: shapeRangeSet, ranges: arr}
	}
}

// pieceCount reports how many disjoint intervals s is made of (0 for
// Empty).
func (s S) pieceCount() int {
	switch s.kind {
	case shapeEmpty:
		return 0
	case shapePoint, shapeRange:
		return 1
	default:
		return len(s.ranges) / 2
	}
}
