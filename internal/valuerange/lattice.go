package valuerange

import "sentra/internal/valuerange/internal/ranges"

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Intersect computes the greatest lower bound of s and other: the set of
// values both contain.
func (s S) Intersect(other S) S {
	if s.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	a, b := s.intervals(), other.intervals()
	var out []ranges.Interval[int64]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := max64(a[i].Lo, b[j].Lo)
		hi := min64(a[i].Hi, b[j].Hi)
		if lo <= hi {
			out = append(out, ranges.Interval[int64]{Lo: lo, Hi: hi})
		}
		if a[i].Hi < b[j].Hi {
			i++
		} else {
			j++
		}
	}
	return fromIntervals(out)
}

// Unite computes the least upper bound of s and other: the set of values
// either contains. Implemented as a direct merge of both operands' pieces
// rather than via De Morgan over a complement — see DESIGN.md for why the
// direct form was chosen over the complement-based alternative spec.md §9
// leaves open.
func (s S) Unite(other S) S {
	if s.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return s
	}
	combined := make([]ranges.Interval[int64], 0, s.pieceCount()+other.pieceCount())
	combined = append(combined, s.intervals()...)
	combined = append(combined, other.intervals()...)
	return fromIntervals(combined)
}

// uniteAll folds Unite across a slice of values, starting from Empty.
func uniteAll(parts []S) S {
	result := Empty()
	for _, p := range parts {
		result = result.Unite(p)
	}
	return result
}

// subtractOne removes every interval in others from a single interval iv,
// returning the (possibly empty, possibly split-in-two) remaining pieces.
func subtractOne(iv ranges.Interval[int64], others []ranges.Interval[int64]) []ranges.Interval[int64] {
	cur := []ranges.Interval[int64]{iv}
	for _, o := range others {
		var next []ranges.Interval[int64]
		for _, c := range cur {
			if o.Hi < c.Lo || o.Lo > c.Hi {
				next = append(next, c)
				continue
			}
			if o.Lo > c.Lo {
				next = append(next, ranges.Interval[int64]{Lo: c.Lo, Hi: o.Lo - 1})
			}
			if o.Hi < c.Hi {
				next = append(next, ranges.Interval[int64]{Lo: o.Hi + 1, Hi: c.Hi})
			}
		}
		cur = next
		if len(cur) == 0 {
			break
		}
	}
	return cur
}

// Subtract computes the relative complement s \ other: the values in s that
// are not in other. This is exact, not an over-approximation.
func (s S) Subtract(other S) S {
	if s.IsEmpty() || other.IsEmpty() {
		return s
	}
	others := other.intervals()
	var out []ranges.Interval[int64]
	for _, iv := range s.intervals() {
		out = append(out, subtractOne(iv, others)...)
	}
	return fromIntervals(out)
}

// Without removes a single value from s, equivalent to Subtract(Point(v))
// but avoiding the allocation of a throwaway Point.
func (s S) Without(v int64) S {
	if s.IsEmpty() || !s.Contains(v) {
		return s
	}
	var out []ranges.Interval[int64]
	for _, iv := range s.intervals() {
		out = append(out, subtractOne(iv, []ranges.Interval[int64]{{Lo: v, Hi: v}})...)
	}
	return fromIntervals(out)
}

// Relation is a comparison operator a value can stand in relative to s, used
// by FromRelation to derive the subset of the domain consistent with that
// comparison holding against some member of s.
type Relation int

const (
	RelEQ Relation = iota
	RelNE
	RelLT
	RelLE
	RelGT
	RelGE
)

// FromRelation returns the set of values x such that "x REL s" can hold for
// some s in the receiver, e.g. Point(5).FromRelation(RelLT) is (-inf, 5).
// Returns Empty if the receiver is empty.
func (s S) FromRelation(rel Relation) S {
	if s.IsEmpty() {
		return Empty()
	}
	switch rel {
	case RelEQ:
		return s
	case RelNE:
		if s.kind == shapePoint {
			return All().Without(s.lo)
		}
		return All()
	case RelGT:
		lo := s.mustMin()
		if lo == maxInt64 {
			return Empty()
		}
		return mustRange(lo+1, maxInt64)
	case RelGE:
		return mustRange(s.mustMin(), maxInt64)
	case RelLT:
		hi := s.mustMax()
		if hi == minInt64 {
			return Empty()
		}
		return mustRange(minInt64, hi-1)
	case RelLE:
		return mustRange(minInt64, s.mustMax())
	default:
		return All()
	}
}
