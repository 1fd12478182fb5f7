package valuerange

import "math/bits"

// Negate computes -s under w's wraparound semantics. w.min() is its own
// negation (there is no positive counterpart in two's-complement), so an
// interval containing it splits into the negation of the rest plus the
// fixed point w.min() itself.
func (s S) Negate(w Width) S {
	switch s.kind {
	case shapeEmpty:
		return Empty()
	case shapePoint:
		if s.lo == w.min() {
			return s
		}
		return Point(-s.lo)
	case shapeRange:
		return negateRange(s.lo, s.hi, w)
	default:
		var parts []S
		for _, iv := range s.intervals() {
			parts = append(parts, negateRange(iv.Lo, iv.Hi, w))
		}
		return uniteAll(parts)
	}
}

func negateRange(f, t int64, w Width) S {
	min := w.min()
	if f > min {
		return mustRange(-t, -f)
	}
	if f == t {
		return Point(min)
	}
	return mustRange(-t, -(f+1)).Unite(Point(min))
}

// Abs computes |s| under w's wraparound semantics, with the same w.min()
// fixed-point exception as Negate (|w.min()| cannot be represented).
func (s S) Abs(w Width) S {
	switch s.kind {
	case shapeEmpty:
		return Empty()
	case shapePoint:
		if s.lo == w.min() {
			return s
		}
		v := s.lo
		if v < 0 {
			v = -v
		}
		return Point(v)
	case shapeRange:
		return absRange(s.lo, s.hi, w)
	default:
		var parts []S
		for _, iv := range s.intervals() {
			parts = append(parts, absRange(iv.Lo, iv.Hi, w))
		}
		return uniteAll(parts)
	}
}

func absRange(f, t int64, w Width) S {
	min := w.min()
	if f >= 0 {
		return mustRange(f, t)
	}
	if t <= 0 {
		return negateRange(f, t, w)
	}
	hasMin := false
	fc := f
	if f == min {
		hasMin = true
		fc = min + 1
	}
	hi := -fc
	if t > hi {
		hi = t
	}
	r := mustRange(0, hi)
	if hasMin {
		r = r.Unite(Point(min))
	}
	return r
}

// truncate wraps v into w's representable range by reinterpreting it at
// w's bit width. Go's signed integer arithmetic already wraps modulo 2^64,
// which is exactly w.bits()==64 truncation; for 32-bit width we truncate
// through an explicit int32 round-trip.
func truncate(v int64, w Width) int64 {
	if w == Width32 {
		return int64(int32(v))
	}
	return v
}

// addInterval computes the envelope of {x+y : x in [f1,t1], y in [f2,t2]}
// under w's wraparound semantics. If the combined population of the two
// input intervals would exceed w's modulus, the sum could wrap around the
// whole domain more than once, so the sound result is the full domain.
func addInterval(f1, t1, f2, t2 int64, w Width) S {
	len1 := uint64(t1) - uint64(f1)
	len2 := uint64(t2) - uint64(f2)
	sum, carry1 := bits.Add64(len1, len2, 0)
	sum, carry2 := bits.Add64(sum, 1, 0)
	overflowed := carry1 != 0 || carry2 != 0
	if w == Width32 && !overflowed && sum >= (uint64(1)<<32) {
		overflowed = true
	}
	if overflowed {
		return AllOf(w)
	}
	f := truncate(f1+f2, w)
	t := truncate(t1+t2, w)
	if f > t {
		return mustRange(w.min(), t).Unite(mustRange(f, w.max()))
	}
	return mustRange(f, t)
}

// collapseIfLarge reduces a RangeSet with more than three pieces to its
// [min, max] envelope before a pairwise arithmetic operation, trading
// precision for the operation staying linear rather than quadratic in the
// piece count of deeply-fragmented operands.
func collapseIfLarge(s S) S {
	if s.kind != shapeRangeSet || len(s.ranges)/2 <= 3 {
		return s
	}
	return mustRange(s.mustMin(), s.mustMax())
}

// Plus computes s + other under w's wraparound semantics.
func (s S) Plus(other S, w Width) S {
	if s.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	a := collapseIfLarge(s)
	b := collapseIfLarge(other)
	var parts []S
	for _, ia := range a.intervals() {
		for _, ib := range b.intervals() {
			parts = append(parts, addInterval(ia.Lo, ia.Hi, ib.Lo, ib.Hi, w))
		}
	}
	return uniteAll(parts)
}

// Minus computes s - other under w's wraparound semantics, defined as
// s + (-other).
func (s S) Minus(other S, w Width) S {
	return s.Plus(other.Negate(w), w)
}
