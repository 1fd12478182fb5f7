package valuerange

import "math"

// mulChecked computes k*v and reports whether the exact mathematical
// product fits within w's representable range. It uses the standard
// divide-back overflow check for the 64-bit product, then (for Width32)
// additionally checks the product round-trips through int32.
func mulChecked(k, v int64, w Width) (int64, bool) {
	if k == 0 || v == 0 {
		return 0, true
	}
	p := k * v
	if p/k != v {
		return 0, false
	}
	if w == Width32 && (p < math.MinInt32 || p > math.MaxInt32) {
		return 0, false
	}
	return p, true
}

func mulRangePoint(k, f, t int64, w Width) S {
	a, ok1 := mulChecked(k, f, w)
	b, ok2 := mulChecked(k, t, w)
	if !ok1 || !ok2 {
		return AllOf(w)
	}
	lo, hi := a, b
	if k < 0 {
		lo, hi = b, a
	}
	return mustRange(lo, hi)
}

func mulPoint(k int64, x S, w Width) S {
	if x.IsEmpty() {
		return Empty()
	}
	switch k {
	case 0:
		return Point(0)
	case 1:
		return x
	case -1:
		return x.Negate(w)
	}
	switch x.kind {
	case shapePoint:
		v, ok := mulChecked(k, x.lo, w)
		if !ok {
			return AllOf(w)
		}
		return Point(v)
	case shapeRange:
		return mulRangePoint(k, x.lo, x.hi, w)
	default:
		var parts []S
		for _, iv := range x.intervals() {
			parts = append(parts, mulRangePoint(k, iv.Lo, iv.Hi, w))
		}
		return uniteAll(parts)
	}
}

// Mul computes s * other under w's wraparound semantics. Precise
// (interval-exact, modulo overflow-to-full-range fallback) when one operand
// is a single Point; otherwise the result is the full domain, since the
// product of two non-degenerate intervals is not itself interval-shaped in
// general and an exact envelope would require tracking a parallelogram this
// domain has no shape for.
func (s S) Mul(other S, w Width) S {
	if s.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	if s.kind == shapePoint {
		return mulPoint(s.lo, other, w)
	}
	if other.kind == shapePoint {
		return mulPoint(other.lo, s, w)
	}
	return AllOf(w)
}
