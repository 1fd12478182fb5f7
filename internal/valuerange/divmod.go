package valuerange

import (
	"math"

	"sentra/internal/valuerange/internal/ranges"
)

func isExactlyZero(s S) bool {
	return s.kind == shapePoint && s.lo == 0
}

// splitAtZero rewrites every interval of s that straddles zero into its
// strictly-negative and non-negative halves, so downstream sign-dependent
// reasoning (division, shifts) never has to special-case a single interval
// changing sign partway through.
func splitAtZero(s S) []ranges.Interval[int64] {
	var out []ranges.Interval[int64]
	for _, iv := range s.intervals() {
		if iv.Lo < 0 && iv.Hi >= 0 {
			out = append(out, ranges.Interval[int64]{Lo: iv.Lo, Hi: -1})
			out = append(out, ranges.Interval[int64]{Lo: 0, Hi: iv.Hi})
		} else {
			out = append(out, iv)
		}
	}
	return out
}

// divOne computes x/y under w's wraparound semantics. Go's native division
// already implements the two's-complement exception MinInt64/-1 == MinInt64
// for 64-bit width; for 32-bit width, where values are stored widened to
// int64, that same exception has to be applied by hand at the 32-bit
// boundary.
func divOne(x, y int64, w Width) int64 {
	if w == Width32 && x == int64(int32(w.min())) && y == -1 {
		return w.min()
	}
	return x / y
}

// divRange computes the envelope of {x/y : x in [xl,xh], y in [yl,yh]} for
// same-signed, non-zero-containing x- and y-intervals. x/y is monotonic in
// each argument separately over such a box, so (as for real division) the
// extrema of the truncating integer quotient are found among the box's four
// corners.
func divRange(xl, xh, yl, yh int64, w Width) (int64, int64) {
	c1 := divOne(xl, yl, w)
	c2 := divOne(xl, yh, w)
	c3 := divOne(xh, yl, w)
	c4 := divOne(xh, yh, w)
	lo := min64(min64(c1, c2), min64(c3, c4))
	hi := max64(max64(c1, c2), max64(c3, c4))
	return lo, hi
}

// Div computes s / other (truncating toward zero) under w's wraparound
// semantics. Empty if other can only be zero.
func (s S) Div(other S, w Width) S {
	if s.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	if isExactlyZero(other) {
		return Empty()
	}
	aPieces := splitAtZero(s)
	bPieces := splitAtZero(other)
	var parts []S
	for _, a := range aPieces {
		for _, b := range bPieces {
			lo, hi := b.Lo, b.Hi
			if lo == 0 {
				lo = 1
				if lo > hi {
					continue // this piece of the divisor was exactly {0}
				}
			}
			dlo, dhi := divRange(a.Lo, a.Hi, lo, hi, w)
			parts = append(parts, mustRange(dlo, dhi))
		}
	}
	return uniteAll(parts)
}

func magnitude(v int64) uint64 {
	if v == minInt64 {
		return uint64(maxInt64) + 1
	}
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func maxAbsInterval(iv ranges.Interval[int64]) uint64 {
	a, b := magnitude(iv.Lo), magnitude(iv.Hi)
	if a > b {
		return a
	}
	return b
}

// maxAbs returns M, the largest magnitude any value in b has.
func maxAbs(b S) uint64 {
	var m uint64
	for _, iv := range b.intervals() {
		if mv := maxAbsInterval(iv); mv > m {
			m = mv
		}
	}
	return m
}

// minNonzeroAbs returns the smallest magnitude any nonzero value in b has,
// or 0 if b has no nonzero member.
func minNonzeroAbs(b S) uint64 {
	m := uint64(math.MaxUint64)
	found := false
	consider := func(v uint64) {
		if v != 0 && v < m {
			m = v
			found = true
		}
	}
	for _, iv := range b.intervals() {
		if iv.Lo <= 0 && iv.Hi >= 0 {
			if iv.Hi >= 1 {
				consider(1)
			}
			if iv.Lo <= -1 {
				consider(1)
			}
			continue
		}
		var near int64
		if iv.Lo > 0 {
			near = iv.Lo
		} else {
			near = iv.Hi
		}
		consider(magnitude(near))
	}
	if !found {
		return 0
	}
	return m
}

// hasMagnitudeAtLeast reports whether s contains some value whose magnitude
// is >= m.
func hasMagnitudeAtLeast(s S, m uint64) bool {
	for _, iv := range s.intervals() {
		if maxAbsInterval(iv) >= m {
			return true
		}
	}
	return false
}

func signEnvelope(av int64, m uint64) S {
	hi := int64(m - 1)
	if av < 0 {
		return mustRange(-hi, 0)
	}
	return mustRange(0, hi)
}

func envelopeOf(a S, m uint64) S {
	lo, hi := a.mustMin(), a.mustMax()
	envLo, envHi := lo, hi
	if envLo > 0 {
		envLo = 0
	}
	if envHi < 0 {
		envHi = 0
	}
	bound := int64(m - 1)
	if envLo < -bound {
		envLo = -bound
	}
	if envHi > bound {
		envHi = bound
	}
	return mustRange(envLo, envHi)
}

func modCore(a, b S) S {
	m := minNonzeroAbs(b)
	if a.kind == shapePoint {
		if minNonzeroAbs(b) > magnitude(a.lo) {
			return a
		}
		return signEnvelope(a.lo, maxAbs(b))
	}
	if !hasMagnitudeAtLeast(a, m) {
		return a
	}
	return envelopeOf(a, maxAbs(b))
}

// Mod computes s % other (the sign-of-dividend truncating remainder) as a
// sound over-approximation: an exact point result when a is a single value
// clearly smaller in magnitude than every candidate divisor, and a
// sign-preserving envelope bounded by the largest candidate divisor's
// magnitude otherwise. Empty if other can only be zero.
//
// w.min() appearing as a candidate divisor is handled separately: |w.min()|
// cannot be computed without overflow, but a % w.min() == a for every a !=
// w.min() (since no value but w.min() itself has magnitude >= |w.min()|), so
// that divisor is pulled out of b and its contribution folded back in as s
// unchanged, joined with the rest of the computation.
func (s S) Mod(other S) S {
	if s.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	if isExactlyZero(other) {
		return Empty()
	}
	b := other
	includesMin := b.Contains(minInt64)
	if includesMin {
		b = b.Without(minInt64)
	}
	var result S
	if b.IsEmpty() {
		result = Empty()
	} else {
		result = modCore(s, b)
	}
	if includesMin {
		result = result.Unite(s)
	}
	return result
}
