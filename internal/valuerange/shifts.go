package valuerange

// maskShiftAmount restricts a shift-count set to the low bits a shift of
// width w actually consults (0..w.bits()-1). When shift has few enough
// candidate values, they are masked individually and unioned for precision;
// for a shift-count set too large to enumerate cheaply, the sound
// over-approximation [0, w.bits()-1] is returned instead.
const shiftEnumerationLimit = 512

func maskShiftAmount(shift S, w Width) S {
	mask := int64(w.bits() - 1)
	if shift.IsEmpty() {
		return Empty()
	}
	if cardinalityAtMost(shift, shiftEnumerationLimit) {
		seen := make(map[int64]bool)
		result := Empty()
		for _, iv := range shift.intervals() {
			for v := iv.Lo; ; v++ {
				mv := v & mask
				if !seen[mv] {
					seen[mv] = true
					result = result.Unite(Point(mv))
				}
				if v == iv.Hi {
					break
				}
			}
		}
		return result
	}
	return mustRange(0, mask)
}

// cardinalityAtMost reports whether s denotes no more than limit values,
// without risking overflow for a set spanning a large fraction of the
// domain.
func cardinalityAtMost(s S, limit uint64) bool {
	var total uint64
	for _, iv := range s.intervals() {
		width := uint64(iv.Hi) - uint64(iv.Lo) + 1
		if width == 0 || width > limit { // width==0 signals wraparound: span too large
			return false
		}
		total += width
		if total > limit {
			return false
		}
	}
	return true
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// shiftRightNonNeg computes the non-negative-dividend half of an arithmetic
// right shift: [lo,hi] >> [sMin,sMax] is [lo,hi] / [2^sMin, 2^sMax], using
// Div's already-sound machinery. When the shift amount can reach width-1,
// the top of the divisor range would be 2^(width-1), whose positive value
// does not fit a signed word of that width, so that edge of the shift
// range is handled as its own {0} contribution instead.
func shiftRightNonNeg(lo, hi, sMin, sMax int64, w Width) S {
	width := int64(w.bits())
	a := mustRange(lo, hi)
	if sMax == width-1 {
		if sMin == sMax {
			return Point(0)
		}
		divLo := int64(1) << uint(sMin)
		divHi := int64(1) << uint(width-2)
		part := a.Div(mustRange(divLo, divHi), w)
		return part.Unite(Point(0))
	}
	divLo := int64(1) << uint(sMin)
	divHi := int64(1) << uint(sMax)
	return a.Div(mustRange(divLo, divHi), w)
}

func shiftRightNeg(lo, hi, sMin, sMax int64, w Width) S {
	bLo := -1 - hi
	bHi := -1 - lo
	b := shiftRightNonNeg(bLo, bHi, sMin, sMax, w)
	return Point(-1).Minus(b, w)
}

// ShiftRight computes the arithmetic (sign-extending) right shift s >>
// shift under w's semantics, treating shift as a set of candidate shift
// counts masked to w's low bits.
func (s S) ShiftRight(shift S, w Width) S {
	if s.IsEmpty() || shift.IsEmpty() {
		return Empty()
	}
	masked := maskShiftAmount(shift, w)
	sMin, sMax := masked.mustMin(), masked.mustMax()
	result := Empty()
	for _, iv := range splitAtZero(s) {
		if iv.Lo >= 0 {
			result = result.Unite(shiftRightNonNeg(iv.Lo, iv.Hi, sMin, sMax, w))
		} else {
			result = result.Unite(shiftRightNeg(iv.Lo, iv.Hi, sMin, sMax, w))
		}
	}
	return result
}

func unsignedShiftRightNeg(lo, hi int64, masked S, w Width) S {
	width := int64(w.bits())
	result := Empty()
	if masked.Contains(0) {
		result = result.Unite(mustRange(lo, hi))
	}
	rest := masked.Intersect(mustRange(1, width-1))
	if rest.IsEmpty() {
		return result
	}
	sMin, sMax := rest.mustMin(), rest.mustMax()
	b := mustRange(-1-hi, -1-lo) // nonnegative: lo,hi < 0
	c := b.ShiftRight(Point(1), w)
	shiftRest := mustRange(maxI64(sMin-1, 0), maxI64(sMax-1, 0))
	d := c.ShiftRight(shiftRest, w)
	piece := Point(w.max()).Minus(d, w)
	return result.Unite(piece)
}

// UnsignedShiftRight computes the logical (zero-filling) right shift s >>>
// shift under w's semantics. For non-negative dividends this coincides with
// ShiftRight; the negative half is derived from the bit-complement identity
// (-1-x) that turns the high-bit-set pattern into a non-negative one before
// reusing the arithmetic-shift machinery.
func (s S) UnsignedShiftRight(shift S, w Width) S {
	if s.IsEmpty() || shift.IsEmpty() {
		return Empty()
	}
	masked := maskShiftAmount(shift, w)
	sMin, sMax := masked.mustMin(), masked.mustMax()
	result := Empty()
	for _, iv := range splitAtZero(s) {
		if iv.Lo >= 0 {
			result = result.Unite(shiftRightNonNeg(iv.Lo, iv.Hi, sMin, sMax, w))
		} else {
			result = result.Unite(unsignedShiftRightNeg(iv.Lo, iv.Hi, masked, w))
		}
	}
	return result
}
