package valuerange

import (
	"math"
	"math/big"
)

// CastTarget names the integer type a value is being narrowed (or
// reinterpreted) to by cast_to(T), spanning the same width vocabulary
// from_type(T) (adapters.go) already recognizes: byte, short, the 16-bit
// unsigned character type, int, and long.
type CastTarget int

const (
	// CastByte is the 8-bit signed type, -128..127.
	CastByte CastTarget = iota
	// CastShort is the 16-bit signed type, -2^15..2^15-1.
	CastShort
	// CastChar is the 16-bit *unsigned* character type, 0..2^16-1. Its
	// truncation rule is a plain mask rather than the signed-width formula
	// the other targets use.
	CastChar
	// CastInt32 is the 32-bit signed type, matching Width32.
	CastInt32
	// CastInt64 is the 64-bit signed type, matching Width64 — casting to it
	// is always a no-op reinterpretation since S already stores int64.
	CastInt64
)

func (t CastTarget) bits() int {
	switch t {
	case CastByte:
		return 8
	case CastShort, CastChar:
		return 16
	case CastInt32:
		return 32
	default:
		return 64
	}
}

// signedRange reports the destination's representable [lo, hi] for every
// target except CastChar, whose destination is unsigned and has no
// symmetric signed counterpart.
func (t CastTarget) signedRange() (lo, hi int64) {
	switch t {
	case CastByte:
		return math.MinInt8, math.MaxInt8
	case CastShort:
		return math.MinInt16, math.MaxInt16
	case CastInt32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

// truncateSigned reinterprets v at the given signed bit width, the general
// form spec.md §4.3 describes: add 2^(bits-1), mask to 2^bits-1, subtract
// 2^(bits-1) back off. Equivalent to (and, for bits==32, implemented the
// same way as) a narrowing integer cast at runtime.
func truncateSigned(v int64, bits int) int64 {
	if bits >= 64 {
		return v
	}
	half := int64(1) << uint(bits-1)
	mask := half<<1 - 1
	return ((v + half) & mask) - half
}

// truncateIntervalTo implements cast_to(T)'s three-case rule for a single
// interval: already inside the destination's range, spanning the whole
// destination (and possibly more), or genuinely needing the truncation
// formula (which may wrap the interval into two pieces).
func truncateIntervalTo(lo, hi int64, target CastTarget) S {
	if target == CastChar {
		return truncateUnsigned16(lo, hi)
	}
	destLo, destHi := target.signedRange()
	if lo >= destLo && hi <= destHi {
		return mustRange(lo, hi)
	}
	bits := target.bits()
	length := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	length.Add(length, big.NewInt(1))
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	if length.Cmp(modulus) >= 0 {
		return mustRange(destLo, destHi)
	}
	f := truncateSigned(lo, bits)
	t := truncateSigned(hi, bits)
	if f > t {
		return mustRange(destLo, t).Unite(mustRange(f, destHi))
	}
	return mustRange(f, t)
}

// truncateUnsigned16 is cast_to(char)'s rule: A & 0xFFFF, with no sign
// reinterpretation since the character type is unsigned.
func truncateUnsigned16(lo, hi int64) S {
	const mask = 0xFFFF
	if lo >= 0 && hi <= mask {
		return mustRange(lo, hi)
	}
	length := new(big.Int).Sub(big.NewInt(hi), big.NewInt(lo))
	length.Add(length, big.NewInt(1))
	if length.Cmp(big.NewInt(mask+1)) >= 0 {
		return mustRange(0, mask)
	}
	f := lo & mask
	t := hi & mask
	if f > t {
		return mustRange(0, t).Unite(mustRange(f, mask))
	}
	return mustRange(f, t)
}

// CastTo reinterprets s as target, truncating (and, if the truncated image
// wraps, splitting into two pieces) the way a narrowing integer cast does
// at runtime, per spec.md §4.3's cast_to(T).
func (s S) CastTo(target CastTarget) S {
	if s.IsEmpty() {
		return Empty()
	}
	var parts []S
	for _, iv := range s.intervals() {
		parts = append(parts, truncateIntervalTo(iv.Lo, iv.Hi, target))
	}
	return uniteAll(parts)
}

// SubtractionMayOverflow reports whether any concrete pair (x in s, y in
// other) could produce x-y outside w's representable range, i.e. whether
// Minus's sound result for this pair of operands had to account for
// wraparound at all. Computed with arbitrary-precision arithmetic so the
// check itself never suffers the overflow it is trying to detect.
func (s S) SubtractionMayOverflow(other S, w Width) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	sLo, sHi := s.mustMin(), s.mustMax()
	oLo, oHi := other.mustMin(), other.mustMax()
	minDiff := new(big.Int).Sub(big.NewInt(sLo), big.NewInt(oHi))
	maxDiff := new(big.Int).Sub(big.NewInt(sHi), big.NewInt(oLo))
	return minDiff.Cmp(big.NewInt(w.min())) < 0 || maxDiff.Cmp(big.NewInt(w.max())) > 0
}
