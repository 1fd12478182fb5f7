package valuerange

import (
	"math"
	"testing"
)

func TestCastToWidenIsNoOp(t *testing.T) {
	s := mustRange(1, 10)
	got := s.CastTo(CastInt64)
	if !setsEqual(toSet(got), toSet(s)) {
		t.Errorf("CastTo(CastInt64) on an already-64-bit value changed it: %v -> %v", s, got)
	}
}

func TestCastToNarrowWithinRangeIsExact(t *testing.T) {
	s := mustRange(1, 10)
	got := s.CastTo(CastInt32)
	if !setsEqual(toSet(got), toSet(s)) {
		t.Errorf("CastTo(CastInt32) on a value within int32 range changed it: %v -> %v", s, got)
	}
}

func TestCastToNarrowWrapsLikeTruncatingCast(t *testing.T) {
	s := Point(math.MaxInt32 + 1) // 2^31, does not fit int32
	got := s.CastTo(CastInt32)
	v, err := got.Min()
	if err != nil || v != math.MinInt32 {
		t.Errorf("CastTo(CastInt32)(2^31) = %v, want {MinInt32} (two's-complement wrap)", got)
	}
}

func TestCastToSpanningWrapSplitsIntoTwoPieces(t *testing.T) {
	// A range straddling the int32 boundary truncates into a wrapped pair:
	// the high end wraps negative while the low end stays non-negative.
	s := mustRange(math.MaxInt32-2, math.MaxInt32+2)
	got := s.CastTo(CastInt32)
	for _, v := range []int64{math.MaxInt32 - 2, math.MaxInt32 - 1, math.MaxInt32} {
		if !got.Contains(v) {
			t.Errorf("CastTo(CastInt32) missing non-wrapped member %d", v)
		}
	}
	for _, v := range []int64{math.MinInt32, math.MinInt32 + 1} {
		if !got.Contains(v) {
			t.Errorf("CastTo(CastInt32) missing wrapped member %d", v)
		}
	}
}

func TestCastToEmptyIsEmpty(t *testing.T) {
	if !Empty().CastTo(CastInt32).IsEmpty() {
		t.Error("CastTo on Empty should be Empty")
	}
}

func TestCastToByteWithinRangeIsExact(t *testing.T) {
	s := mustRange(-10, 10)
	got := s.CastTo(CastByte)
	if !setsEqual(toSet(got), toSet(s)) {
		t.Errorf("CastTo(CastByte) on a value within int8 range changed it: %v -> %v", s, got)
	}
}

func TestCastToByteWraps(t *testing.T) {
	got := Point(200).CastTo(CastByte)
	v, err := got.Min()
	if err != nil || v != -56 {
		t.Errorf("CastTo(CastByte)(200) = %v, want {-56} (200 mod 256, signed)", got)
	}
}

func TestCastToByteCoveringWholeRangeIsFullDestination(t *testing.T) {
	s := mustRange(0, 400) // spans more than 256 distinct byte-truncated values
	got := s.CastTo(CastByte)
	lo, _ := got.Min()
	hi, _ := got.Max()
	if lo != math.MinInt8 || hi != math.MaxInt8 {
		t.Errorf("CastTo(CastByte) of a range covering the whole byte domain = [%d,%d], want [%d,%d]", lo, hi, math.MinInt8, math.MaxInt8)
	}
}

func TestCastToShortWraps(t *testing.T) {
	got := Point(math.MaxInt16 + 1).CastTo(CastShort)
	v, err := got.Min()
	if err != nil || v != math.MinInt16 {
		t.Errorf("CastTo(CastShort)(2^15) = %v, want {MinInt16}", got)
	}
}

func TestCastToCharMasksUnsigned(t *testing.T) {
	got := Point(0x10001).CastTo(CastChar) // 65537 -> 1
	v, err := got.Min()
	if err != nil || v != 1 {
		t.Errorf("CastTo(CastChar)(0x10001) = %v, want {1} (A & 0xFFFF)", got)
	}
}

func TestCastToCharOfNegativeMasksToUnsigned(t *testing.T) {
	got := Point(-1).CastTo(CastChar)
	v, err := got.Min()
	if err != nil || v != 0xFFFF {
		t.Errorf("CastTo(CastChar)(-1) = %v, want {0xFFFF}", got)
	}
}

func TestCastToCharWithinRangeIsExact(t *testing.T) {
	s := mustRange(0, 100)
	got := s.CastTo(CastChar)
	if !setsEqual(toSet(got), toSet(s)) {
		t.Errorf("CastTo(CastChar) on a value already within range changed it: %v -> %v", s, got)
	}
}

func TestSubtractionMayOverflowDetectsWraparound(t *testing.T) {
	a := Point(math.MinInt32)
	b := Point(1)
	if !a.SubtractionMayOverflow(b, Width32) {
		t.Error("MinInt32 - 1 should be reported as a possible overflow at Width32")
	}
}

func TestSubtractionMayOverflowFalseWhenSafelyInRange(t *testing.T) {
	a := mustRange(10, 20)
	b := mustRange(1, 5)
	if a.SubtractionMayOverflow(b, Width64) {
		t.Error("a safely in-range subtraction should not be reported as overflowing")
	}
}

func TestSubtractionMayOverflowFalseForEmpty(t *testing.T) {
	if Empty().SubtractionMayOverflow(mustRange(1, 5), Width32) {
		t.Error("Empty operand should never overflow")
	}
}
