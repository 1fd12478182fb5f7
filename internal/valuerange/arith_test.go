package valuerange

import (
	"math"
	"testing"
)

// wrap32 mirrors truncate(v, Width32): reinterpret v at 32-bit width the
// way real int32 arithmetic would, for brute-force cross-checking.
func wrap32(v int64) int64 {
	return int64(int32(v))
}

// exhaustiveBinOp brute-forces {op(x, y) : x in [af, at], y in [bf, bt]}
// over Width32 (small enough to enumerate every pair in a test), returning
// the set of wrapped results.
func exhaustiveBinOp(af, at, bf, bt int64, op func(x, y int64) int64) map[int64]bool {
	out := make(map[int64]bool)
	for x := af; x <= at; x++ {
		for y := bf; y <= bt; y++ {
			out[wrap32(op(x, y))] = true
		}
	}
	return out
}

func TestPlusSoundOverWidth32(t *testing.T) {
	cases := []struct{ af, at, bf, bt int64 }{
		{1, 5, 10, 20},
		{-10, -1, -5, 5},
		{math.MaxInt32 - 3, math.MaxInt32, 1, 5}, // wraps
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		a := mustRange(c.af, c.at)
		b := mustRange(c.bf, c.bt)
		result := a.Plus(b, Width32)
		exhaustive := exhaustiveBinOp(c.af, c.at, c.bf, c.bt, func(x, y int64) int64 { return x + y })
		for v := range exhaustive {
			if !result.Contains(v) {
				t.Errorf("Plus([%d,%d],[%d,%d]) = %v does not contain exact sum %d", c.af, c.at, c.bf, c.bt, result, v)
			}
		}
	}
}

func TestMinusSoundOverWidth32(t *testing.T) {
	cases := []struct{ af, at, bf, bt int64 }{
		{1, 5, 10, 20},
		{math.MinInt32, math.MinInt32 + 3, 1, 5}, // wraps
	}
	for _, c := range cases {
		a := mustRange(c.af, c.at)
		b := mustRange(c.bf, c.bt)
		result := a.Minus(b, Width32)
		exhaustive := exhaustiveBinOp(c.af, c.at, c.bf, c.bt, func(x, y int64) int64 { return x - y })
		for v := range exhaustive {
			if !result.Contains(v) {
				t.Errorf("Minus([%d,%d],[%d,%d]) = %v does not contain exact diff %d", c.af, c.at, c.bf, c.bt, result, v)
			}
		}
	}
}

func TestNegateFixedPointAtMin(t *testing.T) {
	got := Point(math.MinInt64).Negate(Width64)
	v, err := got.Min()
	if err != nil || v != math.MinInt64 {
		t.Errorf("Negate(MinInt64) = %v, want {MinInt64} (two's-complement has no positive counterpart)", got)
	}
}

func TestAbsNeverNegative(t *testing.T) {
	cases := []S{
		mustRange(-10, -1),
		mustRange(-5, 5),
		mustRange(1, 10),
		Point(math.MinInt64),
	}
	for _, s := range cases {
		result := s.Abs(Width64)
		for v := range result.Enumerate() {
			if v < 0 && v != math.MinInt64 {
				t.Errorf("Abs(%v) produced negative value %d", s, v)
			}
		}
	}
}

func TestPlusWithEmptyIsEmpty(t *testing.T) {
	a := mustRange(1, 10)
	if !a.Plus(Empty(), Width64).IsEmpty() {
		t.Error("Plus with Empty should be Empty")
	}
}

func TestPlusCommutative(t *testing.T) {
	a := mustRange(1, 10)
	b := mustRange(-5, 5)
	left := toSet(a.Plus(b, Width32))
	right := toSet(b.Plus(a, Width32))
	if !setsEqual(left, right) {
		t.Error("Plus is not commutative")
	}
}
