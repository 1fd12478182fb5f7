package valuerange

import (
	"math"
	"testing"
)

func TestDivByZeroIsEmpty(t *testing.T) {
	if !mustRange(1, 10).Div(Point(0), Width64).IsEmpty() {
		t.Error("Div by exactly {0} should be Empty")
	}
}

func TestDivSoundOverSample(t *testing.T) {
	a := mustRange(10, 100)
	b := mustRange(2, 5)
	result := a.Div(b, Width64)
	for x := int64(10); x <= 100; x += 7 {
		for y := int64(2); y <= 5; y++ {
			if !result.Contains(x / y) {
				t.Errorf("Div([10,100],[2,5]) = %v does not contain exact %d/%d=%d", result, x, y, x/y)
			}
		}
	}
}

func TestDivStraddlingZeroDivisorExcludesZero(t *testing.T) {
	a := mustRange(1, 10)
	b := mustRange(-2, 2) // includes 0, which must be excluded from the divisor
	result := a.Div(b, Width64)
	for x := int64(1); x <= 10; x++ {
		for _, y := range []int64{-2, -1, 1, 2} {
			if !result.Contains(x / y) {
				t.Errorf("Div([1,10],[-2,2]) does not contain %d/%d=%d", x, y, x/y)
			}
		}
	}
}

func TestDivMinInt64ByNegOneDoesNotOverflow(t *testing.T) {
	// Two's-complement: MinInt64 / -1 == MinInt64 (the mathematical result
	// overflows, so the machine wraps rather than panicking or producing
	// garbage).
	result := Point(math.MinInt64).Div(Point(-1), Width64)
	v, err := result.Min()
	if err != nil || v != math.MinInt64 {
		t.Errorf("MinInt64 / -1 = %v, want {MinInt64}", result)
	}
}

func TestModExactWhenDividendSmallerThanDivisor(t *testing.T) {
	result := Point(3).Mod(Point(10))
	v, err := result.Min()
	if err != nil || v != 3 {
		t.Errorf("3 %% 10 = %v, want {3}", result)
	}
}

func TestModSoundOverSample(t *testing.T) {
	a := mustRange(-20, 20)
	b := mustRange(3, 7)
	result := a.Mod(b)
	for x := int64(-20); x <= 20; x++ {
		for y := int64(3); y <= 7; y++ {
			if !result.Contains(x % y) {
				t.Errorf("Mod([-20,20],[3,7]) = %v does not contain exact %d%%%d=%d", result, x, y, x%y)
			}
		}
	}
}

func TestModByZeroIsEmpty(t *testing.T) {
	if !mustRange(1, 10).Mod(Point(0)).IsEmpty() {
		t.Error("Mod by exactly {0} should be Empty")
	}
}

func TestModMinInt64DivisorPulledOutCorrectly(t *testing.T) {
	// Every a != MinInt64 has magnitude strictly less than |MinInt64|, so
	// a % MinInt64 == a exactly.
	a := mustRange(-100, 100)
	result := a.Mod(Point(math.MinInt64))
	for x := int64(-100); x <= 100; x++ {
		if !result.Contains(x % math.MinInt64) {
			t.Errorf("Mod(%d, MinInt64) missing exact result %d", x, x%math.MinInt64)
		}
	}
}
