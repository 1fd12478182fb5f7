package valuerange

import (
	"math"
	"math/big"
	"testing"

	"modernc.org/mathutil"
)

func TestCardinalityExactOnSinglePieces(t *testing.T) {
	tests := []struct {
		s    S
		want int64
	}{
		{Empty(), 0},
		{Point(5), 1},
		{mustRange(1, 10), 10},
		{mustRange(-5, 5), 11},
	}
	for _, tt := range tests {
		got := Cardinality(tt.s)
		if got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("Cardinality(%v) = %v, want %d", tt.s, got, tt.want)
		}
	}
}

func TestCardinalityFullDomainMatchesMathutil(t *testing.T) {
	// The full int64 domain has 2^64 members, which overflows int64 itself —
	// exercised against mathutil's arbitrary-precision arithmetic rather
	// than any machine integer.
	got := Cardinality(AllOf(Width64))
	want := new(big.Int).Lsh(big.NewInt(1), 64)
	if got.Cmp(want) != 0 {
		t.Errorf("Cardinality(AllOf(Width64)) = %v, want 2^64", got)
	}
	half := mathutil.BigIntMax(big.NewInt(0), new(big.Int).Div(want, big.NewInt(2)))
	if got.Cmp(half) <= 0 {
		t.Error("full-domain cardinality should exceed half the domain")
	}
}

func TestCardinalitySumsDisjointPieces(t *testing.T) {
	s, err := FromRanges([]int64{1, 5, 10, 20})
	if err != nil {
		t.Fatal(err)
	}
	got := Cardinality(s)
	if got.Cmp(big.NewInt(16)) != 0 { // (5-1+1) + (20-10+1) = 5+11
		t.Errorf("Cardinality of disjoint pieces = %v, want 16", got)
	}
}

func TestFitsInt64TrueForSmallSets(t *testing.T) {
	v, ok := FitsInt64(mustRange(1, 100))
	if !ok || v != 100 {
		t.Errorf("FitsInt64([1,100]) = (%d, %v), want (100, true)", v, ok)
	}
}

func TestFitsInt64FalseForFullDomain(t *testing.T) {
	if _, ok := FitsInt64(AllOf(Width64)); ok {
		t.Error("FitsInt64(AllOf(Width64)) should be false: 2^64 overflows int64")
	}
}

func TestLargestPieceSpanPicksBiggestPiece(t *testing.T) {
	s, err := FromRanges([]int64{1, 3, 100, 199})
	if err != nil {
		t.Fatal(err)
	}
	got := LargestPieceSpan(s)
	if got.Cmp(big.NewInt(100)) != 0 { // [100,199] has 100 members, vs [1,3]'s 3
		t.Errorf("LargestPieceSpan = %v, want 100", got)
	}
}

func TestLargestPieceSpanOnEmptyIsZero(t *testing.T) {
	got := LargestPieceSpan(Empty())
	if got.Sign() != 0 {
		t.Errorf("LargestPieceSpan(Empty()) = %v, want 0", got)
	}
}

func TestCardinalityMatchesPlainCountForSmallRange(t *testing.T) {
	s := mustRange(math.MinInt32, math.MinInt32+9)
	got := Cardinality(s)
	if got.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("Cardinality near MinInt32 = %v, want 10", got)
	}
}
