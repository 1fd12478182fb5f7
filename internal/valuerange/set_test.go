package valuerange

import (
	"math"
	"testing"
)

func TestConstructorsCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		s        S
		wantKind shape
	}{
		{"empty is empty", Empty(), shapeEmpty},
		{"point stays point", Point(5), shapePoint},
		{"range collapses to point when from==to", mustRange(7, 7), shapePoint},
		{"range stays range when from<to", mustRange(1, 10), shapeRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.s.kind != tt.wantKind {
				t.Errorf("got kind %v, want %v", tt.s.kind, tt.wantKind)
			}
		})
	}
}

func TestRangeRejectsOutOfOrderBounds(t *testing.T) {
	_, err := Range(10, 1)
	if err == nil {
		t.Fatal("expected error for from > to, got nil")
	}
	de, ok := err.(*DomainError)
	if !ok {
		t.Fatalf("expected *DomainError, got %T", err)
	}
	if de.Code != ErrInvalidRange {
		t.Errorf("got code %v, want ErrInvalidRange", de.Code)
	}
}

func TestFromRangesValidatesCanonicalForm(t *testing.T) {
	tests := []struct {
		name    string
		arr     []int64
		wantErr bool
	}{
		{"empty array", nil, false},
		{"single piece collapses to Range", []int64{1, 5}, false},
		{"two disjoint non-adjacent pieces", []int64{1, 5, 10, 20}, false},
		{"odd length", []int64{1, 5, 10}, true},
		{"piece out of order", []int64{5, 1}, true},
		{"adjacent pieces should have merged", []int64{1, 5, 6, 10}, true},
		{"overlapping pieces", []int64{1, 10, 5, 15}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRanges(tt.arr)
			if (err != nil) != tt.wantErr {
				t.Errorf("FromRanges(%v) error = %v, wantErr %v", tt.arr, err, tt.wantErr)
			}
		})
	}
}

func TestIndexRangeIsTheSharedZeroTo2Pow31MinusOneConstant(t *testing.T) {
	got := IndexRange()
	lo, _ := got.Min()
	hi, _ := got.Max()
	if lo != 0 || hi != math.MaxInt32 {
		t.Errorf("IndexRange() = [%d, %d], want [0, %d]", lo, hi, math.MaxInt32)
	}
}

func TestBoundedIndexRange(t *testing.T) {
	tests := []struct {
		length         int64
		wantEmpty      bool
		wantLo, wantHi int64
	}{
		{0, true, 0, 0},
		{-5, true, 0, 0},
		{1, false, 0, 0},
		{10, false, 0, 9},
	}
	for _, tt := range tests {
		got := BoundedIndexRange(tt.length)
		if got.IsEmpty() != tt.wantEmpty {
			t.Errorf("BoundedIndexRange(%d).IsEmpty() = %v, want %v", tt.length, got.IsEmpty(), tt.wantEmpty)
		}
		if !tt.wantEmpty {
			lo, _ := got.Min()
			hi, _ := got.Max()
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("BoundedIndexRange(%d) = [%d, %d], want [%d, %d]", tt.length, lo, hi, tt.wantLo, tt.wantHi)
			}
		}
	}
}

func TestAllOfWidth(t *testing.T) {
	lo32, _ := AllOf(Width32).Min()
	hi32, _ := AllOf(Width32).Max()
	if lo32 != -2147483648 || hi32 != 2147483647 {
		t.Errorf("AllOf(Width32) = [%d, %d], want [-2147483648, 2147483647]", lo32, hi32)
	}

	lo64, _ := AllOf(Width64).Min()
	hi64, _ := AllOf(Width64).Max()
	if lo64 != -9223372036854775808 || hi64 != 9223372036854775807 {
		t.Errorf("AllOf(Width64) = [%d, %d], want full int64 range", lo64, hi64)
	}
}
