package valuerange

import (
	"testing"

	"sentra/internal/lexer"
)

func TestBinOpArithmeticDispatch(t *testing.T) {
	tests := []struct {
		tok        lexer.TokenType
		wantLo, wantHi int64
	}{
		{lexer.TokenPlus, 13, 13},
		{lexer.TokenMinus, 7, 7},
		{lexer.TokenStar, 30, 30},
		{lexer.TokenSlash, 3, 3},
		{lexer.TokenPercent, 1, 1},
	}
	a, b := Point(10), Point(3)
	for _, tt := range tests {
		got, err := BinOp(tt.tok, a, b, Width64)
		if err != nil {
			t.Fatalf("BinOp(%v) returned error: %v", tt.tok, err)
		}
		lo, _ := got.Min()
		hi, _ := got.Max()
		if lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("BinOp(%v, 10, 3) = [%d,%d], want [%d,%d]", tt.tok, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}

func TestBinOpComparisonDispatch(t *testing.T) {
	tests := []struct {
		tok      lexer.TokenType
		wantSome bool // whether intersecting a=Point(5) with "TOK b=Point(5)" is non-empty
	}{
		{lexer.TokenDoubleEqual, true},
		{lexer.TokenNotEqual, false},
		{lexer.TokenLT, false},
		{lexer.TokenLE, true},
		{lexer.TokenGT, false},
		{lexer.TokenGE, true},
	}
	a, b := Point(5), Point(5)
	for _, tt := range tests {
		got, err := BinOp(tt.tok, a, b, Width64)
		if err != nil {
			t.Fatalf("BinOp(%v) returned error: %v", tt.tok, err)
		}
		satisfiable := !got.IsEmpty()
		if satisfiable != tt.wantSome {
			t.Errorf("BinOp(%v, 5, 5) satisfiable = %v, want %v", tt.tok, satisfiable, tt.wantSome)
		}
	}
}

func TestBinOpUnsupportedTokenReturnsError(t *testing.T) {
	_, err := BinOp(lexer.TokenType("&&"), Point(1), Point(1), Width64)
	if err != ErrUnsupported {
		t.Errorf("BinOp(&&) error = %v, want ErrUnsupported", err)
	}
}

func TestBinOpDivByZeroIsEmpty(t *testing.T) {
	got, err := BinOp(lexer.TokenSlash, Point(10), Point(0), Width64)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Error("BinOp(/, 10, 0) should be Empty")
	}
}

func TestBinOpLessThanNarrowsToSatisfyingValues(t *testing.T) {
	a := mustRange(1, 10)
	b := Point(5)
	got, err := BinOp(lexer.TokenLT, a, b, Width64)
	if err != nil {
		t.Fatal(err)
	}
	for v := int64(1); v <= 10; v++ {
		want := v < 5
		if got.Contains(v) != want {
			t.Errorf("BinOp(<, [1,10], 5).Contains(%d) = %v, want %v", v, got.Contains(v), want)
		}
	}
}
