package valuerange

import "sentra/internal/lexer"

// BinOp dispatches a lexer token to the matching transfer function,
// letting a caller walking an AST's BinaryExpr nodes (internal/compiler's
// constant-folding pass, chiefly) drive this package without re-deriving
// its own operator table. Comparison tokens do not have a transfer function
// of their own; BinOp answers them by narrowing a to the values consistent
// with "a TOK b" holding for some b in other, via FromRelation — exactly
// the operation a range-narrowing constant fold wants from a branch
// condition. Unrecognized tokens return ErrUnsupported; the caller should
// treat that as "no information" and fall back to All(w) rather than panic,
// since an AST can legally contain operators this domain has no opinion on
// (string concatenation, logical &&/||, ...).
func BinOp(tok lexer.TokenType, a, b S, w Width) (S, error) {
	switch tok {
	case lexer.TokenPlus:
		return a.Plus(b, w), nil
	case lexer.TokenMinus:
		return a.Minus(b, w), nil
	case lexer.TokenStar:
		return a.Mul(b, w), nil
	case lexer.TokenSlash:
		return a.Div(b, w), nil
	case lexer.TokenPercent:
		return a.Mod(b), nil
	case lexer.TokenDoubleEqual:
		return a.Intersect(b.FromRelation(RelEQ)), nil
	case lexer.TokenNotEqual:
		return a.Intersect(b.FromRelation(RelNE)), nil
	case lexer.TokenLT:
		return a.Intersect(b.FromRelation(RelLT)), nil
	case lexer.TokenLE:
		return a.Intersect(b.FromRelation(RelLE)), nil
	case lexer.TokenGT:
		return a.Intersect(b.FromRelation(RelGT)), nil
	case lexer.TokenGE:
		return a.Intersect(b.FromRelation(RelGE)), nil
	default:
		return S{}, ErrUnsupported
	}
}
