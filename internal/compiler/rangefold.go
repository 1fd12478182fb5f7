// internal/compiler/rangefold.go
package compiler

import (
	"sentra/internal/lexer"
	"sentra/internal/parser"
	"sentra/internal/valuerange"
)

// FoldConstantRanges walks stmts before hoisting compilation and rewrites
// any arithmetic/comparison subtree built entirely from numeric literals
// into a single Literal, the same generalization of precacheConstants'
// literal-folding that HoistingCompiler already does at the bytecode
// level, pushed one layer earlier so nested subtrees collapse too (e.g.
// `1 + 2 * 3` folds before either operand is ever compiled).
//
// A subtree folds only when BinOp/UnaryExpr's result, built with
// valuerange.S, collapses to a single Point — script numbers are
// untyped, so folding uses Width64 (the domain's widest, and thus safest,
// width) and never folds a subtree whose range doesn't collapse all the
// way to one value, since a non-Point result carries no benefit over
// leaving the arithmetic for the VM to execute directly.
func FoldConstantRanges(stmts []parser.Stmt) []parser.Stmt {
	for _, stmt := range stmts {
		foldStmt(stmt)
	}
	return stmts
}

func foldStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.PrintStmt:
		s.Expr = foldExpr(s.Expr)
	case *parser.LetStmt:
		s.Expr = foldExpr(s.Expr)
	case *parser.AssignmentStmt:
		s.Value = foldExpr(s.Value)
	case *parser.IndexAssignmentStmt:
		s.Object = foldExpr(s.Object)
		s.Index = foldExpr(s.Index)
		s.Value = foldExpr(s.Value)
	case *parser.ExpressionStmt:
		s.Expr = foldExpr(s.Expr)
	case *parser.FunctionStmt:
		foldStmts(s.Body)
	case *parser.ReturnStmt:
		if s.Value != nil {
			s.Value = foldExpr(s.Value)
		}
	case *parser.IfStmt:
		s.Condition = foldExpr(s.Condition)
		foldStmts(s.Then)
		foldStmts(s.Else)
	case *parser.WhileStmt:
		s.Condition = foldExpr(s.Condition)
		foldStmts(s.Body)
	case *parser.ForStmt:
		if s.Init != nil {
			foldStmt(s.Init)
		}
		if s.Condition != nil {
			s.Condition = foldExpr(s.Condition)
		}
		if s.Update != nil {
			s.Update = foldExpr(s.Update)
		}
		foldStmts(s.Body)
	case *parser.ForInStmt:
		s.Collection = foldExpr(s.Collection)
		foldStmts(s.Body)
	case *parser.ExportStmt:
		if s.Stmt != nil {
			foldStmt(s.Stmt)
		}
	case *parser.ClassStmt:
		for _, m := range s.Methods {
			foldStmt(m)
		}
	case *parser.TryStmt:
		foldStmts(s.TryBlock)
		foldStmts(s.CatchBlock)
		foldStmts(s.FinallyBlock)
	case *parser.ThrowStmt:
		s.Value = foldExpr(s.Value)
	case *parser.MatchStmt:
		s.Value = foldExpr(s.Value)
		for i := range s.Cases {
			s.Cases[i].Pattern = foldExpr(s.Cases[i].Pattern)
			foldStmts(s.Cases[i].Body)
		}
	}
}

func foldStmts(stmts []parser.Stmt) {
	for _, stmt := range stmts {
		foldStmt(stmt)
	}
}

// foldExpr recurses into e's children, folding each, then tries to
// collapse e itself if it is a Binary or UnaryExpr over literal numbers.
func foldExpr(e parser.Expr) parser.Expr {
	switch expr := e.(type) {
	case *parser.Binary:
		expr.Left = foldExpr(expr.Left)
		expr.Right = foldExpr(expr.Right)
		if folded, ok := foldBinary(expr); ok {
			return folded
		}
		return expr
	case *parser.UnaryExpr:
		expr.Operand = foldExpr(expr.Operand)
		if expr.Operator == "-" {
			if n, ok := literalInt(expr.Operand); ok {
				return &parser.Literal{Value: float64(-n)}
			}
		}
		return expr
	case *parser.LogicalExpr:
		expr.Left = foldExpr(expr.Left)
		expr.Right = foldExpr(expr.Right)
		return expr
	case *parser.CallExpr:
		expr.Callee = foldExpr(expr.Callee)
		for i := range expr.Args {
			expr.Args[i] = foldExpr(expr.Args[i])
		}
		return expr
	case *parser.IfExpr:
		expr.Cond = foldExpr(expr.Cond)
		expr.ThenBranch = foldExpr(expr.ThenBranch)
		if expr.ElseBranch != nil {
			expr.ElseBranch = foldExpr(expr.ElseBranch)
		}
		return expr
	case *parser.BlockExpr:
		foldStmts(expr.Stmts)
		return expr
	case *parser.ArrayExpr:
		for i := range expr.Elements {
			expr.Elements[i] = foldExpr(expr.Elements[i])
		}
		return expr
	case *parser.MapExpr:
		for i := range expr.Values {
			expr.Values[i] = foldExpr(expr.Values[i])
		}
		return expr
	case *parser.IndexExpr:
		expr.Object = foldExpr(expr.Object)
		expr.Index = foldExpr(expr.Index)
		return expr
	case *parser.SetIndexExpr:
		expr.Object = foldExpr(expr.Object)
		expr.Index = foldExpr(expr.Index)
		expr.Value = foldExpr(expr.Value)
		return expr
	case *parser.Assign:
		expr.Value = foldExpr(expr.Value)
		return expr
	case *parser.PropertyExpr:
		expr.Object = foldExpr(expr.Object)
		return expr
	case *parser.InterpolationExpr:
		for i := range expr.Parts {
			expr.Parts[i] = foldExpr(expr.Parts[i])
		}
		return expr
	default:
		return e
	}
}

// literalInt reports the exact int64 value of e if e is a Literal boxing
// an integral float64.
func literalInt(e parser.Expr) (int64, bool) {
	lit, ok := e.(*parser.Literal)
	if !ok {
		return 0, false
	}
	f, ok := lit.Value.(float64)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// foldBinary attempts to collapse expr into a single Literal by running
// its operator through valuerange.BinOp over each operand's Point range.
// It only ever consults S through its exported operations (Min/FitsInt64),
// and only reports ok when the result is an exact singleton.
func foldBinary(expr *parser.Binary) (parser.Expr, bool) {
	left, ok := literalInt(expr.Left)
	if !ok {
		return nil, false
	}
	right, ok := literalInt(expr.Right)
	if !ok {
		return nil, false
	}

	tok := lexer.TokenType(expr.Operator)
	result, err := valuerange.BinOp(tok, valuerange.Point(left), valuerange.Point(right), valuerange.Width64)
	if err != nil {
		return nil, false
	}

	switch tok {
	case lexer.TokenDoubleEqual, lexer.TokenNotEqual, lexer.TokenLT, lexer.TokenLE, lexer.TokenGT, lexer.TokenGE:
		// BinOp answers comparisons by narrowing `left` to the values
		// consistent with the relation holding against `right`; since both
		// sides are already concrete points, the narrowed set is non-empty
		// iff the comparison is true.
		return &parser.Literal{Value: !result.IsEmpty()}, true
	default:
		card, fits := valuerange.FitsInt64(result)
		if !fits || card != 1 {
			return nil, false
		}
		v, err := result.Min()
		if err != nil {
			return nil, false
		}
		return &parser.Literal{Value: float64(v)}, true
	}
}
