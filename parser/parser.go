// Package parser lowers starlark expression syntax into sable
// expression trees.
package parser

import (
	"fmt"
	"math"
	"math/big"

	"go.starlark.net/syntax"

	"github.com/sable-lang/sable/ast"
)

// Parse parses src (a string, []byte, or io.Reader) and lowers it into
// an expression tree. A file of several statements lowers to a block; a
// single statement lowers to its expression.
func Parse(filename string, src any) (expr ast.Expr, err error) {
	opts := syntax.FileOptions{}
	file, err := opts.Parse(filename, src, 0)
	if err != nil {
		return
	}

	if len(file.Stmts) == 0 {
		err = ErrNoInput
		return
	}

	exprs := make([]ast.Expr, 0, len(file.Stmts))
	for _, stmt := range file.Stmts {
		var sub ast.Expr
		sub, err = lowerStmt(stmt)
		if err != nil {
			return
		}
		exprs = append(exprs, sub)
	}

	if len(exprs) == 1 {
		expr = exprs[0]
		return
	}

	expr = &ast.BlockExpr{Exprs: exprs}
	return
}

// lowerStmt lowers a single statement.
func lowerStmt(stmt syntax.Stmt) (expr ast.Expr, err error) {
	switch stmt := stmt.(type) {
	case *syntax.ExprStmt:
		expr, err = lowerExpr(stmt.X)

	case *syntax.AssignStmt:
		if stmt.Op != syntax.EQ {
			err = unsupported(stmt, fmt.Sprintf("'%v' assignment", stmt.Op))
			return
		}
		var target ast.Expr
		target, err = lowerExpr(stmt.LHS)
		if err != nil {
			return
		}
		var val ast.Expr
		val, err = lowerExpr(stmt.RHS)
		if err != nil {
			return
		}
		expr = &ast.AssignExpr{Target: target, Value: val}

	default:
		err = unsupported(stmt, fmt.Sprintf("%T statement", stmt))
	}

	return
}

// lowerExpr lowers a single expression.
func lowerExpr(e syntax.Expr) (expr ast.Expr, err error) {
	switch e := e.(type) {
	case *syntax.ParenExpr:
		expr, err = lowerExpr(e.X)

	case *syntax.Ident:
		expr = &ast.NameExpr{Name: e.Name}

	case *syntax.Literal:
		expr, err = lowerLiteral(e)

	case *syntax.UnaryExpr:
		// Negative constants arrive as unary minus on a literal.
		expr, err = lowerNegation(e)

	case *syntax.BinaryExpr:
		var op ast.BinaryOp
		switch e.Op {
		case syntax.PLUS:
			op = ast.ADD
		case syntax.MINUS:
			op = ast.SUB
		case syntax.STAR:
			op = ast.MUL
		case syntax.SLASH:
			op = ast.DIV
		default:
			err = unsupported(e, fmt.Sprintf("'%v' operator", e.Op))
			return
		}
		var left ast.Expr
		left, err = lowerExpr(e.X)
		if err != nil {
			return
		}
		var right ast.Expr
		right, err = lowerExpr(e.Y)
		if err != nil {
			return
		}
		expr = &ast.BinaryExpr{Op: op, Left: left, Right: right}

	default:
		err = unsupported(e, fmt.Sprintf("%T expression", e))
	}

	return
}

// lowerLiteral lowers an INT, FLOAT, or STRING literal. Integers outside
// the 32-bit range lower to numeric constants, which the compiler then
// accepts or rejects by its own representability rule.
func lowerLiteral(lit *syntax.Literal) (expr ast.Expr, err error) {
	switch lit.Token {
	case syntax.INT:
		switch v := lit.Value.(type) {
		case int64:
			if v >= math.MinInt32 && v <= math.MaxInt32 {
				expr = &ast.IntConst{Value: int32(v)}
				return
			}
			expr = &ast.NumConst{Value: float64(v)}
		case *big.Int:
			num, _ := new(big.Float).SetInt(v).Float64()
			expr = &ast.NumConst{Value: num}
		default:
			err = unsupported(lit, fmt.Sprintf("%T integer literal", lit.Value))
		}

	case syntax.FLOAT:
		expr = &ast.NumConst{Value: lit.Value.(float64)}

	case syntax.STRING:
		expr = &ast.StrConst{Value: lit.Value.(string)}

	default:
		err = unsupported(lit, fmt.Sprintf("'%v' literal", lit.Token))
	}

	return
}

// lowerNegation folds unary minus into the literal it negates.
func lowerNegation(e *syntax.UnaryExpr) (expr ast.Expr, err error) {
	if e.Op != syntax.MINUS {
		err = unsupported(e, fmt.Sprintf("'%v' operator", e.Op))
		return
	}

	lit, ok := e.X.(*syntax.Literal)
	if !ok {
		err = unsupported(e, "negation of a non-constant")
		return
	}

	expr, err = lowerLiteral(lit)
	if err != nil {
		return
	}

	switch node := expr.(type) {
	case *ast.IntConst:
		node.Value = -node.Value
	case *ast.NumConst:
		node.Value = -node.Value
	default:
		err = unsupported(e, "negation of a non-numeric constant")
	}

	return
}
