// Package ast defines the expression tree consumed by the compiler.
//
// Trees are produced by the parser package (or built directly in tests)
// and never mutated afterwards.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// BinaryOp is a binary operator kind.
type BinaryOp int

//go:generate go tool stringer -linecomment -type=BinaryOp
const (
	ADD = BinaryOp(0) // +
	SUB = BinaryOp(1) // -
	MUL = BinaryOp(2) // *
	DIV = BinaryOp(3) // /
)

// Expr is one node of an expression tree.
type Expr interface {
	fmt.Stringer
	expr()
}

// IntConst is an integer constant.
type IntConst struct {
	Value int32
}

// NumConst is a numeric constant that was not integer-typed in the source.
type NumConst struct {
	Value float64
}

// StrConst is a string constant.
type StrConst struct {
	Value string
}

// NameExpr is a reference to a variable by name.
type NameExpr struct {
	Name string
}

// AssignExpr assigns the value of Value to Target.
type AssignExpr struct {
	Target Expr
	Value  Expr
}

// BinaryExpr applies Op to Left and Right.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// BlockExpr is an ordered sequence of sub-expressions; its value is the
// value of the last one.
type BlockExpr struct {
	Exprs []Expr
}

func (*IntConst) expr()   {}
func (*NumConst) expr()   {}
func (*StrConst) expr()   {}
func (*NameExpr) expr()   {}
func (*AssignExpr) expr() {}
func (*BinaryExpr) expr() {}
func (*BlockExpr) expr()  {}

func (node *IntConst) String() string {
	return strconv.FormatInt(int64(node.Value), 10)
}

func (node *NumConst) String() string {
	return strconv.FormatFloat(node.Value, 'g', -1, 64)
}

func (node *StrConst) String() string {
	return strconv.Quote(node.Value)
}

func (node *NameExpr) String() string {
	return node.Name
}

func (node *AssignExpr) String() string {
	return fmt.Sprintf("(%v = %v)", node.Target, node.Value)
}

func (node *BinaryExpr) String() string {
	return fmt.Sprintf("(%v %v %v)", node.Left, node.Op, node.Right)
}

func (node *BlockExpr) String() string {
	subs := make([]string, len(node.Exprs))
	for n, sub := range node.Exprs {
		subs[n] = sub.String()
	}
	return "{" + strings.Join(subs, "; ") + "}"
}
