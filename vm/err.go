package vm

import (
	"errors"

	"github.com/sable-lang/sable/ast"
	"github.com/sable-lang/sable/translate"
)

var f = translate.From

var (
	// Compile errors
	ErrRegisterExhausted = errors.New(f("out of registers"))

	// Run errors
	ErrOpcodeDecode = errors.New(f("decode"))
)

// ErrUnsupportedExpr reports an expression shape with no translation rule.
type ErrUnsupportedExpr struct {
	Expr ast.Expr
}

func (err ErrUnsupportedExpr) Error() string {
	return f("cannot compile '%v'", err.Expr)
}

func (err ErrUnsupportedExpr) Is(target error) (ok bool) {
	_, ok = target.(ErrUnsupportedExpr)
	return
}

// ErrBadConstant reports a numeric constant that is not exactly a 32-bit integer.
type ErrBadConstant float64

func (err ErrBadConstant) Error() string {
	return f("constant %v is not a 32-bit integer", float64(err))
}

func (err ErrBadConstant) Is(target error) (ok bool) {
	_, ok = target.(ErrBadConstant)
	return
}

// ErrInstruction marks the instruction a run-time failure happened at.
type ErrInstruction Instruction

func (err ErrInstruction) Error() string {
	return f("instruction %v", Instruction(err).String())
}

func (err ErrInstruction) Is(target error) (ok bool) {
	_, ok = target.(ErrInstruction)
	return
}
