package vm

import (
	"errors"
	"math"

	"github.com/sable-lang/sable/ast"
)

const (
	REGISTER_LIMIT = 256 // Number of slots in the register file.
)

// Compile translates an expression tree into a Program whose result
// lands in register 0. Compilation is pure: the same tree always
// compiles to the same program.
func Compile(expr ast.Expr) (prog *Program, err error) {
	var code []Instruction
	err = compileExpr(Register(0), expr, &code)
	if err != nil {
		return
	}

	prog = &Program{Code: code}
	return
}

// compileExpr appends the instructions that leave expr's run-time value
// in the target register.
func compileExpr(target Register, expr ast.Expr, out *[]Instruction) (err error) {
	switch node := expr.(type) {
	case *ast.IntConst:
		*out = append(*out, MakeIntLiteral(target, node.Value))

	case *ast.NumConst:
		// The register file holds no floating point values; only
		// constants exactly representable as a 32-bit integer compile.
		num := node.Value
		if math.IsNaN(num) || num > math.MaxInt32 || num < math.MinInt32 || num != math.Trunc(num) {
			err = errors.Join(ErrUnsupportedExpr{Expr: node}, ErrBadConstant(num))
			return
		}
		*out = append(*out, MakeIntLiteral(target, int32(num)))

	case *ast.NameExpr:
		*out = append(*out, MakeGetName(target, node.Name))

	case *ast.AssignExpr:
		name, ok := node.Target.(*ast.NameExpr)
		if !ok {
			err = ErrUnsupportedExpr{Expr: node.Target}
			return
		}
		err = compileExpr(target, node.Value, out)
		if err != nil {
			return
		}
		*out = append(*out, MakeSetName(name.Name, target))

	case *ast.BinaryExpr:
		if node.Op != ast.ADD {
			err = ErrUnsupportedExpr{Expr: node}
			return
		}

		// The left operand compiles first; left-to-right evaluation
		// order is part of the compiler's contract, not an accident.
		err = compileExpr(target, node.Left, out)
		if err != nil {
			return
		}

		// The right operand needs one more register. Allocation is
		// linear with no reuse, so expression depth is bounded by the
		// register file; past the last register, fail rather than wrap.
		if target == Register(REGISTER_LIMIT-1) {
			err = ErrRegisterExhausted
			return
		}
		tmp := target + 1
		err = compileExpr(tmp, node.Right, out)
		if err != nil {
			return
		}

		*out = append(*out, MakeAdd(target, target, tmp))

	case *ast.BlockExpr:
		// Every sub-expression lands in the same register; the block's
		// value is whatever the last one left there. Binding writes by
		// earlier sub-expressions persist in the environment.
		for _, sub := range node.Exprs {
			err = compileExpr(target, sub, out)
			if err != nil {
				return
			}
		}

	default:
		err = ErrUnsupportedExpr{Expr: expr}
	}

	return
}
