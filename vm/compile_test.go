package vm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sable-lang/sable/ast"
)

// nestedAdd builds a right-nested chain of count additions:
// 1 + (1 + (1 + ... + 1)).
func nestedAdd(count int) (expr ast.Expr) {
	expr = &ast.IntConst{Value: 1}
	for range count {
		expr = &ast.BinaryExpr{
			Op:    ast.ADD,
			Left:  &ast.IntConst{Value: 1},
			Right: expr,
		}
	}

	return
}

func TestCompile_IntConst(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile(&ast.IntConst{Value: 42})
	assert.NoError(err)
	assert.Equal([]Instruction{
		MakeIntLiteral(0, 42),
	}, prog.Code)
}

func TestCompile_Add(t *testing.T) {
	assert := assert.New(t)

	prog, err := Compile(&ast.BinaryExpr{
		Op:    ast.ADD,
		Left:  &ast.IntConst{Value: 2},
		Right: &ast.IntConst{Value: 2},
	})
	assert.NoError(err)
	assert.Equal([]Instruction{
		MakeIntLiteral(0, 2),
		MakeIntLiteral(1, 2),
		MakeAdd(0, 0, 1),
	}, prog.Code)
}

func TestCompile_AssignBlock(t *testing.T) {
	assert := assert.New(t)

	// x = 3; x + x
	prog, err := Compile(&ast.BlockExpr{Exprs: []ast.Expr{
		&ast.AssignExpr{
			Target: &ast.NameExpr{Name: "x"},
			Value:  &ast.IntConst{Value: 3},
		},
		&ast.BinaryExpr{
			Op:    ast.ADD,
			Left:  &ast.NameExpr{Name: "x"},
			Right: &ast.NameExpr{Name: "x"},
		},
	}})
	assert.NoError(err)
	assert.Equal([]Instruction{
		MakeIntLiteral(0, 3),
		MakeSetName("x", 0),
		MakeGetName(0, "x"),
		MakeGetName(1, "x"),
		MakeAdd(0, 0, 1),
	}, prog.Code)
}

func TestCompile_Deterministic(t *testing.T) {
	assert := assert.New(t)

	tree := &ast.BlockExpr{Exprs: []ast.Expr{
		&ast.AssignExpr{
			Target: &ast.NameExpr{Name: "x"},
			Value:  nestedAdd(3),
		},
		&ast.NameExpr{Name: "x"},
	}}

	first, err := Compile(tree)
	assert.NoError(err)
	second, err := Compile(tree)
	assert.NoError(err)
	assert.Equal(first.Code, second.Code)
}

func TestCompile_LinearAllocation(t *testing.T) {
	assert := assert.New(t)

	// k nested additions touch registers 0..k, no further.
	const depth = 5
	prog, err := Compile(nestedAdd(depth))
	assert.NoError(err)

	max := Register(0)
	for _, inst := range prog.Instructions() {
		if inst.Target > max {
			max = inst.Target
		}
	}
	assert.Equal(Register(depth), max)
}

func TestCompile_RegisterExhaustion(t *testing.T) {
	assert := assert.New(t)

	// Depth 255 uses the whole register file.
	prog, err := Compile(nestedAdd(REGISTER_LIMIT - 1))
	assert.NoError(err)
	assert.Equal(2*(REGISTER_LIMIT-1)+1, len(prog.Code))

	// One more and the right operand has nowhere to go.
	prog, err = Compile(nestedAdd(REGISTER_LIMIT))
	assert.ErrorIs(err, ErrRegisterExhausted)
	assert.Nil(prog)
}

func TestCompile_NumConst(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		num   float64
		value int32
		bad   bool
	}){
		{name: "integral", num: 2.0, value: 2},
		{name: "negative_integral", num: -7.0, value: -7},
		{name: "max_i32", num: math.MaxInt32, value: math.MaxInt32},
		{name: "min_i32", num: math.MinInt32, value: math.MinInt32},
		{name: "fractional", num: 1.5, bad: true},
		{name: "nan", num: math.NaN(), bad: true},
		{name: "too_big", num: math.MaxInt32 + 1.0, bad: true},
		{name: "too_small", num: math.MinInt32 - 1.0, bad: true},
		{name: "inf", num: math.Inf(1), bad: true},
	}

	for _, entry := range table {
		prog, err := Compile(&ast.NumConst{Value: entry.num})
		if entry.bad {
			assert.ErrorIs(err, ErrBadConstant(0), entry.name)
			assert.ErrorIs(err, ErrUnsupportedExpr{}, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal([]Instruction{MakeIntLiteral(0, entry.value)}, prog.Code, entry.name)
	}
}

func TestCompile_BadAssignTarget(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile(&ast.AssignExpr{
		Target: &ast.IntConst{Value: 1},
		Value:  &ast.IntConst{Value: 2},
	})
	assert.ErrorIs(err, ErrUnsupportedExpr{})
}

func TestCompile_BadOperator(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []ast.BinaryOp{ast.SUB, ast.MUL, ast.DIV} {
		_, err := Compile(&ast.BinaryExpr{
			Op:    op,
			Left:  &ast.IntConst{Value: 1},
			Right: &ast.IntConst{Value: 2},
		})
		assert.ErrorIs(err, ErrUnsupportedExpr{}, op.String())
	}
}

func TestCompile_BadNodeKind(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile(&ast.StrConst{Value: "hello"})
	assert.ErrorIs(err, ErrUnsupportedExpr{})
}

func TestCompile_ErrorInsideBlock(t *testing.T) {
	require := require.New(t)

	// A failure anywhere poisons the whole compilation.
	_, err := Compile(&ast.BlockExpr{Exprs: []ast.Expr{
		&ast.IntConst{Value: 1},
		&ast.NumConst{Value: 0.5},
	}})
	require.ErrorIs(err, ErrUnsupportedExpr{})
}
