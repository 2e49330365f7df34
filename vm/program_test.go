package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		inst Instruction
		text string
	}){
		{"getname", MakeGetName(3, "x"), "getname.r3.x"},
		{"setname", MakeSetName("x", 2), "setname.x.r2"},
		{"add", MakeAdd(0, 0, 1), "add.r0.r0.r1"},
		{"int", MakeIntLiteral(0, -12), "int.r0.-12"},
		{"unknown", Instruction{Op: Opcode(7)}, "Opcode(7)"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.inst.String(), entry.name)
	}
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Code: []Instruction{
		MakeIntLiteral(0, 3),
		MakeSetName("x", 0),
	}}

	assert.Equal("  0: int.r0.3\n  1: setname.x.r0\n", prog.String())
}

func TestProgram_Instructions_Stop(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Code: []Instruction{
		MakeIntLiteral(0, 1),
		MakeIntLiteral(0, 2),
		MakeIntLiteral(0, 3),
	}}

	var seen int
	for range prog.Instructions() {
		seen++
		break
	}
	assert.Equal(1, seen)
}
