package vm

import (
	"fmt"
)

// Register is the index of one slot in the register file.
//
// The VM keeps an array of 256 values called "registers" that hold the
// intermediate results of the expression being evaluated. Every
// instruction refers to at least one register.
type Register uint8

// Opcode is the kind of operation an Instruction performs.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_GET_NAME    = Opcode(0) // getname
	OP_SET_NAME    = Opcode(1) // setname
	OP_ADD         = Opcode(2) // add
	OP_INT_LITERAL = Opcode(3) // int
)

// Instruction is a single VM operation with the registers, name, or
// literal it operates on. The opcode set is closed: it is the contract
// between the compiler and the VM, and a new expression form needs a
// new opcode here first.
type Instruction struct {
	Op     Opcode
	Target Register // Register written (OP_GET_NAME, OP_ADD, OP_INT_LITERAL).
	Left   Register // Left operand (OP_ADD); source register (OP_SET_NAME).
	Right  Register // Right operand (OP_ADD).
	Name   string   // Binding name (OP_GET_NAME, OP_SET_NAME).
	Value  int32    // Literal value (OP_INT_LITERAL).
}

// MakeGetName creates an instruction that reads binding name into target.
func MakeGetName(target Register, name string) Instruction {
	return Instruction{Op: OP_GET_NAME, Target: target, Name: name}
}

// MakeSetName creates an instruction that writes the source register to
// binding name, creating the binding on first write.
func MakeSetName(name string, source Register) Instruction {
	return Instruction{Op: OP_SET_NAME, Name: name, Left: source}
}

// MakeAdd creates an instruction that adds the left and right registers
// into target.
func MakeAdd(target, left, right Register) Instruction {
	return Instruction{Op: OP_ADD, Target: target, Left: left, Right: right}
}

// MakeIntLiteral creates an instruction that stores an integer literal
// into target.
func MakeIntLiteral(target Register, value int32) Instruction {
	return Instruction{Op: OP_INT_LITERAL, Target: target, Value: value}
}

// String returns the listing representation of this instruction.
func (inst Instruction) String() (out string) {
	switch inst.Op {
	case OP_GET_NAME:
		out = fmt.Sprintf("%v.r%d.%v", inst.Op, inst.Target, inst.Name)
	case OP_SET_NAME:
		out = fmt.Sprintf("%v.%v.r%d", inst.Op, inst.Name, inst.Left)
	case OP_ADD:
		out = fmt.Sprintf("%v.r%d.r%d.r%d", inst.Op, inst.Target, inst.Left, inst.Right)
	case OP_INT_LITERAL:
		out = fmt.Sprintf("%v.r%d.%d", inst.Op, inst.Target, inst.Value)
	default:
		out = inst.Op.String()
	}

	return
}
