// Package vm implements the compile-and-execute core of the sable engine.
//
// The compiler lowers a parsed expression tree into a flat sequence of
// register instructions; the virtual machine executes that sequence
// against a binding environment, one instruction at a time, and returns
// whatever value is left in register 0.
//
// The instruction set is deliberately tiny: integer literals, named
// binding reads and writes, and addition. There are no branches, so a
// program always runs front to back. Registers are allocated linearly by
// expression depth and never reused, which bounds nesting depth at the
// size of the register file.
package vm
