package vm

import (
	"fmt"
	"iter"
	"strings"
)

// Program is the ordered instruction sequence produced by Compile.
// It is immutable once compiled; the instruction set has no branches,
// so instruction order is also execution order.
type Program struct {
	Code []Instruction
}

// Instructions iterates over the instructions in program order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(index int, inst Instruction) bool) {
		for n, inst := range prog.Code {
			if !yield(n, inst) {
				return
			}
		}
	}
}

// String returns a listing of the program, one instruction per line.
func (prog *Program) String() string {
	listing := strings.Builder{}
	for n, inst := range prog.Instructions() {
		fmt.Fprintf(&listing, "%3d: %v\n", n, inst)
	}

	return listing.String()
}
