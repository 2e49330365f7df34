// Package engine drives the parse, compile, run pipeline over a
// persistent global environment.
package engine

import (
	"log"

	"github.com/sable-lang/sable/env"
	"github.com/sable-lang/sable/parser"
	"github.com/sable-lang/sable/value"
	"github.com/sable-lang/sable/vm"
)

// Engine evaluates source text. Bindings created by one Eval call stay
// visible to later calls; every call runs on a fresh virtual machine.
type Engine struct {
	Verbose bool // If set, traces compiled programs and execution.

	Globals *env.Declarative // Global bindings, shared across Eval calls.
}

// NewEngine creates an engine with an empty global environment.
func NewEngine() (eng *Engine) {
	eng = &Engine{
		Globals: env.NewDeclarative(),
	}

	return
}

// Compile parses and compiles src without running it.
func (eng *Engine) Compile(filename string, src any) (prog *vm.Program, err error) {
	expr, err := parser.Parse(filename, src)
	if err != nil {
		return
	}

	prog, err = vm.Compile(expr)
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
	}

	return
}

// Eval parses, compiles, and runs src, returning the resulting value.
func (eng *Engine) Eval(filename string, src any) (result value.Value, err error) {
	prog, err := eng.Compile(filename, src)
	if err != nil {
		return
	}

	if eng.Verbose {
		log.Printf("%v:\n%v", filename, prog)
	}

	machine := vm.NewVM(eng.Globals)
	machine.Verbose = eng.Verbose

	result, err = machine.Run(prog)
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
	}

	return
}
