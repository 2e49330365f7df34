package vm

import (
	"errors"
	"log"

	"github.com/sable-lang/sable/env"
	"github.com/sable-lang/sable/value"
)

// VM executes compiled programs against a binding environment.
//
// A VM owns its register file exclusively. Run may be called again on
// the same VM; the register file is not cleared between runs, so callers
// wanting a clean file construct a new VM.
type VM struct {
	Verbose bool // Set to enable verbose logging.

	environment env.Environment
	registers   [REGISTER_LIMIT]value.Value
}

// NewVM creates a VM with a fresh register file, every slot undefined.
func NewVM(environment env.Environment) (machine *VM) {
	machine = &VM{
		environment: environment,
	}

	return
}

func (machine *VM) get(register Register) value.Value {
	return machine.registers[register]
}

func (machine *VM) set(target Register, v value.Value) {
	machine.registers[target] = v
}

// Run executes the program and returns the value left in register 0.
// Execution stops at the first failing instruction; registers and
// bindings written before the failure stay written.
func (machine *VM) Run(prog *Program) (result value.Value, err error) {
	for n, inst := range prog.Instructions() {
		if machine.Verbose {
			log.Printf("%3d: %v", n, inst)
		}

		err = machine.execute(inst)
		if err != nil {
			return
		}
	}

	result = machine.get(Register(0))
	return
}

// execute runs a single instruction.
func (machine *VM) execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(inst), err)
		}
	}()

	switch inst.Op {
	case OP_GET_NAME:
		var v value.Value
		v, err = machine.environment.GetBindingValue(inst.Name)
		if err != nil {
			return
		}
		machine.set(inst.Target, v)

	case OP_SET_NAME:
		v := machine.get(inst.Left)
		if machine.environment.HasBinding(inst.Name) {
			err = machine.environment.SetMutableBinding(inst.Name, v, true)
			if err != nil {
				return
			}
		} else {
			// First write to an unseen name creates the binding.
			machine.environment.CreateMutableBinding(inst.Name, true, env.SCOPE_FUNCTION)
			machine.environment.InitializeBinding(inst.Name, v)
		}

	case OP_ADD:
		var v value.Value
		v, err = machine.get(inst.Left).Add(machine.get(inst.Right))
		if err != nil {
			return
		}
		machine.set(inst.Target, v)

	case OP_INT_LITERAL:
		machine.set(inst.Target, value.Int(inst.Value))

	default:
		err = ErrOpcodeDecode
	}

	return
}
