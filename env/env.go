// Package env implements the binding environment the virtual machine
// reads and writes for variable semantics.
package env

import (
	"github.com/sable-lang/sable/value"
)

// VariableScope selects the scope a new binding is created in.
type VariableScope int

//go:generate go tool stringer -linecomment -type=VariableScope
const (
	SCOPE_FUNCTION = VariableScope(0) // function
	SCOPE_BLOCK    = VariableScope(1) // block
)

// Environment is the capability surface the virtual machine needs from a
// binding store. Implementations outside this package may back it with
// any scope model they like.
type Environment interface {
	// HasBinding returns true if name is bound.
	HasBinding(name string) bool

	// GetBindingValue returns the current value of name, or an error
	// if name is unbound.
	GetBindingValue(name string) (value.Value, error)

	// CreateMutableBinding registers a new uninitialized mutable binding.
	CreateMutableBinding(name string, deletable bool, scope VariableScope)

	// InitializeBinding gives a newly created binding its first value.
	InitializeBinding(name string, v value.Value)

	// SetMutableBinding updates an existing binding's value.
	SetMutableBinding(name string, v value.Value, strict bool) error
}

type binding struct {
	value     value.Value
	mutable   bool
	deletable bool
}

// Declarative is a map-backed Environment. A single declarative record
// backs both scope kinds; an uninitialized binding reads as undefined.
type Declarative struct {
	bindings map[string]*binding
}

var _ Environment = (*Declarative)(nil)

// NewDeclarative creates an empty declarative environment.
func NewDeclarative() (environment *Declarative) {
	environment = &Declarative{
		bindings: map[string]*binding{},
	}
	return
}

// HasBinding returns true if name is bound.
func (environment *Declarative) HasBinding(name string) (ok bool) {
	_, ok = environment.bindings[name]
	return
}

// GetBindingValue returns the current value of name.
func (environment *Declarative) GetBindingValue(name string) (v value.Value, err error) {
	entry, ok := environment.bindings[name]
	if !ok {
		err = ErrUnbound(name)
		return
	}

	v = entry.value
	return
}

// CreateMutableBinding registers a new uninitialized mutable binding.
func (environment *Declarative) CreateMutableBinding(name string, deletable bool, scope VariableScope) {
	environment.bindings[name] = &binding{
		mutable:   true,
		deletable: deletable,
	}
}

// CreateImmutableBinding registers a new uninitialized immutable binding.
func (environment *Declarative) CreateImmutableBinding(name string) {
	environment.bindings[name] = &binding{}
}

// InitializeBinding gives a newly created binding its first value.
func (environment *Declarative) InitializeBinding(name string, v value.Value) {
	entry, ok := environment.bindings[name]
	if !ok {
		return
	}
	entry.value = v
}

// SetMutableBinding updates an existing binding's value. An unbound name
// is created on the fly unless strict is set; writing an immutable
// binding fails when strict and is ignored otherwise.
func (environment *Declarative) SetMutableBinding(name string, v value.Value, strict bool) (err error) {
	entry, ok := environment.bindings[name]
	if !ok {
		if strict {
			err = ErrUnbound(name)
			return
		}
		environment.CreateMutableBinding(name, true, SCOPE_FUNCTION)
		environment.InitializeBinding(name, v)
		return
	}

	if !entry.mutable {
		if strict {
			err = ErrImmutable(name)
		}
		return
	}

	entry.value = v
	return
}

// DeleteBinding removes a deletable binding, returning true on success.
func (environment *Declarative) DeleteBinding(name string) (ok bool) {
	entry, found := environment.bindings[name]
	if !found || !entry.deletable {
		return
	}

	delete(environment.bindings, name)
	ok = true
	return
}
