// Package value implements the dynamic value model of the sable engine.
//
// The compiler and virtual machine treat values as opaque; the coercion
// rules for combining them live entirely here.
package value

import (
	"math"
	"strconv"
)

// Kind is the dynamic type of a Value.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_UNDEFINED = Kind(0) // undefined
	KIND_BOOLEAN   = Kind(1) // boolean
	KIND_INT       = Kind(2) // int
	KIND_STRING    = Kind(3) // string
)

// Value is one dynamic value.
// The zero Value is undefined, so a zeroed array of values is a correctly
// initialized register file.
type Value struct {
	kind Kind
	num  int32
	str  string
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) (v Value) {
	v = Value{kind: KIND_BOOLEAN}
	if b {
		v.num = 1
	}
	return
}

// Int returns a 32-bit integer value.
func Int(n int32) Value {
	return Value{kind: KIND_INT, num: n}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: KIND_STRING, str: s}
}

// Kind returns the dynamic type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsUndefined returns true if the value is undefined.
func (v Value) IsUndefined() bool {
	return v.kind == KIND_UNDEFINED
}

// Int returns the integer content of the value, and whether it is an integer.
func (v Value) Int() (n int32, ok bool) {
	if v.kind == KIND_INT {
		n = v.num
		ok = true
	}
	return
}

// numeric coerces the value for numeric addition. Booleans count as 0 or 1.
func (v Value) numeric() (n int32, ok bool) {
	switch v.kind {
	case KIND_INT, KIND_BOOLEAN:
		n = v.num
		ok = true
	}
	return
}

// Add combines two values.
//   - If either operand is a string, the result is the concatenation of
//     both display forms.
//   - Otherwise both operands must coerce to integers; the sum must stay
//     within 32 bits.
//
// There is no floating point in this value model, so pairings that would
// yield NaN in a full engine fail instead.
func (v Value) Add(other Value) (out Value, err error) {
	if v.kind == KIND_STRING || other.kind == KIND_STRING {
		out = Str(v.String() + other.String())
		return
	}

	a, ok := v.numeric()
	if !ok {
		err = ErrOperation{Op: "+", Left: v, Right: other}
		return
	}
	b, ok := other.numeric()
	if !ok {
		err = ErrOperation{Op: "+", Left: v, Right: other}
		return
	}

	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		err = ErrOverflow
		return
	}

	out = Int(int32(sum))
	return
}

// String returns the display form of the value.
func (v Value) String() (out string) {
	switch v.kind {
	case KIND_UNDEFINED:
		out = "undefined"
	case KIND_BOOLEAN:
		out = "false"
		if v.num != 0 {
			out = "true"
		}
	case KIND_INT:
		out = strconv.FormatInt(int64(v.num), 10)
	case KIND_STRING:
		out = v.str
	}
	return
}
