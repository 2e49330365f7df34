package value

import (
	"errors"

	"github.com/sable-lang/sable/translate"
)

var f = translate.From

var (
	ErrOverflow = errors.New(f("integer overflow"))
)

// ErrOperation reports an operation with no defined result for its operand types.
type ErrOperation struct {
	Op    string
	Left  Value
	Right Value
}

func (err ErrOperation) Error() string {
	return f("no '%v' operation for %v and %v", err.Op, err.Left.Kind(), err.Right.Kind())
}

func (err ErrOperation) Is(target error) (ok bool) {
	_, ok = target.(ErrOperation)
	return
}
