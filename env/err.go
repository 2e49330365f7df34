package env

import (
	"github.com/sable-lang/sable/translate"
)

var f = translate.From

// ErrUnbound reports a read or strict write of a name with no binding.
type ErrUnbound string

func (err ErrUnbound) Error() string {
	return f("%v is not defined", string(err))
}

func (err ErrUnbound) Is(target error) (ok bool) {
	_, ok = target.(ErrUnbound)
	return
}

// ErrImmutable reports a strict write to an immutable binding.
type ErrImmutable string

func (err ErrImmutable) Error() string {
	return f("assignment to constant %v", string(err))
}

func (err ErrImmutable) Is(target error) (ok bool) {
	_, ok = target.(ErrImmutable)
	return
}
