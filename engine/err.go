package engine

import (
	"github.com/sable-lang/sable/translate"
)

var f = translate.From

// ErrScript indicates the script a compile or run error came from.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
