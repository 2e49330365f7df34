package parser

import (
	"errors"

	"go.starlark.net/syntax"

	"github.com/sable-lang/sable/translate"
)

var f = translate.From

var (
	ErrNoInput = errors.New(f("empty program"))
)

// ErrUnsupportedSyntax reports a syntax form with no expression-tree lowering.
type ErrUnsupportedSyntax struct {
	Pos  syntax.Position
	What string
}

func (err ErrUnsupportedSyntax) Error() string {
	return f("%v:%v: unsupported syntax: %v", err.Pos.Line, err.Pos.Col, err.What)
}

func (err ErrUnsupportedSyntax) Is(target error) (ok bool) {
	_, ok = target.(ErrUnsupportedSyntax)
	return
}

// unsupported builds an ErrUnsupportedSyntax at a node's position.
func unsupported(node syntax.Node, what string) error {
	start, _ := node.Span()
	return ErrUnsupportedSyntax{Pos: start, What: what}
}
