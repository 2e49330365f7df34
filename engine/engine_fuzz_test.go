package engine

import (
	"testing"
)

func FuzzEval(f *testing.F) {
	f.Add("2 + 2")
	f.Add("x = 3; x + x")
	f.Add("a = 1; b = 2; a + b; b")
	f.Add("2.0 + 3.0")
	f.Add("1 + (2 + (3 + 4))")
	f.Add("nosuch")
	f.Add("1.5 + 1")
	f.Add("")

	f.Fuzz(func(t *testing.T, src string) {
		eng := NewEngine()

		// Any input must either evaluate to a value or fail with an
		// error; it must never panic.
		result, err := eng.Eval("fuzz", src)
		if err == nil && len(result.String()) == 0 {
			t.Errorf("no display form for result of %q", src)
		}
	})
}
