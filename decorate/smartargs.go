package decorate

import (
	"fmt"

	"github.com/mitchellh/copystructure"
)

// Args are keyword arguments by name.
type Args map[string]any

type paramKind int

const (
	kindValue paramKind = iota
	kindEvaluated
	kindIsolated
)

// Param describes how a keyword argument's default is produced.
type Param struct {
	kind  paramKind
	value any
	eval  func() any
}

// Value is a plain default, shared by every call that omits the argument.
func Value(v any) Param {
	return Param{kind: kindValue, value: v}
}

// Evaluated is a default recomputed by fn on every call that omits the argument.
func Evaluated(fn func() any) Param {
	return Param{kind: kindEvaluated, eval: fn}
}

// Isolated marks an argument the caller must supply. The callee receives a
// deep copy, so mutating it never affects the caller's value.
func Isolated() Param {
	return Param{kind: kindIsolated}
}

// SmartArgs wraps fn so that missing keyword arguments are filled in from
// params. Arguments not named in params are passed through untouched.
func SmartArgs[R any](params map[string]Param, fn func(Args) R) func(Args) (R, error) {
	return func(in Args) (R, error) {
		var zero R
		out := make(Args, len(params)+len(in))
		for name, v := range in {
			out[name] = v
		}

		var evaluated, isolated bool
		for name, p := range params {
			v, given := in[name]
			switch {
			case given && p.kind == kindIsolated:
				cp, err := copystructure.Copy(v)
				if err != nil {
					return zero, fmt.Errorf("SmartArgs: copy %q: %w", name, err)
				}
				out[name] = cp
				isolated = true
			case given:
				// caller value wins
			case p.kind == kindEvaluated:
				if p.eval != nil {
					out[name] = p.eval()
				} else {
					out[name] = nil
				}
				evaluated = true
			case p.kind == kindIsolated:
				return zero, fmt.Errorf("SmartArgs: %q: %w", name, ErrMissingIsolated)
			default:
				out[name] = p.value
			}
		}
		if evaluated && isolated {
			return zero, fmt.Errorf("SmartArgs: %w", ErrMixedSmartArgs)
		}

		return fn(out), nil
	}
}
