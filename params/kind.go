// Package params implements the parameter-signature builder, the frozen
// Signature it produces, and the argument binder that fills a call's
// values into a function's declared parameter slots. It is the hot path of
// every function invocation: deciding which actual argument lands in which
// formal slot, collecting variadic overflow, applying defaults, and
// reporting precise call errors.
package params

import "grailquery/value"

// Kind describes one parameter's defaulting behavior. It is a closed
// tagged variant, not a numeric enum with a side table: five unexported
// struct types implement the sealed interface below, the way the teacher
// encodes behavior-relevant facts directly on FormalArg rather than behind
// a type switch on an int (gql/func.go's FormalArg). Unlike FormalArg,
// which carries a dozen GQL-specific fields (Closure, Symbol,
// JoinClosure, ...) on one struct, Kind keeps only the defaulting
// behavior a parameter can have, because that's all this core needs to
// decide during bind.
type Kind interface {
	isKind()
	String() string
}

type requiredKind struct{}

func (requiredKind) isKind() {}
func (requiredKind) String() string { return "required" }

// Required marks a parameter that must receive a value; binding fails with
// MissingParameter if it doesn't.
var Required Kind = requiredKind{}

type optionalKind struct{}

func (optionalKind) isKind() {}
func (optionalKind) String() string { return "optional" }

// Optional marks a parameter whose absence is legal; its slot is left
// empty rather than filled with a default.
var Optional Kind = optionalKind{}

type defaultedKind struct{ v value.Value }

func (defaultedKind) isKind() {}
func (defaultedKind) String() string { return "defaulted" }

// Defaulted marks a parameter that, absent a supplied value, is filled
// with v. v is shared (not copied per call) across every invocation that
// falls back to it, the same way FormalArg.DefaultValue is one Value
// shared by all calls to a builtin.
func Defaulted(v value.Value) Kind { return defaultedKind{v: v} }

// DefaultValue returns the value a Defaulted kind fills its slot with. It
// panics if k is not Defaulted; callers that don't already know the kind
// should type-switch instead.
func DefaultValue(k Kind) value.Value {
	d, ok := k.(defaultedKind)
	if !ok {
		panic("params: DefaultValue called on a non-Defaulted kind")
	}
	return d.v
}

type argsKind struct{}

func (argsKind) isKind() {}
func (argsKind) String() string { return "args" }

// Args marks the variadic positional sink (*args). At most one parameter
// in a Signature may have this kind.
var Args Kind = argsKind{}

type kwargsKind struct{}

func (kwargsKind) isKind() {}
func (kwargsKind) String() string { return "kwargs" }

// KWargs marks the variadic keyword sink (**kwargs). At most one
// parameter in a Signature may have this kind, and it must be last.
var KWargs Kind = kwargsKind{}

// IsDefaulted reports whether k is a Defaulted kind.
func IsDefaulted(k Kind) bool {
	_, ok := k.(defaultedKind)
	return ok
}
