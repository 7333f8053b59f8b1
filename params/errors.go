package params

import (
	"fmt"

	"github.com/grailbio/base/errors"

	"grailquery/symbol"
)

// BindError is returned by Bind when a call's arguments cannot be matched
// against a Signature. Every BindError carries the function's declared
// name and, for kinds where it's useful, the rendered parameter list, the
// same way the teacher's user-facing errors via Panicf always include
// enough of the call site to diagnose without a debugger.
type BindError struct {
	Kind      errors.Kind
	Op        string // MissingParameter, RepeatedArg, ...
	Function  string
	Signature string
	Names     []string
}

func (e *BindError) Error() string {
	switch e.Op {
	case "MissingParameter":
		return fmt.Sprintf("%s: missing required argument %s (signature: %s(%s))", e.Function, e.Names[0], e.Function, e.Signature)
	case "RepeatedArg":
		return fmt.Sprintf("%s: argument %s given more than once (signature: %s(%s))", e.Function, e.Names[0], e.Function, e.Signature)
	case "ExtraPositionalArg":
		return fmt.Sprintf("%s: too many positional arguments (signature: %s(%s))", e.Function, e.Function, e.Signature)
	case "ExtraNamedArg":
		return fmt.Sprintf("%s: unexpected keyword argument(s) %v (signature: %s(%s))", e.Function, e.Names, e.Function, e.Signature)
	case "ArgsNotIterable":
		return fmt.Sprintf("%s: *args value is not iterable (signature: %s(%s))", e.Function, e.Function, e.Signature)
	case "ArgsValueIsNotString":
		return fmt.Sprintf("%s: **kwargs key is not a string (signature: %s(%s))", e.Function, e.Function, e.Signature)
	case "KwArgsIsNotDict":
		return fmt.Sprintf("%s: **kwargs value is not a mapping (signature: %s(%s))", e.Function, e.Function, e.Signature)
	default:
		return fmt.Sprintf("%s: bind error %s", e.Function, e.Op)
	}
}

func (s *Signature) errMissingParameter(name symbol.ID) error {
	return errors.E(errors.NotExist, &BindError{
		Kind: errors.NotExist, Op: "MissingParameter",
		Function: s.functionName, Signature: s.ParametersStr(),
		Names: []string{name.Str()},
	})
}

func (s *Signature) errRepeatedArg(name string) error {
	return errors.E(errors.Invalid, &BindError{
		Kind: errors.Invalid, Op: "RepeatedArg",
		Function: s.functionName, Signature: s.ParametersStr(),
		Names: []string{name},
	})
}

func (s *Signature) errExtraPositionalArg(count int) error {
	return errors.E(errors.Invalid, &BindError{
		Kind: errors.Invalid, Op: "ExtraPositionalArg",
		Function: s.functionName, Signature: s.ParametersStr(),
		Names: []string{fmt.Sprintf("%d", count)},
	})
}

func (s *Signature) errExtraNamedArg(names []string) error {
	return errors.E(errors.Invalid, &BindError{
		Kind: errors.Invalid, Op: "ExtraNamedArg",
		Function: s.functionName, Signature: s.ParametersStr(),
		Names: names,
	})
}

func (s *Signature) errArgsNotIterable() error {
	return errors.E(errors.Invalid, &BindError{
		Kind: errors.Invalid, Op: "ArgsNotIterable",
		Function: s.functionName, Signature: s.ParametersStr(),
	})
}

func (s *Signature) errArgsValueIsNotString() error {
	return errors.E(errors.Invalid, &BindError{
		Kind: errors.Invalid, Op: "ArgsValueIsNotString",
		Function: s.functionName, Signature: s.ParametersStr(),
	})
}

func (s *Signature) errKwArgsIsNotDict() error {
	return errors.E(errors.Invalid, &BindError{
		Kind: errors.Invalid, Op: "KwArgsIsNotDict",
		Function: s.functionName, Signature: s.ParametersStr(),
	})
}
