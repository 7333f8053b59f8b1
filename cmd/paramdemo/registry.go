// Command paramdemo is a small interactive/batch harness exercising
// package params end to end: it declares a couple of demo signatures,
// parses call expressions from the command line or stdin, binds them, and
// prints the resulting slots or the precise BindError.
package main

import (
	"grailquery/params"
	"grailquery/symbol"
	"grailquery/value"
)

// demoSignatures mirrors the two worked examples used throughout this
// module's own tests: f(a, b=10, *args, c, **kwargs) and g($x, /, y, *, z).
func demoSignatures() map[string]*params.Signature {
	f := params.NewBuilder("f").
		NoMorePositionalOnlyArgs().
		Required(symbol.Intern("a")).
		Defaulted(symbol.Intern("b"), value.NewInt(10)).
		Args(symbol.Args).
		Required(symbol.Intern("c")).
		KWargs(symbol.KWargs).
		Finish()

	g := params.NewBuilder("g").
		Required(symbol.Intern("$x")).
		NoMorePositionalOnlyArgs().
		Required(symbol.Intern("y")).
		NoMorePositionalArgs().
		Required(symbol.Intern("z")).
		Finish()

	return map[string]*params.Signature{
		"f": f,
		"g": g,
	}
}
