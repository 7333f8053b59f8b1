package params

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"

	"grailquery/symbol"
	"grailquery/value"
)

// style tracks where in the parameter-declaration grammar the Builder
// currently is. It only ever moves forward:
//
//	PosOnly -> PosOrNamed -> NamedOnly -> NoMore
//
// matching the grammar "[pos-only] [/] [pos-or-named] [*args | *] [name-only]
// [**kwargs]". Encoding the grammar as a monotonic state machine means bind
// order never needs a reflective "are we past *args yet?" check; the
// Builder enforces it once, at declaration time.
type style int

const (
	stylePosOnly style = iota
	stylePosOrNamed
	styleNamedOnly
	styleNoMore
)

// Builder assembles a function's parameter list in declaration order,
// validating structural rules as each parameter is added, and freezes the
// result into a Signature. Builder misuse (two *args, a parameter added
// after **kwargs, ...) is a programmer error at function-declaration time,
// not a runtime condition, so it panics via log.Panicf — the same
// convention validateFormalArgs uses in the teacher (gql/func.go).
type Builder struct {
	functionName string
	style        style

	names      []symbol.ID
	kinds      []Kind
	nameIndex  map[symbol.ID]int

	numPositionalOnly int
	numPositional     int
	argsIndex         int
	kwargsIndex       int
}

// NewBuilder starts assembling a signature for a function named
// functionName, used only in diagnostics.
func NewBuilder(functionName string) *Builder {
	return &Builder{
		functionName: functionName,
		nameIndex:    make(map[symbol.ID]int),
		argsIndex:    -1,
		kwargsIndex:  -1,
	}
}

func (b *Builder) addRegular(name symbol.ID, kind Kind) {
	if b.style == styleNoMore {
		log.Panicf("params: %s: cannot add parameter %s after **kwargs", b.functionName, name.Str())
	}
	if b.kwargsIndex >= 0 {
		log.Panicf("params: %s: cannot add parameter %s after **kwargs", b.functionName, name.Str())
	}
	if _, dup := b.nameIndex[name]; dup {
		log.Panicf("params: %s: duplicate parameter name %s", b.functionName, name.Str())
	}

	idx := len(b.names)
	b.names = append(b.names, name)
	b.kinds = append(b.kinds, kind)

	switch b.style {
	case stylePosOnly:
		b.numPositionalOnly++
		b.numPositional++
	case stylePosOrNamed:
		b.numPositional++
		b.nameIndex[name] = idx
	case styleNamedOnly:
		b.nameIndex[name] = idx
	}
}

// Required appends a required positional/named parameter.
func (b *Builder) Required(name symbol.ID) *Builder {
	b.addRegular(name, Required)
	return b
}

// Optional appends an optional parameter whose absence leaves its slot
// empty.
func (b *Builder) Optional(name symbol.ID) *Builder {
	b.addRegular(name, Optional)
	return b
}

// Defaulted appends a parameter that, absent a supplied value, is filled
// with v.
func (b *Builder) Defaulted(name symbol.ID, v value.Value) *Builder {
	b.addRegular(name, Defaulted(v))
	return b
}

// NoMorePositionalOnlyArgs records the `/` separator: parameters added
// from here on are callable positionally or by name, until Args/KWargs/
// NoMorePositionalArgs closes that off. It may only be called while still
// in the positional-only section.
func (b *Builder) NoMorePositionalOnlyArgs() *Builder {
	if b.style != stylePosOnly {
		log.Panicf("params: %s: '/' separator out of order", b.functionName)
	}
	b.style = stylePosOrNamed
	return b
}

// Args appends the variadic positional sink (*args) and moves the Builder
// into the name-only section.
func (b *Builder) Args(name symbol.ID) *Builder {
	if b.style == styleNamedOnly || b.style == styleNoMore {
		log.Panicf("params: %s: *args out of order", b.functionName)
	}
	if b.argsIndex >= 0 || b.kwargsIndex >= 0 {
		log.Panicf("params: %s: at most one *args is allowed", b.functionName)
	}
	if b.style == stylePosOnly {
		b.style = stylePosOrNamed
	}
	b.argsIndex = len(b.names)
	b.names = append(b.names, name)
	b.kinds = append(b.kinds, Args)
	b.style = styleNamedOnly
	return b
}

// NoMorePositionalArgs records a bare `*` separator: closes the
// positional-or-named section without adding a variadic sink, moving
// straight to name-only parameters.
func (b *Builder) NoMorePositionalArgs() *Builder {
	if b.argsIndex >= 0 || b.kwargsIndex >= 0 {
		log.Panicf("params: %s: bare '*' out of order", b.functionName)
	}
	if b.style == styleNamedOnly {
		log.Panicf("params: %s: bare '*' out of order", b.functionName)
	}
	b.style = styleNamedOnly
	return b
}

// KWargs appends the variadic keyword sink (**kwargs) and closes the
// signature to further parameters.
func (b *Builder) KWargs(name symbol.ID) *Builder {
	if b.kwargsIndex >= 0 {
		log.Panicf("params: %s: at most one **kwargs is allowed", b.functionName)
	}
	b.kwargsIndex = len(b.names)
	b.names = append(b.names, name)
	b.kinds = append(b.kinds, KWargs)
	b.style = styleNoMore
	return b
}

// Finish freezes the accumulated parameters into an immutable Signature.
func (b *Builder) Finish() *Signature {
	must.Truef(b.numPositionalOnly <= b.numPositional, "params: %s: positional-only count exceeds positional count", b.functionName)
	return &Signature{
		functionName:      b.functionName,
		paramNames:        append([]symbol.ID(nil), b.names...),
		paramKinds:        append([]Kind(nil), b.kinds...),
		names:             copyNameIndex(b.nameIndex),
		numPositionalOnly: b.numPositionalOnly,
		numPositional:     b.numPositional,
		argsIndex:         b.argsIndex,
		kwargsIndex:       b.kwargsIndex,
	}
}

func copyNameIndex(m map[symbol.ID]int) map[symbol.ID]int {
	out := make(map[symbol.ID]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
