// Package call provides a concrete params.Arguments implementation and the
// static feasibility pre-check callers can run before constructing Values,
// modeled on gql/ast.go's ActualArg/AIArg pair and gql/ast_util.go's
// addFuncall positional/named matching.
package call

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"

	"grailquery/hash"
	"grailquery/params"
	"grailquery/symbol"
	"grailquery/value"
)

// RawArg is one argument as it appeared at a call site, in source order:
// positional if Name == symbol.Invalid, named otherwise. This is the
// parser's output, analogous to gql/ast.go's ASTParamVal before it is
// split into formal-arg-aligned ActualArgs.
type RawArg struct {
	Name  symbol.ID // symbol.Invalid for a positional argument
	Value value.Value
}

// Call is a concrete params.Arguments built from a raw, source-ordered
// argument list plus optional *args/**kwargs splat values.
type Call struct {
	raw        []RawArg
	argsVal    value.Value
	hasArgs    bool
	kwargsVal  value.Value
	hasKwargs  bool

	pos   []value.Value
	names []params.ResolvedName
	named []value.Value
}

// New builds a Call from a raw argument list and optional splat values.
func New(raw []RawArg, argsVal value.Value, hasArgs bool, kwargsVal value.Value, hasKwargs bool) *Call {
	c := &Call{raw: raw, argsVal: argsVal, hasArgs: hasArgs, kwargsVal: kwargsVal, hasKwargs: hasKwargs}
	for _, r := range raw {
		if r.Name == symbol.Invalid {
			c.pos = append(c.pos, r.Value)
			continue
		}
		name := r.Name.Str()
		c.names = append(c.names, params.ResolvedName{Name: name, Hash: hash.String(name), Index: -1})
		c.named = append(c.named, r.Value)
	}
	return c
}

// NewResolved is like New, but precomputes each named argument's slot
// index against sig up front (spec §9's "pre-resolved name tokens"),
// letting Bind skip the name-map lookup entirely. This is the
// signature-aware fast path a call site compiled once and invoked
// repeatedly would use, carried forward from the original
// implementation's ArgNames/resolve step (SPEC_FULL §4).
func NewResolved(sig *params.Signature, raw []RawArg, argsVal value.Value, hasArgs bool, kwargsVal value.Value, hasKwargs bool) *Call {
	c := New(raw, argsVal, hasArgs, kwargsVal, hasKwargs)
	for i := range c.names {
		if idx, ok := sig.IndexOfName(symbol.Intern(c.names[i].Name)); ok {
			c.names[i].Index = idx
		}
	}
	return c
}

func (c *Call) Pos() []value.Value           { return c.pos }
func (c *Call) Names() []params.ResolvedName { return c.names }
func (c *Call) Named() []value.Value         { return c.named }
func (c *Call) Args() (value.Value, bool)    { return c.argsVal, c.hasArgs }
func (c *Call) KWargs() (value.Value, bool)  { return c.kwargsVal, c.hasKwargs }

// Validate is a static feasibility pre-check: it re-derives which raw
// argument would claim which formal parameter, using a bitmap to catch a
// raw argument claimed twice (a condition that should never arise from a
// well-formed parser, the same invariant addFuncall's remainingBitmap
// guards), then delegates the positional-count/name-set feasibility
// question to Signature.CanFillWithArgs. It never constructs or inspects
// a Value, so it's safe to run ahead of evaluation to give a caller (a
// linter, a type-checker) an early diagnostic.
func (c *Call) Validate(sig *params.Signature) error {
	remaining := newBitmap64(len(c.raw))
	var names []symbol.ID
	posCount := 0
	for i, r := range c.raw {
		if !remaining.test(i) {
			log.Panicf("call: Validate: raw argument #%d claimed twice", i)
		}
		remaining.tryClear(i)
		if r.Name == symbol.Invalid {
			posCount++
			continue
		}
		names = append(names, r.Name)
	}
	if !sig.CanFillWithArgs(posCount, names) {
		return errors.E(errors.Invalid, fmt.Sprintf(
			"call cannot be bound against signature %s(%s)", sig.Name(), sig.ParametersStr()))
	}
	return nil
}
