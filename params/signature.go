package params

import (
	"fmt"
	"strings"

	"grailquery/symbol"
)

// Signature is the immutable, frozen description of a function's
// parameter list produced by Builder.Finish. It is safe to read
// concurrently from any number of goroutines without synchronization: it
// is never mutated after Finish, the same immutability guarantee the
// teacher relies on for a *Func's formalArgs slice once RegisterBuiltinFunc
// or NewUserDefinedFunc has returned.
type Signature struct {
	functionName string
	paramNames   []symbol.ID
	paramKinds   []Kind
	names        map[symbol.ID]int

	numPositionalOnly int
	numPositional     int
	argsIndex         int // -1 if absent
	kwargsIndex       int // -1 if absent
}

// Name returns the function's name, used only in diagnostics.
func (s *Signature) Name() string { return s.functionName }

// Len returns the number of declared parameters, N.
func (s *Signature) Len() int { return len(s.paramNames) }

// ParamName returns the i'th parameter's declared name.
func (s *Signature) ParamName(i int) symbol.ID { return s.paramNames[i] }

// ParamKind returns the i'th parameter's Kind.
func (s *Signature) ParamKind(i int) Kind { return s.paramKinds[i] }

// IndexOfName returns the slot index a name resolves to, if it is
// name-addressable (leading-$ positional-only names and the synthetic
// *args/**kwargs names are excluded, per the Builder's bookkeeping).
func (s *Signature) IndexOfName(name symbol.ID) (int, bool) {
	i, ok := s.names[name]
	return i, ok
}

func displayName(name symbol.ID) string {
	s := name.Str()
	return strings.TrimPrefix(s, "$")
}

// ParametersStr renders the signature the way it would appear in a
// declaration: positional-only parameters (display name, $ stripped)
// followed by / if any were declared, then positional-or-named
// parameters, then *args (or a bare * if name-only parameters follow
// without a declared *args sink), then name-only parameters, then
// **kwargs. Defaulted parameters render with a "=..." placeholder; types
// and literal default values are never rendered.
func (s *Signature) ParametersStr() string {
	if !s.invariantsHold() {
		return "[invalid signature]"
	}
	var parts []string
	n := len(s.paramNames)
	nameOnlyEnd := n
	if s.kwargsIndex >= 0 {
		nameOnlyEnd = s.kwargsIndex
	}
	hasNameOnly := nameOnlyEnd > s.numPositional && s.argsIndex < 0

	for i := 0; i < n; i++ {
		if i == s.numPositionalOnly && s.numPositionalOnly > 0 {
			parts = append(parts, "/")
		}
		if i == s.numPositional && hasNameOnly {
			parts = append(parts, "*")
		}
		parts = append(parts, s.renderParam(i))
	}
	if s.numPositionalOnly == n && n > 0 {
		parts = append(parts, "/")
	}
	return strings.Join(parts, ", ")
}

func (s *Signature) renderParam(i int) string {
	name := s.paramNames[i]
	kind := s.paramKinds[i]
	switch kind {
	case Args:
		return "*" + name.Str()
	case KWargs:
		return "**" + name.Str()
	}
	if IsDefaulted(kind) {
		return displayName(name) + "=..."
	}
	return displayName(name)
}

func (s *Signature) invariantsHold() bool {
	n := len(s.paramNames)
	if !(0 <= s.numPositionalOnly && s.numPositionalOnly <= s.numPositional && s.numPositional <= n) {
		return false
	}
	if s.argsIndex >= 0 && (s.argsIndex != s.numPositional || s.paramKinds[s.argsIndex] != Args) {
		return false
	}
	if s.kwargsIndex >= 0 && (s.kwargsIndex != n-1 || s.paramKinds[s.kwargsIndex] != KWargs) {
		return false
	}
	return true
}

// ParamMode describes one parameter's public calling convention, as
// yielded by IterParamModes.
type ParamMode int

const (
	PosOnlyMode ParamMode = iota
	PosOrNameMode
	NameOnlyMode
	ArgsMode
	KwargsMode
)

// ParamModeEntry is one (name, mode, required) triple yielded by
// IterParamModes.
type ParamModeEntry struct {
	Name     symbol.ID
	Mode     ParamMode
	Required bool
}

// IterParamModes yields each parameter's public mode in declaration
// order, for tooling that needs to answer "how is parameter i called"
// without re-deriving it from the boundary indices.
func (s *Signature) IterParamModes() []ParamModeEntry {
	entries := make([]ParamModeEntry, len(s.paramNames))
	for i, name := range s.paramNames {
		kind := s.paramKinds[i]
		e := ParamModeEntry{Name: name, Required: kind == Required}
		switch {
		case kind == Args:
			e.Mode = ArgsMode
		case kind == KWargs:
			e.Mode = KwargsMode
		case i < s.numPositionalOnly:
			e.Mode = PosOnlyMode
		case i < s.numPositional:
			e.Mode = PosOrNameMode
		default:
			e.Mode = NameOnlyMode
		}
		entries[i] = e
	}
	return entries
}

// DocSeparator marks a break point inserted into a Documentation
// projection to call out a section of the signature.
type DocSeparator int

const (
	// NoSeparator means the entry carries a real parameter, not a break.
	NoSeparator DocSeparator = iota
	// OnlyPosBefore marks the boundary just before the first
	// name-addressable parameter (or, if every parameter is
	// positional-only, a trailing marker after all of them).
	OnlyPosBefore
	// OnlyNamedAfter marks the boundary just before the first name-only
	// regular parameter.
	OnlyNamedAfter
)

// DocEntry is one element of a Documentation projection: either a real
// parameter (Separator == NoSeparator) with its declared type and doc
// text, or a bare separator marker.
type DocEntry struct {
	Separator DocSeparator
	Name      symbol.ID
	Mode      ParamMode
	Type      string
	Doc       string
}

// Documentation projects the signature into a documentation record: one
// entry per parameter in declaration order, with separator entries
// inserted at the positional-only and name-only boundaries. types and
// docs must each have length s.Len().
func (s *Signature) Documentation(types, docs []string) []DocEntry {
	if len(types) != s.Len() {
		panic(fmt.Sprintf("params: Documentation: types has %d entries, want %d", len(types), s.Len()))
	}
	n := s.Len()
	var entries []DocEntry

	insertedPosBefore := false
	insertedNamedAfter := false
	for i := 0; i < n; i++ {
		if i == s.numPositionalOnly && s.numPositionalOnly > 0 && s.numPositionalOnly < n && !insertedPosBefore {
			entries = append(entries, DocEntry{Separator: OnlyPosBefore})
			insertedPosBefore = true
		}
		kind := s.paramKinds[i]
		var mode ParamMode
		switch {
		case kind == Args:
			mode = ArgsMode
		case kind == KWargs:
			mode = KwargsMode
		case i < s.numPositionalOnly:
			mode = PosOnlyMode
		case i < s.numPositional:
			mode = PosOrNameMode
		default:
			mode = NameOnlyMode
		}
		if mode == NameOnlyMode && !insertedNamedAfter {
			entries = append(entries, DocEntry{Separator: OnlyNamedAfter})
			insertedNamedAfter = true
		}
		var doc string
		if i < len(docs) {
			doc = docs[i]
		}
		entries = append(entries, DocEntry{
			Name: s.paramNames[i],
			Mode: mode,
			Type: types[i],
			Doc:  doc,
		})
	}
	if s.numPositionalOnly == n && n > 0 {
		entries = append(entries, DocEntry{Separator: OnlyPosBefore})
	}
	return entries
}

// CanFillWithArgs answers "could a call with posCount positional
// arguments and this set of names be bound without error?" without
// constructing any Values: positional args fill positional slots,
// overflow goes to *args if present else the check fails; each name
// either targets a named parameter (marking it filled; a second hit is a
// duplicate) or goes to **kwargs if present else fails; finally, any
// still-unfilled Required parameter fails.
//
// This is a necessary, not sufficient, condition for Bind to succeed:
// Bind can still fail later due to unresolvable iteration or non-string
// keys in a splatted *args/**kwargs value, which CanFillWithArgs never
// sees.
func (s *Signature) CanFillWithArgs(posCount int, names []symbol.ID) bool {
	n := s.Len()
	filled := make([]bool, n)

	fillablePositional := posCount
	if fillablePositional > s.numPositional {
		if s.argsIndex < 0 {
			return false
		}
		fillablePositional = s.numPositional
	}
	for i := 0; i < fillablePositional; i++ {
		filled[i] = true
	}

	for _, name := range names {
		idx, ok := s.names[name]
		if !ok {
			if s.kwargsIndex < 0 {
				return false
			}
			continue
		}
		if filled[idx] {
			return false
		}
		filled[idx] = true
	}

	for i := 0; i < n; i++ {
		kind := s.paramKinds[i]
		if kind == Args || kind == KWargs {
			continue
		}
		if !filled[i] && kind == Required {
			return false
		}
	}
	return true
}
