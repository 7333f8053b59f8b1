package params

import (
	"grailquery/hash"
	"grailquery/value"
)

// ResolvedName is one resolved-name token for a call's named arguments.
// Callers that already know the callee's Signature (e.g. a call site
// compiled once and invoked repeatedly) can precompute Index, letting Bind
// skip the name-map lookup entirely; callers without that optimization
// leave Index at -1 and Bind falls back to a Signature.IndexOfName call.
// This is an acceleration, not a semantic requirement (spec §9):
// implementations that never set Index still pass every test.
type ResolvedName struct {
	Name  string
	Hash  hash.Hash
	Index int // -1 if not pre-resolved
}

// Arguments is the call-site contract Bind consumes. It is intentionally
// minimal: four accessors exposing the positional values, the
// name/value pairs (index-aligned), and the optional *args/**kwargs
// splat values. Concrete implementations (e.g. package call's Call) own
// however they parsed or constructed these from source.
type Arguments interface {
	// Pos returns the ordered positional values.
	Pos() []value.Value
	// Names returns the resolved-name tokens for the named arguments,
	// index-aligned with Named.
	Names() []ResolvedName
	// Named returns the ordered values paired with Names.
	Named() []value.Value
	// Args returns the splatted positional collection, if any.
	Args() (value.Value, bool)
	// KWargs returns the splatted keyword mapping, if any.
	KWargs() (value.Value, bool)
}
