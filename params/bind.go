package params

import (
	"github.com/grailbio/base/log"

	"grailquery/symbol"
	"grailquery/value"
)

// Heap allocates the two variadic sinks Bind produces: the *args tuple
// and the **kwargs dict. Satisfied by *value.Heap; declared as an
// interface here so this package never imports anything beyond the
// contract spec §6 names.
type Heap interface {
	AllocTuple([]value.Value) value.Value
	AllocDict([]value.Pair) value.Value
}

const kwargsOverflowCapacityHint = 12

type overflowEntry struct {
	name string
	val  value.Value
}

// Bind fills slots (length >= sig.Len()) from call's positional, named,
// and splatted arguments, applying defaults and collecting variadic
// overflow. slots must be zero-valued (every element !Valid()) on entry.
//
// The fast path is taken when call supplies exactly sig.numPositional
// positional values, sig.numPositional == N, and no named/args/kwargs
// channel is used — the overwhelmingly common "all positional, no
// defaults" case. Every other shape falls through to the seven-step slow
// path.
func Bind(sig *Signature, call Arguments, slots []value.Value, heap Heap) error {
	pos := call.Pos()
	names := call.Names()
	named := call.Named()
	argsVal, hasArgs := call.Args()
	kwargsVal, hasKwargs := call.KWargs()

	n := sig.Len()
	if len(pos) == sig.numPositional && sig.numPositional == n &&
		len(names) == 0 && !hasArgs && !hasKwargs {
		for i := 0; i < n; i++ {
			slots[i] = pos[i]
		}
		return nil
	}

	return bindSlow(sig, pos, names, named, argsVal, hasArgs, kwargsVal, hasKwargs, slots, heap)
}

func bindSlow(
	sig *Signature,
	pos []value.Value,
	names []ResolvedName,
	named []value.Value,
	argsVal value.Value, hasArgs bool,
	kwargsVal value.Value, hasKwargs bool,
	slots []value.Value,
	heap Heap,
) error {
	var starArgs []value.Value
	var overflow []overflowEntry

	// Step 1: fill positional slots.
	nextPosition := 0
	if len(pos) <= sig.numPositional {
		for i, v := range pos {
			slots[i] = v
		}
		nextPosition = len(pos)
	} else {
		for i := 0; i < sig.numPositional; i++ {
			slots[i] = pos[i]
		}
		starArgs = append(starArgs, pos[sig.numPositional:]...)
		nextPosition = sig.numPositional
	}

	// Step 2: fill named arguments.
	lowestName := sig.Len()
	for i, rn := range names {
		v := named[i]
		if rn.Index >= 0 {
			slots[rn.Index] = v
			if rn.Index < lowestName {
				lowestName = rn.Index
			}
			continue
		}
		id := symbol.Intern(rn.Name)
		if idx, ok := sig.IndexOfName(id); ok {
			slots[idx] = v
			if idx < lowestName {
				lowestName = idx
			}
			continue
		}
		overflow = appendOverflow(overflow, rn.Name, v)
	}

	// Step 3: consume splatted *args.
	if hasArgs {
		it, ok := argsVal.Iterate(nil)
		if !ok {
			return sig.errArgsNotIterable()
		}
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			if nextPosition < sig.numPositional {
				slots[nextPosition] = v
				nextPosition++
				continue
			}
			starArgs = append(starArgs, v)
		}
	}

	// Step 4: positional/named collision check.
	if nextPosition > lowestName {
		return sig.errRepeatedArg(sig.ParamName(lowestName).Str())
	}

	// Step 5: consume splatted **kwargs.
	if hasKwargs {
		entries, ok := kwargsVal.DictEntries()
		if !ok {
			return sig.errKwArgsIsNotDict()
		}
		for _, e := range entries {
			key, ok := e.Key.AsString()
			if !ok {
				return sig.errArgsValueIsNotString()
			}
			id := symbol.Intern(key)
			if idx, ok := sig.IndexOfName(id); ok {
				if slots[idx].Valid() {
					return sig.errRepeatedArg(key)
				}
				slots[idx] = e.Val
				continue
			}
			if hasOverflow(overflow, key) {
				return sig.errRepeatedArg(key)
			}
			overflow = appendOverflow(overflow, key, e.Val)
		}
	}

	// Step 6: defaults and required check.
	n := sig.Len()
	for i := nextPosition; i < n; i++ {
		if slots[i].Valid() {
			continue
		}
		kind := sig.ParamKind(i)
		switch {
		case kind == Required:
			return sig.errMissingParameter(sig.ParamName(i))
		case IsDefaulted(kind):
			slots[i] = DefaultValue(kind)
		case kind == Optional:
			// leave empty
		case kind == Args, kind == KWargs:
			// handled in step 7
		}
	}

	// Step 7: finalize sinks.
	if sig.argsIndex >= 0 {
		slots[sig.argsIndex] = heap.AllocTuple(starArgs)
	} else if len(starArgs) > 0 {
		return sig.errExtraPositionalArg(len(starArgs))
	}
	if sig.kwargsIndex >= 0 {
		pairs := make([]value.Pair, len(overflow))
		for i, e := range overflow {
			pairs[i] = value.Pair{Key: value.NewString(e.name), Val: e.val}
		}
		slots[sig.kwargsIndex] = heap.AllocDict(pairs)
	} else if len(overflow) > 0 {
		extraNames := make([]string, len(overflow))
		for i, e := range overflow {
			extraNames[i] = e.name
		}
		return sig.errExtraNamedArg(extraNames)
	}

	return nil
}

func appendOverflow(overflow []overflowEntry, name string, v value.Value) []overflowEntry {
	if overflow == nil {
		overflow = make([]overflowEntry, 0, kwargsOverflowCapacityHint)
	}
	return append(overflow, overflowEntry{name: name, val: v})
}

func hasOverflow(overflow []overflowEntry, name string) bool {
	for _, e := range overflow {
		if e.name == name {
			return true
		}
	}
	return false
}

// Reader is a small sequential view over a filled slot array, returned by
// WithBoundArgs for callers that don't want to index the slice directly.
type Reader struct {
	sig   *Signature
	slots []value.Value
	i     int
}

// Next returns the next slot's value and whether it was filled, advancing
// the reader. It panics if called past the end of the signature — a
// caller bug, not a runtime condition.
func (r *Reader) Next() (value.Value, bool) {
	if r.i >= len(r.slots) {
		log.Panicf("params: Reader.Next called past end of signature %s", r.sig.Name())
	}
	v := r.slots[r.i]
	r.i++
	return v, v.Valid()
}

const inlineSlotCount = 8

// WithBoundArgs is the parser adapter from spec §4.4: it binds call
// against sig using an inline slot array when the signature is small
// enough to avoid a heap allocation, and hands the filled slots to fn as
// a Reader. It's the convenience path callers written in the host
// language use instead of managing a slot slice directly.
func WithBoundArgs(sig *Signature, call Arguments, heap Heap, fn func(*Reader) error) error {
	n := sig.Len()
	var slots []value.Value
	if n <= inlineSlotCount {
		var inline [inlineSlotCount]value.Value
		slots = inline[:n]
	} else {
		slots = make([]value.Value, n)
	}
	if err := Bind(sig, call, slots, heap); err != nil {
		return err
	}
	return fn(&Reader{sig: sig, slots: slots})
}

// BindInto is the fixed-arity counterpart to Bind (spec.md §6's
// bind_into<N>, SPEC_FULL §4): when a caller knows sig.Len() == N at
// compile time, it binds directly into a stack-allocated [N]value.Value
// instead of a heap slice, skipping the slice header WithBoundArgs's
// dynamically-sized path still carries for signatures above
// inlineSlotCount. It's a thin wrapper over Bind's existing slot
// contract, not a second binding algorithm. The caller is responsible for
// N actually matching sig.Len(); a mismatch is a caller bug, so it panics
// rather than silently truncating or leaving trailing slots unfilled.
func BindInto[N int](sig *Signature, call Arguments, heap Heap) ([N]value.Value, error) {
	var out [N]value.Value
	if len(out) != sig.Len() {
		log.Panicf("params: BindInto: signature %s has %d parameters, array type holds %d", sig.Name(), sig.Len(), len(out))
	}
	if err := Bind(sig, call, out[:], heap); err != nil {
		return out, err
	}
	return out, nil
}
