package value

// Heap allocates the two variadic sinks the binder produces: the *args
// tuple and the **kwargs dict. Each allocation copies its input into a
// freshly allocated slice, so the returned Value never aliases the
// caller's slice; no pooling is done.
type Heap struct{}

// NewHeap creates a heap handle. It carries no state today; a real
// embedding might track allocation counters or a generation for a moving
// GC, which is why callers thread a *Heap through Bind rather than calling
// package-level allocation functions.
func NewHeap() *Heap { return &Heap{} }

// AllocTuple allocates a tuple holding a copy of elems; the caller may
// reuse elems after this call returns.
func (h *Heap) AllocTuple(elems []Value) Value {
	buf := make([]Value, len(elems))
	copy(buf, elems)
	return Value{typ: TupleType, p: ptrTo(buf)}
}

// AllocDict allocates a dict holding a copy of pairs.
func (h *Heap) AllocDict(pairs []Pair) Value {
	buf := make([]Pair, len(pairs))
	copy(buf, pairs)
	return Value{typ: DictType, p: ptrTo(buf)}
}
