package runtime

import (
	"context"
	"sync"

	"grailquery/params"
	"grailquery/symbol"
	"grailquery/value"
)

// Body is a function's compiled implementation: it reads its arguments
// back out of frame and returns the call's result.
type Body func(ctx context.Context, frame *Frame) value.Value

// Func is a callable function value: a frozen Signature plus the body it
// runs once arguments are bound. It plays the role of gql/func.go's Func,
// generalized from GQL's FuncCallback/user-defined-lambda split down to
// the one thing this module owns: turning a call's Arguments into a bound
// Frame.
type Func struct {
	name      string
	sig       *params.Signature
	paramSyms []symbol.ID
	body      Body
	heap      params.Heap

	slotPool  sync.Pool
	framePool sync.Pool
}

// NewFunc creates a callable Func. heap is used to allocate each
// invocation's *args tuple and **kwargs dict.
func NewFunc(name string, sig *params.Signature, heap params.Heap, body Body) *Func {
	paramSyms := make([]symbol.ID, sig.Len())
	for i := range paramSyms {
		paramSyms[i] = sig.ParamName(i)
	}
	f := &Func{name: name, sig: sig, paramSyms: paramSyms, body: body, heap: heap}
	f.slotPool.New = func() interface{} {
		return make([]value.Value, sig.Len())
	}
	f.framePool.New = func() interface{} {
		return &Frame{}
	}
	return f
}

// Name returns the function's declared name.
func (f *Func) Name() string { return f.name }

// Signature returns f's frozen parameter signature.
func (f *Func) Signature() *params.Signature { return f.sig }

// Invoke binds call against f's signature and runs the body. Where the
// teacher dispatches on len(args) (0/1/2/default) as a micro-optimization
// before falling back to pushFrameN, Invoke skips that layer entirely:
// params.Bind already has its own fast path for the common "small arity,
// no defaults" call shape (spec §4.3), so re-unrolling by arity here would
// just duplicate an optimization the lower layer already owns.
func (f *Func) Invoke(ctx context.Context, call params.Arguments) (value.Value, error) {
	slots := f.slotPool.Get().([]value.Value)
	for i := range slots {
		slots[i] = value.Value{}
	}
	defer f.slotPool.Put(slots)

	if err := params.Bind(f.sig, call, slots, f.heap); err != nil {
		return value.Value{}, err
	}

	frame := f.framePool.Get().(*Frame)
	defer func() {
		frame.reset()
		f.framePool.Put(frame)
	}()

	pushFrameN(frame, f.paramSyms, slots)

	return f.body(ctx, frame), nil
}
