package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grailquery/params"
	"grailquery/symbol"
	"grailquery/value"
)

// testArgs is a minimal params.Arguments fixture for exercising Bind
// without depending on package call.
type testArgs struct {
	pos    []value.Value
	names  []params.ResolvedName
	named  []value.Value
	args   value.Value
	hasArgs bool
	kwargs  value.Value
	hasKwargs bool
}

func (a testArgs) Pos() []value.Value            { return a.pos }
func (a testArgs) Names() []params.ResolvedName  { return a.names }
func (a testArgs) Named() []value.Value          { return a.named }
func (a testArgs) Args() (value.Value, bool)     { return a.args, a.hasArgs }
func (a testArgs) KWargs() (value.Value, bool)   { return a.kwargs, a.hasKwargs }

func named(pairs ...interface{}) ([]params.ResolvedName, []value.Value) {
	var names []params.ResolvedName
	var vals []value.Value
	for i := 0; i < len(pairs); i += 2 {
		names = append(names, params.ResolvedName{Name: pairs[i].(string), Index: -1})
		vals = append(vals, pairs[i+1].(value.Value))
	}
	return names, vals
}

func ints(xs ...int64) []value.Value {
	out := make([]value.Value, len(xs))
	for i, x := range xs {
		out[i] = value.NewInt(x)
	}
	return out
}

func sigF() *params.Signature {
	return params.NewBuilder("f").
		NoMorePositionalOnlyArgs().
		Required(symbol.Intern("a")).
		Defaulted(symbol.Intern("b"), value.NewInt(10)).
		Args(symbol.Args).
		Required(symbol.Intern("c")).
		KWargs(symbol.KWargs).
		Finish()
}

func sigG() *params.Signature {
	return params.NewBuilder("g").
		Required(symbol.Intern("$x")).
		NoMorePositionalOnlyArgs().
		Required(symbol.Intern("y")).
		NoMorePositionalArgs().
		Required(symbol.Intern("z")).
		Finish()
}

func bindAndRead(t *testing.T, sig *params.Signature, call params.Arguments) ([]value.Value, error) {
	t.Helper()
	slots := make([]value.Value, sig.Len())
	err := params.Bind(sig, call, slots, value.NewHeap())
	return slots, err
}

func TestBindScenario1(t *testing.T) {
	sig := sigF()
	names, vals := named("c", value.NewInt(5), "d", value.NewInt(6))
	slots, err := bindAndRead(t, sig, testArgs{pos: ints(1, 2, 3, 4), names: names, named: vals})
	require.NoError(t, err)
	assert.Equal(t, int64(1), slots[0].Int())
	assert.Equal(t, int64(2), slots[1].Int())
	assert.Equal(t, []value.Value{value.NewInt(3), value.NewInt(4)}, slots[2].Tuple())
	assert.Equal(t, int64(5), slots[3].Int())
	entries, ok := slots[4].DictEntries()
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "d", entries[0].Key.Str())
	assert.Equal(t, int64(6), entries[0].Val.Int())
}

func TestBindScenario2MissingParameter(t *testing.T) {
	sig := sigF()
	_, err := bindAndRead(t, sig, testArgs{pos: ints(1)})
	require.Error(t, err)
}

func TestBindScenario3RepeatedArg(t *testing.T) {
	sig := sigF()
	names, vals := named("a", value.NewInt(9))
	_, err := bindAndRead(t, sig, testArgs{pos: ints(1, 2), names: names, named: vals})
	require.Error(t, err)
}

func TestBindScenario4Defaults(t *testing.T) {
	sig := sigF()
	names, vals := named("a", value.NewInt(1), "c", value.NewInt(2))
	slots, err := bindAndRead(t, sig, testArgs{names: names, named: vals})
	require.NoError(t, err)
	assert.Equal(t, int64(1), slots[0].Int())
	assert.Equal(t, int64(10), slots[1].Int())
	assert.Empty(t, slots[2].Tuple())
	assert.Equal(t, int64(2), slots[3].Int())
	entries, ok := slots[4].DictEntries()
	require.True(t, ok)
	assert.Empty(t, entries)
}

func TestBindScenario5SplatArgsAndKwargs(t *testing.T) {
	sig := sigF()
	names, vals := named("c", value.NewInt(4))
	heap := value.NewHeap()
	argsTuple := heap.AllocTuple(ints(3))
	kwargsDict := heap.AllocDict([]value.Pair{{Key: value.NewString("e"), Val: value.NewInt(5)}})
	slots, err := bindAndRead(t, sig, testArgs{
		pos: ints(1, 2), names: names, named: vals,
		args: argsTuple, hasArgs: true,
		kwargs: kwargsDict, hasKwargs: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), slots[0].Int())
	assert.Equal(t, int64(2), slots[1].Int())
	assert.Equal(t, []value.Value{value.NewInt(3)}, slots[2].Tuple())
	assert.Equal(t, int64(4), slots[3].Int())
	entries, ok := slots[4].DictEntries()
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "e", entries[0].Key.Str())
}

func TestBindScenario6PositionalOnlyThenNamed(t *testing.T) {
	sig := sigG()
	names, vals := named("z", value.NewInt(3))
	slots, err := bindAndRead(t, sig, testArgs{pos: ints(1, 2), names: names, named: vals})
	require.NoError(t, err)
	assert.Equal(t, int64(1), slots[0].Int())
	assert.Equal(t, int64(2), slots[1].Int())
	assert.Equal(t, int64(3), slots[2].Int())
}

func TestBindScenario7PositionalOnlyNotAddressableByName(t *testing.T) {
	sig := sigG()
	names, vals := named("x", value.NewInt(9), "y", value.NewInt(2), "z", value.NewInt(3))
	_, err := bindAndRead(t, sig, testArgs{pos: ints(1), names: names, named: vals})
	require.Error(t, err)
}

func TestBindFastPathMatchesSlowPath(t *testing.T) {
	sig := params.NewBuilder("h").
		NoMorePositionalOnlyArgs().
		Required(symbol.Intern("a")).
		Required(symbol.Intern("b")).
		Finish()

	fastSlots := make([]value.Value, sig.Len())
	require.NoError(t, params.Bind(sig, testArgs{pos: ints(1, 2)}, fastSlots, value.NewHeap()))

	names, vals := named("b", value.NewInt(2))
	slowSlots := make([]value.Value, sig.Len())
	require.NoError(t, params.Bind(sig, testArgs{pos: ints(1), names: names, named: vals}, slowSlots, value.NewHeap()))

	assert.Equal(t, fastSlots[0].Int(), slowSlots[0].Int())
	assert.Equal(t, fastSlots[1].Int(), slowSlots[1].Int())
}

func TestBindZeroParamZeroArgs(t *testing.T) {
	sig := params.NewBuilder("empty").Finish()
	slots, err := bindAndRead(t, sig, testArgs{})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBindOptionalLeftUnfilled(t *testing.T) {
	sig := params.NewBuilder("opt").
		NoMorePositionalOnlyArgs().
		Optional(symbol.Intern("a")).
		Finish()
	slots, err := bindAndRead(t, sig, testArgs{})
	require.NoError(t, err)
	assert.False(t, slots[0].Valid())
}

func TestBindIntoFixedArity(t *testing.T) {
	sig := params.NewBuilder("add").
		NoMorePositionalOnlyArgs().
		Required(symbol.Intern("a")).
		Required(symbol.Intern("b")).
		Finish()

	out, err := params.BindInto[2](sig, testArgs{pos: ints(3, 4)}, value.NewHeap())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out[0].Int())
	assert.Equal(t, int64(4), out[1].Int())
}

func TestBindIntoPropagatesBindError(t *testing.T) {
	sig := sigF()
	_, err := params.BindInto[5](sig, testArgs{pos: ints(1)}, value.NewHeap())
	require.Error(t, err)
}

func TestBindArgsSplatExactlyFillsRemaining(t *testing.T) {
	sig := params.NewBuilder("fit").
		NoMorePositionalOnlyArgs().
		Required(symbol.Intern("a")).
		Required(symbol.Intern("b")).
		Args(symbol.Args).
		Finish()
	heap := value.NewHeap()
	argsTuple := heap.AllocTuple(ints(2))
	slots, err := bindAndRead(t, sig, testArgs{pos: ints(1), args: argsTuple, hasArgs: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), slots[0].Int())
	assert.Equal(t, int64(2), slots[1].Int())
	assert.Empty(t, slots[2].Tuple())
}
