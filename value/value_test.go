package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grailquery/value"
)

func TestScalarRoundTrip(t *testing.T) {
	assert.Equal(t, int64(42), value.NewInt(42).Int())
	assert.Equal(t, 3.5, value.NewFloat(3.5).Float())
	assert.Equal(t, "hi", value.NewString("hi").Str())
	assert.True(t, value.NewBool(true).Bool())
	assert.False(t, value.NewBool(false).Bool())
	assert.True(t, value.Null.Valid())
	assert.False(t, value.Value{}.Valid())
}

func TestAsString(t *testing.T) {
	s, ok := value.NewString("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = value.NewInt(1).AsString()
	assert.False(t, ok)
}

func TestTupleAndDict(t *testing.T) {
	h := value.NewHeap()
	tup := h.AllocTuple([]value.Value{value.NewInt(1), value.NewInt(2)})
	require.Equal(t, value.TupleType, tup.Type())
	assert.Equal(t, []value.Value{value.NewInt(1), value.NewInt(2)}, tup.Tuple())

	dict := h.AllocDict([]value.Pair{{Key: value.NewString("k"), Val: value.NewInt(9)}})
	entries, ok := dict.DictEntries()
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "k", entries[0].Key.Str())
	assert.Equal(t, int64(9), entries[0].Val.Int())

	_, ok = tup.DictEntries()
	assert.False(t, ok)
}

func TestIterate(t *testing.T) {
	h := value.NewHeap()
	tup := h.AllocTuple([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)})
	it, ok := tup.Iterate(h)
	require.True(t, ok)
	var got []int64
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v.Int())
	}
	assert.Equal(t, []int64{1, 2, 3}, got)

	_, ok = value.NewInt(1).Iterate(h)
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "null", value.Null.String())
	assert.Equal(t, "42", value.NewInt(42).String())
	assert.Equal(t, `"hi"`, value.NewString("hi").String())

	h := value.NewHeap()
	tup := h.AllocTuple([]value.Value{value.NewInt(1), value.NewInt(2)})
	assert.Equal(t, "(1, 2)", tup.String())
}
