package symbol_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"grailquery/hash"
	"grailquery/symbol"
)

func TestIntern(t *testing.T) {
	assert.Equal(t, symbol.Intern("abc"), symbol.Intern("abc"))
	assert.False(t, symbol.Intern("abc") == symbol.Intern("cde"))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"_", "_3", "$x", "xyz", symbol.ArgsName, symbol.KwargsName} {
		id := symbol.Intern(name)
		name2 := id.Str()
		assert.Equal(t, name, name2)
	}
}

func TestPredefined(t *testing.T) {
	assert.Equal(t, symbol.ArgsName, symbol.Args.Str())
	assert.Equal(t, symbol.KwargsName, symbol.KWargs.Str())
}

func BenchmarkHashInterned(b *testing.B) {
	sym := symbol.Intern("abcdefghijk")
	for i := 0; i < b.N; i++ {
		_ = sym.Hash()
	}
}

func BenchmarkHashNonInterned(b *testing.B) {
	var h hash.Hash
	for i := 0; i < b.N; i++ {
		h = hash.String("lmnopqrstuv")
	}
	fmt.Printf("hash: %v\n", h)
}
