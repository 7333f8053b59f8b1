// Package symbol interns parameter and keyword-argument names into small
// integer IDs. Interning lets the binder's hot path compare names as
// integers instead of strings, and lets a resolved call-site name carry a
// cheap, precomputed hash (spec §4.3, §9's "pre-resolved name tokens").
//
// This is adapted from gql/symbol's intern table: same lock-free-read,
// mutex-on-write design, but the concurrent name->ID map is sync.Map
// instead of a code-generated rcu_map (that template lives outside this
// module and wasn't part of the retrieved pack), and the GOB
// marshal/pre-interning machinery is dropped — this core has no on-disk or
// wire format (spec §6: "no on-disk layout").
package symbol

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/grailbio/base/log"

	"grailquery/hash"
)

// ID represents an interned symbol.
type ID int32

// Invalid is the sentinel zero ID; no real symbol interns to it.
const Invalid = ID(0)

type idInfo struct {
	name string
	hash hash.Hash
}

// table is the process-wide intern table. Writers take mu; readers load
// idsPtr with an acquire and never block on mu, the same split the teacher
// uses to make Str/Hash cheap on the hot path (symbol lookups happen once
// per declared parameter, but once per *call* for a not-yet-resolved
// keyword argument name).
type table struct {
	mu     sync.Mutex
	byName sync.Map // string -> ID, lock-free reads
	idsPtr unsafe.Pointer // *[]idInfo
}

var symbols = newTable()

func newTable() *table {
	ids := []idInfo{{name: "(invalid)", hash: hash.String("(invalid)")}}
	t := &table{idsPtr: unsafe.Pointer(&ids)}
	t.byName.Store("(invalid)", Invalid)
	return t
}

func (t *table) ids() []idInfo {
	return *(*[]idInfo)(atomic.LoadPointer(&t.idsPtr))
}

func (t *table) lookup(name string) (ID, bool) {
	v, ok := t.byName.Load(name)
	if !ok {
		return Invalid, false
	}
	return v.(ID), true
}

// Hash returns the precomputed hash of id's name.
func (id ID) Hash() hash.Hash {
	return symbols.ids()[id].hash
}

// Str returns id's interned name.
//
// Note: not named String(), matching the teacher's rationale — a String()
// method makes %v formatting of an ID reach into the global table, which
// is surprising when debugging a table held under its own lock.
func (id ID) Str() string {
	ids := symbols.ids()
	if int(id) >= len(ids) {
		log.Panicf("symbol: id %d not found", id)
	}
	return ids[id].name
}

// Intern finds or creates an ID for v. The empty string is rejected: it is
// never a meaningful parameter or keyword name.
func Intern(v string) ID {
	if v == "" {
		log.Panicf("symbol: empty name")
	}
	if id, ok := symbols.lookup(v); ok {
		return id
	}

	symbols.mu.Lock()
	defer symbols.mu.Unlock()
	if id, ok := symbols.lookup(v); ok {
		return id
	}
	ids := symbols.ids()
	id := ID(len(ids))
	ids = append(ids, idInfo{name: v, hash: hash.String(v)})
	// The pointer store makes the new slice visible to unsynchronized
	// readers; it must happen after the entry is fully populated.
	atomic.StorePointer(&symbols.idsPtr, unsafe.Pointer(&ids))
	symbols.byName.Store(v, id)
	return id
}
