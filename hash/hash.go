// Package hash provides a fixed-size content hash used to identify interned
// symbols and to precompute the hash carried by a resolved call-site name
// (spec §4.3, §9). It mirrors the Hash type exercised by hash_test.go in
// the teacher repository, whose implementation file wasn't retrieved
// alongside the test; this file reconstructs it from the test's observable
// contract (a 32-byte digest with a commutative Add and an order-sensitive
// Merge), built on murmur3 rather than a cryptographic hash — the same
// library the teacher reaches for in its own collision-prone partitioning
// code, and much cheaper per call than SHA-256 on a hot name-lookup path.
package hash

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/spaolacci/murmur3"
)

// Hash is a 32-byte content hash, built from two independent 128-bit
// murmur3 digests (one seeded, one not) so that colliding 128-bit sums are
// vanishingly unlikely to also collide on the other half.
type Hash [32]byte

// Bytes hashes a byte slice.
func Bytes(b []byte) Hash {
	var h Hash
	h0, h1 := murmur3.Sum128(b)
	h2, h3 := murmur3.Sum128WithSeed(b, 0x9e3779b9)
	binary.BigEndian.PutUint64(h[0:8], h0)
	binary.BigEndian.PutUint64(h[8:16], h1)
	binary.BigEndian.PutUint64(h[16:24], h2)
	binary.BigEndian.PutUint64(h[24:32], h3)
	return h
}

// String hashes a string.
func String(s string) Hash { return Bytes([]byte(s)) }

var modulus = new(big.Int).Lsh(big.NewInt(1), 256)

// Add combines two hashes commutatively: Add(a,b) == Add(b,a), and the
// zero Hash is its identity element. It's implemented as big-endian
// addition modulo 2**256, which gives exact identity (Hash{}.Add(h) == h)
// without hashing — useful for combining a set of hashes regardless of
// enumeration order (e.g. summing struct-field hashes).
func (h Hash) Add(other Hash) Hash {
	a := new(big.Int).SetBytes(h[:])
	b := new(big.Int).SetBytes(other[:])
	sum := a.Add(a, b)
	sum.Mod(sum, modulus)
	var out Hash
	sum.FillBytes(out[:])
	return out
}

// Merge combines two hashes order-sensitively by hashing their
// concatenation. Unlike Add, Merge does not treat the zero Hash as an
// identity and is not commutative; it's used to fold a value into a
// running hash where order matters (e.g. a function body's structural
// hash).
func (h Hash) Merge(other Hash) Hash {
	var buf [64]byte
	copy(buf[:32], h[:])
	copy(buf[32:], other[:])
	return Bytes(buf[:])
}

// String renders the hash as hex, for debug output only.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }
