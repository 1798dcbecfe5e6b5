// Package demohash synthesizes reproducible pseudo-random priorities for
// the bundled demo CLI: large-n inputs need a deterministic priority
// assignment that is the same on every run. Priorities returns all n
// priorities as one slice.
package demohash

import (
	"encoding/binary"
	"math/bits"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// FastRange maps a 64-bit hash uniformly to [0, n) without modulo bias,
// via the standard multiply-and-take-high-bits technique.
func FastRange(hash uint64, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, uint64(n))
	return uint32(hi)
}

// Priorities returns a deterministic priority assignment for ids
// [0, n) within [0, spread): id i's priority is FastRange applied to a
// murmur3 hash of i salted with seed. Distinct seeds produce independent
// assignments from the same id space, letting a caller simulate a
// PriorityFunc mutating between rounds without tracking per-id state.
func Priorities(n int, spread uint32, seed uint32) []uint32 {
	out := make([]uint32, n)
	var buf [4]byte
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(buf[:], uint32(i))
		h := murmur3.Sum64WithSeed(buf[:], seed)
		out[i] = FastRange(h, spread)
	}
	return out
}

// Checksum128 folds a byte slice through xxHash3-128, returning the low
// and high 64-bit halves. Used by the demo CLI to produce a reproducible
// fingerprint of a run's emitted id order, hashed once over the whole
// buffered sequence.
func Checksum128(data []byte) (lo, hi uint64) {
	h := xxh3.Hash128(data)
	return h.Lo, h.Hi
}
