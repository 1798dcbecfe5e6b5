// Package growable provides a contiguous, resizable array of identifiers
// with a separate capacity and logical size, the storage primitive that
// BucketSet's materialized buckets are built from.
//
// Backing slices are drawn from a package-level sync.Pool by New and
// returned to it by Release, so arrays created after others were released
// can reuse their storage. Within one Array, emptying it (Reset or
// SetSize(0)) keeps its capacity, so repeated UpdateBuckets/unpack cycles
// over the same slots only allocate when a slot outgrows its capacity.
package growable

import "sync"

// Elem is the element type stored in an Array. BucketSet only ever
// materializes arrays of identifiers, so this is fixed rather than made
// generic — matching the non-generic style of the rest of the package.
type Elem = uint32

// pool recycles backing slices across Array instances.
var pool = sync.Pool{
	New: func() any {
		s := make([]Elem, 64)
		return &s
	},
}

// Array is a dynamic array with O(1) amortized Reserve (capacity growth)
// separate from Size (logical length), and direct indexed access to the
// underlying buffer up to its reserved capacity — not just its logical
// size, so a parallel scatter phase can write into a freshly reserved
// region before Size is advanced to cover it. The zero value is not ready
// for use; call New.
type Array struct {
	// buf is always resliced to its full capacity (len(buf) == cap(buf)),
	// so SetAt/At can index anywhere already reserved; size tracks the
	// logical length within it.
	buf  []Elem
	size int
}

// New returns an empty Array backed by a pooled slice.
func New() *Array {
	s := pool.Get().(*[]Elem)
	return &Array{buf: (*s)[:cap(*s)], size: 0}
}

// Reserve ensures capacity for n additional elements beyond the current
// size, without changing Size. Existing elements are preserved.
func (a *Array) Reserve(n int) {
	need := a.size + n
	if cap(a.buf) >= need {
		return
	}
	grown := make([]Elem, growCap(cap(a.buf), need))
	copy(grown, a.buf[:a.size])
	a.buf = grown
}

// growCap picks a new capacity at least as large as need, doubling from
// cur where that's enough headroom to amortize repeated small reserves.
func growCap(cur, need int) int {
	if cur == 0 {
		cur = 64
	}
	for cur < need {
		cur *= 2
	}
	return cur
}

// Size returns the current logical length.
func (a *Array) Size() int { return a.size }

// SetSize sets the logical length directly. Used after a parallel scatter
// phase has already written into the reserved region: the writes bypass
// Append, so the size is published in one step once all writers have
// finished.
func (a *Array) SetSize(n int) { a.size = n }

// At returns the element at index i, which must be < Size().
func (a *Array) At(i int) Elem { return a.buf[i] }

// SetAt writes v at index i, which must be < the array's reserved
// capacity (not just its current Size). Used by the parallel scatter
// phase to write into disjoint, pre-reserved regions of the buffer from
// multiple goroutines; callers are responsible for the disjointness
// guarantee (see internal/par.Scatter).
func (a *Array) SetAt(i int, v Elem) { a.buf[i] = v }

// Append grows Size by one, reserving capacity first if needed, and writes
// v at the new slot. Used by the sequential insertion path.
func (a *Array) Append(v Elem) {
	a.Reserve(1)
	a.buf[a.size] = v
	a.size++
}

// Slots returns the underlying buffer truncated to the current size. The
// returned slice aliases the Array's storage and must not be retained past
// the next mutating call.
func (a *Array) Slots() []Elem { return a.buf[:a.size] }

// Reset truncates the array to size 0 without releasing capacity.
func (a *Array) Reset() { a.size = 0 }

// Release returns the backing slice to the pool and leaves the Array
// empty. The Array must not be used afterward.
func (a *Array) Release() {
	buf := a.buf
	a.buf = nil
	a.size = 0
	pool.Put(&buf)
}
