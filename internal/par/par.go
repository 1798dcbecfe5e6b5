// Package par provides the bulk parallel primitives BucketSet is built on:
// a block-partitioned parallel for, parallel min/max reduction, the
// histogram → transposed-exclusive-prefix-sum → scatter pipeline that
// powers UpdateBuckets' bulk insertion, and the stable parallel filter
// (its own count / prefix-sum / scatter pass) used when a bucket is
// emitted.
//
// The worker-pool shape is one goroutine per block, run through an
// errgroup.Group with a semaphore bounding how many run at once, and no
// goroutine surviving past the call that spawned it.
package par

import (
	"runtime"
	"unsafe"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding stride used to keep concurrently-written
// per-block counters on separate cache lines during the histogram and
// scatter phases.
// Derived from cpu.CacheLinePad rather than a hardcoded machine constant,
// so it tracks the actual build target.
var CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// DefaultWorkers returns the default worker count for parallel operations:
// one goroutine per available processor.
func DefaultWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// BlockCount picks the number of contiguous blocks to partition k items
// into, given a target block size: the smallest power of two P such that
// k/P <= blockSize.
func BlockCount(k, blockSize int) int {
	if k <= 0 {
		return 1
	}
	p := 1
	for p*blockSize < k {
		p *= 2
	}
	return p
}

// bounds returns the half-open [start, end) range of block i out of
// numBlocks over [0, k).
func bounds(i, numBlocks, k int) (int, int) {
	blockSize := (k + numBlocks - 1) / numBlocks
	s := i * blockSize
	e := min(s+blockSize, k)
	if s > k {
		s = k
	}
	return s, e
}

// ForBlocks runs body(blockIdx, start, end) once per block in
// [0, numBlocks), for the [start, end) sub-range of [0, k) that block
// owns, fanning out across up to workers goroutines and joining before
// returning. body must only touch the [start, end) sub-range (and any
// per-block scratch passed in by the caller) so that concurrent
// invocations never race.
func ForBlocks(k, numBlocks, workers int, body func(blockIdx, start, end int)) {
	if workers < 1 {
		workers = 1
	}
	if workers > numBlocks {
		workers = numBlocks
	}
	var g errgroup.Group
	sem := make(chan struct{}, workers)
	for i := 0; i < numBlocks; i++ {
		i := i
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			s, e := bounds(i, numBlocks, k)
			body(i, s, e)
			return nil
		})
	}
	_ = g.Wait() // body never returns an error
}

// ReduceMin returns the minimum of f(i) over i in [0, n), computed by
// partitioning [0, n) across blocks, reducing each block in its own
// goroutine, and combining the (few) per-block results sequentially.
// Returns ident if n == 0.
func ReduceMin(n, workers int, ident uint32, f func(int) uint32) uint32 {
	return reduce(n, workers, ident, f, func(a, b uint32) uint32 {
		if a < b {
			return a
		}
		return b
	})
}

// ReduceMax is ReduceMin's counterpart, combining with max instead of min.
func ReduceMax(n, workers int, ident uint32, f func(int) uint32) uint32 {
	return reduce(n, workers, ident, f, func(a, b uint32) uint32 {
		if a > b {
			return a
		}
		return b
	})
}

func reduce(n, workers int, ident uint32, f func(int) uint32, combine func(a, b uint32) uint32) uint32 {
	if n <= 0 {
		return ident
	}
	numBlocks := BlockCount(n, 4096)
	partial := make([]uint32, numBlocks)
	for i := range partial {
		partial[i] = ident
	}
	ForBlocks(n, numBlocks, workers, func(blockIdx, start, end int) {
		acc := ident
		for i := start; i < end; i++ {
			acc = combine(acc, f(i))
		}
		partial[blockIdx] = acc
	})
	out := ident
	for _, p := range partial {
		out = combine(out, p)
	}
	return out
}

// Plan is the result of histogramming and scanning k items destined for
// numDest destinations: for each destination d, Counts[d] items were
// routed to it, landing (once Scatter runs) at contiguous offsets
// [0, Counts[d]) within whatever region the caller reserves for d in
// response to Counts. Plan is produced by Scan and consumed by Scatter;
// splitting the pipeline at this point lets a caller resize its own
// per-destination storage (BucketSet's step between histogram and
// scatter) using Counts before any item is actually written.
type Plan struct {
	numBlocks int
	numDest   int
	pad       int
	base      []int // len numDest+1; base[d] = start offset, base[numDest] = total
	cursor    []int // padded running per-(dest,block) write cursor, seeded from base
	Counts    []int // len numDest; items routed to each destination
	Total     int
}

func (p *Plan) cursorAt(d, b int) int { return (d*p.numBlocks + b) * p.pad }

// Scan builds the per-block histogram of destOf over [0, k) in parallel,
// then performs a transposed (destination-major, block-minor) exclusive
// prefix sum: the virtual sequence iterates destinations in the outer
// dimension and blocks in the inner, so each destination's additions land
// in one contiguous output region. destOf(j) returns a destination in
// [0, numDest), or a negative value to drop item j.
//
// The per-(destination,block) write cursors produced here are incremented
// concurrently by different goroutines during Scatter — one goroutine per
// block, many blocks feeding the same destination — so they are stored
// with a cache-line stride between consecutive blocks to prevent false
// sharing.
func Scan(k, numDest, workers, blockSize int, destOf func(j int) int) *Plan {
	numBlocks := BlockCount(k, blockSize)

	pad := CacheLineSize / int(unsafe.Sizeof(int(0)))
	if pad < 1 {
		pad = 1
	}

	// Each block's histogram row is rounded up to a whole number of cache
	// lines so that neighbouring blocks do not share one while counting.
	stride := (numDest + pad - 1) / pad * pad
	hist := make([]int, numBlocks*stride)
	if k > 0 {
		ForBlocks(k, numBlocks, workers, func(blockIdx, start, end int) {
			row := hist[blockIdx*stride : blockIdx*stride+numDest]
			for j := start; j < end; j++ {
				d := destOf(j)
				if d >= 0 {
					row[d]++
				}
			}
		})
	}

	p := &Plan{
		numBlocks: numBlocks,
		numDest:   numDest,
		pad:       pad,
		base:      make([]int, numDest+1),
		cursor:    make([]int, numDest*numBlocks*pad),
		Counts:    make([]int, numDest),
	}
	running := 0
	for d := 0; d < numDest; d++ {
		p.base[d] = running
		for b := 0; b < numBlocks; b++ {
			p.cursor[p.cursorAt(d, b)] = running
			running += hist[b*stride+d]
		}
		p.Counts[d] = running - p.base[d]
	}
	p.base[numDest] = running
	p.Total = running
	return p
}

// Scatter replays destOf over [0, k) in parallel (destOf must be
// deterministic and side-effect free; it is called once during Scan and
// again here) and invokes write(dest, offset, j) exactly once
// per accepted item, offset being the item's 0-based position within its
// destination's contiguous region per Plan.Counts. Each goroutine writes
// through disjoint (dest, offset) pairs, so write needs no synchronization
// of its own.
func Scatter(k, workers int, plan *Plan, destOf func(j int) int, write func(dest, offset, j int)) {
	if k <= 0 {
		return
	}
	ForBlocks(k, plan.numBlocks, workers, func(blockIdx, start, end int) {
		for j := start; j < end; j++ {
			d := destOf(j)
			if d < 0 {
				continue
			}
			idx := plan.cursorAt(d, blockIdx)
			offset := plan.cursor[idx] - plan.base[d]
			write(d, offset, j)
			plan.cursor[idx]++
		}
	})
}
