package julienne

import (
	jerrors "github.com/dhulipala/julienne/errors"
	"github.com/dhulipala/julienne/internal/par"
)

// UpdateBuckets bulk-inserts up to k identifiers into the bucket set. f(j)
// supplies the j'th entry: its id, its destination slot, and whether the
// entry exists at all. An entry with ok == false or slot == NullBkt is
// dropped. It returns the number of ids actually added.
//
// Below cfg.sequentialThreshold (or with a single configured worker),
// UpdateBuckets walks f sequentially. Above it, f is evaluated in parallel
// across goroutines — once per entry while histogramming destinations, and
// again while scattering ids into their reserved slots (twice for each kept
// entry: once for its slot, once for its id) — so f must be a pure function
// of j with no side effects and no reliance on call order.
func (bs *BucketSet) UpdateBuckets(f UpdateFunc, k int) (int, error) {
	if !bs.allocated {
		return 0, jerrors.ErrClosed
	}
	if k < 0 {
		return 0, jerrors.ErrUpdateDomainMismatch
	}
	if k == 0 {
		return 0, nil
	}

	neBefore := bs.numElms
	if k < bs.cfg.sequentialThreshold || bs.workers == 1 {
		bs.updateBucketsSeq(f, k)
		return bs.numElms - neBefore, nil
	}
	bs.updateBucketsParallel(f, k)
	return bs.numElms - neBefore, nil
}

// updateBucketsSeq is the sequential fast path: it first tallies per-slot
// counts in a single pass, reserves each slot's capacity in bulk, then
// appends, rather than growing a slot one element at a time per insertion.
func (bs *BucketSet) updateBucketsSeq(f UpdateFunc, k int) {
	type entry struct {
		id   Id
		slot Bkt
	}
	entries := make([]entry, 0, k)
	counts := make([]int, bs.totalBuckets)
	for j := 0; j < k; j++ {
		id, slot, ok := f(j)
		if !ok || slot == NullBkt {
			continue
		}
		counts[slot]++
		entries = append(entries, entry{id, slot})
	}
	for s, c := range counts {
		if c > 0 {
			bs.bkts[s].Reserve(c)
		}
	}
	for _, e := range entries {
		bs.bkts[e.slot].Append(e.id)
	}
	bs.numElms += len(entries)
}

// updateBucketsParallel is the histogram → transposed-exclusive-prefix-sum
// → scatter path used once k grows large enough to amortize the extra
// passes over f.
func (bs *BucketSet) updateBucketsParallel(f UpdateFunc, k int) {
	destOf := func(j int) int {
		_, slot, ok := f(j)
		if !ok || slot == NullBkt {
			return -1
		}
		return int(slot)
	}

	// 1-3: per-block histogram, transposed exclusive prefix sum.
	plan := par.Scan(k, bs.totalBuckets, bs.workers, bs.cfg.blockSize, destOf)

	// 4. Resize bucket storage based on the summed histogram; capacity
	// only, logical size is published in step 7.
	base := make([]int, bs.totalBuckets)
	for s := 0; s < bs.totalBuckets; s++ {
		count := plan.Counts[s]
		base[s] = bs.bkts[s].Size()
		if count > 0 {
			bs.bkts[s].Reserve(count)
		}
		bs.numElms += count
	}

	// 5-6. Scatter: write each accepted id into its slot's reserved
	// region, offset by that slot's pre-existing size so repeated calls
	// append rather than overwrite.
	write := func(slot, offset, j int) {
		id, _, _ := f(j)
		bs.bkts[slot].SetAt(base[slot]+offset, id)
	}
	par.Scatter(k, bs.workers, plan, destOf, write)

	// 7. Publish: advance each slot's logical size by its count.
	for s := 0; s < bs.totalBuckets; s++ {
		if plan.Counts[s] > 0 {
			bs.bkts[s].SetSize(base[s] + plan.Counts[s])
		}
	}
}
