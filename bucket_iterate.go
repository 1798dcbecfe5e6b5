package julienne

import (
	"fmt"

	"github.com/dhulipala/julienne/internal/assert"
	"github.com/dhulipala/julienne/internal/par"
)

// NextBucket advances the cursor to the next non-empty slot within the
// current window, unpacking the overflow slot whenever the cursor walks
// off the end, and returns the filtered contents of that slot. Returns
// the sentinel bucket (Id: NullBkt) once numElms reaches 0.
func (bs *BucketSet) NextBucket() *Bucket {
	for bs.bkts[bs.curBkt].Size() == 0 && bs.numElms > 0 {
		bs.curBkt++
		if bs.curBkt == bs.openBuckets {
			bs.unpack()
			bs.curBkt = 0
		}
	}
	assert.That(bs.curBkt >= 0 && bs.curBkt < bs.openBuckets, "NextBucket: curBkt %d out of range [0, %d)", bs.curBkt, bs.openBuckets)
	if bs.numElms == 0 {
		return &Bucket{Id: NullBkt, Subset: VertexSubset{N: bs.n}}
	}
	return bs.getCurBucket()
}

// getCurBucket extracts and filters the slot the cursor currently points
// at. An id survives the filter only if its current priority still equals
// the slot's raw bucket number: an id can sit in a slot for a while before
// being emitted, and its priority may have moved in the meantime (via a
// later UpdateBuckets call, or because the caller's PriorityFunc reads
// mutable state). Ids that no longer belong are silently dropped, not
// re-routed — the caller is responsible for having already redirected
// them via GetBucket/UpdateBuckets before the next yield.
func (bs *BucketSet) getCurBucket() *Bucket {
	slot := bs.bkts[bs.curBkt]
	rawID := bs.GetCurBucketNum()
	originalSize := slot.Size()

	ids := slot.Slots()
	kept := par.Filter(ids, bs.workers, bs.cfg.blockSize, func(v uint32) bool {
		return bs.d(Id(v)) == rawID
	})

	bs.numElms -= originalSize
	slot.SetSize(0)

	if len(kept) == 0 {
		return bs.NextBucket()
	}

	return &Bucket{
		Id:          rawID,
		Subset:      VertexSubset{N: bs.n, Ids: kept},
		NumFiltered: originalSize,
	}
}

// unpack advances the window by one step and redistributes the overflow
// slot's contents: ids now inside the new window move into their slots,
// ids still outside stay in overflow, and ids whose priority became
// NullBkt in the meantime are dropped.
//
// Precondition: the cursor has walked past the end of the window, so
// every slot except the overflow slot is empty and the overflow slot
// holds exactly numElms ids.
func (bs *BucketSet) unpack() {
	overflow := bs.bkts[bs.openBuckets]
	m := overflow.Size()
	if m != bs.numElms {
		panic(fmt.Sprintf("julienne: unpack: overflow slot holds %d ids but numElms is %d", m, bs.numElms))
	}

	tmp := make([]Id, m)
	copy(tmp, overflow.Slots())

	switch bs.order {
	case Increasing:
		bs.curRange++
	case Decreasing:
		bs.curRange--
	}
	overflow.SetSize(0)

	if _, err := bs.UpdateBuckets(func(j int) (Id, Bkt, bool) {
		v := tmp[j]
		return v, bs.toRange(bs.d(v)), true
	}, m); err != nil {
		panic(fmt.Sprintf("julienne: unpack: redistribution failed: %v", err))
	}

	// UpdateBuckets already added the redistributed count into numElms;
	// subtract the snapshot size to offset the double-count (these ids
	// were already part of numElms before this call).
	bs.numElms -= m
}
