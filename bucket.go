package julienne

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	jerrors "github.com/dhulipala/julienne/errors"
	"github.com/dhulipala/julienne/internal/assert"
	"github.com/dhulipala/julienne/internal/growable"
	"github.com/dhulipala/julienne/internal/par"
)

// BucketSet is a parallel, lazy, priority-bucketed frontier over the fixed
// universe of identifiers [0, n). It materializes a bounded window of
// totalBuckets-1 "open" buckets plus one overflow slot, repeatedly yielding
// the next non-empty bucket in Order while letting callers bulk-reassign
// ids to new priorities between yields.
//
// Every exported method is phased, not safe for concurrent invocation: the
// parallelism lives strictly inside UpdateBuckets and inside the filter
// step of the bucket extracted by NextBucket. See the package doc for the
// expected call pattern.
type BucketSet struct {
	n            int
	d            PriorityFunc
	order        Order
	totalBuckets int
	openBuckets  int // totalBuckets - 1; the overflow slot is bkts[openBuckets]
	bkts         []*growable.Array

	curRange int
	curBkt   int
	numElms  int

	cfg       *config
	workers   int
	allocated bool
}

// New constructs a BucketSet over the universe [0, n), deriving each id's
// initial priority from d. order controls whether NextBucket walks
// priorities upward or downward. totalBuckets defaults to 128 and may be
// overridden with WithTotalBuckets; it must be >= 2.
func New(n int, d PriorityFunc, order Order, opts ...Option) (*BucketSet, error) {
	if n < 0 {
		return nil, jerrors.ErrNegativeUniverse
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.totalBuckets < 2 {
		return nil, jerrors.ErrInvalidTotalBuckets
	}
	if order != Increasing && order != Decreasing {
		return nil, jerrors.ErrUnknownOrder
	}

	workers := cfg.workers
	if workers <= 0 {
		workers = par.DefaultWorkers()
	}

	bs := &BucketSet{
		n:            n,
		d:            d,
		order:        order,
		totalBuckets: cfg.totalBuckets,
		openBuckets:  cfg.totalBuckets - 1,
		bkts:         make([]*growable.Array, cfg.totalBuckets),
		cfg:          cfg,
		workers:      workers,
		allocated:    true,
	}
	for i := range bs.bkts {
		bs.bkts[i] = growable.New()
	}

	if n > 0 {
		switch order {
		case Increasing:
			minB := par.ReduceMin(n, workers, NullBkt, func(i int) Bkt { return d(Id(i)) })
			bs.curRange = int(minB) / bs.openBuckets
		case Decreasing:
			maxB := par.ReduceMax(n, workers, 0, func(i int) Bkt {
				v := d(Id(i))
				if v == NullBkt {
					return 0
				}
				return v
			})
			bs.curRange = (int(maxB) + bs.openBuckets) / bs.openBuckets
		}
	}

	cfg.logf("julienne: new bucket set n=%d order=%s totalBuckets=%d curRange=%d", n, order, cfg.totalBuckets, bs.curRange)

	// Distribute all non-null ids into the window or the overflow slot.
	if _, err := bs.UpdateBuckets(func(j int) (Id, Bkt, bool) {
		p := d(Id(j))
		if p == NullBkt {
			return 0, NullBkt, false
		}
		return Id(j), bs.toRange(p), true
	}, n); err != nil {
		return nil, err
	}

	return bs, nil
}

// toRange maps a raw priority to a slot index within the current window:
// NullBkt if p is NullBkt or stale (below the window in increasing order,
// above it in decreasing order), openBuckets (the overflow slot) if p lies
// beyond the window in the direction of travel, or p's sub-slot within the
// window otherwise.
func (bs *BucketSet) toRange(p Bkt) Bkt {
	if p == NullBkt {
		return NullBkt
	}
	b1 := bs.openBuckets
	pp := int(p)
	if bs.order == Increasing {
		if pp < bs.curRange*b1 {
			return NullBkt
		}
		if pp < (bs.curRange+1)*b1 {
			return Bkt(pp % b1)
		}
		return Bkt(b1)
	}
	// Decreasing.
	assert.That(bs.curRange > 0, "toRange: decreasing order window underflowed past priority 0 (curRange=%d)", bs.curRange)
	if pp >= bs.curRange*b1 {
		return NullBkt
	}
	if pp >= (bs.curRange-1)*b1 {
		return Bkt(b1 - (pp % b1) - 1)
	}
	return Bkt(b1)
}

// GetCurBucketNum reconstructs the raw priority the cursor currently
// points at, inverting toRange.
func (bs *BucketSet) GetCurBucketNum() Bkt {
	b1 := bs.openBuckets
	if bs.order == Increasing {
		return Bkt(bs.curRange*b1 + bs.curBkt)
	}
	return Bkt(bs.curRange*b1 - bs.curBkt - 1)
}

// GetBucket computes the destination slot for an id transitioning from
// priority prev to priority next. It returns NullBkt when no write is
// needed — i.e. the id would land back in the slot it already occupies —
// UNLESS that slot is the one currently being emitted, in which case the
// caller is allowed to re-enqueue the id to re-enter this round. Preserve
// the nb == curBkt clause exactly: some callers rely on it.
func (bs *BucketSet) GetBucket(prev, next Bkt) Bkt {
	pb := bs.toRange(prev)
	nb := bs.toRange(next)
	if nb != NullBkt && (prev == NullBkt || pb != nb || int(nb) == bs.curBkt) {
		return nb
	}
	return NullBkt
}

// NumElements returns the total number of ids currently queued across all
// slots, materialized window plus overflow.
func (bs *BucketSet) NumElements() int { return bs.numElms }

// Checksum folds the structure's current window, cursor, total, and
// per-slot sizes into a single xxhash64 value. It is a diagnostic for
// crash triage and property-test golden-state comparison, not part of the
// structure's correctness contract.
func (bs *BucketSet) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		if _, err := h.Write(buf[:]); err != nil {
			panic("julienne: hash.Hash.Write returned unexpected error: " + err.Error())
		}
	}
	write(uint64(bs.curRange))
	write(uint64(bs.curBkt))
	write(uint64(bs.numElms))
	for _, a := range bs.bkts {
		write(uint64(a.Size()))
	}
	return h.Sum64()
}

// Close releases all internal bucket storage back to the pool it was
// drawn from. Idempotent: calling Close on an already-closed BucketSet is
// a no-op.
func (bs *BucketSet) Close() {
	if !bs.allocated {
		return
	}
	for _, a := range bs.bkts {
		a.Release()
	}
	bs.bkts = nil
	bs.allocated = false
}
