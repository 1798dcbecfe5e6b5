package julienne

import (
	"math/rand"
	"testing"
)

// TestUpdateBucketsSeqAndParallelAgree constructs two bucket sets over the
// same priorities, one whose sequential threshold exceeds k (sequential
// path) and one with threshold 1 (parallel path), verifying both yield the
// same sequence of bucket ids with the same number of ids in each.
func TestUpdateBucketsSeqAndParallelAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1122))
	const n = 20000
	priorities := make([]Bkt, n)
	for i := range priorities {
		priorities[i] = Bkt(rng.Intn(1000))
	}
	d := func(id Id) Bkt { return priorities[id] }

	seq, err := New(n, d, Increasing, WithTotalBuckets(64), WithSequentialThreshold(1<<30))
	if err != nil {
		t.Fatalf("New (seq): %v", err)
	}
	defer seq.Close()

	par, err := New(n, d, Increasing, WithTotalBuckets(64), WithSequentialThreshold(1))
	if err != nil {
		t.Fatalf("New (par): %v", err)
	}
	defer par.Close()

	if seq.NumElements() != par.NumElements() {
		t.Fatalf("NumElements: seq=%d par=%d", seq.NumElements(), par.NumElements())
	}

	seqTotal, parTotal := 0, 0
	for {
		bs1 := seq.NextBucket()
		bs2 := par.NextBucket()
		if bs1.Id != bs2.Id {
			t.Fatalf("sequential and parallel paths diverged: %d != %d", bs1.Id, bs2.Id)
		}
		if bs1.Id == NullBkt {
			break
		}
		if len(bs1.Subset.Ids) != len(bs2.Subset.Ids) {
			t.Fatalf("bucket %d: seq emitted %d ids, par emitted %d", bs1.Id, len(bs1.Subset.Ids), len(bs2.Subset.Ids))
		}
		seqTotal += len(bs1.Subset.Ids)
		parTotal += len(bs2.Subset.Ids)
	}
	if seqTotal != n || parTotal != n {
		t.Fatalf("seqTotal=%d parTotal=%d, want both %d", seqTotal, parTotal, n)
	}
}

func TestUpdateBucketsDropsFalseAndNullEntries(t *testing.T) {
	bs, err := New(0, func(Id) Bkt { return NullBkt }, Increasing)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer bs.Close()

	added, err := bs.UpdateBuckets(func(j int) (Id, Bkt, bool) {
		switch j {
		case 0:
			return 100, 0, false
		case 1:
			return 101, NullBkt, true
		default:
			return Id(j), Bkt(j % bs.openBuckets), true
		}
	}, 10)
	if err != nil {
		t.Fatalf("UpdateBuckets: %v", err)
	}
	if added != 8 {
		t.Fatalf("added = %d, want 8", added)
	}
	if bs.NumElements() != 8 {
		t.Fatalf("NumElements() = %d, want 8", bs.NumElements())
	}
}

func TestUpdateBucketsRejectsNegativeK(t *testing.T) {
	bs, err := New(0, func(Id) Bkt { return NullBkt }, Increasing)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer bs.Close()

	if _, err := bs.UpdateBuckets(func(int) (Id, Bkt, bool) { return 0, 0, true }, -1); err == nil {
		t.Fatal("expected an error for negative k")
	}
}
