package julienne

// VertexSubset is the minimal frontier container handed back by
// NextBucket. It owns Ids: the slice is freshly allocated per call and not
// aliased by BucketSet, so the caller is free to mutate or discard it.
//
// The graph-traversal semantics of a frontier (how a caller iterates it,
// maps it, or feeds it to the next round) are outside the scope of this
// package; VertexSubset exists only to give the "owned ids buffer plus
// universe size" shape a concrete type.
type VertexSubset struct {
	// N is the size of the universe this subset is drawn from, i.e. the
	// same n a BucketSet was constructed with.
	N int
	// Ids holds the subset's members. Empty (possibly nil) for the
	// sentinel bucket returned once a BucketSet is fully drained.
	Ids []Id
}

// Empty reports whether the subset has no members.
func (vs *VertexSubset) Empty() bool { return len(vs.Ids) == 0 }

// Bucket is a single yielded, non-empty bucket: the raw priority it was
// emitted at, the (filtered) ids currently at that priority, and the
// number of ids the slot held before the emission-time filter dropped
// stale entries.
//
// A Bucket with Id == NullBkt is the sentinel returned once a BucketSet is
// fully drained; its Subset is always empty.
type Bucket struct {
	Id          Bkt
	Subset      VertexSubset
	NumFiltered int
}
