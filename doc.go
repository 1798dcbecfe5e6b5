// Package julienne implements the core data structure of the Julienne
// work-efficient bucketing framework: a parallel, lazy, priority-bucketed
// frontier over a fixed universe of identifiers.
//
// Each identifier carries a current priority (bucket number) produced by a
// caller-supplied PriorityFunc. A BucketSet repeatedly yields the next
// non-empty bucket in increasing or decreasing priority order via
// NextBucket, while permitting bulk, parallel reassignment of identifiers to
// new buckets between yields via UpdateBuckets. It is the engine behind
// parallel graph algorithms that process vertices in rounds ordered by a
// changing key, such as Δ-stepping shortest paths, approximate set cover, or
// k-core decomposition.
//
// Only a bounded window of "open" buckets is ever materialized; identifiers
// whose priority falls outside the window are held in an overflow slot until
// the window advances past them (NextBucket advances the window internally
// when its cursor walks off the end).
//
// # Basic Usage
//
//	d := func(id julienne.Id) julienne.Bkt { return priorities[id] }
//	bs, err := julienne.New(n, d, julienne.Increasing)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bs.Close()
//
//	for {
//	    b := bs.NextBucket()
//	    if b.Id == julienne.NullBkt {
//	        break
//	    }
//	    // process b.Subset.Ids, then bulk-reassign some of them:
//	    bs.UpdateBuckets(func(j int) (julienne.Id, julienne.Bkt, bool) {
//	        id := b.Subset.Ids[j]
//	        next := newPriority(id)
//	        return id, bs.GetBucket(b.Id, next), true
//	    }, len(b.Subset.Ids))
//	}
//
// # Package Structure
//
//   - Public API: bucket.go (New, GetBucket, Checksum, Close)
//   - Bucket iteration: bucket_iterate.go (NextBucket)
//   - Bulk parallel insertion: bucket_parallel.go (UpdateBuckets)
//   - Configuration: options.go (Option, With* functions)
//   - Frontier container: vertexset.go (VertexSubset, Bucket)
//   - Parallel primitives: internal/par (ForBlocks, ReduceMin/Max, Scan, Scatter, Filter)
//   - Bucket storage: internal/growable (Array)
//   - Debug assertions: internal/assert (build-tag gated)
package julienne
