package par

// Filter runs pred(in[i]) for each i in [0, len(in)) in parallel and
// returns, in original order, the subsequence of in for which pred
// returned true. It is the parallel, stable analogue of a slice filter:
// a per-block count, an exclusive prefix sum over the (small) per-block
// counts, then a scatter pass once the output slice can be sized.
func Filter(in []uint32, workers, blockSize int, pred func(v uint32) bool) []uint32 {
	k := len(in)
	if k == 0 {
		return nil
	}
	numBlocks := BlockCount(k, blockSize)

	// 1. Per-block count of kept items.
	counts := make([]int, numBlocks)
	ForBlocks(k, numBlocks, workers, func(blockIdx, start, end int) {
		c := 0
		for j := start; j < end; j++ {
			if pred(in[j]) {
				c++
			}
		}
		counts[blockIdx] = c
	})

	// 2. Exclusive prefix sum over the (small) per-block counts.
	offsets := make([]int, numBlocks)
	total := 0
	for b := 0; b < numBlocks; b++ {
		offsets[b] = total
		total += counts[b]
	}
	if total == 0 {
		return nil
	}

	// 3. Scatter: each block writes its kept items starting at its own
	// offset, advancing a private cursor. Each block owns one contiguous
	// region of the output, so no cache-line padding is needed here.
	out := make([]uint32, total)
	ForBlocks(k, numBlocks, workers, func(blockIdx, start, end int) {
		cursor := offsets[blockIdx]
		for j := start; j < end; j++ {
			if pred(in[j]) {
				out[cursor] = in[j]
				cursor++
			}
		}
	})

	return out
}
