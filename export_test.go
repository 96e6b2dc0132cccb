package strsort

// Seam exposing unexported internals to the black-box _test packages,
// mirroring the teacher's own export_test.go (SetQSortCutoff,
// GuessIntShift, Checking).

// ByteAt exposes byteAt for depth-indexing tests.
func ByteAt(s string, d int) byte { return byteAt(s, d) }

// CompareFrom exposes compareFrom for comparator tests.
func CompareFrom(a, b string, d int) int { return compareFrom(a, b, d) }

// SetMKQInsertionCutoff overrides mkqInsertionCutoff, returning its prior
// value so a test can restore it.
func SetMKQInsertionCutoff(n int) int {
	orig := mkqInsertionCutoff
	mkqInsertionCutoff = n
	return orig
}

// SetNinetherCutoff overrides ninetherCutoff, returning its prior value.
func SetNinetherCutoff(n int) int {
	orig := ninetherCutoff
	ninetherCutoff = n
	return orig
}

// SetSmallBucketCutoff overrides smallBucketCutoff, returning its prior
// value.
func SetSmallBucketCutoff(n int) int {
	orig := smallBucketCutoff
	smallBucketCutoff = n
	return orig
}

// Partition3Way exposes partition3way so tests can check the three-way
// partition invariant directly, without depending on MKQSort's recursion
// around it.
func Partition3Way(arr []string, lo, hi, d int) (lt, gt int) {
	lt, gt, _, _ = partition3way(arr, lo, hi, d)
	return lt, gt
}

// TrieBucketSizes inserts strs into a fresh original-variant burst trie
// and returns the size of every tail bucket left in the finished trie,
// recorded via a post-build walk. A tail bucket only grows until it is
// burst and replaced by a child link, so each bucket the walk finds is
// seen at its largest size; buckets that were burst are not reported.
func TrieBucketSizes(strs []string) []int {
	root := newTrieNode()
	for _, s := range strs {
		insertTrie(root, s)
	}
	var sizes []int
	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		for i := 0; i < alphabetSize; i++ {
			switch n.slots[i].kind {
			case slotChild:
				walk(n.slots[i].child)
			case slotBucket:
				sizes = append(sizes, len(n.slots[i].bucket))
			}
		}
	}
	walk(root)
	return sizes
}

// CompactTrieBucketSizes is TrieBucketSizes's counterpart for the
// redesigned, sub-bucket-indexed trie.
func CompactTrieBucketSizes(strs []string) []int {
	root := newCompactTrieNode()
	for _, s := range strs {
		insertCompactTrie(root, s)
	}
	var sizes []int
	var walk func(n *compactTrieNode)
	walk = func(n *compactTrieNode) {
		for i := 0; i < alphabetSize; i++ {
			switch n.slots[i].kind {
			case compactSlotChild:
				walk(n.slots[i].child)
			case compactSlotIndex:
				sizes = append(sizes, n.slots[i].index.count())
			}
		}
	}
	walk(root)
	return sizes
}

// CollectJobRanges builds a fresh burst trie over strs, runs
// traverseTrieCollect exactly as BurstsortParallel does, and returns each
// collected copyJob's [lo, hi) output range, so a test can check the
// disjoint-write invariant (spec §8) independent of runCopyJobs actually
// running them.
func CollectJobRanges(strs []string) [][2]int {
	root := newTrieNode()
	for _, s := range strs {
		insertTrie(root, s)
	}
	out := make([]string, len(strs))
	var jobs []copyJob
	traverseTrieCollect(root, out, 0, 0, &jobs)
	ranges := make([][2]int, len(jobs))
	for i, j := range jobs {
		ranges[i] = [2]int{j.lo, j.hi}
	}
	return ranges
}

// MergeBlocksForTest builds a k-merger tree over the given pre-sorted
// blocks (each already sorted byte-lexicographically) and returns the
// fully merged, drained output, exercising newMerger/refill directly
// across arbitrary fan-outs (1, 2, 3, 4, and >4, i.e. every arm of the
// factory rule) without going through FunnelSort's block-division.
func MergeBlocksForTest(blocks [][]string) []string {
	n := 0
	leaves := make([]stream, len(blocks))
	for i, blk := range blocks {
		n += len(blk)
		buf := NewBCB[string](len(blk))
		for _, s := range blk {
			buf.Push(s)
		}
		leaves[i] = stream{buf: buf, src: newLeafMerger(buf)}
	}
	out := NewBCB[string](n)
	root := newMerger(leaves, out)
	root.refill()
	result := make([]string, n)
	out.DrainToSlice(result, 0)
	return result
}
