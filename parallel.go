package strsort

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelWorkers bounds the number of goroutines BurstsortParallel uses to
// sort buckets and copy oversized null chains concurrently. It defaults to
// GOMAXPROCS and is a package var, not a parameter, in the same spirit as
// the teacher's MaxProcs — a knob tests turn down to force interesting
// schedules on small inputs.
var ParallelWorkers = runtime.GOMAXPROCS(0)

// ParallelNullSplitThreshold is the null-chain size at or above which its copy
// is split one job per block and run alongside the bucket-sort jobs,
// instead of being copied inline during the single-threaded trie walk.
var ParallelNullSplitThreshold = Threshold

// copyJob is one unit of work dispatched after the trie walk: either a
// bucket slice to sort in place at out[lo:hi), or a single null-chain
// block to copy verbatim into out[lo:hi).
type copyJob struct {
	lo, hi, depth int
	block         []string // non-nil for a null-block copy job; sort otherwise
}

// traverseTrieCollect walks the trie exactly like traverseTrie, but
// instead of sorting each bucket inline, it copies the bucket's string
// references and records a job to sort them later. Null chains below
// ParallelNullSplitThreshold are still copied inline (splitting a small
// chain into per-block jobs would cost more in scheduling than it saves);
// larger ones are recorded as one job per block.
func traverseTrieCollect(root *trieNode, out []string, pos, depth int, jobs *[]copyJob) int {
	for i := 0; i < alphabetSize; i++ {
		slot := &root.slots[i]
		switch slot.kind {
		case slotChild:
			pos = traverseTrieCollect(slot.child, out, pos, depth+1, jobs)
		case slotBucket:
			k := copy(out[pos:], slot.bucket)
			if k > 1 {
				*jobs = append(*jobs, copyJob{lo: pos, hi: pos + k, depth: depth + 1})
			}
			pos += k
		case slotNull:
			if slot.null.count >= ParallelNullSplitThreshold {
				for blk := slot.null.head; blk != nil; blk = blk.next {
					*jobs = append(*jobs, copyJob{lo: pos, hi: pos + len(blk.data), block: blk.data})
					pos += len(blk.data)
				}
			} else {
				for blk := slot.null.head; blk != nil; blk = blk.next {
					pos += copy(out[pos:], blk.data)
				}
			}
		}
	}
	return pos
}

// runCopyJobs dispatches jobs across ParallelWorkers goroutines using a
// fixed-width errgroup pool, in place of the teacher's hand-rolled
// channel-and-WaitGroup pool: SetLimit gives the same bounded-concurrency
// join-barrier shape with first-error-wins semantics, which this package
// doesn't need (no job can fail) but inherits for free.
func runCopyJobs(out []string, jobs []copyJob) {
	if len(jobs) == 0 {
		return
	}
	workers := ParallelWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if j.block != nil {
				copy(out[j.lo:j.hi], j.block)
			} else {
				sortCopiedBucket(out, j.lo, j.hi, j.depth)
			}
			return nil
		})
	}
	_ = g.Wait() // no job returns an error; Wait only joins them
}

// BurstsortParallel sorts strs like Burstsort, but sorts independent
// buckets (and copies oversized null chains) concurrently across
// ParallelWorkers goroutines once the trie is built. Trie construction
// itself is sequential: every insert can burst any node along its path,
// so there is no lock-free way to split it across goroutines without
// serializing on the same contention it's meant to avoid — only the
// independent, read-only traversal phase is parallelized.
func BurstsortParallel(strs []string) {
	if len(strs) < 2 {
		return
	}
	root := newTrieNode()
	for _, s := range strs {
		insertTrie(root, s)
	}
	var jobs []copyJob
	traverseTrieCollect(root, strs, 0, 0, &jobs)
	runCopyJobs(strs, jobs)
}
