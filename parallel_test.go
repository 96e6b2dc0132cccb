package strsort_test

import (
	"math/rand"
	"sort"
	"testing"

	strsort "github.com/gostrings/strsort"
)

func TestBurstsortParallelAgreesWithBurstsort(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	orig := make([]string, 50000)
	for i := range orig {
		orig[i] = randomAlnum(r, 12)
	}
	sequential := append([]string(nil), orig...)
	parallel := append([]string(nil), orig...)
	strsort.Burstsort(sequential)
	strsort.BurstsortParallel(parallel)
	if !equalStrings(sequential, parallel) {
		t.Fatal("BurstsortParallel disagrees with Burstsort (determinism property, spec §8)")
	}
}

func TestBurstsortParallelWithSmallWorkerPool(t *testing.T) {
	origWorkers := strsort.ParallelWorkers
	origThreshold := strsort.ParallelNullSplitThreshold
	defer func() {
		strsort.ParallelWorkers = origWorkers
		strsort.ParallelNullSplitThreshold = origThreshold
	}()
	strsort.ParallelWorkers = 2
	strsort.ParallelNullSplitThreshold = 50 // force null-chain splitting into multiple jobs

	r := rand.New(rand.NewSource(11))
	arr := make([]string, 20000)
	const narrow = "ab"
	for i := range arr {
		// A narrow alphabet and varying lengths push lots of strings into
		// a handful of trie paths, producing large null chains to split.
		buf := make([]byte, 1+r.Intn(6))
		for j := range buf {
			buf[j] = narrow[r.Intn(len(narrow))]
		}
		arr[i] = string(buf)
	}
	strsort.BurstsortParallel(arr)
	if !strsort.IsSorted(arr) {
		t.Fatal("BurstsortParallel with a small worker pool and split null chains produced unsorted output")
	}
}

// TestBurstsortParallelJobsWriteDisjointRanges checks the disjoint-write
// invariant spec §8 names separately from the determinism property: the
// output ranges BurstsortParallel's jobs write to must never overlap,
// since runCopyJobs dispatches them across goroutines with no
// synchronization between one job's writes and another's.
func TestBurstsortParallelJobsWriteDisjointRanges(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	arr := make([]string, 30000)
	for i := range arr {
		arr[i] = randomAlnum(r, 6)
	}

	ranges := strsort.CollectJobRanges(arr)
	if len(ranges) == 0 {
		t.Fatal("expected at least one copy job for a 30000-element input")
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })
	for i := range ranges {
		lo, hi := ranges[i][0], ranges[i][1]
		if lo >= hi {
			t.Fatalf("job %d has empty or inverted range [%d, %d)", i, lo, hi)
		}
		if i > 0 && ranges[i-1][1] > lo {
			t.Fatalf("job ranges overlap: [%d, %d) and [%d, %d)",
				ranges[i-1][0], ranges[i-1][1], lo, hi)
		}
	}
}

func TestBurstsortParallelBoundaryInputs(t *testing.T) {
	var empty []string
	strsort.BurstsortParallel(empty)

	one := []string{"solo"}
	strsort.BurstsortParallel(one)
	if one[0] != "solo" {
		t.Fatal("single-element input must be unchanged")
	}
}
