package strsort

// insertionSortDepth sorts arr[lo:hi] comparing from depth d onward. It is
// MKQ's base case below mkqInsertionCutoff, and Burstsort's per-bucket
// sorter when a bucket holds fewer than smallBucketCutoff strings.
func insertionSortDepth(arr []string, lo, hi, d int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && compareFrom(arr[j], arr[j-1], d) < 0; j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}

// siftDownDepth restores the heap property of the heap stored in
// arr[first:first+hi), sifting down from the node at first+lo, comparing
// from depth d.
func siftDownDepth(arr []string, lo, hi, first, d int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && compareFrom(arr[first+child], arr[first+child+1], d) < 0 {
			child++
		}
		if compareFrom(arr[first+root], arr[first+child], d) >= 0 {
			return
		}
		arr[first+root], arr[first+child] = arr[first+child], arr[first+root]
		root = child
	}
}

// heapSortDepth sorts arr[a:b] comparing from depth d. It is MKQSort's
// worst-case fallback once a range's partition budget is exhausted,
// guaranteeing O(n log n) regardless of how the range's pivots fall.
func heapSortDepth(arr []string, a, b, d int) {
	first := a
	lo := 0
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDownDepth(arr, i, hi, first, d)
	}
	for i := hi - 1; i >= 0; i-- {
		arr[first], arr[first+i] = arr[first+i], arr[first]
		siftDownDepth(arr, lo, i, first, d)
	}
}
