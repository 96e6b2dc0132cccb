package strsort

import "math"

// FunnelsortCutoff is the range size at or below which FunnelSort defers
// to MKQSort instead of recursing further (spec §4.8's "tunable
// threshold, from experimental literature"), mirroring qSortCutoff's role
// in the teacher's own radix sort.
var FunnelsortCutoff = 400

// FunnelSort sorts strs in place using the lazy funnelsort engine: the
// input is recursively divided into n^(1/3) blocks, each block is sorted
// independently (recursing, or falling back to MKQSort below
// FunnelsortCutoff), then the sorted blocks are merged through a lazy
// k-merger tree built from bounded circular buffers.
//
// Like Burstsort, FunnelSort is not stable; the relative order of equal
// strings is unspecified. See spec.md §4.8–§4.9, §8.
func FunnelSort(strs []string) {
	if len(strs) < 2 {
		return
	}
	fsort(strs, 0, len(strs))
}

func fsort(arr []string, lo, hi int) {
	n := hi - lo
	if n <= FunnelsortCutoff {
		mkqSort(arr, lo, hi, 0)
		return
	}

	b := int(math.Round(math.Cbrt(float64(n))))
	if b < 2 {
		b = 2
	}
	s := n / b

	blockStarts := make([]int, 0, b+1)
	pos := lo
	for i := 0; i < b-1; i++ {
		fsort(arr, pos, pos+s)
		blockStarts = append(blockStarts, pos)
		pos += s
	}
	fsort(arr, pos, hi) // leftover block: n - (b-1)*s strings
	blockStarts = append(blockStarts, pos, hi)

	leaves := make([]stream, len(blockStarts)-1)
	for i := 0; i < len(blockStarts)-1; i++ {
		start, end := blockStarts[i], blockStarts[i+1]
		block := NewBCB[string](end - start)
		for j := start; j < end; j++ {
			block.Push(arr[j])
		}
		leaves[i] = stream{buf: block, src: newLeafMerger(block)}
	}

	out := NewBCB[string](n)
	root := newMerger(leaves, out)
	root.refill()
	if out.Count() != n {
		panic("strsort: funnelsort merge did not fill its output buffer")
	}
	out.DrainToSlice(arr[lo:hi], 0)
}
