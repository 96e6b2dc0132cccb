// Package strsort implements cache-oblivious in-memory string sorting:
// Burstsort (a burst-trie radix sort) and Lazy Funnelsort (a k-merger
// cache-oblivious mergesort), both falling back to a three-way radix
// multikey quicksort (MKQ) at small ranges.
//
// Strings are compared byte-lexicographically with virtual zero-padding:
// a byte at a depth past a string's end reads as 0, so shorter strings
// sort before longer strings sharing the same prefix. None of the sorts
// here are stable, and none of them support streaming or external
// sorting — the whole input must fit in memory.
//
// Burstsort and Funnelsort are independent engines over the same data;
// see TestBurstsortAndFunnelSortAgree and TestAllEnginesAgreeElementWise
// for the property that they agree on output order even though their
// internal strategies differ.
package strsort
