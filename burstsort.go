package strsort

// Burstsort sorts strs in place using the burst-trie engine: every string
// is inserted into a burst trie (bursting tail buckets at Threshold), then
// an in-order traversal copies each bucket back into strs, sorting each
// one with insertion sort or MKQSort as it goes. The trie is discarded
// before Burstsort returns.
//
// Burstsort is not stable. Non-goals and invariants are as spec'd in
// spec.md §4.4–§4.5, §8.
func Burstsort(strs []string) {
	if len(strs) < 2 {
		return
	}
	root := newTrieNode()
	for _, s := range strs {
		insertTrie(root, s)
	}
	traverseTrie(root, strs, 0, 0)
}
