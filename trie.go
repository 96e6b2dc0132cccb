package strsort

// Threshold is the tail-bucket burst point: a tail bucket holding this
// many strings is split (burst) into a new trie node before any further
// string can be appended to it. Null buckets (slot 0) are exempt — they
// hold strings that terminate at this node and are never burst.
const Threshold = 8192

// bucketCapacities is the tail-bucket growth sequence: a bucket starts at
// the first capacity and grows to the next ceiling as it fills, up to
// Threshold (beyond which it bursts). The two capacities past Threshold
// exist only so growBucket never has to special-case an already-burst
// bucket mid-append; in practice insert's burst loop keeps counts below
// Threshold.
var bucketCapacities = [...]int{16, 128, 1024, 8192, 16384, 32768}

func nextBucketCapacity(cur int) int {
	for _, c := range bucketCapacities {
		if c > cur {
			return c
		}
	}
	return cur * 2
}

func growBucket(bucket []string) []string {
	if len(bucket) == cap(bucket) {
		grown := make([]string, len(bucket), nextBucketCapacity(cap(bucket)))
		copy(grown, bucket)
		bucket = grown
	}
	return bucket
}

// nullBlock is one fixed-capacity link in a node's null-bucket chain: a
// plain singly linked list, so no cell ever double-duties as both a
// string slot and a next-block pointer.
type nullBlock struct {
	data []string
	next *nullBlock
}

// nullChain is the permanent, non-bursting home for strings that
// terminate at a trie node (alphabet slot 0).
type nullChain struct {
	head, tail *nullBlock
	count      int
}

func (nc *nullChain) append(s string) {
	if nc.tail == nil || len(nc.tail.data) == cap(nc.tail.data) {
		blk := &nullBlock{data: make([]string, 0, Threshold)}
		if nc.tail == nil {
			nc.head = blk
		} else {
			nc.tail.next = blk
		}
		nc.tail = blk
	}
	nc.tail.data = append(nc.tail.data, s)
	nc.count++
}

// slotKind tags which of the mutually exclusive states a trie slot is in:
// a real tagged union rather than a sentinel value shared with another
// field.
type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotBucket
	slotNull
	slotChild
)

type trieSlot struct {
	kind   slotKind
	bucket []string
	null   *nullChain
	child  *trieNode
}

// trieNode is one node of the original (non-redesigned) burst trie: 256
// slots, each empty, a tail bucket, the null bucket, or a child link.
type trieNode struct {
	slots [alphabetSize]trieSlot
}

func newTrieNode() *trieNode { return &trieNode{} }

// appendToSlot appends s to the bucket or null chain at slot (whose
// alphabet index is c), initializing the slot on first use.
func appendToSlot(slot *trieSlot, s string, c int) {
	if c == 0 {
		if slot.kind == slotEmpty {
			slot.kind = slotNull
			slot.null = &nullChain{}
		}
		slot.null.append(s)
		return
	}
	if slot.kind == slotEmpty {
		slot.kind = slotBucket
		slot.bucket = make([]string, 0, bucketCapacities[0])
	}
	slot.bucket = growBucket(slot.bucket)
	slot.bucket = append(slot.bucket, s)
}

// insertTrie inserts s into the trie rooted at root, bursting any tail
// bucket that reaches Threshold along the way.
func insertTrie(root *trieNode, s string) {
	curr := root
	p := 0
	c := byteAt(s, p)
	for curr.slots[c].kind == slotChild {
		curr = curr.slots[c].child
		p++
		c = byteAt(s, p)
	}

	appendToSlot(&curr.slots[c], s, int(c))

	for c != 0 && len(curr.slots[c].bucket) >= Threshold {
		curr = burstTrie(curr, int(c), p)
		p++
		c = byteAt(s, p)
	}
}

// burstTrie splits curr.slots[c]'s overflowing tail bucket into a new
// node indexed by each string's next byte, replacing the bucket with a
// child link, and returns the new node.
func burstTrie(curr *trieNode, c, p int) *trieNode {
	n := newTrieNode()
	for _, x := range curr.slots[c].bucket {
		c2 := byteAt(x, p+1)
		appendToSlot(&n.slots[c2], x, int(c2))
	}
	curr.slots[c] = trieSlot{kind: slotChild, child: n}
	return n
}

// traverseTrie performs the burst trie's in-order walk, materializing the
// sorted order into out[pos:] and returning the new position: child slots
// recurse, non-empty tail buckets are copied then sorted (insertion sort
// below smallBucketCutoff, MKQSort above), and the null bucket is copied
// in insertion order without sorting (every string in it is already equal
// up to depth).
func traverseTrie(root *trieNode, out []string, pos, depth int) int {
	for i := 0; i < alphabetSize; i++ {
		slot := &root.slots[i]
		switch slot.kind {
		case slotChild:
			pos = traverseTrie(slot.child, out, pos, depth+1)
		case slotBucket:
			k := copy(out[pos:], slot.bucket)
			sortCopiedBucket(out, pos, pos+k, depth+1)
			pos += k
		case slotNull:
			for blk := slot.null.head; blk != nil; blk = blk.next {
				pos += copy(out[pos:], blk.data)
			}
		}
	}
	return pos
}

// smallBucketCutoff is the bucket size below which Burstsort uses
// insertion sort instead of MKQSort for the final per-bucket sort.
var smallBucketCutoff = 20

func sortCopiedBucket(out []string, lo, hi, depth int) {
	k := hi - lo
	if k <= 1 {
		return
	}
	if k < smallBucketCutoff {
		insertionSortDepth(out, lo, hi, depth)
		return
	}
	mkqSort(out, lo, hi, depth)
}
