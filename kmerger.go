package strsort

import "math"

// mergerKind tags the fixed arms of the lazy k-merger tree (spec §4.9):
// a leaf wraps one pre-sorted block, unary/binary handle one or two
// input streams directly, and buffer handles k > 3 streams by splitting
// them into groups of ceil(sqrt(k)) streams, one child merger per group,
// and combining the children's outputs with a
// recursively built top merger. Each arm owns its children inline —
// there are no cycles, so ownership is straightforward, unlike the
// source's interface-dispatched merger hierarchy (spec §9).
type mergerKind uint8

const (
	mergerLeaf mergerKind = iota
	mergerUnary
	mergerBinary
	mergerBuffer
)

// stream is one of a merger's inputs: a buffer to pull from, plus the
// merger that can refill it (for a pre-sorted block that never produces
// more, a leaf merger whose refill is a no-op; topUp also treats a nil
// src that way). topUp proactively re-enters src when buf
// drops below half full, rather than waiting for it to empty entirely —
// the "demand pull" scheduling contract of spec §4.9, reframed as an
// explicit call instead of an empty-buffer listener callback (§9,
// "Observer-driven merger reactivation").
type stream struct {
	buf *BCB[string]
	src *merger
}

func (s *stream) topUp() {
	if s.src == nil {
		return
	}
	if s.buf.Count()*2 < s.buf.Len() {
		s.src.refill()
	}
}

// merger is one node of the k-merger tree. Binary and unary nodes read
// directly from in; a buffer node delegates to top, which is itself a
// merger (possibly another buffer node) built over the buffer node's
// children and writing into the same output BCB.
type merger struct {
	kind mergerKind
	out  *BCB[string]
	in   []stream
	top  *merger
}

// newLeafMerger wraps a pre-populated, read-only BCB (an already-sorted
// block) as a k-merger leaf. Its refill is a no-op: all of its data was
// pushed before the tree was built, and it only ever drains.
func newLeafMerger(buf *BCB[string]) *merger {
	return &merger{kind: mergerLeaf, out: buf}
}

// newMerger builds a k-merger over streams, writing into out, following
// the factory rule of spec §4.9: k==1 a pure-copy unary merger, k==2 a
// binary merger, k==3 a binary merger over (a, binary(b,c)), and k>3 a
// buffer merger that partitions streams into groups of ceil(sqrt(k))
// streams (the last group may be smaller), each merged by its own
// recursively built child, then combines the
// children's outputs with one more recursively built merger writing
// directly into out.
func newMerger(streams []stream, out *BCB[string]) *merger {
	k := len(streams)
	switch {
	case k == 1:
		return &merger{kind: mergerUnary, out: out, in: streams}
	case k == 2:
		return &merger{kind: mergerBinary, out: out, in: streams}
	case k == 3:
		innerOut := NewBCB[string](16) // >= 2*ceil(2^1.5) = 6, rounded up generously
		inner := newMerger(streams[1:3], innerOut)
		return &merger{
			kind: mergerBinary,
			out:  out,
			in:   []stream{streams[0], {buf: innerOut, src: inner}},
		}
	default:
		groupSize := ceilSqrt(k)
		childCap := 2 * ceilPow(k, 1.5)
		children := make([]stream, 0, groupSize)
		for i := 0; i < len(streams); i += groupSize {
			end := i + groupSize
			if end > len(streams) {
				end = len(streams)
			}
			childOut := NewBCB[string](childCap)
			child := newMerger(streams[i:end], childOut)
			children = append(children, stream{buf: childOut, src: child})
		}
		top := newMerger(children, out)
		return &merger{kind: mergerBuffer, out: out, in: children, top: top}
	}
}

// refill fills m.out as full as possible from m's inputs, recursively
// topping up any input whose buffer has run low. It returns once out is
// full or every input is permanently exhausted.
func (m *merger) refill() {
	switch m.kind {
	case mergerLeaf:
		return
	case mergerUnary:
		m.unaryRefill()
	case mergerBinary:
		m.binaryRefill()
	case mergerBuffer:
		m.top.refill()
	}
}

func (m *merger) unaryRefill() {
	s := &m.in[0]
	for !m.out.Full() {
		s.topUp()
		if s.buf.Empty() {
			return
		}
		n := minInt(s.buf.Count(), m.out.Len()-m.out.Count())
		s.buf.MoveTo(m.out, n)
	}
}

// binaryRefill is the inner loop of spec §4.9's Binary merger: while
// output has room and both fronts are non-empty, emit the smaller front;
// when one side empties (even after an attempt to top it up), bulk-
// transfer from the other side up to the output's remaining capacity.
func (m *merger) binaryRefill() {
	left, right := &m.in[0], &m.in[1]
	for !m.out.Full() {
		left.topUp()
		right.topUp()
		lEmpty, rEmpty := left.buf.Empty(), right.buf.Empty()
		if lEmpty && rEmpty {
			return
		}
		if lEmpty {
			n := minInt(right.buf.Count(), m.out.Len()-m.out.Count())
			right.buf.MoveTo(m.out, n)
			continue
		}
		if rEmpty {
			n := minInt(left.buf.Count(), m.out.Len()-m.out.Count())
			left.buf.MoveTo(m.out, n)
			continue
		}
		if Less(right.buf.Peek(), left.buf.Peek()) {
			m.out.Push(right.buf.Pop())
		} else {
			m.out.Push(left.buf.Pop())
		}
	}
}

// ceilSqrt returns ceil(sqrt(k)), the number of streams each of a buffer
// merger's children merges (spec §4.9).
func ceilSqrt(k int) int {
	r := int(math.Ceil(math.Sqrt(float64(k))))
	if r < 1 {
		r = 1
	}
	return r
}

// ceilPow returns ceil(k^pow), using real exponentiation rather than the
// bitwise-XOR-for-squaring bug some drafts carried (spec §9).
func ceilPow(k int, pow float64) int {
	v := int(math.Ceil(math.Pow(float64(k), pow)))
	if v < 1 {
		v = 1
	}
	return v
}
