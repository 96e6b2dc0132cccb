package strsort

// alphabetSize is the width of the burst trie's per-node slot array. Go
// strings are byte sequences, so we truncate to 8 bits rather than widen
// to a 65536-entry alphabet for UTF-16 code units: see SPEC_FULL.md §2.
const alphabetSize = 256

// byteAt returns the byte at depth d in s, or 0 if s is exhausted at that
// depth (virtual zero-padding). This is the only primitive the core sorts
// need from a string: depth-indexed access with an implicit terminator.
func byteAt(s string, d int) byte {
	if d >= len(s) {
		return 0
	}
	return s[d]
}

// compareFrom compares a and b lexicographically starting at depth d,
// treating bytes past either string's end as 0. It advances both views
// simultaneously while bytes are equal, returning the signed difference
// of the first differing pair, or 0 if both are exhausted at the same
// position.
func compareFrom(a, b string, d int) int {
	la, lb := len(a), len(b)
	for {
		var ca, cb byte
		if d < la {
			ca = a[d]
		}
		if d < lb {
			cb = b[d]
		}
		if ca != cb {
			return int(ca) - int(cb)
		}
		if d >= la && d >= lb {
			return 0
		}
		d++
	}
}

// Less reports whether a sorts before b under byte-lexicographic order
// with virtual zero-padding.
func Less(a, b string) bool {
	return compareFrom(a, b, 0) < 0
}

// IsSorted reports whether arr is non-decreasing under Less.
func IsSorted(arr []string) bool {
	for i := 1; i < len(arr); i++ {
		if Less(arr[i], arr[i-1]) {
			return false
		}
	}
	return true
}
