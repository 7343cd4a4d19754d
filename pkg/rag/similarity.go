package rag

// Ratio computes a Gestalt-style similarity between two strings: twice the
// total length of matching blocks divided by the combined length. 1.0 means
// identical, 0.0 means no common characters. Matching blocks are found by
// recursively locating the longest common substring, the same scheme
// difflib's SequenceMatcher uses.
func Ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchLen(a, b)) / float64(total)
}

func matchLen(a, b string) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size + matchLen(a[:ai], b[:bi]) + matchLen(a[ai+size:], b[bi+size:])
}

func longestCommonSubstring(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] is the length of the common suffix ending at a[i] and b[j]
	lengths := make([]int, len(b))
	for i := 0; i < len(a); i++ {
		prev := 0
		for j := 0; j < len(b); j++ {
			cur := lengths[j]
			if a[i] == b[j] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
