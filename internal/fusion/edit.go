package fusion

// isOneEditApart reports whether a and b differ by exactly one
// insertion, deletion, or substitution (Levenshtein distance == 1).
func isOneEditApart(a, b string) bool {
	la, lb := len(a), len(b)
	if abs(la-lb) > 1 {
		return false
	}
	if la == lb {
		diff := 0
		for i := 0; i < la; i++ {
			if a[i] != b[i] {
				diff++
				if diff > 1 {
					return false
				}
			}
		}
		return diff == 1
	}
	return isOneDeletionApart(a, b)
}

// isOneDeletionApart reports whether the longer of a, b is obtained by
// inserting exactly one character into the shorter (lengths must already
// differ by exactly one).
func isOneDeletionApart(a, b string) bool {
	long, short := a, b
	if len(a) < len(b) {
		long, short = b, a
	}
	if len(long)-len(short) != 1 {
		return false
	}
	i, j := 0, 0
	skipped := false
	for i < len(long) && j < len(short) {
		if long[i] == short[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
		i++
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// commonLetterOrder is the classic English letter-frequency order, used
// as the rule-6 fallback when no loose letter yields a dictionary word.
const commonLetterOrder = "etaoinshrdlcumwfgypbvkjxqz"

// insertionPositions returns the 0..len(w) insertion indices ordered by
// distance from the center, nearest first — the vision system is most
// likely to have dropped a letter from the middle of a word.
func insertionPositions(w string) []int {
	n := len(w) + 1
	center := n / 2
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	// Simple insertion sort by distance from center; n is small (word
	// length), so this is cheap and keeps a stable left-before-right tie
	// order matching how a human would scan outward from the middle.
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			di := absDist(positions[j], center)
			dj := absDist(positions[j-1], center)
			if di < dj {
				positions[j], positions[j-1] = positions[j-1], positions[j]
			} else {
				break
			}
		}
	}
	return positions
}

func absDist(a, b int) int {
	return abs(a - b)
}
