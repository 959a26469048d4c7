package fusion

import "backend-go/internal/dictionary"

const minPartLen = 3

// disappearedSet is the set of words present in the previous fused state
// but absent from the current raw snapshot — rule 2's "D".
type disappearedSet map[string]bool

// validOrDisappeared reports whether s is dictionary-valid or itself one
// of the disappeared words (both count as a legitimate split half).
func validOrDisappeared(dict *dictionary.Index, d disappearedSet, s string) bool {
	return len(s) >= minPartLen && (dict.Contains(s) || d[s])
}

// resplitAgainstDisappeared implements rule 2: W can be written as
// prefix+suffix where one part equals a disappeared word d (length >= 3)
// and the other part (length >= 3) is dictionary-valid or also
// disappeared; or W contains some d in the middle with both flanks
// satisfying the same condition.
func resplitAgainstDisappeared(dict *dictionary.Index, d disappearedSet, w string) ([]string, bool) {
	for dw := range d {
		if len(dw) < minPartLen {
			continue
		}
		// dw as prefix.
		if len(w) > len(dw) && w[:len(dw)] == dw {
			suffix := w[len(dw):]
			if validOrDisappeared(dict, d, suffix) {
				return []string{dw, suffix}, true
			}
		}
		// dw as suffix.
		if len(w) > len(dw) && w[len(w)-len(dw):] == dw {
			prefix := w[:len(w)-len(dw)]
			if validOrDisappeared(dict, d, prefix) {
				return []string{prefix, dw}, true
			}
		}
		// dw in the middle, both flanks >= 3.
		if len(w) >= len(dw)+2*minPartLen {
			for start := minPartLen; start+len(dw) <= len(w)-minPartLen; start++ {
				if w[start:start+len(dw)] != dw {
					continue
				}
				left := w[:start]
				right := w[start+len(dw):]
				if validOrDisappeared(dict, d, left) && validOrDisappeared(dict, d, right) {
					return []string{left, dw, right}, true
				}
			}
		}
	}
	return nil, false
}

// splitIntoTwoWords implements rule 3: a cut with both halves >= 3 and
// dictionary-valid, preferring a cut where one half is a disappeared
// word, otherwise the first valid cut.
func splitIntoTwoWords(dict *dictionary.Index, d disappearedSet, w string) ([]string, bool) {
	var firstValid []string
	for i := minPartLen; i <= len(w)-minPartLen; i++ {
		left, right := w[:i], w[i:]
		if !dict.Contains(left) || !dict.Contains(right) {
			continue
		}
		if firstValid == nil {
			firstValid = []string{left, right}
		}
		if d[left] || d[right] {
			return []string{left, right}, true
		}
	}
	if firstValid != nil {
		return firstValid, true
	}
	return nil, false
}

// recursiveSplit implements rule 4: for W >= 6 and not itself a
// dictionary word, try a cut where one side is dictionary-valid and the
// other side itself splits into dictionary words, up to depth 3.
func recursiveSplit(dict *dictionary.Index, w string, depth int) ([]string, bool) {
	if depth <= 0 {
		return nil, false
	}
	for i := minPartLen; i <= len(w)-minPartLen; i++ {
		left, right := w[:i], w[i:]
		if dict.Contains(left) {
			if dict.Contains(right) {
				return []string{left, right}, true
			}
			if rest, ok := recursiveSplit(dict, right, depth-1); ok {
				return append([]string{left}, rest...), true
			}
		}
		if dict.Contains(right) {
			if rest, ok := recursiveSplit(dict, left, depth-1); ok {
				return append(rest, right), true
			}
		}
	}
	return nil, false
}
