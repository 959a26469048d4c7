package construction

import (
	"math/bits"
	"sort"

	"backend-go/internal/letters"
)

// maxSubsetWords bounds the subset-enumeration combinatorics at 2^16
// masks. When more unique words are on the table, only the longest
// maxSubsetWords are kept in the subset cache (the rest still count
// toward poolCounts and can still be enumerated as dictionary candidates,
// they just can't appear as whole-word blocks). Trades completeness for
// bounded work, as the specification permits.
const maxSubsetWords = 16

// maskEntry is the precomputed letter-count vector and word list for one
// subset bitmask. Words is a slice header shared (not copied) across
// cache extensions, so extending the cache never recomputes or
// reallocates the word lists of already-resolved masks.
type maskEntry struct {
	Counts letters.Vector
	Words  []string
}

// subsetCache is the Gray-code-built table of every subset of the current
// unique player words. It is rebuilt cold when the signature changes by
// more than one added word, and extended in place when exactly one word
// was added.
type subsetCache struct {
	words   []string // canonical (sorted) word list, index i <-> bit i
	vectors []letters.Vector
	entries []maskEntry
}

// allUniqueWords returns every distinct word across all players,
// deduplicated, uncapped — used for pool-letter arithmetic, which must
// account for every word on the table regardless of the subset-cache cap.
func allUniqueWords(playerWords [][]string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, words := range playerWords {
		for _, w := range words {
			if !seen[w] {
				seen[w] = true
				unique = append(unique, w)
			}
		}
	}
	return unique
}

// signature returns the sorted, deduplicated, length-capped unique word
// list used both as the cache key and as the subset index ordering.
func signature(playerWords [][]string) []string {
	unique := append([]string(nil), allUniqueWords(playerWords)...)
	sort.Strings(unique)
	if len(unique) <= maxSubsetWords {
		return unique
	}
	// Cap at the longest maxSubsetWords, keeping the result sorted
	// alphabetically again for a stable signature.
	capped := append([]string(nil), unique...)
	sort.Slice(capped, func(i, j int) bool {
		if len(capped[i]) != len(capped[j]) {
			return len(capped[i]) > len(capped[j])
		}
		return capped[i] < capped[j]
	})
	capped = capped[:maxSubsetWords]
	sort.Strings(capped)
	return capped
}

// buildCold builds a subsetCache from scratch for the given word list, in
// Gray-code order so each step touches exactly one word's vector.
func buildCold(words []string) *subsetCache {
	n := len(words)
	size := 1 << n
	vectors := make([]letters.Vector, n)
	for i, w := range words {
		vectors[i] = letters.FromString(w)
	}

	entries := make([]maskEntry, size)
	entries[0] = maskEntry{}

	current := letters.Vector{}
	var currentWords []string
	prevGray := 0
	for i := 1; i < size; i++ {
		gray := i ^ (i >> 1)
		diff := gray ^ prevGray
		bit := bits.TrailingZeros(uint(diff))
		present := gray&(1<<uint(bit)) != 0
		if present {
			current = current.Add(vectors[bit])
			next := make([]string, len(currentWords)+1)
			copy(next, currentWords)
			next[len(currentWords)] = words[bit]
			currentWords = next
		} else {
			current = current.Sub(vectors[bit])
			currentWords = removeWord(currentWords, words[bit])
		}
		entries[gray] = maskEntry{Counts: current, Words: currentWords}
		prevGray = gray
	}

	return &subsetCache{words: words, vectors: vectors, entries: entries}
}

func removeWord(words []string, target string) []string {
	next := make([]string, 0, len(words)-1)
	removed := false
	for _, w := range words {
		if !removed && w == target {
			removed = true
			continue
		}
		next = append(next, w)
	}
	return next
}

// extend grows an existing cache by exactly one newly added word. Masks
// 0..oldSize-1 are the prior cache's entries copied by value into the
// lower half of the new table: their counts are not recomputed and their
// Words slices are shared, but they are new entries, not the same ones.
// Masks oldSize..2*oldSize-1 are each the corresponding old mask plus the
// new word.
func (c *subsetCache) extend(newWord string) *subsetCache {
	n := len(c.words)
	oldSize := 1 << n
	newVec := letters.FromString(newWord)

	entries := make([]maskEntry, oldSize*2)
	copy(entries[:oldSize], c.entries)
	for m := 0; m < oldSize; m++ {
		old := c.entries[m]
		words := make([]string, len(old.Words)+1)
		copy(words, old.Words)
		words[len(old.Words)] = newWord
		entries[oldSize+m] = maskEntry{
			Counts: old.Counts.Add(newVec),
			Words:  words,
		}
	}

	words := make([]string, n+1)
	copy(words, c.words)
	words[n] = newWord
	vectors := make([]letters.Vector, n+1)
	copy(vectors, c.vectors)
	vectors[n] = newVec

	return &subsetCache{words: words, vectors: vectors, entries: entries}
}
