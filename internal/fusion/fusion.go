// Package fusion smooths noisy vision snapshots into a believable fused
// game state, correcting OCR-class errors against dictionary membership,
// edit distance to the prior state, and a short visibility window.
package fusion

import (
	"strings"

	"backend-go/internal/dictionary"
	"backend-go/internal/types"
)

// ConfidenceEntry tracks how much to trust a currently-tracked word.
type ConfidenceEntry struct {
	Confidence float64
	Modified   bool
}

// ringEntry is one retained raw snapshot (words flattened across
// players, plus its loose letters) for the visibility window.
type ringEntry struct {
	words   map[string]bool
	letters string
}

// Tracker holds fusion's mutable, process-wide state: the previous fused
// word list, the confidence map, and the two-snapshot visibility ring.
// It is owned by the single solver goroutine; no internal locking.
type Tracker struct {
	dict        *dictionary.Index
	prevFused   []string
	prevLetters string
	confidence  map[string]*ConfidenceEntry
	ring        [2]ringEntry // ring[0] = most recent, ring[1] = one before
}

// NewTracker creates an empty fusion Tracker bound to a dictionary.
func NewTracker(dict *dictionary.Index) *Tracker {
	return &Tracker{dict: dict, confidence: make(map[string]*ConfidenceEntry)}
}

// Correction describes how Correct transformed one raw snapshot,
// information the journal's player re-attribution step needs.
type Correction struct {
	// Ancestor maps each word in the fused output to the raw word (or
	// disappeared word) whose player ownership it should inherit. Absent
	// entries mean the word is its own ancestor.
	Ancestor map[string]string
	Modified map[string]bool
	Restored map[string]bool
}

// Correct runs the full fusion pipeline against one raw snapshot and
// returns the new fused state plus re-attribution hints. Never fails: a
// raw word that no rule accepts or corrects is dropped.
func (t *Tracker) Correct(raw types.Snapshot) (types.FusedState, Correction) {
	rawFlatSet := make(map[string]bool)
	var rawFlat []string
	for _, players := range raw.PlayersWords {
		for _, w := range players {
			if !rawFlatSet[w] {
				rawFlatSet[w] = true
				rawFlat = append(rawFlat, w)
			}
		}
	}

	// The visibility ring is updated with the current raw snapshot first,
	// so "the last two raw snapshots" a restoration check consults means
	// this snapshot and the one immediately before it.
	t.pushRing(rawFlatSet, raw.AvailableLetters)

	disappeared := make(disappearedSet)
	for _, p := range t.prevFused {
		if !rawFlatSet[p] {
			disappeared[p] = true
		}
	}

	corr := Correction{Ancestor: make(map[string]string), Modified: make(map[string]bool)}
	correctedSet := make(map[string]bool)
	var correctedOrder []string

	addCorrected := func(word, ancestor string, modified bool) {
		if len(word) < 3 || correctedSet[word] {
			return
		}
		correctedSet[word] = true
		correctedOrder = append(correctedOrder, word)
		if modified {
			corr.Modified[word] = true
		}
		if ancestor != "" && ancestor != word {
			corr.Ancestor[word] = ancestor
		}
	}

	for _, w := range rawFlat {
		t.correctWord(w, disappeared, rawFlat, addCorrected)
	}

	// Confidence veto: a modified word with a dictionary-valid raw
	// neighbour one edit away loses to the fresh direct observation.
	for _, m := range correctedOrder {
		if !corr.Modified[m] {
			continue
		}
		for _, r := range rawFlat {
			if r != m && t.dict.Contains(r) && isOneEditApart(m, r) {
				delete(correctedSet, m)
				delete(corr.Modified, m)
				delete(corr.Ancestor, m)
				break
			}
		}
	}

	var final []string
	for _, w := range correctedOrder {
		if correctedSet[w] {
			final = append(final, w)
		}
	}

	// Disappeared-word restoration.
	corr.Restored = make(map[string]bool)
	for p := range disappeared {
		if correctedSet[p] {
			continue
		}
		if subsumed(p, final) {
			continue
		}
		if !t.seenInRing(p) {
			continue
		}
		if hasCloseNeighbourInRaw(t.dict, p, rawFlat) {
			continue
		}
		correctedSet[p] = true
		final = append(final, p)
		corr.Restored[p] = true
	}

	availableLetters := normalizeLetters(raw.AvailableLetters)

	t.updateConfidence(final, corr.Modified)
	t.prevFused = append([]string(nil), final...)
	t.prevLetters = availableLetters

	playerWords := [][]string{final}
	return types.FusedState{PlayersWords: playerWords, AvailableLetters: availableLetters}, corr
}

// correctWord applies rules 1-6 to one raw word, in order, the first
// match winning, and reports the outcome via emit.
func (t *Tracker) correctWord(w string, disappeared disappearedSet, rawFlat []string, emit func(word, ancestor string, modified bool)) {
	if len(w) < 3 {
		if corrected, ok := t.tryInsertLetter(w); ok {
			emit(corrected, w, true)
		}
		return
	}

	// Rule 1: accept.
	if t.dict.Contains(w) {
		emit(w, w, false)
		return
	}

	// Rule 2: re-split against a disappeared word.
	if parts, ok := resplitAgainstDisappeared(t.dict, disappeared, w); ok {
		for _, p := range parts {
			emit(p, w, true)
		}
		return
	}

	// Rule 3: split into two real words.
	if parts, ok := splitIntoTwoWords(t.dict, disappeared, w); ok {
		for _, p := range parts {
			emit(p, w, true)
		}
		return
	}

	// Rule 4: recursive split, W >= 6 only.
	if len(w) >= 6 {
		if parts, ok := recursiveSplit(t.dict, w, 3); ok {
			for _, p := range parts {
				emit(p, w, true)
			}
			return
		}
	}

	// Rule 5: single-edit correction to a prior fused word.
	for _, p := range t.prevFused {
		if abs(len(w)-len(p)) != 1 {
			continue
		}
		if !isOneDeletionApart(w, p) {
			continue
		}
		if t.dict.Contains(p) {
			emit(p, w, true)
			return
		}
	}

	// Rule 6: insert a loose letter (or fallback common letter) to reach
	// a dictionary word.
	if corrected, ok := t.tryInsertLetter(w); ok {
		emit(corrected, w, true)
		return
	}

	// No rule fired: discard.
}

// tryInsertLetter implements rule 6: try every letter of the previous
// availableLetters at every insertion position (middle-out), falling
// back to frequency-ordered common letters if none work.
func (t *Tracker) tryInsertLetter(w string) (string, bool) {
	positions := insertionPositions(w)
	if corrected, ok := tryInsertFrom(t.dict, w, positions, t.prevLetters); ok {
		return corrected, true
	}
	return tryInsertFrom(t.dict, w, positions, commonLetterOrder)
}

func tryInsertFrom(dict *dictionary.Index, w string, positions []int, alphabet string) (string, bool) {
	seen := make(map[byte]bool)
	for _, r := range []byte(alphabet) {
		if r < 'a' || r > 'z' || seen[r] {
			continue
		}
		seen[r] = true
		for _, pos := range positions {
			candidate := w[:pos] + string(r) + w[pos:]
			if dict.Contains(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// subsumed reports whether p is a substring of some word in final, or
// some word in final is a substring of p — either way p is not a
// distinct disappeared word anymore.
func subsumed(p string, final []string) bool {
	for _, f := range final {
		if f == p {
			continue
		}
		if strings.Contains(f, p) || strings.Contains(p, f) {
			return true
		}
	}
	return false
}

func hasCloseNeighbourInRaw(dict *dictionary.Index, p string, rawFlat []string) bool {
	for _, r := range rawFlat {
		if dict.Contains(r) && isOneEditApart(p, r) {
			return true
		}
	}
	return false
}

func (t *Tracker) seenInRing(word string) bool {
	return t.ring[0].words[word] || t.ring[1].words[word]
}

func (t *Tracker) pushRing(words map[string]bool, letters string) {
	t.ring[1] = t.ring[0]
	t.ring[0] = ringEntry{words: words, letters: letters}
}

func (t *Tracker) updateConfidence(final []string, modified map[string]bool) {
	finalSet := make(map[string]bool, len(final))
	for _, f := range final {
		finalSet[f] = true
	}
	for _, f := range final {
		if modified[f] {
			t.confidence[f] = &ConfidenceEntry{Confidence: 0.5, Modified: true}
			continue
		}
		prev, ok := t.confidence[f]
		if !ok {
			t.confidence[f] = &ConfidenceEntry{Confidence: 1.0, Modified: false}
			continue
		}
		next := prev.Confidence + 0.25
		if next > 1.0 {
			next = 1.0
		}
		t.confidence[f] = &ConfidenceEntry{Confidence: next, Modified: false}
	}
	for word, entry := range t.confidence {
		if finalSet[word] {
			continue
		}
		entry.Confidence -= 0.1
		if entry.Confidence <= 0 {
			delete(t.confidence, word)
		}
	}
}

// Confidence returns the current confidence entry for a tracked word, if
// any.
func (t *Tracker) Confidence(word string) (ConfidenceEntry, bool) {
	e, ok := t.confidence[word]
	if !ok {
		return ConfidenceEntry{}, false
	}
	return *e, true
}

// normalizeLetters lowercases and strips non-alphabetic characters from a
// loose-letter string.
func normalizeLetters(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
