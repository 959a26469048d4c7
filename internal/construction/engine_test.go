package construction

import (
	"os"
	"path/filepath"
	"testing"

	"backend-go/internal/dictionary"
	"backend-go/internal/types"
)

func testDict(t *testing.T, words string, freq string) *dictionary.Index {
	t.Helper()
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(wordsPath, []byte(words), 0o644); err != nil {
		t.Fatal(err)
	}
	freqPath := filepath.Join(dir, "freq.json")
	if freq != "" {
		if err := os.WriteFile(freqPath, []byte(freq), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	idx, err := dictionary.Load(wordsPath, freqPath)
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func recWords(recs []types.Recommendation) map[string]bool {
	m := make(map[string]bool)
	for _, r := range recs {
		m[r.Word] = true
	}
	return m
}

func TestEmptyBoardYieldsNoRecommendations(t *testing.T) {
	idx := testDict(t, "cat\nactor\n", "")
	eng := NewEngine(idx, DefaultScoring())
	res := eng.Solve(types.FusedState{})
	if len(res.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", res.Recommendations)
	}
}

func TestSingleWordNoLooseLettersYieldsNothing(t *testing.T) {
	idx := testDict(t, "cat\nactor\n", "")
	eng := NewEngine(idx, DefaultScoring())
	res := eng.Solve(types.FusedState{PlayersWords: [][]string{{"cat"}}})
	if len(res.Recommendations) != 0 {
		t.Errorf("C1 additivity violated: expected no recommendations, got %v", res.Recommendations)
	}
}

func TestCatPlusOrRecommendsActorNotAct(t *testing.T) {
	idx := testDict(t, "cat\nact\nactor\n", "")
	eng := NewEngine(idx, DefaultScoring())
	res := eng.Solve(types.FusedState{
		PlayersWords:     [][]string{{"cat"}},
		AvailableLetters: "or",
	})
	words := recWords(res.Recommendations)
	if !words["actor"] {
		t.Errorf("expected 'actor' recommended, got %v", words)
	}
	if words["act"] {
		t.Errorf("'act' should not be recommended (no additive construction), got %v", words)
	}
	for _, r := range res.Recommendations {
		if r.Word == "actor" {
			if len(r.Blocks) < 2 {
				t.Errorf("actor construction has < 2 blocks: %v", r.Blocks)
			}
			hasCat := false
			for _, b := range r.Blocks {
				if b.Kind == types.BlockWord && b.Text == "cat" {
					hasCat = true
				}
			}
			if !hasCat {
				t.Errorf("actor construction should use 'cat' as a whole-word block: %v", r.Blocks)
			}
		}
	}
}

func TestCatBoatOrDoesNotRecommendAboard(t *testing.T) {
	idx := testDict(t, "cat\nboat\nactor\naboard\n", "")
	eng := NewEngine(idx, DefaultScoring())
	res := eng.Solve(types.FusedState{
		PlayersWords:     [][]string{{"cat"}, {"boat"}},
		AvailableLetters: "or",
	})
	words := recWords(res.Recommendations)
	if words["aboard"] {
		t.Errorf("'aboard' would require splitting letters out of 'boat' — must not be recommended")
	}
	if !words["actor"] {
		t.Errorf("expected 'actor' recommended, got %v", words)
	}
}

func TestNoPureAnagramOfSinglePlayerWord(t *testing.T) {
	idx := testDict(t, "cat\nact\n", "")
	eng := NewEngine(idx, DefaultScoring())
	res := eng.Solve(types.FusedState{
		PlayersWords:     [][]string{{"cat"}},
		AvailableLetters: "act",
	})
	words := recWords(res.Recommendations)
	if words["act"] {
		t.Errorf("'act' is a pure anagram of loose letters matching 'cat' and must be forbidden")
	}
}

func TestRankingPrefersHigherZipf(t *testing.T) {
	idx := testDict(t, "hello\nhex\n", `{"hello":6.0,"hex":3.0}`)
	eng := NewEngine(idx, DefaultScoring())
	res := eng.Solve(types.FusedState{AvailableLetters: "helloxyz"})
	if len(res.Recommendations) < 2 {
		t.Fatalf("expected at least 2 recommendations, got %v", res.Recommendations)
	}
	if res.Recommendations[0].Word != "hello" {
		t.Errorf("expected 'hello' ranked first, got %q", res.Recommendations[0].Word)
	}
}

func TestLettersToStealMatchesSingleLetterBlockCount(t *testing.T) {
	idx := testDict(t, "cat\nactor\n", "")
	eng := NewEngine(idx, DefaultScoring())
	res := eng.Solve(types.FusedState{
		PlayersWords:     [][]string{{"cat"}},
		AvailableLetters: "or",
	})
	for _, r := range res.Recommendations {
		steal := 0
		for _, b := range r.Blocks {
			if b.Kind == types.BlockLetter {
				steal++
			}
		}
		if steal != r.LettersToSteal {
			t.Errorf("%s: LettersToSteal=%d but counted %d letter blocks", r.Word, r.LettersToSteal, steal)
		}
	}
}

func TestCacheExtensionMatchesColdBuild(t *testing.T) {
	idx := testDict(t, "cat\nact\nactor\ncart\ntrace\n", "")
	eng := NewEngine(idx, DefaultScoring())

	// First solve with 3 words builds an 8-mask cache.
	eng.Solve(types.FusedState{PlayersWords: [][]string{{"cat", "act", "cart"}}})
	prevEntries := eng.cache.entries
	if len(prevEntries) != 8 {
		t.Fatalf("expected 8 masks, got %d", len(prevEntries))
	}

	// Adding one more unique word should extend in place.
	eng.Solve(types.FusedState{PlayersWords: [][]string{{"cat", "act", "cart", "trace"}}})
	if len(eng.cache.entries) != 16 {
		t.Fatalf("expected 16 masks after extension, got %d", len(eng.cache.entries))
	}
	for m := 0; m < 8; m++ {
		if eng.cache.entries[m].Counts != prevEntries[m].Counts {
			t.Errorf("mask %d counts changed after extension: %v vs %v", m, eng.cache.entries[m].Counts, prevEntries[m].Counts)
		}
	}

	cold := buildCold(signature([][]string{{"cat", "act", "cart", "trace"}}))
	for m := range cold.entries {
		if eng.cache.entries[m].Counts != cold.entries[m].Counts {
			t.Errorf("mask %d: extended=%v cold=%v", m, eng.cache.entries[m].Counts, cold.entries[m].Counts)
		}
	}
}

// An extension appends the new word as the highest bit, so the cache's word
// order stops being alphabetical whenever the added word doesn't sort last.
// Identical follow-up snapshots must still hit the cache.
func TestCacheReusedAcrossIdenticalSnapshotsAfterExtension(t *testing.T) {
	idx := testDict(t, "cat\nact\nboat\n", "")
	eng := NewEngine(idx, DefaultScoring())

	eng.Solve(types.FusedState{PlayersWords: [][]string{{"act", "cat"}}})
	eng.Solve(types.FusedState{PlayersWords: [][]string{{"act", "boat", "cat"}}})
	extended := eng.cache
	if len(extended.entries) != 8 {
		t.Fatalf("expected 8 masks after extension, got %d", len(extended.entries))
	}

	eng.Solve(types.FusedState{PlayersWords: [][]string{{"act", "boat", "cat"}}})
	if eng.cache != extended {
		t.Errorf("identical snapshot should reuse the extended cache, not rebuild it")
	}
}
