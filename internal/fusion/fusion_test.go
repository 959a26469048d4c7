package fusion

import (
	"os"
	"path/filepath"
	"testing"

	"backend-go/internal/dictionary"
	"backend-go/internal/types"
)

func testDict(t *testing.T, words string) *dictionary.Index {
	t.Helper()
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(wordsPath, []byte(words), 0o644); err != nil {
		t.Fatal(err)
	}
	idx, err := dictionary.Load(wordsPath, filepath.Join(dir, "missing-freq.json"))
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func TestAcceptsDictionaryWordUnchanged(t *testing.T) {
	dict := testDict(t, "cat\n")
	tr := NewTracker(dict)
	fused, _ := tr.Correct(types.Snapshot{PlayersWords: [][]string{{"cat"}}, AvailableLetters: "or"})
	if len(fused.PlayersWords) != 1 || len(fused.PlayersWords[0]) != 1 || fused.PlayersWords[0][0] != "cat" {
		t.Fatalf("expected [cat], got %v", fused.PlayersWords)
	}
	if fused.AvailableLetters != "or" {
		t.Errorf("expected loose letters 'or', got %q", fused.AvailableLetters)
	}
}

// A prior word with one letter changed into another dictionary word is
// trusted over restoring the word that disappeared: "cat" -> "car" should
// not bring "cat" back just because it vanished from the raw snapshot.
func TestOneLetterChangeDoesNotRestoreDisappearedNeighbour(t *testing.T) {
	dict := testDict(t, "cat\ncar\n")
	tr := NewTracker(dict)
	tr.Correct(types.Snapshot{PlayersWords: [][]string{{"cat"}}, AvailableLetters: "or"})

	fused, corr := tr.Correct(types.Snapshot{PlayersWords: [][]string{{"car"}}})
	if len(fused.PlayersWords[0]) != 1 || fused.PlayersWords[0][0] != "car" {
		t.Fatalf("expected [car], got %v", fused.PlayersWords[0])
	}
	if corr.Restored["cat"] {
		t.Errorf("'cat' should not be restored: 'car' is a valid one-edit neighbour")
	}
}

// An OCR-merged pair splits back into the two words that just disappeared.
func TestResplitsMergedPairAgainstDisappearedWords(t *testing.T) {
	dict := testDict(t, "cat\nact\n")
	tr := NewTracker(dict)
	tr.Correct(types.Snapshot{PlayersWords: [][]string{{"cat", "act"}}})

	fused, corr := tr.Correct(types.Snapshot{PlayersWords: [][]string{{"catact"}}})
	got := make(map[string]bool)
	for _, w := range fused.PlayersWords[0] {
		got[w] = true
	}
	if !got["cat"] || !got["act"] {
		t.Fatalf("expected resplit into [cat act], got %v", fused.PlayersWords[0])
	}
	if !corr.Modified["cat"] || !corr.Modified["act"] {
		t.Errorf("both halves should be marked modified, got %v", corr.Modified)
	}
}

// A word that vanishes for one snapshot and has no close dictionary
// neighbour in the new raw data is restored once, via the visibility ring,
// then dropped for good once it has aged out of the ring's two-snapshot
// window.
func TestTransientDisappearanceRestoresOnceThenDrops(t *testing.T) {
	dict := testDict(t, "dog\n")
	tr := NewTracker(dict)
	tr.Correct(types.Snapshot{PlayersWords: [][]string{{"dog"}}})

	fused1, corr1 := tr.Correct(types.Snapshot{PlayersWords: [][]string{{}}})
	if len(fused1.PlayersWords[0]) != 1 || fused1.PlayersWords[0][0] != "dog" {
		t.Fatalf("expected 'dog' restored on first absence, got %v", fused1.PlayersWords[0])
	}
	if !corr1.Restored["dog"] {
		t.Errorf("expected 'dog' flagged restored")
	}

	fused2, corr2 := tr.Correct(types.Snapshot{PlayersWords: [][]string{{}}})
	if len(fused2.PlayersWords[0]) != 0 {
		t.Fatalf("expected 'dog' dropped on second consecutive absence, got %v", fused2.PlayersWords[0])
	}
	if corr2.Restored["dog"] {
		t.Errorf("'dog' should no longer be restored: it has aged out of the visibility ring")
	}
}

func TestInsertsLetterToRecoverDroppedCharacter(t *testing.T) {
	dict := testDict(t, "cart\n")
	tr := NewTracker(dict)
	fused, corr := tr.Correct(types.Snapshot{PlayersWords: [][]string{{"cat"}}, AvailableLetters: "r"})
	if len(fused.PlayersWords[0]) != 1 || fused.PlayersWords[0][0] != "cart" {
		t.Fatalf("expected 'cat' corrected to 'cart', got %v", fused.PlayersWords[0])
	}
	if corr.Ancestor["cart"] != "cat" {
		t.Errorf("expected ancestor 'cat' for 'cart', got %q", corr.Ancestor["cart"])
	}
}

func TestShortWordOnlyTriesInsertion(t *testing.T) {
	dict := testDict(t, "cart\n")
	tr := NewTracker(dict)
	fused, _ := tr.Correct(types.Snapshot{PlayersWords: [][]string{{"ca"}}, AvailableLetters: "rt"})
	if len(fused.PlayersWords) != 1 || len(fused.PlayersWords[0]) != 0 {
		t.Fatalf("expected no word surviving a two-letter fragment with no insertion match, got %v", fused.PlayersWords)
	}
}

func TestConfidenceDecaysAndDropsAfterRepeatedAbsence(t *testing.T) {
	dict := testDict(t, "cat\n")
	tr := NewTracker(dict)
	tr.Correct(types.Snapshot{PlayersWords: [][]string{{"cat"}}})
	entry, ok := tr.Confidence("cat")
	if !ok || entry.Confidence != 1.0 {
		t.Fatalf("expected fresh confidence 1.0, got %+v ok=%v", entry, ok)
	}

	for i := 0; i < 12; i++ {
		tr.Correct(types.Snapshot{PlayersWords: [][]string{{}}})
	}
	if _, ok := tr.Confidence("cat"); ok {
		t.Errorf("expected 'cat' confidence to have decayed to zero and been dropped")
	}
}
