package api

import (
	"reflect"
	"testing"

	"backend-go/internal/types"
)

func TestNormalizePlayersShape(t *testing.T) {
	body := []byte(`{"players":[{"words":["Cat","dog!"]},{"words":["run"]}],"availableLetters":"xyz"}`)
	got := normalize(body, types.Snapshot{})
	want := types.Snapshot{PlayersWords: [][]string{{"cat", "dog"}, {"run"}}, AvailableLetters: "xyz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeWordsPerPlayerShape(t *testing.T) {
	body := []byte(`{"wordsPerPlayer":[["cat"],["car","act"]],"available":["x","y","z"]}`)
	got := normalize(body, types.Snapshot{})
	want := types.Snapshot{PlayersWords: [][]string{{"cat"}, {"car", "act"}}, AvailableLetters: "xyz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeDeltaShapeAppliesAddedAndRemoved(t *testing.T) {
	prev := types.Snapshot{PlayersWords: [][]string{{"cat", "dog"}}, AvailableLetters: "xyz"}
	body := []byte(`{"addedWords":["car"],"removedWords":["dog"]}`)
	got := normalize(body, prev)
	want := types.Snapshot{PlayersWords: [][]string{{"cat", "car"}}, AvailableLetters: "xyz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeMalformedBodyDegradesToEmptySnapshot(t *testing.T) {
	got := normalize([]byte(`not json`), types.Snapshot{AvailableLetters: "abc"})
	if got.PlayersWords != nil {
		t.Fatalf("expected no players, got %+v", got.PlayersWords)
	}
}

func TestCleanWordStripsNonAlphaAndLowercases(t *testing.T) {
	if got := cleanWord("C@T123"); got != "ct" {
		t.Fatalf("got %q", got)
	}
}
