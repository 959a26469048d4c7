package api

import (
	"testing"

	"backend-go/internal/types"
)

func TestMarshalRecommendedWordsPreservesInsertionOrder(t *testing.T) {
	recs := []types.Recommendation{
		{Word: "actor", Blocks: []types.Block{{Kind: types.BlockWord, Text: "act"}, {Kind: types.BlockLetter, Text: "o"}, {Kind: types.BlockLetter, Text: "r"}}},
		{Word: "cats", Blocks: []types.Block{{Kind: types.BlockWord, Text: "cat"}, {Kind: types.BlockLetter, Text: "s"}}},
	}
	got := string(marshalRecommendedWords(recs))
	want := `{"actor":["act","o","r"],"cats":["cat","s"]}`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestMarshalRecommendedWordsEmpty(t *testing.T) {
	if got := string(marshalRecommendedWords(nil)); got != "{}" {
		t.Fatalf("got %s", got)
	}
}

func TestLettersToStealMapMatchesRecommendations(t *testing.T) {
	recs := []types.Recommendation{
		{Word: "actor", LettersToSteal: 2},
		{Word: "cats", LettersToSteal: 1},
	}
	m := lettersToStealMap(recs)
	if m["actor"] != 2 || m["cats"] != 1 {
		t.Fatalf("got %+v", m)
	}
}
