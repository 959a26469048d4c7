package api

import (
	"encoding/json"
	"strings"

	"backend-go/internal/types"
)

// rawRequest is the union of the three accepted /update-data body shapes.
// Malformed or missing fields coerce to zero values rather than reject the
// request — the upstream vision pipeline sends partial payloads often.
type rawRequest struct {
	Players          []playerBody    `json:"players"`
	WordsPerPlayer   [][]string      `json:"wordsPerPlayer"`
	Available        json.RawMessage `json:"available"`
	AvailableLetters json.RawMessage `json:"availableLetters"`
	AddedWords       []string        `json:"addedWords"`
	RemovedWords     []string        `json:"removedWords"`
}

type playerBody struct {
	Words []string `json:"words"`
}

// normalize converts whichever shape the client sent into a canonical
// types.Snapshot: lowercased, non-alphabetic stripped words, and loose
// letters joined from either a string or an array of characters. prev is
// the last snapshot processed, used as the base for the delta shape.
func normalize(body []byte, prev types.Snapshot) types.Snapshot {
	var req rawRequest
	if len(body) > 0 {
		_ = json.Unmarshal(body, &req) // malformed JSON degrades to an empty snapshot
	}

	letters := firstNonEmpty(decodeLetters(req.AvailableLetters), decodeLetters(req.Available))

	switch {
	case len(req.Players) > 0:
		return types.Snapshot{PlayersWords: normalizePlayers(playersFromBodies(req.Players)), AvailableLetters: letters}
	case len(req.WordsPerPlayer) > 0:
		return types.Snapshot{PlayersWords: normalizePlayers(req.WordsPerPlayer), AvailableLetters: letters}
	case len(req.AddedWords) > 0 || len(req.RemovedWords) > 0:
		return applyDelta(prev, req.AddedWords, req.RemovedWords, letters)
	default:
		return types.Snapshot{AvailableLetters: letters}
	}
}

func playersFromBodies(players []playerBody) [][]string {
	out := make([][]string, len(players))
	for i, p := range players {
		out[i] = p.Words
	}
	return out
}

// applyDelta folds added/removed words into the previous snapshot's flat
// word set, then republishes it as a single-player snapshot — downstream
// re-attribution happens in fusion/journal exactly as with any other raw
// snapshot.
func applyDelta(prev types.Snapshot, added, removed []string, letters string) types.Snapshot {
	set := make(map[string]bool)
	var order []string
	for _, players := range prev.PlayersWords {
		for _, w := range players {
			w = cleanWord(w)
			if w == "" || set[w] {
				continue
			}
			set[w] = true
			order = append(order, w)
		}
	}
	removedSet := make(map[string]bool, len(removed))
	for _, w := range removed {
		removedSet[cleanWord(w)] = true
	}
	var final []string
	for _, w := range order {
		if !removedSet[w] {
			final = append(final, w)
		}
	}
	for _, w := range added {
		w = cleanWord(w)
		if w == "" || set[w] {
			continue
		}
		set[w] = true
		final = append(final, w)
	}
	if letters == "" {
		letters = prev.AvailableLetters
	}
	return types.Snapshot{PlayersWords: [][]string{final}, AvailableLetters: letters}
}

func normalizePlayers(players [][]string) [][]string {
	out := make([][]string, len(players))
	for i, words := range players {
		for _, w := range words {
			if clean := cleanWord(w); clean != "" {
				out[i] = append(out[i], clean)
			}
		}
	}
	return out
}

func cleanWord(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decodeLetters accepts availableLetters as either a JSON string or a JSON
// array of single-character strings, joining the latter.
func decodeLetters(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return cleanWord(s)
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return cleanWord(strings.Join(arr, ""))
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
