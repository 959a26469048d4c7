package api

import (
	"bytes"
	"encoding/json"

	"backend-go/internal/types"
)

// marshalRecommendedWords builds the recommended_words object by hand: a
// plain Go map marshals its keys in sorted order, which would silently
// reorder results away from the ranked order the construction engine
// already produced. Each block serializes as its text — the
// word/letter distinction is an internal scoring concern, not a wire one.
func marshalRecommendedWords(recs []types.Recommendation) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range recs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(r.Word)
		buf.Write(key)
		buf.WriteByte(':')
		value, _ := json.Marshal(blockTexts(r.Blocks))
		buf.Write(value)
	}
	buf.WriteByte('}')
	return json.RawMessage(buf.Bytes())
}

func blockTexts(blocks []types.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Text
	}
	return out
}

func lettersToStealMap(recs []types.Recommendation) map[string]int {
	m := make(map[string]int, len(recs))
	for _, r := range recs {
		m[r.Word] = r.LettersToSteal
	}
	return m
}
