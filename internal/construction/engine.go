// Package construction enumerates every dictionary word a player could
// build by adding loose letters and/or whole existing words to what is
// already on the table.
package construction

import (
	"sort"

	"backend-go/internal/dictionary"
	"backend-go/internal/letters"
	"backend-go/internal/types"
)

// ScoringConfig controls ranking and filtering of enumerated candidates.
type ScoringConfig struct {
	FreqFloor    float64
	WeightFreq   float64
	WeightLength float64
	Strategy     string // "default" or "longestFirst"
}

// DefaultScoring returns the specification's default weights.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{FreqFloor: 1.0, WeightFreq: 1.5, WeightLength: 1.0, Strategy: "default"}
}

// Engine is the construction solver. It owns the subset cache across
// snapshots and is touched only by the single solver goroutine — no
// internal locking.
type Engine struct {
	dict    *dictionary.Index
	scoring ScoringConfig
	cache   *subsetCache
}

// NewEngine creates an Engine bound to a dictionary and a scoring config.
func NewEngine(dict *dictionary.Index, scoring ScoringConfig) *Engine {
	return &Engine{dict: dict, scoring: scoring}
}

// Result is the ranked output of one Solve call.
type Result struct {
	Recommendations []types.Recommendation // in rank order (see rank)
}

// Solve enumerates and ranks every buildable word for one fused snapshot.
func (e *Engine) Solve(state types.FusedState) Result {
	sig := signature(state.PlayersWords)
	e.cache = e.resolveCache(sig)

	looseCounts := letters.FromString(state.AvailableLetters)
	poolCounts := looseCounts
	for _, w := range allUniqueWords(state.PlayersWords) {
		poolCounts = poolCounts.Add(letters.FromString(w))
	}
	totalPool := poolCounts.Sum()

	maxLen := e.dict.MaxLength()
	if totalPool < maxLen {
		maxLen = totalPool
	}

	var recs []types.Recommendation
	for first := byte('a'); first <= 'z'; first++ {
		if poolCounts.CountOf(first) == 0 {
			continue
		}
		for length := 3; length <= maxLen; length++ {
			for _, cand := range e.dict.CandidatesByFirstLength(first, length) {
				if !poolCounts.GreaterOrEqual(cand.Counts) {
					continue
				}
				if blocks, steal, ok := e.construct(cand.Counts, looseCounts); ok {
					recs = append(recs, types.Recommendation{
						Word:           cand.Word,
						Blocks:         blocks,
						LettersToSteal: steal,
					})
				}
			}
		}
	}

	recs = e.rank(recs)
	return Result{Recommendations: recs}
}

// resolveCache returns a subset cache for sig, extending the previous
// cache in place when sig differs by exactly one newly added word,
// rebuilding cold otherwise. The cache's own word order is bit order,
// which stops being alphabetical after an extension, so comparisons
// against the sorted signature go through a sorted copy.
func (e *Engine) resolveCache(sig []string) *subsetCache {
	if e.cache == nil {
		return buildCold(sig)
	}
	prev := sortedCopy(e.cache.words)
	if sameWords(prev, sig) {
		return e.cache
	}
	if addedWord, ok := addsExactlyOne(prev, sig); ok {
		return e.cache.extend(addedWord)
	}
	return buildCold(sig)
}

func sortedCopy(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

func sameWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// addsExactlyOne reports whether next is prev plus exactly one additional
// word (both already sorted), returning that word.
func addsExactlyOne(prev, next []string) (string, bool) {
	if len(next) != len(prev)+1 {
		return "", false
	}
	i, j := 0, 0
	var added string
	found := false
	for i < len(prev) && j < len(next) {
		if prev[i] == next[j] {
			i++
			j++
			continue
		}
		if found {
			return "", false
		}
		added = next[j]
		found = true
		j++
	}
	if j < len(next) {
		if found {
			return "", false
		}
		added = next[j]
		found = true
	}
	return added, found
}

// construct runs the per-candidate construction search: the letters-only
// fast path (C1/C3/C4), then the high-to-low mask scan over the subset
// cache (C2). Returns the chosen blocks, their single-letter block count,
// and whether any valid construction exists.
func (e *Engine) construct(target, looseCounts letters.Vector) ([]types.Block, int, bool) {
	// (a) Letters-only fast path.
	if looseCounts.GreaterOrEqual(target) && target.Sum() >= 2 && !e.cache.isAnyPlayerWord(target) {
		return expandLetters(target), target.Sum(), true
	}

	// (b) Mask scan, high to low: prefer constructions using more player
	// words.
	for m := len(e.cache.entries) - 1; m >= 0; m-- {
		entry := e.cache.entries[m]
		if !target.GreaterOrEqual(entry.Counts) {
			continue
		}
		remainder := target.Sub(entry.Counts)
		if !looseCounts.GreaterOrEqual(remainder) {
			continue
		}
		blockCount := len(entry.Words) + remainder.Sum()
		if blockCount < 2 {
			continue
		}
		if len(entry.Words) == 0 && e.cache.isAnyPlayerWord(remainder) {
			// C4: pure anagram of a single existing word is forbidden.
			continue
		}
		blocks := make([]types.Block, 0, blockCount)
		for _, w := range entry.Words {
			blocks = append(blocks, types.Block{Kind: types.BlockWord, Text: w})
		}
		blocks = append(blocks, expandLetters(remainder)...)
		return blocks, remainder.Sum(), true
	}
	return nil, 0, false
}

func expandLetters(v letters.Vector) []types.Block {
	blocks := make([]types.Block, 0, v.Sum())
	for _, l := range v.Letters() {
		blocks = append(blocks, types.Block{Kind: types.BlockLetter, Text: l})
	}
	return blocks
}

// isAnyPlayerWord reports whether v exactly equals the letter-count
// vector of some word currently in the cache's unique-word list.
func (c *subsetCache) isAnyPlayerWord(v letters.Vector) bool {
	for _, wv := range c.vectors {
		if wv.Equal(v) {
			return true
		}
	}
	return false
}

// rank scores, filters by frequency floor, and sorts recommendations:
// by descending score when a frequency table is loaded, by length first
// under "longestFirst", and not at all (enumeration order) otherwise.
func (e *Engine) rank(recs []types.Recommendation) []types.Recommendation {
	if len(recs) == 0 {
		return recs
	}

	maxLen := 0
	for _, r := range recs {
		if len(r.Word) > maxLen {
			maxLen = len(r.Word)
		}
	}
	if maxLen == 0 {
		maxLen = 1
	}

	type scored struct {
		rec   types.Recommendation
		score float64
		zipf  float64
	}
	out := make([]scored, 0, len(recs))
	for _, r := range recs {
		zipf := e.dict.Zipf(r.Word)
		if e.dict.HasFrequencyData() && zipf < e.scoring.FreqFloor {
			continue
		}
		normFreq := zipf / 8.0
		normLen := float64(len(r.Word)) / float64(maxLen)
		score := e.scoring.WeightFreq*normFreq + e.scoring.WeightLength*normLen
		out = append(out, scored{rec: r, score: score, zipf: zipf})
	}

	// Without a frequency table, scoring degrades to no-sort (enumeration
	// order), unless the strategy explicitly orders by length.
	if e.dict.HasFrequencyData() || e.scoring.Strategy == "longestFirst" {
		sort.SliceStable(out, func(i, j int) bool {
			if e.scoring.Strategy == "longestFirst" {
				li, lj := len(out[i].rec.Word), len(out[j].rec.Word)
				if li != lj {
					return li > lj
				}
			}
			if out[i].score != out[j].score {
				return out[i].score > out[j].score
			}
			return out[i].rec.Word < out[j].rec.Word
		})
	}

	final := make([]types.Recommendation, len(out))
	for i, s := range out {
		final[i] = s.rec
	}
	return final
}
