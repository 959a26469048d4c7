// Package aggregator maintains rolling per-player vocabulary statistics
// and a process-wide word-frequency histogram, persisted periodically and
// on shutdown as a single JSON file.
package aggregator

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"backend-go/internal/types"
)

// PlayerAggregate is one player's running vocabulary statistics.
type PlayerAggregate struct {
	PlayerID             string                       `json:"playerId"`
	TotalWords           int                          `json:"totalWords"`
	UniqueWords          map[string]bool              `json:"-"`
	UniqueWordsList      []string                     `json:"uniqueWords"`
	WordsByLength        map[int]int                  `json:"wordsByLength"`
	WordsByFrequency     map[types.FrequencyBand]int  `json:"wordsByFrequency"`
	FirstSeenAt          time.Time                    `json:"firstSeenAt"`
	LastSeenAt           time.Time                    `json:"lastSeenAt"`
	SessionsParticipated map[string]bool              `json:"-"`
	SessionsList         []string                     `json:"sessionsParticipated"`
	ZipfSum              float64                      `json:"zipfSum"`
}

func newPlayerAggregate(playerID string) *PlayerAggregate {
	return &PlayerAggregate{
		PlayerID:             playerID,
		UniqueWords:          make(map[string]bool),
		WordsByLength:        make(map[int]int),
		WordsByFrequency:     make(map[types.FrequencyBand]int),
		SessionsParticipated: make(map[string]bool),
	}
}

func (p *PlayerAggregate) recordWord(word string, zipf float64, sessionID string, at time.Time) {
	p.TotalWords++
	p.UniqueWords[word] = true
	p.WordsByLength[len(word)]++
	p.WordsByFrequency[types.ClassifyFrequency(zipf)]++
	p.ZipfSum += zipf
	p.SessionsParticipated[sessionID] = true
	if p.FirstSeenAt.IsZero() {
		p.FirstSeenAt = at
	}
	p.LastSeenAt = at
}

// Snapshot is the derived, read-only view of one player's aggregate,
// computing fields that are cheap on demand rather than tracked live.
type Snapshot struct {
	PlayerID         string                      `json:"playerId"`
	TotalWords       int                         `json:"totalWords"`
	UniqueCount      int                         `json:"uniqueCount"`
	Diversity        float64                     `json:"diversity"`
	AvgWordLength    float64                     `json:"avgWordLength"`
	AvgWordFrequency float64                     `json:"avgWordFrequency"`
	WordsByLength    map[int]int                 `json:"wordsByLength"`
	WordsByFrequency map[types.FrequencyBand]int `json:"wordsByFrequency"`
	FirstSeenAt      time.Time                   `json:"firstSeenAt"`
	LastSeenAt       time.Time                   `json:"lastSeenAt"`
	SessionDuration  float64                     `json:"sessionDuration"`
	Sessions         int                         `json:"sessionsParticipated"`
}

func (p *PlayerAggregate) snapshot() Snapshot {
	total := p.TotalWords
	lengthSum := 0
	for length, count := range p.WordsByLength {
		lengthSum += length * count
	}
	avgLen := 0.0
	avgFreq := 0.0
	if total > 0 {
		avgLen = float64(lengthSum) / float64(total)
		avgFreq = p.ZipfSum / float64(total)
	}
	duration := 0.0
	if !p.FirstSeenAt.IsZero() && !p.LastSeenAt.IsZero() {
		duration = p.LastSeenAt.Sub(p.FirstSeenAt).Seconds()
	}
	return Snapshot{
		PlayerID:         p.PlayerID,
		TotalWords:       total,
		UniqueCount:      len(p.UniqueWords),
		Diversity:        float64(len(p.UniqueWords)) / float64(max(1, total)),
		AvgWordLength:    avgLen,
		AvgWordFrequency: avgFreq,
		WordsByLength:    p.WordsByLength,
		WordsByFrequency: p.WordsByFrequency,
		FirstSeenAt:      p.FirstSeenAt,
		LastSeenAt:       p.LastSeenAt,
		SessionDuration:  duration,
		Sessions:         len(p.SessionsParticipated),
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Aggregator is the process-wide vocabulary statistics singleton.
type Aggregator struct {
	mu             sync.Mutex
	path           string
	players        map[string]*PlayerAggregate
	wordFrequency  map[string]int
	order          []string // playerId insertion order, for stable output
}

// New creates an empty Aggregator backed by the JSON file at path.
func New(path string) *Aggregator {
	return &Aggregator{
		path:          path,
		players:       make(map[string]*PlayerAggregate),
		wordFrequency: make(map[string]int),
	}
}

// Load reloads a previously persisted aggregate from disk, if present.
// Malformed content is ignored with a warning, matching the rest of the
// server's lenient startup posture.
func (a *Aggregator) Load() {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  aggregator: reading %s: %v", a.path, err)
		}
		return
	}
	var doc persistedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("⚠️  aggregator: %s is malformed, ignoring: %v", a.path, err)
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, pp := range doc.Players {
		pa := newPlayerAggregate(pp.PlayerID)
		pa.TotalWords = pp.TotalWords
		for _, w := range pp.UniqueWordsList {
			pa.UniqueWords[w] = true
		}
		for k, v := range pp.WordsByLength {
			pa.WordsByLength[k] = v
		}
		for k, v := range pp.WordsByFrequency {
			pa.WordsByFrequency[k] = v
		}
		for _, s := range pp.SessionsList {
			pa.SessionsParticipated[s] = true
		}
		pa.ZipfSum = pp.ZipfSum
		pa.FirstSeenAt = pp.FirstSeenAt
		pa.LastSeenAt = pp.LastSeenAt
		a.players[pp.PlayerID] = pa
		a.order = append(a.order, pp.PlayerID)
	}
	a.wordFrequency = doc.WordFrequency
	if a.wordFrequency == nil {
		a.wordFrequency = make(map[string]int)
	}
	log.Printf("📊 aggregator: reloaded %d player(s) from %s", len(a.players), a.path)
}

// RecordEvent folds one journal event into the aggregate. Only
// word_added events accumulate vocabulary; removals don't un-count a word
// a player is already credited for having played.
func (a *Aggregator) RecordEvent(e types.MoveEvent, at time.Time) {
	if e.EventType != types.WordAdded {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	pa, ok := a.players[e.PlayerID]
	if !ok {
		pa = newPlayerAggregate(e.PlayerID)
		a.players[e.PlayerID] = pa
		a.order = append(a.order, e.PlayerID)
	}
	pa.recordWord(e.Word, e.FrequencyScore, e.SessionID, at)
	a.wordFrequency[e.Word]++
}

// Player returns a point-in-time snapshot for one player, if tracked.
func (a *Aggregator) Player(playerID string) (Snapshot, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	pa, ok := a.players[playerID]
	if !ok {
		return Snapshot{}, false
	}
	return pa.snapshot(), true
}

// All returns every tracked player's snapshot, in first-seen order.
func (a *Aggregator) All() []Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	snapshots := make([]Snapshot, 0, len(a.order))
	for _, id := range a.order {
		snapshots = append(snapshots, a.players[id].snapshot())
	}
	return snapshots
}

// WordFrequency returns the rolling count of how often a word has been
// played across all players.
func (a *Aggregator) WordFrequency(word string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.wordFrequency[word]
}

type persistedPlayer struct {
	PlayerID         string                      `json:"playerId"`
	TotalWords       int                         `json:"totalWords"`
	UniqueWordsList  []string                    `json:"uniqueWords"`
	WordsByLength    map[int]int                 `json:"wordsByLength"`
	WordsByFrequency map[types.FrequencyBand]int `json:"wordsByFrequency"`
	SessionsList     []string                    `json:"sessionsParticipated"`
	ZipfSum          float64                     `json:"zipfSum"`
	FirstSeenAt      time.Time                   `json:"firstSeenAt"`
	LastSeenAt       time.Time                   `json:"lastSeenAt"`
}

type persistedDoc struct {
	Players       []persistedPlayer `json:"players"`
	WordFrequency map[string]int    `json:"wordFrequency"`
}

// Save atomically rewrites the aggregate file: sets are converted to
// sorted arrays so the file is both stable to diff and safe to reload.
func (a *Aggregator) Save() error {
	a.mu.Lock()
	doc := persistedDoc{WordFrequency: a.wordFrequency}
	for _, id := range a.order {
		pa := a.players[id]
		doc.Players = append(doc.Players, persistedPlayer{
			PlayerID:         pa.PlayerID,
			TotalWords:       pa.TotalWords,
			UniqueWordsList:  sortedKeys(pa.UniqueWords),
			WordsByLength:    pa.WordsByLength,
			WordsByFrequency: pa.WordsByFrequency,
			SessionsList:     sortedKeys(pa.SessionsParticipated),
			ZipfSum:          pa.ZipfSum,
			FirstSeenAt:      pa.FirstSeenAt,
			LastSeenAt:       pa.LastSeenAt,
		})
	}
	a.mu.Unlock()

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(a.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, a.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
