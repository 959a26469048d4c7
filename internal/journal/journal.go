// Package journal diffs successive fused snapshots into per-player
// word_added/word_removed events, re-attributes fusion's flattened output
// back to player indices, and appends the resulting events to a
// line-delimited, crash-tolerant log file.
package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"backend-go/internal/dictionary"
	"backend-go/internal/fusion"
	"backend-go/internal/letters"
	"backend-go/internal/types"
)

// Tracker diffs fused snapshots against the previous per-player state and
// owns the append-only event log. It is touched by the single solver
// goroutine on every snapshot and by a background ticker on flush; the
// buffer mutex guards that overlap.
type Tracker struct {
	dict      *dictionary.Index
	sessionID string

	mu        sync.Mutex
	log       *Log
	batchSize int
	buffer    []types.MoveEvent

	prevSets [][]string      // per player index, ordered word list from the last diff
	owner    map[string]int  // last known player index for a word, for re-attribution fallback
	lastTS   int64
}

// NewTracker creates a Tracker that appends to the log at path, batching
// batchSize events per flush.
func NewTracker(dict *dictionary.Index, sessionID, path string, batchSize int) (*Tracker, error) {
	log, err := OpenLog(path)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		dict:      dict,
		sessionID: sessionID,
		log:       log,
		batchSize: batchSize,
		owner:     make(map[string]int),
	}, nil
}

// Diff re-attributes fusion's flat corrected word list to player indices
// (using corr's ancestor hints and the raw per-player snapshot), diffs
// against the previous per-player sets, and returns the newly emitted
// events in (playerIndex ascending, added-before-removed) order. Events
// are also buffered for the log; the buffer is written out here once it
// reaches the batch size, otherwise on the next Flush.
func (t *Tracker) Diff(fused types.FusedState, corr fusion.Correction, raw types.Snapshot) []types.MoveEvent {
	numPlayers := len(raw.PlayersWords)
	if numPlayers == 0 {
		numPlayers = 1
	}

	var flat []string
	if len(fused.PlayersWords) > 0 {
		flat = fused.PlayersWords[0]
	}

	curr := make([][]string, numPlayers)
	for _, w := range flat {
		idx := t.resolveOwner(w, corr, raw.PlayersWords)
		if idx >= numPlayers {
			idx = numPlayers - 1
		}
		curr[idx] = append(curr[idx], w)
		t.owner[w] = idx
	}

	var events []types.MoveEvent
	for i := 0; i < numPlayers; i++ {
		added, removed := diffSets(prevOf(t.prevSets, i), curr[i])
		for _, w := range added {
			events = append(events, t.makeEvent(types.WordAdded, i, w))
		}
		for _, w := range removed {
			events = append(events, t.makeEvent(types.WordRemoved, i, w))
		}
	}
	t.prevSets = curr

	if len(events) > 0 {
		t.appendAndMaybeFlush(events)
	}
	return events
}

// resolveOwner finds the player index that should own a corrected word:
// first its ancestor's (or its own) raw occurrence, ascending playerIndex
// on ties, falling back to the word's last known owner, then player 0.
func (t *Tracker) resolveOwner(word string, corr fusion.Correction, raw [][]string) int {
	ancestor := word
	if a, ok := corr.Ancestor[word]; ok {
		ancestor = a
	}
	for i, words := range raw {
		for _, w := range words {
			if w == ancestor {
				return i
			}
		}
	}
	if idx, ok := t.owner[ancestor]; ok {
		return idx
	}
	if idx, ok := t.owner[word]; ok {
		return idx
	}
	return 0
}

// CurrentPlayers returns the most recent per-player re-attribution of the
// fused word list — the same shape the original raw snapshot had, but
// with fusion's corrections applied and split words assigned back to the
// player the corrected split's ancestor belonged to.
func (t *Tracker) CurrentPlayers() [][]string {
	return t.prevSets
}

func prevOf(prevSets [][]string, i int) []string {
	if i < len(prevSets) {
		return prevSets[i]
	}
	return nil
}

// diffSets returns words in curr not in prev (added) and words in prev not
// in curr (removed), both in a stable, sorted order.
func diffSets(prev, curr []string) (added, removed []string) {
	prevSet := make(map[string]bool, len(prev))
	for _, w := range prev {
		prevSet[w] = true
	}
	currSet := make(map[string]bool, len(curr))
	for _, w := range curr {
		currSet[w] = true
	}
	for _, w := range curr {
		if !prevSet[w] {
			added = append(added, w)
		}
	}
	for _, w := range prev {
		if !currSet[w] {
			removed = append(removed, w)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}

func (t *Tracker) makeEvent(eventType types.EventType, playerIndex int, word string) types.MoveEvent {
	return types.MoveEvent{
		ID:             uuid.NewString(),
		SessionID:      t.sessionID,
		MonotonicTS:    t.nextTimestamp(),
		EventType:      eventType,
		PlayerID:       playerIDFor(playerIndex),
		PlayerIndex:    playerIndex,
		Word:           word,
		WordLength:     len(word),
		FrequencyScore: t.dict.Zipf(word),
		LettersUsed:    letters.FromString(word).Letters(),
	}
}

func playerIDFor(i int) string {
	return "player_" + itoa(i)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// nextTimestamp returns a wall-clock nanosecond timestamp guaranteed to be
// strictly greater than the one before it, so events from the same tight
// loop still sort deterministically.
func (t *Tracker) nextTimestamp() int64 {
	now := time.Now().UnixNano()
	if now <= t.lastTS {
		now = t.lastTS + 1
	}
	t.lastTS = now
	return now
}

func (t *Tracker) appendAndMaybeFlush(events []types.MoveEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer = append(t.buffer, events...)
	if len(t.buffer) >= t.batchSize {
		t.flushLocked()
	}
}

// Flush writes any buffered events to the log now, regardless of batch
// size — called from the periodic aggregate-save tick and on shutdown.
func (t *Tracker) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flushLocked()
}

func (t *Tracker) flushLocked() error {
	if len(t.buffer) == 0 {
		return nil
	}
	err := t.log.Append(t.buffer)
	// Per the error-handling policy, a write failure still clears the
	// buffer: in-memory state stays authoritative and the buffer must not
	// grow without bound.
	t.buffer = t.buffer[:0]
	return err
}

// Close flushes and closes the underlying log file.
func (t *Tracker) Close() error {
	t.Flush()
	return t.log.Close()
}

// Log is the append-only, line-delimited event log file.
type Log struct {
	file *os.File
}

// OpenLog opens (creating if necessary) the log file for append.
func OpenLog(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Log{file: f}, nil
}

// Append marshals each event as one JSON line and appends them.
func (l *Log) Append(events []types.MoveEvent) error {
	var buf []byte
	for _, e := range events {
		line, err := json.Marshal(e)
		if err != nil {
			continue
		}
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	_, err := l.file.Write(buf)
	return err
}

func (l *Log) Close() error {
	return l.file.Close()
}

// ReadEvents reads events line by line from the log at path and stops at
// the first line that does not parse, so a truncated or partial final
// line left by a crash mid-write is discarded; any lines after an
// unparsable line are not read either.
func ReadEvents(path string) ([]types.MoveEvent, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []types.MoveEvent
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e types.MoveEvent
		if err := json.Unmarshal(line, &e); err != nil {
			// A partial last line from a crash mid-write; discard and stop.
			break
		}
		events = append(events, e)
	}
	return events, nil
}
