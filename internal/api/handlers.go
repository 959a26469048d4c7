// Package api is the serving shell: HTTP ingress for snapshots and image
// blobs, the websocket push channel, and the static definitions lookup.
// Every snapshot POST is handed to the single-threaded worker queue so the
// fusion/journal/construction pipeline never needs locking.
package api

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"backend-go/internal/aggregator"
	"backend-go/internal/construction"
	"backend-go/internal/dictionary"
	"backend-go/internal/fusion"
	"backend-go/internal/hub"
	"backend-go/internal/journal"
	"backend-go/internal/types"
	"backend-go/internal/worker"
)

// Handler holds every process-wide singleton the serving shell wires
// together: it owns no business logic itself, only HTTP/JSON plumbing.
type Handler struct {
	dict            *dictionary.Index
	fusionT         *fusion.Tracker
	engine          *construction.Engine
	journalT        *journal.Tracker
	aggregate       *aggregator.Aggregator
	hub             *hub.Hub
	queue           *worker.Queue
	definitionsPath string
	eventLogPath    string

	defsOnce    sync.Once
	definitions map[string]string

	mu      sync.Mutex
	lastRaw types.Snapshot
}

// NewHandler wires the serving shell to the process singletons created at
// startup.
func NewHandler(
	dict *dictionary.Index,
	fusionT *fusion.Tracker,
	engine *construction.Engine,
	journalT *journal.Tracker,
	aggregate *aggregator.Aggregator,
	h *hub.Hub,
	queue *worker.Queue,
	definitionsPath string,
	eventLogPath string,
) *Handler {
	return &Handler{
		dict:            dict,
		fusionT:         fusionT,
		engine:          engine,
		journalT:        journalT,
		aggregate:       aggregate,
		hub:             h,
		queue:           queue,
		definitionsPath: definitionsPath,
		eventLogPath:    eventLogPath,
	}
}

// RegisterRoutes attaches every endpoint to r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/update-data", h.UpdateData)
	r.Post("/update-image", h.UpdateImage)
	r.Get("/definition/{word}", h.Definition)
	r.Get("/analytics", h.Analytics)
	r.Get("/analytics/player/{id}", h.PlayerAnalytics)
	r.Get("/analytics/move-log", h.MoveLog)
	r.Get("/receive-data", h.hub.ServeWS)
}

type updateResponse struct {
	OK        bool `json:"ok"`
	Broadcast int  `json:"broadcast"`
}

// UpdateData is the single ingress for board snapshots. It normalizes
// whichever of the three accepted shapes the client sent, then enqueues
// the full fusion -> journal -> construction pipeline on the worker so
// the process-wide trackers are only ever touched by one goroutine.
func (h *Handler) UpdateData(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	h.mu.Lock()
	prev := h.lastRaw
	h.mu.Unlock()

	raw := normalize(body, prev)

	result, err := h.queue.Submit(func() (interface{}, error) {
		return h.process(raw)
	})
	if err != nil {
		log.Printf("⚠️  api: snapshot processing failed: %v", err)
		http.Error(w, `{"ok":false,"error":"processing failed"}`, http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	h.lastRaw = raw
	h.mu.Unlock()

	broadcastCount := result.(int)
	writeJSON(w, http.StatusOK, updateResponse{OK: true, Broadcast: broadcastCount})
}

// process runs the full per-snapshot pipeline. It always runs to
// completion once started — a disconnected client only loses its
// response, never the chance for the board state to advance.
func (h *Handler) process(raw types.Snapshot) (int, error) {
	fused, corr := h.fusionT.Correct(raw)
	events := h.journalT.Diff(fused, corr, raw)

	now := time.Now()
	for _, e := range events {
		h.aggregate.RecordEvent(e, now)
	}

	solveResult := h.engine.Solve(fused)

	currentPlayers := h.journalT.CurrentPlayers()
	players := make([]playerEcho, len(currentPlayers))
	for i, words := range currentPlayers {
		if words == nil {
			words = []string{}
		}
		players[i] = playerEcho{Words: words}
	}

	data := dataMessage{
		Type:             "data",
		Players:          players,
		AvailableLetters: fused.AvailableLetters,
		RecommendedWords: marshalRecommendedWords(solveResult.Recommendations),
		LettersToSteal:   lettersToStealMap(solveResult.Recommendations),
	}
	if stats := h.aggregate.All(); len(stats) > 0 || len(events) > 0 {
		data.Analytics = &analyticsExtra{Changes: events, VocabularyStats: stats}
	}
	encodedData, _ := json.Marshal(data)
	sent := h.hub.BroadcastData(encodedData)

	if len(events) > 0 {
		encodedLog, _ := json.Marshal(moveLogMessage{Type: "move-log", Entries: events})
		h.hub.BroadcastMoveLog(encodedLog)
	}

	return sent, nil
}

type dataMessage struct {
	Type             string          `json:"type"`
	Players          []playerEcho    `json:"players"`
	AvailableLetters string          `json:"availableLetters"`
	RecommendedWords json.RawMessage `json:"recommended_words"`
	LettersToSteal   map[string]int  `json:"lettersToSteal"`
	Analytics        *analyticsExtra `json:"_analytics,omitempty"`
}

// analyticsExtra is the teacher-view summary piggybacked on the data
// topic: the journal events this snapshot produced plus every player's
// current vocabulary snapshot.
type analyticsExtra struct {
	Changes         []types.MoveEvent     `json:"changes"`
	VocabularyStats []aggregator.Snapshot `json:"vocabularyStats"`
}

type playerEcho struct {
	Words []string `json:"words"`
}

type moveLogMessage struct {
	Type    string            `json:"type"`
	Entries []types.MoveEvent `json:"entries"`
}

type imageMessage struct {
	Type      string       `json:"type"`
	Timestamp int64        `json:"timestamp"`
	Data      imagePayload `json:"data"`
	Processed bool         `json:"processed"`
}

type imagePayload struct {
	Base64 string `json:"base64,omitempty"`
}

// UpdateImage relays an image update to observers. The backend only
// metadata-wraps the payload; it never interprets image content.
func (h *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	var b64 string

	if contentType == "application/octet-stream" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"ok":false,"error":"failed to read body"}`, http.StatusBadRequest)
			return
		}
		b64 = base64.StdEncoding.EncodeToString(body)
	} else {
		var meta struct {
			Base64 string `json:"base64"`
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &meta)
		b64 = meta.Base64
	}

	msg := imageMessage{
		Type:      "image",
		Timestamp: time.Now().UnixMilli(),
		Data:      imagePayload{Base64: b64},
		Processed: false,
	}
	encoded, _ := json.Marshal(msg)
	sent := h.hub.BroadcastImage(encoded)

	writeJSON(w, http.StatusOK, updateResponse{OK: true, Broadcast: sent})
}

// Definition looks up a single word's static definition. The definitions
// file is read on the first call and cached for the process lifetime. A
// missing or empty entry is not an error: {ok:true, definition:null}.
func (h *Handler) Definition(w http.ResponseWriter, r *http.Request) {
	h.defsOnce.Do(h.loadDefinitions)

	word := cleanWord(chi.URLParam(r, "word"))
	def, ok := h.definitions[word]
	ok = ok && def != ""
	resp := struct {
		OK         bool    `json:"ok"`
		Word       string  `json:"word"`
		Definition *string `json:"definition"`
	}{OK: true, Word: word}
	if ok {
		resp.Definition = &def
	}
	writeJSON(w, http.StatusOK, resp)
}

// loadDefinitions reads the static word -> definition map. A missing or
// malformed file is not fatal: /definition/* just returns null definitions.
func (h *Handler) loadDefinitions() {
	h.definitions = map[string]string{}
	data, err := os.ReadFile(h.definitionsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  definitions: reading %s: %v", h.definitionsPath, err)
		}
		return
	}
	var defs map[string]string
	if err := json.Unmarshal(data, &defs); err != nil {
		log.Printf("⚠️  definitions: %s is malformed, ignoring: %v", h.definitionsPath, err)
		return
	}
	h.definitions = defs
	log.Printf("📖 Definitions loaded: %d entries", len(defs))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  api: failed to write response: %v", err)
	}
}
