// Package hub fans snapshot results, journal events, and image updates
// out to every connected observer over a websocket push channel. Message
// shapes for the three topics (data, move-log, image) are assembled by
// the api package, which owns the ordering rules the wire format needs;
// Hub only moves already-encoded bytes to observers.
package hub

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// observer is one connected websocket client and its dedicated send queue.
// A buffered channel plus a single writer goroutine per connection keeps
// one slow observer from blocking the broadcaster or other observers.
type observer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub is the process-wide broadcast singleton. Submission order into
// Broadcast* is preserved per observer because each observer has its own
// ordered send queue fed only by the single solver/image-handling paths.
type Hub struct {
	mu        sync.Mutex
	observers map[*observer]bool
}

// New creates an empty Hub.
func New() *Hub {
	return &Hub{observers: make(map[*observer]bool)}
}

// ServeWS upgrades an HTTP request to a websocket connection and registers
// it as an observer until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("⚠️  hub: upgrade failed: %v", err)
		return
	}

	obs := &observer{conn: conn, send: make(chan []byte, 64)}
	h.mu.Lock()
	h.observers[obs] = true
	h.mu.Unlock()

	go h.writePump(obs)
	go h.readPump(obs)
}

// readPump drains (and discards) client frames purely to detect
// disconnects; this channel is push-only from the server's perspective.
func (h *Hub) readPump(obs *observer) {
	defer h.drop(obs)
	for {
		if _, _, err := obs.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(obs *observer) {
	defer obs.conn.Close()
	for msg := range obs.send {
		obs.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := obs.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.drop(obs)
			return
		}
	}
}

func (h *Hub) drop(obs *observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.observers[obs] {
		delete(h.observers, obs)
		close(obs.send)
	}
}

// broadcast enqueues msg on every observer's send channel, silently
// dropping it for an observer whose queue is full or already gone rather
// than let one stalled client back up the whole fan-out.
func (h *Hub) broadcast(msg []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	sent := 0
	for obs := range h.observers {
		select {
		case obs.send <- msg:
			sent++
		default:
			// Slow consumer; drop this message for it rather than block.
		}
	}
	return sent
}

// Count returns the number of currently connected observers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// BroadcastData publishes the "data" topic. The caller is responsible for
// encoding recommended_words so it preserves score-descending insertion
// order, which a plain map cannot guarantee.
func (h *Hub) BroadcastData(encoded []byte) int {
	return h.broadcast(encoded)
}

// BroadcastMoveLog publishes the "move-log" topic, encoded by the caller
// for the same ordering reasons as BroadcastData.
func (h *Hub) BroadcastMoveLog(encoded []byte) int {
	return h.broadcast(encoded)
}

// BroadcastImage publishes the "image" topic.
func (h *Hub) BroadcastImage(encoded []byte) int {
	return h.broadcast(encoded)
}
