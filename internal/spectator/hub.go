// Package spectator streams the per-frame match snapshot to websocket
// clients. The feed is read-only: clients receive JSON frames and send
// nothing back, so it stays a viewer, not a second player.
package spectator

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"pong/internal/game"
)

// sendQueueSize bounds the per-client backlog; a stalled viewer drops
// frames instead of stalling the game loop.
const sendQueueSize = 8

type client struct {
	conn      *websocket.Conn
	sendQueue chan []byte
}

// Hub owns the set of connected viewers. Publish is called from the game
// loop once per frame; connection handling runs on the HTTP server's
// goroutines, guarded by the mutex.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the viewer until its
// connection dies.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectator: upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, sendQueue: make(chan []byte, sendQueueSize)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("spectator: viewer connected (%d total)", n)

	go h.writeLoop(c)
	h.readLoop(c)
}

// Publish marshals the snapshot once and queues it to every viewer.
// Viewers whose queue is full miss this frame.
func (h *Hub) Publish(snap game.Snapshot) {
	frame, err := json.Marshal(snap)
	if err != nil {
		log.Printf("spectator: marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.sendQueue <- frame:
		default:
		}
	}
}

// ViewerCount reports how many viewers are connected.
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) writeLoop(c *client) {
	for frame := range c.sendQueue {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.drop(c)
			return
		}
	}
}

// readLoop drains incoming messages. The feed ignores client input; the
// read only exists to notice a closed connection.
func (h *Hub) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.drop(c)
			return
		}
	}
}

// drop unregisters and closes a viewer. Safe to call from both loops; the
// second call finds the client already gone.
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.sendQueue)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		c.conn.Close()
		log.Printf("spectator: viewer disconnected (%d left)", n)
	}
}
