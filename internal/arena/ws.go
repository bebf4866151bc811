package arena

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event types sent to live-view clients.
const (
	EventMatchStarted = "match_started"
	EventFrame        = "frame"
	EventMatchEnded   = "match_ended"
)

// Event is the envelope for all WebSocket messages.
type Event struct {
	Type    string `json:"type"`
	MatchID string `json:"match_id"`
	Data    any    `json:"data"`
}

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = 54 * time.Second // Must be less than pongWait
	sendBufSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // read-only local viewer
	},
}

// wsConn wraps a WebSocket connection with its send buffer.
type wsConn struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans match events out to every connected viewer.
type Hub struct {
	mu          sync.RWMutex
	connections map[*wsConn]bool
}

// NewHub creates a Hub.
func NewHub() *Hub {
	return &Hub{connections: make(map[*wsConn]bool)}
}

// ConnectionCount returns the number of connected viewers.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast sends an event to every connected viewer. Viewers that cannot
// keep up have messages dropped rather than stalling the match.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal WebSocket event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		select {
		case c.send <- data:
		default:
			log.Warn().Str("type", event.Type).Msg("Dropping WebSocket message, buffer full")
		}
	}
}

func (h *Hub) register(c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = true
}

func (h *Hub) unregister(c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connections[c] {
		delete(h.connections, c)
		close(c.send)
	}
}

// ServeWS upgrades the request to a WebSocket and streams match events
// until the client disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := &wsConn{conn: conn, send: make(chan []byte, sendBufSize)}
	h.register(client)

	go h.writePump(client)
	go h.readPump(client)

	log.Info().Int("total", h.ConnectionCount()).Msg("Viewer connected")
}

// readPump discards inbound messages; the viewer protocol is one-way, the
// read loop only detects disconnects and answers pings.
func (h *Hub) readPump(c *wsConn) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
		log.Info().Int("total", h.ConnectionCount()).Msg("Viewer disconnected")
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("WebSocket unexpected close")
			}
			return
		}
	}
}

// writePump writes queued events to the connection and keeps it alive
// with pings.
func (h *Hub) writePump(c *wsConn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
