package main

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// wsHub fans one stream of messages out to every connected WebSocket
// client. One hub carries JSON frames, a second carries binary PCM for the
// tone.
type wsHub struct {
	upgrader  websocket.Upgrader
	msgType   int
	clients   map[*websocket.Conn]bool
	clientsMu sync.RWMutex
	register  chan *websocket.Conn
	remove    chan *websocket.Conn
	broadcast chan []byte
}

func newHub(msgType int) *wsHub {
	hub := &wsHub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		msgType:   msgType,
		clients:   make(map[*websocket.Conn]bool),
		register:  make(chan *websocket.Conn),
		remove:    make(chan *websocket.Conn),
		broadcast: make(chan []byte, 16),
	}
	go hub.run()
	return hub
}

func (h *wsHub) run() {
	for {
		select {
		case conn := <-h.register:
			h.clientsMu.Lock()
			h.clients[conn] = true
			h.clientsMu.Unlock()
		case conn := <-h.remove:
			h.clientsMu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.clientsMu.Unlock()
		case msg := <-h.broadcast:
			h.clientsMu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(h.msgType, msg); err != nil {
					GetLogger().Warnf("failed to send to WebSocket client: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.clientsMu.Unlock()
		}
	}
}

// clientCount reports how many clients are connected; the audio pump
// skips synthesis entirely when nobody is listening.
func (h *wsHub) clientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// send queues a message for broadcast, dropping it when the hub is
// backed up. Frames and PCM batches are both disposable.
func (h *wsHub) send(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

func (h *wsHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		GetLogger().Errorf("WebSocket upgrade failed: %v", err)
		return
	}
	h.register <- conn

	// Drain (and ignore) client messages until the connection dies;
	// control input arrives over the REST endpoint instead.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove <- conn
				return
			}
		}
	}()
}
