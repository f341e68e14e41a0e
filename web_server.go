package main

import (
	"context"
	"embed"
	"encoding/binary"
	"encoding/json"
	"io/fs"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Readm/sortviz/audio"
	"github.com/Readm/sortviz/visual"
)

//go:embed web/static
var staticFS embed.FS

// audioPumpInterval and audioChunkSamples size the PCM batches streamed to
// browser clients: 50ms of mono float32 at the oscillator sample rate.
const (
	audioPumpInterval = 50 * time.Millisecond
	audioChunkSamples = audio.SampleRate / 20
)

// WebServer provides the HTTP endpoints of web mode: the embedded static
// frontend, a JSON frame snapshot, a control endpoint for keyboard input
// relayed by the page, a frame WebSocket and a PCM audio WebSocket.
type WebServer struct {
	mu          sync.RWMutex
	latestFrame *visual.Frame

	commands chan visual.ControlCommand

	frameHub   *wsHub
	audioHub   *wsHub
	oscillator *audio.Oscillator

	server   *http.Server
	listener net.Listener
	stop     chan struct{}
}

// NewWebServer creates a web server bound to addr; monitor feeds the tone
// oscillator streamed to clients.
func NewWebServer(addr string, monitor *audio.Monitor) *WebServer {
	ws := &WebServer{
		commands:   make(chan visual.ControlCommand, 16),
		frameHub:   newHub(websocket.TextMessage),
		audioHub:   newHub(websocket.BinaryMessage),
		oscillator: audio.NewOscillator(monitor),
		stop:       make(chan struct{}),
	}

	mux := http.NewServeMux()
	ws.registerHandlers(mux)
	ws.server = &http.Server{Addr: addr, Handler: mux}
	return ws
}

func (ws *WebServer) registerHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/api/frame", ws.handleFrame)
	mux.HandleFunc("/api/control", ws.handleControl)
	mux.HandleFunc("/ws", ws.frameHub.handle)
	mux.HandleFunc("/ws/audio", ws.audioHub.handle)

	static, err := fs.Sub(staticFS, "web/static")
	if err != nil {
		GetLogger().Errorf("embedded static assets missing: %v", err)
		return
	}
	mux.Handle("/", http.FileServer(http.FS(static)))
}

// Start binds the listener and begins serving. A bind failure is returned
// to the caller, which treats it as fatal.
func (ws *WebServer) Start() error {
	ln, err := net.Listen("tcp", ws.server.Addr)
	if err != nil {
		return err
	}
	ws.listener = ln
	go func() {
		if err := ws.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			GetLogger().Errorf("web server stopped: %v", err)
		}
	}()
	go ws.audioPump()
	return nil
}

// Stop shuts the server down and stops the audio pump.
func (ws *WebServer) Stop() {
	close(ws.stop)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ws.server.Shutdown(ctx)
}

// audioPump renders oscillator PCM in small batches and broadcasts them to
// audio clients. When nobody listens it only sleeps, keeping the phase
// state untouched so a joining client hears a clean tone.
func (ws *WebServer) audioPump() {
	ticker := time.NewTicker(audioPumpInterval)
	defer ticker.Stop()

	samples := make([]float32, audioChunkSamples)
	packet := make([]byte, 4*audioChunkSamples)

	for {
		select {
		case <-ws.stop:
			return
		case <-ticker.C:
			if ws.audioHub.clientCount() == 0 {
				continue
			}
			ws.oscillator.Fill(samples)
			for i, s := range samples {
				binary.LittleEndian.PutUint32(packet[4*i:], math.Float32bits(s))
			}
			msg := make([]byte, len(packet))
			copy(msg, packet)
			ws.audioHub.send(msg)
		}
	}
}

// UpdateFrame stores the latest frame and broadcasts it to WebSocket
// clients.
func (ws *WebServer) UpdateFrame(frame *visual.Frame) {
	ws.mu.Lock()
	ws.latestFrame = frame
	ws.mu.Unlock()

	if ws.frameHub.clientCount() == 0 {
		return
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		GetLogger().Warnf("failed to encode frame: %v", err)
		return
	}
	ws.frameHub.send(payload)
}

// NextCommand returns the next control command if available, non-blocking.
func (ws *WebServer) NextCommand() (visual.ControlCommand, bool) {
	select {
	case cmd := <-ws.commands:
		return cmd, true
	default:
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
}

// WaitCommand blocks until a command arrives or the context is cancelled.
func (ws *WebServer) WaitCommand(ctx context.Context) (visual.ControlCommand, bool) {
	select {
	case cmd := <-ws.commands:
		return cmd, true
	case <-ctx.Done():
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
}

func (ws *WebServer) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ws.mu.RLock()
	frame := ws.latestFrame
	ws.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if frame == nil {
		w.Write([]byte("{}"))
		return
	}
	json.NewEncoder(w).Encode(frame)
}

func (ws *WebServer) handleControl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var cmd visual.ControlCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid command payload", http.StatusBadRequest)
		return
	}
	switch cmd.Type {
	case visual.CommandSelect, visual.CommandReshuffle,
		visual.CommandSpeedUp, visual.CommandSlowDown, visual.CommandQuit:
	default:
		http.Error(w, "Unknown command type", http.StatusBadRequest)
		return
	}
	select {
	case ws.commands <- cmd:
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Command queue full", http.StatusServiceUnavailable)
	}
}
