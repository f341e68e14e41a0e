package main

import (
	"context"

	"github.com/Readm/sortviz/audio"
	"github.com/Readm/sortviz/visual"
)

// WebVisualizer bridges the session with the web server.
type WebVisualizer struct {
	headless bool
	server   *WebServer
}

// NewWebVisualizer creates a web visualizer serving on addr. Call Start
// before handing it to a session.
func NewWebVisualizer(addr string, monitor *audio.Monitor) *WebVisualizer {
	return &WebVisualizer{
		server: NewWebServer(addr, monitor),
	}
}

// Start binds the HTTP listener; failure to bind is fatal for web mode.
func (w *WebVisualizer) Start() error {
	return w.server.Start()
}

// Stop shuts the underlying server down.
func (w *WebVisualizer) Stop() {
	if w.server != nil {
		w.server.Stop()
	}
}

// SetHeadless switches headless state.
func (w *WebVisualizer) SetHeadless(headless bool) {
	w.headless = headless
}

// IsHeadless returns whether the visualizer runs without UI.
func (w *WebVisualizer) IsHeadless() bool {
	return w.headless
}

// PublishFrame updates the server with the latest frame.
func (w *WebVisualizer) PublishFrame(frame *visual.Frame) {
	if w.server != nil {
		w.server.UpdateFrame(frame)
	}
}

// NextCommand returns the next control command if available, non-blocking.
func (w *WebVisualizer) NextCommand() (visual.ControlCommand, bool) {
	if w.server == nil {
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
	return w.server.NextCommand()
}

// WaitCommand blocks until a command arrives or the context is cancelled.
func (w *WebVisualizer) WaitCommand(ctx context.Context) (visual.ControlCommand, bool) {
	if w.server == nil {
		return visual.ControlCommand{Type: visual.CommandNone}, false
	}
	return w.server.WaitCommand(ctx)
}
