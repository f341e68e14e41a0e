// Package visual defines the frame snapshot handed to renderers, the
// control commands they can send back, and the Visualizer contract the
// session publishes through.
package visual

import (
	"context"
	"fmt"
)

// ControlCommandType represents types of control instructions from UI.
type ControlCommandType string

const (
	CommandNone      ControlCommandType = "none"
	CommandSelect    ControlCommandType = "select"
	CommandReshuffle ControlCommandType = "reshuffle"
	CommandSpeedUp   ControlCommandType = "speed_up"
	CommandSlowDown  ControlCommandType = "slow_down"
	CommandQuit      ControlCommandType = "quit"
)

// ControlCommand captures a control instruction for the session.
// Algorithm is only meaningful for CommandSelect (1-based, matching the
// digit keys).
type ControlCommand struct {
	Type      ControlCommandType `json:"type"`
	Algorithm int                `json:"algorithm,omitempty"`
}

// Color is an opaque RGB bar color. It marshals as a "#rrggbb" string so
// web clients can use it directly.
type Color struct {
	R, G, B uint8
}

// Hex returns the CSS hex form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalJSON encodes the color as its hex string.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Hex() + `"`), nil
}

// BarSnapshot is one renderable bar: its value (the bar height scales
// with it) and its resolved display color.
type BarSnapshot struct {
	Value int   `json:"value"`
	Color Color `json:"color"`
}

// Frame is one complete frame description: everything a renderer needs to
// draw a tick without reaching back into the session.
type Frame struct {
	Tick      uint64        `json:"tick"`
	Bars      []BarSnapshot `json:"bars"`
	Progress  float64       `json:"progress"`
	Lines     []string      `json:"lines"`
	ToneHz    float64       `json:"toneHz"`
	Shuffling bool          `json:"shuffling"`
	Sorted    bool          `json:"sorted"`
}

// Visualizer defines methods for visualization implementations.
type Visualizer interface {
	SetHeadless(headless bool)
	IsHeadless() bool
	PublishFrame(frame *Frame)
	NextCommand() (ControlCommand, bool)
	WaitCommand(ctx context.Context) (ControlCommand, bool)
}

// NullVisualizer is a no-op implementation used for headless mode.
type NullVisualizer struct {
	headless bool
}

// NewNullVisualizer creates a new NullVisualizer.
func NewNullVisualizer() *NullVisualizer {
	return &NullVisualizer{headless: true}
}

func (n *NullVisualizer) SetHeadless(headless bool) {
	n.headless = headless
}

func (n *NullVisualizer) IsHeadless() bool {
	return n.headless
}

func (n *NullVisualizer) PublishFrame(frame *Frame) {}

func (n *NullVisualizer) NextCommand() (ControlCommand, bool) {
	return ControlCommand{Type: CommandNone}, false
}

func (n *NullVisualizer) WaitCommand(ctx context.Context) (ControlCommand, bool) {
	select {
	case <-ctx.Done():
		return ControlCommand{Type: CommandNone}, false
	default:
		return ControlCommand{Type: CommandNone}, false
	}
}
