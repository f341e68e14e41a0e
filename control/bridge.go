package control

import "context"

// FrameBridge coordinates optional frame publishing.
type FrameBridge[Frame any] struct {
	headless bool
	publish  func(Frame)
}

// NewFrameBridge constructs a bridge with headless flag and publish
// callback.
func NewFrameBridge[Frame any](headless bool, publish func(Frame)) *FrameBridge[Frame] {
	return &FrameBridge[Frame]{
		headless: headless,
		publish:  publish,
	}
}

// IsHeadless reports whether frame output is disabled.
func (b *FrameBridge[Frame]) IsHeadless() bool {
	if b == nil {
		return true
	}
	return b.headless
}

// SetHeadless updates the headless flag.
func (b *FrameBridge[Frame]) SetHeadless(headless bool) {
	if b == nil {
		return
	}
	b.headless = headless
}

// Publish emits a frame when visualization is enabled.
func (b *FrameBridge[Frame]) Publish(frame Frame) {
	if b == nil || b.publish == nil || b.IsHeadless() {
		return
	}
	b.publish(frame)
}

// Runner glues command handling and frame publishing for the session's
// tick loop.
type Runner[TCommand any, Frame any] struct {
	commandLoop *CommandLoop[TCommand]
	bridge      *FrameBridge[Frame]
}

// NewRunner creates a new Runner instance.
func NewRunner[TCommand any, Frame any](loop *CommandLoop[TCommand], bridge *FrameBridge[Frame]) *Runner[TCommand, Frame] {
	return &Runner[TCommand, Frame]{
		commandLoop: loop,
		bridge:      bridge,
	}
}

// DrainPendingCommands pulls all queued commands through the underlying
// command loop.
func (r *Runner[TCommand, Frame]) DrainPendingCommands() bool {
	if r == nil || r.commandLoop == nil {
		return true
	}
	return r.commandLoop.DrainPending()
}

// WaitForCommand blocks on the command loop until a command arrives or the
// context is cancelled.
func (r *Runner[TCommand, Frame]) WaitForCommand(ctx context.Context) bool {
	if r == nil || r.commandLoop == nil {
		return true
	}
	return r.commandLoop.WaitAndHandle(ctx)
}

// PublishFrame emits a frame through the bridge if visualization is
// enabled.
func (r *Runner[TCommand, Frame]) PublishFrame(frame Frame) {
	if r == nil || r.bridge == nil {
		return
	}
	r.bridge.Publish(frame)
}

// VisualEnabled reports whether the frame bridge is active.
func (r *Runner[TCommand, Frame]) VisualEnabled() bool {
	if r == nil || r.bridge == nil {
		return false
	}
	return !r.bridge.IsHeadless()
}
