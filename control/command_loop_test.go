package control

import (
	"context"
	"testing"
)

type queueSource struct {
	pending []string
}

func (q *queueSource) NextCommand() (string, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	cmd := q.pending[0]
	q.pending = q.pending[1:]
	return cmd, true
}

func (q *queueSource) WaitCommand(ctx context.Context) (string, bool) {
	return q.NextCommand()
}

func TestDrainPendingDispatchesAllCommands(t *testing.T) {
	src := &queueSource{pending: []string{"a", "b", "c"}}
	var seen []string
	loop := NewCommandLoop[string](src, CommandHandlerFunc[string](func(cmd string) bool {
		seen = append(seen, cmd)
		return true
	}))

	if !loop.DrainPending() {
		t.Fatal("expected drain to report continue")
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 commands, got %v", seen)
	}
}

func TestDrainPendingStopsOnHandlerTermination(t *testing.T) {
	src := &queueSource{pending: []string{"quit", "ignored"}}
	var seen []string
	loop := NewCommandLoop[string](src, CommandHandlerFunc[string](func(cmd string) bool {
		seen = append(seen, cmd)
		return cmd != "quit"
	}))

	if loop.DrainPending() {
		t.Fatal("expected drain to report termination")
	}
	if len(seen) != 1 {
		t.Fatalf("expected processing to stop after quit, got %v", seen)
	}
	if len(src.pending) != 1 {
		t.Fatalf("remaining command should stay queued, got %v", src.pending)
	}
}

func TestNilLoopAndSourceAreSafe(t *testing.T) {
	var loop *CommandLoop[int]
	if !loop.DrainPending() {
		t.Fatal("nil loop should report continue")
	}
	empty := NewCommandLoop[int](nil, CommandHandlerFunc[int](func(int) bool { return false }))
	if !empty.DrainPending() {
		t.Fatal("nil source should report continue")
	}
}

func TestFrameBridgePublishRespectsHeadless(t *testing.T) {
	published := 0
	bridge := NewFrameBridge(true, func(int) { published++ })
	bridge.Publish(1)
	if published != 0 {
		t.Fatal("headless bridge must not publish")
	}
	bridge.SetHeadless(false)
	bridge.Publish(2)
	if published != 1 {
		t.Fatalf("expected one publish, got %d", published)
	}
}

func TestRunnerGluesLoopAndBridge(t *testing.T) {
	src := &queueSource{pending: []string{"x"}}
	handled := 0
	loop := NewCommandLoop[string](src, CommandHandlerFunc[string](func(string) bool {
		handled++
		return true
	}))
	published := 0
	bridge := NewFrameBridge(false, func(string) { published++ })
	runner := NewRunner(loop, bridge)

	if !runner.DrainPendingCommands() {
		t.Fatal("expected drain to continue")
	}
	if handled != 1 {
		t.Fatalf("expected 1 handled command, got %d", handled)
	}
	if !runner.VisualEnabled() {
		t.Fatal("expected visual enabled")
	}
	runner.PublishFrame("frame")
	if published != 1 {
		t.Fatalf("expected 1 published frame, got %d", published)
	}
}
