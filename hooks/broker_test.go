package hooks

import (
	"errors"
	"testing"
)

func TestAfterStepHooksRunInOrder(t *testing.T) {
	b := NewBroker()
	order := make([]string, 0, 2)

	b.RegisterAfterStep(func(ctx *StepContext) error {
		order = append(order, "first")
		return nil
	})
	b.RegisterAfterStep(func(ctx *StepContext) error {
		order = append(order, "second")
		return nil
	})

	if err := b.EmitAfterStep(&StepContext{Algorithm: "Bubble Sort", Index: 3}); err != nil {
		t.Fatalf("EmitAfterStep returned error: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected hook order: %v", order)
	}
}

func TestHookErrorStopsProcessing(t *testing.T) {
	b := NewBroker()
	calls := 0

	b.RegisterAfterStep(func(ctx *StepContext) error {
		calls++
		return errors.New("hook fail")
	})
	b.RegisterAfterStep(func(ctx *StepContext) error {
		calls++
		return nil
	})

	if err := b.EmitAfterStep(&StepContext{}); err == nil {
		t.Fatal("expected error from after-step hook")
	}
	if calls != 1 {
		t.Fatalf("expected only first hook to run, calls=%d", calls)
	}
}

func TestRunBoundaryHooks(t *testing.T) {
	b := NewBroker()
	var resets, sorted []string

	b.RegisterBundle(HookBundle{
		RunReset: []RunResetHook{func(ctx *RunContext) error {
			resets = append(resets, ctx.Reason)
			return nil
		}},
		Sorted: []SortedHook{func(ctx *RunContext) error {
			sorted = append(sorted, ctx.Algorithm)
			return nil
		}},
	})

	b.EmitRunReset(&RunContext{Algorithm: "Quick Sort", Reason: "select"})
	b.EmitSorted(&RunContext{Algorithm: "Quick Sort", Reason: "sorted"})

	if len(resets) != 1 || resets[0] != "select" {
		t.Fatalf("run reset hooks saw %v", resets)
	}
	if len(sorted) != 1 || sorted[0] != "Quick Sort" {
		t.Fatalf("sorted hooks saw %v", sorted)
	}
}

func TestPluginCatalog(t *testing.T) {
	b := NewBroker()
	b.RegisterPluginMetadata(PluginDescriptor{
		Name:        "audio-monitor",
		Category:    PluginCategoryAudio,
		Description: "tone feed",
	})
	// Duplicate names are ignored.
	b.RegisterPluginMetadata(PluginDescriptor{
		Name:     "audio-monitor",
		Category: PluginCategoryAudio,
	})

	audio := b.Plugins(PluginCategoryAudio)
	if len(audio) != 1 || audio[0].Name != "audio-monitor" {
		t.Fatalf("unexpected audio plugins: %v", audio)
	}
	if got := b.Plugins(PluginCategoryInstrumentation); len(got) != 0 {
		t.Fatalf("expected no instrumentation plugins, got %v", got)
	}
}

func TestNilBrokerAndContextAreSafe(t *testing.T) {
	var b *Broker
	b.RegisterAfterStep(func(ctx *StepContext) error { return nil })
	if err := b.EmitAfterStep(&StepContext{}); err != nil {
		t.Fatalf("nil broker emit returned error: %v", err)
	}
	real := NewBroker()
	if err := real.EmitAfterStep(nil); err != nil {
		t.Fatalf("nil context emit returned error: %v", err)
	}
}
