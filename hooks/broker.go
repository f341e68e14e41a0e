// Package hooks provides the instrumentation extension point of the
// visualizer: plugins register handlers for step events, run resets and
// sort completion, and the session triggers them from its tick loop.
package hooks

import "sync"

// PluginCategory represents the high-level role of a plugin.
type PluginCategory string

const (
	// PluginCategoryAudio covers tone and sonification plugins.
	PluginCategoryAudio PluginCategory = "audio"
	// PluginCategoryInstrumentation covers logging, tracing and
	// diagnostics.
	PluginCategoryInstrumentation PluginCategory = "instrumentation"
	// PluginCategoryVisualization covers UI or monitoring plugins.
	PluginCategoryVisualization PluginCategory = "visualization"
)

// PluginDescriptor describes a plugin registered with the broker.
type PluginDescriptor struct {
	Name        string
	Category    PluginCategory
	Description string
}

// StepContext carries the facts of one completed sort or shuffle step.
type StepContext struct {
	Algorithm string
	Index     int
	Value     int
	Compared  bool
	Swapped   bool
	Done      bool
	Shuffle   bool
}

// RunContext carries information about a run boundary.
type RunContext struct {
	Algorithm string
	// Reason is "select", "reshuffle" or "startup".
	Reason string
}

// AfterStepHook executes after every elementary step.
type AfterStepHook func(ctx *StepContext) error

// RunResetHook executes when a new run begins (statistics already zeroed).
type RunResetHook func(ctx *RunContext) error

// SortedHook executes once when a run reaches the sorted terminal state.
type SortedHook func(ctx *RunContext) error

// HookBundle groups multiple hook handlers that belong to one plugin.
type HookBundle struct {
	AfterStep []AfterStepHook
	RunReset  []RunResetHook
	Sorted    []SortedHook
}

// Broker coordinates hook registration and triggering.
type Broker struct {
	mu sync.RWMutex

	afterStepHooks []AfterStepHook
	runResetHooks  []RunResetHook
	sortedHooks    []SortedHook

	pluginCatalog map[PluginCategory][]PluginDescriptor
	pluginIndex   map[string]PluginDescriptor
}

// NewBroker creates an empty broker instance.
func NewBroker() *Broker {
	return &Broker{
		pluginCatalog: make(map[PluginCategory][]PluginDescriptor),
		pluginIndex:   make(map[string]PluginDescriptor),
	}
}

// RegisterAfterStep adds a hook executed after each elementary step.
func (b *Broker) RegisterAfterStep(h AfterStepHook) {
	if b == nil || h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.afterStepHooks = append(b.afterStepHooks, h)
}

// RegisterRunReset adds a hook executed at run boundaries.
func (b *Broker) RegisterRunReset(h RunResetHook) {
	if b == nil || h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.runResetHooks = append(b.runResetHooks, h)
}

// RegisterSorted adds a hook executed on sort completion.
func (b *Broker) RegisterSorted(h SortedHook) {
	if b == nil || h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sortedHooks = append(b.sortedHooks, h)
}

// RegisterBundle installs every handler of a bundle.
func (b *Broker) RegisterBundle(bundle HookBundle) {
	for _, h := range bundle.AfterStep {
		b.RegisterAfterStep(h)
	}
	for _, h := range bundle.RunReset {
		b.RegisterRunReset(h)
	}
	for _, h := range bundle.Sorted {
		b.RegisterSorted(h)
	}
}

// RegisterPluginMetadata records a plugin descriptor for listing.
func (b *Broker) RegisterPluginMetadata(desc PluginDescriptor) {
	if b == nil || desc.Name == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.pluginIndex[desc.Name]; exists {
		return
	}
	b.pluginIndex[desc.Name] = desc
	b.pluginCatalog[desc.Category] = append(b.pluginCatalog[desc.Category], desc)
}

// Plugins returns the descriptors registered under a category.
func (b *Broker) Plugins(category PluginCategory) []PluginDescriptor {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	descs := make([]PluginDescriptor, len(b.pluginCatalog[category]))
	copy(descs, b.pluginCatalog[category])
	return descs
}

// EmitAfterStep triggers AfterStep hooks. The first error aborts the
// remaining handlers and is returned to the caller.
func (b *Broker) EmitAfterStep(ctx *StepContext) error {
	if b == nil || ctx == nil {
		return nil
	}
	b.mu.RLock()
	handlers := make([]AfterStepHook, len(b.afterStepHooks))
	copy(handlers, b.afterStepHooks)
	b.mu.RUnlock()
	for _, handler := range handlers {
		if err := handler(ctx); err != nil {
			return err
		}
	}
	return nil
}

// EmitRunReset triggers RunReset hooks.
func (b *Broker) EmitRunReset(ctx *RunContext) error {
	if b == nil || ctx == nil {
		return nil
	}
	b.mu.RLock()
	handlers := make([]RunResetHook, len(b.runResetHooks))
	copy(handlers, b.runResetHooks)
	b.mu.RUnlock()
	for _, handler := range handlers {
		if err := handler(ctx); err != nil {
			return err
		}
	}
	return nil
}

// EmitSorted triggers Sorted hooks.
func (b *Broker) EmitSorted(ctx *RunContext) error {
	if b == nil || ctx == nil {
		return nil
	}
	b.mu.RLock()
	handlers := make([]SortedHook, len(b.sortedHooks))
	copy(handlers, b.sortedHooks)
	b.mu.RUnlock()
	for _, handler := range handlers {
		if err := handler(ctx); err != nil {
			return err
		}
	}
	return nil
}
