package main

import (
	"time"

	"github.com/Readm/sortviz/audio"
	"github.com/Readm/sortviz/control"
	"github.com/Readm/sortviz/dataset"
	"github.com/Readm/sortviz/engine"
	"github.com/Readm/sortviz/hooks"
	"github.com/Readm/sortviz/progress"
	"github.com/Readm/sortviz/visual"
)

// idleFrameInterval paces the loop once the sort has finished, so the UI
// keeps responding to input without spinning.
const idleFrameInterval = 30 * time.Millisecond

// copyPhaser is implemented by automatons whose copy-back phase gets a
// slightly longer pacing delay.
type copyPhaser interface {
	Copying() bool
}

// Session owns the full mutable state of one visualizer instance: the
// dataset, the active automaton, statistics, progress, pacing delay and
// the audio monitor. Nothing in here is process-global; every collaborator
// receives the session state through explicit calls.
type Session struct {
	cfg     *Config
	data    *dataset.Dataset
	algo    engine.Algorithm
	sorter  engine.Stepper
	stats   *RunStats
	tracker *progress.Tracker
	broker  *hooks.Broker
	monitor *audio.Monitor

	viz    visual.Visualizer
	runner *control.Runner[visual.ControlCommand, *visual.Frame]

	delayMS int
	tick    uint64
	steps   uint64
	stopped bool
}

// NewSession wires a session from a validated config, a visualizer and
// the audio monitor shared with whatever plays the tone.
func NewSession(cfg *Config, viz visual.Visualizer, monitor *audio.Monitor) *Session {
	algo, err := ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		// ValidateConfig already rejected bad names; fall back defensively.
		algo = engine.Bubble
	}
	if monitor == nil {
		monitor = &audio.Monitor{}
	}
	s := &Session{
		cfg:     cfg,
		data:    dataset.New(cfg.DatasetSize, cfg.Seed),
		algo:    algo,
		stats:   &RunStats{},
		tracker: progress.NewTracker(),
		broker:  hooks.NewBroker(),
		monitor: monitor,
		viz:     viz,
		delayMS: cfg.StepDelayMS,
	}

	s.registerPlugins()

	loop := control.NewCommandLoop[visual.ControlCommand](viz, control.CommandHandlerFunc[visual.ControlCommand](s.handleCommand))
	bridge := control.NewFrameBridge(viz == nil || viz.IsHeadless(), func(f *visual.Frame) {
		if s.viz != nil {
			s.viz.PublishFrame(f)
		}
	})
	s.runner = control.NewRunner(loop, bridge)

	s.prepareRun("startup")
	return s
}

// Monitor returns the audio handoff the session publishes touched values
// through.
func (s *Session) Monitor() *audio.Monitor {
	return s.monitor
}

// Broker exposes the hook broker for plugin installation.
func (s *Session) Broker() *hooks.Broker {
	return s.broker
}

// DelayMS returns the current pacing delay.
func (s *Session) DelayMS() int {
	return s.delayMS
}

// registerPlugins installs the built-in hook consumers: the audio monitor
// and debug step logging.
func (s *Session) registerPlugins() {
	s.broker.RegisterPluginMetadata(hooks.PluginDescriptor{
		Name:        "audio-monitor",
		Category:    hooks.PluginCategoryAudio,
		Description: "publishes the touched value to the tone oscillator",
	})
	s.broker.RegisterAfterStep(func(ctx *hooks.StepContext) error {
		s.monitor.Set(ctx.Value)
		return nil
	})

	s.broker.RegisterPluginMetadata(hooks.PluginDescriptor{
		Name:        "step-log",
		Category:    hooks.PluginCategoryInstrumentation,
		Description: "debug-level trace of swaps and run boundaries",
	})
	s.broker.RegisterBundle(hooks.HookBundle{
		AfterStep: []hooks.AfterStepHook{func(ctx *hooks.StepContext) error {
			if ctx.Swapped {
				GetLogger().Debugf("%s: swap at %d (value %d)", ctx.Algorithm, ctx.Index, ctx.Value)
			}
			return nil
		}},
		RunReset: []hooks.RunResetHook{func(ctx *hooks.RunContext) error {
			GetLogger().Debugf("run reset: %s (%s)", ctx.Algorithm, ctx.Reason)
			return nil
		}},
		Sorted: []hooks.SortedHook{func(ctx *hooks.RunContext) error {
			GetLogger().Infof("%s finished", ctx.Algorithm)
			return nil
		}},
	})
}

// prepareRun builds a fresh automaton for the current algorithm and zeroes
// the per-run state. Any in-flight automaton state is discarded.
func (s *Session) prepareRun(reason string) {
	s.sorter = engine.New(s.algo, s.data)
	s.stats.Reset()
	s.tracker.Reset()
	s.steps = 0
	s.monitor.Set(0)
	s.broker.EmitRunReset(&hooks.RunContext{Algorithm: s.algo.String(), Reason: reason})
}

// handleCommand mutates the session in response to one control command.
// It returns false when the session should terminate.
func (s *Session) handleCommand(cmd visual.ControlCommand) bool {
	switch cmd.Type {
	case visual.CommandSelect:
		if cmd.Algorithm < 1 || cmd.Algorithm > engine.Count {
			GetLogger().Warnf("ignoring select of algorithm %d", cmd.Algorithm)
			return true
		}
		s.algo = engine.Algorithm(cmd.Algorithm - 1)
		s.data.Regenerate()
		s.prepareRun("select")
	case visual.CommandReshuffle:
		s.data.BeginReshuffle()
		s.tracker.Reset()
		s.monitor.Set(0)
		if s.data.Len() < 1 {
			// Nothing to shuffle; restart the run directly.
			s.prepareRun("reshuffle")
		}
	case visual.CommandSpeedUp:
		if s.delayMS > 0 {
			s.delayMS--
		}
	case visual.CommandSlowDown:
		s.delayMS++
	case visual.CommandQuit:
		s.stopped = true
		return false
	}
	return true
}

// Tick advances the session by one logical frame: one reshuffle exchange
// or one sort step, followed by statistics, progress and hook updates.
func (s *Session) Tick() {
	s.tick++

	ctx := &hooks.StepContext{
		Algorithm: s.algo.String(),
		Index:     -1,
	}

	switch {
	case s.data.Shuffling():
		touched, done := s.data.ReshuffleStep()
		if touched >= 0 {
			ctx.Index = touched
			ctx.Value = s.data.At(touched)
		}
		ctx.Shuffle = true
		if done {
			s.prepareRun("reshuffle")
		}
	case !s.sorter.Done():
		start := time.Now()
		res := s.sorter.Step(s.data)
		elapsed := time.Since(start)
		s.stats.Observe(res, elapsed)
		s.steps++
		s.tracker.Update(s.sorter.RawProgress(s.data), s.sorter.Done())
		ctx.Index = res.Touched
		ctx.Value = res.Value
		ctx.Compared = res.Compared
		ctx.Swapped = res.Swapped
		ctx.Done = res.Done
		if res.Done {
			s.broker.EmitSorted(&hooks.RunContext{Algorithm: s.algo.String(), Reason: "sorted"})
		}
	default:
		// Terminal: keep progress clamped and the tone silent.
		s.tracker.Update(1, true)
		ctx.Done = true
	}

	if err := s.broker.EmitAfterStep(ctx); err != nil {
		GetLogger().Warnf("after-step hook failed: %v", err)
	}
}

// pacingSleep inserts the artificial delay after the logic of a tick has
// completed. It is never included in the logic-time statistic.
func (s *Session) pacingSleep() {
	switch {
	case s.data.Shuffling():
		time.Sleep(time.Duration(s.cfg.ShuffleDelayMS) * time.Millisecond)
	case s.sorter.Done():
		time.Sleep(idleFrameInterval)
	default:
		delay := s.delayMS
		if cp, ok := s.sorter.(copyPhaser); ok && cp.Copying() {
			delay += s.cfg.MergeExtraMS
		}
		if delay > 0 {
			time.Sleep(time.Duration(delay) * time.Millisecond)
		}
	}
}

// buildFrame snapshots the session into a renderable frame description.
func (s *Session) buildFrame() *visual.Frame {
	shuffling := s.data.Shuffling()
	sorted := !shuffling && s.sorter.Done()

	var view engine.View
	view.Recent = -1
	if !shuffling {
		view = s.sorter.View()
	}

	values := s.data.Values()
	bars := make([]visual.BarSnapshot, len(values))
	for k, v := range values {
		bars[k] = visual.BarSnapshot{
			Value: v,
			Color: barColor(k, v, view, sorted, shuffling, s.data.ShuffleCursor()),
		}
	}

	return &visual.Frame{
		Tick:      s.tick,
		Bars:      bars,
		Progress:  s.tracker.Fraction(),
		Lines:     statusLines(InfoFor(s.algo), s.stats, s.delayMS, shuffling),
		ToneHz:    audio.Frequency(s.monitor.Load()),
		Shuffling: shuffling,
		Sorted:    sorted,
	}
}

// Run drives the interactive loop: drain input, advance one step, publish
// a frame, sleep for pacing. It returns when a quit command arrives.
func (s *Session) Run() {
	GetLogger().Infof("session started: %s, %d bars", s.algo.String(), s.data.Len())
	for !s.stopped {
		if !s.runner.DrainPendingCommands() {
			break
		}
		if s.stopped {
			break
		}
		s.Tick()
		if s.runner.VisualEnabled() {
			s.runner.PublishFrame(s.buildFrame())
		}
		s.pacingSleep()
	}
	GetLogger().Infof("session stopped after %d ticks", s.tick)
}

// RunHeadless steps the current run to completion without pacing or
// rendering and returns the summary.
func (s *Session) RunHeadless() *RunSummary {
	for !s.sorter.Done() {
		s.Tick()
	}
	return &RunSummary{
		Algorithm:   s.algo.String(),
		DatasetSize: s.data.Len(),
		Steps:       s.steps,
		Stats:       *s.stats,
	}
}
