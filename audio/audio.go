// Package audio synthesizes the tone pitched to the value the sort is
// currently touching. The logic tick publishes that value through a
// Monitor; the oscillator reads it while filling sample buffers for
// whatever sink plays them.
package audio

import (
	"math"
	"sync/atomic"
)

// Synthesis constants.
const (
	SampleRate = 44100
	Volume     = 0.05
	baseHz     = 200.0
	hzPerUnit  = 8.0
)

// Monitor is the single-value handoff between the logic tick and the
// audio generator. Reads and writes are individually atomic with no
// further ordering: a sample batch rendered against a value that is stale
// by one tick is inaudible, so no stronger synchronization is warranted.
type Monitor struct {
	value atomic.Int64
}

// Set publishes the value most recently touched by the sort.
func (m *Monitor) Set(v int) {
	m.value.Store(int64(v))
}

// Load returns the last published value.
func (m *Monitor) Load() int {
	return int(m.value.Load())
}

// Frequency maps an element value to the oscillator frequency in Hz.
// Values at or below zero are silence.
func Frequency(v int) float64 {
	if v <= 0 {
		return 0
	}
	return baseHz + hzPerUnit*float64(v)
}

// Oscillator renders a continuous-phase sine wave whose frequency follows
// the monitor. Phase persists across Fill calls so frequency changes never
// produce a click.
type Oscillator struct {
	monitor *Monitor
	phase   float64
}

// NewOscillator binds an oscillator to the monitor feeding it.
func NewOscillator(m *Monitor) *Oscillator {
	return &Oscillator{monitor: m}
}

// Fill writes mono float32 samples at SampleRate into buf. The monitor is
// re-read for every sample so pitch changes take effect mid-buffer, the
// way a device callback would observe them.
func (o *Oscillator) Fill(buf []float32) {
	for k := range buf {
		freq := Frequency(o.monitor.Load())
		if freq > 0 {
			buf[k] = float32(Volume * math.Sin(o.phase))
		} else {
			buf[k] = 0
		}
		o.phase += 2 * math.Pi * freq / SampleRate
		if o.phase >= 2*math.Pi {
			o.phase -= 2 * math.Pi
		}
	}
}
