// Package trace records what a zoom controller did frame by frame and
// renders the recording as a chart.
package trace

import (
	"sync"
	"time"
)

const defaultCapacity = 1024

// Sample is one recorded controller state. Event names the pointer phase or
// host action that produced it; frame samples taken while a snap runs have
// Event "frame".
type Sample struct {
	Timestamp    time.Duration `yaml:"t"`
	Event        string        `yaml:"event"`
	Phase        string        `yaml:"phase"`
	Scale        float64       `yaml:"scale"`
	Height       int           `yaml:"height"`
	HeaderOffset int           `yaml:"header_offset,omitempty"`
	Consumed     bool          `yaml:"consumed,omitempty"`
}

// Timeline is a chronological copy of a Buffer.
type Timeline struct {
	Samples []Sample `yaml:"samples"`
	// Overwritten counts samples lost because the buffer wrapped.
	Overwritten int `yaml:"overwritten,omitempty"`
	// NaturalHeight and ScreenHeight are drawn as reference lines.
	NaturalHeight int `yaml:"natural_height"`
	ScreenHeight  int `yaml:"screen_height"`
}

// Duration returns the timestamp of the last sample.
func (t Timeline) Duration() time.Duration {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].Timestamp
}

// MaxHeight returns the tallest recorded height.
func (t Timeline) MaxHeight() int {
	peak := 0
	for _, s := range t.Samples {
		peak = max(peak, s.Height)
	}
	return peak
}

// Buffer stores recent samples in a ring buffer.
type Buffer struct {
	mu            sync.RWMutex
	samples       []Sample
	index         int
	count         int
	overwritten   int
	naturalHeight int
	screenHeight  int
}

// NewBuffer creates a buffer holding up to capacity samples. A non-positive
// capacity selects the default.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Buffer{samples: make([]Sample, capacity)}
}

// Capacity returns the buffer capacity.
func (b *Buffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// SetBounds records the header's natural height and the screen height.
func (b *Buffer) SetBounds(naturalHeight, screenHeight int) {
	b.mu.Lock()
	b.naturalHeight = naturalHeight
	b.screenHeight = screenHeight
	b.mu.Unlock()
}

// Add records a sample, overwriting the oldest one when full.
func (b *Buffer) Add(sample Sample) {
	b.mu.Lock()
	if b.count == len(b.samples) {
		b.overwritten++
	}
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	b.mu.Unlock()
}

// Len returns the number of samples held.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Snapshot returns a chronological copy of the samples.
func (b *Buffer) Snapshot() Timeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	timeline := Timeline{
		Overwritten:   b.overwritten,
		NaturalHeight: b.naturalHeight,
		ScreenHeight:  b.screenHeight,
	}
	if b.count == 0 {
		return timeline
	}

	result := make([]Sample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}
	timeline.Samples = result
	return timeline
}

// Clear removes all samples.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.index = 0
	b.count = 0
	b.overwritten = 0
	b.mu.Unlock()
}
