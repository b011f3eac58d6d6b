package synth

import (
	"math"
	"sync"
)

type voice struct {
	start   int64
	samples []float32
}

func (v *voice) end() int64 {
	return v.start + int64(len(v.samples))
}

// Mixer sums voices placed on an absolute frame timeline. The output side
// pulls frames with Mix; the clock is the number of frames pulled so far.
// It is safe for one producer and one consumer running concurrently.
type Mixer struct {
	sampleRate int

	mu     sync.Mutex
	pos    int64
	gain   float64
	voices []*voice
	last   int64
}

// NewMixer returns an empty mixer at frame zero with unity master gain.
func NewMixer(sampleRate int) *Mixer {
	return &Mixer{sampleRate: sampleRate, gain: 1}
}

// SampleRate returns the frame rate of the timeline.
func (m *Mixer) SampleRate() int {
	return m.sampleRate
}

// Now returns the clock in seconds.
func (m *Mixer) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(m.pos) / float64(m.sampleRate)
}

// Position returns the clock in frames.
func (m *Mixer) Position() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// SetGain sets the master gain applied after summing.
func (m *Mixer) SetGain(g float64) {
	m.mu.Lock()
	m.gain = g
	m.mu.Unlock()
}

// Add places samples at startTime seconds. A start already in the past plays
// from the current frame.
func (m *Mixer) Add(startTime float64, samples []float32) {
	if len(samples) == 0 {
		return
	}
	start := int64(math.Round(startTime * float64(m.sampleRate)))

	m.mu.Lock()
	defer m.mu.Unlock()
	if start < m.pos {
		start = m.pos
	}
	v := &voice{start: start, samples: samples}
	m.voices = append(m.voices, v)
	if e := v.end(); e > m.last {
		m.last = e
	}
}

// Pending returns the number of voices not yet fully mixed.
func (m *Mixer) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// End returns the frame after the last sample of any voice ever added.
func (m *Mixer) End() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Mix writes the next len(dst) mono frames into dst, limited to [-1, 1], and
// advances the clock.
func (m *Mixer) Mix(dst []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.pos
	to := from + int64(len(dst))
	kept := m.voices[:0]
	for _, v := range m.voices {
		if v.start < to {
			lo := max(v.start, from)
			hi := min(v.end(), to)
			for f := lo; f < hi; f++ {
				dst[f-from] += float64(v.samples[f-v.start])
			}
		}
		if v.end() > to {
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = kept
	m.pos = to

	for i := range dst {
		dst[i] = limit(dst[i] * m.gain)
	}
}

func limit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
