// Package recorder is a silent synthesis backend that keeps every call it
// receives. It backs the "silent" backend and the tests of the playback path.
package recorder

import (
	"sync"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// Call is one PlayTone or PlayNoise invocation.
type Call struct {
	Kind            contracts.SoundKind
	Frequency       float64
	WaveType        contracts.WaveType
	Volume          float64
	DurationSeconds float64
	StartTime       float64
}

// Recorder implements contracts.SynthesisBackend without producing sound.
type Recorder struct {
	mu     sync.Mutex
	now    float64
	calls  []Call
	closed bool
}

// New returns a Recorder whose clock reads now.
func New(now float64) *Recorder {
	return &Recorder{now: now}
}

// Now returns the manually driven clock.
func (r *Recorder) Now() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

// Advance moves the clock forward by d seconds.
func (r *Recorder) Advance(d float64) {
	r.mu.Lock()
	r.now += d
	r.mu.Unlock()
}

func (r *Recorder) PlayTone(frequency float64, wave contracts.WaveType, volume, durationSeconds, startTime float64) {
	r.record(Call{
		Kind:            contracts.Tone,
		Frequency:       frequency,
		WaveType:        wave,
		Volume:          volume,
		DurationSeconds: durationSeconds,
		StartTime:       startTime,
	})
}

func (r *Recorder) PlayNoise(volume, durationSeconds, startTime float64) {
	r.record(Call{
		Kind:            contracts.Noise,
		Volume:          volume,
		DurationSeconds: durationSeconds,
		StartTime:       startTime,
	})
}

// Close marks the recorder closed. Calls after Close are still recorded.
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Calls returns a copy of the recorded calls in arrival order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}
