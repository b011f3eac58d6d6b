package synth

import (
	"math/rand/v2"
	"sync"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// Renderer turns voice parameters into mono float32 buffers.
type Renderer struct {
	sampleRate int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRenderer returns a renderer for sampleRate. A zero seed draws noise from
// a randomly seeded source.
func NewRenderer(sampleRate int, seed uint64) *Renderer {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	return &Renderer{sampleRate: sampleRate, rng: rand.New(src)}
}

// SampleRate returns the rate buffers are rendered at.
func (r *Renderer) SampleRate() int {
	return r.sampleRate
}

// Tone renders a periodic voice.
func (r *Renderer) Tone(frequency float64, wave contracts.WaveType, volume, durationSeconds float64) []float32 {
	n := Frames(r.sampleRate, durationSeconds)
	buf := make([]float32, n)
	sr := float64(r.sampleRate)
	step := frequency / sr
	phase := 0.0
	for i := range buf {
		t := float64(i) / sr
		buf[i] = float32(Oscillate(wave, phase) * Envelope(volume, durationSeconds, t))
		phase += step
		if phase >= 1 {
			phase -= float64(int(phase))
		}
	}
	return buf
}

// Noise renders sampleRate*durationSeconds uniform samples on [-1, 1] under
// the voice envelope.
func (r *Renderer) Noise(volume, durationSeconds float64) []float32 {
	n := Frames(r.sampleRate, durationSeconds)
	buf := make([]float32, n)
	sr := float64(r.sampleRate)

	r.mu.Lock()
	for i := range buf {
		buf[i] = float32(r.rng.Float64()*2 - 1)
	}
	r.mu.Unlock()

	for i := range buf {
		buf[i] *= float32(Envelope(volume, durationSeconds, float64(i)/sr))
	}
	return buf
}
