package synth

import (
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// Engine renders voices with a Renderer and places them on a Mixer. It covers
// the clock and play half of contracts.SynthesisBackend; backends add Close
// and whatever pulls frames out of the mixer.
type Engine struct {
	*Mixer
	renderer *Renderer
}

// NewEngine returns an engine at sampleRate. seed is passed to NewRenderer.
func NewEngine(sampleRate int, seed uint64) *Engine {
	return &Engine{
		Mixer:    NewMixer(sampleRate),
		renderer: NewRenderer(sampleRate, seed),
	}
}

// PlayTone renders the tone and places it at startTime.
func (e *Engine) PlayTone(frequency float64, wave contracts.WaveType, volume, durationSeconds, startTime float64) {
	e.Add(startTime, e.renderer.Tone(frequency, wave, volume, durationSeconds))
}

// PlayNoise renders the noise burst and places it at startTime.
func (e *Engine) PlayNoise(volume, durationSeconds, startTime float64) {
	e.Add(startTime, e.renderer.Noise(volume, durationSeconds))
}

// NewEngineFromOptions returns an engine at the configured sample rate, seed
// and master gain. A zero gain leaves the mixer at unity.
func NewEngineFromOptions(options *contracts.EngineOptions) *Engine {
	e := NewEngine(options.SampleRate, options.RandSeed)
	if options.MasterGain > 0 {
		e.SetGain(options.MasterGain)
	}
	return e
}
