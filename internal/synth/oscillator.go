// Package synth renders tone and noise voices into sample buffers and mixes
// them on a frame clock. The software backends share it.
package synth

import (
	"math"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// Oscillate returns the value of one cycle of wave at phase in [0, 1).
// Every shape starts at zero and rises, like the Web Audio oscillators.
func Oscillate(wave contracts.WaveType, phase float64) float64 {
	switch wave {
	case contracts.Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case contracts.Sawtooth:
		return 2*math.Mod(phase+0.5, 1) - 1
	case contracts.Triangle:
		return 1 - 4*math.Abs(math.Mod(phase+0.25, 1)-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Envelope is the gain t seconds into a voice: volume at t=0, then an
// exponential ramp that lands on EnvelopeFloor at t=duration.
func Envelope(volume, duration, t float64) float64 {
	if volume <= 0 {
		return 0
	}
	if t <= 0 || duration <= 0 {
		return volume
	}
	if t >= duration {
		return contracts.EnvelopeFloor
	}
	return volume * math.Pow(contracts.EnvelopeFloor/volume, t/duration)
}

// Frames is the sample count of a voice lasting seconds, truncated.
func Frames(sampleRate int, seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(float64(sampleRate) * seconds)
}
