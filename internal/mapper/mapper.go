// Package mapper turns a single drawn point into the sound event it plays.
package mapper

import (
	"math"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// Map converts point into a SoundEvent for the given canvas geometry.
// It is pure: the same inputs always produce the same event.
func Map(point contracts.DrawnPoint, geometry contracts.Geometry) (contracts.SoundEvent, error) {
	if err := geometry.Validate(); err != nil {
		return contracts.SoundEvent{}, err
	}

	volume := point.Size / contracts.VolumeDivisor
	event := contracts.SoundEvent{
		Volume:          volume,
		DurationSeconds: contracts.BaseDuration + volume*contracts.DurationScale,
		StartTimeOffset: (point.X / geometry.Width) * geometry.TotalDuration,
	}

	octaveOffset, wave, kind := Voice(point.Color)
	event.Kind = kind
	if kind == contracts.Tone {
		event.WaveType = wave
		event.Frequency = Frequency(Pitch(point.Y, geometry.Height) + octaveOffset)
	}
	return event, nil
}

// Pitch maps a y coordinate to a MIDI note. The top edge is the highest note.
func Pitch(y, height float64) int {
	return int(math.Floor((1-y/height)*contracts.PitchSpan)) + contracts.PitchBase
}

// Voice returns the octave offset, oscillator and kind for a brush color.
// Colors outside the palette play like red.
func Voice(color contracts.Color) (octaveOffset int, wave contracts.WaveType, kind contracts.SoundKind) {
	switch color {
	case contracts.LimeGreen:
		return 12, contracts.Triangle, contracts.Tone
	case contracts.Blue:
		return -12, contracts.Sawtooth, contracts.Tone
	case contracts.Yellow:
		return 0, contracts.Square, contracts.Tone
	case contracts.Black:
		return 0, contracts.Sine, contracts.Noise
	default:
		return 0, contracts.Sine, contracts.Tone
	}
}

// Frequency is the equal-tempered frequency of a MIDI note, A4 = 440 Hz.
func Frequency(note int) float64 {
	return contracts.ReferenceFrequency * math.Pow(2, float64(note-contracts.ReferenceNote)/12)
}

// NoteForFrequency is the nearest MIDI note to f. It inverts Frequency.
func NoteForFrequency(f float64) int {
	return int(math.Round(contracts.ReferenceNote + 12*math.Log2(f/contracts.ReferenceFrequency)))
}
