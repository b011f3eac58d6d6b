package contracts

// SoundKind distinguishes periodic voices from noise voices.
type SoundKind int

const (
	Tone SoundKind = iota
	Noise
)

func (k SoundKind) String() string {
	if k == Noise {
		return "noise"
	}
	return "tone"
}

// WaveType is the oscillator shape of a tone voice.
type WaveType int

const (
	Sine WaveType = iota
	Triangle
	Sawtooth
	Square
)

func (w WaveType) String() string {
	switch w {
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	case Square:
		return "square"
	default:
		return "sine"
	}
}

// SoundEvent describes one voice derived from a drawn point.
// Frequency and WaveType are only meaningful when Kind is Tone.
type SoundEvent struct {
	Kind            SoundKind
	Frequency       float64
	WaveType        WaveType
	Volume          float64
	DurationSeconds float64
	StartTimeOffset float64
}

// ScheduledEvent is a SoundEvent pinned to an absolute time on the backend clock.
type ScheduledEvent struct {
	Event     SoundEvent
	StartTime float64
}

// EndTime is the instant the voice has fully decayed.
func (s ScheduledEvent) EndTime() float64 {
	return s.StartTime + s.Event.DurationSeconds
}
