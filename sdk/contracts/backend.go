package contracts

// SynthesisBackend renders sound events. Play calls return immediately; the
// voice starts at startTime on the backend clock and nobody waits for it.
type SynthesisBackend interface {
	// Now returns the backend clock in seconds.
	Now() float64
	// PlayTone schedules a periodic voice with an instant attack and an exponential
	// decay that reaches EnvelopeFloor at startTime+durationSeconds.
	PlayTone(frequency float64, wave WaveType, volume, durationSeconds, startTime float64)
	// PlayNoise schedules a white noise voice with the same envelope.
	PlayNoise(volume, durationSeconds, startTime float64)
	// Close releases the backend. Voices still pending may be cut.
	Close() error
}

// DrawnPointStream is the capture side of a drawing surface.
type DrawnPointStream interface {
	Capture(x, y float64) error // Appends one point with the current brush while the pointer is down.
	Clear()                     // Empties the collection. Idempotent.
	Snapshot() []DrawnPoint     // Returns a copy of the points in capture order.
}

// Realtime is implemented by backends whose clock runs on its own, as opposed
// to offline renderers whose clock only moves while rendering.
type Realtime interface {
	Realtime() bool
}
