package contracts

// Mapping constants. Changing any of them changes what a drawing sounds like.
const (
	DefaultCanvasWidth   = 800.0 // Reference canvas width in pixels.
	DefaultCanvasHeight  = 400.0 // Reference canvas height in pixels.
	DefaultTotalDuration = 4.0   // Length of a composition in seconds.

	PitchBase = 36 // MIDI note of the bottom edge of the canvas (C2).
	PitchSpan = 48 // Number of semitones spanned by the canvas height.

	ReferenceFrequency = 440.0 // A4 in Hz.
	ReferenceNote      = 69    // MIDI note number of A4.

	VolumeDivisor = 50.0 // Brush size that maps to unit volume.
	BaseDuration  = 0.1  // Duration in seconds of an infinitely thin brush.
	DurationScale = 0.2  // Seconds added per unit of volume.

	EnvelopeFloor = 0.001 // Gain reached at the end of every voice.

	DefaultSampleRate = 44100
	DefaultBrushSize  = 10.0
	DefaultBrushColor = Red
)
