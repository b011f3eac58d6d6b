package contracts

// CoreMIDIConfig holds configuration for the CoreMIDI output backend.
type CoreMIDIConfig struct {
	ClientName  string // Name of the MIDI client.
	Destination int    // Index of the destination to send to.
}

// MIDIOutConfig holds configuration for the winmm output backend.
type MIDIOutConfig struct {
	DeviceID int // winmm output device id. -1 selects the MIDI mapper.
}

// EngineOptions defines the configuration options for a drawsound engine.
type EngineOptions struct {
	Logger         Logger          // Logger for logging events and errors.
	LogLevel       LogLevel        // Level of logging to use.
	LogFilePath    string          // File path for logging if file logging is enabled.
	Backend        string          // Registered backend name, see sonify.Backends.
	Geometry       Geometry        // Canvas extent and composition length.
	SampleRate     int             // Sample rate of the software backends.
	MasterGain     float64         // Gain applied to the summed mix of the software backends. Zero means 1.
	ClampVolume    bool            // Clamp event volume to [0, 1] before dispatch.
	WAVPath        string          // Output file of the wav backend.
	RandSeed       uint64          // Seed for noise voices. Zero seeds from the runtime.
	CoreMIDIConfig *CoreMIDIConfig // Configuration specific to CoreMIDI.
	MIDIOutConfig  *MIDIOutConfig  // Configuration specific to winmm.
}

// Option is a function that modifies EngineOptions.
type Option func(*EngineOptions)

// WithLogger sets the logger for the engine.
func WithLogger(l Logger) Option {
	return func(opts *EngineOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the engine.
func WithLogLevel(level LogLevel) Option {
	return func(opts *EngineOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile sends log output to the given file.
func WithLogFile(path string) Option {
	return func(opts *EngineOptions) {
		opts.LogFilePath = path
	}
}

// WithBackend selects the synthesis backend by name.
func WithBackend(name string) Option {
	return func(opts *EngineOptions) {
		opts.Backend = name
	}
}

// WithGeometry sets the canvas extent and composition length.
func WithGeometry(g Geometry) Option {
	return func(opts *EngineOptions) {
		opts.Geometry = g
	}
}

// WithSampleRate sets the sample rate of the software backends.
func WithSampleRate(rate int) Option {
	return func(opts *EngineOptions) {
		opts.SampleRate = rate
	}
}

// WithMasterGain scales the summed mix of the software backends before limiting.
func WithMasterGain(gain float64) Option {
	return func(opts *EngineOptions) {
		opts.MasterGain = gain
	}
}

// WithClampVolume enables clamping of event volume to [0, 1].
func WithClampVolume(clamp bool) Option {
	return func(opts *EngineOptions) {
		opts.ClampVolume = clamp
	}
}

// WithWAVPath sets the output file of the wav backend.
func WithWAVPath(path string) Option {
	return func(opts *EngineOptions) {
		opts.WAVPath = path
	}
}

// WithRandSeed makes noise voices reproducible.
func WithRandSeed(seed uint64) Option {
	return func(opts *EngineOptions) {
		opts.RandSeed = seed
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *EngineOptions) {
		opts.CoreMIDIConfig = &config
	}
}

// WithMIDIOutConfig sets the winmm configuration.
func WithMIDIOutConfig(config MIDIOutConfig) Option {
	return func(opts *EngineOptions) {
		opts.MIDIOutConfig = &config
	}
}
