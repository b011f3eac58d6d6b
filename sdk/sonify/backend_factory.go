package sonify

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/leandrodaf/drawsound/internal/audio/recorder"
	"github.com/leandrodaf/drawsound/internal/audio/speaker"
	"github.com/leandrodaf/drawsound/internal/audio/wavout"
	"github.com/leandrodaf/drawsound/internal/midi"
	"github.com/leandrodaf/drawsound/internal/midi/mididarwin"
	"github.com/leandrodaf/drawsound/internal/midi/midiwindows"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no MIDI output.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// Backend names accepted by WithBackend.
const (
	BackendSpeaker = "speaker"
	BackendWAV     = "wav"
	BackendMIDI    = "midi"
	BackendSilent  = "silent"
)

// backendInitializers maps backend names to constructors.
var backendInitializers = map[string]func(*contracts.EngineOptions) (contracts.SynthesisBackend, error){
	BackendSpeaker: speaker.New,
	BackendWAV:     wavout.New,
	BackendMIDI:    newMIDIBackend,
	BackendSilent:  newSilentBackend,
}

// midiOutputs maps OS names to corresponding MIDI output initializers.
var midiOutputs = map[string]func(*contracts.EngineOptions) (contracts.MIDIOutput, error){
	"darwin":  mididarwin.NewMIDIOutput,  // macOS (Darwin) CoreMIDI output.
	"windows": midiwindows.NewMIDIOutput, // Windows winmm output.
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backendInitializers))
	for name := range backendInitializers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBackend creates the backend named by opts.Backend. Every failure wraps
// contracts.ErrUnsupportedCapability.
func NewBackend(opts *contracts.EngineOptions) (contracts.SynthesisBackend, error) {
	initializer, exists := backendInitializers[opts.Backend]
	if !exists {
		return nil, fmt.Errorf("%w: unknown backend %q", contracts.ErrUnsupportedCapability, opts.Backend)
	}
	backend, err := initializer(opts)
	if err != nil {
		if !errors.Is(err, contracts.ErrUnsupportedCapability) {
			err = fmt.Errorf("%w: %w", contracts.ErrUnsupportedCapability, err)
		}
		return nil, err
	}
	return backend, nil
}

// NewMIDIOutput opens the MIDI output of the current operating system.
func NewMIDIOutput(opts *contracts.EngineOptions) (contracts.MIDIOutput, error) {
	if initializer, exists := midiOutputs[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %w: %s", contracts.ErrUnsupportedCapability, ErrUnsupportedOS, runtime.GOOS)
}

func newMIDIBackend(opts *contracts.EngineOptions) (contracts.SynthesisBackend, error) {
	out, err := NewMIDIOutput(opts)
	if err != nil {
		return nil, err
	}
	backend, err := midi.NewBackend(out, opts.Logger)
	if err != nil {
		_ = out.Stop()
		return nil, err
	}
	return backend, nil
}

func newSilentBackend(opts *contracts.EngineOptions) (contracts.SynthesisBackend, error) {
	opts.Logger.Debug("Silent backend selected; events are recorded, not played")
	return recorder.New(0), nil
}
