package sonify

import (
	"github.com/leandrodaf/drawsound/internal/scheduler"
	"github.com/leandrodaf/drawsound/internal/session"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// NewSession creates a drawing session with the specified options.
// It applies default options; the backend itself is created lazily on the
// first pointer down or Play.
//
// opts ...contracts.Option: A variadic list of option functions to customize the session.
//
// Returns:
//   - *session.Session: The session holding the canvas and the audio engine.
//   - error: An error, if the options are invalid.
func NewSession(opts ...contracts.Option) (*session.Session, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	return session.New(
		func() (contracts.SynthesisBackend, error) { return NewBackend(&options) },
		session.Options{
			Logger:   options.Logger,
			Geometry: options.Geometry,
			Schedule: scheduler.Options{ClampVolume: options.ClampVolume},
		},
	)
}

// ListMIDIDevices opens the MIDI output of the current operating system long
// enough to enumerate its destinations.
func ListMIDIDevices(opts ...contracts.Option) ([]contracts.DeviceInfo, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	out, err := NewMIDIOutput(&options)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := out.Stop(); err != nil {
			options.Logger.Warn("Failed to stop MIDI output", options.Logger.Field().Error("error", err))
		}
	}()

	return out.ListDevices()
}
