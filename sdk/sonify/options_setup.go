package sonify

import (
	"fmt"

	"github.com/leandrodaf/drawsound/internal/logger"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// applyDefaultOptions sets default values for EngineOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify EngineOptions.
//
// Returns:
//   - contracts.EngineOptions: A structure containing the finalized options with defaults applied.
//   - error: An error if the resulting options are unusable.
func applyDefaultOptions(opts ...contracts.Option) (contracts.EngineOptions, error) {
	options := &contracts.EngineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogFilePath != "" {
		options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
	}
	if options.Backend == "" {
		options.Backend = BackendSpeaker
	}
	if options.Geometry == (contracts.Geometry{}) {
		options.Geometry = contracts.DefaultGeometry()
	}
	if options.SampleRate == 0 {
		options.SampleRate = contracts.DefaultSampleRate
	}
	if options.MasterGain == 0 {
		options.MasterGain = 1
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{ClientName: "drawsound"}
	}
	if options.MIDIOutConfig == nil {
		options.MIDIOutConfig = &contracts.MIDIOutConfig{DeviceID: -1}
	}

	if err := options.Geometry.Validate(); err != nil {
		return contracts.EngineOptions{}, err
	}
	if options.SampleRate < 0 {
		return contracts.EngineOptions{}, fmt.Errorf("sample rate %d must be positive", options.SampleRate)
	}

	if options.MasterGain < 0 {
		return contracts.EngineOptions{}, fmt.Errorf("master gain %v must not be negative", options.MasterGain)
	}

	options.Logger.SetLevel(options.LogLevel) // Set the logger to the specified log level
	return *options, nil
}
