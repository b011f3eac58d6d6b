//go:build !darwin
// +build !darwin

package mididarwin

import (
	"fmt"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// NewMIDIOutput reports that CoreMIDI is only available on macOS.
func NewMIDIOutput(options *contracts.EngineOptions) (contracts.MIDIOutput, error) {
	options.Logger.Warn("CoreMIDI output requested on a non-macOS system")
	return nil, fmt.Errorf("%w: CoreMIDI is only available on macOS", contracts.ErrUnsupportedCapability)
}
