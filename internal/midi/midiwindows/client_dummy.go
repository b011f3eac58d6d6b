//go:build !windows
// +build !windows

package midiwindows

import (
	"fmt"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// NewMIDIOutput reports that winmm is only available on Windows.
func NewMIDIOutput(options *contracts.EngineOptions) (contracts.MIDIOutput, error) {
	options.Logger.Warn("winmm MIDI output requested on a non-Windows system")
	return nil, fmt.Errorf("%w: winmm is only available on Windows", contracts.ErrUnsupportedCapability)
}
