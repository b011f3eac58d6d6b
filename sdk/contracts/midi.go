package contracts

// MIDI channel voice commands used by the MIDI backends.
const (
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn byte = 0x90
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff byte = 0x80
	// ProgramChange selects the instrument of a channel (0xC0).
	ProgramChange byte = 0xC0
	// ControlChange sends a controller value (0xB0).
	ControlChange byte = 0xB0
)

// PercussionChannel is the General MIDI drum channel (channel 10, zero based 9).
const PercussionChannel byte = 9

// MIDI is a three byte channel message with the timestamp it is due at.
type MIDI struct {
	Timestamp uint64 // Timestamp in nanoseconds since the backend clock origin.
	Command   byte   // Command is the status byte including the channel nibble.
	Note      byte   // Note represents the MIDI note number (0-127).
	Velocity  byte   // Velocity indicates the strength of the note being played (0-127).
}

// Bytes returns the wire form of the message.
func (m MIDI) Bytes() []byte {
	return []byte{m.Command, m.Note, m.Velocity}
}

// MIDIOutput is a raw MIDI sink. The OS specific MIDI backends implement it and
// share the voice allocation logic in internal/midi.
type MIDIOutput interface {
	Send(msg MIDI) error                // Sends a single message immediately.
	ListDevices() ([]DeviceInfo, error) // Lists all available MIDI destinations.
	SelectDevice(deviceID int) error    // Selects a MIDI destination by its ID.
	Stop() error                        // Closes the destination and releases resources.
}
