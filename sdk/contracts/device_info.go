package contracts

// DeviceInfo describes a MIDI destination the midi backend can play on.
// ID is the value to pass to SelectDevice and to the backend.midi_device
// config key.
type DeviceInfo struct {
	ID           int
	Name         string
	Manufacturer string
	EntityName   string
}
