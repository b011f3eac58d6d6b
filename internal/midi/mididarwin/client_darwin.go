//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/drawsound/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI destination handling.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI destinations found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI destination")
	ErrCreateOutputPort  = errors.New("error creating output port")
	ErrNoDeviceSelected  = errors.New("no MIDI destination selected")
	ErrOutputStopped     = errors.New("MIDI output stopped")
)

// OutputMid sends MIDI messages to a CoreMIDI destination on macOS.
type OutputMid struct {
	logger      contracts.Logger
	client      coremidi.Client       // CoreMIDI client instance.
	outputPort  coremidi.OutputPort   // Output port messages are sent through.
	destination *coremidi.Destination // Selected destination, nil until SelectDevice.
	mu          sync.Mutex            // Guards destination and stopped.
	stopped     bool
	stopOnce    sync.Once
}

// NewMIDIOutput creates a CoreMIDI client and output port and selects the
// configured destination.
func NewMIDIOutput(options *contracts.EngineOptions) (contracts.MIDIOutput, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	port, err := coremidi.NewOutputPort(client, "drawsound out")
	if err != nil {
		options.Logger.Error(ErrCreateOutputPort.Error())
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}
	options.Logger.Info("MIDI client successfully created")

	out := &OutputMid{
		logger:     options.Logger,
		client:     client,
		outputPort: port,
	}
	if err := out.SelectDevice(options.CoreMIDIConfig.Destination); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDevices returns the available CoreMIDI destinations.
func (m *OutputMid) ListDevices() ([]contracts.DeviceInfo, error) {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI destinations: %w", err)
	}
	if len(destinations) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(destinations))
	for i, destination := range destinations {
		entity := destination.Entity()
		devices[i] = contracts.DeviceInfo{
			ID:           i,
			Name:         destination.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice picks the destination messages are sent to.
func (m *OutputMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI destinations: %w", err)
	}
	if len(destinations) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return ErrNoMIDIDevices
	}
	if deviceID < 0 || deviceID >= len(destinations) {
		m.logger.Error(ErrInvalidMIDIDevice.Error())
		return ErrInvalidMIDIDevice
	}

	destination := destinations[deviceID]
	m.destination = &destination
	m.logger.Info("MIDI destination selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", destination.Name()))
	return nil
}

// Send delivers one message immediately.
func (m *OutputMid) Send(msg contracts.MIDI) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return ErrOutputStopped
	}
	if m.destination == nil {
		return ErrNoDeviceSelected
	}
	data := msg.Bytes()
	if msg.Command&0xF0 == contracts.ProgramChange {
		data = data[:2]
	}
	packet := coremidi.NewPacket(data, 0)
	return packet.Send(&m.outputPort, m.destination)
}

// Stop releases the destination. Later sends fail.
func (m *OutputMid) Stop() error {
	m.stopOnce.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stopped = true
		m.destination = nil
		m.logger.Info("MIDI output stopped")
	})
	return nil
}
