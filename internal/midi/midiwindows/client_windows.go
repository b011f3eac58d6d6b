//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/leandrodaf/drawsound/sdk/contracts"
	"golang.org/x/sys/windows"
)

// Type definitions for MIDI handles
type HMIDIOUT windows.Handle

// Constants for midiOutOpen
const (
	CALLBACK_NULL = 0x00000000 // No callback
	MIDI_MAPPER   = 0xFFFFFFFF // Device id of the system MIDI mapper
)

// Error definitions for MIDI output handling.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI output devices found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI output device")
	ErrNoDeviceSelected  = errors.New("no MIDI output device selected")
)

// Struct representing MIDI output device capabilities
type midiOutCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	wTechnology    uint16
	wVoices        uint16
	wNotes         uint16
	wChannelMask   uint16
	dwSupport      uint32
}

// OutputMid sends MIDI short messages through winmm.
type OutputMid struct {
	logger contracts.Logger
	handle HMIDIOUT
	open   bool
	mu     sync.Mutex
}

// Load the winmm.dll library and required functions
var (
	winmm                 = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutGetNumDevs = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutGetDevCaps = winmm.NewProc("midiOutGetDevCapsW")
	procMidiOutOpen       = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg   = winmm.NewProc("midiOutShortMsg")
	procMidiOutReset      = winmm.NewProc("midiOutReset")
	procMidiOutClose      = winmm.NewProc("midiOutClose")
)

// NewMIDIOutput opens the configured winmm output device.
func NewMIDIOutput(options *contracts.EngineOptions) (contracts.MIDIOutput, error) {
	if err := winmm.Load(); err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrUnsupportedCapability, err)
	}
	out := &OutputMid{logger: options.Logger}
	if err := out.SelectDevice(options.MIDIOutConfig.DeviceID); err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI output created for Windows")
	return out, nil
}

// ListDevices lists the available MIDI output devices
func (m *OutputMid) ListDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiOutGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, 0, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiOutCaps
		r1, _, _ := procMidiOutGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn("Failed to get MIDI output device capabilities", m.logger.Field().Int("deviceID", int(i)))
			continue
		}
		deviceName := windows.UTF16ToString(caps.szPname[:])
		devices = append(devices, contracts.DeviceInfo{
			ID:           int(i),
			Name:         deviceName,
			EntityName:   deviceName,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		})
	}
	return devices, nil
}

// SelectDevice opens a MIDI output device. -1 opens the MIDI mapper.
func (m *OutputMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uintptr(deviceID)
	if deviceID < 0 {
		id = MIDI_MAPPER
	} else {
		r0, _, _ := procMidiOutGetNumDevs.Call()
		if uint32(deviceID) >= uint32(r0) {
			m.logger.Error(ErrInvalidMIDIDevice.Error())
			return ErrInvalidMIDIDevice
		}
	}

	if m.open {
		if err := m.closeLocked(); err != nil {
			return fmt.Errorf("failed to close previous MIDI output: %w", err)
		}
	}

	r1, _, err := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		id,
		0,
		0,
		CALLBACK_NULL,
	)
	if r1 != 0 {
		m.logger.Error("Failed to open MIDI output", m.logger.Field().Int("deviceID", deviceID), m.logger.Field().Error("error", err))
		return fmt.Errorf("failed to open MIDI output %d: %v", deviceID, err)
	}

	m.open = true
	m.logger.Info("MIDI output connected", m.logger.Field().Int("deviceID", deviceID))
	return nil
}

// Send packs the message into a short message and sends it immediately.
func (m *OutputMid) Send(msg contracts.MIDI) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return ErrNoDeviceSelected
	}
	packed := uint32(msg.Command) | uint32(msg.Note)<<8 | uint32(msg.Velocity)<<16
	r1, _, err := procMidiOutShortMsg.Call(uintptr(m.handle), uintptr(packed))
	if r1 != 0 {
		return fmt.Errorf("midiOutShortMsg failed: %v", err)
	}
	return nil
}

// Stop resets and closes the device
func (m *OutputMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return nil
	}
	if err := m.closeLocked(); err != nil {
		return fmt.Errorf("failed to stop MIDI output: %w", err)
	}
	m.logger.Info("MIDI output closed")
	return nil
}

func (m *OutputMid) closeLocked() error {
	if r1, _, err := procMidiOutReset.Call(uintptr(m.handle)); r1 != 0 {
		m.logger.Warn("Failed to reset MIDI output", m.logger.Field().Error("error", err))
	}
	r1, _, err := procMidiOutClose.Call(uintptr(m.handle))
	if r1 != 0 {
		m.logger.Error("Failed to close MIDI output", m.logger.Field().Error("error", err))
		return err
	}
	m.open = false
	m.handle = 0
	return nil
}
