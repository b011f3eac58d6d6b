// Package midi plays sound events on an external MIDI synthesizer. Tones become
// note on/off pairs on a channel per wave type, noise becomes a snare hit on the
// General MIDI percussion channel.
package midi

import (
	"sync"
	"time"

	"github.com/leandrodaf/drawsound/internal/mapper"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// General MIDI programs (zero based) standing in for each oscillator.
var programs = map[contracts.WaveType]byte{
	contracts.Sine:     79, // Ocarina
	contracts.Triangle: 73, // Flute
	contracts.Sawtooth: 81, // Lead 2 (sawtooth)
	contracts.Square:   80, // Lead 1 (square)
}

// SnareNote is the percussion key used for noise events (Acoustic Snare).
const SnareNote byte = 38

// allNotesOff is controller 123.
const allNotesOff byte = 123

// noteKey is a key on a channel. Overlapping voices on the same key share it.
type noteKey struct {
	channel, key byte
}

// Backend implements contracts.SynthesisBackend over a contracts.MIDIOutput.
// The clock is wall time since the backend was created.
type Backend struct {
	logger contracts.Logger
	out    contracts.MIDIOutput
	origin time.Time

	// noteMu orders presses and releases with the messages they send.
	noteMu sync.Mutex
	held   map[noteKey]int

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	closed  bool
	sendErr error
}

// NewBackend selects programs on the tone channels and returns a backend
// sending to out.
func NewBackend(out contracts.MIDIOutput, logger contracts.Logger) (*Backend, error) {
	for wave, program := range programs {
		msg := contracts.MIDI{Command: contracts.ProgramChange | Channel(wave), Note: program}
		if err := out.Send(msg); err != nil {
			return nil, err
		}
	}
	return &Backend{
		logger: logger,
		out:    out,
		origin: time.Now(),
		held:   make(map[noteKey]int),
		timers: make(map[*time.Timer]struct{}),
	}, nil
}

// Channel is the MIDI channel carrying a wave type.
func Channel(wave contracts.WaveType) byte {
	return byte(wave) & 0x0F
}

// Velocity converts a linear volume to a MIDI velocity in [1, 127].
func Velocity(volume float64) byte {
	v := int(volume*127 + 0.5)
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return byte(v)
}

// Note converts a frequency to the nearest playable MIDI key.
func Note(frequency float64) byte {
	n := mapper.NoteForFrequency(frequency)
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return byte(n)
}

// Now returns seconds since the backend was created.
func (b *Backend) Now() float64 {
	return time.Since(b.origin).Seconds()
}

// PlayTone sends note on at startTime and note off durationSeconds later.
func (b *Backend) PlayTone(frequency float64, wave contracts.WaveType, volume, durationSeconds, startTime float64) {
	ch := Channel(wave)
	b.note(ch, Note(frequency), Velocity(volume), durationSeconds, startTime)
}

// PlayNoise hits the snare on the percussion channel.
func (b *Backend) PlayNoise(volume, durationSeconds, startTime float64) {
	b.note(contracts.PercussionChannel, SnareNote, Velocity(volume), durationSeconds, startTime)
}

func (b *Backend) note(ch, key, velocity byte, durationSeconds, startTime float64) {
	k := noteKey{channel: ch, key: key}
	on := contracts.MIDI{Command: contracts.NoteOn | ch, Note: key, Velocity: velocity}
	off := contracts.MIDI{Command: contracts.NoteOff | ch, Note: key}

	delay := b.until(startTime)
	b.after(delay, func() {
		b.press(k, on)
		b.after(seconds(durationSeconds), func() { b.release(k, off) })
	})
}

// press strikes the key again even if an earlier voice still holds it.
func (b *Backend) press(k noteKey, on contracts.MIDI) {
	b.noteMu.Lock()
	defer b.noteMu.Unlock()
	b.held[k]++
	b.send(on)
}

// release sends note off only once the last voice holding the key ends.
func (b *Backend) release(k noteKey, off contracts.MIDI) {
	b.noteMu.Lock()
	defer b.noteMu.Unlock()
	b.held[k]--
	if b.held[k] > 0 {
		return
	}
	delete(b.held, k)
	b.send(off)
}

// Held returns the number of voices currently sounding.
func (b *Backend) Held() int {
	b.noteMu.Lock()
	defer b.noteMu.Unlock()
	n := 0
	for _, c := range b.held {
		n += c
	}
	return n
}

func (b *Backend) until(t float64) time.Duration {
	d := seconds(t) - time.Since(b.origin)
	if d < 0 {
		return 0
	}
	return d
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (b *Backend) after(d time.Duration, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		b.mu.Lock()
		delete(b.timers, t)
		closed := b.closed
		b.mu.Unlock()
		if !closed {
			fn()
		}
	})
	b.timers[t] = struct{}{}
}

func (b *Backend) send(msg contracts.MIDI) {
	msg.Timestamp = uint64(time.Since(b.origin).Nanoseconds())
	if err := b.out.Send(msg); err != nil {
		b.mu.Lock()
		first := b.sendErr == nil
		b.sendErr = err
		b.mu.Unlock()
		if first {
			b.logger.Error("Failed to send MIDI message", b.logger.Field().Error("error", err))
		}
	}
}

// Pending returns the number of note on/off messages not yet sent.
func (b *Backend) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.timers)
}

// Close cancels pending notes, silences every channel and stops the output.
func (b *Backend) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for t := range b.timers {
		t.Stop()
	}
	b.timers = nil
	b.mu.Unlock()

	for ch := byte(0); ch < 16; ch++ {
		_ = b.out.Send(contracts.MIDI{Command: contracts.ControlChange | ch, Note: allNotesOff})
	}
	b.logger.Info("MIDI backend closed")
	return b.out.Stop()
}

// Realtime reports that the clock follows wall time.
func (b *Backend) Realtime() bool { return true }
