package midi

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/drawsound/internal/logger"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

type fakeOutput struct {
	mu      sync.Mutex
	sent    []contracts.MIDI
	stopped bool
	fail    error
}

func (f *fakeOutput) Send(msg contracts.MIDI) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeOutput) ListDevices() ([]contracts.DeviceInfo, error) { return nil, nil }
func (f *fakeOutput) SelectDevice(int) error                       { return nil }

func (f *fakeOutput) Stop() error {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
	return nil
}

func (f *fakeOutput) messages() []contracts.MIDI {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]contracts.MIDI, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *fakeOutput) withCommand(cmd byte) []contracts.MIDI {
	var out []contracts.MIDI
	for _, m := range f.messages() {
		if m.Command&0xF0 == cmd {
			out = append(out, m)
		}
	}
	return out
}

func newBackend(t *testing.T) (*Backend, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	b, err := NewBackend(out, logger.NewNopLogger())
	require.NoError(t, err)
	return b, out
}

func TestNewBackend_SelectsProgramPerWave(t *testing.T) {
	_, out := newBackend(t)

	changes := out.withCommand(contracts.ProgramChange)
	require.Len(t, changes, 4)
	got := map[byte]byte{}
	for _, m := range changes {
		got[m.Command&0x0F] = m.Note
	}
	require.Equal(t, map[byte]byte{0: 79, 1: 73, 2: 81, 3: 80}, got)
}

func TestNewBackend_OutputFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewBackend(&fakeOutput{fail: boom}, logger.NewNopLogger())
	require.ErrorIs(t, err, boom)
}

func TestBackend_PlayToneSendsNoteOnThenOff(t *testing.T) {
	b, out := newBackend(t)

	b.PlayTone(440, contracts.Sawtooth, 0.5, 0.02, b.Now())

	require.Eventually(t, func() bool { return len(out.withCommand(contracts.NoteOff)) == 1 }, time.Second, 5*time.Millisecond)
	on := out.withCommand(contracts.NoteOn)
	require.Len(t, on, 1)
	require.Equal(t, contracts.NoteOn|2, on[0].Command)
	require.Equal(t, byte(69), on[0].Note)
	require.Equal(t, byte(64), on[0].Velocity)

	off := out.withCommand(contracts.NoteOff)[0]
	require.Equal(t, contracts.NoteOff|2, off.Command)
	require.Equal(t, byte(69), off.Note)
	require.GreaterOrEqual(t, off.Timestamp, on[0].Timestamp)
	require.Zero(t, b.Pending())
}

func TestBackend_OverlappingVoicesOnOneKeyKeepSounding(t *testing.T) {
	b, out := newBackend(t)

	start := b.Now()
	b.PlayTone(440, contracts.Sine, 0.2, 0.1, start)
	b.PlayTone(440, contracts.Sine, 0.2, 0.2, start+0.05)

	// The first voice ended at 0.1s, the second lasts until 0.25s.
	require.Eventually(t, func() bool { return b.Now() > start+0.175 }, time.Second, time.Millisecond)
	require.Len(t, out.withCommand(contracts.NoteOn), 2)
	require.Empty(t, out.withCommand(contracts.NoteOff))
	require.Equal(t, 1, b.Held())

	require.Eventually(t, func() bool { return len(out.withCommand(contracts.NoteOff)) == 1 }, time.Second, 5*time.Millisecond)
	require.Zero(t, b.Held())
	require.Zero(t, b.Pending())
}

func TestBackend_PlayNoiseUsesPercussionChannel(t *testing.T) {
	b, out := newBackend(t)

	b.PlayNoise(2, 0.01, 0)

	require.Eventually(t, func() bool { return len(out.withCommand(contracts.NoteOff)) == 1 }, time.Second, 5*time.Millisecond)
	on := out.withCommand(contracts.NoteOn)[0]
	require.Equal(t, contracts.NoteOn|contracts.PercussionChannel, on.Command)
	require.Equal(t, SnareNote, on.Note)
	require.Equal(t, byte(127), on.Velocity)
}

func TestBackend_CloseCancelsPendingNotes(t *testing.T) {
	b, out := newBackend(t)

	b.PlayTone(440, contracts.Sine, 0.5, 0.1, b.Now()+10)
	require.Equal(t, 1, b.Pending())

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	require.Empty(t, out.withCommand(contracts.NoteOn))
	require.Len(t, out.withCommand(contracts.ControlChange), 16)
	require.True(t, out.stopped)

	b.PlayTone(440, contracts.Sine, 0.5, 0.1, 0)
	require.Zero(t, b.Pending())
}

func TestVelocityAndNoteClamp(t *testing.T) {
	require.Equal(t, byte(1), Velocity(0))
	require.Equal(t, byte(25), Velocity(0.2))
	require.Equal(t, byte(127), Velocity(1))
	require.Equal(t, byte(127), Velocity(3))

	require.Equal(t, byte(36), Note(65.406))
	require.Equal(t, byte(96), Note(2093.005))
	require.Equal(t, byte(0), Note(1))
	require.Equal(t, byte(127), Note(50000))
}
