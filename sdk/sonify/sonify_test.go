package sonify

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/drawsound/internal/audio/recorder"
	"github.com/leandrodaf/drawsound/internal/logger"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

func TestApplyDefaultOptions(t *testing.T) {
	options, err := applyDefaultOptions()
	require.NoError(t, err)

	require.NotNil(t, options.Logger)
	require.Equal(t, BackendSpeaker, options.Backend)
	require.Equal(t, contracts.DefaultGeometry(), options.Geometry)
	require.Equal(t, contracts.DefaultSampleRate, options.SampleRate)
	require.False(t, options.ClampVolume)
	require.Equal(t, 1.0, options.MasterGain)
	require.Equal(t, "drawsound", options.CoreMIDIConfig.ClientName)
	require.Equal(t, -1, options.MIDIOutConfig.DeviceID)
}

func TestApplyDefaultOptions_RejectsBadGeometry(t *testing.T) {
	_, err := applyDefaultOptions(contracts.WithGeometry(contracts.Geometry{Width: 800, Height: -1, TotalDuration: 4}))
	require.ErrorIs(t, err, contracts.ErrInvalidGeometry)
}

func TestApplyDefaultOptions_RejectsNegativeGain(t *testing.T) {
	_, err := applyDefaultOptions(contracts.WithMasterGain(-0.5))
	require.Error(t, err)
}

func TestBackends(t *testing.T) {
	require.Equal(t, []string{"midi", "silent", "speaker", "wav"}, Backends())
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := NewBackend(&contracts.EngineOptions{Backend: "theremin", Logger: logger.NewNopLogger()})
	require.ErrorIs(t, err, contracts.ErrUnsupportedCapability)
}

func TestNewBackend_Silent(t *testing.T) {
	backend, err := NewBackend(&contracts.EngineOptions{Backend: BackendSilent, Logger: logger.NewNopLogger()})
	require.NoError(t, err)
	require.IsType(t, &recorder.Recorder{}, backend)
}

func TestNewMIDIOutput_UnsupportedOS(t *testing.T) {
	if _, ok := midiOutputs[runtime.GOOS]; ok {
		t.Skip("MIDI output is available on this platform")
	}
	_, err := NewMIDIOutput(&contracts.EngineOptions{Logger: logger.NewNopLogger()})
	require.ErrorIs(t, err, contracts.ErrUnsupportedCapability)
	require.ErrorIs(t, err, ErrUnsupportedOS)

	_, err = ListMIDIDevices(contracts.WithLogger(logger.NewNopLogger()))
	require.ErrorIs(t, err, ErrUnsupportedOS)
}

func TestNewSession_RendersWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing.wav")
	s, err := NewSession(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithBackend(BackendWAV),
		contracts.WithWAVPath(path),
		contracts.WithSampleRate(8000),
		contracts.WithRandSeed(9),
	)
	require.NoError(t, err)

	c := s.Canvas()
	require.NoError(t, c.PointerDown(0, 400))
	require.NoError(t, c.SetBrushColor(contracts.Black))
	require.NoError(t, c.PointerMove(400, 200))
	c.PointerUp()

	report, err := s.Play()
	require.NoError(t, err)
	require.Len(t, report.Events, 2)
	require.Zero(t, report.ClockNow)
	require.InDelta(t, 2.14, report.EndTime, 1e-9)
	require.NoError(t, s.Close())
	require.FileExists(t, path)
}

func TestNewSession_UnknownBackendFailsOnPlay(t *testing.T) {
	s, err := NewSession(contracts.WithLogger(logger.NewNopLogger()), contracts.WithBackend("theremin"))
	require.NoError(t, err)

	_, err = s.Play()
	require.ErrorIs(t, err, contracts.ErrUnsupportedCapability)
}
