package wavout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/drawsound/internal/logger"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

func newWriter(t *testing.T, path string) *Writer {
	t.Helper()
	backend, err := New(&contracts.EngineOptions{
		Logger:     logger.NewNopLogger(),
		SampleRate: 8000,
		WAVPath:    path,
		RandSeed:   3,
	})
	require.NoError(t, err)
	return backend.(*Writer)
}

func decode(t *testing.T, path string) (beep.StreamSeekCloser, beep.Format) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	streamer, format, err := wav.Decode(f)
	require.NoError(t, err)
	t.Cleanup(func() { _ = streamer.Close() })
	return streamer, format
}

func TestWriter_RendersUntilLastVoice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w := newWriter(t, path)

	require.Zero(t, w.Now())
	w.PlayTone(440, contracts.Sine, 0.2, 0.14, 0)
	w.PlayNoise(0.5, 0.2, 0.5)
	require.NoError(t, w.Close())

	streamer, format := decode(t, path)
	require.Equal(t, beep.SampleRate(8000), format.SampleRate)
	require.Equal(t, 1, format.NumChannels)
	require.Equal(t, Precision, format.Precision)
	require.Equal(t, 5600, streamer.Len())

	samples := make([][2]float64, 5600)
	read := 0
	for read < len(samples) {
		n, ok := streamer.Stream(samples[read:])
		require.True(t, ok)
		read += n
	}

	// Silence between the tone and the noise burst.
	for _, s := range samples[1200:4000] {
		require.Zero(t, s[0])
	}
	require.NotZero(t, samples[4000][0]+samples[4001][0]+samples[4002][0])
}

func TestWriter_EmptyComposition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	w := newWriter(t, path)
	require.NoError(t, w.Close())

	streamer, _ := decode(t, path)
	require.Zero(t, streamer.Len())
}

func TestWriter_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "once.wav")
	w := newWriter(t, path)
	w.PlayTone(220, contracts.Square, 0.5, 0.1, 0)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWriter_UnwritablePath(t *testing.T) {
	w := newWriter(t, filepath.Join(t.TempDir(), "missing", "dir", "out.wav"))
	require.Error(t, w.Close())
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New(&contracts.EngineOptions{Logger: logger.NewNopLogger(), SampleRate: 8000})
	require.ErrorIs(t, err, contracts.ErrUnsupportedCapability)
	require.ErrorIs(t, err, ErrNoOutputPath)
}
