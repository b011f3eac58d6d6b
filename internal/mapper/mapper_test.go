package mapper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

func TestMap_BottomLeftRedPoint(t *testing.T) {
	event, err := Map(contracts.DrawnPoint{X: 0, Y: 400, Color: contracts.Red, Size: 10}, contracts.DefaultGeometry())
	require.NoError(t, err)

	require.Equal(t, contracts.Tone, event.Kind)
	require.Equal(t, contracts.Sine, event.WaveType)
	require.InDelta(t, 65.406, event.Frequency, 0.001)
	require.InDelta(t, 0.2, event.Volume, 1e-12)
	require.InDelta(t, 0.14, event.DurationSeconds, 1e-12)
	require.Zero(t, event.StartTimeOffset)
}

func TestMap_TopRightLimeGreenPoint(t *testing.T) {
	event, err := Map(contracts.DrawnPoint{X: 800, Y: 0, Color: contracts.LimeGreen, Size: 50}, contracts.DefaultGeometry())
	require.NoError(t, err)

	require.Equal(t, 84, Pitch(0, 400))
	require.Equal(t, contracts.Triangle, event.WaveType)
	require.InDelta(t, 2093.005, event.Frequency, 0.001)
	require.Equal(t, 1.0, event.Volume)
	require.InDelta(t, 0.3, event.DurationSeconds, 1e-12)
	require.Equal(t, 4.0, event.StartTimeOffset)
}

func TestMap_BlackPointIsNoise(t *testing.T) {
	event, err := Map(contracts.DrawnPoint{X: 200, Y: 123, Color: contracts.Black, Size: 25}, contracts.DefaultGeometry())
	require.NoError(t, err)

	require.Equal(t, contracts.Noise, event.Kind)
	require.Equal(t, 0.5, event.Volume)
	require.InDelta(t, 0.2, event.DurationSeconds, 1e-12)
	require.Zero(t, event.Frequency)
	require.Equal(t, contracts.WaveType(0), event.WaveType)
	require.Equal(t, 1.0, event.StartTimeOffset)
}

func TestMap_IsDeterministic(t *testing.T) {
	p := contracts.DrawnPoint{X: 317.5, Y: 211.25, Color: contracts.Blue, Size: 7.5}
	first, err := Map(p, contracts.DefaultGeometry())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Map(p, contracts.DefaultGeometry())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestMap_FrequencyFormula(t *testing.T) {
	geometry := contracts.Geometry{Width: 640, Height: 480, TotalDuration: 4}
	offsets := map[contracts.Color]int{
		contracts.Red:       0,
		contracts.LimeGreen: 12,
		contracts.Blue:      -12,
		contracts.Yellow:    0,
	}

	for color, offset := range offsets {
		for y := 0.0; y <= geometry.Height; y += 13.7 {
			event, err := Map(contracts.DrawnPoint{X: 10, Y: y, Color: color, Size: 5}, geometry)
			require.NoError(t, err)

			pitch := math.Floor((1-y/geometry.Height)*48) + 36
			want := 440 * math.Pow(2, (pitch+float64(offset)-69)/12)
			require.InDelta(t, want, event.Frequency, 1e-9, "color %s y %v", color, y)
		}
	}
}

func TestMap_EnvelopeParametersAreLinearInSize(t *testing.T) {
	for _, color := range contracts.Colors {
		for _, size := range []float64{0.5, 1, 10, 25, 50, 80, 200} {
			event, err := Map(contracts.DrawnPoint{X: 1, Y: 1, Color: color, Size: size}, contracts.DefaultGeometry())
			require.NoError(t, err)
			require.Equal(t, size/50, event.Volume)
			require.InDelta(t, 0.1+(size/50)*0.2, event.DurationSeconds, 1e-12)
		}
	}
}

func TestMap_VolumeIsNotClamped(t *testing.T) {
	event, err := Map(contracts.DrawnPoint{X: 1, Y: 1, Color: contracts.Red, Size: 100}, contracts.DefaultGeometry())
	require.NoError(t, err)
	require.Equal(t, 2.0, event.Volume)
}

func TestVoice_EveryColorHasOneVoice(t *testing.T) {
	tests := []struct {
		color  contracts.Color
		offset int
		wave   contracts.WaveType
		kind   contracts.SoundKind
	}{
		{contracts.Red, 0, contracts.Sine, contracts.Tone},
		{contracts.LimeGreen, 12, contracts.Triangle, contracts.Tone},
		{contracts.Blue, -12, contracts.Sawtooth, contracts.Tone},
		{contracts.Yellow, 0, contracts.Square, contracts.Tone},
		{contracts.Black, 0, contracts.Sine, contracts.Noise},
		{contracts.Color("magenta"), 0, contracts.Sine, contracts.Tone},
		{contracts.Color(""), 0, contracts.Sine, contracts.Tone},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			offset, wave, kind := Voice(tt.color)
			require.Equal(t, tt.offset, offset)
			require.Equal(t, tt.kind, kind)
			if kind == contracts.Tone {
				require.Equal(t, tt.wave, wave)
			}
		})
	}
}

func TestMap_InvalidGeometry(t *testing.T) {
	p := contracts.DrawnPoint{X: 0, Y: 0, Color: contracts.Red, Size: 10}
	for _, g := range []contracts.Geometry{
		{Width: 0, Height: 400, TotalDuration: 4},
		{Width: 800, Height: 0, TotalDuration: 4},
		{Width: -1, Height: 400, TotalDuration: 4},
		{Width: 800, Height: 400, TotalDuration: -4},
		{Width: math.NaN(), Height: 400, TotalDuration: 4},
		{Width: 800, Height: math.Inf(1), TotalDuration: 4},
	} {
		_, err := Map(p, g)
		require.ErrorIs(t, err, contracts.ErrInvalidGeometry, "%+v", g)
	}
}

func TestNoteForFrequency_InvertsFrequency(t *testing.T) {
	for note := 0; note <= 127; note++ {
		require.Equal(t, note, NoteForFrequency(Frequency(note)))
	}
	require.Equal(t, 440.0, Frequency(69))
}
