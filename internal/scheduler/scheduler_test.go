package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/drawsound/internal/audio/recorder"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

func TestSchedule_SortsByX(t *testing.T) {
	points := []contracts.DrawnPoint{
		{X: 600, Y: 200, Color: contracts.Red, Size: 10},
		{X: 100, Y: 200, Color: contracts.Red, Size: 10},
		{X: 400, Y: 200, Color: contracts.Red, Size: 10},
	}

	events, err := Schedule(points, contracts.DefaultGeometry(), 0, Options{})
	require.NoError(t, err)
	require.Len(t, events, 3)

	require.Equal(t, 0.5, events[0].Event.StartTimeOffset)
	require.Equal(t, 2.0, events[1].Event.StartTimeOffset)
	require.Equal(t, 3.0, events[2].Event.StartTimeOffset)
}

func TestSchedule_EqualXKeepsCaptureOrder(t *testing.T) {
	// Same x, distinguishable by size.
	points := []contracts.DrawnPoint{
		{X: 300, Y: 10, Color: contracts.Red, Size: 1},
		{X: 100, Y: 10, Color: contracts.Red, Size: 2},
		{X: 300, Y: 10, Color: contracts.Blue, Size: 3},
		{X: 300, Y: 10, Color: contracts.Black, Size: 4},
		{X: 100, Y: 10, Color: contracts.Yellow, Size: 5},
	}

	events, err := Schedule(points, contracts.DefaultGeometry(), 0, Options{})
	require.NoError(t, err)

	var volumes []float64
	for _, e := range events {
		volumes = append(volumes, e.Event.Volume*50)
	}
	require.InDeltaSlice(t, []float64{2, 5, 1, 3, 4}, volumes, 1e-9)
}

func TestSchedule_OffsetsAreMonotonic(t *testing.T) {
	var points []contracts.DrawnPoint
	for i := 0; i < 200; i++ {
		x := float64((i * 7919) % 801)
		points = append(points, contracts.DrawnPoint{X: x, Y: float64(i % 400), Color: contracts.Colors[i%5], Size: 1 + float64(i%40)})
	}

	events, err := Schedule(points, contracts.DefaultGeometry(), 12.5, Options{})
	require.NoError(t, err)
	require.Len(t, events, len(points))

	for i := 1; i < len(events); i++ {
		assert.LessOrEqual(t, events[i-1].Event.StartTimeOffset, events[i].Event.StartTimeOffset)
		assert.LessOrEqual(t, events[i-1].StartTime, events[i].StartTime)
	}
}

func TestSchedule_AbsoluteStartTimeAddsClock(t *testing.T) {
	points := []contracts.DrawnPoint{{X: 200, Y: 0, Color: contracts.Yellow, Size: 10}}

	events, err := Schedule(points, contracts.DefaultGeometry(), 3.25, Options{})
	require.NoError(t, err)
	require.Equal(t, 4.25, events[0].StartTime)
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	points := []contracts.DrawnPoint{
		{X: 2, Y: 0, Color: contracts.Red, Size: 1},
		{X: 1, Y: 0, Color: contracts.Red, Size: 1},
	}

	_, err := Schedule(points, contracts.DefaultGeometry(), 0, Options{})
	require.NoError(t, err)
	require.Equal(t, 2.0, points[0].X)
	require.Equal(t, 1.0, points[1].X)
}

func TestSchedule_EmptyComposition(t *testing.T) {
	events, err := Schedule(nil, contracts.DefaultGeometry(), 1, Options{})
	require.NoError(t, err)
	require.Empty(t, events)
	require.Equal(t, 1.0, EndTime(events, 1))
}

func TestSchedule_InvalidGeometryProducesNothing(t *testing.T) {
	points := []contracts.DrawnPoint{{X: 0, Y: 0, Color: contracts.Red, Size: 1}}

	events, err := Schedule(points, contracts.Geometry{Width: 800, Height: 0, TotalDuration: 4}, 0, Options{})
	require.ErrorIs(t, err, contracts.ErrInvalidGeometry)
	require.Nil(t, events)
}

func TestSchedule_ClampVolume(t *testing.T) {
	points := []contracts.DrawnPoint{
		{X: 0, Y: 0, Color: contracts.Red, Size: 100},
		{X: 1, Y: 0, Color: contracts.Red, Size: 25},
	}

	unclamped, err := Schedule(points, contracts.DefaultGeometry(), 0, Options{})
	require.NoError(t, err)
	require.Equal(t, 2.0, unclamped[0].Event.Volume)

	clamped, err := Schedule(points, contracts.DefaultGeometry(), 0, Options{ClampVolume: true})
	require.NoError(t, err)
	require.Equal(t, 1.0, clamped[0].Event.Volume)
	require.Equal(t, 0.5, clamped[1].Event.Volume)
	// Duration keeps following the unclamped size.
	require.InDelta(t, 0.5, clamped[0].Event.DurationSeconds, 1e-12)
}

func TestDispatch_RoutesByKindInOrder(t *testing.T) {
	points := []contracts.DrawnPoint{
		{X: 400, Y: 0, Color: contracts.Black, Size: 25},
		{X: 0, Y: 400, Color: contracts.Red, Size: 10},
		{X: 800, Y: 0, Color: contracts.LimeGreen, Size: 50},
	}
	events, err := Schedule(points, contracts.DefaultGeometry(), 10, Options{})
	require.NoError(t, err)

	rec := recorder.New(10)
	Dispatch(rec, events)

	calls := rec.Calls()
	require.Len(t, calls, 3)

	require.Equal(t, contracts.Tone, calls[0].Kind)
	require.Equal(t, contracts.Sine, calls[0].WaveType)
	require.InDelta(t, 65.406, calls[0].Frequency, 0.001)
	require.Equal(t, 10.0, calls[0].StartTime)

	require.Equal(t, contracts.Noise, calls[1].Kind)
	require.Equal(t, 0.5, calls[1].Volume)
	require.Equal(t, 12.0, calls[1].StartTime)

	require.Equal(t, contracts.Triangle, calls[2].WaveType)
	require.Equal(t, 14.0, calls[2].StartTime)
	require.InDelta(t, 14.3, EndTime(events, 10), 1e-9)
}

func TestDispatch_NoVoiceLimit(t *testing.T) {
	points := make([]contracts.DrawnPoint, 1000)
	for i := range points {
		points[i] = contracts.DrawnPoint{X: 400, Y: 200, Color: contracts.Yellow, Size: 10}
	}
	events, err := Schedule(points, contracts.DefaultGeometry(), 0, Options{})
	require.NoError(t, err)

	rec := recorder.New(0)
	Dispatch(rec, events)
	require.Len(t, rec.Calls(), 1000)
}
