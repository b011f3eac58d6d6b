// Package scheduler orders a composition left to right and pins every event
// to the backend clock.
package scheduler

import (
	"sort"

	"github.com/leandrodaf/drawsound/internal/mapper"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// Options tunes a scheduling pass.
type Options struct {
	// ClampVolume limits every event volume to [0, 1]. Off by default: volume
	// stays size/50 for any brush size.
	ClampVolume bool
}

// Schedule sorts points by x, keeping capture order for equal x, and maps each
// one to an event starting at clockNow plus its offset. Nothing is returned
// unless every point maps cleanly.
func Schedule(points []contracts.DrawnPoint, geometry contracts.Geometry, clockNow float64, opts Options) ([]contracts.ScheduledEvent, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]contracts.DrawnPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	events := make([]contracts.ScheduledEvent, 0, len(sorted))
	for _, p := range sorted {
		event, err := mapper.Map(p, geometry)
		if err != nil {
			return nil, err
		}
		if opts.ClampVolume {
			event.Volume = clamp(event.Volume)
		}
		events = append(events, contracts.ScheduledEvent{
			Event:     event,
			StartTime: clockNow + event.StartTimeOffset,
		})
	}
	return events, nil
}

// Dispatch hands events to the backend in order. It returns as soon as the
// last event is handed over; voices are not tracked.
func Dispatch(backend contracts.SynthesisBackend, events []contracts.ScheduledEvent) {
	for _, s := range events {
		e := s.Event
		if e.Kind == contracts.Noise {
			backend.PlayNoise(e.Volume, e.DurationSeconds, s.StartTime)
			continue
		}
		backend.PlayTone(e.Frequency, e.WaveType, e.Volume, e.DurationSeconds, s.StartTime)
	}
}

// EndTime returns when the last voice of events has decayed, or fallback when
// events is empty.
func EndTime(events []contracts.ScheduledEvent, fallback float64) float64 {
	end := fallback
	for _, s := range events {
		if t := s.EndTime(); t > end {
			end = t
		}
	}
	return end
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
