// Package session ties a live drawing to the audio engine it plays on. A
// session owns exactly one backend, created on first use and kept until Close.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leandrodaf/drawsound/internal/canvas"
	"github.com/leandrodaf/drawsound/internal/scheduler"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// BackendFactory creates the session's synthesis backend.
type BackendFactory func() (contracts.SynthesisBackend, error)

// Options configures a Session.
type Options struct {
	Logger   contracts.Logger
	Geometry contracts.Geometry
	Schedule scheduler.Options
}

// Report describes one playback pass.
type Report struct {
	PassID   uuid.UUID
	Points   int
	Events   []contracts.ScheduledEvent
	ClockNow float64
	EndTime  float64
}

// Session is the process scoped state of one drawing: its point stream and
// its audio engine.
type Session struct {
	id       uuid.UUID
	logger   contracts.Logger
	geometry contracts.Geometry
	schedule scheduler.Options
	stream   *canvas.PointStream
	factory  BackendFactory

	once       sync.Once
	backend    contracts.SynthesisBackend
	backendErr error
	closed     bool
	mu         sync.Mutex
}

// New creates a session with an empty canvas. The backend is not created
// until the first pointer down or Play.
func New(factory BackendFactory, opts Options) (*Session, error) {
	s := &Session{
		id:       uuid.New(),
		logger:   opts.Logger,
		geometry: opts.Geometry,
		schedule: opts.Schedule,
		factory:  factory,
	}
	stream, err := canvas.NewPointStream(opts.Geometry.Width, opts.Geometry.Height, canvas.WithOnPointerDown(s.warmUp))
	if err != nil {
		return nil, err
	}
	s.stream = stream
	s.logger.Debug("Session created", s.logger.Field().String("sessionID", s.id.String()))
	return s, nil
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Canvas returns the live point stream.
func (s *Session) Canvas() *canvas.PointStream {
	return s.stream
}

// Geometry returns the canvas extent and composition length.
func (s *Session) Geometry() contracts.Geometry {
	return s.geometry
}

// Clear empties the drawing. The backend is untouched.
func (s *Session) Clear() {
	s.stream.Clear()
}

// Backend returns the session's backend, creating it on the first call. A
// creation failure is remembered and returned by every later call.
func (s *Session) Backend() (contracts.SynthesisBackend, error) {
	s.once.Do(func() {
		s.backend, s.backendErr = s.factory()
		if s.backendErr != nil {
			s.logger.Error("Audio engine unavailable",
				s.logger.Field().String("sessionID", s.id.String()),
				s.logger.Field().Error("error", s.backendErr))
			return
		}
		s.logger.Info("Audio engine created", s.logger.Field().String("sessionID", s.id.String()))
	})
	return s.backend, s.backendErr
}

func (s *Session) warmUp() {
	_, _ = s.Backend()
}

// Play schedules a snapshot of the current drawing on the backend. Points
// captured after Play starts are not part of the pass. On error nothing is
// dispatched. A closed session plays nothing.
func (s *Session) Play() (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Report{}, fmt.Errorf("%w: session closed", contracts.ErrUnsupportedCapability)
	}

	backend, err := s.Backend()
	if err != nil {
		return Report{}, err
	}

	points := s.stream.Snapshot()
	now := backend.Now()
	events, err := scheduler.Schedule(points, s.geometry, now, s.schedule)
	if err != nil {
		s.logger.Error("Playback aborted", s.logger.Field().Error("error", err))
		return Report{}, err
	}

	report := Report{
		PassID:   uuid.New(),
		Points:   len(points),
		Events:   events,
		ClockNow: now,
		EndTime:  scheduler.EndTime(events, now),
	}
	scheduler.Dispatch(backend, events)

	s.logger.Info("Playback scheduled",
		s.logger.Field().String("sessionID", s.id.String()),
		s.logger.Field().String("passID", report.PassID.String()),
		s.logger.Field().Int("points", report.Points),
		s.logger.Field().Int("events", len(events)),
		s.logger.Field().Float64("clockNow", now),
		s.logger.Field().Float64("endTime", report.EndTime))
	return report, nil
}

// Wait blocks until the backend clock passes until or ctx is done. Backends
// that are not realtime return immediately.
func (s *Session) Wait(ctx context.Context, until float64) error {
	backend, err := s.Backend()
	if err != nil {
		return err
	}
	if rt, ok := backend.(contracts.Realtime); !ok || !rt.Realtime() {
		return nil
	}

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for backend.Now() < until {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Close releases the backend if one was created.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	// Stop later Backend calls from creating an engine after Close.
	s.once.Do(func() { s.backendErr = contracts.ErrUnsupportedCapability })
	if s.backend == nil {
		return nil
	}
	s.logger.Debug("Closing audio engine", s.logger.Field().String("sessionID", s.id.String()))
	return s.backend.Close()
}
