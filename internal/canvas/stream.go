// Package canvas holds the live point collection of a drawing surface along
// with the brush and pointer state that decide what a capture appends.
package canvas

import (
	"fmt"
	"math"
	"sync"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

var _ contracts.DrawnPointStream = (*PointStream)(nil)

// PointStream implements contracts.DrawnPointStream.
type PointStream struct {
	mu       sync.Mutex
	width    float64
	height   float64
	color    contracts.Color
	size     float64
	drawing  bool
	points   []contracts.DrawnPoint
	onDown   func()
	captured uint64
}

// Option configures a PointStream.
type Option func(*PointStream)

// WithOnPointerDown registers a hook run on every pointer down, before the
// first point of the stroke is captured. The session uses it to create the
// audio engine on the first user gesture.
func WithOnPointerDown(fn func()) Option {
	return func(s *PointStream) {
		s.onDown = fn
	}
}

// NewPointStream returns an empty stream for a width x height canvas with the
// default brush.
func NewPointStream(width, height float64, opts ...Option) (*PointStream, error) {
	g := contracts.Geometry{Width: width, Height: height}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	s := &PointStream{
		width:  width,
		height: height,
		color:  contracts.DefaultBrushColor,
		size:   contracts.DefaultBrushSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetBrushColor changes the color of subsequent captures.
func (s *PointStream) SetBrushColor(c contracts.Color) error {
	if _, err := contracts.ParseColor(string(c)); err != nil {
		return err
	}
	s.mu.Lock()
	s.color = c
	s.mu.Unlock()
	return nil
}

// SetBrushSize changes the size of subsequent captures.
func (s *PointStream) SetBrushSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return fmt.Errorf("%w: brush size %v must be positive", contracts.ErrInvalidPoint, size)
	}
	s.mu.Lock()
	s.size = size
	s.mu.Unlock()
	return nil
}

// Brush returns the current brush.
func (s *PointStream) Brush() (contracts.Color, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color, s.size
}

// PointerDown starts a stroke and captures its first point.
func (s *PointStream) PointerDown(x, y float64) error {
	if s.onDown != nil {
		s.onDown()
	}
	s.mu.Lock()
	s.drawing = true
	s.mu.Unlock()
	return s.Capture(x, y)
}

// PointerMove captures a point if a stroke is in progress.
func (s *PointStream) PointerMove(x, y float64) error {
	return s.Capture(x, y)
}

// PointerUp ends the current stroke.
func (s *PointStream) PointerUp() {
	s.mu.Lock()
	s.drawing = false
	s.mu.Unlock()
}

// PointerLeave ends the current stroke when the pointer leaves the canvas.
func (s *PointStream) PointerLeave() {
	s.PointerUp()
}

// Drawing reports whether a stroke is in progress.
func (s *PointStream) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawing
}

// Capture appends a point with the current brush. Outside a stroke it does
// nothing.
func (s *PointStream) Capture(x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.drawing {
		return nil
	}
	return s.appendLocked(contracts.DrawnPoint{X: x, Y: y, Color: s.color, Size: s.size})
}

// Append adds a fully specified point regardless of pointer state.
func (s *PointStream) Append(p contracts.DrawnPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(p)
}

func (s *PointStream) appendLocked(p contracts.DrawnPoint) error {
	if err := p.Validate(s.width, s.height); err != nil {
		return err
	}
	s.points = append(s.points, p)
	s.captured++
	return nil
}

// Clear empties the collection. The brush and pointer state are kept.
func (s *PointStream) Clear() {
	s.mu.Lock()
	s.points = nil
	s.mu.Unlock()
}

// Snapshot returns a copy of the points in capture order.
func (s *PointStream) Snapshot() []contracts.DrawnPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]contracts.DrawnPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points currently held.
func (s *PointStream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// Captured returns the number of points accepted since creation, including
// cleared ones.
func (s *PointStream) Captured() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captured
}

// Bounds returns the canvas extent.
func (s *PointStream) Bounds() (width, height float64) {
	return s.width, s.height
}
