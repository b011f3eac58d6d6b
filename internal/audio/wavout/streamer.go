package wavout

import (
	"github.com/gopxl/beep/v2"

	"github.com/leandrodaf/drawsound/internal/synth"
)

// mixStreamer drains a mixer as a beep.Streamer up to the end of its last voice.
type mixStreamer struct {
	mixer   *synth.Mixer
	scratch []float64
}

var _ beep.Streamer = (*mixStreamer)(nil)

func newStreamer(m *synth.Mixer) *mixStreamer {
	return &mixStreamer{mixer: m}
}

func (s *mixStreamer) Stream(samples [][2]float64) (int, bool) {
	remaining := s.mixer.End() - s.mixer.Position()
	if remaining <= 0 {
		return 0, false
	}
	n := len(samples)
	if int64(n) > remaining {
		n = int(remaining)
	}
	if cap(s.scratch) < n {
		s.scratch = make([]float64, n)
	}
	buf := s.scratch[:n]
	s.mixer.Mix(buf)
	for i, v := range buf {
		samples[i][0] = v
		samples[i][1] = v
	}
	return n, true
}

func (s *mixStreamer) Err() error {
	return nil
}
