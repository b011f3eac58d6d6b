// Package speaker plays compositions on the default audio device through a
// single oto context that lives as long as the process.
package speaker

import (
	"math"

	"github.com/leandrodaf/drawsound/internal/synth"
)

const (
	channelCount  = 2
	bytesPerFrame = channelCount * 4 // float32 LE per channel
)

// pcmReader exposes a mixer as an endless interleaved stereo float32 stream.
// It never returns io.EOF: silence is produced between voices.
type pcmReader struct {
	mixer   *synth.Mixer
	scratch []float64
}

func newPCMReader(m *synth.Mixer) *pcmReader {
	return &pcmReader{mixer: m}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.scratch) < frames {
		r.scratch = make([]float64, frames)
	}
	buf := r.scratch[:frames]
	r.mixer.Mix(buf)
	for i, s := range buf {
		putStereoF32(p, i, s)
	}
	return frames * bytesPerFrame, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * bytesPerFrame
	for c := 0; c < channelCount; c++ {
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
		o += 4
	}
}
