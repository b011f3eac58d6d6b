// Package wavout renders a composition offline and writes it as a WAV file
// when the backend is closed.
package wavout

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/leandrodaf/drawsound/internal/synth"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// ErrNoOutputPath is returned when the wav backend is created without a file.
var ErrNoOutputPath = errors.New("wav backend needs an output path")

// Precision is the sample width written to the file, in bytes.
const Precision = 2

// Writer is a SynthesisBackend with a virtual clock that only moves when the
// mix is rendered. Every voice lands exactly on its start frame.
type Writer struct {
	*synth.Engine
	logger    contracts.Logger
	path      string
	closeOnce sync.Once
	closeErr  error
}

// New prepares a writer targeting options.WAVPath. The file is created on Close.
func New(options *contracts.EngineOptions) (contracts.SynthesisBackend, error) {
	if options.WAVPath == "" {
		return nil, fmt.Errorf("%w: %w", contracts.ErrUnsupportedCapability, ErrNoOutputPath)
	}
	options.Logger.Info("WAV backend ready",
		options.Logger.Field().String("path", options.WAVPath),
		options.Logger.Field().Int("sampleRate", options.SampleRate),
		options.Logger.Field().Float64("masterGain", options.MasterGain))

	return &Writer{
		Engine: synth.NewEngineFromOptions(options),
		logger: options.Logger,
		path:   options.WAVPath,
	}, nil
}

// Format is the beep format of the rendered file.
func (w *Writer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(w.SampleRate()),
		NumChannels: 1,
		Precision:   Precision,
	}
}

// Close renders every voice and writes the file. Calling it again returns the
// first result.
func (w *Writer) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.writeFile()
	})
	return w.closeErr
}

func (w *Writer) writeFile() error {
	f, err := os.Create(w.path)
	if err != nil {
		w.logger.Error("Failed to create WAV file", w.logger.Field().Error("error", err))
		return fmt.Errorf("creating %s: %w", w.path, err)
	}

	frames := w.End() - w.Position()
	if err := wav.Encode(f, newStreamer(w.Mixer), w.Format()); err != nil {
		_ = f.Close()
		w.logger.Error("Failed to encode WAV file", w.logger.Field().Error("error", err))
		return fmt.Errorf("encoding %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", w.path, err)
	}

	w.logger.Info("WAV file written",
		w.logger.Field().String("path", w.path),
		w.logger.Field().Int64("frames", frames))
	return nil
}
