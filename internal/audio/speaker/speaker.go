//go:build darwin || windows || ((linux || freebsd) && cgo)

package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/leandrodaf/drawsound/internal/synth"
	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// readyTimeout bounds the wait for the audio device after context creation.
const readyTimeout = 3 * time.Second

// oto allows one context per process, so it is shared by every Speaker.
var (
	contextMu  sync.Mutex
	otoContext *oto.Context
	contextErr error
)

func sharedContext(sampleRate int) (*oto.Context, error) {
	contextMu.Lock()
	defer contextMu.Unlock()

	if otoContext != nil || contextErr != nil {
		return otoContext, contextErr
	}

	ctx, ready, err := oto.NewContext(sampleRate, channelCount, oto.FormatFloat32LE)
	if err != nil {
		contextErr = fmt.Errorf("%w: %v", contracts.ErrUnsupportedCapability, err)
		return nil, contextErr
	}
	select {
	case <-ready:
	case <-time.After(readyTimeout):
		contextErr = fmt.Errorf("%w: audio device not ready after %s", contracts.ErrUnsupportedCapability, readyTimeout)
		return nil, contextErr
	}
	otoContext = ctx
	return otoContext, nil
}

// Speaker is a SynthesisBackend that streams the mix to the audio device.
type Speaker struct {
	*synth.Engine
	logger    contracts.Logger
	ctx       *oto.Context
	player    oto.Player
	closeOnce sync.Once
}

// New opens the audio device and starts streaming silence.
func New(options *contracts.EngineOptions) (contracts.SynthesisBackend, error) {
	ctx, err := sharedContext(options.SampleRate)
	if err != nil {
		options.Logger.Error("Audio device unavailable", options.Logger.Field().Error("error", err))
		return nil, err
	}

	engine := synth.NewEngineFromOptions(options)
	player := ctx.NewPlayer(newPCMReader(engine.Mixer))
	player.Play()

	options.Logger.Info("Speaker backend started",
		options.Logger.Field().Int("sampleRate", options.SampleRate),
		options.Logger.Field().Float64("masterGain", options.MasterGain))

	return &Speaker{
		Engine: engine,
		logger: options.Logger,
		ctx:    ctx,
		player: player,
	}, nil
}

// PlayTone places a tone on the mix, resuming output if it was suspended.
func (s *Speaker) PlayTone(frequency float64, wave contracts.WaveType, volume, durationSeconds, startTime float64) {
	s.resume()
	s.Engine.PlayTone(frequency, wave, volume, durationSeconds, startTime)
}

// PlayNoise places a noise burst on the mix, resuming output if it was suspended.
func (s *Speaker) PlayNoise(volume, durationSeconds, startTime float64) {
	s.resume()
	s.Engine.PlayNoise(volume, durationSeconds, startTime)
}

func (s *Speaker) resume() {
	if s.player.IsPlaying() {
		return
	}
	s.logger.Debug("Resuming suspended audio output")
	if err := s.ctx.Resume(); err != nil {
		s.logger.Warn("Failed to resume audio context", s.logger.Field().Error("error", err))
	}
	s.player.Play()
}

// Close stops the player. The oto context itself stays open for the process.
func (s *Speaker) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.logger.Info("Stopping speaker backend")
		if perr := s.player.Err(); perr != nil {
			s.logger.Warn("Player reported an error", s.logger.Field().Error("error", perr))
		}
		err = s.player.Close()
	})
	return err
}

// Realtime reports that the clock follows the audio device.
func (s *Speaker) Realtime() bool { return true }
