// Package config loads drawsound settings from a YAML file and the
// environment with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// EnvPrefix prefixes environment overrides, e.g. DRAWSOUND_BACKEND_NAME.
const EnvPrefix = "DRAWSOUND"

// Config is the file representation of the engine options.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Canvas   CanvasConfig   `mapstructure:"canvas"`
	Playback PlaybackConfig `mapstructure:"playback"`
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// BackendConfig selects and tunes the synthesis backend.
type BackendConfig struct {
	Name       string  `mapstructure:"name"`
	SampleRate int     `mapstructure:"sample_rate"`
	WAVPath    string  `mapstructure:"wav_path"`
	MIDIDevice int     `mapstructure:"midi_device"`
	Seed       uint64  `mapstructure:"seed"`
	Gain       float64 `mapstructure:"gain"`
}

// CanvasConfig is the drawing surface extent in pixels.
type CanvasConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// PlaybackConfig tunes the scheduling pass.
type PlaybackConfig struct {
	TotalDuration float64 `mapstructure:"total_duration"`
	ClampVolume   bool    `mapstructure:"clamp_volume"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("backend.name", "speaker")
	v.SetDefault("backend.sample_rate", contracts.DefaultSampleRate)
	v.SetDefault("backend.wav_path", "drawsound.wav")
	v.SetDefault("backend.midi_device", -1)
	v.SetDefault("backend.seed", 0)
	v.SetDefault("backend.gain", 1.0)
	v.SetDefault("canvas.width", contracts.DefaultCanvasWidth)
	v.SetDefault("canvas.height", contracts.DefaultCanvasHeight)
	v.SetDefault("playback.total_duration", contracts.DefaultTotalDuration)
	v.SetDefault("playback.clamp_volume", false)
}

// Load reads configPath, or drawsound.yaml from the working directory and
// ~/.config/drawsound when configPath is empty. A missing default file is not
// an error; a missing explicit file is.
func Load(configPath string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("drawsound")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "drawsound"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	// viper treats an explicit YAML null like an absent key and would quietly
	// fall back to the default.
	for _, key := range requiredKeys {
		if explicitNull(v, key) {
			return Config{}, fmt.Errorf("%s is null; quote the value if it is a name", key)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// requiredKeys must not be set to null in a config file.
var requiredKeys = []string{"log.level", "backend.name"}

// explicitNull reports whether a nested key is present in the config file
// with no value.
func explicitNull(v *viper.Viper, key string) bool {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return false
	}
	section, ok := v.Get(key[:i]).(map[string]interface{})
	if !ok {
		return false
	}
	val, present := section[key[i+1:]]
	return present && val == nil
}

// Geometry returns the canvas and composition length.
func (c Config) Geometry() contracts.Geometry {
	return contracts.Geometry{
		Width:         c.Canvas.Width,
		Height:        c.Canvas.Height,
		TotalDuration: c.Playback.TotalDuration,
	}
}

// Options converts the file settings into engine options.
func (c Config) Options() ([]contracts.Option, error) {
	level, ok := contracts.ParseLogLevel(strings.ToLower(c.Log.Level))
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if err := c.Geometry().Validate(); err != nil {
		return nil, err
	}
	if c.Backend.Name == "" {
		return nil, errors.New("backend.name must not be empty")
	}
	if c.Backend.Gain < 0 {
		return nil, fmt.Errorf("backend.gain must not be negative, got %v", c.Backend.Gain)
	}
	if c.Backend.SampleRate <= 0 {
		return nil, fmt.Errorf("backend.sample_rate must be positive, got %d", c.Backend.SampleRate)
	}

	opts := []contracts.Option{
		contracts.WithLogLevel(level),
		contracts.WithBackend(c.Backend.Name),
		contracts.WithGeometry(c.Geometry()),
		contracts.WithSampleRate(c.Backend.SampleRate),
		contracts.WithClampVolume(c.Playback.ClampVolume),
		contracts.WithWAVPath(c.Backend.WAVPath),
		contracts.WithRandSeed(c.Backend.Seed),
		contracts.WithMasterGain(c.Backend.Gain),
		contracts.WithCoreMIDIConfig(contracts.CoreMIDIConfig{ClientName: "drawsound", Destination: max(c.Backend.MIDIDevice, 0)}),
		contracts.WithMIDIOutConfig(contracts.MIDIOutConfig{DeviceID: c.Backend.MIDIDevice}),
	}
	if c.Log.File != "" {
		opts = append(opts, contracts.WithLogFile(c.Log.File))
	}
	return opts, nil
}
