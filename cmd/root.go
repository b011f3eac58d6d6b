// Package cmd implements the drawsound command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leandrodaf/drawsound/internal/config"
	"github.com/leandrodaf/drawsound/internal/logger"
	"github.com/leandrodaf/drawsound/internal/session"
	"github.com/leandrodaf/drawsound/internal/strokes"
	"github.com/leandrodaf/drawsound/sdk/contracts"
	"github.com/leandrodaf/drawsound/sdk/sonify"
)

var (
	cfgFile  string
	logLevel string
	backend  string

	cfg config.Config
	log contracts.Logger
)

var rootCmd = &cobra.Command{
	Use:   "drawsound",
	Short: "Turn drawings into sound",
	Long: `drawsound maps the points of a drawing to tones and noise bursts and
plays them left to right across a short composition.

Drawings are YAML stroke scripts:

  strokes:
    - color: limegreen
      size: 30
      points:
        - {x: 10, y: 380}
        - {x: 60, y: 300}`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./drawsound.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "synthesis backend: "+strings.Join(sonify.Backends(), ", "))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if backend != "" {
		loaded.Backend.Name = backend
	}
	cfg = loaded
	log = logger.NewDevelopmentLogger()
	return nil
}

// newSession builds a session from the loaded config. Later options win.
func newSession(overrides ...contracts.Option) (*session.Session, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, contracts.WithLogger(log))
	opts = append(opts, overrides...)
	return sonify.NewSession(opts...)
}

// drawScript loads a stroke script onto the session canvas.
func drawScript(s *session.Session, path string) error {
	script, err := strokes.LoadFile(path)
	if err != nil {
		return err
	}
	if err := script.Replay(s.Canvas()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("Drawing loaded", log.Field().String("file", path), log.Field().Int("points", s.Canvas().Len()))
	return nil
}
