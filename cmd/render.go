package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leandrodaf/drawsound/sdk/contracts"
	"github.com/leandrodaf/drawsound/sdk/sonify"
)

var outputPath string

var renderCmd = &cobra.Command{
	Use:   "render <strokes.yaml>",
	Short: "Render a drawing to a WAV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output WAV file (default backend.wav_path)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := outputPath
	if path == "" {
		path = cfg.Backend.WAVPath
	}

	s, err := newSession(contracts.WithBackend(sonify.BackendWAV), contracts.WithWAVPath(path))
	if err != nil {
		return err
	}
	if err := drawScript(s, args[0]); err != nil {
		_ = s.Close()
		return err
	}

	report, err := s.Play()
	if err != nil {
		_ = s.Close()
		return err
	}
	// The file is written when the backend closes.
	if err := s.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d events, %.2fs\n", path, len(report.Events), report.EndTime-report.ClockNow)
	return nil
}
