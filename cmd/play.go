package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <strokes.yaml>",
	Short: "Play a drawing on the configured backend",
	Long:  `Draws the stroke script onto a fresh canvas, plays it once and waits until the last voice has finished.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) (err error) {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := drawScript(s, args[0]); err != nil {
		return err
	}

	report, err := s.Play()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if err := s.Wait(ctx, report.EndTime); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Played %d events from %d points (%.2fs)\n",
		len(report.Events), report.Points, report.EndTime-report.ClockNow)
	return nil
}
