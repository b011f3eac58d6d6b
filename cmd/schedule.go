package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leandrodaf/drawsound/internal/mapper"
	"github.com/leandrodaf/drawsound/sdk/contracts"
	"github.com/leandrodaf/drawsound/sdk/sonify"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <strokes.yaml>",
	Short: "Print the events a drawing would play",
	Long:  `Schedules the drawing against a silent clock starting at zero and prints one row per event in playback order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	s, err := newSession(contracts.WithBackend(sonify.BackendSilent))
	if err != nil {
		return err
	}
	defer s.Close()

	if err := drawScript(s, args[0]); err != nil {
		return err
	}
	report, err := s.Play()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "START\tEND\tKIND\tWAVE\tFREQ\tNOTE\tVOLUME\t")
	for _, e := range report.Events {
		wave, freq, note := "-", "-", "-"
		if e.Event.Kind == contracts.Tone {
			wave = e.Event.WaveType.String()
			freq = fmt.Sprintf("%.3f", e.Event.Frequency)
			note = fmt.Sprint(mapper.NoteForFrequency(e.Event.Frequency))
		}
		fmt.Fprintf(w, "%.3f\t%.3f\t%s\t%s\t%s\t%s\t%.3f\t\n",
			e.StartTime, e.EndTime(), e.Event.Kind, wave, freq, note, e.Event.Volume)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	width, height := s.Canvas().Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "%d events, %.2fs, canvas %gx%g\n",
		len(report.Events), report.EndTime-report.ClockNow, width, height)
	return nil
}
