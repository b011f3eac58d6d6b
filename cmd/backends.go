package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leandrodaf/drawsound/sdk/contracts"
	"github.com/leandrodaf/drawsound/sdk/sonify"
)

var listDevices bool

var backendDescriptions = map[string]string{
	sonify.BackendSpeaker: "software synthesizer on the default audio device",
	sonify.BackendWAV:     "software synthesizer rendered to a WAV file",
	sonify.BackendMIDI:    "General MIDI voices on a MIDI destination",
	sonify.BackendSilent:  "records events without producing sound",
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List synthesis backends",
	RunE:  runBackends,
}

func init() {
	backendsCmd.Flags().BoolVar(&listDevices, "devices", false, "also list MIDI destinations")
	rootCmd.AddCommand(backendsCmd)
}

func runBackends(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	names := sonify.Backends()
	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}
	for _, name := range names {
		marker := " "
		if name == cfg.Backend.Name {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-*s  %s\n", marker, maxLen, name, backendDescriptions[name])
	}

	if !listDevices {
		return nil
	}

	fmt.Fprintln(out)
	devices, err := sonify.ListMIDIDevices(contracts.WithLogger(log))
	if err != nil {
		fmt.Fprintf(out, "MIDI destinations unavailable: %v\n", err)
		return nil
	}
	if len(devices) == 0 {
		fmt.Fprintln(out, "No MIDI destinations")
		return nil
	}
	fmt.Fprintln(out, "MIDI destinations:")
	for _, d := range devices {
		fmt.Fprintf(out, "  %d  %s (%s)\n", d.ID, d.Name, d.Manufacturer)
	}
	return nil
}
