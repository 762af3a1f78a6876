package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Darshil0305/guitar-tabs-api/midiexport"
)

var (
	genUseCapo     bool
	genFingerstyle bool
	genMidiOut     string
)

func init() {
	generateCmd.Flags().BoolVar(&genUseCapo, "capo", false, "suggest a capo position")
	generateCmd.Flags().BoolVar(&genFingerstyle, "fingerstyle", false, "render for fingerstyle playing")
	generateCmd.Flags().StringVar(&genMidiOut, "midi-out", "", "also write the detected melody as a MIDI file")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <youtube-url>",
	Short: "Generate a tab for a YouTube URL and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline := buildPipeline()

		result, err := pipeline.GenerateFromYouTube(cmd.Context(), args[0], genUseCapo, genFingerstyle)
		if err != nil {
			return err
		}

		fmt.Printf("%s - %s\n\n", result.Artist, result.Title)
		fmt.Println(result.Result.Tab)
		fmt.Printf("\nStrumming: %s\n", result.Result.StrumPattern)
		for _, warning := range result.Warnings {
			fmt.Printf("warning: %s\n", warning)
		}

		if genMidiOut != "" {
			err := midiexport.WriteSMF(genMidiOut, result.Result.Notes, result.Result.Rhythm.TempoBPM)
			if err != nil {
				return err
			}
			fmt.Printf("MIDI written to %s\n", genMidiOut)
		}

		return nil
	},
}
