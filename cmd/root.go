package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Darshil0305/guitar-tabs-api/config"
	"github.com/Darshil0305/guitar-tabs-api/logging"
)

var (
	cfgPath string
	cfg     *config.ServiceConfig
)

var rootCmd = &cobra.Command{
	Use:   "guitar-tabs-api",
	Short: "Guitar tab transcription service",
	Long: `Transcribes recorded songs into approximate guitar tablature:
fretboard positions, an ASCII tab diagram, a capo suggestion and a
strumming pattern estimate.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cfg.LogDebug {
			logging.SetLevel(logging.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to yaml config file")
}

// Execute runs the CLI
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
