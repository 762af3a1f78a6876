package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Darshil0305/guitar-tabs-api/download"
	"github.com/Darshil0305/guitar-tabs-api/separation"
	"github.com/Darshil0305/guitar-tabs-api/server"
	"github.com/Darshil0305/guitar-tabs-api/tabgen"
	"github.com/Darshil0305/guitar-tabs-api/transcode"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(buildPipeline(), cfg.ListenAddr)
		return srv.ListenAndServe()
	},
}

// buildPipeline assembles the pipeline from the loaded configuration
func buildPipeline() *tabgen.Pipeline {
	var sep separation.Separator = separation.Disabled{}
	if cfg.EnableSeparation {
		sep = separation.NewSpleeter(cfg.Separation)
	}

	return tabgen.NewPipeline(
		download.NewDownloader(cfg.Downloader),
		sep,
		transcode.NewDecoder(cfg.Decoder),
		tabgen.NewGenerator(cfg.Generation),
	)
}
