package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vidigest/digest-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "digest-api",
	Short: "Video Digest API server",
	Long: `Video Digest API - turns video URLs into stored digests.

Submitted videos move through an asynchronous pipeline: metadata
extraction via a scraping backend, caption acquisition, and LLM
summarization. Results, transcripts, and token accounting are persisted
so repeated submissions reuse prior work instead of repeating it.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig initializes configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	return config.GetConfig()
}
